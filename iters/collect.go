package iters

// Collect collects all the items from the iterator and returns them as a slice.
// The returned slice is never nil.
func Collect[V any](it ValueIterator[V]) ([]V, error) {
	items := []V{}
	for it.Rewind(); it.Valid(); it.Next() {
		v, err := it.Value()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}
