package iters

// MapIterator is an iterator that maps the value from V to U.
type MapIterator[K, V, U any] struct {
	base Iterator[K, V]
	f    func(V) (U, error)
}

// Map creates a new map iterator.
func Map[K, V, U any](base Iterator[K, V], f func(V) (U, error)) *MapIterator[K, V, U] {
	return &MapIterator[K, V, U]{base: base, f: f}
}

// Close implements the Iterator interface.
func (it *MapIterator[K, V, U]) Close() {
	it.base.Close()
}

// Next implements the Iterator interface.
func (it *MapIterator[K, V, U]) Next() {
	it.base.Next()
}

// Rewind implements the Iterator interface.
func (it *MapIterator[K, V, U]) Rewind() {
	it.base.Rewind()
}

// Valid implements the Iterator interface.
func (it *MapIterator[K, V, U]) Valid() bool {
	return it.base.Valid()
}

// Key implements the Iterator interface.
func (it *MapIterator[K, V, U]) Key() K {
	return it.base.Key()
}

// Value implements the Iterator interface.
func (it *MapIterator[K, V, U]) Value() (value U, err error) {
	v, err := it.base.Value()
	if err != nil {
		return value, err
	}
	return it.f(v)
}
