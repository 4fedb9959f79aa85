package iters

// Slice creates an iterator over the elements of s keyed by their index.
func Slice[T any](s []T) *SliceIterator[T] {
	return &SliceIterator[T]{s: s}
}

// SliceIterator iterates a slice in order.
type SliceIterator[T any] struct {
	s []T
	i int
}

// Close implements the Iterator interface.
func (it *SliceIterator[T]) Close() {}

// Next implements the Iterator interface.
func (it *SliceIterator[T]) Next() {
	it.i++
}

// Rewind implements the Iterator interface.
func (it *SliceIterator[T]) Rewind() {
	it.i = 0
}

// Valid implements the Iterator interface.
func (it *SliceIterator[T]) Valid() bool {
	return it.i < len(it.s)
}

// Key implements the Iterator interface.
func (it *SliceIterator[T]) Key() int {
	return it.i
}

// Value implements the Iterator interface.
func (it *SliceIterator[T]) Value() (value T, err error) {
	return it.s[it.i], nil
}
