package iters

// FlattenIterator is an iterator that flattens a set of iterators into a single iterator.
// Empty inner iterators are skipped. An error from the base iterator is reported by
// Value at the position where it occurred and Next moves past it.
type FlattenIterator[T any] struct {
	base    ValueIterator[ValueIterator[T]]
	current ValueIterator[T]
	err     error
}

// Flatten creates a new flatten iterator.
func Flatten[T any](base ValueIterator[ValueIterator[T]]) *FlattenIterator[T] {
	return &FlattenIterator[T]{base: base}
}

// Close implements the Iterator interface.
func (it *FlattenIterator[T]) Close() {
	it.closeCurrent()
	it.base.Close()
}

func (it *FlattenIterator[T]) closeCurrent() {
	if it.current != nil {
		it.current.Close()
		it.current = nil
	}
}

// advance positions the iterator on the first item of the first non-empty
// inner iterator at or after the current base position.
func (it *FlattenIterator[T]) advance() {
	for it.base.Valid() {
		current, err := it.base.Value()
		if err != nil {
			it.err = err
			return
		}

		current.Rewind()
		if current.Valid() {
			it.current = current
			return
		}
		current.Close()
		it.base.Next()
	}
}

// Next implements the Iterator interface.
func (it *FlattenIterator[T]) Next() {
	if it.err != nil {
		it.err = nil
		it.base.Next()
		it.advance()
		return
	}

	if it.current == nil {
		return
	}

	it.current.Next()
	if it.current.Valid() {
		return
	}
	it.closeCurrent()

	it.base.Next()
	it.advance()
}

// Rewind implements the Iterator interface.
func (it *FlattenIterator[T]) Rewind() {
	it.closeCurrent()
	it.err = nil
	it.base.Rewind()
	it.advance()
}

// Valid implements the Iterator interface.
func (it *FlattenIterator[T]) Valid() bool {
	return it.err != nil || (it.current != nil && it.current.Valid())
}

// Value returns the current value of the iterator.
func (it *FlattenIterator[T]) Value() (value T, err error) {
	if it.err != nil {
		return value, it.err
	}

	if it.current != nil {
		return it.current.Value()
	}

	return value, nil
}
