package iters

import (
	"golang.org/x/exp/constraints"
)

// Enumerator is an iterator that enumerates a counter as the keys for the base value iterator.
type Enumerator[K constraints.Integer, V any] struct {
	it      ValueIterator[V]
	counter K
}

// Enumerate creates a new enumerator.
func Enumerate[K constraints.Integer, V any](it ValueIterator[V]) *Enumerator[K, V] {
	return &Enumerator[K, V]{
		it:      it,
		counter: 0,
	}
}

// Close implements the Iterator interface.
func (e *Enumerator[K, V]) Close() {
	e.it.Close()
}

// Next implements the Iterator interface.
func (e *Enumerator[K, V]) Next() {
	e.it.Next()
	e.counter++
}

// Rewind implements the Iterator interface.
func (e *Enumerator[K, V]) Rewind() {
	e.it.Rewind()
	e.counter = 0
}

// Valid implements the Iterator interface.
func (e *Enumerator[K, V]) Valid() bool {
	return e.it.Valid()
}

// Key returns the current key.
func (e *Enumerator[K, V]) Key() K {
	return e.counter
}

// Value returns the current value.
func (e *Enumerator[K, V]) Value() (V, error) {
	return e.it.Value()
}
