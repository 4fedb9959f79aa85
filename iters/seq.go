package iters

import "iter"

// SeqIterator adapts a push style iter.Seq2 to the Iterator interface.
// Each Rewind restarts the underlying sequence.
type SeqIterator[K, V any] struct {
	seq   iter.Seq2[K, V]
	next  func() (K, V, bool)
	stop  func()
	key   K
	value V
	valid bool
}

// Seq creates a new SeqIterator. The iterator must be closed to release the
// resources of the underlying sequence.
func Seq[K, V any](seq iter.Seq2[K, V]) *SeqIterator[K, V] {
	return &SeqIterator[K, V]{seq: seq}
}

// Close implements the Iterator interface.
func (it *SeqIterator[K, V]) Close() {
	if it.stop != nil {
		it.stop()
	}
	it.next, it.stop = nil, nil
	it.valid = false
}

// Next implements the Iterator interface.
func (it *SeqIterator[K, V]) Next() {
	if it.next == nil {
		return
	}
	it.key, it.value, it.valid = it.next()
}

// Rewind implements the Iterator interface.
func (it *SeqIterator[K, V]) Rewind() {
	it.Close()
	it.next, it.stop = iter.Pull2(it.seq)
	it.Next()
}

// Valid implements the Iterator interface.
func (it *SeqIterator[K, V]) Valid() bool {
	return it.valid
}

// Key implements the Iterator interface.
func (it *SeqIterator[K, V]) Key() K {
	return it.key
}

// Value implements the Iterator interface.
func (it *SeqIterator[K, V]) Value() (value V, err error) {
	return it.value, nil
}
