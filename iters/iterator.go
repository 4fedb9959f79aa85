package iters

// Iterator is an interface that extends ValueIterator with a Key method.
type Iterator[K, V any] interface {
	ValueIterator[V]
	Key() K
}

// ValueIterator is the interface of a rewindable pull iterator.
//
// The usual loop is:
//
//	for it.Rewind(); it.Valid(); it.Next() {
//		v, err := it.Value()
//		...
//	}
type ValueIterator[V any] interface {
	Close()
	Next()
	Rewind()
	Valid() bool
	Value() (value V, err error)
}
