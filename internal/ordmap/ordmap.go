package ordmap

import (
	"errors"
	"iter"
)

var (
	// ErrKeyExists is returned when a key already exists in the map.
	ErrKeyExists = errors.New("key already exists")
)

// Map is a map that maintains the insertion order of the keys.
type Map[K comparable, V any] struct {
	m    map[K]V
	keys []K
}

// New creates a new Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		m:    make(map[K]V),
		keys: []K{},
	}
}

// Add adds a key-value pair to the map. it returns error if the key already exists.
func (m *Map[K, V]) Add(key K, value V) error {
	if _, ok := m.m[key]; ok {
		return ErrKeyExists
	}

	m.m[key] = value
	m.keys = append(m.keys, key)
	return nil
}

// Get returns the value of a key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	value, ok := m.m[key]
	return value, ok
}

// Iter returns an iterator that iterates over all key-value pairs in insertion order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.m[k]) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range m.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, k := range m.keys {
			if !yield(m.m[k]) {
				return
			}
		}
	}
}

// Len returns the number of key-value pairs in the map.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}
