package view

import (
	"iter"
	"maps"
)

// Map is a Go map implementing MutableMapping.
// A nil Map is a valid empty read-only mapping; writing to it panics.
type Map[V any] map[string]V

// Contains reports whether key is present.
func (m Map[V]) Contains(key string) bool {
	_, ok := m[key]
	return ok
}

// GetItem returns the value for key, or a key-not-found error.
func (m Map[V]) GetItem(key string) (V, error) {
	v, ok := m[key]
	if !ok {
		return v, keyError(key, nil)
	}
	return v, nil
}

// SetItem stores value under key.
func (m Map[V]) SetItem(key string, value V) error {
	m[key] = value
	return nil
}

// DelItem removes key, or returns a key-not-found error.
func (m Map[V]) DelItem(key string) error {
	if _, ok := m[key]; !ok {
		return keyError(key, nil)
	}
	delete(m, key)
	return nil
}

// Keys returns the keys in map iteration order.
func (m Map[V]) Keys() iter.Seq[string] {
	return maps.Keys(m)
}

// Len returns the number of keys.
func (m Map[V]) Len() int {
	return len(m)
}

var _ MutableMapping[any] = Map[any](nil)
