package ops

import "github.com/travisclagrone/tclg/capability"

// ItemDeleter deletes a bound key from its target.
type ItemDeleter[K any] struct {
	key K
}

// NewItemDeleter returns an ItemDeleter bound to key.
func NewItemDeleter[K any](key K) ItemDeleter[K] {
	return ItemDeleter[K]{key: key}
}

// Key returns the bound key.
func (d ItemDeleter[K]) Key() K { return d.key }

// Apply deletes the bound key from target.
func (d ItemDeleter[K]) Apply(target capability.SupportsDelItem[K]) error {
	return target.DelItem(d.key)
}

// Func returns Apply as a plain function value.
func (d ItemDeleter[K]) Func() func(capability.SupportsDelItem[K]) error {
	return d.Apply
}

// ItemSetter assigns a bound value to a bound key on its target.
type ItemSetter[K, V any] struct {
	key   K
	value V
}

// NewItemSetter returns an ItemSetter bound to key and value.
func NewItemSetter[K, V any](key K, value V) ItemSetter[K, V] {
	return ItemSetter[K, V]{key: key, value: value}
}

// Key returns the bound key.
func (s ItemSetter[K, V]) Key() K { return s.key }

// Value returns the bound value.
func (s ItemSetter[K, V]) Value() V { return s.value }

// Apply assigns the bound value to the bound key of target.
func (s ItemSetter[K, V]) Apply(target capability.SupportsSetItem[K, V]) error {
	return target.SetItem(s.key, s.value)
}

// Func returns Apply as a plain function value.
func (s ItemSetter[K, V]) Func() func(capability.SupportsSetItem[K, V]) error {
	return s.Apply
}
