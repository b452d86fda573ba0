package ops

import "github.com/travisclagrone/tclg/capability"

// AttrDeleter deletes a bound attribute name from its target.
type AttrDeleter struct {
	name string
}

// NewAttrDeleter returns an AttrDeleter bound to name.
func NewAttrDeleter(name string) AttrDeleter {
	return AttrDeleter{name: name}
}

// Name returns the bound attribute name.
func (d AttrDeleter) Name() string { return d.name }

// Apply deletes the bound attribute from target.
func (d AttrDeleter) Apply(target capability.SupportsDelAttr) error {
	return target.DelAttr(d.name)
}

// Func returns Apply as a plain function value.
func (d AttrDeleter) Func() func(capability.SupportsDelAttr) error {
	return d.Apply
}

// AttrSetter assigns a bound value to a bound attribute name on its target.
type AttrSetter[V any] struct {
	name  string
	value V
}

// NewAttrSetter returns an AttrSetter bound to name and value.
func NewAttrSetter[V any](name string, value V) AttrSetter[V] {
	return AttrSetter[V]{name: name, value: value}
}

// Name returns the bound attribute name.
func (s AttrSetter[V]) Name() string { return s.name }

// Value returns the bound value.
func (s AttrSetter[V]) Value() V { return s.value }

// Apply assigns the bound value to the bound attribute of target.
func (s AttrSetter[V]) Apply(target capability.SupportsSetAttr[V]) error {
	return target.SetAttr(s.name, s.value)
}

// Func returns Apply as a plain function value.
func (s AttrSetter[V]) Func() func(capability.SupportsSetAttr[V]) error {
	return s.Apply
}
