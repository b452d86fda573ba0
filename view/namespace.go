package view

import (
	"maps"
	"slices"

	"github.com/travisclagrone/tclg/capability"
)

// Namespace is a plain attribute-bearing object whose attributes can be
// read, assigned, and deleted by name at runtime. The zero value is an
// empty Namespace ready to use.
type Namespace[V any] struct {
	attrs map[string]V
}

// NewNamespace returns a Namespace holding a copy of attrs.
func NewNamespace[V any](attrs map[string]V) *Namespace[V] {
	ns := &Namespace[V]{attrs: make(map[string]V, len(attrs))}
	maps.Copy(ns.attrs, attrs)
	return ns
}

// GetAttr returns the named attribute, or an attribute-not-found error.
func (n *Namespace[V]) GetAttr(name string) (V, error) {
	v, ok := n.attrs[name]
	if !ok {
		return v, attrError(name, n, nil)
	}
	return v, nil
}

// GetAttribute returns the named attribute and whether it is present.
func (n *Namespace[V]) GetAttribute(name string) (V, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttr assigns the named attribute, creating it if needed.
func (n *Namespace[V]) SetAttr(name string, value V) error {
	if n.attrs == nil {
		n.attrs = make(map[string]V)
	}
	n.attrs[name] = value
	return nil
}

// DelAttr removes the named attribute, or returns an attribute-not-found error.
func (n *Namespace[V]) DelAttr(name string) error {
	if _, ok := n.attrs[name]; !ok {
		return attrError(name, n, nil)
	}
	delete(n.attrs, name)
	return nil
}

// Dir returns every attribute name, including non-public ones, sorted.
func (n *Namespace[V]) Dir() []string {
	return slices.Sorted(maps.Keys(n.attrs))
}

var (
	_ MutableObject[any]                   = (*Namespace[any])(nil)
	_ capability.SupportsGetAttribute[any] = (*Namespace[any])(nil)
)
