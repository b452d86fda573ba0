package view

import (
	"iter"
	"slices"

	"github.com/travisclagrone/tclg/errors"
)

// AttrsItemsView presents a Mapping as a read-only object of attributes.
//
// It has no SetAttr or DelAttr method, so it never satisfies
// capability.SupportsSetAttr or capability.SupportsDelAttr.
type AttrsItemsView[V any] struct {
	data Mapping[V]
	self any // reported as the object in attribute errors
}

// NewAttrsItemsView returns a read-only attribute view of data.
// It fails with errors.CodeInvalidType when data is nil.
func NewAttrsItemsView[V any](data Mapping[V]) (*AttrsItemsView[V], error) {
	if isNil(data) {
		return nil, typeError("expected data to be a Mapping, not %T", data)
	}
	v := &AttrsItemsView[V]{data: data}
	v.self = v
	return v, nil
}

// Dir returns the public keys of the mapping, sorted. It is advisory and
// meant for introspection, not as an iteration contract.
func (v *AttrsItemsView[V]) Dir() []string {
	return slices.Sorted(publicNames(v.data.Keys()))
}

// GetAttr returns the value stored under the key name. Non-public names and
// missing keys fail with errors.CodeAttributeNotFound.
func (v *AttrsItemsView[V]) GetAttr(name string) (V, error) {
	var zero V
	if !IsPublic(name) {
		return zero, attrError(name, v.self, nil)
	}
	value, err := v.data.GetItem(name)
	if err != nil {
		if errors.HasCode(err, errors.CodeKeyNotFound) {
			return zero, attrError(name, v.self, err)
		}
		return zero, err
	}
	return value, nil
}

// MutableAttrsItemsView presents a MutableMapping as an object of attributes
// that can also be assigned and deleted.
type MutableAttrsItemsView[V any] struct {
	AttrsItemsView[V]
	data MutableMapping[V]
}

// NewMutableAttrsItemsView returns a mutable attribute view of data.
// It fails with errors.CodeInvalidType unless data also implements
// MutableMapping.
func NewMutableAttrsItemsView[V any](data Mapping[V]) (*MutableAttrsItemsView[V], error) {
	mutable, ok := data.(MutableMapping[V])
	if !ok || isNil(data) || isNilMap(data) {
		return nil, typeError("expected data to be a MutableMapping, not %T", data)
	}
	v := &MutableAttrsItemsView[V]{
		AttrsItemsView: AttrsItemsView[V]{data: data},
		data:           mutable,
	}
	v.self = v
	return v, nil
}

// SetAttr stores value under the key name.
func (v *MutableAttrsItemsView[V]) SetAttr(name string, value V) error {
	if !IsPublic(name) {
		return attrError(name, v, nil)
	}
	if err := v.data.SetItem(name, value); err != nil {
		if errors.HasCode(err, errors.CodeKeyNotFound) {
			return attrError(name, v, err)
		}
		return err
	}
	return nil
}

// DelAttr removes the key name.
func (v *MutableAttrsItemsView[V]) DelAttr(name string) error {
	if !IsPublic(name) {
		return attrError(name, v, nil)
	}
	if err := v.data.DelItem(name); err != nil {
		if errors.HasCode(err, errors.CodeKeyNotFound) {
			return attrError(name, v, err)
		}
		return err
	}
	return nil
}

func publicNames(names iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for name := range names {
			if IsPublic(name) && !yield(name) {
				return
			}
		}
	}
}

var (
	_ Object[any]        = (*AttrsItemsView[any])(nil)
	_ MutableObject[any] = (*MutableAttrsItemsView[any])(nil)
)
