package view

import (
	"iter"
	"slices"

	"github.com/travisclagrone/tclg/capability"
	"github.com/travisclagrone/tclg/errors"
)

// ItemsAttrsView presents an Object as a read-only Mapping of its public
// attributes.
type ItemsAttrsView[V any] struct {
	obj Object[V]
}

// NewItemsAttrsView returns a read-only mapping view of obj.
// It fails with errors.CodeInvalidType when obj is nil.
func NewItemsAttrsView[V any](obj Object[V]) (*ItemsAttrsView[V], error) {
	if isNil(obj) {
		return nil, typeError("expected obj to be an object, not nil")
	}
	return &ItemsAttrsView[V]{obj: obj}, nil
}

// GetItem returns the attribute named key. Non-public keys and missing
// attributes fail with errors.CodeKeyNotFound.
func (v *ItemsAttrsView[V]) GetItem(key string) (V, error) {
	var zero V
	if !IsPublic(key) {
		return zero, keyError(key, nil)
	}
	value, err := v.obj.GetAttr(key)
	if err != nil {
		if errors.HasCode(err, errors.CodeAttributeNotFound) {
			return zero, keyError(key, err)
		}
		return zero, err
	}
	return value, nil
}

// Contains reports whether GetItem would succeed for key.
func (v *ItemsAttrsView[V]) Contains(key string) bool {
	_, err := v.GetItem(key)
	return err == nil
}

// Keys iterates over the object's public attribute names, in the order the
// object lists them.
func (v *ItemsAttrsView[V]) Keys() iter.Seq[string] {
	return publicNames(slices.Values(v.obj.Dir()))
}

// Len returns the number of public attribute names.
func (v *ItemsAttrsView[V]) Len() int {
	n := 0
	for range v.Keys() {
		n++
	}
	return n
}

// MutableItemsAttrsView presents a MutableObject as a MutableMapping of its
// public attributes.
type MutableItemsAttrsView[V any] struct {
	ItemsAttrsView[V]
	setter  capability.SupportsSetAttr[V]
	deleter capability.SupportsDelAttr
}

// NewMutableItemsAttrsView returns a mutable mapping view of obj.
// It fails with errors.CodeInvalidType when obj is nil or its attributes
// cannot be assigned or deleted.
func NewMutableItemsAttrsView[V any](obj Object[V]) (*MutableItemsAttrsView[V], error) {
	if isNil(obj) {
		return nil, typeError("expected obj to be an object, not nil")
	}
	setter, ok := obj.(capability.SupportsSetAttr[V])
	if !ok {
		return nil, typeError("expected attributes of %T to be settable", obj)
	}
	deleter, ok := obj.(capability.SupportsDelAttr)
	if !ok {
		return nil, typeError("expected attributes of %T to be deletable", obj)
	}
	return &MutableItemsAttrsView[V]{
		ItemsAttrsView: ItemsAttrsView[V]{obj: obj},
		setter:         setter,
		deleter:        deleter,
	}, nil
}

// SetItem assigns the attribute named key.
func (v *MutableItemsAttrsView[V]) SetItem(key string, value V) error {
	if !IsPublic(key) {
		return keyError(key, nil)
	}
	if err := v.setter.SetAttr(key, value); err != nil {
		if errors.HasCode(err, errors.CodeAttributeNotFound) {
			return keyError(key, err)
		}
		return err
	}
	return nil
}

// DelItem deletes the attribute named key.
func (v *MutableItemsAttrsView[V]) DelItem(key string) error {
	if !IsPublic(key) {
		return keyError(key, nil)
	}
	if err := v.deleter.DelAttr(key); err != nil {
		if errors.HasCode(err, errors.CodeAttributeNotFound) {
			return keyError(key, err)
		}
		return err
	}
	return nil
}

var (
	_ Mapping[any]        = (*ItemsAttrsView[any])(nil)
	_ MutableMapping[any] = (*MutableItemsAttrsView[any])(nil)
)
