package view

import (
	"iter"
	"strings"

	"github.com/travisclagrone/tclg/capability"
)

// Mapping is the read-only mapping contract accepted by the attribute views.
//
// GetItem must fail with an error coded errors.CodeKeyNotFound when the key
// is absent; views translate only that code.
type Mapping[V any] interface {
	capability.SupportsGetItem[string, V]

	// Contains reports whether key is present.
	Contains(key string) bool

	// Keys iterates over every key, in no particular order.
	Keys() iter.Seq[string]

	// Len returns the number of entries.
	Len() int
}

// MutableMapping is a Mapping that also supports keyed assignment and deletion.
//
// DelItem must fail with an error coded errors.CodeKeyNotFound when the key
// is absent.
type MutableMapping[V any] interface {
	Mapping[V]
	capability.SupportsSetItem[string, V]
	capability.SupportsDelItem[string]
}

// Object is the read-only attribute contract accepted by the item views.
//
// GetAttr must fail with an error coded errors.CodeAttributeNotFound when
// the attribute is absent; views translate only that code.
type Object[V any] interface {
	capability.SupportsGetAttr[V]
	capability.SupportsDir
}

// MutableObject is an Object that also supports attribute assignment and deletion.
type MutableObject[V any] interface {
	Object[V]
	capability.SupportsSetAttr[V]
	capability.SupportsDelAttr
}

// IsPublic reports whether name is public, i.e. does not start with an underscore.
func IsPublic(name string) bool {
	return !strings.HasPrefix(name, "_")
}

// Dict copies every entry of m into a new Go map.
func Dict[V any](m Mapping[V]) (map[string]V, error) {
	out := make(map[string]V, m.Len())
	for key := range m.Keys() {
		v, err := m.GetItem(key)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}
