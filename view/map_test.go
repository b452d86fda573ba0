package view

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/travisclagrone/tclg/errors"
)

func TestMap(t *testing.T) {
	m := Map[int]{"a": 1}

	require.True(t, m.Contains("a"))
	require.False(t, m.Contains("b"))
	require.Equal(t, 1, m.Len())

	v, err := m.GetItem("a")
	require.NoError(t, err)
	require.Equal(t, 1, v)

	require.NoError(t, m.SetItem("b", 2))
	require.Equal(t, []string{"a", "b"}, slices.Sorted(m.Keys()))

	require.NoError(t, m.DelItem("a"))
	require.False(t, m.Contains("a"))
}

func TestMap_MissingKey(t *testing.T) {
	m := Map[int]{}

	_, err := m.GetItem("nope")
	require.Equal(t, errors.CodeKeyNotFound, errors.GetCode(err))
	key, ok := errors.GetContextValue(err, "key")
	require.True(t, ok)
	require.Equal(t, "nope", key)

	err = m.DelItem("nope")
	require.Equal(t, errors.CodeKeyNotFound, errors.GetCode(err))
}

func TestNamespace(t *testing.T) {
	src := map[string]string{"b": "2", "a": "1", "_c": "3"}
	ns := NewNamespace(src)

	// The namespace owns a copy.
	src["d"] = "4"
	require.Equal(t, []string{"_c", "a", "b"}, ns.Dir())

	v, ok := ns.GetAttribute("a")
	require.True(t, ok)
	require.Equal(t, "1", v)

	_, ok = ns.GetAttribute("zzz")
	require.False(t, ok)

	require.NoError(t, ns.SetAttr("z", "26"))
	require.NoError(t, ns.DelAttr("a"))
	require.Equal(t, []string{"_c", "b", "z"}, ns.Dir())

	_, err := ns.GetAttr("a")
	require.Equal(t, errors.CodeAttributeNotFound, errors.GetCode(err))
	require.Equal(t, errors.CodeAttributeNotFound, errors.GetCode(ns.DelAttr("a")))
}

func TestNamespace_ZeroValue(t *testing.T) {
	var ns Namespace[int]

	require.Empty(t, ns.Dir())
	_, err := ns.GetAttr("a")
	require.Equal(t, errors.CodeAttributeNotFound, errors.GetCode(err))
	require.Equal(t, errors.CodeAttributeNotFound, errors.GetCode(ns.DelAttr("a")))

	require.NoError(t, ns.SetAttr("a", 1))
	v, err := ns.GetAttr("a")
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestIsPublic(t *testing.T) {
	require.True(t, IsPublic("name"))
	require.True(t, IsPublic(""))
	require.False(t, IsPublic("_name"))
	require.False(t, IsPublic("__dunder__"))
}
