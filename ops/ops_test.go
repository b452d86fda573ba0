package ops

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/travisclagrone/tclg/errors"
	"github.com/travisclagrone/tclg/view"
)

func TestAttrDeleter(t *testing.T) {
	ns := view.NewNamespace(map[string]int{"a": 1, "b": 2})

	require.NoError(t, NewAttrDeleter("a").Apply(ns))
	require.Equal(t, []string{"b"}, ns.Dir())
}

func TestAttrDeleter_PropagatesTargetError(t *testing.T) {
	ns := view.NewNamespace[int](nil)

	err := NewAttrDeleter("missing").Apply(ns)
	require.Error(t, err)
	require.Equal(t, errors.CodeAttributeNotFound, errors.GetCode(err))
}

func TestAttrSetter(t *testing.T) {
	ns := view.NewNamespace[string](nil)
	set := NewAttrSetter("color", "blue")

	require.Equal(t, "color", set.Name())
	require.Equal(t, "blue", set.Value())
	require.NoError(t, set.Func()(ns))

	v, err := ns.GetAttr("color")
	require.NoError(t, err)
	require.Equal(t, "blue", v)
}

func TestItemDeleter(t *testing.T) {
	m := view.Map[int]{"a": 1, "b": 2}

	require.NoError(t, NewItemDeleter("a").Apply(m))
	require.Equal(t, view.Map[int]{"b": 2}, m)
}

func TestItemDeleter_PropagatesTargetError(t *testing.T) {
	m := view.Map[int]{}

	err := NewItemDeleter("missing").Apply(m)
	require.Error(t, err)
	require.Equal(t, errors.CodeKeyNotFound, errors.GetCode(err))
}

func TestItemSetter(t *testing.T) {
	m := view.Map[int]{}
	set := NewItemSetter("a", 7)

	require.Equal(t, "a", set.Key())
	require.Equal(t, 7, set.Value())
	require.NoError(t, set.Apply(m))
	require.Equal(t, 7, m["a"])
}

type sliceSetter []string

func (s sliceSetter) SetItem(i int, v string) error {
	s[i] = v
	return nil
}

func TestItemSetter_NonStringKey(t *testing.T) {
	s := sliceSetter{"a", "b"}

	require.NoError(t, NewItemSetter(1, "z").Apply(s))
	require.Equal(t, sliceSetter{"a", "z"}, s)
}

func TestBuildersAreReusable(t *testing.T) {
	set := NewItemSetter("k", 1)
	first, second := view.Map[int]{}, view.Map[int]{}

	require.NoError(t, set.Apply(first))
	require.NoError(t, set.Apply(second))
	require.Equal(t, first, second)
}
