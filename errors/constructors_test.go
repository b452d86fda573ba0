package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeKeyNotFound, "key not found")

	require.NotNil(t, err)
	require.Equal(t, CodeKeyNotFound, err.Code())
	require.Equal(t, "key not found", err.Message())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[KEY_NOT_FOUND] key not found", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidType, "expected string or []byte, found %T", 42)

	require.Equal(t, CodeInvalidType, err.Code())
	require.Equal(t, "expected string or []byte, found int", err.Message())
}

func TestNewWithContext(t *testing.T) {
	ctx := map[string]interface{}{"name": "color"}
	err := NewWithContext(CodeAttributeNotFound, "no attribute", ctx)

	// Mutating the input map must not leak into the error.
	ctx["name"] = "changed"

	require.Equal(t, "color", err.Context()["name"])
}

func TestNewWithContext_NilContext(t *testing.T) {
	err := NewWithContext(CodeUnknown, "unknown", nil)
	require.Nil(t, err.Context())
}
