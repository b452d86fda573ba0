package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	sentinel := New(CodeKeyNotFound, "not found")
	wrapped := Wrap(sentinel, CodeAttributeNotFound, "no attribute")

	require.True(t, Is(wrapped, sentinel))

	other := New(CodeInvalidInput, "invalid")
	require.False(t, Is(wrapped, other))
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeKeyNotFound, "not found"))

	var coded CodedError
	require.True(t, As(err, &coded))
	require.Equal(t, CodeKeyNotFound, coded.Code())
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "nil error",
			err:  nil,
			want: CodeUnknown,
		},
		{
			name: "standard error",
			err:  stderrors.New("plain"),
			want: CodeUnknown,
		},
		{
			name: "coded error",
			err:  New(CodeInvalidType, "bad type"),
			want: CodeInvalidType,
		},
		{
			name: "outermost code wins",
			err:  Wrap(New(CodeKeyNotFound, "inner"), CodeAttributeNotFound, "outer"),
			want: CodeAttributeNotFound,
		},
		{
			name: "wrapped by fmt",
			err:  fmt.Errorf("context: %w", New(CodeInvalidInput, "bad")),
			want: CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestHasCode(t *testing.T) {
	require.False(t, HasCode(nil, CodeUnknown))
	require.True(t, HasCode(New(CodeKeyNotFound, "x"), CodeKeyNotFound))
	require.False(t, HasCode(New(CodeKeyNotFound, "x"), CodeAttributeNotFound))
}

func TestGetContextValue(t *testing.T) {
	err := NewWithContext(CodeKeyNotFound, "key not found", map[string]interface{}{"key": "color"})

	v, ok := GetContextValue(err, "key")
	require.True(t, ok)
	require.Equal(t, "color", v)

	_, ok = GetContextValue(err, "missing")
	require.False(t, ok)

	_, ok = GetContextValue(stderrors.New("plain"), "key")
	require.False(t, ok)
}
