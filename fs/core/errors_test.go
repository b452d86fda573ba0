package core_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/travisclagrone/tclg/fs/core"
)

func TestErrors_MatchStdlib(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		stdlib error
	}{
		{"ErrNotExist", core.ErrNotExist, fs.ErrNotExist},
		{"ErrExist", core.ErrExist, fs.ErrExist},
		{"ErrPermission", core.ErrPermission, fs.ErrPermission},
		{"ErrClosed", core.ErrClosed, fs.ErrClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.stdlib)
			assert.ErrorIs(t, &fs.PathError{Op: "open", Path: "/x", Err: tt.err}, tt.stdlib)
		})
	}
}

func TestErrUnsupported_Distinct(t *testing.T) {
	assert.EqualError(t, core.ErrUnsupported, "operation not supported")
	for _, other := range []error{fs.ErrNotExist, fs.ErrExist, fs.ErrPermission, fs.ErrClosed} {
		assert.False(t, errors.Is(core.ErrUnsupported, other))
	}
}
