package core

import (
	"errors"
	"io/fs"
)

// Re-exported from io/fs so callers of this package need not import both.
var (
	ErrNotExist   = fs.ErrNotExist
	ErrExist      = fs.ErrExist
	ErrPermission = fs.ErrPermission
	ErrClosed     = fs.ErrClosed
)

// ErrUnsupported is returned when a backend cannot perform an operation,
// such as symbolic links on a filesystem without them.
var ErrUnsupported = errors.New("operation not supported")
