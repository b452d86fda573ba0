package fsutil

import (
	stderrors "errors"
	"io/fs"
	"syscall"
)

type rmOptions struct {
	missingOK bool
}

// RmOption configures Rm.
type RmOption func(*rmOptions)

// MissingOK sets whether a missing path is tolerated. The default is true.
func MissingOK(ok bool) RmOption {
	return func(o *rmOptions) {
		o.missingOK = ok
	}
}

// Rm removes the file or symbolic link at name. A symbolic link is removed
// itself, never its target. Directories are rejected.
func (f *FS) Rm(name string, opts ...RmOption) error {
	o := rmOptions{missingOK: true}
	for _, opt := range opts {
		opt(&o)
	}

	abs, err := f.Abs(name)
	if err != nil {
		return err
	}

	info, err := f.lstat(abs)
	if stderrors.Is(err, fs.ErrNotExist) {
		if o.missingOK {
			return nil
		}
		return err
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "unlink", Path: abs, Err: syscall.EISDIR}
	}

	if err := f.fsys.Remove(abs); err != nil {
		if o.missingOK && stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	f.logger.Debug("removed file", "op", "rm", "path", abs)
	return nil
}
