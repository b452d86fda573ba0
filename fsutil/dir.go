package fsutil

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"syscall"
)

var errLinkTree = stderrors.New("refusing to remove a tree through a symbolic link")

type mkdirOptions struct {
	perm   fs.FileMode
	unlink bool
	rmtree bool
}

// MkdirOption configures Mkdir.
type MkdirOption func(*mkdirOptions)

// WithMode sets the permission bits (before umask) for the directories
// Mkdir creates, overriding the FS default.
func WithMode(perm fs.FileMode) MkdirOption {
	return func(o *mkdirOptions) {
		o.perm = perm.Perm()
	}
}

// WithUnlink makes Mkdir first remove a file or symbolic link at the path.
func WithUnlink() MkdirOption {
	return func(o *mkdirOptions) {
		o.unlink = true
	}
}

// WithRmtree makes Mkdir first remove an existing directory at the path
// together with its content, leaving an empty directory behind.
func WithRmtree() MkdirOption {
	return func(o *mkdirOptions) {
		o.rmtree = true
	}
}

// Mkdir creates name and any missing parents. An existing directory is not
// an error. It returns name.
//
// With WithUnlink, a file or symbolic link at name is removed first. With
// WithRmtree, a directory at name is removed recursively first. Unlinking
// takes precedence when both apply.
func (f *FS) Mkdir(name string, opts ...MkdirOption) (string, error) {
	o := mkdirOptions{perm: f.dirPerm}
	for _, opt := range opts {
		opt(&o)
	}

	abs, err := f.Abs(name)
	if err != nil {
		return "", err
	}

	if o.unlink || o.rmtree {
		if err := f.clear(abs, o); err != nil {
			return "", err
		}
	}

	if err := f.fsys.MkdirAll(abs, o.perm); err != nil {
		return "", err
	}
	f.logger.Debug("created directory", "op", "mkdir", "path", abs, "perm", o.perm)
	return name, nil
}

// clear removes whatever Mkdir's options say must go before creating abs.
func (f *FS) clear(abs string, o mkdirOptions) error {
	linfo, err := f.lstat(abs)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	isLink := linfo.Mode()&fs.ModeSymlink != 0
	isFile := linfo.Mode().IsRegular()
	if isLink {
		if info, err := f.fsys.Stat(abs); err == nil {
			isFile = info.Mode().IsRegular()
		}
	}

	switch {
	case o.unlink && (isFile || isLink):
		if err := f.fsys.Remove(abs); err != nil {
			return err
		}
		f.logger.Debug("unlinked path", "op", "unlink", "path", abs)
	case o.rmtree && linfo.IsDir():
		if err := f.fsys.RemoveAll(abs); err != nil {
			return err
		}
		f.logger.Debug("removed tree", "op", "rmtree", "path", abs)
	case o.rmtree && isLink:
		if info, err := f.fsys.Stat(abs); err == nil && info.IsDir() {
			return &fs.PathError{Op: "rmtree", Path: abs, Err: errLinkTree}
		}
	}
	return nil
}

// Rmdir removes name if it is an empty directory. It reports whether
// anything was removed; a missing name yields ("", false, nil). A file or a
// non-empty directory is an error.
func (f *FS) Rmdir(name string) (string, bool, error) {
	abs, err := f.Abs(name)
	if err != nil {
		return "", false, err
	}

	info, err := f.fsys.Stat(abs)
	if stderrors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	if err := f.removeEmptyDir(abs, info); err != nil {
		return "", false, err
	}
	return name, true, nil
}

func (f *FS) removeEmptyDir(abs string, info fs.FileInfo) error {
	if !info.IsDir() {
		return &fs.PathError{Op: "rmdir", Path: abs, Err: syscall.ENOTDIR}
	}
	entries, err := f.fsys.ReadDir(abs)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return &fs.PathError{Op: "rmdir", Path: abs, Err: syscall.ENOTEMPTY}
	}
	if err := f.fsys.Remove(abs); err != nil {
		return err
	}
	f.logger.Debug("removed directory", "op", "rmdir", "path", abs)
	return nil
}

// Rmdirs removes name, if it exists, and then each ancestor in turn while
// it is an empty directory. It returns the removed paths, closest first.
//
// Missing ancestors are skipped. The walk stops silently at the first
// ancestor that cannot be removed; only a failure to remove name itself is
// returned as an error.
func (f *FS) Rmdirs(name string) ([]string, error) {
	var removed []string

	_, ok, err := f.Rmdir(name)
	if err != nil {
		return nil, err
	}
	if ok {
		removed = append(removed, name)
	}

	for _, parent := range ancestors(name) {
		abs, err := f.Abs(parent)
		if err != nil {
			f.logger.Debug("stopped pruning", "op", "rmdirs", "path", parent, "error", err)
			break
		}
		info, err := f.fsys.Stat(abs)
		if stderrors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err == nil {
			err = f.removeEmptyDir(abs, info)
		}
		if err != nil {
			f.logger.Debug("stopped pruning", "op", "rmdirs", "path", abs, "error", err)
			break
		}
		removed = append(removed, parent)
	}
	return removed, nil
}

// ancestors returns the parents of name in its own form, closest first,
// excluding "." and the filesystem root.
func ancestors(name string) []string {
	var parents []string
	current := filepath.Clean(name)
	for {
		parent := filepath.Dir(current)
		if parent == current || parent == "." {
			return parents
		}
		if filepath.Dir(parent) == parent {
			return parents
		}
		parents = append(parents, parent)
		current = parent
	}
}

// Lsdir returns the entries of name joined to name. An empty name lists the
// working directory and yields bare entry names. Entries come in the
// backend's enumeration order.
func (f *FS) Lsdir(name string) ([]string, error) {
	dir := name
	if dir == "" {
		dir = "."
	}
	abs, err := f.Abs(dir)
	if err != nil {
		return nil, err
	}

	entries, err := f.fsys.ReadDir(abs)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = filepath.Join(name, entry.Name())
	}
	return names, nil
}
