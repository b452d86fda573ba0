package fsutil

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/travisclagrone/tclg/fs/core"
)

const maxLinkHops = 40

// Chdir changes the working directory to name, or to the home directory
// when name is empty, and returns the new working directory with symbolic
// links resolved.
//
// On the local filesystem this changes the process working directory.
func (f *FS) Chdir(name string) (string, error) {
	if name == "" {
		home, err := f.Home()
		if err != nil {
			return "", err
		}
		name = home
	}

	abs, err := f.Abs(name)
	if err != nil {
		return "", err
	}

	if f.local() {
		if err := os.Chdir(abs); err != nil {
			return "", err
		}
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return "", err
		}
		f.logger.Debug("changed directory", "op", "chdir", "path", resolved)
		return resolved, nil
	}

	resolved, err := f.resolve(abs)
	if err != nil {
		return "", err
	}
	info, err := f.fsys.Stat(resolved)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", &fs.PathError{Op: "chdir", Path: abs, Err: syscall.ENOTDIR}
	}
	f.wd = resolved
	f.logger.Debug("changed directory", "op", "chdir", "path", resolved)
	return resolved, nil
}

// realPath returns abs with every symbolic link in it resolved.
func (f *FS) realPath(abs string) (string, error) {
	if f.local() {
		return filepath.EvalSymlinks(abs)
	}
	return f.resolve(abs)
}

// resolve returns abs with every symbolic link in it replaced by its
// target. Backends without links return abs unchanged.
func (f *FS) resolve(abs string) (string, error) {
	lfs, ok := f.fsys.(core.LinkFS)
	if !ok {
		return abs, nil
	}

	resolved := "/"
	pending := strings.Split(abs, "/")
	for hops := 0; len(pending) > 0; {
		part := pending[0]
		pending = pending[1:]

		switch part {
		case "", ".":
			continue
		case "..":
			resolved = path.Dir(resolved)
			continue
		}

		next := path.Join(resolved, part)
		info, err := lfs.Lstat(next)
		if err != nil {
			return "", err
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			resolved = next
			continue
		}

		hops++
		if hops > maxLinkHops {
			return "", &fs.PathError{Op: "chdir", Path: abs, Err: syscall.ELOOP}
		}
		target, err := lfs.Readlink(next)
		if err != nil {
			return "", err
		}
		target = filepath.ToSlash(target)
		if path.IsAbs(target) {
			resolved = "/"
		}
		pending = append(strings.Split(target, "/"), pending...)
	}
	return resolved, nil
}
