package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/travisclagrone/tclg/fs/core"
)

// FS adapts a billy.Filesystem to core.FS and core.LinkFS.
type FS struct {
	bfs  billy.Filesystem
	kind core.FSType
}

// NewLocal returns a filesystem over the host's disk, rooted at "/".
// Callers pass absolute paths.
func NewLocal() *FS {
	return &FS{bfs: osfs.New("/"), kind: core.FSTypeLocal}
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() *FS {
	return &FS{bfs: memfs.New(), kind: core.FSTypeMemory}
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Type reports whether the filesystem is local or in memory.
func (f *FS) Type() core.FSType {
	return f.kind
}

func normalize(name string) string {
	return path.Clean(filepath.ToSlash(name))
}

// pathError gives backend errors the *fs.PathError shape the osfs backend
// already produces. memfs returns bare sentinels.
func pathError(op, name string, err error) error {
	if err == nil {
		return nil
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return err
	}
	var le *os.LinkError
	if errors.As(err, &le) {
		return err
	}
	return &fs.PathError{Op: op, Path: name, Err: err}
}

type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }
func (d *dirEntry) String() string             { return fs.FormatDirEntry(d) }

// Open opens the named file for reading.
func (f *FS) Open(name string) (fs.File, error) {
	name = normalize(name)
	bf, err := f.bfs.Open(name)
	if err != nil {
		return nil, pathError("open", name, err)
	}
	return &File{file: bf, fs: f.bfs, name: name}, nil
}

// Stat returns metadata for name, following symbolic links.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	name = normalize(name)
	info, err := f.bfs.Stat(name)
	return info, pathError("stat", name, err)
}

// Lstat returns metadata for name without following a final symbolic link.
func (f *FS) Lstat(name string) (fs.FileInfo, error) {
	name = normalize(name)
	info, err := f.bfs.Lstat(name)
	return info, pathError("lstat", name, err)
}

// ReadDir returns the entries of the named directory sorted by name.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	name = normalize(name)
	infos, err := f.bfs.ReadDir(name)
	if err != nil {
		return nil, pathError("readdir", name, err)
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile returns the whole content of the named file.
func (f *FS) ReadFile(name string) ([]byte, error) {
	name = normalize(name)
	bf, err := f.bfs.Open(name)
	if err != nil {
		return nil, pathError("open", name, err)
	}
	defer func() { _ = bf.Close() }()
	data, err := io.ReadAll(bf)
	return data, pathError("read", name, err)
}

// Exists reports whether name exists. A dangling symbolic link exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.Lstat(name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// OpenFile opens name with the given os.O_* flags.
func (f *FS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	bf, err := f.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, pathError("open", name, err)
	}
	return &File{file: bf, fs: f.bfs, name: name}, nil
}

// WriteFile writes data to name, creating or truncating it.
func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) (err error) {
	file, err := f.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = file.Write(data)
	return err
}

// MkdirAll creates path and any missing parents.
func (f *FS) MkdirAll(name string, perm fs.FileMode) error {
	name = normalize(name)
	return pathError("mkdir", name, f.bfs.MkdirAll(name, perm))
}

// Remove removes a file, symbolic link or empty directory.
func (f *FS) Remove(name string) error {
	name = normalize(name)
	return pathError("remove", name, f.bfs.Remove(name))
}

// RemoveAll removes name and everything below it. Symbolic links are
// removed, never followed.
func (f *FS) RemoveAll(name string) error {
	name = normalize(name)
	info, err := f.bfs.Lstat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return pathError("lstat", name, err)
	}

	if info.IsDir() {
		entries, err := f.bfs.ReadDir(name)
		if err != nil {
			return pathError("readdir", name, err)
		}
		for _, entry := range entries {
			if err := f.RemoveAll(path.Join(name, entry.Name())); err != nil {
				return err
			}
		}
	}

	return f.Remove(name)
}

// Walk calls walkFn for root and every entry below it in lexical order.
func (f *FS) Walk(root string, walkFn fs.WalkDirFunc) error {
	root = normalize(root)
	info, err := f.Lstat(root)
	if err != nil {
		err = walkFn(root, nil, err)
	} else {
		err = f.walk(root, &dirEntry{info: info}, walkFn)
	}
	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func (f *FS) walk(name string, d fs.DirEntry, walkFn fs.WalkDirFunc) error {
	if err := walkFn(name, d, nil); err != nil || !d.IsDir() {
		if errors.Is(err, fs.SkipDir) && d.IsDir() {
			err = nil
		}
		return err
	}

	entries, err := f.ReadDir(name)
	if err != nil {
		if err = walkFn(name, d, err); err != nil {
			if errors.Is(err, fs.SkipDir) {
				err = nil
			}
			return err
		}
	}

	for _, entry := range entries {
		if err := f.walk(path.Join(name, entry.Name()), entry, walkFn); err != nil {
			if errors.Is(err, fs.SkipDir) {
				continue
			}
			return err
		}
	}
	return nil
}

// Symlink creates newname as a symbolic link to oldname.
func (f *FS) Symlink(oldname, newname string) error {
	newname = normalize(newname)
	if err := f.bfs.Symlink(oldname, newname); err != nil {
		var le *os.LinkError
		if errors.As(err, &le) {
			return err
		}
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: err}
	}
	return nil
}

// Readlink returns the target of the named symbolic link.
func (f *FS) Readlink(name string) (string, error) {
	name = normalize(name)
	target, err := f.bfs.Readlink(name)
	return target, pathError("readlink", name, err)
}

var (
	_ core.FS     = (*FS)(nil)
	_ core.LinkFS = (*FS)(nil)
)
