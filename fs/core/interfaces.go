package core

import (
	"io"
	"io/fs"
)

// FSType identifies the storage behind an FS.
type FSType int

const (
	// FSTypeUnknown is the zero value.
	FSTypeUnknown FSType = iota
	// FSTypeLocal is the process's own filesystem. Relative paths on a local
	// FS follow the process working directory.
	FSTypeLocal
	// FSTypeMemory is a private in-memory tree.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the filesystem contract the path and I/O helpers are written
// against. It embeds fs.FS so an FS can be handed to fs.WalkDir,
// fs.ReadFile and friends.
//
// Paths are slash-separated and absolute. Implementations report failures
// as *fs.PathError wrapping the fs sentinel errors, so callers can use
// errors.Is(err, fs.ErrNotExist) regardless of backend.
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS
	WalkFS

	// Type returns the storage behind the filesystem.
	Type() FSType
}

// ReadFS defines read-only operations.
type ReadFS interface {
	// Stat returns metadata for name, following symbolic links.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of the named directory sorted by name.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile returns the whole content of the named file.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether name exists. A false result with a non-nil
	// error means existence could not be determined.
	Exists(name string) (bool, error)
}

// WriteFS defines operations that create files and directories.
type WriteFS interface {
	// OpenFile opens name with the given os.O_* flags, creating it with perm
	// (before umask) when os.O_CREATE is set.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to name, truncating an existing file.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates path and any missing parents. An existing directory
	// is not an error.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines removal operations.
type ManageFS interface {
	// Remove removes the named file, symbolic link or empty directory.
	Remove(name string) error

	// RemoveAll removes path and everything below it. A missing path is not
	// an error.
	RemoveAll(path string) error
}

// WalkFS defines tree traversal.
type WalkFS interface {
	// Walk calls walkFn for root and every entry below it in lexical order.
	// Symbolic links are reported but not followed. fs.SkipDir and
	// fs.SkipAll behave as they do for fs.WalkDir.
	Walk(root string, walkFn fs.WalkDirFunc) error
}

// LinkFS is implemented by filesystems that can represent symbolic links.
//
//	if lfs, ok := filesystem.(core.LinkFS); ok {
//	    info, err := lfs.Lstat(name)
//	}
type LinkFS interface {
	// Lstat returns metadata for name without following a final symbolic
	// link.
	Lstat(name string) (fs.FileInfo, error)

	// Symlink creates newname as a symbolic link to oldname. The target is
	// stored as given and need not exist.
	Symlink(oldname, newname string) error

	// Readlink returns the target of the named symbolic link.
	Readlink(name string) (string, error)
}

// File is an open file handle. It extends fs.File with writing.
type File interface {
	fs.File
	io.Writer

	// Name returns the name the file was opened with.
	Name() string
}
