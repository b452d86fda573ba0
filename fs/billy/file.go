package billy

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"

	"github.com/travisclagrone/tclg/fs/core"
)

// File is an open handle from an FS. It keeps the name it was opened with
// because billy backends disagree on what billy.File.Name returns.
type File struct {
	file billy.File
	fs   billy.Basic
	name string
}

// Read reads from the file.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write writes to the file.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Seek sets the offset for the next Read or Write.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Close closes the file.
func (f *File) Close() error {
	return f.file.Close()
}

// Stat returns metadata for the file. billy.File has no Stat of its own, so
// this asks the filesystem.
func (f *File) Stat() (fs.FileInfo, error) {
	info, err := f.fs.Stat(f.name)
	return info, pathError("stat", f.name, err)
}

// Name returns the name the file was opened with.
func (f *File) Name() string {
	return f.name
}

var (
	_ core.File = (*File)(nil)
	_ io.Seeker = (*File)(nil)
)
