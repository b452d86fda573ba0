package fstest

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"testing"

	"github.com/travisclagrone/tclg/fs/core"
)

// TestWriteFS checks OpenFile, WriteFile and MkdirAll.
func TestWriteFS(t *testing.T, filesystem core.FS, root string) {
	t.Run("WriteFileTruncates", func(t *testing.T) {
		name := path.Join(root, "truncate.txt")
		mustWrite(t, filesystem, name, "long content")
		mustWrite(t, filesystem, name, "short")

		data, err := filesystem.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%s): got error %v", name, err)
		}
		if string(data) != "short" {
			t.Errorf("ReadFile(%s): got %q, want %q", name, data, "short")
		}
	})

	t.Run("OpenFileAppend", func(t *testing.T) {
		name := path.Join(root, "append.txt")
		mustWrite(t, filesystem, name, "one")

		f, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(%s, O_APPEND): got error %v", name, err)
		}
		if _, err := f.Write([]byte("two")); err != nil {
			t.Fatalf("Write: got error %v", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close: got error %v", err)
		}

		data, err := filesystem.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%s): got error %v", name, err)
		}
		if string(data) != "onetwo" {
			t.Errorf("ReadFile(%s): got %q, want %q", name, data, "onetwo")
		}
	})

	t.Run("OpenFileName", func(t *testing.T) {
		name := path.Join(root, "named.txt")
		f, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(%s): got error %v", name, err)
		}
		defer func() { _ = f.Close() }()
		if f.Name() != name {
			t.Errorf("Name(): got %q, want %q", f.Name(), name)
		}
	})

	t.Run("OpenFileExclusive", func(t *testing.T) {
		name := path.Join(root, "exclusive.txt")
		mustWrite(t, filesystem, name, "x")
		_, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			t.Errorf("OpenFile(%s, O_EXCL): got nil error for existing file", name)
		}
	})

	t.Run("MkdirAll", func(t *testing.T) {
		name := path.Join(root, "a", "b", "c")
		if err := filesystem.MkdirAll(name, 0o755); err != nil {
			t.Fatalf("MkdirAll(%s): got error %v", name, err)
		}
		for _, dir := range []string{path.Join(root, "a"), path.Join(root, "a", "b"), name} {
			info, err := filesystem.Stat(dir)
			if err != nil || !info.IsDir() {
				t.Errorf("Stat(%s): got err=%v, want a directory", dir, err)
			}
		}
		if err := filesystem.MkdirAll(name, 0o755); err != nil {
			t.Errorf("MkdirAll(%s) on existing directory: got error %v, want nil", name, err)
		}
	})

	t.Run("MkdirAllOverFile", func(t *testing.T) {
		name := path.Join(root, "occupied")
		mustWrite(t, filesystem, name, "x")
		if err := filesystem.MkdirAll(name, 0o755); err == nil {
			t.Errorf("MkdirAll(%s) over a file: got nil error", name)
		}
		var pe *fs.PathError
		if err := filesystem.MkdirAll(name, 0o755); err != nil && !errors.As(err, &pe) {
			t.Errorf("MkdirAll(%s) over a file: got %T, want *fs.PathError", name, err)
		}
	})
}
