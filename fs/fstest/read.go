package fstest

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"testing"

	"github.com/travisclagrone/tclg/fs/core"
)

// TestReadFS checks Open, Stat, ReadDir, ReadFile and Exists.
func TestReadFS(t *testing.T, filesystem core.FS, root string) {
	file := path.Join(root, "read.txt")
	dir := path.Join(root, "dir")
	missing := path.Join(root, "missing")
	mustWrite(t, filesystem, file, "hello")
	mustMkdir(t, filesystem, dir)
	mustWrite(t, filesystem, path.Join(dir, "b.txt"), "b")
	mustWrite(t, filesystem, path.Join(dir, "a.txt"), "a")

	t.Run("Open", func(t *testing.T) {
		f, err := filesystem.Open(file)
		if err != nil {
			t.Fatalf("Open(%s): got error %v, want nil", file, err)
		}
		defer func() { _ = f.Close() }()
		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll: got error %v", err)
		}
		if string(data) != "hello" {
			t.Errorf("ReadAll: got %q, want %q", data, "hello")
		}
	})

	t.Run("Stat", func(t *testing.T) {
		info, err := filesystem.Stat(file)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v, want nil", file, err)
		}
		if info.Name() != "read.txt" || info.IsDir() || info.Size() != 5 {
			t.Errorf("Stat(%s): got name=%q dir=%v size=%d", file, info.Name(), info.IsDir(), info.Size())
		}

		info, err = filesystem.Stat(dir)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v, want nil", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%s): got IsDir false, want true", dir)
		}
	})

	t.Run("StatMissing", func(t *testing.T) {
		_, err := filesystem.Stat(missing)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%s): got error %v, want fs.ErrNotExist", missing, err)
		}
		var pe *fs.PathError
		if !errors.As(err, &pe) {
			t.Errorf("Stat(%s): got %T, want *fs.PathError", missing, err)
		}
	})

	t.Run("ReadDirSorted", func(t *testing.T) {
		entries, err := filesystem.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir(%s): got error %v, want nil", dir, err)
		}
		if len(entries) != 2 || entries[0].Name() != "a.txt" || entries[1].Name() != "b.txt" {
			t.Errorf("ReadDir(%s): got %v, want [a.txt b.txt]", dir, entries)
		}
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile(file)
		if err != nil {
			t.Fatalf("ReadFile(%s): got error %v, want nil", file, err)
		}
		if string(data) != "hello" {
			t.Errorf("ReadFile(%s): got %q, want %q", file, data, "hello")
		}
		if _, err := filesystem.ReadFile(missing); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadFile(%s): got error %v, want fs.ErrNotExist", missing, err)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		for name, want := range map[string]bool{file: true, dir: true, missing: false} {
			got, err := filesystem.Exists(name)
			if err != nil {
				t.Errorf("Exists(%s): got error %v, want nil", name, err)
			}
			if got != want {
				t.Errorf("Exists(%s): got %v, want %v", name, got, want)
			}
		}
	})
}
