package fstest

import (
	"errors"
	"io/fs"
	"path"
	"testing"

	"github.com/travisclagrone/tclg/fs/core"
)

// TestManageFS checks Remove and RemoveAll.
func TestManageFS(t *testing.T, filesystem core.FS, root string) {
	t.Run("RemoveFile", func(t *testing.T) {
		name := path.Join(root, "gone.txt")
		mustWrite(t, filesystem, name, "x")
		if err := filesystem.Remove(name); err != nil {
			t.Fatalf("Remove(%s): got error %v", name, err)
		}
		if ok, _ := filesystem.Exists(name); ok {
			t.Errorf("Exists(%s) after Remove: got true", name)
		}
	})

	t.Run("RemoveEmptyDir", func(t *testing.T) {
		name := path.Join(root, "empty")
		mustMkdir(t, filesystem, name)
		if err := filesystem.Remove(name); err != nil {
			t.Errorf("Remove(%s): got error %v", name, err)
		}
	})

	t.Run("RemoveNonEmptyDir", func(t *testing.T) {
		name := path.Join(root, "full")
		mustMkdir(t, filesystem, name)
		mustWrite(t, filesystem, path.Join(name, "f.txt"), "x")
		if err := filesystem.Remove(name); err == nil {
			t.Errorf("Remove(%s) on non-empty directory: got nil error", name)
		}
	})

	t.Run("RemoveMissing", func(t *testing.T) {
		name := path.Join(root, "missing")
		if err := filesystem.Remove(name); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(%s): got error %v, want fs.ErrNotExist", name, err)
		}
	})

	t.Run("RemoveAll", func(t *testing.T) {
		name := path.Join(root, "tree")
		mustMkdir(t, filesystem, path.Join(name, "x", "y"))
		mustWrite(t, filesystem, path.Join(name, "x", "y", "z.txt"), "z")
		mustWrite(t, filesystem, path.Join(name, "top.txt"), "t")

		if err := filesystem.RemoveAll(name); err != nil {
			t.Fatalf("RemoveAll(%s): got error %v", name, err)
		}
		if ok, _ := filesystem.Exists(name); ok {
			t.Errorf("Exists(%s) after RemoveAll: got true", name)
		}
		if err := filesystem.RemoveAll(name); err != nil {
			t.Errorf("RemoveAll(%s) on missing path: got error %v, want nil", name, err)
		}
	})
}
