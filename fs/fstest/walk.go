package fstest

import (
	"errors"
	"io/fs"
	"path"
	"slices"
	"testing"

	"github.com/travisclagrone/tclg/fs/core"
)

// TestWalkFS checks Walk ordering and skipping.
func TestWalkFS(t *testing.T, filesystem core.FS, root string) {
	top := path.Join(root, "walk")
	mustMkdir(t, filesystem, path.Join(top, "sub"))
	mustWrite(t, filesystem, path.Join(top, "b.txt"), "b")
	mustWrite(t, filesystem, path.Join(top, "a.txt"), "a")
	mustWrite(t, filesystem, path.Join(top, "sub", "c.txt"), "c")

	t.Run("LexicalOrder", func(t *testing.T) {
		var got []string
		err := filesystem.Walk(top, func(name string, _ fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			got = append(got, name)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(%s): got error %v", top, err)
		}
		want := []string{
			top,
			path.Join(top, "a.txt"),
			path.Join(top, "b.txt"),
			path.Join(top, "sub"),
			path.Join(top, "sub", "c.txt"),
		}
		if !slices.Equal(got, want) {
			t.Errorf("Walk(%s): got %v, want %v", top, got, want)
		}
	})

	t.Run("SkipDir", func(t *testing.T) {
		var got []string
		err := filesystem.Walk(top, func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && d.Name() == "sub" {
				return fs.SkipDir
			}
			got = append(got, name)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(%s): got error %v", top, err)
		}
		if slices.Contains(got, path.Join(top, "sub", "c.txt")) {
			t.Errorf("Walk(%s): visited inside skipped directory: %v", top, got)
		}
	})

	t.Run("MissingRoot", func(t *testing.T) {
		missing := path.Join(root, "missing")
		err := filesystem.Walk(missing, func(_ string, _ fs.DirEntry, err error) error {
			return err
		})
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Walk(%s): got error %v, want fs.ErrNotExist", missing, err)
		}
	})
}
