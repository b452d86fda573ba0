package fstest

import (
	"errors"
	"io/fs"
	"path"
	"testing"

	"github.com/travisclagrone/tclg/fs/core"
)

// TestLinkFS checks symbolic links. It skips filesystems that do not
// implement core.LinkFS.
func TestLinkFS(t *testing.T, filesystem core.FS, root string) {
	lfs, ok := filesystem.(core.LinkFS)
	if !ok {
		t.Skip("core.LinkFS not supported")
	}

	target := path.Join(root, "target.txt")
	mustWrite(t, filesystem, target, "through the link")

	t.Run("ReadThrough", func(t *testing.T) {
		link := path.Join(root, "link.txt")
		if err := lfs.Symlink(target, link); err != nil {
			t.Fatalf("Symlink(%s, %s): got error %v", target, link, err)
		}

		got, err := lfs.Readlink(link)
		if err != nil {
			t.Fatalf("Readlink(%s): got error %v", link, err)
		}
		if got != target {
			t.Errorf("Readlink(%s): got %q, want %q", link, got, target)
		}

		data, err := filesystem.ReadFile(link)
		if err != nil {
			t.Fatalf("ReadFile(%s): got error %v", link, err)
		}
		if string(data) != "through the link" {
			t.Errorf("ReadFile(%s): got %q", link, data)
		}

		info, err := lfs.Lstat(link)
		if err != nil {
			t.Fatalf("Lstat(%s): got error %v", link, err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			t.Errorf("Lstat(%s): got mode %v, want a symbolic link", link, info.Mode())
		}
	})

	t.Run("Dangling", func(t *testing.T) {
		link := path.Join(root, "dangling")
		if err := lfs.Symlink(path.Join(root, "nowhere"), link); err != nil {
			t.Fatalf("Symlink: got error %v", err)
		}
		if _, err := lfs.Lstat(link); err != nil {
			t.Errorf("Lstat(%s): got error %v, want nil", link, err)
		}
		if _, err := filesystem.Stat(link); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%s): got error %v, want fs.ErrNotExist", link, err)
		}
		if ok, err := filesystem.Exists(link); err != nil || !ok {
			t.Errorf("Exists(%s): got %v, %v, want true, nil", link, ok, err)
		}
	})

	t.Run("RemoveLinkKeepsTarget", func(t *testing.T) {
		link := path.Join(root, "removable")
		if err := lfs.Symlink(target, link); err != nil {
			t.Fatalf("Symlink: got error %v", err)
		}
		if err := filesystem.Remove(link); err != nil {
			t.Fatalf("Remove(%s): got error %v", link, err)
		}
		if ok, _ := filesystem.Exists(target); !ok {
			t.Errorf("Exists(%s) after removing link: got false", target)
		}
	})
}
