// Package fstest provides a conformance suite for core.FS implementations.
//
// Each group runs against a fresh filesystem and a root directory inside
// it, so disk-backed implementations can be tested under t.TempDir():
//
//	func TestLocal(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
//	        return billy.NewLocal(), t.TempDir()
//	    })
//	}
//
// Filesystems that implement core.LinkFS also run the symbolic link group.
package fstest

import (
	"testing"

	"github.com/travisclagrone/tclg/fs/core"
)

// Factory returns a filesystem and an existing, empty absolute directory in
// it that the tests may populate.
type Factory func(t *testing.T) (filesystem core.FS, root string)

// TestSuite runs every applicable conformance group.
func TestSuite(t *testing.T, newFS Factory) {
	t.Run("ReadFS", func(t *testing.T) {
		filesystem, root := newFS(t)
		TestReadFS(t, filesystem, root)
	})
	t.Run("WriteFS", func(t *testing.T) {
		filesystem, root := newFS(t)
		TestWriteFS(t, filesystem, root)
	})
	t.Run("ManageFS", func(t *testing.T) {
		filesystem, root := newFS(t)
		TestManageFS(t, filesystem, root)
	})
	t.Run("WalkFS", func(t *testing.T) {
		filesystem, root := newFS(t)
		TestWalkFS(t, filesystem, root)
	})
	t.Run("LinkFS", func(t *testing.T) {
		filesystem, root := newFS(t)
		TestLinkFS(t, filesystem, root)
	})
}

// mustWrite creates name with data or stops the test.
func mustWrite(t *testing.T, filesystem core.FS, name, data string) {
	t.Helper()
	if err := filesystem.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}
}

// mustMkdir creates name and its parents or stops the test.
func mustMkdir(t *testing.T, filesystem core.FS, name string) {
	t.Helper()
	if err := filesystem.MkdirAll(name, 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): setup failed: %v", name, err)
	}
}
