package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travisclagrone/tclg/fs/core"
	"github.com/travisclagrone/tclg/fs/fstest"
)

func TestLocal_Conformance(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
		return NewLocal(), t.TempDir()
	})
}

func TestMemory_Conformance(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
		m := NewMemory()
		require.NoError(t, m.MkdirAll("/suite", 0o755))
		return m, "/suite"
	})
}

func TestFS_Type(t *testing.T) {
	assert.Equal(t, core.FSTypeLocal, NewLocal().Type())
	assert.Equal(t, core.FSTypeMemory, NewMemory().Type())
}

func TestFS_Unwrap(t *testing.T) {
	m := NewMemory()
	f, err := m.Unwrap().Create("/direct.txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("direct"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := m.ReadFile("/direct.txt")
	require.NoError(t, err)
	assert.Equal(t, "direct", string(data))
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"/a/b/../c": "/a/c",
		"/a//b/":    "/a/b",
		"/":         "/",
		"a/./b":     "a/b",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalize(in), in)
	}
}

func TestPathError(t *testing.T) {
	assert.NoError(t, pathError("stat", "/x", nil))

	err := pathError("stat", "/x", os.ErrNotExist)
	var pe *fs.PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "stat", pe.Op)
	assert.Equal(t, "/x", pe.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	orig := &fs.PathError{Op: "open", Path: "/y", Err: fs.ErrPermission}
	assert.Same(t, orig, pathError("stat", "/x", orig))
}

func TestMemory_ErrorsArePathErrors(t *testing.T) {
	m := NewMemory()

	_, err := m.Open("/missing")
	var pe *fs.PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "/missing", pe.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = m.Lstat("/missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFile_SeekAndStat(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.WriteFile("/seek.txt", []byte("0123456789"), 0o644))

	f, err := m.Open("/seek.txt")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	file, ok := f.(*File)
	require.True(t, ok)
	assert.Equal(t, "/seek.txt", file.Name())

	_, err = file.Seek(5, io.SeekStart)
	require.NoError(t, err)
	rest, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "56789", string(rest))

	info, err := file.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(10), info.Size())
}

func TestRemoveAll_DoesNotFollowLinks(t *testing.T) {
	for name, newFS := range map[string]func(t *testing.T) (*FS, string){
		"local": func(t *testing.T) (*FS, string) { return NewLocal(), t.TempDir() },
		"memory": func(t *testing.T) (*FS, string) {
			return NewMemory(), "/work"
		},
	} {
		t.Run(name, func(t *testing.T) {
			f, root := newFS(t)
			keep := path.Join(root, "keep")
			tree := path.Join(root, "tree")
			require.NoError(t, f.MkdirAll(keep, 0o755))
			require.NoError(t, f.WriteFile(path.Join(keep, "precious.txt"), []byte("x"), 0o644))
			require.NoError(t, f.MkdirAll(tree, 0o755))
			require.NoError(t, f.Symlink(keep, path.Join(tree, "link")))

			require.NoError(t, f.RemoveAll(tree))

			ok, err := f.Exists(tree)
			require.NoError(t, err)
			assert.False(t, ok)
			ok, err = f.Exists(path.Join(keep, "precious.txt"))
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestSymlink_ExistingName(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.WriteFile("/taken", []byte("x"), 0o644))

	err := m.Symlink("/anything", "/taken")
	require.Error(t, err)
	var le *os.LinkError
	assert.True(t, errors.As(err, &le) || errors.Is(err, fs.ErrExist))
}
