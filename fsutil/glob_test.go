package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travisclagrone/tclg/errors"
	"github.com/travisclagrone/tclg/fs/billy"
)

func newGlobTree(t *testing.T) *FS {
	t.Helper()
	f := newMemory(t)
	for _, name := range []string{
		"/g/a.txt",
		"/g/b.log",
		"/g/.hidden.txt",
		"/g/sub/c.txt",
		"/g/sub/deep/d.txt",
		"/g/sub/deep/e.log",
	} {
		writeFile(t, f, name, name)
	}
	return f
}

func TestGlob(t *testing.T) {
	f := newGlobTree(t)

	tests := []struct {
		pattern string
		want    []string
	}{
		{"*.txt", []string{"/g/.hidden.txt", "/g/a.txt"}},
		{"?.log", []string{"/g/b.log"}},
		{"*", []string{"/g/.hidden.txt", "/g/a.txt", "/g/b.log", "/g/sub"}},
		{"*/*.txt", []string{"/g/sub/c.txt"}},
		{"sub/deep/[de].*", []string{"/g/sub/deep/d.txt", "/g/sub/deep/e.log"}},
		{"**/*.txt", []string{"/g/.hidden.txt", "/g/a.txt", "/g/sub/c.txt", "/g/sub/deep/d.txt"}},
		{"sub/**/*.log", []string{"/g/sub/deep/e.log"}},
		{"*.md", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := f.Glob(tt.pattern, "/g")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGlob_WorkingDirectory(t *testing.T) {
	f := newGlobTree(t)
	_, err := f.Chdir("/g/sub")
	require.NoError(t, err)

	got, err := f.Glob("*.txt", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"c.txt"}, got)

	got, err = f.Glob("*.txt", "deep")
	require.NoError(t, err)
	assert.Equal(t, []string{"deep/d.txt"}, got)
}

func TestGlob_Errors(t *testing.T) {
	f := newGlobTree(t)

	for _, pattern := range []string{"", "/g/*.txt"} {
		_, err := f.Glob(pattern, "/g")
		assert.True(t, errors.HasCode(err, errors.CodeInvalidInput), "pattern %q: %v", pattern, err)
	}

	_, err := f.Glob("*", "/missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRglob(t *testing.T) {
	f := newGlobTree(t)

	var got []string
	for match, err := range f.Rglob("*.log", "/g") {
		require.NoError(t, err)
		got = append(got, match)
	}
	assert.Equal(t, []string{"/g/b.log", "/g/sub/deep/e.log"}, got)

	got = nil
	for match, err := range f.Rglob("deep/*", "/g") {
		require.NoError(t, err)
		got = append(got, match)
	}
	assert.Equal(t, []string{"/g/sub/deep/d.txt", "/g/sub/deep/e.log"}, got)
}

func TestRglob_Lazy(t *testing.T) {
	f := newGlobTree(t)

	var first string
	for match, err := range f.Rglob("*.txt", "/g") {
		require.NoError(t, err)
		first = match
		break
	}
	assert.Equal(t, "/g/.hidden.txt", first)
}

func TestRglob_ErrorEndsSequence(t *testing.T) {
	f := newGlobTree(t)

	var errs []error
	for match, err := range f.Rglob("*", "/missing") {
		assert.Empty(t, match)
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], fs.ErrNotExist)
}

func TestGlob_SymlinkRoot(t *testing.T) {
	f := newMemory(t)
	writeFile(t, f, "/real/a.txt", "a")
	writeFile(t, f, "/real/sub/b.txt", "b")
	lfs := f.Unwrap().(*billy.FS)
	require.NoError(t, lfs.Symlink("/real", "/link"))
	require.NoError(t, lfs.Symlink("/real", "/real/back"))

	got, err := f.Glob("*.txt", "/link")
	require.NoError(t, err)
	assert.Equal(t, []string{"/link/a.txt"}, got)

	listed, err := f.Lsdir("/link")
	require.NoError(t, err)
	assert.Contains(t, listed, "/link/a.txt")

	var all []string
	for match, err := range f.Rglob("*.txt", "/link") {
		require.NoError(t, err)
		all = append(all, match)
	}
	assert.Equal(t, []string{"/link/a.txt", "/link/sub/b.txt"}, all)

	got, err = f.Glob("back", "/link")
	require.NoError(t, err)
	assert.Equal(t, []string{"/link/back"}, got)
}

func TestGlob_LocalSymlinkRoot(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "real"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "real", "a.go"), nil, 0o644))
	link := filepath.Join(base, "link")
	require.NoError(t, os.Symlink(filepath.Join(base, "real"), link))

	got, err := Local().Glob("*.go", link)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(link, "a.go")}, got)
}

func TestGlob_Local(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "x", "y"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "x", "y", "z.go"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "top.go"), nil, 0o644))

	got, err := Local().Glob("*.go", base)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(base, "top.go")}, got)

	var all []string
	for match, err := range Local().Rglob("*.go", base) {
		require.NoError(t, err)
		all = append(all, match)
	}
	assert.Equal(t, []string{filepath.Join(base, "top.go"), filepath.Join(base, "x", "y", "z.go")}, all)
}
