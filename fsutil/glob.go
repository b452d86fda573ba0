package fsutil

import (
	stderrors "errors"
	"io/fs"
	"iter"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/travisclagrone/tclg/errors"
)

// matcher matches slash-separated paths relative to a glob root.
type matcher struct {
	globs []glob.Glob
	depth int // 0 means unlimited
}

// compile builds a matcher for pattern. "*", "?" and character classes
// never cross a "/", while "**" matches any number of path segments. A
// leading "**/" also matches zero segments. When recursive is set the
// pattern may match at any depth, like a pattern prefixed with "**/".
func compile(pattern string, recursive bool) (*matcher, error) {
	pattern = filepath.ToSlash(pattern)
	if pattern == "" || path.IsAbs(pattern) {
		return nil, errors.NewWithContext(errors.CodeInvalidInput, "glob pattern must be a non-empty relative pattern",
			map[string]interface{}{"pattern": pattern})
	}

	sources := []string{pattern}
	if recursive && !strings.HasPrefix(pattern, "**/") {
		sources = append(sources, "**/"+pattern)
	}
	for strings.HasPrefix(pattern, "**/") {
		pattern = strings.TrimPrefix(pattern, "**/")
		sources = append(sources, pattern)
	}

	m := &matcher{}
	if !recursive && !strings.Contains(sources[0], "**") {
		m.depth = strings.Count(sources[0], "/") + 1
	}
	for _, src := range sources {
		g, err := glob.Compile(src, '/')
		if err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "invalid glob pattern",
				map[string]interface{}{"pattern": src})
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

func (m *matcher) match(rel string) bool {
	for _, g := range m.globs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// Glob returns the paths below root that match pattern, joined to root. An
// empty root means the working directory and yields relative paths.
// Matches come in lexical walk order. A root that is a symbolic link is
// followed; links below the root are matched but not followed.
func (f *FS) Glob(pattern, root string) ([]string, error) {
	var matches []string
	for match, err := range f.glob(pattern, root, false) {
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// Rglob is Glob with pattern matched at any depth below root. The sequence
// is lazy and walks the tree once; iterating it again walks again. The
// first error, including an invalid pattern, is yielded and ends the
// sequence.
func (f *FS) Rglob(pattern, root string) iter.Seq2[string, error] {
	return f.glob(pattern, root, true)
}

func (f *FS) glob(pattern, root string, recursive bool) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		m, err := compile(pattern, recursive)
		if err != nil {
			yield("", err)
			return
		}

		dir := root
		if dir == "" {
			dir = "."
		}
		abs, err := f.Abs(dir)
		if err != nil {
			yield("", err)
			return
		}
		// The root is followed when it is a link; links below it are not.
		abs, err = f.realPath(abs)
		if err != nil {
			yield("", err)
			return
		}

		stopped := false
		err = f.fsys.Walk(abs, func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if name == abs {
				return nil
			}
			rel := strings.TrimPrefix(name, strings.TrimSuffix(abs, "/")+"/")
			if m.match(rel) && !yield(filepath.Join(root, filepath.FromSlash(rel)), nil) {
				stopped = true
				return fs.SkipAll
			}
			if d.IsDir() && m.depth > 0 && strings.Count(rel, "/")+1 >= m.depth {
				return fs.SkipDir
			}
			return nil
		})
		if err != nil && !stopped && !stderrors.Is(err, fs.SkipAll) {
			yield("", err)
		}
	}
}
