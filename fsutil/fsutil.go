package fsutil

import (
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/travisclagrone/tclg/fs/billy"
	"github.com/travisclagrone/tclg/fs/core"
)

const (
	defaultDirPerm  fs.FileMode = 0o777
	defaultFilePerm fs.FileMode = 0o666
)

// FS carries out the helpers against a core.FS.
//
// An FS over a local filesystem shares the process working directory. Any
// other FS keeps its own working directory, which starts at its home
// directory. FS is not safe for concurrent use when Chdir is called.
type FS struct {
	fsys     core.FS
	wd       string
	home     string
	dirPerm  fs.FileMode
	filePerm fs.FileMode
	logger   *slog.Logger
}

// Option configures an FS.
type Option func(*FS)

// WithLogger sets the logger that receives debug records for every
// mutation. The default discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(f *FS) {
		f.logger = logger
	}
}

// WithDirPerm sets the permission bits (before umask) for created
// directories. The default is 0777.
func WithDirPerm(perm fs.FileMode) Option {
	return func(f *FS) {
		f.dirPerm = perm.Perm()
	}
}

// WithFilePerm sets the permission bits (before umask) for files created
// through OpenFile. The default is 0666.
func WithFilePerm(perm fs.FileMode) Option {
	return func(f *FS) {
		f.filePerm = perm.Perm()
	}
}

// WithHome sets the home directory of a non-local FS. It defaults to "/".
// The local FS always uses the user's home directory.
func WithHome(dir string) Option {
	return func(f *FS) {
		f.home = path.Clean("/" + filepath.ToSlash(dir))
	}
}

// New returns an FS over fsys.
func New(fsys core.FS, opts ...Option) *FS {
	f := &FS{
		fsys:     fsys,
		home:     "/",
		dirPerm:  defaultDirPerm,
		filePerm: defaultFilePerm,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.wd = f.home
	return f
}

// Local returns an FS over the host filesystem.
func Local(opts ...Option) *FS {
	return New(billy.NewLocal(), opts...)
}

var defaultFS = sync.OnceValue(func() *FS { return Local() })

// Default returns the shared FS over the host filesystem used by the
// package-level functions.
func Default() *FS {
	return defaultFS()
}

// Unwrap returns the wrapped filesystem.
func (f *FS) Unwrap() core.FS {
	return f.fsys
}

func (f *FS) local() bool {
	return f.fsys.Type() == core.FSTypeLocal
}

// Abs returns the absolute, cleaned form of name.
func (f *FS) Abs(name string) (string, error) {
	if f.local() {
		return filepath.Abs(name)
	}
	name = filepath.ToSlash(name)
	if path.IsAbs(name) {
		return path.Clean(name), nil
	}
	return path.Join(f.wd, name), nil
}

// Cwd returns the working directory as an absolute path.
func (f *FS) Cwd() (string, error) {
	if f.local() {
		return os.Getwd()
	}
	return f.wd, nil
}

// Home returns the home directory as an absolute path.
func (f *FS) Home() (string, error) {
	if f.local() {
		return os.UserHomeDir()
	}
	return f.home, nil
}

// Open opens name for reading.
func (f *FS) Open(name string) (fs.File, error) {
	abs, err := f.Abs(name)
	if err != nil {
		return nil, err
	}
	return f.fsys.Open(abs)
}

// OpenFile opens name with the given os.O_* flags. Created files get the
// FS's file permissions.
func (f *FS) OpenFile(name string, flag int) (core.File, error) {
	abs, err := f.Abs(name)
	if err != nil {
		return nil, err
	}
	if flag&os.O_CREATE != 0 {
		f.logger.Debug("opening file", "op", "open", "path", abs, "flag", flag)
	}
	return f.fsys.OpenFile(abs, flag, f.filePerm)
}

// lstat returns metadata for name without following a final symbolic
// link when the backend can represent links.
func (f *FS) lstat(abs string) (fs.FileInfo, error) {
	if lfs, ok := f.fsys.(core.LinkFS); ok {
		return lfs.Lstat(abs)
	}
	return f.fsys.Stat(abs)
}
