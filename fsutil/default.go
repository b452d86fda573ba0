package fsutil

import "iter"

// Mkdir calls Default().Mkdir.
func Mkdir(name string, opts ...MkdirOption) (string, error) { return Default().Mkdir(name, opts...) }

// Rmdir calls Default().Rmdir.
func Rmdir(name string) (string, bool, error) { return Default().Rmdir(name) }

// Rmdirs calls Default().Rmdirs.
func Rmdirs(name string) ([]string, error) { return Default().Rmdirs(name) }

// Glob calls Default().Glob.
func Glob(pattern, root string) ([]string, error) { return Default().Glob(pattern, root) }

// Rglob calls Default().Rglob.
func Rglob(pattern, root string) iter.Seq2[string, error] { return Default().Rglob(pattern, root) }

// Chdir calls Default().Chdir.
func Chdir(name string) (string, error) { return Default().Chdir(name) }

// Lsdir calls Default().Lsdir.
func Lsdir(name string) ([]string, error) { return Default().Lsdir(name) }

// Rm calls Default().Rm.
func Rm(name string, opts ...RmOption) error { return Default().Rm(name, opts...) }

// Cwd calls Default().Cwd.
func Cwd() (string, error) { return Default().Cwd() }

// Home calls Default().Home.
func Home() (string, error) { return Default().Home() }
