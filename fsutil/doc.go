// Package fsutil provides small filesystem helpers: idempotent directory
// creation, empty-directory pruning, glob matching, listing, working
// directory changes and tolerant file removal.
//
// The helpers are methods on FS, which wraps a core.FS. The package-level
// functions use Default, the host filesystem:
//
//	dir, err := fsutil.Mkdir("build/out", fsutil.WithRmtree())
//	removed, err := fsutil.Rmdirs("build/out/tmp")
//	err = fsutil.Rm("build/stale.lock")
//
// Paths are accepted and returned in the caller's form: a relative
// argument yields relative results. Relative paths are resolved against
// the process working directory for the local filesystem and against the
// FS's own working directory for in-memory ones.
//
// Errors from the filesystem are returned unchanged, normally as
// *fs.PathError values that match the io/fs sentinels with errors.Is.
package fsutil
