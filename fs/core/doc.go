// Package core defines the small filesystem contract shared by the path and
// I/O helpers of this module.
//
// The contract is split into focused interfaces that compose into FS:
//
//   - ReadFS: Stat, ReadDir, ReadFile, Exists
//   - WriteFS: OpenFile, WriteFile, MkdirAll
//   - ManageFS: Remove, RemoveAll
//   - WalkFS: Walk
//
// Symbolic links are an optional capability, checked with a type
// assertion:
//
//	if lfs, ok := filesystem.(core.LinkFS); ok {
//	    target, err := lfs.Readlink("/current")
//	}
//
// FS embeds fs.FS, so any implementation also works with the io/fs
// helpers. The go-billy backed implementation lives in the sibling billy
// package; the fstest package holds a conformance suite for
// implementations.
package core
