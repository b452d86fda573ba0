// Package billy implements core.FS and core.LinkFS on top of go-billy.
//
// NewLocal wraps osfs rooted at "/" and NewMemory wraps memfs:
//
//	local := billy.NewLocal()
//	data, err := local.ReadFile("/etc/hostname")
//
//	mem := billy.NewMemory()
//	err := mem.WriteFile("/tmp/scratch.txt", []byte("data"), 0o644)
//
// Both backends report failures as *fs.PathError (or *os.LinkError for
// Symlink) so callers can match them with errors.Is against the io/fs
// sentinels. Unwrap exposes the billy.Filesystem for code that needs it
// directly.
//
// FS values are safe for concurrent use. File handles are not.
package billy
