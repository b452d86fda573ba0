// Package iox reads and writes whole contents of files, handles and
// in-memory buffers through one set of functions that dispatch on the
// target:
//
//   - *bytes.Buffer and *strings.Builder: reads return the current
//     contents without consuming them; writes append to them.
//   - io.Reader: reads consume everything up to EOF.
//   - io.Writer: writes go straight to it, followed by Flush when the
//     writer has one. WithFlush and WithClose control the handle.
//   - string (or a type whose underlying type is string): a path, opened
//     and closed by the call. Write truncates and Append appends.
//
// Anything else fails with errors.CodeInvalidType naming the type.
//
//	if _, err := iox.Write("out.txt", "hello\n"); err != nil {
//	    return err
//	}
//	text, err := iox.ReadText("out.txt")
//
// Paths go through an fsutil.FS; the package-level functions use
// fsutil.Default and IO values bind another one.
package iox
