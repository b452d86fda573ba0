package iox

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/travisclagrone/tclg/errors"
	"github.com/travisclagrone/tclg/fsutil"
)

// IO performs the helpers with paths resolved through an fsutil.FS.
type IO struct {
	fs *fsutil.FS
}

// New returns an IO over f.
func New(f *fsutil.FS) *IO {
	return &IO{fs: f}
}

var defaultIO = sync.OnceValue(func() *IO { return New(fsutil.Default()) })

// Default returns the IO over fsutil.Default used by the package-level
// functions.
func Default() *IO {
	return defaultIO()
}

type options struct {
	flush bool
	close bool
}

// Option configures the write family. Options apply only to open handles;
// a path is always closed by the call that opened it.
type Option func(*options)

// WithFlush sets whether a handle with a Flush() error method is flushed
// after writing. The default is true.
func WithFlush(flush bool) Option {
	return func(o *options) {
		o.flush = flush
	}
}

// WithClose sets whether a handle that is an io.Closer is closed after the
// call, on every path out of it. The default is false.
func WithClose(closeHandle bool) Option {
	return func(o *options) {
		o.close = closeHandle
	}
}

func newOptions(opts []Option) options {
	o := options{flush: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// pathOf reports whether target names a path.
func pathOf(target any) (string, bool) {
	if s, ok := target.(string); ok {
		return s, true
	}
	v := reflect.ValueOf(target)
	if v.IsValid() && v.Kind() == reflect.String {
		return v.String(), true
	}
	return "", false
}

// bytesOf converts a write value to bytes. Strings, byte slices and types
// built on them are accepted.
func bytesOf(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	}
	rv := reflect.ValueOf(value)
	switch {
	case !rv.IsValid():
	case rv.Kind() == reflect.String:
		return []byte(rv.String()), nil
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return rv.Bytes(), nil
	}
	return nil, typeError("value", value, "string or []byte")
}

func typeError(role string, v any, want string) error {
	name := fmt.Sprintf("%T", v)
	return errors.NewWithContext(errors.CodeInvalidType,
		fmt.Sprintf("expected %s to be %s, but found %s", role, want, name),
		map[string]interface{}{"role": role, "type": name})
}

// reader returns a reader over target's content and a function releasing
// whatever the call opened.
func (x *IO) reader(target any) (io.Reader, func() error, error) {
	noop := func() error { return nil }

	switch t := target.(type) {
	case *bytes.Buffer:
		return bytes.NewReader(t.Bytes()), noop, nil
	case *strings.Builder:
		return strings.NewReader(t.String()), noop, nil
	case io.Reader:
		return t, noop, nil
	}

	name, ok := pathOf(target)
	if !ok {
		return nil, nil, typeError("target", target, "a path, reader or buffer")
	}
	f, err := x.fs.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// Read returns the whole content of target.
func (x *IO) Read(target any) (data []byte, err error) {
	r, release, err := x.reader(target)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := release(); err == nil {
			err = cerr
		}
	}()
	return io.ReadAll(r)
}

// ReadText returns the whole content of target as a string.
func (x *IO) ReadText(target any) (string, error) {
	data, err := x.Read(target)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadLines returns the lines of target, each with its line ending. A
// final line without a newline is returned as is.
func (x *IO) ReadLines(target any) ([]string, error) {
	text, err := x.ReadText(target)
	if err != nil {
		return nil, err
	}
	return splitLines(text), nil
}

func splitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
