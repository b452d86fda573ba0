package iox

import (
	"io"
	"iter"
	"os"
	"slices"
)

const (
	truncateFlags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	appendFlags   = os.O_WRONLY | os.O_CREATE | os.O_APPEND
)

type flusher interface {
	Flush() error
}

// Write writes value, a string or []byte, to target and returns the
// number of bytes written. A path is truncated first.
func (x *IO) Write(target, value any, opts ...Option) (int, error) {
	data, err := bytesOf(value)
	if err != nil {
		return 0, err
	}
	return x.put(target, truncateFlags, newOptions(opts), func(w io.Writer) (int, error) {
		return w.Write(data)
	})
}

// Append is Write without truncation: a path is opened for appending. On an
// open handle it writes at the handle's position, like Write.
func (x *IO) Append(target, value any, opts ...Option) (int, error) {
	data, err := bytesOf(value)
	if err != nil {
		return 0, err
	}
	return x.put(target, appendFlags, newOptions(opts), func(w io.Writer) (int, error) {
		return w.Write(data)
	})
}

// WriteLines writes each line to target in order, adding no separators.
// lines is a []string, [][]byte, iter.Seq[string] or iter.Seq[[]byte]. A
// path is truncated first.
func (x *IO) WriteLines(target, lines any, opts ...Option) error {
	seq, err := lineSeq(lines)
	if err != nil {
		return err
	}
	_, err = x.put(target, truncateFlags, newOptions(opts), func(w io.Writer) (int, error) {
		return writeAll(w, seq)
	})
	return err
}

// AppendLines is WriteLines without truncation.
func (x *IO) AppendLines(target, lines any, opts ...Option) error {
	seq, err := lineSeq(lines)
	if err != nil {
		return err
	}
	_, err = x.put(target, appendFlags, newOptions(opts), func(w io.Writer) (int, error) {
		return writeAll(w, seq)
	})
	return err
}

// put runs emit against target. Handles are flushed and closed as o says;
// a path is opened with flag and always closed. Callers check the value
// first so a rejected value never opens a path.
func (x *IO) put(target any, flag int, o options, emit func(io.Writer) (int, error)) (n int, err error) {
	if w, ok := target.(io.Writer); ok {
		if c, ok := w.(io.Closer); ok && o.close {
			defer func() {
				if cerr := c.Close(); err == nil {
					err = cerr
				}
			}()
		}
		if n, err = emit(w); err != nil {
			return n, err
		}
		if fl, ok := w.(flusher); ok && o.flush {
			err = fl.Flush()
		}
		return n, err
	}

	name, ok := pathOf(target)
	if !ok {
		return 0, typeError("target", target, "a path or writer")
	}
	f, err := x.fs.OpenFile(name, flag)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return emit(f)
}

// writeAll writes every line of seq to w and returns the byte count.
func writeAll(w io.Writer, seq iter.Seq[[]byte]) (int, error) {
	total := 0
	for line := range seq {
		n, err := w.Write(line)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func lineSeq(lines any) (iter.Seq[[]byte], error) {
	switch l := lines.(type) {
	case []string:
		return convert(slices.Values(l)), nil
	case [][]byte:
		return slices.Values(l), nil
	case iter.Seq[string]:
		return convert(l), nil
	case iter.Seq[[]byte]:
		return l, nil
	}
	return nil, typeError("lines", lines, "[]string, [][]byte, iter.Seq[string] or iter.Seq[[]byte]")
}

func convert(seq iter.Seq[string]) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for s := range seq {
			if !yield([]byte(s)) {
				return
			}
		}
	}
}
