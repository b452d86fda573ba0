// Package fn provides small function combinators.
package fn

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/travisclagrone/tclg/capability"
	"github.com/travisclagrone/tclg/errors"
)

// Do calls f with arg and returns arg.
// It is useful for applying a side effect inside an expression:
//
//	list := fn.Do(slices.Sort, []int{3, 1, 2})
func Do[T any](f func(T), arg T) T {
	f(arg)
	return arg
}

// DoErr calls f with arg and returns arg along with f's error, unchanged.
func DoErr[T any](f func(T) error, arg T) (T, error) {
	return arg, f(arg)
}

// Owner returns a function that attaches its argument to cls as an
// attribute named after the function itself (see Name).
//
//	methods := view.NewNamespace[any](nil)
//	attach := fn.Owner[any](methods)
//	_ = attach(greet) // methods.GetAttr("greet") now returns greet
//
// The returned function fails with CodeInvalidType when f is not a non-nil
// function, and otherwise reports only cls's own assignment error.
func Owner[V any](cls capability.SupportsSetAttr[V]) func(f V) error {
	return func(f V) error {
		name := Name(f)
		if name == "" {
			typ := fmt.Sprintf("%T", f)
			err := errors.Newf(errors.CodeInvalidType, "expected a named function, but found %s", typ)
			return errors.WithContext(err, "type", typ)
		}
		return cls.SetAttr(name, f)
	}
}

// Name returns the short runtime name of the function f: the package path,
// receiver, and generic instantiation are stripped, so a method expression
// (*T).Close is named "Close". Anonymous functions get compiler-generated
// names such as "func1". Name returns "" when f is not a non-nil function.
func Name(f any) string {
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return ""
	}
	name := rf.Name()
	name = strings.TrimSuffix(name, "-fm")
	name = strings.TrimSuffix(name, "[...]")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
