package view

import (
	"fmt"
	"reflect"

	"github.com/travisclagrone/tclg/errors"
)

// keyError reports that key could not be resolved. cause may be nil.
func keyError(key string, cause error) error {
	msg := fmt.Sprintf("key %q not found", key)
	ctx := map[string]interface{}{"key": key}
	if cause == nil {
		return errors.NewWithContext(errors.CodeKeyNotFound, msg, ctx)
	}
	return errors.WrapWithContext(cause, errors.CodeKeyNotFound, msg, ctx)
}

// attrError reports that obj has no attribute name. cause may be nil.
func attrError(name string, obj any, cause error) error {
	msg := fmt.Sprintf("%T object has no attribute %q", obj, name)
	ctx := map[string]interface{}{"name": name, "object": obj}
	if cause == nil {
		return errors.NewWithContext(errors.CodeAttributeNotFound, msg, ctx)
	}
	return errors.WrapWithContext(cause, errors.CodeAttributeNotFound, msg, ctx)
}

func typeError(format string, args ...interface{}) error {
	return errors.Newf(errors.CodeInvalidType, format, args...)
}

// isNil reports whether v is nil or an interface holding a nil pointer-like value.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// isNilMap reports whether v is a nil Go map, which cannot be written to.
func isNilMap(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.IsNil()
}
