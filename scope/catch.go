package scope

import (
	stderrors "errors"
	"reflect"

	"github.com/travisclagrone/tclg/errors"
)

// Kind matches errors of one kind. Kinds are built from types or codes,
// never from individual error values; see KindOf and CodeKind.
type Kind struct {
	name  string
	match func(error) bool
}

// String returns a description of the kind.
func (k Kind) String() string {
	return k.name
}

// KindOf returns a Kind matching any error whose chain contains an error of
// type E, as reported by errors.As.
func KindOf[E error]() Kind {
	return Kind{
		name: reflect.TypeFor[E]().String(),
		match: func(err error) bool {
			var target E
			return stderrors.As(err, &target)
		},
	}
}

// CodeKind returns a Kind matching coded errors whose code is code.
func CodeKind(code errors.ErrorCode) Kind {
	return Kind{
		name: string(code),
		match: func(err error) bool {
			return errors.HasCode(err, code)
		},
	}
}

// CatchScope runs a block and captures a returned error that matches one
// of its kinds.
type CatchScope struct {
	kinds []Kind
	value error
}

// Catch returns a CatchScope matching any of kinds. With no kinds, nothing
// is ever captured.
func Catch(kinds ...Kind) *CatchScope {
	return &CatchScope{kinds: append([]Kind(nil), kinds...)}
}

// Run clears the captured value and executes block. A matching error is
// recorded and suppressed; any other error is returned unchanged.
func (c *CatchScope) Run(block func() error) error {
	c.value = nil
	err := block()
	if err == nil {
		return nil
	}
	for _, k := range c.kinds {
		if k.match != nil && k.match(err) {
			c.value = err
			return nil
		}
	}
	return err
}

// Caught reports whether the last Run captured an error.
func (c *CatchScope) Caught() bool {
	return c.value != nil
}

// Value returns the error captured by the last Run, or nil.
func (c *CatchScope) Value() error {
	return c.value
}

// Kinds returns a copy of the configured kinds, in order.
func (c *CatchScope) Kinds() []Kind {
	return append([]Kind(nil), c.kinds...)
}
