package scope

import (
	"errors"

	"github.com/travisclagrone/tclg/capability"
)

// exitSignal is the error value an ExitScope unwinds with. Signals are
// compared by identity; the scope field keeps the struct non-empty so every
// signal has its own address.
type exitSignal struct {
	scope *ExitScope
}

func (*exitSignal) Error() string {
	return "scope: exit signal returned outside of its scope"
}

// ExitScope is a block that can be left early with Exit.
//
// An ExitScope may be run again after its previous Run returned, but it must
// not be run from within its own block.
type ExitScope struct {
	signal *exitSignal
}

// NewExitScope returns an ExitScope with its own exit signal.
func NewExitScope() *ExitScope {
	s := &ExitScope{}
	s.signal = &exitSignal{scope: s}
	return s
}

// Exitable runs block in a fresh ExitScope.
func Exitable(block func(*ExitScope) error) error {
	return NewExitScope().Run(block)
}

// Run executes block with the scope itself as its argument.
//
// If block returns this scope's exit signal, directly or wrapped with %w,
// Run returns nil. A signal joined with other errors is not suppressed. Every other error, including the exit signal of another
// scope, is returned unchanged so that it can reach its own scope.
func (s *ExitScope) Run(block func(*ExitScope) error) error {
	err := block(s)
	if err == nil || s.owns(err) {
		return nil
	}
	return err
}

// Exit returns the scope's exit signal. The block must return it, possibly
// through any number of nested blocks, for the scope to be left.
//
//	if found {
//	    return s.Exit()
//	}
func (s *ExitScope) Exit() error {
	return s.signal
}

// owns reports whether err is this scope's signal or wraps it through
// single Unwrap steps. Signals are pointers, so only the identical signal
// matches. A joined error is never owned: it carries other errors that must
// not be dropped.
func (s *ExitScope) owns(err error) bool {
	for err != nil {
		if sig, ok := err.(*exitSignal); ok && sig == s.signal {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

var _ capability.Exitable = (*ExitScope)(nil)
