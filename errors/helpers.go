package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not a CodedError.
//
// The code is taken from the outermost CodedError in the chain.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeKeyNotFound {
//	    // Handle missing key
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var coded CodedError
	if stderrors.As(err, &coded) {
		return coded.Code()
	}

	return CodeUnknown
}

// HasCode reports whether the outermost CodedError in err's chain carries code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && GetCode(err) == code
}

// GetContextValue returns the context value stored under key on the
// outermost CodedError in err's chain.
func GetContextValue(err error, key string) (interface{}, bool) {
	var coded CodedError
	if !stderrors.As(err, &coded) {
		return nil, false
	}
	v, ok := coded.Context()[key]
	return v, ok
}
