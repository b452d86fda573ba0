package errors

import "fmt"

// Wrap wraps an error with a code and message while preserving the original
// error. The wrapped error is accessible via Unwrap() and compatible with
// errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	g, err := glob.Compile(pattern, '/')
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeInvalidInput, "invalid glob pattern")
//	}
func Wrap(err error, code ErrorCode, message string) CodedError {
	if err == nil {
		return nil
	}

	return &codedError{
		code:    code,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) CodedError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single
// operation. The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	if _, err := m.GetItem(name); err != nil {
//	    return errors.WrapWithContext(err, errors.CodeAttributeNotFound, msg, map[string]interface{}{
//	        "name": name,
//	    })
//	}
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) CodedError {
	if err == nil {
		return nil
	}

	return &codedError{
		code:    code,
		message: message,
		context: copyContext(ctx),
		cause:   err,
	}
}
