package errors

import "fmt"

// New creates a new CodedError with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeKeyNotFound, "key not found")
func New(code ErrorCode, message string) CodedError {
	return &codedError{
		code:    code,
		message: message,
	}
}

// Newf creates a new CodedError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidType, "expected string or []byte, found %T", value)
func Newf(code ErrorCode, format string, args ...interface{}) CodedError {
	return &codedError{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}

// NewWithContext creates a new CodedError and attaches context metadata in a
// single operation. The context map is copied to prevent external mutation.
func NewWithContext(code ErrorCode, message string, ctx map[string]interface{}) CodedError {
	return &codedError{
		code:    code,
		message: message,
		context: copyContext(ctx),
	}
}
