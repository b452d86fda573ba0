package errors

// CodedError extends the standard error interface with a code, a message,
// and context metadata.
type CodedError interface {
	error

	// Code returns the error code identifying the kind of error.
	Code() ErrorCode

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}
