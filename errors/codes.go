package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability.
type ErrorCode string

const (
	// CodeInvalidType indicates a value does not have the type or capabilities
	// an operation requires.
	CodeInvalidType ErrorCode = "INVALID_TYPE"

	// CodeAttributeNotFound indicates a named attribute could not be resolved.
	CodeAttributeNotFound ErrorCode = "ATTRIBUTE_NOT_FOUND"

	// CodeKeyNotFound indicates a key could not be resolved.
	CodeKeyNotFound ErrorCode = "KEY_NOT_FOUND"

	// CodeInvalidInput indicates the provided input is malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
