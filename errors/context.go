package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new CodedError with the context field added.
// Existing context fields are preserved.
//
// If err is not a CodedError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeKeyNotFound, "key not found")
//	err = errors.WithContext(err, "key", "color")
func WithContext(err error, key string, value interface{}) CodedError {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not a CodedError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) CodedError {
	if err == nil {
		return nil
	}

	var coded CodedError
	if !errors.As(err, &coded) {
		coded = &codedError{
			code:    CodeUnknown,
			message: err.Error(),
			cause:   err,
		}
	}

	merged := make(map[string]interface{})
	for k, v := range coded.Context() {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &codedError{
		code:    coded.Code(),
		message: coded.Message(),
		context: merged,
		cause:   coded.Unwrap(),
	}
}
