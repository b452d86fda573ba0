// Package errors provides the coded errors shared by the tclg packages.
//
// Every error this module creates itself (as opposed to errors it passes
// through from a wrapped mapping, object, or filesystem) is a CodedError:
// an error carrying an ErrorCode, a message, and optional context metadata.
// The package stays fully compatible with the standard library errors
// package (errors.Is, errors.As, errors.Unwrap).
//
// # Error Codes
//
//   - CodeInvalidType: a value does not satisfy a required contract, or a
//     write helper was handed something that is neither text nor bytes
//   - CodeAttributeNotFound: a view could not resolve a named attribute
//   - CodeKeyNotFound: a mapping or view could not resolve a key
//   - CodeInvalidInput: malformed input such as a bad glob pattern
//   - CodeUnknown: a plain error converted by WithContext
//
// # Usage
//
//	err := errors.New(errors.CodeKeyNotFound, "key not found")
//	err = errors.WithContext(err, "key", "color")
//
//	if errors.GetCode(err) == errors.CodeKeyNotFound {
//	    key, _ := errors.GetContextValue(err, "key")
//	    ...
//	}
//
// Wrapping keeps the cause reachable:
//
//	g, err := glob.Compile(pattern, '/')
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeInvalidInput, "invalid glob pattern")
//	}
//
// Errors that are not created here are never rewritten: a filesystem
// failure reaches the caller as the original *fs.PathError.
package errors
