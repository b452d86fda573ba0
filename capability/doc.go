// Package capability defines one-method interfaces describing what a value
// must be able to do to be accepted elsewhere in this module.
//
// Each interface declares exactly one operation. Satisfaction is structural:
// any type with the right method satisfies the contract without declaring it.
//
//	type Config struct{ ... }
//
//	func (c *Config) SetAttr(name string, value any) error { ... }
//
//	var _ capability.SupportsSetAttr[any] = (*Config)(nil)
//
// Compile-time satisfaction is the norm. When a value arrives as an
// interface{} and must be inspected at runtime, use Implements:
//
//	if capability.Implements[capability.SupportsDelAttr](v) {
//	    ...
//	}
package capability
