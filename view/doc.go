// Package view presents a mapping as an attribute-bearing object, or an
// attribute-bearing object as a mapping, without copying either.
//
// Four adapters cover both directions, in read-only and mutable forms:
//
//	| Adapter               | Direction        | Mutable |
//	|-----------------------|------------------|---------|
//	| AttrsItemsView        | mapping -> attrs | no      |
//	| MutableAttrsItemsView | mapping -> attrs | yes     |
//	| ItemsAttrsView        | attrs -> mapping | no      |
//	| MutableItemsAttrsView | attrs -> mapping | yes     |
//
// Names starting with an underscore are never public. Every adapter hides
// them from listings and rejects them on access with a not-found error,
// whether or not the wrapped value actually holds them.
//
// A view holds a reference to the wrapped value and does not own it; the
// wrapped value must outlive the view. Views are not safe for concurrent
// use unless the wrapped value is.
//
// # Errors
//
// Lookup failures are reported with codes from the errors package:
// errors.CodeAttributeNotFound (context "name" and "object") on the
// attribute side, errors.CodeKeyNotFound (context "key") on the mapping
// side. Constructors fail with errors.CodeInvalidType when the wrapped value
// lacks a required capability. Any other error from the wrapped value is
// returned unchanged.
//
// # Example
//
//	settings := view.Map[any]{"color": "blue", "_secret": "x"}
//	attrs, _ := view.NewAttrsItemsView[any](settings)
//
//	attrs.Dir()                // ["color"]
//	attrs.GetAttr("color")     // "blue", nil
//	attrs.GetAttr("_secret")   // nil, ATTRIBUTE_NOT_FOUND
package view
