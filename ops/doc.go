// Package ops builds bound deletion and assignment operations.
//
// Each builder captures a name or key (and, for setters, a value) at
// construction time and applies it to any target with the matching
// capability. Builders are immutable values; applying one has no effect
// beyond the target's own mutation, and the target's error is returned
// unchanged.
//
//	clear := ops.NewAttrDeleter("cache")
//	for _, obj := range objects {
//	    if err := clear.Apply(obj); err != nil {
//	        return err
//	    }
//	}
package ops
