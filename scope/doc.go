// Package scope provides two block-scoped control-flow helpers.
//
// ExitScope lets a block leave early without reporting failure, and lets an
// inner block leave any enclosing ExitScope directly, like a labeled break
// that crosses function boundaries:
//
//	outer := scope.NewExitScope()
//	err := outer.Run(func(outer *scope.ExitScope) error {
//	    return scope.Exitable(func(inner *scope.ExitScope) error {
//	        if done {
//	            return outer.Exit() // leaves both blocks
//	        }
//	        ...
//	    })
//	})
//
// CatchScope runs a block and captures a returned error when it matches one
// of the configured kinds:
//
//	c := scope.Catch(scope.KindOf[*fs.PathError]())
//	if err := c.Run(loadPlugin); err != nil {
//	    return err // not a *fs.PathError
//	}
//	if c.Caught() {
//	    useBuiltin()
//	}
//
// Both helpers run their exit logic exactly once per Run, on every path
// that returns. Neither recovers panics.
package scope
