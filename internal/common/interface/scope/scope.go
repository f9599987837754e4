// Released under an MIT license. See LICENSE.

// Package scope defines the interface for skein's environments.
package scope

import (
	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/reference"
)

// I (scope) is the interface for skein's chained environments.
type I interface {
	cell.I

	// Define binds k to v in this frame, shadowing outer frames.
	Define(k string, v cell.I)

	// Enclosing returns the parent frame, or nil for the root.
	Enclosing() I

	// Lookup walks the frame chain outward and returns the reference
	// bound to k, or nil if k is unbound.
	Lookup(k string) reference.I
}

type scope = I

// Is returns true if c is a scope.
func Is(c cell.I) bool {
	_, ok := c.(scope)

	return ok
}

// To returns a scope if c is a scope; otherwise it panics.
func To(c cell.I) scope {
	if t, ok := c.(scope); ok {
		return t
	}

	panic(fault.Type("environment", c.Name()))
}
