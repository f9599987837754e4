// Released under an MIT license. See LICENSE.

// Package truth defines the interface for skein types that have a truth value.
package truth

import (
	"github.com/skein-lang/skein/internal/common/interface/cell"
)

// I (truth) is anything that evaluates to a true or false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell. Only the boolean false value
// is false; every other value is true.
func Value(c cell.I) bool {
	if b, ok := c.(I); ok {
		return b.Bool()
	}

	return true
}
