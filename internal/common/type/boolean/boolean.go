// Released under an MIT license. See LICENSE.

// Package boolean provides skein's boolean value type.
package boolean

import (
	"github.com/skein-lang/skein/internal/common"
	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/literal"
	"github.com/skein-lang/skein/internal/common/interface/truth"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool creates a new boolean from the bool b.
func Bool(b bool) cell.I {
	if b {
		return True
	}

	return False
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is a boolean with a matching value.
func (b *boolean) Equal(c cell.I) bool {
	return Is(c) && b.Bool() == To(c).Bool()
}

// Literal returns the literal representation of the boolean b.
func (b *boolean) Literal() string {
	return b.String()
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if bool(*b) {
		return "#t"
	}

	return "#f"
}

// Is returns true if c is a boolean.
func Is(c cell.I) bool {
	_, ok := c.(*boolean)

	return ok
}

// To returns a *T if c is a boolean; otherwise it panics.
func To(c cell.I) *boolean {
	if t, ok := c.(*boolean); ok {
		return t
	}

	panic(fault.Type(name, c.Name()))
}

func f() *boolean {
	v := boolean(false)

	return &v
}

func t() *boolean {
	v := boolean(true)

	return &v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)

	// The boolean type is a stringer.
	_ = common.Stringer(&t)

	// The boolean type has a truth value.
	_ = truth.I(&t)
}
