// Released under an MIT license. See LICENSE.

// Package num provides skein's rational number type.
package num

import (
	"math/big"

	"github.com/skein-lang/skein/internal/common"
	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/literal"
	"github.com/skein-lang/skein/internal/common/interface/rational"
)

const name = "number"

// T (num) wraps Go's big.Rat type.
type T big.Rat

type num = T

// New creates a new num cell from a string.
func New(s string) cell.I {
	v := &big.Rat{}

	if _, ok := v.SetString(s); !ok {
		panic(fault.Type(name, "'"+s+"'"))
	}

	return Rat(v)
}

// Int creates a num from the integer i.
func Int(i int) cell.I {
	return Rat(big.NewRat(int64(i), 1))
}

// Rat wraps the *big.Rat r as a num.
func Rat(r *big.Rat) cell.I {
	return (*num)(r)
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Rat().Cmp(To(c).Rat()) == 0
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Rat returns the value of the num n as a *big.Rat.
func (n *num) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.Rat().RatString()
}

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a *T if c is a num; otherwise it panics.
func To(c cell.I) *num {
	if t, ok := c.(*num); ok {
		return t
	}

	panic(fault.Type(name, c.Name()))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a rational.
	_ = rational.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
