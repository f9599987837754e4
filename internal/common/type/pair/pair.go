// Released under an MIT license. See LICENSE.

// Package pair provides skein's cons cell type.
package pair

import (
	"github.com/skein-lang/skein/internal/common"
	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/literal"
)

const name = "pair"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list.
	Null cell.I
)

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	if p == Null || c == Null {
		return p == Null && c == Null
	}

	if !Is(c) {
		return false
	}

	return p.car.Equal(Car(c)) && p.cdr.Equal(Cdr(c))
}

// Literal returns the written representation of the pair p.
func (p *pair) Literal() string {
	if p == Null {
		return "()"
	}

	s := "("

	var c cell.I = p
	for {
		s += common.Render(To(c).car)

		tail := To(c).cdr
		if tail == Null {
			break
		}

		if !Is(tail) {
			s += " . " + common.Render(tail)

			break
		}

		s += " "
		c = tail
	}

	return s + ")"
}

// Name returns the name for the pair type.
func (p *pair) Name() string {
	if p == Null {
		return "null"
	}

	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.I) cell.I {
	return To(To(c).cdr).car
}

// Cddr returns the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cddr(c cell.I) cell.I {
	return To(To(c).cdr).cdr
}

// Caddr returns the car of the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Caddr(c cell.I) cell.I {
	return To(To(To(c).cdr).cdr).car
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Is returns true if c is a pair. Null is a pair.
func Is(c cell.I) bool {
	_, ok := c.(*pair)

	return ok
}

// SetCar sets the car/head/first of the pair c to value.
// If c is not a pair, this function will panic.
func SetCar(c, value cell.I) {
	To(c).car = value
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
// If c is not a pair, this function will panic.
func SetCdr(c, value cell.I) {
	To(c).cdr = value
}

// To returns a *T if c is a pair; otherwise it panics.
func To(c cell.I) *pair {
	if t, ok := c.(*pair); ok {
		return t
	}

	panic(fault.Type(name, c.Name()))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}
