// Released under an MIT license. See LICENSE.

package machine

import (
	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/scope"
	"github.com/skein-lang/skein/internal/common/type/env"
	"github.com/skein-lang/skein/internal/common/type/list"
	"github.com/skein-lang/skein/internal/common/type/pair"
	"github.com/skein-lang/skein/internal/common/type/sym"
	"github.com/skein-lang/skein/internal/common/validate"
)

// Closure is a user-defined procedure: parameter labels, a body, and the
// scope where the lambda was evaluated.
type Closure struct {
	Body   cell.I
	Params cell.I
	Scope  scope.I
}

// Equal returns true if the cell c is the same closure.
func (c *Closure) Equal(other cell.I) bool {
	p, ok := other.(*Closure)

	return ok && p == c
}

// Name returns the name of the closure type.
func (c *Closure) Name() string {
	return "procedure"
}

// String returns the text representation of the closure c.
func (c *Closure) String() string {
	return "#<procedure>"
}

// arity returns the number of required parameters and whether the closure
// accepts additional arguments through a rest parameter.
func (c *Closure) arity() (int, bool) {
	n := 0

	p := c.Params
	for pair.Is(p) && p != pair.Null {
		n++

		p = pair.Cdr(p)
	}

	return n, p != pair.Null
}

// bind creates the call scope for an application of c to args. The new
// frame extends the closure's captured scope, not the caller's.
func (c *Closure) bind(args cell.I) scope.I {
	e := env.New(c.Scope)

	fixed, variadic := c.arity()
	passed := list.Length(args)

	if passed < fixed || (!variadic && passed > fixed) {
		expected := validate.Count(fixed, "argument", "s")
		if variadic {
			expected = "at least " + expected
		}

		panic(fault.Arity(expected, passed))
	}

	params := c.Params
	for pair.Is(params) && params != pair.Null {
		e.Define(sym.To(pair.Car(params)).String(), pair.Car(args))

		params, args = pair.Cdr(params), pair.Cdr(args)
	}

	if params != pair.Null {
		e.Define(sym.To(params).String(), args)
	}

	return e
}

// Primitive is a builtin that computes directly on its evaluated arguments.
type Primitive struct {
	name string
	do   func(cell.I) cell.I
}

// NewPrimitive creates a primitive cell named name that runs do.
func NewPrimitive(name string, do func(cell.I) cell.I) cell.I {
	return &Primitive{name: name, do: do}
}

// Equal returns true if the cell c is the same primitive.
func (p *Primitive) Equal(c cell.I) bool {
	o, ok := c.(*Primitive)

	return ok && o == p
}

// Name returns the name of the primitive type.
func (p *Primitive) Name() string {
	return "primitive"
}

// String returns the text representation of the primitive p.
func (p *Primitive) String() string {
	return "#<primitive " + p.name + ">"
}

// Control is a builtin that manipulates the machine's control state
// directly. call/cc, apply, and dynamic-wind are controls: their arguments
// are evaluated like a primitive's, but they decide what the machine does
// next instead of returning a value.
type Control struct {
	name string
	do   func(*M, cell.I)
}

// Equal returns true if the cell c is the same control.
func (p *Control) Equal(c cell.I) bool {
	o, ok := c.(*Control)

	return ok && o == p
}

// Name returns the name of the control type.
func (p *Control) Name() string {
	return "primitive"
}

// String returns the text representation of the control p.
func (p *Control) String() string {
	return "#<primitive " + p.name + ">"
}

// Syntax is a special form. It receives its arguments unevaluated, along
// with the environment of the combination being reduced.
type Syntax struct {
	name string
	do   func(*M, cell.I, scope.I)
}

// Equal returns true if the cell c is the same syntax.
func (s *Syntax) Equal(c cell.I) bool {
	o, ok := c.(*Syntax)

	return ok && o == s
}

// Name returns the name of the syntax type.
func (s *Syntax) Name() string {
	return "syntax"
}

// String returns the text representation of the syntax s.
func (s *Syntax) String() string {
	return "#<syntax " + s.name + ">"
}
