// Released under an MIT license. See LICENSE.

// Package env provides skein's environment type.
//
// An environment is a frame of bindings plus a link to its parent frame.
// Frames are shared, never copied: a closure captured early and a
// continuation captured late may alias the same chain, and a mutation
// through either is visible through both.
package env

import (
	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/reference"
	"github.com/skein-lang/skein/internal/common/interface/scope"
	"github.com/skein-lang/skein/internal/common/struct/hash"
)

const name = "environment"

// T (env) maps names to references within a chain of frames.
type T struct {
	previous scope.I
	binding  *hash.T
}

type env = T

// New creates a new env with the parent frame previous.
func New(previous scope.I) scope.I {
	return &env{
		previous: previous,
		binding:  hash.New(),
	}
}

// Define associates the name k with the cell v in this frame,
// shadowing any binding for k in outer frames.
func (e *env) Define(k string, v cell.I) {
	e.binding.Set(k, v)
}

// Enclosing returns the enclosing scope.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	return Is(c) && e == To(c)
}

// Lookup retrieves the reference associated with the name k, walking the
// frame chain outward. It returns nil if k is unbound.
func (e *env) Lookup(k string) reference.I {
	if e == nil {
		return nil
	}

	v := e.binding.Get(k)

	if v == nil && e.previous != nil {
		v = e.previous.Lookup(k)
	}

	return v
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Is returns true if c is an env.
func Is(c cell.I) bool {
	_, ok := c.(*env)

	return ok
}

// To returns a *T if c is an env; otherwise it panics.
func To(c cell.I) *env {
	if t, ok := c.(*env); ok {
		return t
	}

	panic(fault.Type(name, c.Name()))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type is a scope.
	_ = scope.I(&t)
}
