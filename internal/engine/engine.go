// Released under an MIT license. See LICENSE.

// Package engine evaluates skein expressions.
package engine

import (
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/scope"
	"github.com/skein-lang/skein/internal/common/type/env"
	"github.com/skein-lang/skein/internal/engine/commands"
	"github.com/skein-lang/skein/internal/engine/machine"
)

// Evaluate evaluates the expression c in the scope s. Faults raised while
// evaluating are returned as errors; the scope retains any definitions made
// before the fault.
func Evaluate(c cell.I, s scope.I) (cell.I, error) {
	return machine.New(c, s).Run()
}

// NewRootScope creates a scope populated with skein's special forms,
// control primitives, and builtins.
func NewRootScope() scope.I {
	s := env.New(nil)

	for name, do := range commands.Functions() {
		s.Define(name, machine.NewPrimitive(name, do))
	}

	machine.Install(s)

	return s
}
