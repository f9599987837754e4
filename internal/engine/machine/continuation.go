// Released under an MIT license. See LICENSE.

package machine

import (
	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/type/list"
	"github.com/skein-lang/skein/internal/common/type/pair"
)

// Continuation is a first-class continuation: an immutable snapshot of the
// frame stack and the dynamic-wind extents active at the point of capture.
// Invoking a continuation installs a copy of its frames, so the same
// continuation can be invoked any number of times, from anywhere, each
// resumption independent of the others. Capture freezes control flow, not
// data: environment cells stay shared, and mutations made after capture
// are visible on resume.
type Continuation struct {
	stack []frame
	winds *winder
}

// Equal returns true if the cell c is the same continuation.
func (k *Continuation) Equal(c cell.I) bool {
	o, ok := c.(*Continuation)

	return ok && o == k
}

// Name returns the name of the continuation type.
func (k *Continuation) Name() string {
	return "continuation"
}

// String returns the text representation of the continuation k.
func (k *Continuation) String() string {
	return "#<continuation>"
}

// capture snapshots the rest of the computation.
func (m *M) capture() *Continuation {
	stack := make([]frame, len(m.stack))
	copy(stack, m.stack)

	return &Continuation{stack: stack, winds: m.winds}
}

// invoke abandons the machine's current control state and resumes the
// continuation k as though v had just been produced at its capture point.
// Dynamic-wind exits and entries crossed by the jump fire first. This is
// an unconditional transfer: the invoker's own pending work is discarded.
func (m *M) invoke(k *Continuation, args cell.I) {
	v := cell.I(pair.Null)

	switch {
	case args == pair.Null:
	case pair.Cdr(args) == pair.Null:
		v = pair.Car(args)
	default:
		panic(fault.Arity("at most 1 argument", list.Length(args)))
	}

	m.reroot(k.winds)

	stack := make([]frame, len(k.stack))
	copy(stack, k.stack)
	m.stack = stack

	m.ret(v)
}
