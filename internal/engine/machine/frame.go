// Released under an MIT license. See LICENSE.

package machine

import (
	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/scope"
	"github.com/skein-lang/skein/internal/common/interface/truth"
	"github.com/skein-lang/skein/internal/common/type/boolean"
	"github.com/skein-lang/skein/internal/common/type/list"
	"github.com/skein-lang/skein/internal/common/type/pair"
)

// A frame is one unit of pending work: an expression still waiting on a
// sub-result, together with whatever is needed to finish it. Frames are
// immutable once pushed; resuming a frame pushes fresh frames rather than
// modifying it, which is what lets a continuation snapshot the stack with
// a plain copy.
type frame interface {
	resume(m *M, v cell.I)
}

// opFrame waits for the value of the operator position of a combination.
type opFrame struct {
	args cell.I // Unevaluated operands.
	env  scope.I
}

func (f *opFrame) resume(m *M, v cell.I) {
	if s, ok := v.(*Syntax); ok {
		s.do(m, f.args, f.env)

		return
	}

	if f.args == pair.Null {
		m.apply(v, pair.Null)

		return
	}

	m.push(&argsFrame{op: v, done: pair.Null, rest: pair.Cdr(f.args), env: f.env})
	m.reduceTo(pair.Car(f.args), f.env)
}

// argsFrame waits for the value of one operand. Evaluated operands
// accumulate in done, most recent first.
type argsFrame struct {
	op   cell.I
	done cell.I
	rest cell.I
	env  scope.I
}

func (f *argsFrame) resume(m *M, v cell.I) {
	done := pair.Cons(v, f.done)

	if f.rest == pair.Null {
		m.apply(f.op, list.Reverse(done))

		return
	}

	m.push(&argsFrame{op: f.op, done: done, rest: pair.Cdr(f.rest), env: f.env})
	m.reduceTo(pair.Car(f.rest), f.env)
}

// ifFrame waits for the value of a condition.
type ifFrame struct {
	consequent  cell.I
	alternative cell.I
	env         scope.I
	hasAlt      bool
}

func (f *ifFrame) resume(m *M, v cell.I) {
	if truth.Value(v) {
		m.reduceTo(f.consequent, f.env)
	} else if f.hasAlt {
		m.reduceTo(f.alternative, f.env)
	} else {
		m.ret(boolean.False)
	}
}

// seqFrame waits for the value of one expression in a sequence and then
// discards it. rest is never empty.
type seqFrame struct {
	rest cell.I
	env  scope.I
}

func (f *seqFrame) resume(m *M, _ cell.I) {
	m.sequence(f.rest, f.env)
}

// defineFrame waits for the value to bind.
type defineFrame struct {
	name string
	env  scope.I
}

func (f *defineFrame) resume(m *M, v cell.I) {
	f.env.Define(f.name, v)
	m.ret(v)
}

// setFrame waits for the value to assign.
type setFrame struct {
	name string
	env  scope.I
}

func (f *setFrame) resume(m *M, v cell.I) {
	r := f.env.Lookup(f.name)
	if r == nil {
		panic(fault.Unbound(f.name))
	}

	r.Set(v)
	m.ret(v)
}

// whileTestFrame waits for the value of a loop condition.
type whileTestFrame struct {
	cond cell.I
	body cell.I
	env  scope.I
}

func (f *whileTestFrame) resume(m *M, v cell.I) {
	if !truth.Value(v) {
		m.ret(pair.Null)

		return
	}

	m.push(&whileLoopFrame{cond: f.cond, body: f.body, env: f.env})
	m.sequence(f.body, f.env)
}

// whileLoopFrame waits for the value of a loop body and re-tests the
// condition. The loop runs with a constant frame stack.
type whileLoopFrame struct {
	cond cell.I
	body cell.I
	env  scope.I
}

func (f *whileLoopFrame) resume(m *M, _ cell.I) {
	m.push(&whileTestFrame{cond: f.cond, body: f.body, env: f.env})
	m.reduceTo(f.cond, f.env)
}

// windFrame marks the normal exit of a dynamic-wind body.
type windFrame struct {
	w *winder
}

func (f *windFrame) resume(m *M, v cell.I) {
	m.winds = f.w.previous
	m.call(f.w.after)
	m.ret(v)
}
