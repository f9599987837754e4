// Released under an MIT license. See LICENSE.

// Package machine implements skein's evaluator.
//
// The machine is an explicit-stack state machine: it is either reducing an
// expression in an environment or returning a value to the frame on top of
// its stack. Because pending work lives on a heap-resident frame stack
// rather than the Go call stack, tail calls run in constant space and the
// rest of the computation can be captured, stored, and resumed any number
// of times as a first-class continuation.
package machine

import (
	"errors"
	"fmt"

	"github.com/skein-lang/skein/internal/common"
	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/scope"
	"github.com/skein-lang/skein/internal/common/type/pair"
	"github.com/skein-lang/skein/internal/common/type/sym"
)

// Defensive execution limits. These are host-level restrictions, not part
// of the language: a machine with no limits set runs until done.
var (
	ErrDepthLimit = errors.New("frame stack depth limit exceeded")
	ErrStepLimit  = errors.New("step limit exceeded")
)

// M (machine) holds the state of one evaluation.
type M struct {
	code  cell.I  // Expression being reduced.
	env   scope.I // Environment for code.
	value cell.I  // Value being returned to the top frame.

	evaluating bool // Reducing code if true; returning value if not.

	stack []frame // Pending work, innermost last.
	winds *winder // Active dynamic-wind extents, innermost first.

	steps int
	high  int // High-water mark of the frame stack.

	maxDepth int
	maxSteps int
}

// New creates a machine that will reduce the expression c in the scope s.
func New(c cell.I, s scope.I) *M {
	return &M{code: c, env: s, evaluating: true}
}

// Cap sets defensive execution limits. A zero disables that limit.
func (m *M) Cap(steps, depth int) *M {
	m.maxSteps = steps
	m.maxDepth = depth

	return m
}

// Run drives the machine until the expression is reduced to a value.
// Language-level faults abort the run and are returned as errors; the
// environment and any captured continuations are left intact.
func (m *M) Run() (v cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case *fault.T:
			err = r
		case error:
			err = r
		default:
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	return m.run(), nil
}

func (m *M) run() cell.I {
	for {
		if m.maxSteps > 0 {
			m.steps++
			if m.steps > m.maxSteps {
				panic(ErrStepLimit)
			}
		}

		if m.evaluating {
			m.reduce()

			continue
		}

		n := len(m.stack)
		if n == 0 {
			return m.value
		}

		f := m.stack[n-1]
		m.stack = m.stack[:n-1]

		f.resume(m, m.value)
	}
}

// reduce performs one reduction of the current expression.
func (m *M) reduce() {
	switch c := m.code.(type) {
	case *sym.T:
		k := c.String()

		r := m.env.Lookup(k)
		if r == nil {
			panic(fault.Unbound(k))
		}

		m.ret(r.Get())

	case *pair.T:
		if m.code == pair.Null {
			panic(fault.Malformed("()"))
		}

		m.push(&opFrame{args: pair.Cdr(m.code), env: m.env})
		m.reduceTo(pair.Car(m.code), m.env)

	default:
		// Numbers, strings, booleans, and every other value are
		// self-evaluating.
		m.ret(m.code)
	}
}

// apply applies op to the already evaluated argument list args.
func (m *M) apply(op, args cell.I) {
	switch op := op.(type) {
	case *Closure:
		m.sequence(op.Body, op.bind(args))
	case *Primitive:
		m.ret(op.do(args))
	case *Control:
		op.do(m, args)
	case *Continuation:
		m.invoke(op, args)
	default:
		panic(fault.Uncallable(common.Render(op)))
	}
}

// call applies the thunk in a nested machine sharing this machine's wind
// state. Dynamic-wind entry and exit thunks must run to completion before
// the transfer that triggered them proceeds, so they get their own stack.
func (m *M) call(thunk cell.I) cell.I {
	sub := &M{winds: m.winds, maxSteps: m.maxSteps, maxDepth: m.maxDepth}
	sub.apply(thunk, pair.Null)

	return sub.run()
}

func (m *M) push(f frame) {
	m.stack = append(m.stack, f)

	if len(m.stack) > m.high {
		m.high = len(m.stack)
	}

	if m.maxDepth > 0 && len(m.stack) > m.maxDepth {
		panic(ErrDepthLimit)
	}
}

func (m *M) reduceTo(c cell.I, e scope.I) {
	m.code = c
	m.env = e
	m.evaluating = true
}

func (m *M) ret(v cell.I) {
	m.value = v
	m.evaluating = false
}

// sequence evaluates the expressions in body in order, in the scope e.
// The final expression is reduced in place so that it is a proper tail
// call; an empty body produces the empty list.
func (m *M) sequence(body cell.I, e scope.I) {
	if body == pair.Null {
		m.ret(pair.Null)

		return
	}

	if pair.Cdr(body) != pair.Null {
		m.push(&seqFrame{rest: pair.Cdr(body), env: e})
	}

	m.reduceTo(pair.Car(body), e)
}
