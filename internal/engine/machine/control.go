// Released under an MIT license. See LICENSE.

package machine

import (
	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/type/list"
	"github.com/skein-lang/skein/internal/common/type/pair"
	"github.com/skein-lang/skein/internal/common/validate"
)

// callWithCC captures the current continuation and applies proc to it, in
// the current dynamic context. If the continuation is never invoked the
// value of the call/cc expression is whatever proc returns; each
// invocation of the continuation produces another, independent return.
func callWithCC(m *M, args cell.I) {
	v := validate.Fixed(args, 1, 1)

	m.apply(v[0], list.New(m.capture()))
}

// applyProc applies a procedure to a spread argument list, in tail
// position: (apply f a b '(c d)) is (f a b c d).
func applyProc(m *M, args cell.I) {
	s := list.Slice(args)
	if len(s) < 2 {
		panic(fault.Arity("at least 2 arguments", len(s)))
	}

	tail := s[len(s)-1]
	if !pair.Is(tail) {
		panic(fault.Type("list", tail.Name()))
	}

	for i := len(s) - 2; i > 0; i-- {
		tail = pair.Cons(s[i], tail)
	}

	m.apply(s[0], tail)
}

// dynamicWind runs thunk with before and after guarding its dynamic
// extent. The guards fire exactly once per boundary crossing, including
// crossings caused by continuation invocation into or out of the extent.
func dynamicWind(m *M, args cell.I) {
	v := validate.Fixed(args, 3, 3)

	m.call(v[0])

	w := &winder{previous: m.winds, before: v[0], after: v[2], depth: depth(m.winds) + 1}
	m.winds = w

	m.push(&windFrame{w: w})
	m.apply(v[1], pair.Null)
}
