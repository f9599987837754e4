// Released under an MIT license. See LICENSE.

package machine

import (
	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/scope"
	"github.com/skein-lang/skein/internal/common/type/pair"
	"github.com/skein-lang/skein/internal/common/type/sym"
)

// evalQuote returns its single argument unevaluated.
func evalQuote(m *M, args cell.I, _ scope.I) {
	if args == pair.Null || pair.Cdr(args) != pair.Null {
		panic(fault.Malformed("quote"))
	}

	m.ret(pair.Car(args))
}

// evalIf evaluates the condition and pends the branch decision. Both
// branches are reduced in tail position.
func evalIf(m *M, args cell.I, e scope.I) {
	if args == pair.Null || pair.Cdr(args) == pair.Null {
		panic(fault.Malformed("if"))
	}

	f := &ifFrame{consequent: pair.Cadr(args), env: e}

	rest := pair.Cddr(args)
	if rest != pair.Null {
		if pair.Cdr(rest) != pair.Null {
			panic(fault.Malformed("if"))
		}

		f.alternative = pair.Car(rest)
		f.hasAlt = true
	}

	m.push(f)
	m.reduceTo(pair.Car(args), e)
}

// evalLambda creates a closure over the current scope.
func evalLambda(m *M, args cell.I, e scope.I) {
	if args == pair.Null || pair.Cdr(args) == pair.Null {
		panic(fault.Malformed("lambda"))
	}

	params := pair.Car(args)
	checkParams(params, "lambda")

	m.ret(&Closure{Body: pair.Cdr(args), Params: params, Scope: e})
}

// evalDefine binds a name in the current frame, shadowing outer frames.
// (define (name . params) body ...) is shorthand for binding name to a
// lambda.
func evalDefine(m *M, args cell.I, e scope.I) {
	if args == pair.Null {
		panic(fault.Malformed("define"))
	}

	target := pair.Car(args)

	if pair.Is(target) && target != pair.Null {
		name := pair.Car(target)
		if !sym.Is(name) || pair.Cdr(args) == pair.Null {
			panic(fault.Malformed("define"))
		}

		params := pair.Cdr(target)
		checkParams(params, "define")

		c := &Closure{Body: pair.Cdr(args), Params: params, Scope: e}
		e.Define(sym.To(name).String(), c)

		m.ret(c)

		return
	}

	if !sym.Is(target) || pair.Cdr(args) == pair.Null || pair.Cddr(args) != pair.Null {
		panic(fault.Malformed("define"))
	}

	m.push(&defineFrame{name: sym.To(target).String(), env: e})
	m.reduceTo(pair.Cadr(args), e)
}

// evalSet assigns to an existing binding, wherever in the frame chain it
// resolves. Assigning to an unbound name is a fault.
func evalSet(m *M, args cell.I, e scope.I) {
	if args == pair.Null || !sym.Is(pair.Car(args)) ||
		pair.Cdr(args) == pair.Null || pair.Cddr(args) != pair.Null {
		panic(fault.Malformed("set!"))
	}

	m.push(&setFrame{name: sym.To(pair.Car(args)).String(), env: e})
	m.reduceTo(pair.Cadr(args), e)
}

// evalBegin evaluates its arguments in order, producing the last value.
func evalBegin(m *M, args cell.I, e scope.I) {
	m.sequence(args, e)
}

// evalWhile re-evaluates its body while the condition holds.
func evalWhile(m *M, args cell.I, e scope.I) {
	if args == pair.Null {
		panic(fault.Malformed("while"))
	}

	m.push(&whileTestFrame{cond: pair.Car(args), body: pair.Cdr(args), env: e})
	m.reduceTo(pair.Car(args), e)
}

// checkParams rejects parameter labels that are not a symbol, a list of
// symbols, or a dotted list of symbols.
func checkParams(params cell.I, form string) {
	if sym.Is(params) {
		return
	}

	for pair.Is(params) && params != pair.Null {
		if !sym.Is(pair.Car(params)) {
			panic(fault.Malformed(form))
		}

		params = pair.Cdr(params)
	}

	if params != pair.Null && !sym.Is(params) {
		panic(fault.Malformed(form))
	}
}
