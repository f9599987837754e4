// Released under an MIT license. See LICENSE.

package machine

import (
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/scope"
	"github.com/skein-lang/skein/internal/common/type/boolean"
	"github.com/skein-lang/skein/internal/common/validate"
)

// Install defines skein's special forms and control primitives in the
// scope s.
func Install(s scope.I) {
	// Special forms.
	s.Define("begin", &Syntax{name: "begin", do: evalBegin})
	s.Define("define", &Syntax{name: "define", do: evalDefine})
	s.Define("if", &Syntax{name: "if", do: evalIf})
	s.Define("lambda", &Syntax{name: "lambda", do: evalLambda})
	s.Define("quote", &Syntax{name: "quote", do: evalQuote})
	s.Define("set!", &Syntax{name: "set!", do: evalSet})
	s.Define("while", &Syntax{name: "while", do: evalWhile})

	// Control primitives.
	cc := &Control{name: "call/cc", do: callWithCC}
	s.Define("call/cc", cc)
	s.Define("call-with-current-continuation", cc)

	s.Define("apply", &Control{name: "apply", do: applyProc})
	s.Define("dynamic-wind", &Control{name: "dynamic-wind", do: dynamicWind})

	// Predicates that need access to the machine's types.
	s.Define("procedure?", NewPrimitive("procedure?", procedureP))
	s.Define("continuation?", NewPrimitive("continuation?", continuationP))
}

func procedureP(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	switch v[0].(type) {
	case *Closure, *Continuation, *Control, *Primitive:
		return boolean.True
	}

	return boolean.False
}

func continuationP(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	_, ok := v[0].(*Continuation)

	return boolean.Bool(ok)
}
