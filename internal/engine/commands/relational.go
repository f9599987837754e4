// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/rational"
	"github.com/skein-lang/skein/internal/common/type/boolean"
	"github.com/skein-lang/skein/internal/common/type/pair"
	"github.com/skein-lang/skein/internal/common/validate"
)

func chain(args cell.I, ok func(int) bool) cell.I {
	v, _ := validate.Variadic(args, 2, 2)

	prev := rational.Number(v[0])

	for args = pair.Cdr(args); args != pair.Null; args = pair.Cdr(args) {
		curr := rational.Number(pair.Car(args))

		if !ok(prev.Cmp(curr)) {
			return boolean.False
		}

		prev = curr
	}

	return boolean.True
}

func eqNum(args cell.I) cell.I {
	return chain(args, func(c int) bool { return c == 0 })
}

func ge(args cell.I) cell.I {
	return chain(args, func(c int) bool { return c >= 0 })
}

func gt(args cell.I) cell.I {
	return chain(args, func(c int) bool { return c > 0 })
}

func le(args cell.I) cell.I {
	return chain(args, func(c int) bool { return c <= 0 })
}

func lt(args cell.I) cell.I {
	return chain(args, func(c int) bool { return c < 0 })
}
