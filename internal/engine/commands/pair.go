// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/type/list"
	"github.com/skein-lang/skein/internal/common/type/num"
	"github.com/skein-lang/skein/internal/common/type/pair"
	"github.com/skein-lang/skein/internal/common/validate"
)

func appendLists(args cell.I) cell.I {
	if args == pair.Null {
		return pair.Null
	}

	var front []cell.I

	for pair.Cdr(args) != pair.Null {
		l := pair.To(pair.Car(args))

		for l != pair.Null {
			front = append(front, pair.Car(l))

			l = pair.To(pair.Cdr(l))
		}

		args = pair.Cdr(args)
	}

	// The final argument becomes the tail and need not be a list.
	tail := pair.Car(args)

	for i := len(front) - 1; i >= 0; i-- {
		tail = pair.Cons(front[i], tail)
	}

	return tail
}

func car(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return pair.Car(nonEmpty(v[0]))
}

func cdr(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return pair.Cdr(nonEmpty(v[0]))
}

func cons(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return pair.Cons(v[0], v[1])
}

func length(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	n := &big.Rat{}
	n.SetInt64(int64(list.Length(pair.To(v[0]))))

	return num.Rat(n)
}

func makeList(args cell.I) cell.I {
	return args
}

func reverse(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return list.Reverse(pair.To(v[0]))
}

func setCar(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	pair.SetCar(nonEmpty(v[0]), v[1])

	return v[1]
}

func setCdr(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	pair.SetCdr(nonEmpty(v[0]), v[1])

	return v[1]
}

// nonEmpty rejects the empty list. Null is a pair internally but car, cdr,
// and the mutators must not treat it as one.
func nonEmpty(c cell.I) cell.I {
	if c == pair.Null {
		panic(fault.Type("pair", "null"))
	}

	return c
}
