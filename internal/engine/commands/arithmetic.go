// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/rational"
	"github.com/skein-lang/skein/internal/common/type/num"
	"github.com/skein-lang/skein/internal/common/type/pair"
	"github.com/skein-lang/skein/internal/common/validate"
)

func add(args cell.I) cell.I {
	sum := &big.Rat{}

	for args != pair.Null {
		sum.Add(sum, rational.Number(pair.Car(args)))

		args = pair.Cdr(args)
	}

	return num.Rat(sum)
}

func div(args cell.I) cell.I {
	v, args := validate.Variadic(args, 1, 1)

	quotient := &big.Rat{}
	quotient.Set(rational.Number(v[0]))

	if args == pair.Null {
		// (/ x) is the reciprocal of x.
		return num.Rat(quotient.Inv(nonzero(quotient)))
	}

	for args != pair.Null {
		quotient.Quo(quotient, nonzero(rational.Number(pair.Car(args))))

		args = pair.Cdr(args)
	}

	return num.Rat(quotient)
}

func mod(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	remainder := rational.Number(v[0])
	divisor := rational.Number(v[1])

	if !remainder.IsInt() {
		panic(fault.Type("integer", "'"+remainder.RatString()+"'"))
	}

	if !divisor.IsInt() {
		panic(fault.Type("integer", "'"+divisor.RatString()+"'"))
	}

	if divisor.Sign() == 0 {
		panic(fault.DivByZero())
	}

	dividend := &big.Int{}
	dividend.Set(remainder.Num())

	dividend.Mod(dividend, divisor.Num())

	remainder = &big.Rat{}
	remainder.SetInt(dividend)

	return num.Rat(remainder)
}

func mul(args cell.I) cell.I {
	product := big.NewRat(1, 1)

	for args != pair.Null {
		product.Mul(product, rational.Number(pair.Car(args)))

		args = pair.Cdr(args)
	}

	return num.Rat(product)
}

func sub(args cell.I) cell.I {
	v, args := validate.Variadic(args, 1, 1)

	difference := &big.Rat{}
	difference.Set(rational.Number(v[0]))

	if args == pair.Null {
		// (- x) negates x.
		return num.Rat(difference.Neg(difference))
	}

	for args != pair.Null {
		difference.Sub(difference, rational.Number(pair.Car(args)))

		args = pair.Cdr(args)
	}

	return num.Rat(difference)
}

func nonzero(r *big.Rat) *big.Rat {
	if r.Sign() == 0 {
		panic(fault.DivByZero())
	}

	return r
}
