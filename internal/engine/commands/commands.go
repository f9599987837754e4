// Released under an MIT license. See LICENSE.

// Package commands provides skein's builtins that compute directly on
// evaluated arguments and need no access to the machine.
package commands

import (
	"github.com/skein-lang/skein/internal/common/interface/cell"
)

// Functions returns skein's builtins, by name.
func Functions() map[string]func(cell.I) cell.I {
	return map[string]func(cell.I) cell.I{
		"*":   mul,
		"+":   add,
		"-":   sub,
		"/":   div,
		"<":   lt,
		"<=":  le,
		"=":   eqNum,
		">":   gt,
		">=":  ge,
		"mod": mod,

		"append":   appendLists,
		"car":      car,
		"cdr":      cdr,
		"cons":     cons,
		"length":   length,
		"list":     makeList,
		"reverse":  reverse,
		"set-car!": setCar,
		"set-cdr!": setCdr,

		"boolean?": booleanP,
		"eq?":      eq,
		"equal?":   equal,
		"not":      not,
		"null?":    nullP,
		"number?":  numberP,
		"pair?":    pairP,
		"string?":  stringP,
		"symbol?":  symbolP,

		"display": display,
		"newline": newline,
		"write":   write,
	}
}
