// Released under an MIT license. See LICENSE.

// Package validate provides argument validation helpers for builtins.
package validate

import (
	"fmt"

	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/type/list"
	"github.com/skein-lang/skein/internal/common/type/pair"
)

// Variadic unpacks between min and max arguments from the list actual and
// returns them along with any remaining arguments.
func Variadic(actual cell.I, min, max int) ([]cell.I, cell.I) {
	expected := make([]cell.I, 0, max)

	for i := 0; i < max; i++ {
		if actual == pair.Null {
			if i < min {
				panic(fault.Arity(Count(min, "argument", "s"), i))
			}

			break
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual
}

// Fixed unpacks between min and max arguments from the list actual and
// panics if any arguments remain.
func Fixed(actual cell.I, min, max int) []cell.I {
	expected, rest := Variadic(actual, min, max)
	if rest != pair.Null {
		panic(fault.Arity(Count(max, "argument", "s"), list.Length(actual)))
	}

	return expected
}

// Count formats a count with the label pluralized as required.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
