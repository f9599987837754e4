// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of pairs.
package list

import (
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/type/pair"
)

// Length returns the number of elements in the list l.
// The list must be proper and non-circular.
func Length(l cell.I) int {
	n := 0

	for l != pair.Null {
		n++

		l = pair.Cdr(l)
	}

	return n
}

// New creates a list of the elements given.
func New(elements ...cell.I) cell.I {
	l := pair.Null

	for i := len(elements) - 1; i >= 0; i-- {
		l = pair.Cons(elements[i], l)
	}

	return l
}

// Reverse returns a new list with the elements of l in reverse order.
func Reverse(l cell.I) cell.I {
	r := pair.Null

	for l != pair.Null {
		r = pair.Cons(pair.Car(l), r)

		l = pair.Cdr(l)
	}

	return r
}

// Slice returns the elements of the list l as a Go slice.
func Slice(l cell.I) []cell.I {
	s := []cell.I{}

	for l != pair.Null {
		s = append(s, pair.Car(l))

		l = pair.Cdr(l)
	}

	return s
}
