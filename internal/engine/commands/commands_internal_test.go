// Released under an MIT license. See LICENSE.

package commands

import (
	"testing"

	"github.com/skein-lang/skein/internal/common"
	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/type/list"
	"github.com/skein-lang/skein/internal/common/type/num"
)

func want(t *testing.T, do func(cell.I) cell.I, args cell.I, expected string) {
	t.Helper()

	if got := common.Render(do(args)); got != expected {
		t.Errorf("got %s, want %s", got, expected)
	}
}

// kind runs do and returns the kind of the fault it raises. It fails the
// test if do completes.
func kind(t *testing.T, do func(cell.I) cell.I, args cell.I) fault.Kind {
	t.Helper()

	k := fault.Kind(-1)

	func() {
		defer func() {
			f, ok := recover().(*fault.T)
			if !ok {
				t.Fatal("expected a fault")
			}

			k = f.Kind()
		}()

		do(args)
	}()

	return k
}

func TestArithmeticIsExact(t *testing.T) {
	want(t, add, list.New(num.New("0.1"), num.New("0.2")), "3/10")
	want(t, mul, list.New(num.New("1/3"), num.New("3")), "1")
	want(t, sub, list.New(num.New("1"), num.New("2/3")), "1/3")
	want(t, div, list.New(num.New("1"), num.New("3")), "1/3")
}

func TestAddOfNothingIsZero(t *testing.T) {
	want(t, add, list.New(), "0")
	want(t, mul, list.New(), "1")
}

func TestUnaryMinusAndReciprocal(t *testing.T) {
	want(t, sub, list.New(num.New("5")), "-5")
	want(t, div, list.New(num.New("4")), "1/4")
}

func TestModIsNonNegative(t *testing.T) {
	want(t, mod, list.New(num.New("7"), num.New("5")), "2")
	want(t, mod, list.New(num.New("-7"), num.New("5")), "3")
}

func TestDivisionByZero(t *testing.T) {
	args := list.New(num.New("1"), num.New("0"))

	if k := kind(t, div, args); k != fault.DivisionByZero {
		t.Errorf("got kind %v, want DivisionByZero", k)
	}

	if k := kind(t, mod, args); k != fault.DivisionByZero {
		t.Errorf("got kind %v, want DivisionByZero", k)
	}
}

func TestCarOfNonPair(t *testing.T) {
	if k := kind(t, car, list.New(num.New("1"))); k != fault.TypeMismatch {
		t.Errorf("got kind %v, want TypeMismatch", k)
	}
}

func TestCarOfEmptyList(t *testing.T) {
	if k := kind(t, car, list.New(list.New())); k != fault.TypeMismatch {
		t.Errorf("got kind %v, want TypeMismatch", k)
	}
}

func TestArityFault(t *testing.T) {
	if k := kind(t, cons, list.New(num.New("1"))); k != fault.ArityError {
		t.Errorf("got kind %v, want ArityError", k)
	}
}

func TestRelationalChains(t *testing.T) {
	want(t, lt, list.New(num.New("1"), num.New("2"), num.New("3")), "#t")
	want(t, lt, list.New(num.New("1"), num.New("3"), num.New("2")), "#f")
	want(t, eqNum, list.New(num.New("1/2"), num.New("2/4"), num.New("0.5")), "#t")
	want(t, ge, list.New(num.New("3"), num.New("3"), num.New("1")), "#t")
}

func TestAppendSharesTail(t *testing.T) {
	tail := list.New(num.New("3"))
	joined := appendLists(list.New(list.New(num.New("1"), num.New("2")), tail))

	want(t, cdr, list.New(cdr(list.New(joined))), "(3)")

	// The final list is the tail, not a copy of it.
	setCar(list.New(tail, num.New("9")))
	want(t, car, list.New(joined), "1")

	if got := common.Render(joined); got != "(1 2 9)" {
		t.Errorf("got %s, want (1 2 9)", got)
	}
}
