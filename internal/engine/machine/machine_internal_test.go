// Released under an MIT license. See LICENSE.

package machine

import (
	"errors"
	"testing"

	"github.com/skein-lang/skein/internal/common"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/scope"
	"github.com/skein-lang/skein/internal/common/type/env"
	"github.com/skein-lang/skein/internal/common/type/pair"
	"github.com/skein-lang/skein/internal/engine/commands"
	"github.com/skein-lang/skein/internal/reader"
)

type harness struct {
	t     *testing.T
	scope scope.I
	trace []string
	high  int
}

func setup(t *testing.T) *harness {
	h := &harness{t: t, scope: env.New(nil)}

	for name, do := range commands.Functions() {
		h.scope.Define(name, NewPrimitive(name, do))
	}

	Install(h.scope)

	// note records its argument so tests can check evaluation order.
	h.scope.Define("note", NewPrimitive("note", func(args cell.I) cell.I {
		h.trace = append(h.trace, common.String(pair.Car(args)))

		return pair.Null
	}))

	return h
}

// eval evaluates each form of src, returning the last value. The high-water
// mark of the deepest machine is recorded.
func (h *harness) eval(src string, steps, depth int) (cell.I, error) {
	h.t.Helper()

	forms, err := reader.New().Scan(src + "\n")
	if err != nil {
		h.t.Fatalf("parsing %q: %v", src, err)
	}

	var v cell.I

	for _, form := range forms {
		m := New(form, h.scope).Cap(steps, depth)

		v, err = m.Run()

		if m.high > h.high {
			h.high = m.high
		}

		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (h *harness) want(src, want string) {
	h.t.Helper()

	v, err := h.eval(src, 0, 0)
	if err != nil {
		h.t.Fatalf("unexpected error: %v", err)
	}

	if got := common.Render(v); got != want {
		h.t.Errorf("got %s, want %s", got, want)
	}
}

func TestTailCallsRunInConstantSpace(t *testing.T) {
	h := setup(t)

	h.want(`
(define (count n) (if (= n 0) 'done (count (- n 1))))
(count 100000)
`, "done")

	if h.high > 16 {
		t.Errorf("frame stack reached %d frames, want a small constant", h.high)
	}
}

func TestWhileRunsInConstantSpace(t *testing.T) {
	h := setup(t)

	h.want(`
(define n 100000)
(while (> n 0) (set! n (- n 1)))
n
`, "0")

	if h.high > 16 {
		t.Errorf("frame stack reached %d frames, want a small constant", h.high)
	}
}

func TestStepLimit(t *testing.T) {
	h := setup(t)

	_, err := h.eval("(define (loop) (loop)) (loop)", 10000, 0)
	if !errors.Is(err, ErrStepLimit) {
		t.Errorf("got %v, want %v", err, ErrStepLimit)
	}
}

func TestDepthLimit(t *testing.T) {
	h := setup(t)

	_, err := h.eval("(define (grow n) (+ 1 (grow n))) (grow 0)", 0, 64)
	if !errors.Is(err, ErrDepthLimit) {
		t.Errorf("got %v, want %v", err, ErrDepthLimit)
	}
}

func TestMultiShotContinuation(t *testing.T) {
	h := setup(t)

	h.want(`
(define saved #f)
(+ 1 (call/cc (lambda (k) (set! saved k) 0)))
(saved 10)
`, "11")

	// The same continuation again, and mutations made since the capture
	// are visible on this resumption too.
	h.want("(saved 41)", "42")
}

func TestCaptureSharesEnvironment(t *testing.T) {
	h := setup(t)

	// x is in operand position after the capture point, so each
	// resumption reads it afresh.
	h.want(`
(define saved #f)
(define x 1)
(+ (call/cc (lambda (k) (set! saved k) 0)) x)
(set! x 100)
(saved 0)
`, "100")
}

func TestWindOrderingOnEscape(t *testing.T) {
	h := setup(t)

	_, err := h.eval(`
(call/cc (lambda (k)
  (dynamic-wind
    (lambda () (note 'b1))
    (lambda ()
      (dynamic-wind
        (lambda () (note 'b2))
        (lambda () (k 0))
        (lambda () (note 'a2))))
    (lambda () (note 'a1)))))
`, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Befores fire outermost first, afters innermost first.
	want := []string{"b1", "b2", "a2", "a1"}
	if len(h.trace) != len(want) {
		t.Fatalf("got trace %v, want %v", h.trace, want)
	}

	for i, s := range want {
		if h.trace[i] != s {
			t.Fatalf("got trace %v, want %v", h.trace, want)
		}
	}
}

func TestWindReentry(t *testing.T) {
	h := setup(t)

	_, err := h.eval(`
(define saved #f)
(dynamic-wind
  (lambda () (note 'in))
  (lambda () (call/cc (lambda (k) (set! saved k))))
  (lambda () (note 'out)))
(define k saved)
(set! saved #f)
(if k (k 0) 'done)
`, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"in", "out", "in", "out"}
	if len(h.trace) != len(want) {
		t.Fatalf("got trace %v, want %v", h.trace, want)
	}

	for i, s := range want {
		if h.trace[i] != s {
			t.Fatalf("got trace %v, want %v", h.trace, want)
		}
	}
}

func TestNestedWindReentry(t *testing.T) {
	h := setup(t)

	_, err := h.eval(`
(define saved #f)
(dynamic-wind
  (lambda () (note 'b1))
  (lambda ()
    (dynamic-wind
      (lambda () (note 'b2))
      (lambda () (call/cc (lambda (k) (set! saved k))))
      (lambda () (note 'a2))))
  (lambda () (note 'a1)))
(define k saved)
(set! saved #f)
(if k (k 0) 'done)
`, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Re-entering two extents fires b1 then b2; leaving them again
	// fires a2 then a1.
	want := []string{"b1", "b2", "a2", "a1", "b1", "b2", "a2", "a1"}
	if len(h.trace) != len(want) {
		t.Fatalf("got trace %v, want %v", h.trace, want)
	}

	for i, s := range want {
		if h.trace[i] != s {
			t.Fatalf("got trace %v, want %v", h.trace, want)
		}
	}
}

func TestFaultLeavesScopeIntact(t *testing.T) {
	h := setup(t)

	if _, err := h.eval("(define x 1) (car 1)", 0, 0); err == nil {
		t.Fatal("expected a type error")
	}

	h.want("x", "1")
}
