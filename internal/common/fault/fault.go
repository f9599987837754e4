// Released under an MIT license. See LICENSE.

// Package fault provides skein's language-level error values.
//
// Faults are raised with panic inside the evaluator and recovered at the
// engine boundary where they become ordinary Go errors. A fault aborts the
// evaluation of the current form; it never corrupts the environment or any
// captured continuation, so a host can keep evaluating subsequent forms.
package fault

import (
	"fmt"
)

// Kind labels the class of a language-level fault.
type Kind int

const (
	UnboundVariable Kind = iota
	TypeMismatch
	ArityError
	NotCallable
	DivisionByZero
	MalformedSpecialForm
)

// T (fault) is an error detected during evaluation.
type T struct {
	kind Kind
	text string
}

type fault = T

// New creates a fault of kind k.
func New(k Kind, format string, args ...interface{}) *fault {
	return &fault{kind: k, text: fmt.Sprintf(format, args...)}
}

// Arity creates an arity fault. Both counts are preformatted strings so
// that callers can say things like "at least 2 arguments".
func Arity(expected string, passed int) *fault {
	return New(ArityError, "expected %s, passed %d", expected, passed)
}

// DivByZero creates a division-by-zero fault.
func DivByZero() *fault {
	return New(DivisionByZero, "division by zero")
}

// Malformed creates a fault for a special form that does not have the
// required shape.
func Malformed(form string) *fault {
	return New(MalformedSpecialForm, "malformed special form: %s", form)
}

// Type creates a type mismatch fault.
func Type(expected, got string) *fault {
	return New(TypeMismatch, "expected %s, got %s", expected, got)
}

// Unbound creates a fault for a reference to an undefined variable.
func Unbound(name string) *fault {
	return New(UnboundVariable, "unbound variable: %s", name)
}

// Uncallable creates a fault for an attempt to apply a non-callable value.
func Uncallable(name string) *fault {
	return New(NotCallable, "%s is not callable", name)
}

// Error makes a fault an error.
func (f *fault) Error() string {
	return f.text
}

// Kind returns the class of the fault f.
func (f *fault) Kind() Kind {
	return f.kind
}
