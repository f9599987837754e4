// Released under an MIT license. See LICENSE.

package reader

import (
	"testing"

	"github.com/skein-lang/skein/internal/common"
	"github.com/skein-lang/skein/internal/common/interface/cell"
)

func scan(t *testing.T, r *T, line string) []cell.I {
	t.Helper()

	forms, err := r.Scan(line)
	if err != nil {
		t.Fatalf("scanning %q: %v", line, err)
	}

	return forms
}

func render(forms []cell.I) []string {
	s := make([]string, 0, len(forms))

	for _, form := range forms {
		s = append(s, common.Render(form))
	}

	return s
}

func match(t *testing.T, got []cell.I, want ...string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", render(got), want)
	}

	for i, w := range want {
		if r := common.Render(got[i]); r != w {
			t.Fatalf("got %v, want %v", render(got), want)
		}
	}
}

func TestCompleteForm(t *testing.T) {
	r := New()

	match(t, scan(t, r, "(+ 1 2)\n"), "(+ 1 2)")

	if r.Pending() {
		t.Error("reader should not be pending")
	}
}

func TestMultipleForms(t *testing.T) {
	r := New()

	match(t, scan(t, r, "1 (a b) \"s\"\n"), "1", "(a b)", "\"s\"")
}

func TestIncrementalForm(t *testing.T) {
	r := New()

	match(t, scan(t, r, "(define (f a)\n"))

	if !r.Pending() {
		t.Fatal("reader should be pending")
	}

	match(t, scan(t, r, "  (+ a 1))\n"), "(define (f a) (+ a 1))")

	if r.Pending() {
		t.Error("reader should not be pending")
	}
}

func TestMultilineString(t *testing.T) {
	r := New()

	match(t, scan(t, r, "\"one\n"))

	if !r.Pending() {
		t.Fatal("reader should be pending")
	}

	match(t, scan(t, r, "two\"\n"), "\"one\\ntwo\"")
}

func TestStringEscapes(t *testing.T) {
	r := New()

	match(t, scan(t, r, `"a\tb\"c"`+"\n"), `"a\tb\"c"`)
	match(t, scan(t, r, `"\x41é"`+"\n"), `"Aé"`)
}

func TestBadStringEscape(t *testing.T) {
	r := New()

	if _, err := r.Scan(`"\q"`+"\n"); err == nil {
		t.Fatal("expected an error for an unknown escape")
	}

	// The reader recovers after a malformed literal.
	match(t, scan(t, r, "1\n"), "1")
}

func TestComments(t *testing.T) {
	r := New()

	match(t, scan(t, r, "; just a comment\n"))

	if r.Pending() {
		t.Error("a comment should not leave the reader pending")
	}

	match(t, scan(t, r, "(+ 1 2) ; trailing\n"), "(+ 1 2)")
}

func TestQuoteSugar(t *testing.T) {
	r := New()

	match(t, scan(t, r, "'x '(1 2)\n"), "(quote x)", "(quote (1 2))")
}

func TestDottedPair(t *testing.T) {
	r := New()

	match(t, scan(t, r, "(1 . 2) (a b . c)\n"), "(1 . 2)", "(a b . c)")
}

func TestAtomClassification(t *testing.T) {
	r := New()

	match(t, scan(t, r, "42 -7 1/2 #t #f foo +\n"),
		"42", "-7", "1/2", "#t", "#f", "foo", "+")
}

func TestUnbalancedClose(t *testing.T) {
	r := New()

	if _, err := r.Scan(")\n"); err == nil {
		t.Fatal("expected an error for an unbalanced close")
	}

	// The reader recovers after a malformed line.
	match(t, scan(t, r, "1\n"), "1")
}

func TestLoneDot(t *testing.T) {
	r := New()

	if _, err := r.Scan("(.)\n"); err == nil {
		t.Fatal("expected an error for a misplaced dot")
	}
}
