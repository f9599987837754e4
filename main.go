/*
Skein is a small language built around first-class continuations. A
continuation captures the rest of a computation as a value that can be
stored, passed around, and invoked any number of times:

    (define saved #f)
    (+ 1 (call/cc (lambda (k) (set! saved k) 0)))
    (saved 10)
    (saved 20)

For more detail, see: https://github.com/skein-lang/skein

Skein is released under an MIT-style license.
*/
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/scope"
	"github.com/skein-lang/skein/internal/common/type/list"
	"github.com/skein-lang/skein/internal/common/type/str"
	"github.com/skein-lang/skein/internal/engine"
	"github.com/skein-lang/skein/internal/reader"
	"github.com/skein-lang/skein/internal/system/options"
	"github.com/skein-lang/skein/internal/ui"
)

const version = "skein 0.1.0"

type session struct {
	scope scope.I
}

func (s *session) Evaluate(form cell.I) (cell.I, error) {
	return engine.Evaluate(form, s.scope)
}

func main() {
	options.Parse(version)

	s := &session{scope: engine.NewRootScope()}

	arguments := make([]cell.I, 0, len(options.Args()))
	for _, a := range options.Args() {
		arguments = append(arguments, str.New(a))
	}

	s.scope.Define("arguments", list.New(arguments...))

	switch {
	case options.Command() != "":
		run(s, options.Command())

	case options.Script() != "":
		b, err := os.ReadFile(options.Script())
		if err != nil {
			fmt.Fprintln(os.Stderr, "skein:", err)
			os.Exit(1)
		}

		run(s, string(b))

	case options.Interactive():
		ui.Run(s)

	default:
		scanner := bufio.NewScanner(os.Stdin)

		r := reader.New()
		for scanner.Scan() {
			evaluate(s, r, scanner.Text()+"\n")
		}

		if r.Pending() {
			fmt.Fprintln(os.Stderr, "skein: unexpected end of input")
			os.Exit(1)
		}
	}
}

// run evaluates all of text, exiting on a malformed or failing form.
func run(s *session, text string) {
	r := reader.New()

	evaluate(s, r, text)

	if r.Pending() {
		fmt.Fprintln(os.Stderr, "skein: unexpected end of input")
		os.Exit(1)
	}
}

func evaluate(s *session, r *reader.T, text string) {
	forms, err := r.Scan(text)
	if err != nil {
		fmt.Fprintln(os.Stderr, "skein:", err)
		os.Exit(1)
	}

	for _, form := range forms {
		if _, err := s.Evaluate(form); err != nil {
			fmt.Fprintln(os.Stderr, "skein:", err)
			os.Exit(1)
		}
	}
}
