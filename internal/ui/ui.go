// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the skein language.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"

	"github.com/skein-lang/skein/internal/common"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/reader"
	"github.com/skein-lang/skein/internal/system/history"
)

// Evaluator is the interface for things that want to process parsed forms.
type Evaluator interface {
	Evaluate(form cell.I) (cell.I, error)
}

// Run reads expressions interactively and sends them to the Evaluator,
// printing each result.
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	err := history.Load(func(r io.Reader) (int, error) {
		return cli.ReadHistory(r)
	})
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "skein: could not load history:", err)
	}

	defer func() {
		err := history.Save(func(w io.Writer) (int, error) {
			return cli.WriteHistory(w)
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "skein: could not save history:", err)
		}
	}()

	r := reader.New()

	for {
		prompt := "> "
		if r.Pending() {
			prompt = ".. "
		}

		line, err := cli.Prompt(prompt)

		switch err {
		case nil:
			cli.AppendHistory(line)
		case liner.ErrPromptAborted:
			r = reader.New()

			continue
		default:
			fmt.Fprintln(os.Stdout)

			return
		}

		forms, err := r.Scan(line + "\n")
		if err != nil {
			fmt.Fprintln(os.Stderr, "skein:", err)

			continue
		}

		for _, form := range forms {
			v, err := e.Evaluate(form)
			if err != nil {
				fmt.Fprintln(os.Stderr, "skein:", err)

				continue
			}

			fmt.Fprintln(os.Stdout, common.Render(v))
		}
	}
}
