// Released under an MIT license. See LICENSE.

// Package reader turns text into skein cells. It is incremental: text can
// arrive a line at a time and forms are produced as they complete.
package reader

import (
	"github.com/skein-lang/skein/internal/common/interface/cell"
)

// T (reader) accumulates text across calls to Scan until it holds one or
// more complete forms.
type T struct {
	buffered string
}

type reader = T

// New creates a new reader.
func New() *reader {
	return &reader{}
}

// Scan adds line to the buffered text and returns the complete forms now
// available. A nil slice with a nil error means more text is required. A
// non-nil error means the buffered text was malformed; the reader discards
// it and starts fresh.
func (r *reader) Scan(line string) ([]cell.I, error) {
	r.buffered += line

	tokens, err := lex(r.buffered)
	if err != nil {
		// An unterminated string. Wait for the closing quote.
		return nil, nil
	}

	p := &parser{tokens: tokens}

	forms := []cell.I{}
	consumed := 0
	incomplete := false

	for p.index < len(p.tokens) {
		form, err := p.form()
		if err == errIncomplete {
			incomplete = true

			break
		}

		if err != nil {
			r.buffered = ""

			return nil, err
		}

		forms = append(forms, form)
		consumed = p.tokens[p.index-1].End
	}

	if incomplete {
		r.buffered = r.buffered[consumed:]
	} else {
		// Anything left over is whitespace or comments.
		r.buffered = ""
	}

	if len(forms) == 0 {
		return nil, nil
	}

	return forms, nil
}

// Pending returns true if the reader is holding text that does not yet form
// a complete expression.
func (r *reader) Pending() bool {
	for _, c := range r.buffered {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}

		return true
	}

	return false
}
