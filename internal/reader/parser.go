// Released under an MIT license. See LICENSE.

package reader

import (
	"errors"
	"math/big"

	"github.com/michaelmacinnis/adapted"

	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/struct/token"
	"github.com/skein-lang/skein/internal/common/type/boolean"
	"github.com/skein-lang/skein/internal/common/type/num"
	"github.com/skein-lang/skein/internal/common/type/pair"
	"github.com/skein-lang/skein/internal/common/type/str"
	"github.com/skein-lang/skein/internal/common/type/sym"
)

// errIncomplete indicates that more text is required to finish the form
// being parsed.
var errIncomplete = errors.New("incomplete")

type parser struct {
	tokens []token.T
	index  int
}

// next returns the current token and advances past it.
func (p *parser) next() (token.T, error) {
	if p.index >= len(p.tokens) {
		return token.T{}, errIncomplete
	}

	t := p.tokens[p.index]
	p.index++

	return t, nil
}

// peek returns the current token without advancing.
func (p *parser) peek() (token.T, error) {
	if p.index >= len(p.tokens) {
		return token.T{}, errIncomplete
	}

	return p.tokens[p.index], nil
}

// form parses one expression.
func (p *parser) form() (cell.I, error) {
	t, err := p.next()
	if err != nil {
		return nil, err
	}

	switch t.Kind {
	case token.Atom:
		return atom(t.Text), nil

	case token.String:
		s, err := adapted.ActualBytes(t.Text)
		if err != nil {
			return nil, errors.New("bad escape in string literal")
		}

		return str.New(s), nil

	case token.Quote:
		quoted, err := p.form()
		if err != nil {
			return nil, err
		}

		return pair.Cons(sym.New("quote"), pair.Cons(quoted, pair.Null)), nil

	case token.LParen:
		return p.list()

	case token.Dot:
		return nil, errors.New("unexpected '.'")

	case token.RParen:
		return nil, errors.New("unexpected ')'")
	}

	return nil, errors.New("unexpected token '" + t.Text + "'")
}

// list parses the remainder of a list, the opening parenthesis having been
// consumed. A dot introduces the tail of an improper list.
func (p *parser) list() (cell.I, error) {
	elements := []cell.I{}
	tail := cell.I(pair.Null)

	for {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}

		if t.Kind == token.RParen {
			p.index++

			break
		}

		if t.Kind == token.Dot {
			if len(elements) == 0 {
				return nil, errors.New("unexpected '.'")
			}

			p.index++

			tail, err = p.form()
			if err != nil {
				return nil, err
			}

			t, err = p.next()
			if err != nil {
				return nil, err
			}

			if t.Kind != token.RParen {
				return nil, errors.New("expected ')' after dotted tail")
			}

			break
		}

		element, err := p.form()
		if err != nil {
			return nil, err
		}

		elements = append(elements, element)
	}

	l := tail
	for i := len(elements) - 1; i >= 0; i-- {
		l = pair.Cons(elements[i], l)
	}

	return l, nil
}

// atom classifies bare text as a boolean, a number, or a symbol.
func atom(text string) cell.I {
	switch text {
	case "#t":
		return boolean.True
	case "#f":
		return boolean.False
	}

	r := &big.Rat{}
	if _, ok := r.SetString(text); ok {
		return num.Rat(r)
	}

	return sym.New(text)
}
