// Released under an MIT license. See LICENSE.

package reader

import (
	"github.com/skein-lang/skein/internal/common/struct/token"
)

// lex tokenizes the input text. A string literal that runs past the end of
// the text produces errIncomplete so that the caller can ask for more.
func lex(text string) ([]token.T, error) {
	tokens := []token.T{}

	i := 0
	n := len(text)

	for i < n {
		c := text[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case c == ';':
			for i < n && text[i] != '\n' {
				i++
			}

		case c == '(':
			tokens = append(tokens, token.T{Kind: token.LParen, Text: "(", Pos: i, End: i + 1})
			i++

		case c == ')':
			tokens = append(tokens, token.T{Kind: token.RParen, Text: ")", Pos: i, End: i + 1})
			i++

		case c == '\'':
			tokens = append(tokens, token.T{Kind: token.Quote, Text: "'", Pos: i, End: i + 1})
			i++

		case c == '"':
			t, end, err := lexString(text, i)
			if err != nil {
				return tokens, err
			}

			tokens = append(tokens, t)
			i = end

		default:
			start := i
			for i < n && !delimiter(text[i]) {
				i++
			}

			s := text[start:i]
			if s == "." {
				tokens = append(tokens, token.T{Kind: token.Dot, Text: s, Pos: start, End: i})
			} else {
				tokens = append(tokens, token.T{Kind: token.Atom, Text: s, Pos: start, End: i})
			}
		}
	}

	return tokens, nil
}

// lexString scans a string literal starting at the opening double quote.
// The token's text is the raw content between the quotes; escape sequences
// are decoded by the parser.
func lexString(text string, start int) (token.T, int, error) {
	i := start + 1
	n := len(text)

	for i < n {
		switch text[i] {
		case '"':
			t := token.T{Kind: token.String, Text: text[start+1 : i], Pos: start, End: i + 1}

			return t, i + 1, nil

		case '\\':
			if i+1 >= n {
				return token.T{}, n, errIncomplete
			}

			i += 2

		default:
			i++
		}
	}

	return token.T{}, n, errIncomplete
}

func delimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')', '\'', '"', ';':
		return true
	}

	return false
}
