// Released under an MIT license. See LICENSE.

// Package token provides the token type shared by skein's lexer and parser.
package token

// Kind classifies a token.
type Kind int

const (
	Atom Kind = iota
	LParen
	RParen
	Quote
	Dot
	String
)

// T (token) is a lexeme with its position in the scanned text.
type T struct {
	Kind Kind
	Text string
	Pos  int // Byte offset of the first byte of the token.
	End  int // Byte offset just past the last byte of the token.
}
