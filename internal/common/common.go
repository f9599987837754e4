// Released under an MIT license. See LICENSE.

// Package common defines common interfaces and rendering helpers.
package common

import (
	"fmt"

	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/literal"
)

type Stringer = fmt.Stringer

// String returns the display text for a cell: strings print their raw
// characters, everything else prints the way it is written.
func String(c cell.I) string {
	if s, ok := c.(Stringer); ok {
		return s.String()
	}

	return Render(c)
}

// Render returns the written representation for a cell. Cells with no
// literal representation render as an opaque #<name>.
func Render(c cell.I) string {
	if l, ok := c.(literal.I); ok {
		return l.Literal()
	}

	if s, ok := c.(Stringer); ok {
		return s.String()
	}

	return "#<" + c.Name() + ">"
}
