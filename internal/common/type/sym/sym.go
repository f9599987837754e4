// Released under an MIT license. See LICENSE.

// Package sym provides skein's symbol type.
package sym

import (
	"sync"

	"github.com/skein-lang/skein/internal/common"
	"github.com/skein-lang/skein/internal/common/fault"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/literal"
)

const (
	name  = "symbol"
	short = 3
)

// T (sym) wraps Go's string type. Short and common symbols are interned.
type T string

type sym = T

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.Mutex{}
)

// New creates a sym cell.
func New(v string) cell.I {
	if len(v) > short {
		s := sym(v)

		return &s
	}

	cachel.Lock()
	defer cachel.Unlock()

	if p, ok := cache[v]; ok {
		return p
	}

	s := sym(v)
	p := &s
	cache[v] = p

	return p
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// To returns a *T if c is a sym; otherwise it panics.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic(fault.Type(name, c.Name()))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
