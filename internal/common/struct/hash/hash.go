// Released under an MIT license. See LICENSE.

// Package hash provides skein's name to value mapping type.
package hash

import (
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/reference"
	"github.com/skein-lang/skein/internal/common/struct/slot"
)

// T (hash) maps names to references.
type T struct {
	m map[string]reference.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]reference.I{}}
}

// Get retrieves the reference associated with the name k in the hash h.
func (h *hash) Get(k string) reference.I {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Set associates the name k with a fresh slot holding the cell v.
// An existing binding for k is replaced, not mutated.
func (h *hash) Set(k string, v cell.I) {
	h.m[k] = slot.New(v)
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	return len(h.m)
}
