// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/truth"
	"github.com/skein-lang/skein/internal/common/type/boolean"
	"github.com/skein-lang/skein/internal/common/type/num"
	"github.com/skein-lang/skein/internal/common/type/pair"
	"github.com/skein-lang/skein/internal/common/type/str"
	"github.com/skein-lang/skein/internal/common/type/sym"
	"github.com/skein-lang/skein/internal/common/validate"
)

func booleanP(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(v[0] == boolean.True || v[0] == boolean.False)
}

// eq compares for identity. Interned symbols, the empty list, and the
// booleans compare equal to themselves; everything else only to the same
// cell.
func eq(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	if v[0] == v[1] {
		return boolean.True
	}

	if sym.Is(v[0]) && sym.Is(v[1]) {
		return boolean.Bool(v[0].Equal(v[1]))
	}

	return boolean.False
}

// equal compares structurally.
func equal(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(v[0].Equal(v[1]))
}

func not(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(!truth.Value(v[0]))
}

func nullP(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(v[0] == pair.Null)
}

func numberP(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(num.Is(v[0]))
}

func pairP(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(pair.Is(v[0]) && v[0] != pair.Null)
}

func stringP(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(str.Is(v[0]))
}

func symbolP(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(sym.Is(v[0]))
}
