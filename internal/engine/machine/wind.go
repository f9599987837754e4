// Released under an MIT license. See LICENSE.

package machine

import (
	"github.com/skein-lang/skein/internal/common/interface/cell"
)

// A winder records one active dynamic-wind extent. Winders form a
// heap-resident chain so that a captured continuation can remember which
// extents were active at its capture point.
type winder struct {
	previous *winder
	before   cell.I
	after    cell.I
	depth    int
}

func depth(w *winder) int {
	if w == nil {
		return 0
	}

	return w.depth
}

// reroot moves the machine's wind state from its current extents to
// target, firing the thunks for every extent crossed exactly once: afters
// innermost first on the way out, befores outermost first on the way in.
func (m *M) reroot(target *winder) {
	a, b := m.winds, target

	var entered []*winder

	for depth(a) > depth(b) {
		a = m.exit(a)
	}

	for depth(b) > depth(a) {
		entered = append(entered, b)
		b = b.previous
	}

	for a != b {
		a = m.exit(a)

		entered = append(entered, b)
		b = b.previous
	}

	for i := len(entered) - 1; i >= 0; i-- {
		w := entered[i]

		m.call(w.before)
		m.winds = w
	}
}

// exit leaves the extent of w. The after thunk fires outside the extent
// it guards.
func (m *M) exit(w *winder) *winder {
	m.winds = w.previous
	m.call(w.after)

	return w.previous
}
