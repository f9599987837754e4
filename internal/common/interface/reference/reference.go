// Released under an MIT license. See LICENSE.

// Package reference defines the interface for skein's variable type.
package reference

import (
	"github.com/skein-lang/skein/internal/common/interface/cell"
)

// I (reference) is anything that can hold a value. References are shared,
// never copied: a mutation through one alias is visible through all others.
type I interface {
	Get() cell.I
	Set(cell.I)
}
