// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"os"

	"github.com/skein-lang/skein/internal/common"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/type/pair"
	"github.com/skein-lang/skein/internal/common/validate"
)

func display(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	fmt.Fprint(os.Stdout, common.String(v[0]))

	return v[0]
}

func newline(args cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	fmt.Fprintln(os.Stdout)

	return pair.Null
}

func write(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	fmt.Fprint(os.Stdout, common.Render(v[0]))

	return v[0]
}
