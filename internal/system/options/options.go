// Released under an MIT license. See LICENSE.

// Package options parses skein's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	args        []string
	command     string
	interactive bool
	script      string
	usage       = `skein

Usage:
  skein SCRIPT [ARGUMENTS...]
  skein -c COMMAND [NAME [ARGUMENTS...]]
  skein [-i] [-s [ARGUMENTS...]]
  skein -h
  skein -v

Arguments:
  ARGUMENTS  Positional parameters.
  SCRIPT     Path to skein script. Also used as the value for $0.
  NAME       Override $0. Otherwise, $0 is set to name used to invoke skein.

Options:
  -c, --command=COMMAND  Evaluate the specified text.
  -i, --interactive      Invert interactive mode.
  -s, --stdin            Read expressions from stdin.
  -h, --help             Display this help.
  -v, --version          Print skein version.

If skein's stdin is a TTY, and skein was invoked with no non-option operands
or skein was explicitly directed to evaluate expressions from stdin, the
interactive line editor is enabled. Otherwise, it is disabled.
`
)

func Args() []string {
	return args
}

func Command() string {
	return command
}

func Interactive() bool {
	return interactive
}

func Parse(version string) {
	opts, err := docopt.ParseArgs(usage, nil, version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	script = ""

	command, _ = opts.String("--command")

	name, _ := opts.String("NAME")
	if name == "" {
		name = os.Args[0]
	}

	path, _ := opts.String("SCRIPT")
	if path != "" {
		name = path
		script = path
	} else if command == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}

	args, _ = opts["ARGUMENTS"].([]string)
	args = append([]string{name}, args...)

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}

func Script() string {
	return script
}
