// Released under an MIT license. See LICENSE.

//go:build !windows

package history

import (
	"os"
	"path"

	"golang.org/x/sys/unix"
)

func file(op func(string) (*os.File, error)) (*os.File, error) {
	f, err := op(path.Join(os.Getenv("HOME"), ".skein_history"))
	if err != nil {
		return nil, err
	}

	// Concurrent sessions write history on exit.
	err = unix.Flock(int(f.Fd()), unix.LOCK_EX)
	if err != nil {
		f.Close()

		return nil, err
	}

	return f, nil
}

func unlock(f *os.File) {
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
