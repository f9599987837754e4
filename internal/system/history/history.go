// Released under an MIT license. See LICENSE.

// Package history persists the interactive line editor's history.
package history

import (
	"io"
	"os"
)

// Load opens the history file and passes it to read.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return err
	}

	defer unlock(f)

	_, err = read(f)
	if err != nil {
		return err
	}

	return f.Close()
}

// Save opens the history file for writing and passes it to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	defer unlock(f)

	_, err = write(f)
	if err != nil {
		return err
	}

	return f.Close()
}
