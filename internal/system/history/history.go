// Released under an MIT license. See LICENSE.

// Package history loads and saves the REPL's line history.
package history

import (
	"io"
	"os"
	"path/filepath"

	"github.com/michaelmacinnis/speak/internal/common/errs"
)

// Name is the name of the history file in the user's home directory.
const Name = ".speak_history"

// Load passes the contents of the history file at path to read.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if err != nil {
		return errs.Wrap(err)
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return errs.Wrap(err)
	}

	return errs.Wrap(f.Close())
}

// Path returns the location of the history file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errs.Wrap(err)
	}

	return filepath.Join(home, Name), nil
}

// Save replaces the history file at path with the output of write.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(err)
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return errs.Wrap(err)
	}

	return errs.Wrap(f.Close())
}
