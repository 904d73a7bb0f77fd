// Released under an MIT license. See LICENSE.

// Package log writes speak's diagnostics.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/michaelmacinnis/speak/internal/common/errs"
)

const (
	bold  = "\x1b[1m"
	cyan  = "\x1b[36m"
	red   = "\x1b[31m"
	reset = "\x1b[0m"
)

// T (log) writes debug dumps, interactive notices, and errors to w.
type T struct {
	colour  bool
	verbose bool
	w       io.Writer
}

// New creates a new T. Output is coloured when w is a terminal.
func New(w io.Writer, verbose bool) *T {
	colour := false
	if f, ok := w.(*os.File); ok {
		colour = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return &T{colour: colour, verbose: verbose, w: w}
}

// Debug writes text, labelled with kind, if verbose output is enabled.
func (l *T) Debug(kind, text string) {
	if !l.verbose {
		return
	}

	l.write(cyan, kind+"_dump:\n"+text)
}

// Error writes err. Errors from speak are written as reason: message.
func (l *T) Error(err error) {
	if err == nil {
		return
	}

	l.write(red, errs.Wrap(err).Error())
}

// Interactive writes text that is only of interest to a person at a terminal.
func (l *T) Interactive(text string) {
	l.write(bold, text)
}

func (l *T) write(c, s string) {
	s = strings.TrimSuffix(s, "\n")

	if l.colour {
		s = c + s + reset
	}

	_, _ = io.WriteString(l.w, s+"\n")
}
