// Released under an MIT license. See LICENSE.

// Package options parses speak's command-line arguments.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"

	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/lang"
)

// Version is reported by --version.
const Version = "speak 0.1.0"

//nolint:gochecknoglobals
var usage = `speak

Usage:
  speak [-v] [--lang=NAME] run FILE
  speak [-v] [--lang=NAME] [repl]
  speak -h
  speak --version

Arguments:
  FILE  Path to a speak program.

Options:
  -l, --lang=NAME  Language for keywords, builtins, and messages.
  -v, --verbose    Log tokens, syntax trees, and frames.
  -h, --help       Display this help.
  --version        Print speak version.

The language can also be set with the SPEAK_LANG environment variable.
Without a FILE, speak reads expressions from stdin. When stdin is a
terminal, the line editor and history are enabled.
`

// T (options) holds the parsed command line.
type T struct {
	File        string // Program to run, if any.
	Help        string // Help or version text to print instead of running.
	Interactive bool   // Stdin is a terminal.
	Language    string // Name of the language table.
	Verbose     bool   // Debug dumps are enabled.
}

// Parse parses argv, which should not include the program name.
func Parse(argv []string) (*T, error) {
	help := ""

	p := &docopt.Parser{
		HelpHandler: func(_ error, usage string) {
			help = usage
		},
	}

	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, errs.New(errs.System, "%s", help)
	}

	if help != "" {
		return &T{Help: help}, nil
	}

	t := &T{
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
		Language:    lang.Default,
	}

	if s, ok := os.LookupEnv("SPEAK_LANG"); ok && s != "" {
		t.Language = s
	}

	if s, _ := opts.String("--lang"); s != "" {
		t.Language = s
	}

	if run, _ := opts.Bool("run"); run {
		t.File, _ = opts.String("FILE")
	}

	t.Verbose, _ = opts.Bool("--verbose")

	return t, nil
}

// Usage returns the usage text.
func Usage() string {
	return usage
}
