// Released under an MIT license. See LICENSE.

/*
Speak is a small, dynamically typed expression language.

	x := 5
	f := (n) => n + 1
	println "{} {}" x f(x)

Programs are sequences of expressions separated by newlines or semicolons.
Keywords, builtin names, and messages can be localized by selecting a
language with --lang or SPEAK_LANG.
*/
package main

import (
	"fmt"
	"os"

	"github.com/michaelmacinnis/speak/internal/engine"
	"github.com/michaelmacinnis/speak/internal/lang"
	"github.com/michaelmacinnis/speak/internal/system/log"
	"github.com/michaelmacinnis/speak/internal/system/options"
	"github.com/michaelmacinnis/speak/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	stderr := log.New(os.Stderr, false)

	opts, err := options.Parse(argv)
	if err != nil {
		fmt.Fprint(os.Stderr, options.Usage())

		return 2
	}

	if opts.Help != "" {
		fmt.Println(opts.Help)

		return 0
	}

	l, err := lang.Load(opts.Language)
	if err != nil {
		stderr.Error(err)

		return 1
	}

	debug := log.New(os.Stderr, opts.Verbose)

	e := engine.New(opts.Verbose, engine.WithLanguage(l), engine.WithDebug(debug.Debug))

	if opts.File != "" {
		v, err := e.RunPath(opts.File)
		if err != nil {
			stderr.Error(err)

			return 1
		}

		log.New(os.Stdout, false).Interactive(v.String())

		return 0
	}

	u := ui.New(e, log.New(os.Stdout, false))

	if opts.Interactive {
		err = u.Interactive()
	} else {
		err = u.Run(os.Stdin)
	}

	if err != nil {
		stderr.Error(err)

		return 1
	}

	return 0
}
