// Released under an MIT license. See LICENSE.

// Package commands provides speak's native functions.
package commands

import (
	"io"
	"sort"

	"github.com/michaelmacinnis/speak/internal/interface/value"
	"github.com/michaelmacinnis/speak/internal/lang"
	"github.com/michaelmacinnis/speak/internal/type/frame"
	"github.com/michaelmacinnis/speak/internal/type/native"
)

// T (commands) holds what native functions need from their context.
type T struct {
	lang *lang.T
	out  io.Writer
	read func(string) ([]byte, error)
}

type command = func(*T, string, []value.T) (value.T, error)

// Load binds each native function in f under its name in the language l.
// Print functions write to out. The mod function uses read to access files.
func Load(f *frame.T, l *lang.T, out io.Writer, read func(string) ([]byte, error)) {
	if l == nil {
		l = lang.English()
	}

	c := &T{lang: l, out: out, read: read}

	natives := Natives()

	names := make([]string, 0, len(natives))
	for k := range natives {
		names = append(names, k)
	}

	sort.Strings(names)

	for _, k := range names {
		fn := natives[k]
		name := l.Builtin(k)

		f.Bind(name, native.New(name, func(_ *frame.T, args []value.T) (value.T, error) {
			return fn(c, name, args)
		}))
	}
}

// Natives returns a mapping of canonical names to native functions.
func Natives() map[string]command {
	return map[string]command{
		"bool":    toBool,
		"keys":    keys,
		"len":     length,
		"mod":     mod,
		"number":  toNumber,
		"print":   printTemplate,
		"println": printLine,
		"sprint":  sprint,
		"string":  toString,
	}
}
