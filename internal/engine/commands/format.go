// Released under an MIT license. See LICENSE.

package commands

import (
	"io"
	"strings"

	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/common/validate"
	"github.com/michaelmacinnis/speak/internal/interface/value"
	"github.com/michaelmacinnis/speak/internal/type/empty"
	"github.com/michaelmacinnis/speak/internal/type/str"
)

// Format replaces each {} in template with the next argument. Placeholders
// without an argument are removed. Arguments without a placeholder are
// ignored.
func Format(template string, args []value.T) string {
	var b strings.Builder

	for i, s := range strings.Split(template, "{}") {
		if i > 0 && i <= len(args) {
			b.WriteString(args[i-1].String())
		}

		b.WriteString(s)
	}

	return b.String()
}

func printTemplate(c *T, name string, args []value.T) (value.T, error) {
	err := validate.Minimum(c.lang, name, len(args), 1)
	if err != nil {
		return nil, err
	}

	return c.write(Format(args[0].String(), args[1:]))
}

func printLine(c *T, _ string, args []value.T) (value.T, error) {
	s := "\n"
	if len(args) > 0 {
		s = Format(args[0].String(), args[1:]) + s
	}

	return c.write(s)
}

func sprint(c *T, name string, args []value.T) (value.T, error) {
	err := validate.Minimum(c.lang, name, len(args), 1)
	if err != nil {
		return nil, err
	}

	return str.New(Format(args[0].String(), args[1:])), nil
}

func (c *T) write(s string) (value.T, error) {
	if c.out == nil {
		return empty.Empty, nil
	}

	_, err := io.WriteString(c.out, s)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	return empty.Empty, nil
}
