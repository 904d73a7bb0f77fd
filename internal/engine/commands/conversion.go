// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/common/validate"
	"github.com/michaelmacinnis/speak/internal/interface/value"
	"github.com/michaelmacinnis/speak/internal/type/boolean"
	"github.com/michaelmacinnis/speak/internal/type/num"
	"github.com/michaelmacinnis/speak/internal/type/str"
)

func toBool(c *T, name string, args []value.T) (value.T, error) {
	err := validate.Fixed(c.lang, name, len(args), 1, 1)
	if err != nil {
		return nil, err
	}

	v := args[0]

	switch {
	case boolean.Is(v):
		return v, nil
	case str.Is(v):
		switch v.String() {
		case "true", c.lang.Keyword("true"):
			return boolean.True, nil
		case "false", c.lang.Keyword("false"):
			return boolean.False, nil
		}
	}

	return nil, c.lang.Errorf(errs.Runtime, "cannot convert %s to %s", value.Describe(v), value.Bool.String())
}

func toNumber(c *T, name string, args []value.T) (value.T, error) {
	err := validate.Fixed(c.lang, name, len(args), 1, 1)
	if err != nil {
		return nil, err
	}

	v := args[0]

	switch {
	case num.Is(v):
		return v, nil
	case str.Is(v):
		n, err := num.Parse(v.String())
		if err == nil {
			return n, nil
		}
	}

	return nil, c.lang.Errorf(errs.Runtime, "cannot convert %s to %s", value.Describe(v), value.Number.String())
}

func toString(c *T, name string, args []value.T) (value.T, error) {
	err := validate.Fixed(c.lang, name, len(args), 1, 1)
	if err != nil {
		return nil, err
	}

	return str.New(args[0].String()), nil
}
