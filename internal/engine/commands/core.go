// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/common/validate"
	"github.com/michaelmacinnis/speak/internal/interface/value"
	"github.com/michaelmacinnis/speak/internal/type/array"
	"github.com/michaelmacinnis/speak/internal/type/composite"
	"github.com/michaelmacinnis/speak/internal/type/num"
	"github.com/michaelmacinnis/speak/internal/type/str"
)

func keys(c *T, name string, args []value.T) (value.T, error) {
	err := validate.Fixed(c.lang, name, len(args), 1, 1)
	if err != nil {
		return nil, err
	}

	if !composite.Is(args[0]) {
		return nil, c.expected(name, value.Composite, args[0])
	}

	names := composite.To(args[0]).Names()

	vs := make([]value.T, len(names))
	for i, k := range names {
		vs[i] = str.New(k)
	}

	return array.New(vs...), nil
}

// length returns the number of bytes in a string or elements in an aggregate.
func length(c *T, name string, args []value.T) (value.T, error) {
	err := validate.Fixed(c.lang, name, len(args), 1, 1)
	if err != nil {
		return nil, err
	}

	v := args[0]

	switch v.Kind() {
	case value.String:
		return num.New(float64(str.To(v).Len())), nil
	case value.Array:
		return num.New(float64(array.To(v).Len())), nil
	case value.Composite:
		return num.New(float64(composite.To(v).Len())), nil
	case value.Number, value.Bool, value.Empty, value.Function, value.Native:
	}

	return nil, c.lang.Errorf(
		errs.Runtime, "%s expects a string, array, or composite, got %s",
		name, value.Describe(v),
	)
}

// mod checks that each path names a readable file. Loading modules is
// not supported so, even then, it fails.
func mod(c *T, name string, args []value.T) (value.T, error) {
	err := validate.Minimum(c.lang, name, len(args), 1)
	if err != nil {
		return nil, err
	}

	for _, v := range args {
		if !str.Is(v) {
			return nil, c.expected(name, value.String, v)
		}
	}

	path := args[0].String()

	if c.read != nil {
		_, err = c.read(path)
		if err != nil {
			return nil, c.lang.Errorf(errs.System, "cannot read %s: %v", path, err)
		}
	}

	return nil, c.lang.Errorf(errs.Runtime, "module loading is not supported: %s", path)
}

func (c *T) expected(name string, k value.Kind, v value.T) error {
	return c.lang.Errorf(errs.Runtime, "%s expects a %s, got %s", name, k.String(), value.Describe(v))
}
