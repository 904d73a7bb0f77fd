// Released under an MIT license. See LICENSE.

package eval

import (
	"strconv"

	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/interface/value"
	"github.com/michaelmacinnis/speak/internal/reader/ast"
	"github.com/michaelmacinnis/speak/internal/type/array"
	"github.com/michaelmacinnis/speak/internal/type/composite"
	"github.com/michaelmacinnis/speak/internal/type/frame"
	"github.com/michaelmacinnis/speak/internal/type/num"
	"github.com/michaelmacinnis/speak/internal/type/str"
)

// access evaluates `object.name`. Arrays and strings accept numeric names.
func (e *T) access(n *ast.Access, f *frame.T) (value.T, error) {
	o, err := e.Eval(n.Object, f)
	if err != nil {
		return nil, err
	}

	if composite.Is(o) {
		return e.field(n, composite.To(o), n.Name)
	}

	i, err := strconv.Atoi(n.Name)
	if err != nil {
		return nil, e.fail(n, errs.Runtime, "cannot access %s of %s", n.Name, value.Describe(o))
	}

	return e.element(n, o, i)
}

// index evaluates `object[index]`.
func (e *T) index(n *ast.Index, f *frame.T) (value.T, error) {
	o, err := e.Eval(n.Object, f)
	if err != nil {
		return nil, err
	}

	k, err := e.Eval(n.Index, f)
	if err != nil {
		return nil, err
	}

	if composite.Is(o) {
		if !str.Is(k) {
			return nil, e.fail(n, errs.Runtime, "field name must be a string, got %s", value.Describe(k))
		}

		return e.field(n, composite.To(o), string(str.To(k)))
	}

	if !num.Is(k) {
		return nil, e.fail(n, errs.Runtime, "index must be an integer, got %s", value.Describe(k))
	}

	i, ok := num.To(k).Int()
	if !ok {
		return nil, e.fail(n, errs.Runtime, "index must be an integer, got %s", value.Describe(k))
	}

	return e.element(n, o, i)
}

func (e *T) element(n ast.Node, o value.T, i int) (value.T, error) {
	switch {
	case array.Is(o):
		if v, ok := array.To(o).Get(i); ok {
			return v, nil
		}
	case str.Is(o):
		if s := string(str.To(o)); i >= 0 && i < len(s) {
			return str.New(s[i : i+1]), nil
		}
	default:
		return nil, e.fail(n, errs.Runtime, "cannot index %s", value.Describe(o))
	}

	return nil, e.fail(n, errs.Runtime, "index %d out of range for %s", i, value.Describe(o))
}

func (e *T) field(n ast.Node, c *composite.T, name string) (value.T, error) {
	if v, ok := c.Get(name); ok {
		return v, nil
	}

	return nil, e.fail(n, errs.Runtime, "no field %q in %s", name, value.Describe(c))
}
