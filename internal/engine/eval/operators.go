// Released under an MIT license. See LICENSE.

package eval

import (
	"math"

	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/interface/value"
	"github.com/michaelmacinnis/speak/internal/reader/ast"
	"github.com/michaelmacinnis/speak/internal/type/array"
	"github.com/michaelmacinnis/speak/internal/type/boolean"
	"github.com/michaelmacinnis/speak/internal/type/frame"
	"github.com/michaelmacinnis/speak/internal/type/num"
	"github.com/michaelmacinnis/speak/internal/type/str"
)

//nolint:gochecknoglobals
var arithmetic = map[string]func(a, b float64) float64{
	"+": func(a, b float64) float64 { return a + b },
	"-": func(a, b float64) float64 { return a - b },
	"*": func(a, b float64) float64 { return a * b },
	"/": func(a, b float64) float64 { return a / b },
	"%": math.Mod,
}

//nolint:gochecknoglobals
var relational = map[string]bool{"<": true, "<=": true, ">": true, ">=": true}

func (e *T) unary(n *ast.Unary, f *frame.T) (value.T, error) {
	v, err := e.Eval(n.Operand, f)
	if err != nil {
		return nil, err
	}

	switch {
	case n.Op == "-" && num.Is(v):
		return num.New(-num.To(v).Float()), nil
	case n.Op == "!" && boolean.Is(v):
		return boolean.New(!boolean.To(v).Bool()), nil
	}

	return nil, e.fail(n, errs.Runtime, "operator %s cannot be applied to %s", n.Op, value.Describe(v))
}

func (e *T) binary(n *ast.Binary, f *frame.T) (value.T, error) {
	l, err := e.Eval(n.Left, f)
	if err != nil {
		return nil, err
	}

	if n.Op == "&&" || n.Op == "||" {
		return e.logical(n, l, f)
	}

	r, err := e.Eval(n.Right, f)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "==":
		return boolean.New(l.Equal(r)), nil
	case "!=":
		return boolean.New(!l.Equal(r)), nil
	}

	if op, ok := arithmetic[n.Op]; ok && num.Is(l) && num.Is(r) {
		return num.New(op(num.To(l).Float(), num.To(r).Float())), nil
	}

	if n.Op == "+" {
		switch {
		case str.Is(l) && str.Is(r):
			return str.New(string(str.To(l)) + string(str.To(r))), nil
		case array.Is(l) && array.Is(r):
			return array.To(l).Concat(array.To(r)), nil
		}
	}

	if relational[n.Op] {
		switch {
		case num.Is(l) && num.Is(r):
			return boolean.New(ordered(n.Op, num.To(l).Float(), num.To(r).Float())), nil
		case str.Is(l) && str.Is(r):
			return boolean.New(ordered(n.Op, str.To(l), str.To(r))), nil
		}
	}

	return nil, e.mismatch(n, l, r)
}

func (e *T) logical(n *ast.Binary, l value.T, f *frame.T) (value.T, error) {
	if !boolean.Is(l) {
		return nil, e.fail(n, errs.Runtime, "operator %s cannot be applied to %s", n.Op, value.Describe(l))
	}

	b := boolean.To(l).Bool()
	if (n.Op == "&&" && !b) || (n.Op == "||" && b) {
		return l, nil
	}

	r, err := e.Eval(n.Right, f)
	if err != nil {
		return nil, err
	}

	if !boolean.Is(r) {
		return nil, e.mismatch(n, l, r)
	}

	return r, nil
}

func (e *T) mismatch(n *ast.Binary, l, r value.T) error {
	return e.fail(
		n, errs.Runtime, "operator %s cannot be applied to %s and %s",
		n.Op, value.Describe(l), value.Describe(r),
	)
}

// ordered compares a and b with op. Comparisons involving NaN are false.
func ordered[V float64 | str.T](op string, a, b V) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	}

	return a >= b
}
