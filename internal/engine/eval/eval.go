// Released under an MIT license. See LICENSE.

// Package eval reduces speak syntax trees to values.
//
// Evaluation is synchronous and single threaded. Each node is fully
// evaluated before its value is used and the first error ends evaluation.
package eval

import (
	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/common/validate"
	"github.com/michaelmacinnis/speak/internal/interface/value"
	"github.com/michaelmacinnis/speak/internal/lang"
	"github.com/michaelmacinnis/speak/internal/reader/ast"
	"github.com/michaelmacinnis/speak/internal/type/array"
	"github.com/michaelmacinnis/speak/internal/type/boolean"
	"github.com/michaelmacinnis/speak/internal/type/composite"
	"github.com/michaelmacinnis/speak/internal/type/empty"
	"github.com/michaelmacinnis/speak/internal/type/frame"
	"github.com/michaelmacinnis/speak/internal/type/function"
	"github.com/michaelmacinnis/speak/internal/type/hash"
	"github.com/michaelmacinnis/speak/internal/type/native"
	"github.com/michaelmacinnis/speak/internal/type/num"
	"github.com/michaelmacinnis/speak/internal/type/str"
)

// MaxDepth is the deepest chain of function calls an evaluator allows.
const MaxDepth = 10000

// T (eval) evaluates nodes. Messages are reported in its language.
type T struct {
	depth int
	lang  *lang.T
}

// New creates a new evaluator that reports errors in the language l.
func New(l *lang.T) *T {
	if l == nil {
		l = lang.English()
	}

	return &T{lang: l}
}

// Apply calls fn with args. Native functions receive the caller's frame.
func (e *T) Apply(fn value.T, args []value.T, caller *frame.T) (value.T, error) {
	switch fn := fn.(type) {
	case *function.T:
		err := e.arity(fn, "function", len(args))
		if err != nil {
			return nil, err
		}

		return e.call(nil, fn, args)
	case *native.T:
		return fn.Call(caller, args)
	}

	return nil, e.lang.Errorf(errs.Runtime, "cannot call %s", value.Describe(fn))
}

// Eval evaluates the node n in the frame f.
func (e *T) Eval(n ast.Node, f *frame.T) (value.T, error) {
	switch n := n.(type) {
	case *ast.Number:
		return num.New(n.Value), nil

	case *ast.String:
		return str.New(n.Value), nil

	case *ast.Bool:
		return boolean.New(n.Value), nil

	case *ast.Empty:
		return empty.Empty, nil

	case *ast.Identifier:
		if v, ok := f.Lookup(n.Name); ok {
			return v, nil
		}

		return nil, e.fail(n, errs.Runtime, "undefined name %q", n.Name)

	case *ast.Unary:
		return e.unary(n, f)

	case *ast.Binary:
		return e.binary(n, f)

	case *ast.Declare:
		return e.declare(n, f)

	case *ast.Assign:
		v, err := e.Eval(n.Value, f)
		if err != nil {
			return nil, err
		}

		if f.Mutate(n.Name, v) != nil {
			return nil, e.fail(n, errs.Assert, "update to undefined name %q", n.Name)
		}

		return v, nil

	case *ast.Conditional:
		return e.conditional(n, f)

	case *ast.Function:
		return function.New(n, f.Snapshot()), nil

	case *ast.Call:
		return e.apply(n, f)

	case *ast.Block:
		return e.block(n.Body, f.Push())

	case *ast.Array:
		vs := make([]value.T, len(n.Elements))

		for i, el := range n.Elements {
			v, err := e.Eval(el, f)
			if err != nil {
				return nil, err
			}

			vs[i] = v
		}

		return array.New(vs...), nil

	case *ast.Record:
		h := hash.New()

		for _, field := range n.Fields {
			v, err := e.Eval(field.Value, f)
			if err != nil {
				return nil, err
			}

			h.Set(field.Name, v)
		}

		return composite.New(h), nil

	case *ast.Access:
		return e.access(n, f)

	case *ast.Index:
		return e.index(n, f)
	}

	return nil, errs.Assertf("unknown node %T", n)
}

// Sequence evaluates each node in order and returns the last value.
// An empty sequence evaluates to the empty value.
func (e *T) Sequence(nodes []ast.Node, f *frame.T) (value.T, error) {
	var v value.T = empty.Empty

	for _, n := range nodes {
		var err error

		v, err = e.Eval(n, f)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (e *T) apply(n *ast.Call, f *frame.T) (value.T, error) {
	fn, err := e.Eval(n.Callee, f)
	if err != nil {
		return nil, err
	}

	args := make([]value.T, len(n.Args))

	for i, a := range n.Args {
		args[i], err = e.Eval(a, f)
		if err != nil {
			return nil, err
		}
	}

	switch fn := fn.(type) {
	case *function.T:
		err = e.arity(fn, n.Callee.String(), len(args))
		if err != nil {
			return nil, e.locate(n, err)
		}

		return e.call(n, fn, args)

	case *native.T:
		v, err := fn.Call(f, args)
		if err != nil {
			return nil, e.locate(n, err)
		}

		return v, nil
	}

	return nil, e.fail(n, errs.Runtime, "cannot call %s", value.Describe(fn))
}

func (e *T) arity(fn *function.T, name string, passed int) error {
	n := len(fn.Params())

	return validate.Fixed(e.lang, name, passed, n, n)
}

// block evaluates nodes in the frame f and then discards f.
func (e *T) block(nodes []ast.Node, f *frame.T) (value.T, error) {
	v, err := e.Sequence(nodes, f)
	if err != nil {
		return nil, err
	}

	err = e.pop(f)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// call applies fn to args. The location n, when known, is used to report
// calls nested too deeply.
func (e *T) call(n ast.Node, fn *function.T, args []value.T) (value.T, error) {
	if e.depth >= MaxDepth {
		if n == nil {
			return nil, e.lang.Errorf(errs.Runtime, "call depth exceeds %d", MaxDepth)
		}

		return nil, e.fail(n, errs.Runtime, "call depth exceeds %d", MaxDepth)
	}

	e.depth++

	defer func() {
		e.depth--
	}()

	f := fn.Env().Push()
	for i, p := range fn.Params() {
		f.Bind(p, args[i])
	}

	return e.block([]ast.Node{fn.Body()}, f)
}

func (e *T) conditional(n *ast.Conditional, f *frame.T) (value.T, error) {
	for _, b := range n.Branches {
		v, err := e.Eval(b.Cond, f)
		if err != nil {
			return nil, err
		}

		if !boolean.Is(v) {
			return nil, e.fail(b.Cond, errs.Runtime, "condition must be a bool, got %s", value.Describe(v))
		}

		if boolean.To(v).Bool() {
			return e.Eval(b.Body, f)
		}
	}

	if n.Default != nil {
		return e.Eval(n.Default, f)
	}

	return empty.Empty, nil
}

func (e *T) declare(n *ast.Declare, f *frame.T) (value.T, error) {
	v, err := e.Eval(n.Value, f)
	if err != nil {
		return nil, err
	}

	f.Bind(n.Name, v)

	// A function can refer to the name it is declared with.
	if _, ok := n.Value.(*ast.Function); ok {
		function.To(v).Env().Bind(n.Name, v)
	}

	return v, nil
}

// fail creates an error, prefixed with the location of n.
func (e *T) fail(n ast.Node, r errs.Reason, key string, args ...interface{}) error {
	return &errs.T{
		Reason:  r,
		Message: n.Source().String() + ": " + e.lang.Sprintf(key, args...),
	}
}

func (e *T) pop(f *frame.T) error {
	_, err := f.Pop()
	if err != nil {
		return e.lang.Errorf(errs.Assert, "popped past the root frame")
	}

	return nil
}

func (e *T) locate(n ast.Node, err error) error {
	if x, ok := errs.To(err); ok {
		return &errs.T{Reason: x.Reason, Message: n.Source().String() + ": " + x.Message}
	}

	return errs.Wrap(err)
}
