// Released under an MIT license. See LICENSE.

// Package function provides speak's user-defined function type.
package function

import (
	"github.com/michaelmacinnis/speak/internal/interface/value"
	"github.com/michaelmacinnis/speak/internal/reader/ast"
	"github.com/michaelmacinnis/speak/internal/type/frame"
)

// MaxPrintLen is the longest function representation returned by String.
const MaxPrintLen = 120

// T (function) pairs a function literal with the scope it captured.
type T struct {
	defn *ast.Function
	env  *frame.T
}

// New creates a new function. The caller is responsible for passing a
// snapshot of the defining scope.
func New(defn *ast.Function, env *frame.T) *T {
	return &T{defn: defn, env: env}
}

// The function type is a value.

// Equal returns true if v is the same function as f.
func (f *T) Equal(v value.T) bool {
	return Is(v) && f == To(v)
}

// Kind returns value.Function.
func (f *T) Kind() value.Kind {
	return value.Function
}

// String returns the function's source, ellipsized if long.
func (f *T) String() string {
	s := f.defn.String()
	if len(s) > MaxPrintLen {
		s = s[:MaxPrintLen] + ".."
	}

	return s
}

// Methods specific to function.

// Body returns the function's body.
func (f *T) Body() ast.Node {
	return f.defn.Body
}

// Env returns the scope captured when the function was created.
func (f *T) Env() *frame.T {
	return f.env
}

// Params returns the function's parameter names.
func (f *T) Params() []string {
	return f.defn.Params
}

// The two functions below could be generated for each type.

// Is returns true if v is a function.
func Is(v value.T) bool {
	_, ok := v.(*T)
	return ok
}

// To returns v as a function if v is a function; Otherwise it panics.
func To(v value.T) *T {
	if f, ok := v.(*T); ok {
		return f
	}

	panic("not a " + value.Function.String())
}
