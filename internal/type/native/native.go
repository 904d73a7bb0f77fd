// Released under an MIT license. See LICENSE.

// Package native provides speak's builtin function type.
package native

import (
	"github.com/michaelmacinnis/speak/internal/interface/value"
	"github.com/michaelmacinnis/speak/internal/type/frame"
)

// Func is the signature shared by all native functions. It receives the
// caller's current frame and the evaluated arguments.
type Func func(f *frame.T, args []value.T) (value.T, error)

// T (native) is a named function implemented in Go.
type T struct {
	fn   Func
	name string
}

// New creates a new native function.
func New(name string, fn Func) *T {
	return &T{fn: fn, name: name}
}

// The native type is a value.

// Equal returns true if v is the same native function as n.
func (n *T) Equal(v value.T) bool {
	return Is(v) && n == To(v)
}

// Kind returns value.Native.
func (n *T) Kind() value.Kind {
	return value.Native
}

// String returns a description of the native function n.
func (n *T) String() string {
	return value.Native.String() + " { name: " + n.name + " }"
}

// Methods specific to native.

// Call invokes n with the caller's frame f and the arguments args.
func (n *T) Call(f *frame.T, args []value.T) (value.T, error) {
	return n.fn(f, args)
}

// Name returns the name n was registered under.
func (n *T) Name() string {
	return n.name
}

// The two functions below could be generated for each type.

// Is returns true if v is a native function.
func Is(v value.T) bool {
	_, ok := v.(*T)
	return ok
}

// To returns v as a native function if v is one; Otherwise it panics.
func To(v value.T) *T {
	if n, ok := v.(*T); ok {
		return n
	}

	panic("not a " + value.Native.String())
}
