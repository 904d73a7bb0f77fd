// Released under an MIT license. See LICENSE.

// Package boolean provides speak's boolean type.
package boolean

import (
	"github.com/michaelmacinnis/speak/internal/interface/value"
)

// T (boolean) is true or false.
type T bool

// Boolean values.
const (
	False = T(false)
	True  = T(true)
)

// New creates a new boolean.
func New(b bool) T {
	return T(b)
}

// The boolean type is a value.

// Equal returns true if v is the same boolean as b.
func (b T) Equal(v value.T) bool {
	return Is(v) && b == To(v)
}

// Kind returns value.Bool.
func (b T) Kind() value.Kind {
	return value.Bool
}

// String returns "true" or "false".
func (b T) String() string {
	if b {
		return "true"
	}

	return "false"
}

// Bool returns b as a Go bool.
func (b T) Bool() bool {
	return bool(b)
}

// The two functions below could be generated for each type.

// Is returns true if v is a boolean.
func Is(v value.T) bool {
	_, ok := v.(T)
	return ok
}

// To returns v as a boolean if v is a boolean; Otherwise it panics.
func To(v value.T) T {
	if b, ok := v.(T); ok {
		return b
	}

	panic("not a " + value.Bool.String())
}
