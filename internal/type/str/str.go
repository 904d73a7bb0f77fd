// Released under an MIT license. See LICENSE.

// Package str provides speak's string type.
package str

import (
	"github.com/michaelmacinnis/speak/internal/interface/value"
)

// T (str) wraps Go's string type.
type T string

// New creates a new str.
func New(s string) T {
	return T(s)
}

// The str type is a value.

// Equal returns true if v is a str with the same text as s.
func (s T) Equal(v value.T) bool {
	return Is(v) && s == To(v)
}

// Kind returns value.String.
func (s T) Kind() value.Kind {
	return value.String
}

// String returns the text of the str s.
func (s T) String() string {
	return string(s)
}

// Methods specific to str.

// Len returns the length of s in bytes.
func (s T) Len() int {
	return len(s)
}

// The two functions below could be generated for each type.

// Is returns true if v is a str.
func Is(v value.T) bool {
	_, ok := v.(T)
	return ok
}

// To returns v as a str if v is a str; Otherwise it panics.
func To(v value.T) T {
	if s, ok := v.(T); ok {
		return s
	}

	panic("not a " + value.String.String())
}
