// Released under an MIT license. See LICENSE.

// Package array provides speak's ordered sequence type.
package array

import (
	"strings"

	"github.com/michaelmacinnis/speak/internal/interface/value"
)

// T (array) is an immutable ordered sequence of values.
type T struct {
	v []value.T
}

// New creates a new array containing vs.
func New(vs ...value.T) *T {
	a := &T{v: make([]value.T, len(vs))}
	copy(a.v, vs)

	return a
}

// The array type is a value.

// Equal returns true if v is an array with equal elements in the same order.
func (a *T) Equal(v value.T) bool {
	if !Is(v) {
		return false
	}

	o := To(v)
	if len(a.v) != len(o.v) {
		return false
	}

	for i, e := range a.v {
		if !e.Equal(o.v[i]) {
			return false
		}
	}

	return true
}

// Kind returns value.Array.
func (a *T) Kind() value.Kind {
	return value.Array
}

// String returns the literal representation of the array a.
func (a *T) String() string {
	s := make([]string, len(a.v))
	for i, e := range a.v {
		s[i] = value.Literal(e)
	}

	return "[" + strings.Join(s, ", ") + "]"
}

// Methods specific to array.

// Concat returns a new array with the elements of a followed by those of o.
func (a *T) Concat(o *T) *T {
	c := &T{v: make([]value.T, 0, len(a.v)+len(o.v))}
	c.v = append(c.v, a.v...)
	c.v = append(c.v, o.v...)

	return c
}

// Get returns the element at index i, if any.
func (a *T) Get(i int) (value.T, bool) {
	if i < 0 || i >= len(a.v) {
		return nil, false
	}

	return a.v[i], true
}

// Len returns the number of elements in a.
func (a *T) Len() int {
	return len(a.v)
}

// The two functions below could be generated for each type.

// Is returns true if v is an array.
func Is(v value.T) bool {
	_, ok := v.(*T)
	return ok
}

// To returns v as an array if v is an array; Otherwise it panics.
func To(v value.T) *T {
	if a, ok := v.(*T); ok {
		return a
	}

	panic("not an " + value.Array.String())
}
