// Released under an MIT license. See LICENSE.

// Package composite provides speak's record type.
package composite

import (
	"strings"

	"github.com/michaelmacinnis/speak/internal/interface/value"
	"github.com/michaelmacinnis/speak/internal/type/hash"
)

// T (composite) maps field names to values. Fields keep the order in
// which they were written.
type T struct {
	fields *hash.T
}

// New creates a new composite from a copy of the hash h.
func New(h *hash.T) *T {
	if h == nil {
		h = hash.New()
	}

	return &T{fields: h.Copy()}
}

// The composite type is a value.

// Equal returns true if v is a composite with the same fields and values.
// Field order is not significant.
func (c *T) Equal(v value.T) bool {
	if !Is(v) {
		return false
	}

	o := To(v)
	if c.fields.Size() != o.fields.Size() {
		return false
	}

	for _, k := range c.fields.Names() {
		a, _ := c.fields.Get(k)

		b, ok := o.fields.Get(k)
		if !ok || !a.Equal(b) {
			return false
		}
	}

	return true
}

// Kind returns value.Composite.
func (c *T) Kind() value.Kind {
	return value.Composite
}

// String returns the literal representation of the composite c.
func (c *T) String() string {
	names := c.fields.Names()

	s := make([]string, len(names))
	for i, k := range names {
		v, _ := c.fields.Get(k)
		s[i] = k + ": " + value.Literal(v)
	}

	return "{" + strings.Join(s, ", ") + "}"
}

// Methods specific to composite.

// Get returns the value of the field k, if any.
func (c *T) Get(k string) (value.T, bool) {
	return c.fields.Get(k)
}

// Len returns the number of fields in c.
func (c *T) Len() int {
	return c.fields.Size()
}

// Names returns the field names of c in order.
func (c *T) Names() []string {
	return c.fields.Names()
}

// The two functions below could be generated for each type.

// Is returns true if v is a composite.
func Is(v value.T) bool {
	_, ok := v.(*T)
	return ok
}

// To returns v as a composite if v is a composite; Otherwise it panics.
func To(v value.T) *T {
	if c, ok := v.(*T); ok {
		return c
	}

	panic("not a " + value.Composite.String())
}
