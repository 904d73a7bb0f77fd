// Released under an MIT license. See LICENSE.

// Package empty provides speak's unit type.
package empty

import (
	"github.com/michaelmacinnis/speak/internal/interface/value"
)

// T (empty) is the value of expressions that produce nothing.
type T struct{}

// Empty is the only empty value.
var Empty = T{} //nolint:gochecknoglobals

// Equal returns true if v is empty.
func (e T) Equal(v value.T) bool {
	return Is(v)
}

// Kind returns value.Empty.
func (e T) Kind() value.Kind {
	return value.Empty
}

// String returns "()".
func (e T) String() string {
	return "()"
}

// Is returns true if v is empty.
func Is(v value.T) bool {
	_, ok := v.(T)
	return ok
}
