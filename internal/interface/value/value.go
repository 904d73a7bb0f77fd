// Released under an MIT license. See LICENSE.

// Package value defines the interface for all speak runtime values.
package value

import (
	"strconv"
)

// Kind identifies the variant of a value. The set of kinds is closed;
// every switch over kinds should handle each one.
type Kind int

// Value kinds.
const (
	Number Kind = iota
	String
	Bool
	Empty
	Array
	Composite
	Function
	Native
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Empty:
		return "empty"
	case Array:
		return "array"
	case Composite:
		return "composite"
	case Function:
		return "function"
	case Native:
		return "native function"
	}

	return "unknown"
}

// T (value) is the result of evaluating a speak expression.
type T interface {
	Equal(v T) bool
	Kind() Kind
	String() string
}

// Literal returns the representation of v used when it appears inside
// an aggregate: strings are quoted, everything else is its String.
func Literal(v T) string {
	if v.Kind() == String {
		return strconv.Quote(v.String())
	}

	return v.String()
}

// Describe returns v's kind and its literal representation.
func Describe(v T) string {
	return v.Kind().String() + " " + Literal(v)
}
