// Released under an MIT license. See LICENSE.

// Package num provides speak's number type.
package num

import (
	"math"
	"strconv"

	"github.com/michaelmacinnis/speak/internal/interface/value"
)

// T (number) is a 64-bit floating point number.
type T float64

// New creates a new number.
func New(f float64) T {
	return T(f)
}

// Parse creates a new number from the text s.
func Parse(s string) (T, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	return T(f), nil
}

// The number type is a value.

// Equal returns true if v is the same number as n.
func (n T) Equal(v value.T) bool {
	return Is(v) && n == To(v)
}

// Kind returns value.Number.
func (n T) Kind() value.Kind {
	return value.Number
}

// String returns the text of the number n. Integral values are
// written without a fractional part.
func (n T) String() string {
	f := float64(n)

	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Methods specific to number.

// Float returns n as a float64.
func (n T) Float() float64 {
	return float64(n)
}

// Int returns n as an int if n is integral.
func (n T) Int() (int, bool) {
	f := float64(n)
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}

	return int(f), true
}

// The two functions below could be generated for each type.

// Is returns true if v is a number.
func Is(v value.T) bool {
	_, ok := v.(T)
	return ok
}

// To returns v as a number if v is a number; Otherwise it panics.
func To(v value.T) T {
	if n, ok := v.(T); ok {
		return n
	}

	panic("not a " + value.Number.String())
}
