// Released under an MIT license. See LICENSE.

// Package validate checks the number of arguments passed to a function.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/lang"
)

// Fixed returns a runtime error unless min <= passed <= max.
func Fixed(l *lang.T, name string, passed, min, max int) error {
	if passed >= min && passed <= max {
		return nil
	}

	s := Count(min, "argument", "s")
	if max != min {
		s = fmt.Sprintf("%d to %s", min, Count(max, "argument", "s"))
	}

	return l.Errorf(errs.Runtime, "%s expects %s, passed %d", name, s, passed)
}

// Minimum returns a runtime error if passed is less than min.
func Minimum(l *lang.T, name string, passed, min int) error {
	if passed >= min {
		return nil
	}

	return l.Errorf(errs.Runtime, "%s requires at least %s", name, Count(min, "argument", "s"))
}

// Count returns n followed by label, pluralized with p when n is not one.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
