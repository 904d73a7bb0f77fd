// Released under an MIT license. See LICENSE.

// Package frame provides speak's scope chain.
//
// A frame maps names to values and links to exactly one parent. The root
// frame has no parent. Frames are owned by the evaluation that created
// them; closures hold a Snapshot rather than sharing the live chain.
package frame

import (
	"strings"

	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/interface/value"
	"github.com/michaelmacinnis/speak/internal/type/hash"
)

// MaxPrintLen is the longest value representation shown by Dump.
const MaxPrintLen = 120

// T (frame) is one level of the scope chain.
type T struct {
	parent *T
	table  *hash.T
}

// New creates a new frame whose parent is p. A nil p creates a root frame.
func New(p *T) *T {
	return &T{parent: p, table: hash.New()}
}

// Bind associates name with v in the frame f only.
func (f *T) Bind(name string, v value.T) {
	f.table.Set(name, v)
}

// Dump returns a printable representation of the chain starting at f.
func (f *T) Dump() string {
	if f == nil {
		return "nil"
	}

	names := f.table.Names()

	entries := make([]string, len(names))
	for i, k := range names {
		v, _ := f.table.Get(k)

		s := v.String()
		if len(s) > MaxPrintLen {
			s = s[:MaxPrintLen] + "..."
		}

		entries[i] = k + " -> " + s
	}

	return "{\n\t" + strings.Join(entries, "\n\t") + "\n} -parent-> " + f.parent.Dump()
}

// Lookup walks from f toward the root and returns the first value bound to name.
func (f *T) Lookup(name string) (value.T, bool) {
	for ; f != nil; f = f.parent {
		if v, ok := f.table.Get(name); ok {
			return v, true
		}
	}

	return nil, false
}

// Mutate replaces the value of the nearest binding of name.
// It fails if no frame in the chain binds name.
func (f *T) Mutate(name string, v value.T) error {
	for ; f != nil; f = f.parent {
		if _, ok := f.table.Get(name); ok {
			f.table.Set(name, v)

			return nil
		}
	}

	return errs.Assertf("update to undefined name %q", name)
}

// Names returns the names bound in the frame f, in the order they were bound.
func (f *T) Names() []string {
	return f.table.Names()
}

// Pop returns the enclosing frame. Popping the root is an error.
func (f *T) Pop() (*T, error) {
	if f == nil || f.parent == nil {
		return nil, errs.Assertf("popped past the root frame")
	}

	return f.parent, nil
}

// Push returns a new, empty frame whose parent is f.
func (f *T) Push() *T {
	return New(f)
}

// Snapshot returns an independent copy of the chain starting at f.
// Later changes to either chain are not visible in the other.
func (f *T) Snapshot() *T {
	if f == nil {
		return nil
	}

	return &T{parent: f.parent.Snapshot(), table: f.table.Copy()}
}
