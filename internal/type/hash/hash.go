// Released under an MIT license. See LICENSE.

// Package hash provides speak's name to value mapping type.
//
// A hash remembers the order in which names were first added so that
// composites and frame dumps display fields in a stable order.
package hash

import (
	"github.com/michaelmacinnis/speak/internal/interface/value"
)

// T (hash) maps names to values.
type T struct {
	m     map[string]value.T
	names []string
}

// New creates a new hash.
func New() *T {
	return &T{m: map[string]value.T{}}
}

// Copy creates a new hash with the same associations as h.
// Values are immutable so they are shared, not copied.
func (h *T) Copy() *T {
	if h == nil {
		return nil
	}

	fresh := &T{
		m:     make(map[string]value.T, len(h.m)),
		names: make([]string, len(h.names)),
	}

	copy(fresh.names, h.names)

	for k, v := range h.m {
		fresh.m[k] = v
	}

	return fresh
}

// Get retrieves the value associated with the name k in the hash h.
func (h *T) Get(k string) (value.T, bool) {
	if h == nil {
		return nil, false
	}

	v, ok := h.m[k]

	return v, ok
}

// Names returns the names in the hash h in the order they were added.
func (h *T) Names() []string {
	if h == nil {
		return nil
	}

	names := make([]string, len(h.names))
	copy(names, h.names)

	return names
}

// Set associates the name k with the value v in the hash h.
func (h *T) Set(k string, v value.T) {
	if _, ok := h.m[k]; !ok {
		h.names = append(h.names, k)
	}

	h.m[k] = v
}

// Size returns the number of entries in the hash h.
func (h *T) Size() int {
	if h == nil {
		return 0
	}

	return len(h.m)
}
