// Released under an MIT license. See LICENSE.

// Package reader combines the speak lexer and parser.
package reader

import (
	"github.com/michaelmacinnis/speak/internal/common/struct/token"
	"github.com/michaelmacinnis/speak/internal/lang"
	"github.com/michaelmacinnis/speak/internal/reader/ast"
	"github.com/michaelmacinnis/speak/internal/reader/lexer"
	"github.com/michaelmacinnis/speak/internal/reader/parser"
)

// T (reader) accumulates lines of input until they form complete expressions.
type T struct {
	buffer string
	lang   *lang.T
	name   string
}

type reader = T

// New creates a new reader for name.
func New(name string, l *lang.T) *T {
	return &T{lang: l, name: name}
}

// Read tokenizes and parses src.
func Read(name string, src []byte, l *lang.T) ([]*token.T, []ast.Node, error) {
	tokens, err := lexer.Tokenize(name, src, l)
	if err != nil {
		return nil, nil, err
	}

	nodes, err := parser.Parse(tokens, l)
	if err != nil {
		return tokens, nil, err
	}

	return tokens, nodes, nil
}

// Pending returns true if the reader is waiting for more input.
func (r *reader) Pending() bool {
	return r.buffer != ""
}

// Reset discards any buffered input.
func (r *reader) Reset() {
	r.buffer = ""
}

// Scan appends line to any buffered input. It returns the parsed
// expressions once the input is complete, nil if more input is needed,
// or an error. Buffered input is discarded after a result or an error.
func (r *reader) Scan(line string) ([]*token.T, []ast.Node, error) {
	r.buffer += line

	tokens, err := lexer.Tokenize(r.name, []byte(r.buffer), r.lang)
	if err != nil {
		r.buffer = ""

		return nil, nil, err
	}

	p := parser.New(tokens, r.lang)

	nodes, err := p.Parse()
	if err != nil {
		if p.Incomplete() {
			return nil, nil, nil
		}

		r.buffer = ""

		return tokens, nil, err
	}

	r.buffer = ""

	return tokens, nodes, nil
}
