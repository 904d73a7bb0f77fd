// Released under an MIT license. See LICENSE.

// Package token is shared by the speak lexer and parser.
package token

import (
	"strconv"
	"unicode"

	"github.com/michaelmacinnis/speak/internal/common/struct/loc"
)

// Class is a token's type.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source *loc.T
	spaced bool
	text   string
	value  string
}

type token = T

// Token classes. Punctuation uses the rune itself as its class.
const (
	Error Class = iota

	Bool Class = unicode.MaxRune + iota
	EOF
	Identifier
	Keyword
	Newline
	Number
	Operator
	String
)

// New creates a new token. The value is the decoded or canonical form of
// text; for most classes they are the same.
func New(class Class, text, value string, source *loc.T) *token {
	return &token{
		class:  class,
		source: source,
		text:   text,
		value:  value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Bool:
		return "Bool"
	case EOF:
		return "EOF"
	case Identifier:
		return "Identifier"
	case Keyword:
		return "Keyword"
	case Newline:
		return "Newline"
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case String:
		return "String"
	}

	return strconv.QuoteRune(rune(c))
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// IsOperator returns true if t is an operator spelled as any of ops.
func (t *token) IsOperator(ops ...string) bool {
	return t.isOneOf(Operator, ops)
}

// IsKeyword returns true if t is a keyword whose canonical name is any of kws.
func (t *token) IsKeyword(kws ...string) bool {
	return t.isOneOf(Keyword, kws)
}

// Source returns the source location for this token.
func (t *token) Source() *loc.T {
	return t.source
}

// Space marks the token as preceded by whitespace.
func (t *token) Space() *token {
	t.spaced = true

	return t
}

// Spaced returns true if whitespace preceded the token.
func (t *token) Spaced() bool {
	return t.spaced
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.text) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Text returns the token's text as it appeared in the source.
func (t *token) Text() string {
	return t.text
}

// Value returns the token's decoded value.
func (t *token) Value() string {
	return t.value
}

func (t *token) isOneOf(c Class, vs []string) bool {
	if !t.Is(c) {
		return false
	}

	for _, v := range vs {
		if t.value == v {
			return true
		}
	}

	return false
}
