// Released under an MIT license. See LICENSE.

// Package ast defines the nodes produced by the speak parser.
//
// Nodes own their children. A tree is never modified after it is built,
// so the same tree may be evaluated any number of times.
package ast

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/speak/internal/common/struct/loc"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Source() *loc.T
	String() string

	node()
}

// Pos is embedded in every node to record where it starts.
type Pos struct {
	At *loc.T
}

// Source returns the location of the node.
func (p Pos) Source() *loc.T {
	return p.At
}

func (Pos) node() {}

// Literals.

// Number is a numeric literal.
type Number struct {
	Pos
	Value float64
}

// String is a string literal.
type String struct {
	Pos
	Value string
}

// Bool is a boolean literal.
type Bool struct {
	Pos
	Value bool
}

// Empty is the empty literal, written `_` or `()`.
type Empty struct {
	Pos
}

// References and operators.

// Identifier is a reference to a name.
type Identifier struct {
	Pos
	Name string
}

// Unary applies Op to Operand.
type Unary struct {
	Pos
	Op      string
	Operand Node
}

// Binary applies Op to Left and Right.
type Binary struct {
	Pos
	Op    string
	Left  Node
	Right Node
}

// Declare binds Name in the innermost frame.
type Declare struct {
	Pos
	Name  string
	Value Node
}

// Assign replaces the value of the nearest existing binding of Name.
type Assign struct {
	Pos
	Name  string
	Value Node
}

// Control flow and functions.

// Branch is one guarded arm of a conditional.
type Branch struct {
	Cond Node
	Body Node
}

// Conditional evaluates the body of the first branch whose condition is true.
type Conditional struct {
	Pos
	Branches []Branch
	Default  Node // Nil if there is no else branch.
}

// Function is a function literal.
type Function struct {
	Pos
	Params []string
	Body   Node
}

// Call applies Callee to Args.
type Call struct {
	Pos
	Callee Node
	Args   []Node
}

// Block evaluates Body in a new frame.
type Block struct {
	Pos
	Body []Node
}

// Aggregates.

// Array is an array literal.
type Array struct {
	Pos
	Elements []Node
}

// Field is a name and the expression that produces its value.
type Field struct {
	Name  string
	Value Node
}

// Record is a composite literal.
type Record struct {
	Pos
	Fields []Field
}

// Access selects a field (or array element) by name: `object.name`.
type Access struct {
	Pos
	Object Node
	Name   string
}

// Index selects an element by computed index: `object[index]`.
type Index struct {
	Pos
	Object Node
	Index  Node
}

// String representations. These are used for AST dumps and for
// displaying function values.

func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *String) String() string {
	return strconv.Quote(n.Value)
}

func (n *Bool) String() string {
	return strconv.FormatBool(n.Value)
}

func (n *Empty) String() string {
	return "()"
}

func (n *Identifier) String() string {
	return n.Name
}

func (n *Unary) String() string {
	return "(" + n.Op + n.Operand.String() + ")"
}

func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + n.Op + " " + n.Right.String() + ")"
}

func (n *Declare) String() string {
	return n.Name + " := " + n.Value.String()
}

func (n *Assign) String() string {
	return n.Name + " = " + n.Value.String()
}

func (n *Conditional) String() string {
	var b strings.Builder

	for i, br := range n.Branches {
		if i == 0 {
			b.WriteString("if ")
		} else {
			b.WriteString(" is ")
		}

		b.WriteString(br.Cond.String() + " -> " + br.Body.String())
	}

	if n.Default != nil {
		b.WriteString(" else -> " + n.Default.String())
	}

	return b.String()
}

func (n *Function) String() string {
	return "(" + strings.Join(n.Params, ", ") + ") => " + n.Body.String()
}

func (n *Call) String() string {
	return n.Callee.String() + "(" + join(n.Args, ", ") + ")"
}

func (n *Block) String() string {
	return "(" + join(n.Body, "; ") + ")"
}

func (n *Array) String() string {
	return "[" + join(n.Elements, ", ") + "]"
}

func (n *Record) String() string {
	s := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		s[i] = f.Name + ": " + f.Value.String()
	}

	return "{" + strings.Join(s, ", ") + "}"
}

func (n *Access) String() string {
	return n.Object.String() + "." + n.Name
}

func (n *Index) String() string {
	return n.Object.String() + "[" + n.Index.String() + "]"
}

// Dump returns one line per top-level node, prefixed with its location.
func Dump(nodes []Node) string {
	s := make([]string, len(nodes))
	for i, n := range nodes {
		s[i] = n.Source().String() + ": " + n.String()
	}

	return strings.Join(s, "\n")
}

func join(nodes []Node, sep string) string {
	s := make([]string, len(nodes))
	for i, n := range nodes {
		s[i] = n.String()
	}

	return strings.Join(s, sep)
}
