// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the speak language.
package parser

import (
	"strconv"

	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/common/struct/token"
	"github.com/michaelmacinnis/speak/internal/lang"
	"github.com/michaelmacinnis/speak/internal/reader/ast"
)

// T holds the state of the parser.
type T struct {
	ignore     bool       // Newlines are insignificant.
	incomplete bool       // Parsing failed at the end of input.
	index      int        // Index of the next token.
	lang       *lang.T    // Language for error messages.
	tokens     []*token.T // Tokens being parsed.
}

// New creates a new parser for tokens. Errors are reported in the language l.
func New(tokens []*token.T, l *lang.T) *T {
	return &T{lang: l, tokens: tokens}
}

// Parse parses tokens and returns the resulting top-level expressions.
func Parse(tokens []*token.T, l *lang.T) ([]ast.Node, error) {
	return New(tokens, l).Parse()
}

// Incomplete returns true if the last parse failed because input ended early.
func (p *T) Incomplete() bool {
	return p.incomplete
}

// Parse consumes all tokens and returns the top-level expressions.
// On failure no partial tree is returned.
func (p *T) Parse() (nodes []ast.Node, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		nodes = nil

		switch r := r.(type) {
		case *errs.T:
			err = r
		case error:
			err = errs.Wrap(r)
		default:
			err = errs.Syntaxf("unexpected error: %v", r)
		}
	}()

	p.incomplete = false

	return p.sequence(token.EOF), nil
}

func (p *T) consume() *token.T {
	t := p.peek()

	if !t.Is(token.EOF) {
		p.index++
	}

	return t
}

func (p *T) expect(what string, cs ...token.Class) *token.T {
	if p.peek().Is(cs...) {
		return p.consume()
	}

	p.fail(what)

	return nil
}

func (p *T) expectOperator(op string) {
	if !p.peek().IsOperator(op) {
		p.fail("'" + op + "'")
	}

	p.consume()
}

func (p *T) fail(what string) {
	t := p.peek()

	got := strconv.Quote(t.Text())

	switch t.Class() {
	case token.EOF:
		got = p.lang.Sprintf("end of input")
		p.incomplete = true
	case token.Newline:
		got = p.lang.Sprintf("newline")
	}

	p.syntax(t, "expected %s, got %s", what, got)
}

func (p *T) syntax(t *token.T, key string, args ...interface{}) {
	panic(&errs.T{
		Reason:  errs.Syntax,
		Message: t.Source().String() + ": " + p.lang.Sprintf(key, args...),
	})
}

// lookahead returns the token n places past the next one, ignoring nothing.
func (p *T) lookahead(n int) *token.T {
	if i := p.index + n; i < len(p.tokens) {
		return p.tokens[i]
	}

	return p.end()
}

func (p *T) end() *token.T {
	if n := len(p.tokens); n > 0 {
		if last := p.tokens[n-1]; last.Is(token.EOF) {
			return last
		}

		return token.New(token.EOF, "", "", p.tokens[n-1].Source())
	}

	return token.New(token.EOF, "", "", nil)
}

func (p *T) peek() *token.T {
	if p.ignore {
		for p.index < len(p.tokens) && p.tokens[p.index].Is(token.Newline) {
			p.index++
		}
	}

	return p.lookahead(0)
}

func (p *T) skipNewlines() {
	for p.peek().Is(token.Newline) {
		p.consume()
	}
}

// nested parses f with newlines ignored (or not) and restores the
// previous setting afterwards.
func (p *T) nested(ignore bool, f func()) {
	saved := p.ignore
	p.ignore = ignore

	defer func() {
		p.ignore = saved
	}()

	f()
}

// T state functions.

// <sequence> ::= <sep>* (<expr> (<sep>+ <expr>)*)? <sep>*
func (p *T) sequence(closer token.Class) []ast.Node {
	var nodes []ast.Node

	for {
		for p.peek().Is(token.Newline, ';') {
			p.consume()
		}

		if p.peek().Is(closer) {
			return nodes
		}

		if p.peek().Is(token.EOF) {
			p.fail(p.separators(closer))
		}

		nodes = append(nodes, p.expr())

		if !p.peek().Is(token.Newline, ';', closer) {
			p.fail(p.separators(closer))
		}
	}
}

// separators describes what may follow an expression in a sequence.
func (p *T) separators(closer token.Class) string {
	if closer == token.EOF {
		return p.lang.Sprintf("newline or ';'")
	}

	return p.lang.Sprintf("newline, ';', or %s", closer.String())
}

// <expr> ::= <declare> | <assign> | <cond> | <logic>
func (p *T) expr() ast.Node {
	t := p.peek()

	switch {
	case t.IsKeyword("if"):
		return p.conditional()
	case t.Is(token.Identifier):
		if n := p.peekPast(); n.IsOperator(":=", "=") {
			p.consume()
			p.consume()

			v := p.expr()

			if n.IsOperator(":=") {
				return &ast.Declare{Pos: pos(t), Name: t.Value(), Value: v}
			}

			return &ast.Assign{Pos: pos(t), Name: t.Value(), Value: v}
		}
	}

	return p.logic()
}

// peekPast returns the token after the next one, honouring ignored newlines.
func (p *T) peekPast() *token.T {
	p.peek()

	i := p.index + 1
	for p.ignore && i < len(p.tokens) && p.tokens[i].Is(token.Newline) {
		i++
	}

	if i < len(p.tokens) {
		return p.tokens[i]
	}

	return p.end()
}

// <cond> ::= 'if' <expr> '->' <expr> ('is' <expr> '->' <expr>)* ('else' '->' <expr>)?
func (p *T) conditional() ast.Node {
	c := &ast.Conditional{Pos: pos(p.consume())}

	c.Branches = append(c.Branches, p.branch())

	for {
		p.continuation()

		t := p.peek()

		switch {
		case t.IsKeyword("is"):
			p.consume()

			c.Branches = append(c.Branches, p.branch())

			continue
		case t.IsKeyword("else"):
			p.consume()
			p.expectOperator("->")
			p.skipNewlines()

			c.Default = p.expr()
		}

		return c
	}
}

func (p *T) branch() ast.Branch {
	cond := p.expr()

	p.expectOperator("->")
	p.skipNewlines()

	return ast.Branch{Cond: cond, Body: p.expr()}
}

// continuation consumes newlines that are followed by 'is' or 'else'.
func (p *T) continuation() {
	i := p.index
	for i < len(p.tokens) && p.tokens[i].Is(token.Newline) {
		i++
	}

	if i < len(p.tokens) && p.tokens[i].IsKeyword("is", "else") {
		p.index = i
	}
}

// <logic> ::= <compare> (('&&' | '||') <compare>)*
func (p *T) logic() ast.Node {
	return p.binary(p.compare, "&&", "||")
}

// <compare> ::= <additive> (('==' | '!=' | '<' | '<=' | '>' | '>=') <additive>)*
func (p *T) compare() ast.Node {
	return p.binary(p.additive, "==", "!=", "<", "<=", ">", ">=")
}

// <additive> ::= <term> (('+' | '-') <term>)*
func (p *T) additive() ast.Node {
	return p.binary(p.term, "+", "-")
}

// <term> ::= <unary> (('*' | '/' | '%') <unary>)*
func (p *T) term() ast.Node {
	return p.binary(p.unary, "*", "/", "%")
}

func (p *T) binary(operand func() ast.Node, ops ...string) ast.Node {
	n := operand()

	for p.peek().IsOperator(ops...) {
		op := p.consume().Value()

		p.skipNewlines()

		n = &ast.Binary{Pos: pos2(n), Op: op, Left: n, Right: operand()}
	}

	return n
}

// <unary> ::= ('-' | '!') <unary> | <postfix>
func (p *T) unary() ast.Node {
	if t := p.peek(); t.IsOperator("-", "!") {
		p.consume()

		return &ast.Unary{Pos: pos(t), Op: t.Value(), Operand: p.unary()}
	}

	return p.command()
}

// <command> ::= <postfix> | IDENT <postfix>+
func (p *T) command() ast.Node {
	t := p.peek()
	n := p.postfix()

	if _, ok := n.(*ast.Identifier); !ok {
		return n
	}

	var args []ast.Node

	for p.argument() {
		args = append(args, p.postfix())
	}

	if args == nil {
		return n
	}

	return &ast.Call{Pos: pos(t), Callee: n, Args: args}
}

// argument returns true if the next token, on the same line and after
// whitespace, can start a command argument.
func (p *T) argument() bool {
	t := p.lookahead(0)

	return t.Spaced() && t.Is(
		token.Bool, token.Identifier, token.Number, token.String, '(', '[', '{',
	)
}

// <postfix> ::= <primary> ('(' <args> ')' | '[' <expr> ']' | '.' (IDENT | NUMBER))*
func (p *T) postfix() ast.Node {
	n := p.primary()

	for {
		t := p.lookahead(0)

		switch {
		case t.Is('(') && !t.Spaced():
			p.consume()

			n = &ast.Call{Pos: pos2(n), Callee: n, Args: p.arguments()}
		case t.Is('[') && !t.Spaced():
			p.consume()

			var i ast.Node

			p.nested(true, func() {
				i = p.expr()
				p.expect("']'", ']')
			})

			n = &ast.Index{Pos: pos2(n), Object: n, Index: i}
		case t.Is('.'):
			p.consume()

			name := p.expect(p.lang.Sprintf("field name"), token.Identifier, token.Number)

			n = &ast.Access{Pos: pos2(n), Object: n, Name: name.Value()}
		default:
			return n
		}
	}
}

// <args> ::= (<expr> (',' <expr>)*)?
func (p *T) arguments() []ast.Node {
	return p.list(')', "')'")
}

func (p *T) list(closer token.Class, what string) []ast.Node {
	var nodes []ast.Node

	p.nested(true, func() {
		if p.peek().Is(closer) {
			p.consume()

			return
		}

		for {
			nodes = append(nodes, p.expr())

			if p.peek().Is(',') {
				p.consume()

				continue
			}

			p.expect(p.lang.Sprintf("',' or %s", what), closer)

			return
		}
	})

	return nodes
}

// <primary> ::= <literal> | IDENT | <function> | <block> | <array> | <record>
// <literal> ::= NUMBER | STRING | BOOL | '_'
func (p *T) primary() ast.Node {
	t := p.peek()

	switch t.Class() {
	case token.Number:
		p.consume()

		f, err := strconv.ParseFloat(t.Value(), 64)
		if err != nil {
			p.syntax(t, "invalid number %q", t.Text())
		}

		return &ast.Number{Pos: pos(t), Value: f}

	case token.String:
		p.consume()

		return &ast.String{Pos: pos(t), Value: t.Value()}

	case token.Bool:
		p.consume()

		return &ast.Bool{Pos: pos(t), Value: t.Value() == "true"}

	case token.Identifier:
		p.consume()

		if p.peek().IsOperator("=>") {
			return p.function(t, []string{t.Value()})
		}

		if t.Value() == "_" {
			return &ast.Empty{Pos: pos(t)}
		}

		return &ast.Identifier{Pos: pos(t), Name: t.Value()}

	case '(':
		if params, ok := p.params(); ok {
			return p.function(t, params)
		}

		return p.block()

	case '[':
		p.consume()

		return &ast.Array{Pos: pos(t), Elements: p.list(']', "']'")}

	case '{':
		return p.record()
	}

	p.fail(p.lang.Sprintf("expression"))

	return nil
}

// <function> ::= <params> '=>' <expr> | IDENT '=>' <expr>
func (p *T) function(t *token.T, params []string) ast.Node {
	p.expectOperator("=>")
	p.skipNewlines()

	return &ast.Function{Pos: pos(t), Params: params, Body: p.expr()}
}

// params consumes a parameter list if one, followed by '=>', is next.
//
// <params> ::= '(' (IDENT (',' IDENT)*)? ')'
func (p *T) params() ([]string, bool) {
	var names []string

	i := 1
	if !p.lookahead(i).Is(')') {
		for {
			t := p.lookahead(i)
			if !t.Is(token.Identifier) {
				return nil, false
			}

			names = append(names, t.Value())
			i++

			if p.lookahead(i).Is(',') {
				i++

				continue
			}

			break
		}
	}

	if !p.lookahead(i).Is(')') || !p.lookahead(i+1).IsOperator("=>") {
		return nil, false
	}

	p.index += i + 1

	return names, true
}

// <block> ::= '(' <sep>* (<expr> (<sep>+ <expr>)*)? <sep>* ')'
func (p *T) block() ast.Node {
	t := p.consume()

	var body []ast.Node

	p.nested(false, func() {
		body = p.sequence(')')
		p.consume()
	})

	if len(body) == 0 {
		return &ast.Empty{Pos: pos(t)}
	}

	return &ast.Block{Pos: pos(t), Body: body}
}

// <record> ::= '{' (<key> ':' <expr> (',' <key> ':' <expr>)*)? '}'
func (p *T) record() ast.Node {
	r := &ast.Record{Pos: pos(p.consume())}

	p.nested(true, func() {
		for !p.peek().Is('}') {
			k := p.expect(p.lang.Sprintf("field name"), token.Identifier, token.String)

			p.expect("':'", ':')

			r.Fields = append(r.Fields, ast.Field{Name: k.Value(), Value: p.expr()})

			if !p.peek().Is(',') {
				break
			}

			p.consume()
		}

		p.expect(p.lang.Sprintf("',' or %s", "'}'"), '}')
	})

	return r
}

// Helper functions.

func pos(t *token.T) ast.Pos {
	return ast.Pos{At: t.Source()}
}

func pos2(n ast.Node) ast.Pos {
	return ast.Pos{At: n.Source()}
}
