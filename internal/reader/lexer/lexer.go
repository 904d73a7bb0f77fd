// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the speak language.
//
// The speak lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide
// for more information.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/common/struct/loc"
	"github.com/michaelmacinnis/speak/internal/common/struct/token"
	"github.com/michaelmacinnis/speak/internal/lang"
)

// T holds the state of the scanner.
type T struct {
	bytes   string            // Buffer being scanned.
	first   int               // Index of the current token's first byte.
	index   int               // Index of the current byte.
	line    int               // Line of the current byte.
	newline bool              // The last token emitted was a newline.
	queue   []*token.T        // Tokens waiting to be returned.
	runes   int               // Runes scanned on the current line.
	spaced  bool              // Whitespace precedes the current token.
	state   action            // Current action.
	words   map[string]string // Keyword spelling to canonical name.

	err    error
	lang   *lang.T
	source loc.T
}

// New creates a new T. Label can be a file name or other identifier.
// Keywords are recognized in the language l.
func New(label string, l *lang.T) *T {
	if l == nil {
		l = lang.English()
	}

	return &T{
		lang:   l,
		line:   1,
		runes:  1,
		source: *loc.Start(label),
		state:  skipWhitespace,
		words:  l.Keywords(),
	}
}

// Tokenize scans all of src and returns its tokens, ending with an EOF token.
func Tokenize(label string, src []byte, l *lang.T) ([]*token.T, error) {
	lx := New(label, l)
	lx.Scan(string(src))

	var tokens []*token.T

	for t := lx.Token(); t != nil; t = lx.Token() {
		tokens = append(tokens, t)
	}

	if lx.err != nil {
		return nil, lx.err
	}

	return append(tokens, lx.end()), nil
}

// Err returns the first error encountered by the scanner, if any.
func (l *T) Err() error {
	return l.err
}

// Scan passes a text buffer to the lexer for scanning. Text is appended
// to anything not yet scanned.
func (l *T) Scan(text string) {
	l.bytes += text

	if l.state == nil && l.err == nil {
		l.state = skipWhitespace
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for len(l.queue) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.queue[0]
	l.queue = l.queue[1:]

	return t
}

type action func(*T) action

const eof = -1

//nolint:gochecknoglobals
var pairs = map[string]bool{
	":=": true, "==": true, "!=": true, "<=": true, ">=": true,
	"=>": true, "->": true, "&&": true, "||": true,
}

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	t := token.New(c, l.Text(), v, l.start())
	if l.spaced {
		t.Space()
	}

	l.newline = c == token.Newline

	l.queue = append(l.queue, t)
	l.skip()
}

func (l *T) end() *token.T {
	return token.New(token.EOF, "", "", l.start())
}

func (l *T) fail(key string, args ...interface{}) action {
	l.err = &errs.T{
		Reason:  errs.Syntax,
		Message: l.start().String() + ": " + l.lang.Sprintf(key, args...),
	}
	l.queue = nil

	return nil
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) peekAt(offset int) rune {
	if i := l.index + offset; i < len(l.bytes) {
		r, _ := utf8.DecodeRuneInString(l.bytes[i:])

		return r
	}

	return eof
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.source.Line = l.line
	l.first = l.index
	l.spaced = false
}

func (l *T) start() *loc.T {
	s := l.source

	return &s
}

// T states.

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case r == '\n':
			l.accept(r, w)
			l.emitNewline()
		case r == ' ' || r == '\t' || r == '\r':
			l.accept(r, w)
			l.skip()
			l.spaced = true
		case r == '/' && l.peekAt(1) == '/':
			return skipComment
		default:
			return scanToken
		}
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()
		if r == eof || r == '\n' {
			l.skip()

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanToken(l *T) action {
	r, w := l.peek()

	switch {
	case r == '"':
		l.accept(r, w)

		return scanString
	case isDigit(r):
		return scanNumber
	case isLetter(r):
		return scanIdentifier
	}

	l.accept(r, w)

	switch r {
	case '(', ')', '[', ']', '{', '}', ',', '.', ';':
		l.emit(token.Class(r), string(r))

		return skipWhitespace
	case ':', '=', '!', '<', '>', '-', '&', '|':
		return scanOperator
	case '+', '*', '/', '%':
		l.emit(token.Operator, l.Text())

		return skipWhitespace
	}

	return l.fail("unexpected character %q", r)
}

// <operator> ::= <pair> | ':' | '=' | '!' | '<' | '>' | '-'
// <pair> ::= ':=' | '==' | '!=' | '<=' | '>=' | '=>' | '->' | '&&' | '||'
func scanOperator(l *T) action {
	r, w := l.peek()

	if pairs[l.Text()+string(r)] {
		l.accept(r, w)
		l.emit(token.Operator, l.Text())

		return skipWhitespace
	}

	s := l.Text()

	switch s {
	case "&", "|":
		return l.fail("unexpected character %q", s)
	case ":":
		l.emit(':', s)
	default:
		l.emit(token.Operator, s)
	}

	return skipWhitespace
}

func scanIdentifier(l *T) action {
	for {
		r, w := l.peek()
		if !isLetter(r) && !isDigit(r) {
			break
		}

		l.accept(r, w)
	}

	s := l.Text()

	switch k, ok := l.words[s]; {
	case !ok:
		l.emit(token.Identifier, s)
	case k == "true" || k == "false":
		l.emit(token.Bool, k)
	default:
		l.emit(token.Keyword, k)
	}

	return skipWhitespace
}

// <number> ::= digit+ ('.' digit+)? (('e' | 'E') ('+' | '-')? digit+)?
func scanNumber(l *T) action {
	l.digits()

	if l.peekAt(0) == '.' && isDigit(l.peekAt(1)) {
		l.accept(l.peek())
		l.digits()
	}

	if r := l.peekAt(0); r == 'e' || r == 'E' {
		l.accept(l.peek())

		if r := l.peekAt(0); r == '+' || r == '-' {
			l.accept(l.peek())
		}

		if !isDigit(l.peekAt(0)) {
			return l.fail("malformed number %q", l.Text())
		}

		l.digits()
	}

	if r := l.peekAt(0); isLetter(r) {
		l.accept(l.peek())

		return l.fail("malformed number %q", l.Text())
	}

	l.emit(token.Number, l.Text())

	return skipWhitespace
}

func scanString(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof, '\n':
			return l.fail("unterminated string %s", l.Text())
		case '\\':
			if l.next() == eof {
				return l.fail("unterminated string %s", l.Text())
			}
		case '"':
			text := l.Text()

			s, err := adapted.ActualBytes(text[1 : len(text)-1])
			if err != nil {
				return l.fail("invalid escape in %s: %v", text, err)
			}

			l.emit(token.String, s)

			return skipWhitespace
		}
	}
}

// Helper functions.

func (l *T) digits() {
	for isDigit(l.peekAt(0)) {
		l.accept(l.peek())
	}
}

func (l *T) emitNewline() {
	if l.newline {
		l.skip()

		return
	}

	// Report the newline as part of the line it ends.
	l.emit(token.Newline, "\n")
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
