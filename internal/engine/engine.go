// Released under an MIT license. See LICENSE.

// Package engine provides the execution context for speak programs.
package engine

import (
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/common/struct/token"
	"github.com/michaelmacinnis/speak/internal/engine/commands"
	"github.com/michaelmacinnis/speak/internal/engine/eval"
	"github.com/michaelmacinnis/speak/internal/interface/value"
	"github.com/michaelmacinnis/speak/internal/lang"
	"github.com/michaelmacinnis/speak/internal/reader/ast"
	"github.com/michaelmacinnis/speak/internal/reader/lexer"
	"github.com/michaelmacinnis/speak/internal/reader/parser"
	"github.com/michaelmacinnis/speak/internal/type/frame"
)

// Label is used as the source name for code that was not read from a file.
const Label = "input"

// T (engine) is a facade in front of the machinery for evaluating speak code.
// Each T owns its global frame. Independent Ts share nothing.
type T struct {
	debug   func(kind, text string)
	eval    *eval.T
	file    string
	global  *frame.T
	lang    *lang.T
	out     io.Writer
	read    func(string) ([]byte, error)
	verbose bool
}

type engine = T

// Option configures a T.
type Option func(*T)

// WithDebug sets the function that receives debug dumps. The kind is one
// of "tokens", "ast", or "frame".
func WithDebug(f func(kind, text string)) Option {
	return func(e *T) {
		e.debug = f
	}
}

// WithFilesystem sets the function used to read source files.
func WithFilesystem(read func(string) ([]byte, error)) Option {
	return func(e *T) {
		e.read = read
	}
}

// WithLanguage sets the language for keywords, builtin names, and messages.
func WithLanguage(l *lang.T) Option {
	return func(e *T) {
		e.lang = l
	}
}

// WithOutput sets the writer used by the print functions.
func WithOutput(w io.Writer) Option {
	return func(e *T) {
		e.out = w
	}
}

// New creates a new T. When verbose is true, tokens, syntax trees, and the
// global frame are passed to the debug function after each stage.
func New(verbose bool, opts ...Option) *T {
	e := &T{
		global:  frame.New(nil),
		out:     os.Stdout,
		read:    os.ReadFile,
		verbose: verbose,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.lang == nil {
		e.lang = lang.English()
	}

	e.eval = eval.New(e.lang)

	commands.Load(e.global, e.lang, e.out, e.read)

	return e
}

// Dump returns a printable representation of the global frame.
func (e *engine) Dump() string {
	return e.global.Dump()
}

// Eval evaluates nodes, in order, in the global frame. It returns the
// value of the last node.
func (e *engine) Eval(nodes []ast.Node) (value.T, error) {
	v, err := e.eval.Sequence(nodes, e.global)

	e.trace("frame", e.Dump)

	return v, err
}

// File returns the path of the file most recently passed to RunPath.
func (e *engine) File() string {
	return e.file
}

// Global returns the global frame.
func (e *engine) Global() *frame.T {
	return e.global
}

// Language returns the language used by e.
func (e *engine) Language() *lang.T {
	return e.lang
}

// Parse parses tokens.
func (e *engine) Parse(tokens []*token.T) ([]ast.Node, error) {
	nodes, err := parser.Parse(tokens, e.lang)
	if err != nil {
		return nil, err
	}

	e.trace("ast", func() string {
		return ast.Dump(nodes)
	})

	return nodes, nil
}

// Run tokenizes, parses, and evaluates src. The tokens and nodes produced
// are returned, even on failure, for inspection.
func (e *engine) Run(src []byte) (value.T, []*token.T, []ast.Node, error) {
	tokens, err := e.Tokenize(src)
	if err != nil {
		return nil, nil, nil, err
	}

	nodes, err := e.Parse(tokens)
	if err != nil {
		return nil, tokens, nil, err
	}

	v, err := e.Eval(nodes)
	if err != nil {
		return nil, tokens, nodes, err
	}

	return v, tokens, nodes, nil
}

// RunPath reads the file at path and runs its contents.
func (e *engine) RunPath(path string) (value.T, error) {
	src, err := e.read(path)
	if err != nil {
		return nil, e.lang.Errorf(errs.System, "cannot read %s: %v", path, err)
	}

	e.file = path

	v, _, _, err := e.Run(src)

	return v, err
}

// Tokenize scans src.
func (e *engine) Tokenize(src []byte) ([]*token.T, error) {
	label := e.file
	if label == "" {
		label = Label
	}

	tokens, err := lexer.Tokenize(label, src, e.lang)
	if err != nil {
		return nil, err
	}

	e.trace("tokens", func() string {
		s := make([]string, len(tokens))
		for i, t := range tokens {
			s[i] = t.String()
		}

		return strings.Join(s, "\n")
	})

	return tokens, nil
}

func (e *engine) trace(kind string, text func() string) {
	if e.verbose && e.debug != nil {
		e.debug(kind, text())
	}
}
