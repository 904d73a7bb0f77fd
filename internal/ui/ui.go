// Released under an MIT license. See LICENSE.

// Package ui provides a read-eval-print loop for the speak language.
package ui

import (
	"bufio"
	"errors"
	"io"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/common/struct/token"
	"github.com/michaelmacinnis/speak/internal/interface/value"
	"github.com/michaelmacinnis/speak/internal/lang"
	"github.com/michaelmacinnis/speak/internal/reader"
	"github.com/michaelmacinnis/speak/internal/reader/ast"
	"github.com/michaelmacinnis/speak/internal/system/history"
	"github.com/michaelmacinnis/speak/internal/type/empty"
)

// Prompts.
const (
	Continue = ". "
	Ready    = "> "
)

// Evaluator is the interface for things that run speak source.
type Evaluator interface {
	Language() *lang.T
	Run(src []byte) (value.T, []*token.T, []ast.Node, error)
}

// Logger is the interface for things that report results and errors.
type Logger interface {
	Error(err error)
	Interactive(text string)
}

// T (ui) feeds lines to an Evaluator once they form complete expressions.
type T struct {
	buffer string
	e      Evaluator
	log    Logger
	r      *reader.T
}

type ui = T

// New creates a new T for e. Results and errors are written to log.
func New(e Evaluator, log Logger) *T {
	return &T{e: e, log: log, r: reader.New("repl", e.Language())}
}

// Line passes line to the evaluator if it completes an expression and
// returns the prompt to show next.
func (u *ui) Line(line string) string {
	line += "\n"

	u.buffer += line

	_, nodes, err := u.r.Scan(line)
	if err == nil && nodes == nil && u.r.Pending() {
		return Continue
	}

	src := u.buffer
	u.buffer = ""

	if err != nil {
		u.log.Error(err)

		return Ready
	}

	if len(nodes) == 0 {
		return Ready
	}

	v, _, _, err := u.e.Run([]byte(src))
	if err != nil {
		u.log.Error(err)
	} else if !empty.Is(v) {
		u.log.Interactive(v.String())
	}

	return Ready
}

// Pending returns true if the T is waiting for the rest of an expression.
func (u *ui) Pending() bool {
	return u.r.Pending()
}

// Reset discards a partially entered expression.
func (u *ui) Reset() {
	u.buffer = ""
	u.r.Reset()
}

// Run reads lines from in until it is exhausted.
func (u *ui) Run(in io.Reader) error {
	s := bufio.NewScanner(in)
	for s.Scan() {
		u.Line(s.Text())
	}

	return errs.Wrap(s.Err())
}

// Interactive reads lines using a line editor with history until the
// user ends input. Ctrl-C discards the current expression.
func (u *ui) Interactive() error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetMultiLineMode(true)

	path, err := history.Path()
	if err == nil {
		_ = history.Load(path, cli.ReadHistory)
	}

	prompt := Ready

	for {
		line, err := cli.Prompt(prompt)

		switch {
		case err == nil:
			if line != "" {
				cli.AppendHistory(line)
			}

			prompt = u.Line(line)

			continue
		case errors.Is(err, liner.ErrPromptAborted):
			u.Reset()

			prompt = Ready

			continue
		case !errors.Is(err, io.EOF):
			u.log.Error(err)
		}

		break
	}

	if path != "" {
		return history.Save(path, cli.WriteHistory)
	}

	return nil
}
