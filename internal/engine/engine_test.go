package engine

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/interface/value"
	"github.com/michaelmacinnis/speak/internal/lang"
	"github.com/michaelmacinnis/speak/internal/type/boolean"
	"github.com/michaelmacinnis/speak/internal/type/num"
	"github.com/michaelmacinnis/speak/internal/type/str"
)

func TestHelloWorld(t *testing.T) {
	h := setup(t)

	h.expect(`sprint "Hello World!"`, str.New("Hello World!"))
}

func TestDeclarationThenUse(t *testing.T) {
	h := setup(t)

	h.expect("x := 5\n x + 3", num.New(8))
}

func TestFunctionCall(t *testing.T) {
	h := setup(t)

	h.expect("f := (n) => n + 1 \n f(4)", num.New(5))
}

func TestLen(t *testing.T) {
	h := setup(t)

	h.expect(`len("abc")`, num.New(3))
	h.fails("len(5)", errs.Runtime, "len expects a string, array, or composite")
	h.fails("len()", errs.Runtime, "len expects 1 argument, passed 0")
	h.fails(`len("a", "b")`, errs.Runtime, "len expects 1 argument, passed 2")
}

func TestUnmatchedParenthesis(t *testing.T) {
	h := setup(t)

	h.fails("(1 + 2", errs.Syntax, "')'")
	h.fails("(1 + 2\n", errs.Syntax, "expected newline, ';', or ')', got end of input")
	h.fails("print \"x\" (1\n", errs.Syntax, "')'")
}

func TestUndeclaredUpdate(t *testing.T) {
	h := setup(t)

	h.fails("y = 1", errs.Assert, `update to undefined name "y"`)
}

func TestLiteralRoundTrip(t *testing.T) {
	h := setup(t)

	for src, v := range map[string]value.T{
		"0":         num.New(0),
		"12.25":     num.New(12.25),
		"1e3":       num.New(1000),
		`"a \"b\""`: str.New(`a "b"`),
		`""`:        str.New(""),
		"true":      boolean.True,
		"false":     boolean.False,
	} {
		h.expect(src, v)
	}
}

func TestShadowing(t *testing.T) {
	h := setup(t)

	h.expect("x := 1\n(x := 2\n x)", num.New(2))
	h.expect("x", num.New(1))

	h.expect("(fresh := 1; fresh)", num.New(1))
	h.fails("fresh", errs.Runtime, `undefined name "fresh"`)
}

func TestMutation(t *testing.T) {
	h := setup(t)

	h.expect("x := 1\n(x = 2)\nx", num.New(2))
}

func TestClosureSnapshot(t *testing.T) {
	h := setup(t)

	h.expect("x := 1\nf := () => x\nx = 10\nf()", num.New(1))
	h.expect("n := 0\nnext := () => (n = n + 1)\nnext()\nnext()\nnext()", num.New(3))
	h.expect("n", num.New(0))
}

func TestArityErrors(t *testing.T) {
	h := setup(t)

	h.eval("f := (a, b) => a + b")
	h.fails("f(1)", errs.Runtime, "f expects 2 arguments, passed 1")
	h.fails("f(1, 2, 3)", errs.Runtime, "f expects 2 arguments, passed 3")
}

func TestDivisionByZero(t *testing.T) {
	h := setup(t)

	if v := h.eval("1 / 0"); !math.IsInf(num.To(v).Float(), 1) {
		t.Fatalf("Expected +Inf; got %v", v)
	}
}

func TestPrint(t *testing.T) {
	out := &bytes.Buffer{}
	e := New(false, WithOutput(out))

	_, _, _, err := e.Run([]byte("name := \"speak\"\nprint \"hello {}\" name\nprintln \"!\""))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if s := out.String(); s != "hello speak!\n" {
		t.Fatalf("Unexpected output %q", s)
	}
}

func TestFirstErrorStops(t *testing.T) {
	out := &bytes.Buffer{}
	e := New(false, WithOutput(out))

	_, tokens, nodes, err := e.Run([]byte("println \"one\"\nnope\nprintln \"two\""))
	if !errs.Is(err, errs.Runtime) {
		t.Fatalf("Expected runtime error; got %v", err)
	}

	if tokens == nil || len(nodes) != 3 {
		t.Fatalf("Expected tokens and nodes; got %d tokens, %d nodes", len(tokens), len(nodes))
	}

	if s := out.String(); s != "one\n" {
		t.Fatalf("Unexpected output %q", s)
	}
}

func TestRunArtifacts(t *testing.T) {
	e := New(false)

	v, tokens, nodes, err := e.Run([]byte("x := 5\nx + 3"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !v.Equal(num.New(8)) || len(tokens) != 8 || len(nodes) != 2 {
		t.Fatalf("Unexpected result %v %v %v", v, tokens, nodes)
	}

	if _, ok := e.Global().Lookup("x"); !ok {
		t.Fatal("Expected x in the global frame")
	}
}

func TestStages(t *testing.T) {
	e := New(false)

	tokens, err := e.Tokenize([]byte("1 +"))
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	_, err = e.Parse(tokens)
	if !errs.Is(err, errs.Syntax) {
		t.Fatalf("Expected syntax error; got %v", err)
	}

	_, err = e.Tokenize([]byte(`"open`))
	if !errs.Is(err, errs.Syntax) {
		t.Fatalf("Expected syntax error; got %v", err)
	}
}

func TestRunPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.spk")

	err := os.WriteFile(path, []byte("x := 2\nx * 21"), 0o600)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	e := New(false)

	v, err := e.RunPath(path)
	if err != nil {
		t.Fatalf("RunPath failed: %v", err)
	}

	if !v.Equal(num.New(42)) {
		t.Fatalf("Expected 42; got %v", v)
	}

	if e.File() != path {
		t.Fatalf("Expected file %s; got %s", path, e.File())
	}

	_, err = e.RunPath(filepath.Join(dir, "missing.spk"))
	if !errs.Is(err, errs.System) {
		t.Fatalf("Expected system error; got %v", err)
	}
}

func TestRunPathLocations(t *testing.T) {
	e := New(false, WithFilesystem(func(path string) ([]byte, error) {
		if path != "virtual.spk" {
			return nil, errors.New("not found")
		}

		return []byte("\n\nundefined"), nil
	}))

	_, err := e.RunPath("virtual.spk")

	x, ok := errs.To(err)
	if !ok || !strings.HasPrefix(x.Message, "virtual.spk:3:1: ") {
		t.Fatalf("Expected located runtime error; got %v", err)
	}
}

func TestDebugHooks(t *testing.T) {
	kinds := []string{}
	dumps := map[string]string{}

	e := New(true, WithDebug(func(kind, text string) {
		kinds = append(kinds, kind)
		dumps[kind] = text
	}))

	_, _, _, err := e.Run([]byte("x := 5"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if strings.Join(kinds, " ") != "tokens ast frame" {
		t.Fatalf("Unexpected debug kinds %v", kinds)
	}

	if !strings.HasPrefix(dumps["tokens"], `"x"(Identifier,input:1:1)`) {
		t.Fatalf("Unexpected token dump %q", dumps["tokens"])
	}

	if dumps["ast"] != "input:1:1: x := 5" {
		t.Fatalf("Unexpected AST dump %q", dumps["ast"])
	}

	if !strings.Contains(dumps["frame"], "\tx -> 5\n} -parent-> nil") {
		t.Fatalf("Unexpected frame dump %q", dumps["frame"])
	}

	quiet := New(false, WithDebug(func(kind, _ string) {
		t.Fatalf("Unexpected %s dump", kind)
	}))

	_, _, _, err = quiet.Run([]byte("x := 5"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestLanguage(t *testing.T) {
	l, err := lang.Load("french")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	e := New(false, WithLanguage(l))

	v, _, _, err := e.Run([]byte(`si faux -> 1 sinon -> formate "{}!" "salut"`))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !v.Equal(str.New("salut!")) {
		t.Fatalf("Expected salut!; got %v", v)
	}

	if e.Language() != l {
		t.Fatal("Expected the injected language")
	}

	_, _, _, err = e.Run([]byte("inconnu"))
	if x, ok := errs.To(err); !ok || !strings.Contains(x.Message, "nom indéfini") {
		t.Fatalf("Expected a French message; got %v", err)
	}
}

func TestPersistentGlobals(t *testing.T) {
	h := setup(t)

	h.eval("count := 1")
	h.eval("count = count + 1")
	h.expect("count", num.New(2))

	fresh := New(false)

	_, _, _, err := fresh.Run([]byte("count"))
	if !errs.Is(err, errs.Runtime) {
		t.Fatalf("Expected a fresh context to share nothing; got %v", err)
	}
}

func TestConcurrentContexts(t *testing.T) {
	var g errgroup.Group

	for i := 0; i < 8; i++ {
		i := i

		g.Go(func() error {
			e := New(false, WithOutput(&bytes.Buffer{}))

			src := fmt.Sprintf(
				"n := %d\nfib := n => if n < 2 -> n else -> fib(n - 1) + fib(n - 2)\nfib(n)", i+10,
			)

			v, _, _, err := e.Run([]byte(src))
			if err != nil {
				return err
			}

			if !v.Equal(num.New(fib(i + 10))) {
				return fmt.Errorf("fib(%d): got %v", i+10, v)
			}

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		t.Fatal(err)
	}
}

func fib(n int) float64 {
	if n < 2 {
		return float64(n)
	}

	return fib(n-1) + fib(n-2)
}

type harness struct {
	*testing.T

	e *T
}

func setup(t *testing.T) *harness {
	return &harness{T: t, e: New(false, WithOutput(&bytes.Buffer{}))}
}

func (h *harness) eval(src string) value.T {
	h.Helper()

	v, _, _, err := h.e.Run([]byte(src))
	if err != nil {
		h.Fatalf("%q: unexpected error %v", src, err)
	}

	return v
}

func (h *harness) expect(src string, expected value.T) {
	h.Helper()

	if v := h.eval(src); !v.Equal(expected) {
		h.Fatalf("%q: expected %s; got %s", src, value.Describe(expected), value.Describe(v))
	}
}

func (h *harness) fails(src string, r errs.Reason, msg string) {
	h.Helper()

	_, _, _, err := h.e.Run([]byte(src))

	e, ok := errs.To(err)
	if !ok || e.Reason != r {
		h.Fatalf("%q: expected %v; got %v", src, r, err)
	}

	if !strings.Contains(e.Message, msg) {
		h.Fatalf("%q: expected message containing %q; got %q", src, msg, e.Message)
	}
}
