package reader

import (
	"testing"

	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/reader/ast"
)

func TestRead(t *testing.T) {
	tokens, nodes, err := Read("test", []byte("x := 5\nx + 3"), nil)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(tokens) != 8 {
		t.Fatalf("Expected 8 tokens; got %d", len(tokens))
	}

	if d := ast.Dump(nodes); d != "test:1:1: x := 5\ntest:2:1: (x + 3)" {
		t.Fatalf("Unexpected dump %q", d)
	}
}

func TestReadErrors(t *testing.T) {
	_, _, err := Read("test", []byte("x := @"), nil)
	if !errs.Is(err, errs.Syntax) {
		t.Fatalf("Expected syntax error; got %v", err)
	}

	tokens, nodes, err := Read("test", []byte("x := )"), nil)
	if !errs.Is(err, errs.Syntax) || nodes != nil || tokens == nil {
		t.Fatalf("Expected syntax error with tokens only; got %v", err)
	}
}

func TestScanContinuation(t *testing.T) {
	r := New("repl", nil)

	_, nodes, err := r.Scan("f := (n) => (\n")
	if err != nil || nodes != nil {
		t.Fatalf("Expected more input; got %v %v", nodes, err)
	}

	if !r.Pending() {
		t.Fatal("Expected pending input")
	}

	_, nodes, err = r.Scan("  n + 1\n")
	if err != nil || nodes != nil {
		t.Fatalf("Expected more input; got %v %v", nodes, err)
	}

	_, nodes, err = r.Scan(")\n")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(nodes) != 1 || nodes[0].String() != "f := (n) => ((n + 1))" {
		t.Fatalf("Unexpected nodes %v", nodes)
	}

	if r.Pending() {
		t.Fatal("Expected no pending input")
	}
}

func TestScanError(t *testing.T) {
	r := New("repl", nil)

	_, _, err := r.Scan("1 2\n")
	if !errs.Is(err, errs.Syntax) {
		t.Fatalf("Expected syntax error; got %v", err)
	}

	if r.Pending() {
		t.Fatal("Expected buffer to be discarded")
	}

	r.Scan("[1,\n")
	r.Reset()

	_, nodes, err := r.Scan("2\n")
	if err != nil || len(nodes) != 1 {
		t.Fatalf("Expected one expression; got %v %v", nodes, err)
	}
}
