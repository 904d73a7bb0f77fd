package function

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/speak/internal/reader/ast"
	"github.com/michaelmacinnis/speak/internal/type/frame"
)

func TestFunction(t *testing.T) {
	defn := &ast.Function{Params: []string{"a", "b"}, Body: &ast.Identifier{Name: "a"}}
	env := frame.New(nil)

	f := New(defn, env)
	if f.String() != "(a, b) => a" || f.Env() != env || len(f.Params()) != 2 {
		t.Fatalf("Unexpected function %v", f)
	}

	if f.Equal(New(defn, env)) || !f.Equal(f) {
		t.Fatalf("Functions compare by identity")
	}

	long := &ast.Function{Body: &ast.String{Value: strings.Repeat("z", 200)}}
	if s := New(long, env).String(); len(s) != MaxPrintLen+2 || !strings.HasSuffix(s, "..") {
		t.Fatalf("Expected an ellipsized representation; got %s", s)
	}
}
