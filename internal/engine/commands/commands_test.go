package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/interface/value"
	"github.com/michaelmacinnis/speak/internal/lang"
	"github.com/michaelmacinnis/speak/internal/type/array"
	"github.com/michaelmacinnis/speak/internal/type/boolean"
	"github.com/michaelmacinnis/speak/internal/type/composite"
	"github.com/michaelmacinnis/speak/internal/type/empty"
	"github.com/michaelmacinnis/speak/internal/type/frame"
	"github.com/michaelmacinnis/speak/internal/type/hash"
	"github.com/michaelmacinnis/speak/internal/type/native"
	"github.com/michaelmacinnis/speak/internal/type/num"
	"github.com/michaelmacinnis/speak/internal/type/str"
)

func TestFormat(t *testing.T) {
	for _, c := range []struct {
		template string
		args     []value.T
		expected string
	}{
		{"Hello World!", nil, "Hello World!"},
		{"{} + {} = {}", []value.T{num.New(1), num.New(2), num.New(3)}, "1 + 2 = 3"},
		{"{} and {}", []value.T{str.New("a")}, "a and "},
		{"only {}", []value.T{str.New("a"), str.New("b")}, "only a"},
		{"{}", []value.T{array.New(str.New("x"), num.New(1.5))}, `["x", 1.5]`},
		{"{}{}", []value.T{boolean.True, empty.Empty}, "true()"},
	} {
		if s := Format(c.template, c.args); s != c.expected {
			t.Fatalf("%q: expected %q; got %q", c.template, c.expected, s)
		}
	}
}

func TestPrint(t *testing.T) {
	h := setup(t, nil)

	h.expect("print", []value.T{str.New("x = {}"), num.New(5)}, empty.Empty)
	h.expect("println", []value.T{str.New("!")}, empty.Empty)
	h.expect("println", nil, empty.Empty)

	if s := h.out.String(); s != "x = 5!\n\n" {
		t.Fatalf("Unexpected output %q", s)
	}

	h.fails("print", nil, errs.Runtime, "print requires at least 1 argument")
}

func TestSprint(t *testing.T) {
	h := setup(t, nil)

	h.expect("sprint", []value.T{str.New("Hello World!")}, str.New("Hello World!"))
	h.expect("sprint", []value.T{str.New("{}-{}"), num.New(1), str.New("a")}, str.New("1-a"))

	h.fails("sprint", nil, errs.Runtime, "sprint requires at least 1 argument")

	if h.out.Len() != 0 {
		t.Fatalf("Unexpected output %q", h.out.String())
	}
}

func TestLen(t *testing.T) {
	h := setup(t, nil)

	record := hash.New()
	record.Set("a", num.New(1))

	h.expect("len", []value.T{str.New("abc")}, num.New(3))
	h.expect("len", []value.T{str.New("é")}, num.New(2))
	h.expect("len", []value.T{array.New(num.New(1), num.New(2))}, num.New(2))
	h.expect("len", []value.T{composite.New(record)}, num.New(1))

	h.fails("len", []value.T{num.New(5)}, errs.Runtime, "len expects a string, array, or composite, got number 5")
	h.fails("len", nil, errs.Runtime, "len expects 1 argument, passed 0")
	h.fails("len", []value.T{str.New("a"), str.New("b")}, errs.Runtime, "passed 2")
}

func TestKeys(t *testing.T) {
	h := setup(t, nil)

	record := hash.New()
	record.Set("z", num.New(1))
	record.Set("a", num.New(2))

	h.expect("keys", []value.T{composite.New(record)}, array.New(str.New("z"), str.New("a")))

	h.fails("keys", []value.T{array.New()}, errs.Runtime, "keys expects a composite, got array []")
}

func TestConversions(t *testing.T) {
	h := setup(t, nil)

	h.expect("string", []value.T{num.New(2.5)}, str.New("2.5"))
	h.expect("string", []value.T{array.New(str.New("a"))}, str.New(`["a"]`))
	h.expect("number", []value.T{str.New("42")}, num.New(42))
	h.expect("number", []value.T{num.New(7)}, num.New(7))
	h.expect("bool", []value.T{str.New("true")}, boolean.True)
	h.expect("bool", []value.T{boolean.False}, boolean.False)

	h.fails("number", []value.T{str.New("forty")}, errs.Runtime, `cannot convert string "forty" to number`)
	h.fails("bool", []value.T{num.New(1)}, errs.Runtime, "cannot convert number 1 to bool")
	h.fails("string", nil, errs.Runtime, "string expects 1 argument")
}

func TestMod(t *testing.T) {
	h := setup(t, nil)

	h.fails("mod", []value.T{str.New("lib.spk")}, errs.Runtime, "module loading is not supported: lib.spk")
	h.fails("mod", []value.T{num.New(1)}, errs.Runtime, "mod expects a string, got number 1")
	h.fails("mod", nil, errs.Runtime, "mod requires at least 1 argument")
	h.fails("mod", []value.T{str.New("missing.spk")}, errs.System, "cannot read missing.spk")
}

func TestLocalizedNames(t *testing.T) {
	l, err := lang.Load("french")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	h := setup(t, l)

	h.expect("formate", []value.T{str.New("{}!"), str.New("salut")}, str.New("salut!"))
	h.expect("booleen", []value.T{str.New("vrai")}, boolean.True)

	if _, ok := h.frame.Lookup("sprint"); ok {
		t.Fatal("Expected sprint to be bound under its French name only")
	}

	h.fails("longueur", nil, errs.Runtime, "longueur attend 1 argument, reçu 0")
}

func TestNames(t *testing.T) {
	h := setup(t, nil)

	names := strings.Join(h.frame.Names(), " ")
	if names != "bool keys len mod number print println sprint string" {
		t.Fatalf("Unexpected names %q", names)
	}

	v, _ := h.frame.Lookup("len")
	if s := v.String(); s != "native function { name: len }" {
		t.Fatalf("Unexpected representation %q", s)
	}
}

type harness struct {
	*testing.T

	frame *frame.T
	out   *bytes.Buffer
}

func setup(t *testing.T, l *lang.T) *harness {
	h := &harness{T: t, frame: frame.New(nil), out: &bytes.Buffer{}}

	Load(h.frame, l, h.out, func(path string) ([]byte, error) {
		if path == "lib.spk" {
			return []byte("x := 1"), nil
		}

		return nil, errors.New("no such file")
	})

	return h
}

func (h *harness) call(name string, args []value.T) (value.T, error) {
	v, ok := h.frame.Lookup(name)
	if !ok {
		h.Fatalf("%s is not bound", name)
	}

	return native.To(v).Call(h.frame, args)
}

func (h *harness) expect(name string, args []value.T, expected value.T) {
	h.Helper()

	v, err := h.call(name, args)
	if err != nil {
		h.Fatalf("%s: unexpected error %v", name, err)
	}

	if !v.Equal(expected) {
		h.Fatalf("%s: expected %s; got %s", name, value.Describe(expected), value.Describe(v))
	}
}

func (h *harness) fails(name string, args []value.T, r errs.Reason, msg string) {
	h.Helper()

	_, err := h.call(name, args)

	e, ok := errs.To(err)
	if !ok || e.Reason != r {
		h.Fatalf("%s: expected %v; got %v", name, r, err)
	}

	if !strings.Contains(e.Message, msg) {
		h.Fatalf("%s: expected message containing %q; got %q", name, msg, e.Message)
	}
}
