package validate

import (
	"testing"

	"github.com/michaelmacinnis/speak/internal/common/errs"
	"github.com/michaelmacinnis/speak/internal/lang"
)

func TestCount(t *testing.T) {
	for n, s := range map[int]string{
		0: "0 arguments",
		1: "1 argument",
		2: "2 arguments",
	} {
		if c := Count(n, "argument", "s"); c != s {
			t.Fatalf("Expected %s; got %s", s, c)
		}
	}
}

func TestFixed(t *testing.T) {
	l := lang.English()

	if err := Fixed(l, "len", 1, 1, 1); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	err := Fixed(l, "len", 2, 1, 1)
	if !errs.Is(err, errs.Runtime) {
		t.Fatalf("Expected runtime error; got %v", err)
	}

	e, _ := errs.To(err)
	if e.Message != "len expects 1 argument, passed 2" {
		t.Fatalf("Unexpected message %s", e.Message)
	}

	err = Fixed(l, "f", 0, 1, 3)
	e, _ = errs.To(err)
	if e == nil || e.Message != "f expects 1 to 3 arguments, passed 0" {
		t.Fatalf("Unexpected error %v", err)
	}
}

func TestMinimum(t *testing.T) {
	l := lang.English()

	if err := Minimum(l, "print", 3, 1); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	if err := Minimum(l, "print", 0, 1); !errs.Is(err, errs.Runtime) {
		t.Fatalf("Expected runtime error; got %v", err)
	}
}
