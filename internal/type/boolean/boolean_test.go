package boolean

import (
	"testing"

	"github.com/michaelmacinnis/speak/internal/type/empty"
)

func TestBoolean(t *testing.T) {
	if True.String() != "true" || False.String() != "false" {
		t.Fatalf("Unexpected text")
	}

	if !New(true).Equal(True) || True.Equal(False) || False.Equal(empty.Empty) {
		t.Fatalf("Boolean equality is broken")
	}

	if !To(True).Bool() {
		t.Fatalf("Expected true")
	}
}
