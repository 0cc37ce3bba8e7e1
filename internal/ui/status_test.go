package ui

import (
	"strings"
	"testing"
)

func TestStatusText(t *testing.T) {
	if got := StatusText(3, false); !strings.HasPrefix(got, "moves: 3") {
		t.Fatalf("StatusText(3, false) = %q", got)
	}
	if got := StatusText(41, true); got != "goal reached in 41 moves" {
		t.Fatalf("StatusText(41, true) = %q", got)
	}
}
