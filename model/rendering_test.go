package model

import (
	"bytes"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	g := gridOf(2, Coord{X: 1, Y: 0})

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	if err := r.Display(g); err != nil {
		t.Fatalf("Display error: %v", err)
	}
	if buf.String() != g.String() {
		t.Fatalf("Display wrote %q, want %q", buf.String(), g.String())
	}

	buf.Reset()
	r.Block = true
	if err := r.Display(g); err != nil {
		t.Fatalf("Display error: %v", err)
	}
	want := "    \n██  \n"
	if buf.String() != want {
		t.Fatalf("block Display wrote %q, want %q", buf.String(), want)
	}
}
