package token_test

import (
	"testing"

	"github.com/lunalang/lex/token"
)

func TestFile_Position(t *testing.T) {
	// "line0\nline1\nline2" -- AddLine is called with the position right
	// after each '\n', matching how Scanner.Next reports it.
	f := token.NewFile("test.luna")
	f.AddLine(6, 1)  // start of "line1"
	f.AddLine(12, 2) // start of "line2"

	cases := []struct {
		pos  token.Pos
		line int
		col  int
	}{
		{0, 1, 1},
		{5, 1, 6},
		{6, 2, 1},
		{11, 2, 6},
		{12, 3, 1},
		{14, 3, 3},
	}
	for _, c := range cases {
		got := f.Position(c.pos)
		if got.Line != c.line || got.Column != c.col {
			t.Errorf("Position(%d) = %d:%d, want %d:%d", c.pos, got.Line, got.Column, c.line, c.col)
		}
		if got.Filename != "test.luna" {
			t.Errorf("Position(%d).Filename = %q, want %q", c.pos, got.Filename, "test.luna")
		}
	}
}

func TestFile_AddLineOutOfOrderPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("AddLine with a skipped line index did not panic")
		}
	}()
	f := token.NewFile("test.luna")
	f.AddLine(6, 2) // skips line 1
}

func TestPosition_String(t *testing.T) {
	p := token.Position{Filename: "a.luna", Line: 3, Column: 7}
	if got, want := p.String(), "a.luna:3:7"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
}
