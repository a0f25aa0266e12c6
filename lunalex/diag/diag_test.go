package diag_test

import (
	"strings"
	"testing"

	"github.com/lunalang/lex/lunalex/diag"
	"github.com/lunalang/lex/token"
)

func TestFormat_AsciiCaretAlignment(t *testing.T) {
	pos := token.Position{Filename: "f.luna", Line: 1, Column: 5}
	out := diag.Format(pos, "unexpected character", "abcd!efgh")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if lines[0] != "f.luna:1:5: unexpected character" {
		t.Errorf("header = %q", lines[0])
	}
	// Column 5 means 4 characters precede the caret, each width 1.
	want := "|" + strings.Repeat(" ", 4) + "^"
	if lines[2] != want {
		t.Errorf("caret line = %q, want %q", lines[2], want)
	}
}

func TestFormat_WideCharacterCaretAlignment(t *testing.T) {
	// "世界" are East Asian Wide, each occupying two terminal cells.
	pos := token.Position{Filename: "f.luna", Line: 1, Column: 3}
	out := diag.Format(pos, "bad rune", "世界x")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := "|" + strings.Repeat(" ", 4) + "^" // two wide runes precede, 2 cells each
	if lines[2] != want {
		t.Errorf("caret line = %q, want %q", lines[2], want)
	}
}
