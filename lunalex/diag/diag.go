// Package diag formats Luna lexer positions and tokens for human-readable
// diagnostics, grounded on the teacher's token.File caret-alignment example
// (ExampleFile_GetLineBytes in db47h/lex's token package): a source line
// printed above a caret line, the caret advanced by the text cell width of
// each preceding character rather than by its rune count, so that wide
// East Asian characters and the like still line the caret up correctly in a
// monospaced terminal.
package diag

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/lunalang/lex/token"
)

// Format renders "file:line:col: msg" followed by the offending source line
// and a caret line pointing at column col (1-based, in runes).
func Format(pos token.Position, msg, line string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", pos, msg)
	fmt.Fprintf(&b, "|%s\n", line)
	fmt.Fprintf(&b, "|%s^\n", strings.Repeat(" ", cellWidth(runePrefix(line, pos.Column-1))))
	return b.String()
}

// runePrefix returns the first n runes of s as a string.
func runePrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// cellWidth computes the monospaced terminal cell width of s: most runes
// count 1, East Asian wide/fullwidth runes count 2, and non-graphic runes
// (which should not appear in a lexed source line, but could in malformed
// input) are skipped entirely rather than miscounted.
func cellWidth(s string) int {
	w := 0
	for _, r := range s {
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			w++
		}
	}
	return w
}
