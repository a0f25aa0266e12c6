package lunalex

import "github.com/lunalang/lex/token"

// nextLexeme wraps one call to lexEntryPoint with the trailing-whitespace
// measurement of spec.md section 4.6: after a symbol is produced, spaces
// count 1 and tabs count 4 towards Offset, except that a Quote(_, Begin),
// a Block End, or any symbol after which the scanner is inside a string
// body (entry-stack top is StrEntry) always gets Offset = 0, since
// whitespace immediately following it is significant string content that
// the next Str sub-lexer call must see, not inter-token padding to discard.
//
// A single dispatch call can yield more than one symSpan (see beginStr's
// empty-string case); only the last one in the group is eligible for a
// nonzero Offset, since the others are immediately followed by a sibling
// token with no gap.
func nextLexeme(s *Scanner) []token.Token {
	s.StartToken()
	spans := lexEntryPoint(s)
	if spans == nil {
		return nil
	}
	toks := make([]token.Token, len(spans))
	for i, sp := range spans {
		var offset token.Pos
		if i == len(spans)-1 && sp.Sym.Kind != token.QuoteBegin && sp.Sym.Kind != token.BlockEnd &&
			s.stack.Top().Kind != token.StrEntry {
			offset = measureOffset(s)
		}
		toks[i] = token.Token{Span: token.Pos(sp.Span), Offset: offset, Sym: sp.Sym}
	}
	return toks
}

// measureOffset consumes and weighs trailing horizontal whitespace: a
// space counts 1, a tab counts 4. Newlines are never whitespace here --
// they are their own EOL token.
func measureOffset(s *Scanner) token.Pos {
	var n token.Pos
	for {
		switch s.Peek() {
		case ' ':
			s.Next()
			n++
		case '\t':
			s.Next()
			n += 4
		default:
			return n
		}
	}
}
