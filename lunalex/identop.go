package lunalex

import "github.com/lunalang/lex/token"

// lexVar implements the varHead branch of the dispatch table: consume the
// identifier body, then an optional trailing '?' or '!', then any run of
// "'", and classify the result as a reserved word or as a Var.
func lexVar(s *Scanner) []symSpan {
	s.Next() // head char, already known to be varHead
	for isIndentBodyChar(s.Peek()) {
		s.Next()
	}
	if r := s.Peek(); r == '?' || r == '!' {
		s.Next()
	}
	for s.Peek() == '\'' {
		s.Next()
	}
	text := s.Current()
	if kind, ok := token.Kw(text); ok {
		return []symSpan{{Sym: token.Symbol{Kind: kind}, Span: s.pos - s.start}}
	}
	return []symSpan{{Sym: token.Symbol{Kind: token.Var, Text: text}, Span: s.pos - s.start}}
}

// lexCons implements the consHead branch: consume the identifier body and
// emit Cons. Unlike Var, Cons never carries trailing '?'/'!'/"'" or
// keyword classification -- reserved words are always lowercase.
func lexCons(s *Scanner) []symSpan {
	s.Next()
	for isIndentBodyChar(s.Peek()) {
		s.Next()
	}
	return []symSpan{{Sym: token.Symbol{Kind: token.Cons, Text: s.Current()}, Span: s.pos - s.start}}
}

// lexOperator implements the operator-char branch: consume a maximal run
// of operator characters into op, then a maximal run of '=' into suf. If
// suf == "=" emit Modifier(op); if suf == "" emit Operator(op); otherwise
// the combination has no rule and the whole thing is Unknown.
func lexOperator(s *Scanner) []symSpan {
	s.Next()
	for isRegularOperatorChar(s.Peek()) {
		s.Next()
	}
	opEnd := s.pos
	for s.Peek() == '=' {
		s.Next()
	}
	op := string(s.buf[s.start:opEnd])
	suf := string(s.buf[opEnd:s.pos])
	switch suf {
	case "":
		return []symSpan{{Sym: token.Symbol{Kind: token.Operator, Text: op}, Span: s.pos - s.start}}
	case "=":
		return []symSpan{{Sym: token.Symbol{Kind: token.Modifier, Text: op}, Span: s.pos - s.start}}
	default:
		return []symSpan{{Sym: token.Symbol{Kind: token.Unknown, Text: op + suf}, Span: s.pos - s.start}}
	}
}
