package lunalex

import "github.com/lunalang/lex/token"

// symSpan is one emitted symbol together with the number of source runes
// it specifically accounts for. Most sub-lexers return a single symSpan
// covering everything consumed since the token start; a handful (see
// beginStr's empty-string case) emit more than one symbol from a single
// dispatch call.
type symSpan struct {
	Sym  token.Symbol
	Span int
}

// subLexer is a total function from the scanner's current position to the
// symbol(s) it produces, having consumed the corresponding source text. A
// nil return (used only by fmtStrCode on a miss) means "no match here;
// dispatch through topEntryPoint instead".
type subLexer func(s *Scanner) []symSpan

// dispatchTable is the fixed-size array of sub-lexers keyed by the code
// point of a token's first character, for code points < tableSize. It is
// built once, at package initialization, and never mutated again -- the "vector-of-closures"
// table design note 9 calls for.
const tableSize = 200

var dispatchTable = buildDispatchTable()

func buildDispatchTable() [tableSize]subLexer {
	var t [tableSize]subLexer

	single := func(k token.SymbolKind) subLexer {
		return func(s *Scanner) []symSpan {
			s.Next()
			return []symSpan{{Sym: token.Symbol{Kind: k}, Span: 1}}
		}
	}

	t[';'] = single(token.Terminator)
	t['{'] = single(token.BlockBegin)
	t['}'] = single(token.BlockEnd)
	t['('] = single(token.GroupBegin)
	t[')'] = single(token.GroupEnd)
	t['['] = single(token.ListBegin)
	t[']'] = single(token.ListEnd)
	t[','] = func(s *Scanner) []symSpan {
		s.Next()
		return []symSpan{{Sym: token.Symbol{Kind: token.Operator, Text: ","}, Span: 1}}
	}
	t['\n'] = single(token.EOL)
	t['\r'] = func(s *Scanner) []symSpan {
		s.Next()
		if s.Peek() == '\n' {
			s.Next()
		}
		return []symSpan{{Sym: token.Symbol{Kind: token.EOL}, Span: s.pos - s.start}}
	}
	t[':'] = lexColon
	t['.'] = lexDot
	t['='] = lexEquals
	t[markerBegin] = lexMarker
	t['@'] = single(token.TypeApp)
	t['|'] = single(token.Merge)
	t['"'] = rawStr
	t['\''] = fmtStr
	t['`'] = natStr
	t['#'] = lexHash

	for r := rune(0); r < tableSize; r++ {
		switch {
		case t[r] != nil:
			continue
		case isDecDigit(r):
			t[r] = lexNumber
		case isVarHead(r):
			t[r] = lexVar
		case isConsHead(r):
			t[r] = lexCons
		case isRegularOperatorChar(r):
			t[r] = lexOperator
		}
	}
	return t
}

// lexColon consumes a run of ':' of length k: k=1 -> BlockStart, k=2 ->
// Typed, else Unknown.
func lexColon(s *Scanner) []symSpan {
	s.Next()
	for s.Peek() == ':' {
		s.Next()
	}
	k := s.pos - s.start
	switch k {
	case 1:
		return []symSpan{{Sym: token.Symbol{Kind: token.BlockStart}, Span: k}}
	case 2:
		return []symSpan{{Sym: token.Symbol{Kind: token.Typed}, Span: k}}
	default:
		return []symSpan{{Sym: token.Symbol{Kind: token.Unknown, Text: s.Current()}, Span: k}}
	}
}

// lexDot consumes a run of '.' of length k: k=1 -> Accessor, k=2 -> Range,
// k=3 -> Anything, else Unknown.
func lexDot(s *Scanner) []symSpan {
	s.Next()
	for s.Peek() == '.' {
		s.Next()
	}
	k := s.pos - s.start
	switch k {
	case 1:
		return []symSpan{{Sym: token.Symbol{Kind: token.Accessor}, Span: k}}
	case 2:
		return []symSpan{{Sym: token.Symbol{Kind: token.Range}, Span: k}}
	case 3:
		return []symSpan{{Sym: token.Symbol{Kind: token.Anything}, Span: k}}
	default:
		return []symSpan{{Sym: token.Symbol{Kind: token.Unknown, Text: s.Current()}, Span: k}}
	}
}

// lexEquals consumes a run of '=' of length k: k=1 -> Assignment, k=2 ->
// Operator("=="), else Unknown.
func lexEquals(s *Scanner) []symSpan {
	s.Next()
	for s.Peek() == '=' {
		s.Next()
	}
	k := s.pos - s.start
	switch k {
	case 1:
		return []symSpan{{Sym: token.Symbol{Kind: token.Assignment}, Span: k}}
	case 2:
		return []symSpan{{Sym: token.Symbol{Kind: token.Operator, Text: "=="}, Span: k}}
	default:
		return []symSpan{{Sym: token.Symbol{Kind: token.Unknown, Text: s.Current()}, Span: k}}
	}
}

// lexHash consumes a run of '#' of length k (including the first): k=1 ->
// Disable, k=2 -> lexComment, k=3 -> lexConfig; any longer run is Unknown,
// matching the source's commented-out pragma handling for k>3 (design
// note 9's second open question).
func lexHash(s *Scanner) []symSpan {
	s.Next()
	for s.Peek() == '#' {
		s.Next()
	}
	k := s.pos - s.start
	switch k {
	case 1:
		return []symSpan{{Sym: token.Symbol{Kind: token.Disable}, Span: k}}
	case 2:
		return lexComment(s)
	case 3:
		return lexConfig(s)
	default:
		return []symSpan{{Sym: token.Symbol{Kind: token.Unknown, Text: s.Current()}, Span: k}}
	}
}

// unknownRune is the fallback for a head character matched by no other
// rule: consume one rune and emit Unknown.
func unknownRune(s *Scanner) []symSpan {
	r := s.Next()
	return []symSpan{{Sym: token.Symbol{Kind: token.Unknown, Text: string(r)}, Span: 1}}
}

// topEntryPoint is the TopLevel dispatcher of spec.md section 4.2: peek
// one character; if its code point is < tableSize, index the fixed
// dispatch table; otherwise (or if the table has no entry registered)
// fall back to Unknown.
func topEntryPoint(s *Scanner) []symSpan {
	r := s.Peek()
	if r == EOF {
		return nil
	}
	if int(r) < tableSize {
		if f := dispatchTable[r]; f != nil {
			return f(s)
		}
	}
	return unknownRune(s)
}

// lexEntryPoint is the overall dispatcher of spec.md section 4.2: peek the
// entry-stack top and route to the corresponding sub-lexer family.
func lexEntryPoint(s *Scanner) []symSpan {
	switch top := s.stack.Top(); top.Kind {
	case token.StrCodeEntry:
		if r := fmtStrCode(top.HLen)(s); r != nil {
			return r
		}
		return topEntryPoint(s)
	case token.StrEntry:
		switch top.StrType {
		case token.RawStr:
			return rawStrBody(top.HLen)(s)
		case token.FmtStr:
			return fmtStrBody(top.HLen)(s)
		case token.NatStr:
			return natStrBody(top.HLen)(s)
		}
	}
	return topEntryPoint(s)
}
