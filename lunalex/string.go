package lunalex

import "github.com/lunalang/lex/token"

// The three string sub-lexers of spec.md section 4.4. Each opens with
// beginStr, which counts the opening delimiter run and pushes a StrEntry;
// the body of each flavor is handled once the entry-stack routes back into
// lexEntryPoint as StrEntry(t, N).

func rawStr(s *Scanner) []symSpan { return beginStr(s, token.RawStr, '"') }
func fmtStr(s *Scanner) []symSpan { return beginStr(s, token.FmtStr, '\'') }
func natStr(s *Scanner) []symSpan { return beginStr(s, token.NatStr, '`') }

// beginStr reads a run of N >= 1 consecutive quote characters q. A run of
// length 2 is the "empty string" case design note 9 flags as an open
// question in the source: rather than opening a (degenerate, immediately
// closed) string, it is rejected and the two quote characters fall back to
// the lowest-priority rule in the dispatch table -- the same one that would
// have applied to q had no string rule claimed it at all, i.e. two Unknown
// tokens of span 1. This is the resolution DESIGN.md records for that open
// question. Any other run length opens a string normally.
func beginStr(s *Scanner, t token.StrType, q rune) []symSpan {
	n := 0
	for s.Peek() == q {
		s.Next()
		n++
	}
	if n == 2 {
		return []symSpan{
			{Sym: token.Symbol{Kind: token.Unknown, Text: string(q)}, Span: 1},
			{Sym: token.Symbol{Kind: token.Unknown, Text: string(q)}, Span: 1},
		}
	}
	s.stack.Push(token.Entry{Kind: token.StrEntry, StrType: t, HLen: n})
	return []symSpan{{Sym: token.Symbol{Kind: token.QuoteBegin, StrType: t}, Span: n}}
}

// closingRun reads a run of the quote character of flavor t (the scanner's
// cursor is at the first quote of the run) and decides whether it closes the
// current string (run length == n) or is just literal text. On a match it
// pops the entry-stack and returns the Quote-End symspan; on a miss it
// rewinds nothing (the run was genuinely consumed) and returns the run as
// a Str literal, letting the caller fold it into a longer literal if it
// wants to.
func closingRun(s *Scanner, t token.StrType, n int) (symSpan, bool) {
	start := s.pos
	k := 0
	for s.Peek() == rune(quoteCharFor(t)) {
		s.Next()
		k++
	}
	if k == n {
		s.stack.Pop()
		return symSpan{Sym: token.Symbol{Kind: token.QuoteEnd, StrType: t}, Span: k}, true
	}
	return symSpan{Sym: token.Symbol{Kind: token.Str, Text: string(s.buf[start:s.pos])}, Span: k}, false
}

func quoteCharFor(t token.StrType) rune {
	switch t {
	case token.RawStr:
		return '"'
	case token.FmtStr:
		return '\''
	default:
		return '`'
	}
}

// rawStrBody implements the Raw string body alternatives of spec.md
// section 4.4, tried in order.
func rawStrBody(hlen int) subLexer {
	return func(s *Scanner) []symSpan {
		r := s.Peek()
		switch {
		case r == '"':
			sp, _ := closingRun(s, token.RawStr, hlen)
			return []symSpan{sp}
		case r == '\n' || r == '\r':
			s.Next()
			return []symSpan{{Sym: token.Symbol{Kind: token.EOL}, Span: 1}}
		case r == '\\':
			return []symSpan{lexRawEscape(s)}
		default:
			return []symSpan{lexStrLiteralRun(s, "\"\n\r\\")}
		}
	}
}

// fmtStrBody implements the Fmt string body alternatives: identical to Raw
// except the literal-run stop set also excludes backtick, the escape
// sub-lexer falls through to the general lexEscSeq table, and a run of
// backticks opens an interpolation region.
func fmtStrBody(hlen int) subLexer {
	return func(s *Scanner) []symSpan {
		r := s.Peek()
		switch {
		case r == '\'':
			sp, _ := closingRun(s, token.FmtStr, hlen)
			return []symSpan{sp}
		case r == '\n' || r == '\r':
			s.Next()
			return []symSpan{{Sym: token.Symbol{Kind: token.EOL}, Span: 1}}
		case r == '`':
			m := 0
			for s.Peek() == '`' {
				s.Next()
				m++
			}
			s.stack.Push(token.Entry{Kind: token.StrCodeEntry, HLen: m})
			return []symSpan{{Sym: token.Symbol{Kind: token.BlockBegin}, Span: m}}
		case r == '\\':
			return []symSpan{lexFmtEscape(s)}
		default:
			return []symSpan{lexStrLiteralRun(s, "'\n\r`\\")}
		}
	}
}

// natStrBody implements the Nat string body: only two alternatives, no
// escapes, no interpolation (native code strings pass their contents
// through verbatim to the foreign compiler).
func natStrBody(hlen int) subLexer {
	return func(s *Scanner) []symSpan {
		if s.Peek() == '`' {
			sp, _ := closingRun(s, token.NatStr, hlen)
			return []symSpan{sp}
		}
		return []symSpan{lexStrLiteralRun(s, "`")}
	}
}

// lexStrLiteralRun consumes the longest run of characters not in stopSet
// and returns it as a Str symbol.
func lexStrLiteralRun(s *Scanner, stopSet string) symSpan {
	start := s.pos
	for {
		r := s.Peek()
		if r == EOF || containsRune(stopSet, r) {
			break
		}
		s.Next()
	}
	return symSpan{Sym: token.Symbol{Kind: token.Str, Text: string(s.buf[start:s.pos])}, Span: s.pos - start}
}

func containsRune(set string, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}

// lexRawEscape handles the Raw string escape alternative: \\ -> SlashEsc;
// a run of " -> QuoteEscape(RawStr, len); a run of ' -> QuoteEscape(FmtStr, len).
func lexRawEscape(s *Scanner) symSpan {
	start := s.pos
	s.Next() // consume '\'
	switch s.Peek() {
	case '\\':
		s.Next()
		return symSpan{Sym: token.Symbol{Kind: token.StrEsc, Esc: token.Escape{Kind: token.SlashEsc}}, Span: s.pos - start}
	case '"':
		n := 0
		for s.Peek() == '"' {
			s.Next()
			n++
		}
		return symSpan{Sym: token.Symbol{Kind: token.StrEsc, Esc: token.Escape{Kind: token.QuoteEscape, QuoteType: token.RawStr, Length: n}}, Span: s.pos - start}
	case '\'':
		n := 0
		for s.Peek() == '\'' {
			s.Next()
			n++
		}
		return symSpan{Sym: token.Symbol{Kind: token.StrEsc, Esc: token.Escape{Kind: token.QuoteEscape, QuoteType: token.FmtStr, Length: n}}, Span: s.pos - start}
	default:
		r := s.Next()
		if r == EOF {
			// Next does not advance past EOF, so there is nothing to back
			// out of here: backing up would wrongly undo the backslash
			// this function already consumed.
			r = 0
		}
		return symSpan{Sym: token.Symbol{Kind: token.StrWrongEsc, WrongEscCode: r}, Span: s.pos - start}
	}
}

// lexFmtEscape is the Fmt string escape alternative: same shape as
// lexRawEscape's \\ and quote-run cases, but falls through to the general
// escape-sequence sub-lexer (named/numeric escapes) when neither applies.
func lexFmtEscape(s *Scanner) symSpan {
	start := s.pos
	s.Next() // consume '\'
	switch s.Peek() {
	case '\\':
		s.Next()
		return symSpan{Sym: token.Symbol{Kind: token.StrEsc, Esc: token.Escape{Kind: token.SlashEsc}}, Span: s.pos - start}
	case '"':
		n := 0
		for s.Peek() == '"' {
			s.Next()
			n++
		}
		return symSpan{Sym: token.Symbol{Kind: token.StrEsc, Esc: token.Escape{Kind: token.QuoteEscape, QuoteType: token.RawStr, Length: n}}, Span: s.pos - start}
	case '\'':
		n := 0
		for s.Peek() == '\'' {
			s.Next()
			n++
		}
		return symSpan{Sym: token.Symbol{Kind: token.StrEsc, Esc: token.Escape{Kind: token.QuoteEscape, QuoteType: token.FmtStr, Length: n}}, Span: s.pos - start}
	default:
		sym := lexEscSeq(s)
		return symSpan{Sym: sym, Span: s.pos - start}
	}
}

// fmtStrCode implements the interpolation-code sub-lexer of spec.md
// section 4.4: first try to close the region (a run of backticks of
// length == h); on a miss, fall through to ordinary top-level lexing by
// returning nil, which tells lexEntryPoint to dispatch through
// topEntryPoint instead.
func fmtStrCode(hlen int) subLexer {
	return func(s *Scanner) []symSpan {
		if s.Peek() == '`' {
			mark := s.Mark()
			m := 0
			for s.Peek() == '`' {
				s.Next()
				m++
			}
			if m == hlen {
				s.stack.Pop()
				return []symSpan{{Sym: token.Symbol{Kind: token.BlockEnd}, Span: m}}
			}
			s.Reset(mark)
		}
		return nil
	}
}
