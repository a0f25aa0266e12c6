package lunalex

import "github.com/lunalang/lex/token"

// lexNumber implements the number sub-lexer of spec.md section 4.3:
//
//	number  := '0' ( ('x'|'X') hexDigits | ('o'|'O') octDigits | ('b'|'B') binDigits )
//	        |  decDigits [ '.' decDigits ] [ 'e' [+|-] decDigits ]
//
// On entry the head digit has not yet been consumed (dispatch only peeked
// at it), following the teacher's own state/num.go convention of assuming
// the caller has merely identified -- not consumed -- the branch to take.
func lexNumber(s *Scanner) []symSpan {
	r := s.Next()
	if r == '0' {
		switch s.Peek() {
		case 'x', 'X':
			s.Next()
			return lexNumberDigits(s, token.Hex, isHexDigit)
		case 'o', 'O':
			s.Next()
			return lexNumberDigits(s, token.Oct, isOctDigit)
		case 'b', 'B':
			s.Next()
			return lexNumberDigits(s, token.Bin, isBinDigit)
		}
	}
	return lexDecimal(s)
}

// lexNumberDigits scans the digit run for a non-decimal base literal, then
// hands off to finishNumber for trailing-garbage detection.
func lexNumberDigits(s *Scanner, base token.NumBase, digit func(rune) bool) []symSpan {
	start := s.Mark()
	for digit(s.Peek()) {
		s.Next()
	}
	intPart := string(s.buf[start:s.pos])
	return finishNumber(s, token.NumberLit{Base: base, IntPart: intPart})
}

// lexDecimal scans a decimal integer, optional fractional part and optional
// exponent, since the head digit (already consumed) may belong to any of
// those shapes.
func lexDecimal(s *Scanner) []symSpan {
	intStart := s.pos - 1 // the head digit was already consumed by lexNumber
	for isDecDigit(s.Peek()) {
		s.Next()
	}
	intPart := string(s.buf[intStart:s.pos])

	var fracPart, expPart string
	if s.Peek() == '.' {
		mark := s.Mark()
		s.Next()
		fracStart := s.pos
		for isDecDigit(s.Peek()) {
			s.Next()
		}
		if s.pos > fracStart {
			fracPart = string(s.buf[fracStart:s.pos])
		} else {
			// '.' not followed by a digit: not part of this number (it may
			// be an Accessor/Range/Anything token instead).
			s.Reset(mark)
		}
	}
	if s.Peek() == 'e' {
		mark := s.Mark()
		s.Next()
		expStart := s.pos
		if sign := s.Peek(); sign == '+' || sign == '-' {
			s.Next()
		}
		digitsStart := s.pos
		for isDecDigit(s.Peek()) {
			s.Next()
		}
		if s.pos > digitsStart {
			expPart = string(s.buf[expStart:s.pos])
		} else {
			s.Reset(mark)
		}
	}
	return finishNumber(s, token.NumberLit{Base: token.Dec, IntPart: intPart, FracPart: fracPart, ExpPart: expPart})
}

// finishNumber implements the trailing-garbage rule: if the character
// immediately following a successful number is alphanumeric, the maximal
// alphanumeric run is consumed and folded into an Incorrect token instead
// of the Number.
func finishNumber(s *Scanner, n token.NumberLit) []symSpan {
	if r := s.Peek(); isDecDigit(r) || isConsHead(r) || isVarHead(r) {
		garbageStart := s.pos
		for {
			r := s.Peek()
			if !(isDecDigit(r) || isConsHead(r) || isVarHead(r)) {
				break
			}
			s.Next()
		}
		garbage := string(s.buf[garbageStart:s.pos])
		return []symSpan{{
			Sym: token.Symbol{
				Kind: token.Incorrect,
				Text: "Unexpected characters '" + garbage + "' found on the end of number literal",
			},
			Span: s.pos - s.start,
		}}
	}
	return []symSpan{{Sym: token.Symbol{Kind: token.Number, Num: n}, Span: s.pos - s.start}}
}
