package lunalex

import (
	"strconv"

	"github.com/lunalang/lex/token"
)

// markerBegin and markerEnd are the two distinguished marker-delimiter
// code points spec.md section 6 requires be exposed as named constants.
// Luna markers are editor-layer annotations set off by guillemets, chosen
// (like the rest of the dispatch table) from code points under 200 so
// they take the table's fast path.
const (
	markerBegin rune = '«' // '«'
	markerEnd   rune = '»' // '»'
)

// lexMarker implements spec.md section 4.5: consume marker-begin, then
// either decimal digits (Marker(value)) or arbitrary text up to
// marker-end (Incorrect("Marker " ++ text)), then consume marker-end.
func lexMarker(s *Scanner) []symSpan {
	s.Next() // markerBegin
	if isDecDigit(s.Peek()) {
		digitsStart := s.pos
		for isDecDigit(s.Peek()) {
			s.Next()
		}
		v, _ := strconv.ParseUint(string(s.buf[digitsStart:s.pos]), 10, 64)
		if s.Peek() == markerEnd {
			s.Next()
		}
		return []symSpan{{Sym: token.Symbol{Kind: token.Marker, MarkerValue: v}, Span: s.pos - s.start}}
	}
	textStart := s.pos
	for {
		r := s.Peek()
		if r == EOF || r == markerEnd {
			break
		}
		s.Next()
	}
	text := string(s.buf[textStart:s.pos])
	if s.Peek() == markerEnd {
		s.Next()
	}
	return []symSpan{{Sym: token.Symbol{Kind: token.Incorrect, Text: "Marker " + text}, Span: s.pos - s.start}}
}

// lexComment implements spec.md section 4.5: the rest of the line becomes
// a Doc symbol. The terminating newline is left for the next dispatch
// cycle to emit as its own EOL token.
func lexComment(s *Scanner) []symSpan {
	start := s.pos
	for {
		r := s.Peek()
		if r == EOF || r == '\n' || r == '\r' {
			break
		}
		s.Next()
	}
	return []symSpan{{Sym: token.Symbol{Kind: token.Doc, Text: string(s.buf[start:s.pos])}, Span: s.pos - s.start}}
}

// metadataHeader is the identifier literal that opens a metadata line,
// exposed as a named lexical constant per spec.md section 6.
const metadataHeader = "META"

// lexConfig implements spec.md section 4.5: skip spaces, then require the
// literal metadataHeader, at least one space, then the rest of the line as
// a Metadata symbol. Anything else at this point has no rule (the source
// comments out pragma handling for hash runs this long) and is Unknown,
// matching the resolution of the corresponding open question in
// DESIGN.md.
func lexConfig(s *Scanner) []symSpan {
	for s.Peek() == ' ' {
		s.Next()
	}
	mark := s.Mark()
	for _, want := range metadataHeader {
		if s.Peek() != want {
			s.Reset(mark)
			return []symSpan{{Sym: token.Symbol{Kind: token.Unknown, Text: s.Current()}, Span: s.pos - s.start}}
		}
		s.Next()
	}
	if s.Peek() != ' ' {
		s.Reset(mark)
		return []symSpan{{Sym: token.Symbol{Kind: token.Unknown, Text: s.Current()}, Span: s.pos - s.start}}
	}
	for s.Peek() == ' ' {
		s.Next()
	}
	textStart := s.pos
	for {
		r := s.Peek()
		if r == EOF || r == '\n' || r == '\r' {
			break
		}
		s.Next()
	}
	return []symSpan{{Sym: token.Symbol{Kind: token.Metadata, Text: string(s.buf[textStart:s.pos])}, Span: s.pos - s.start}}
}
