package lunalex

import (
	"strconv"

	"github.com/lunalang/lex/token"
)

// Three fixed, read-only maps from escape mnemonics to character codes, as
// specified in spec.md section 4.4. They are small (<=20 entries each), so
// a plain map literal is used rather than a perfect hash or a generated
// table -- design note 9 explicitly allows either.

var escape1 = map[string]rune{
	"a": '\a', "b": '\b', "f": '\f', "n": '\n', "r": '\r',
	"t": '\t', "v": '\v', "'": '\'', "\"": '"',
}

var escape2 = map[string]rune{
	"BS": 0x08, "HT": 0x09, "LF": 0x0A, "VT": 0x0B, "FF": 0x0C, "CR": 0x0D,
	"SO": 0x0E, "SI": 0x0F, "EM": 0x19, "FS": 0x1C, "GS": 0x1D, "RS": 0x1E,
	"US": 0x1F, "SP": 0x20,
}

var escape3 = map[string]rune{
	"NUL": 0x00, "SOH": 0x01, "STX": 0x02, "ETX": 0x03, "EOT": 0x04,
	"ENQ": 0x05, "ACK": 0x06, "BEL": 0x07, "DLE": 0x10,
	"DC1": 0x11, "DC2": 0x12, "DC3": 0x13, "DC4": 0x14,
	"NAK": 0x15, "SYN": 0x16, "ETB": 0x17, "CAN": 0x18,
	"SUB": 0x1A, "ESC": 0x1B, "DEL": 0x7F,
}

var escTables = [3]map[string]rune{escape1, escape2, escape3}

// lexEscSeq is the general escape-sequence sub-lexer (spec.md section
// 4.4): tried after a backslash has been consumed by the Fmt string body.
// In order: a decimal digit run becomes a NumStrEsc; failing that, 1-, 2-
// then 3-character lookups in the three fixed tables are tried in turn;
// failing all of those, one character is consumed and reported as a
// StrWrongEsc.
func lexEscSeq(s *Scanner) token.Symbol {
	if isDecDigit(s.Peek()) {
		start := s.Mark()
		for isDecDigit(s.Peek()) {
			s.Next()
		}
		v, _ := strconv.ParseUint(string(s.buf[start:s.pos]), 10, 32)
		return token.Symbol{Kind: token.StrEsc, Esc: token.Escape{Kind: token.NumStrEsc, Value: uint32(v)}}
	}

	for length := 1; length <= 3; length++ {
		mark := s.Mark()
		buf := make([]rune, 0, length)
		ok := true
		for i := 0; i < length; i++ {
			r := s.Next()
			if r == EOF {
				ok = false
				break
			}
			buf = append(buf, r)
		}
		if ok {
			if code, found := escTables[length-1][string(buf)]; found {
				return token.Symbol{Kind: token.StrEsc, Esc: token.Escape{Kind: token.CharStrEsc, Value: uint32(code)}}
			}
		}
		s.Reset(mark)
	}

	r := s.Next()
	if r == EOF {
		// Next does not advance past EOF: nothing was consumed here, so
		// there is nothing to back out of. Backing up would wrongly undo
		// the backslash already consumed by the caller.
		r = 0
	}
	return token.Symbol{Kind: token.StrWrongEsc, WrongEscCode: r}
}
