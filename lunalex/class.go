package lunalex

// Character classification predicates, grounded on the teacher's own
// defIsIdentifier/defIsSeparator (lexer/options.go): small top-level
// functions over a rune, no table needed since the sets involved are tiny
// and entirely ASCII.

func isDecDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDecDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isOctDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

func isBinDigit(r rune) bool {
	return r == '0' || r == '1'
}

// isVarHead reports whether r can start a lowercase identifier (Var,
// keywords): a..z or underscore.
func isVarHead(r rune) bool {
	return (r >= 'a' && r <= 'z') || r == '_'
}

// isConsHead reports whether r can start an uppercase identifier (Cons):
// A..Z.
func isConsHead(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// isIndentBodyChar reports whether r may appear in the body of an
// identifier: any ASCII letter, digit, or underscore.
func isIndentBodyChar(r rune) bool {
	return isVarHead(r) || isConsHead(r) || isDecDigit(r)
}

// isRegularOperatorChar is the fixed, closed set of ASCII operator
// punctuation defined by the Symbol alphabet. This set is part of the
// external contract (spec.md section 6) and exposed as IsRegularOperatorChar.
func isRegularOperatorChar(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '^', '<', '>', '&', '$', '~', '?', '!':
		return true
	default:
		return false
	}
}

// IsRegularOperatorChar is the exported form of isRegularOperatorChar,
// part of the lexical constants spec.md section 6 requires be exposed.
func IsRegularOperatorChar(r rune) bool {
	return isRegularOperatorChar(r)
}

// isHorizontalSpace reports whether r is a space or tab, the only two
// characters the lexeme driver measures as trailing whitespace.
func isHorizontalSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
