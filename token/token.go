package token

// Pos is a rune-indexed offset into the source text, as opposed to a byte
// offset. This mirrors the teacher lexer's own convention (db47h/lex's
// Pos), chosen because the specification's span/offset accounting is
// expressed in characters, not bytes.
type Pos int

// IsValid reports whether p is a valid position.
func (p Pos) IsValid() bool {
	return p >= 0
}

// Token is the record the lexer emits: a Symbol together with its Span (the
// character width of the token's own source text) and Offset (the weighted
// count of trailing horizontal whitespace until the next token, per the
// space=1/tab=4 convention of spec.md section 4.6).
type Token struct {
	Span   Pos
	Offset Pos
	Sym    Symbol
}

// WithStack pairs a Symbol with the entry-stack observed immediately after
// it was emitted -- the payload used by the continuation-returning
// tokenizer.
type WithStack struct {
	Sym   Symbol
	Stack EntryStack
}

// TokenC is the continuation-returning counterpart of Token: its Element is
// a (Symbol, EntryStack) pair instead of a bare Symbol.
type TokenC struct {
	Span    Pos
	Offset  Pos
	Element WithStack
}
