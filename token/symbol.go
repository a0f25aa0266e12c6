// Copyright 2017-2018 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package token defines the Luna lexical vocabulary: symbol kinds, the
// tagged Symbol union, string flavors, escape descriptors and number
// literals.
package token

//go:generate stringer -type SymbolKind

// SymbolKind identifies the variant carried by a Symbol.
type SymbolKind uint8

// Symbol kinds. Order matches the table in the language specification.
const (
	STX SymbolKind = iota
	ETX
	EOL
	Terminator
	BlockStart
	BlockBegin
	BlockEnd
	GroupBegin
	GroupEnd
	ListBegin
	ListEnd
	Marker
	Var
	Cons
	KwAll
	KwCase
	KwClass
	KwDef
	KwImport
	KwOf
	KwType
	KwForeign
	KwNative
	Operator
	Modifier
	Accessor
	Assignment
	TypeApp
	Merge
	Range
	Anything
	Typed
	Number
	QuoteBegin
	QuoteEnd
	Str
	StrEsc
	StrWrongEsc
	Disable
	Doc
	Metadata
	Incorrect
	Unknown
)

var kindNames = [...]string{
	STX: "STX", ETX: "ETX", EOL: "EOL", Terminator: "Terminator",
	BlockStart: "BlockStart", BlockBegin: "BlockBegin", BlockEnd: "BlockEnd",
	GroupBegin: "GroupBegin", GroupEnd: "GroupEnd",
	ListBegin: "ListBegin", ListEnd: "ListEnd",
	Marker: "Marker", Var: "Var", Cons: "Cons",
	KwAll: "KwAll", KwCase: "KwCase", KwClass: "KwClass", KwDef: "KwDef",
	KwImport: "KwImport", KwOf: "KwOf", KwType: "KwType",
	KwForeign: "KwForeign", KwNative: "KwNative",
	Operator: "Operator", Modifier: "Modifier",
	Accessor: "Accessor", Assignment: "Assignment", TypeApp: "TypeApp",
	Merge: "Merge", Range: "Range", Anything: "Anything", Typed: "Typed",
	Number: "Number", QuoteBegin: "QuoteBegin", QuoteEnd: "QuoteEnd",
	Str: "Str", StrEsc: "StrEsc", StrWrongEsc: "StrWrongEsc",
	Disable: "Disable", Doc: "Doc", Metadata: "Metadata",
	Incorrect: "Incorrect", Unknown: "Unknown",
}

// String implements fmt.Stringer. It is hand-written rather than generated
// since the toolchain that would run `go generate` is not part of this
// build.
func (k SymbolKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "SymbolKind(?)"
}

// StrType distinguishes the three string literal flavors.
type StrType uint8

const (
	RawStr StrType = iota // "..."
	FmtStr                 // '...'
	NatStr                 // `...`
)

func (t StrType) String() string {
	switch t {
	case RawStr:
		return "RawStr"
	case FmtStr:
		return "FmtStr"
	case NatStr:
		return "NatStr"
	default:
		return "StrType(?)"
	}
}

// NumBase is the numeric base of a Number literal.
type NumBase uint8

const (
	Dec NumBase = iota
	Hex
	Oct
	Bin
)

func (b NumBase) String() string {
	switch b {
	case Dec:
		return "Dec"
	case Hex:
		return "Hex"
	case Oct:
		return "Oct"
	case Bin:
		return "Bin"
	default:
		return "NumBase(?)"
	}
}

// NumberLit is the payload of a Number symbol. FracPart and ExpPart are
// empty for any base other than Dec.
type NumberLit struct {
	Base     NumBase
	IntPart  string
	FracPart string
	ExpPart  string
}

// EscapeKind discriminates the escape-descriptor union.
type EscapeKind uint8

const (
	SlashEsc EscapeKind = iota
	QuoteEscape
	NumStrEsc
	CharStrEsc
)

// Escape is the payload of a StrEsc symbol.
//
//   - SlashEsc has no extra fields: it stands for a literal "\\".
//   - QuoteEscape carries the quote StrType and the run Length that was
//     escaped (e.g. `\"""` is a QuoteEscape(RawStr, 3)).
//   - NumStrEsc carries the decimal Value of the digit run.
//   - CharStrEsc carries the resolved character code in Value, from one of
//     the three escape-mnemonic tables.
type Escape struct {
	Kind      EscapeKind
	QuoteType StrType
	Length    int
	Value     uint32
}

// Symbol is the tagged union of every token kind the lexer can emit. Only
// the fields relevant to Kind are meaningful; the rest are zero.
type Symbol struct {
	Kind SymbolKind

	// Var, Cons, Operator, Modifier, Str, Doc, Metadata, Incorrect, Unknown
	Text string

	// Marker
	MarkerValue uint64

	// QuoteBegin, QuoteEnd, StrEsc (via Esc.QuoteType)
	StrType StrType

	// Number
	Num NumberLit

	// StrEsc
	Esc Escape

	// StrWrongEsc: the offending code point.
	WrongEscCode rune
}

// Kw looks up the reserved-word SymbolKind for an identifier's lowercase
// text, returning the zero SymbolKind and false when text is not a keyword.
func Kw(text string) (SymbolKind, bool) {
	k, ok := keywords[text]
	return k, ok
}

var keywords = map[string]SymbolKind{
	"all":     KwAll,
	"case":    KwCase,
	"class":   KwClass,
	"def":     KwDef,
	"import":  KwImport,
	"of":      KwOf,
	"type":    KwType,
	"foreign": KwForeign,
	"native":  KwNative,
}
