package lunalex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/lunalang/lex/lunalex"
	"github.com/lunalang/lex/token"
)

// symbols strips span/offset bookkeeping from a token slice, leaving just
// the sequence of symbols -- what the concrete scenarios in spec.md section
// 8 describe.
func symbols(toks []token.Token) []token.Symbol {
	out := make([]token.Symbol, len(toks))
	for i, t := range toks {
		out[i] = t.Sym
	}
	return out
}

func TestTokenize_ConcreteScenarios(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []token.Symbol
	}{
		{
			name: "decimal with fraction and exponent",
			in:   "123.45e-7",
			want: []token.Symbol{
				{Kind: token.Number, Num: token.NumberLit{Base: token.Dec, IntPart: "123", FracPart: "45", ExpPart: "-7"}},
			},
		},
		{
			name: "hex with trailing space",
			in:   "0xFF ",
			want: []token.Symbol{
				{Kind: token.Number, Num: token.NumberLit{Base: token.Hex, IntPart: "FF"}},
			},
		},
		{
			name: "nested interpolation",
			in:   "'ab`c+1`d'",
			want: []token.Symbol{
				{Kind: token.QuoteBegin, StrType: token.FmtStr},
				{Kind: token.Str, Text: "ab"},
				{Kind: token.BlockBegin},
				{Kind: token.Var, Text: "c"},
				{Kind: token.Operator, Text: "+"},
				{Kind: token.Number, Num: token.NumberLit{Base: token.Dec, IntPart: "1"}},
				{Kind: token.BlockEnd},
				{Kind: token.Str, Text: "d"},
				{Kind: token.QuoteEnd, StrType: token.FmtStr},
			},
		},
		{
			name: "raw string with embedded short quote run",
			in:   `"""raw "" still"""`,
			want: []token.Symbol{
				{Kind: token.QuoteBegin, StrType: token.RawStr},
				{Kind: token.Str, Text: "raw "},
				{Kind: token.Str, Text: `""`},
				{Kind: token.Str, Text: " still"},
				{Kind: token.QuoteEnd, StrType: token.RawStr},
			},
		},
		{
			name: "doc comment",
			in:   "## doc line\n",
			want: []token.Symbol{
				{Kind: token.Doc, Text: " doc line"},
				{Kind: token.EOL},
			},
		},
		{
			name: "unrecognized equals run",
			in:   "=== END ===",
			want: []token.Symbol{
				{Kind: token.Unknown, Text: "==="},
				{Kind: token.Cons, Text: "END"},
				{Kind: token.Unknown, Text: "==="},
			},
		},
		{
			name: "type application then assignment",
			in:   "@foo =",
			want: []token.Symbol{
				{Kind: token.TypeApp},
				{Kind: token.Var, Text: "foo"},
				{Kind: token.Assignment},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks := lunalex.Tokenize(c.in)
			got := symbols(toks)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("Tokenize(%q) symbol mismatch (-want +got):\n%s", c.in, diff)
			}
		})
	}
}

func TestTokenize_SpanOffsetInvariant(t *testing.T) {
	inputs := []string{
		"123.45e-7",
		"0xFF ",
		"'ab`c+1`d'",
		`"""raw "" still"""`,
		"## doc line\n",
		"=== END ===",
		"@foo =",
		"def x = 1;\n",
		"class Foo of A | B;\n",
	}
	for _, in := range inputs {
		toks := lunalex.Tokenize(in)
		var total token.Pos
		for _, tk := range toks {
			total += tk.Span + tk.Offset
		}
		require.EqualValues(t, len([]rune(in)), total, "span/offset sum mismatch for %q", in)
	}
}

func TestTokenize_ScenarioSpans(t *testing.T) {
	toks := lunalex.Tokenize("123.45e-7")
	require.Len(t, toks, 1)
	require.EqualValues(t, 9, toks[0].Span)
}

func TestTokenize_HexTrailingOffset(t *testing.T) {
	toks := lunalex.Tokenize("0xFF ")
	require.Len(t, toks, 1)
	require.EqualValues(t, 4, toks[0].Span)
	require.EqualValues(t, 1, toks[0].Offset)
}

// Delimiter matching: a run of the quote character whose length does not
// match the opening run length must never close the string.
func TestTokenize_DelimiterMatching(t *testing.T) {
	toks := lunalex.Tokenize(`""x""""y""`)
	got := symbols(toks)
	// The leading "" is the documented degenerate case (n==2): two Unknown
	// tokens rather than an opened string.
	require.Equal(t, token.Unknown, got[0].Kind)
	require.Equal(t, token.Unknown, got[1].Kind)
	require.Equal(t, token.QuoteBegin, got[3].Kind)
	// The trailing "" (length 2, opening run was 4) stays literal text.
	require.Equal(t, []token.Symbol{
		{Kind: token.Str, Text: "y"},
		{Kind: token.Str, Text: `""`},
	}, got[4:])
}

// Nesting depth: the entry-stack depth after tokenizing a prefix equals the
// number of unterminated opens in that prefix.
func TestTokenizeWith_NestingDepth(t *testing.T) {
	_, stack := lunalex.TokenizeWith(token.NewEntryStack(), "'ab`c")
	require.Equal(t, 2, stack.Depth()) // FmtStr entry + StrCodeEntry
}

// Idempotence under resumption: tokenizing in one shot equals tokenizing a
// prefix up to any token boundary and then resuming on the rest with the
// stack observed at that boundary. Token boundaries are derived from the
// whole-input tokenization's own span/offset accounting, so each one is by
// construction a point where the lexer's (remaining text, entry-stack) pair
// is exactly reproduced by an independent call starting there.
func TestTokenize_ResumptionIdempotence(t *testing.T) {
	full := "'abc`1+2`def'"
	runes := []rune(full)
	whole, finalStack := lunalex.TokenizeWith(token.NewEntryStack(), full)
	require.Equal(t, token.EntryStack{}, finalStack)

	var pos token.Pos
	for i, tk := range whole {
		pos += tk.Span + tk.Offset
		prefix := string(runes[:pos])
		suffix := string(runes[pos:])

		first, stack := lunalex.TokenizeWith(token.NewEntryStack(), prefix)
		second, _ := lunalex.TokenizeWith(stack, suffix)
		combined := append(append([]token.Token{}, first...), second...)

		if diff := cmp.Diff(symbols(whole), symbols(combined)); diff != "" {
			t.Fatalf("boundary after token %d (pos %d): resumed tokenization mismatch (-whole +resumed):\n%s", i, pos, diff)
		}
	}
}

func TestTokenizeContinuation_TracksDepth(t *testing.T) {
	toks := lunalex.TokenizeContinuation(token.NewEntryStack(), "'a`1`b'")
	var maxDepth int
	for _, tk := range toks {
		if d := tk.Element.Stack.Depth(); d > maxDepth {
			maxDepth = d
		}
	}
	require.Equal(t, 2, maxDepth)
	require.Equal(t, 0, toks[len(toks)-1].Element.Stack.Depth())
}

func TestTokenize_UnterminatedStringNoImplicitClose(t *testing.T) {
	toks, stack := lunalex.TokenizeWith(token.NewEntryStack(), `"abc`)
	require.Equal(t, 1, stack.Depth())
	got := symbols(toks)
	require.Equal(t, []token.Symbol{
		{Kind: token.QuoteBegin, StrType: token.RawStr},
		{Kind: token.Str, Text: "abc"},
	}, got)
}
