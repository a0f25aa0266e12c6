package lunalex_test

import (
	"testing"

	"github.com/lunalang/lex/lunalex"
	"github.com/lunalang/lex/token"
)

func TestTokenize_VarVsKeyword(t *testing.T) {
	cases := []struct {
		in   string
		kind token.SymbolKind
		text string
	}{
		{"def", token.KwDef, ""},
		{"define", token.Var, "define"},
		{"x?", token.Var, "x?"},
		{"set!", token.Var, "set!"},
		{"x'", token.Var, "x'"},
		{"x''", token.Var, "x''"},
		{"_private", token.Var, "_private"},
	}
	for _, c := range cases {
		toks := lunalex.Tokenize(c.in)
		if len(toks) != 1 || toks[0].Sym.Kind != c.kind {
			t.Fatalf("Tokenize(%q) = %+v, want single token of kind %v", c.in, toks, c.kind)
		}
		if c.text != "" && toks[0].Sym.Text != c.text {
			t.Errorf("Tokenize(%q) Text = %q, want %q", c.in, toks[0].Sym.Text, c.text)
		}
	}
}

func TestTokenize_Cons(t *testing.T) {
	toks := lunalex.Tokenize("Maybe")
	if len(toks) != 1 || toks[0].Sym.Kind != token.Cons || toks[0].Sym.Text != "Maybe" {
		t.Fatalf("Tokenize(%q) = %+v, want Cons(%q)", "Maybe", toks, "Maybe")
	}
}

func TestTokenize_Operators(t *testing.T) {
	cases := []struct {
		in   string
		want []token.Symbol
	}{
		{"+", []token.Symbol{{Kind: token.Operator, Text: "+"}}},
		{"+=", []token.Symbol{{Kind: token.Modifier, Text: "+"}}},
		{"<>", []token.Symbol{{Kind: token.Operator, Text: "<>"}}},
		{"<>==", []token.Symbol{{Kind: token.Unknown, Text: "<>=="}}},
	}
	for _, c := range cases {
		toks := lunalex.Tokenize(c.in)
		if len(toks) != len(c.want) {
			t.Fatalf("Tokenize(%q) = %+v, want %+v", c.in, toks, c.want)
		}
		for i, w := range c.want {
			if toks[i].Sym != w {
				t.Errorf("Tokenize(%q)[%d] = %+v, want %+v", c.in, i, toks[i].Sym, w)
			}
		}
	}
}
