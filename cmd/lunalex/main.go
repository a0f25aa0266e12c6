// Command lunalex tokenizes a Luna source file and prints its tokens, one
// per line, for inspection.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lunalang/lex/token"
	"github.com/lunalang/lex/lunalex"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lunalex: ")

	continuation := flag.Bool("continuation", false, "print the entry-stack depth observed after each token")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lunalex [-continuation] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	if *continuation {
		dumpContinuation(path)
		return
	}
	dumpTokens(path)
}

func dumpTokens(path string) {
	toks, err := lunalex.TokenizeFile(token.NewEntryStack(), path)
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	file, err := lunalex.OpenFile(path)
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	pos := token.Pos(0)
	for _, t := range toks {
		fmt.Printf("%-6s %s\n", file.Position(pos), t.Sym.Kind)
		pos += t.Span + t.Offset
	}
}

func dumpContinuation(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	toks := lunalex.TokenizeContinuation(token.NewEntryStack(), string(data))
	for _, t := range toks {
		fmt.Printf("%-12s depth=%d\n", t.Element.Sym.Kind, t.Element.Stack.Depth())
	}
}
