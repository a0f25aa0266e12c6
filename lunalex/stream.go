package lunalex

import (
	"bufio"
	"os"

	"github.com/lunalang/lex/token"
)

// next pulls the next token out of the scanner, regardless of entry-stack
// mode, applying spec.md section 5's EOF rule ahead of every dispatch
// attempt: once the source is exhausted the stream simply ends, whatever
// string or interpolation region is still open on the entry-stack. No
// implicit closing of an unterminated string is ever performed; a resumed
// continuation is the caller's only way to finish one later.
//
// It reports ok = false once there is nothing left to read.
func next(s *Scanner) ([]token.Token, bool) {
	if s.Peek() == EOF {
		return nil, false
	}
	toks := nextLexeme(s)
	if toks == nil {
		return nil, false
	}
	return toks, true
}

// Tokenize lexes text from scratch (an empty entry-stack) and returns every
// token produced until EOF. Lexical defects are absorbed into the stream as
// Incorrect/StrWrongEsc/Unknown symbols rather than raised as errors; see
// TryTokenize for the I/O-error-reporting variant.
func Tokenize(text string) []token.Token {
	toks, _ := TokenizeWith(token.NewEntryStack(), text)
	return toks
}

// TokenizeWith lexes text starting from stack, the entry-stack retained from
// a previous TokenizeContinuation call -- the re-entrant resumption spec.md
// section 5 calls for. It returns the tokens produced and the entry-stack
// observed at EOF, which the caller may feed into a later TokenizeWith call
// once more text is available.
func TokenizeWith(stack token.EntryStack, text string) ([]token.Token, token.EntryStack) {
	s := NewScanner(NewStringSource(text), stack)
	var out []token.Token
	for {
		toks, ok := next(s)
		if !ok {
			break
		}
		out = append(out, toks...)
	}
	return out, s.Stack()
}

// TokenizeContinuation lexes text starting from stack and returns each token
// paired with the entry-stack observed immediately after it, so that a
// caller can resume lexing from any point in the middle of the returned
// slice, not only at the end -- the per-token checkpoint granularity
// spec.md section 5 calls for.
func TokenizeContinuation(stack token.EntryStack, text string) []token.TokenC {
	s := NewScanner(NewStringSource(text), stack)
	var out []token.TokenC
	for {
		toks, ok := next(s)
		if !ok {
			break
		}
		for _, t := range toks {
			out = append(out, token.TokenC{
				Span:   t.Span,
				Offset: t.Offset,
				Element: token.WithStack{
					Sym:   t.Sym,
					Stack: s.Stack().Clone(),
				},
			})
		}
	}
	return out
}

// TokenizeFile lexes the named file, streaming it through a ReaderSource
// rather than reading it whole into memory. The returned Pos values are bare
// rune offsets; a caller that wants them resolved to line/column should open
// the same file with OpenFile and call File.Position itself -- kept as a
// separate constructor rather than a second return value here, so this stays
// the same two-value (tokens, error) shape as TryTokenize.
func TokenizeFile(stack token.EntryStack, path string) ([]token.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := NewScanner(NewReaderSource(f), stack)

	var out []token.Token
	for {
		toks, ok := next(s)
		if !ok {
			break
		}
		out = append(out, toks...)
	}
	if err := s.Err(); err != nil {
		return out, &ParseError{Pos: s.Pos(), Err: err}
	}
	return out, nil
}

// OpenFile reads path purely to record its line-start offsets, returning a
// token.File that TokenizeFile's Pos results can be resolved against via
// File.Position. It does no lexing of its own, so it is safe to call before,
// after, or instead of TokenizeFile on the same path.
func OpenFile(path string) (*token.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file := token.NewFile(path)
	r := bufio.NewReader(f)
	var pos token.Pos
	line := 1
	for {
		ru, _, err := r.ReadRune()
		if err != nil {
			break
		}
		pos++
		if ru == '\n' {
			file.AddLine(pos, line)
			line++
		}
	}
	return file, nil
}

// TryTokenize is Tokenize's error-reporting counterpart: identical lexical
// behavior, but surfaces any sticky I/O error that the ChunkSource recorded
// (never expected for an in-memory string, but kept for interface symmetry
// with TryTokenizeFile).
func TryTokenize(text string) ([]token.Token, error) {
	s := NewScanner(NewStringSource(text), token.NewEntryStack())
	var out []token.Token
	for {
		toks, ok := next(s)
		if !ok {
			break
		}
		out = append(out, toks...)
	}
	if err := s.Err(); err != nil {
		return out, &ParseError{Pos: s.Pos(), Err: err}
	}
	return out, nil
}

// TryTokenizeFile is an alias for TokenizeFile kept for naming symmetry with
// TryTokenize; both already report I/O errors through their return value.
func TryTokenizeFile(stack token.EntryStack, path string) ([]token.Token, error) {
	return TokenizeFile(stack, path)
}
