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

// Package lunalex implements the Luna lexical analyzer: a stateful,
// re-entrant scanner over an entry-stack of lexer modes, a fixed dispatch
// table keyed by the first character of each token, and a set of
// specialized sub-lexers for numbers, identifiers, operators, markers,
// comments, metadata and the three string literal flavors.
package lunalex

import (
	"io"

	"github.com/lunalang/lex/token"
)

// EOF is the rune value Next and Peek return at end of input.
const EOF rune = -1

// Scanner holds the mutable state of one lexing session: a rune buffer fed
// by a ChunkSource, a cursor into that buffer, and the entry-stack that
// selects which sub-lexer runs next.
//
// A Scanner is a pure function of (remaining text, entry-stack) to (token,
// new remaining text, new entry-stack), as required by the concurrency
// model in spec.md section 5: it shares nothing with other Scanner
// instances and holds no resource beyond its ChunkSource and the in-flight
// chunk buffer.
type Scanner struct {
	src   ChunkSource
	buf   []rune
	pos   int // index into buf of the next unread rune
	start int // index into buf where the current token begins
	base  token.Pos // absolute rune position corresponding to buf[0]

	ioErr error // sticky error from the source, surfaced once buf is drained
	stack token.EntryStack

	file *token.File // optional, for AddLine bookkeeping; nil is fine
	line int
}

// NewScanner creates a Scanner reading from src, initialized with stack as
// its entry-stack (pass token.EntryStack{} for a fresh TopLevel scan, or a
// stack retained from TokenizeContinuation to resume mid-string).
func NewScanner(src ChunkSource, stack token.EntryStack) *Scanner {
	return &Scanner{
		src:   src,
		stack: stack,
		line:  1,
	}
}

// SetFile attaches a token.File that AddLine is reported to as newlines are
// scanned, so that later diagnostics can resolve a Pos to a line/column.
func (s *Scanner) SetFile(f *token.File) {
	s.file = f
}

// Stack returns the scanner's current entry-stack. Safe to call between
// tokens; the returned value shares its backing array with the scanner's
// internal stack, so callers that keep it while scanning continues take a
// snapshot with Clone.
func (s *Scanner) Stack() token.EntryStack {
	return s.stack
}

// fill reads one more chunk from src into buf. It returns false once src is
// exhausted and nothing more can be read.
func (s *Scanner) fill() bool {
	if s.ioErr != nil {
		return false
	}
	chunk, err := s.src.ReadChunk()
	if chunk != "" {
		s.buf = append(s.buf, []rune(chunk)...)
	}
	if err != nil {
		s.ioErr = err
	}
	return chunk != ""
}

// compact drops the portion of buf before the current token start, so that
// the scanner never retains more than the in-flight chunk plus the
// in-progress token's prefix, per spec.md section 5.
func (s *Scanner) compact() {
	if s.start == 0 {
		return
	}
	s.base += token.Pos(s.start)
	n := copy(s.buf, s.buf[s.start:])
	s.buf = s.buf[:n]
	s.pos -= s.start
	s.start = 0
}

// StartToken marks the scanner's current cursor position as the start of
// the token about to be lexed, and compacts the buffer up to that point.
func (s *Scanner) StartToken() {
	s.compact()
	s.start = s.pos
}

// TokenStart returns the absolute rune position of the current token's
// first character, as set by the most recent StartToken.
func (s *Scanner) TokenStart() token.Pos {
	return s.base + token.Pos(s.start)
}

// Pos returns the absolute rune position of the cursor (i.e. of the next
// unread rune).
func (s *Scanner) Pos() token.Pos {
	return s.base + token.Pos(s.pos)
}

// Next returns the next rune in the input, advancing the cursor, or EOF
// once the source is exhausted. IO errors other than io.EOF are recorded
// and also surface as EOF; callers needing to distinguish the two should
// check Err after receiving EOF.
func (s *Scanner) Next() rune {
	for s.pos >= len(s.buf) {
		if !s.fill() {
			return EOF
		}
	}
	r := s.buf[s.pos]
	s.pos++
	if r == '\n' && s.file != nil {
		s.file.AddLine(s.Pos(), s.line)
		s.line++
	}
	return r
}

// Backup reverts the last call to Next. It must not be called more times in
// a row than Next was called since the last StartToken.
func (s *Scanner) Backup() {
	if s.pos <= s.start {
		panic("lunalex: Backup past token start")
	}
	s.pos--
}

// BackupN reverts the last n calls to Next.
func (s *Scanner) BackupN(n int) {
	for ; n > 0; n-- {
		s.Backup()
	}
}

// Peek returns the next rune without consuming it.
func (s *Scanner) Peek() rune {
	r := s.Next()
	if r != EOF {
		s.Backup()
	}
	return r
}

// Current returns the text consumed since the last StartToken.
func (s *Scanner) Current() string {
	return string(s.buf[s.start:s.pos])
}

// Mark returns a checkpoint that Reset can later rewind the cursor to. It
// is the "checkpoint/restore" abstraction design note 9 calls for: ordered
// attempt-and-rewind across sub-lexers that may each consume a handful of
// characters before discovering a miss.
func (s *Scanner) Mark() int {
	return s.pos
}

// Reset rewinds the cursor to a checkpoint previously returned by Mark.
func (s *Scanner) Reset(mark int) {
	if mark < s.start {
		panic("lunalex: Reset before token start")
	}
	s.pos = mark
}

// Err returns the sticky IO error reported by the ChunkSource, if any
// (io.EOF is not reported: it is the expected terminal condition, signaled
// to callers via the EOF rune, not via Err).
func (s *Scanner) Err() error {
	if s.ioErr == io.EOF {
		return nil
	}
	return s.ioErr
}
