package lunalex

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// ChunkSource is the abstract byte/text source the scanner pulls from. It is
// the external collaborator spec.md section 1 calls for: something that
// decodes a byte stream to text and hands it to the lexer in pieces, so that
// the whole input never has to be held in memory at once.
//
// ReadChunk returns the next piece of decoded text. Returning io.EOF together
// with a non-empty chunk is allowed (the chunk is still consumed); on the
// next call ReadChunk should return ("", io.EOF).
type ChunkSource interface {
	ReadChunk() (string, error)
}

// stringSource serves an entire in-memory string as a single chunk. Used by
// Tokenize/TokenizeWith, where the whole input is already resident.
type stringSource struct {
	text string
	done bool
}

// NewStringSource returns a ChunkSource that yields text in one chunk.
func NewStringSource(text string) ChunkSource {
	return &stringSource{text: text}
}

func (s *stringSource) ReadChunk() (string, error) {
	if s.done {
		return "", io.EOF
	}
	s.done = true
	return s.text, io.EOF
}

// readerSource adapts an io.Reader to ChunkSource, reading a bounded number
// of runes per chunk so that the scanner's own backpressure guarantee (never
// buffer more than one chunk plus the in-progress token's prefix, per
// spec.md section 5) is meaningful even for large files. Grounded on the
// teacher's token.File, which wraps an io.Reader for the same purpose.
type readerSource struct {
	r         *bufio.Reader
	runesPer  int
	pendingErr error
}

// ChunkRunes is the default number of runes ReaderSource reads per chunk.
const ChunkRunes = 4096

// NewReaderSource returns a ChunkSource reading UTF-8 text from r in chunks
// of roughly ChunkRunes runes.
func NewReaderSource(r io.Reader) ChunkSource {
	return &readerSource{r: bufio.NewReader(r), runesPer: ChunkRunes}
}

func (s *readerSource) ReadChunk() (string, error) {
	if s.pendingErr != nil {
		err := s.pendingErr
		s.pendingErr = nil
		return "", err
	}
	var b strings.Builder
	for i := 0; i < s.runesPer; i++ {
		r, size, err := s.r.ReadRune()
		if err == nil && r == utf8.RuneError && size == 1 {
			err = errors.New("invalid UTF-8 encoding")
		}
		if err != nil {
			if b.Len() > 0 {
				s.pendingErr = err
				return b.String(), nil
			}
			return "", err
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
