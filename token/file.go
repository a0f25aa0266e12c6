package token

import "fmt"

// Position describes a source position fully resolved to file/line/column,
// the form suitable for diagnostics (as opposed to Pos, which is only a bare
// rune index).
type Position struct {
	Filename string
	Offset   int // rune index in the file
	Line     int // 1-based line number
	Column   int // 1-based column number (rune index)
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// File tracks the line-start offsets of a named source so that a bare Pos
// can later be resolved to a Position. It holds no reference to the
// underlying reader: unlike the teacher's own File, which doubles as an
// io.Reader wrapper, this one only accumulates line breaks as the scanner
// reports them, keeping file I/O entirely inside lunalex.ChunkSource
// implementations.
type File struct {
	name  string
	lines []Pos // 0-based offset of the start of each line; line 0 starts at 0
}

// NewFile returns a new File tracking positions for the source named name.
func NewFile(name string) *File {
	return &File{name: name, lines: []Pos{0}}
}

// Name returns the file name.
func (f *File) Name() string {
	return f.name
}

// AddLine records that a new line starts at pos. line is the 0-based line
// index; AddLine must be called with consecutive indices starting at 1 (the
// start of line 0 is implicit at offset 0).
func (f *File) AddLine(pos Pos, line int) {
	l := len(f.lines)
	if l > 0 && f.lines[l-1] >= pos {
		return
	}
	if l != line {
		panic("token: out-of-order AddLine")
	}
	f.lines = append(f.lines, pos)
}

// Position resolves pos to a 1-based line and column.
func (f *File) Position(pos Pos) Position {
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	return Position{f.name, int(pos), i, int(pos-f.lines[i-1]) + 1}
}
