package syntax

import (
	"io"
	"sort"
	"unicode/utf8"
)

// source is a character reader with offset tracking.
// It reads the entire input into memory and provides rune-by-rune access.
type source struct {
	buf []byte // source buffer

	ch   rune // current character, -1 for EOF
	offs int  // byte offset of ch
	next int  // byte offset of the rune after ch
}

// newSource creates a source from an io.Reader.
// A read error truncates the input at the point of failure.
func newSource(src io.Reader) (*source, error) {
	s := &source{ch: -1}
	buf, err := io.ReadAll(src)
	s.buf = buf
	s.nextch()
	return s, err
}

// nextch reads the next character and advances the offsets.
// Sets s.ch to -1 at EOF.
func (s *source) nextch() {
	s.offs = s.next
	if s.next >= len(s.buf) {
		s.ch = -1
		return
	}
	r, width := utf8.DecodeRune(s.buf[s.next:])
	s.ch = r
	s.next += width
}

// pos returns the offset of the current character.
func (s *source) pos() Pos {
	return Pos(s.offs)
}

// segment returns the source text between two offsets.
func (s *source) segment(from, to int) string {
	return string(s.buf[from:to])
}

// LineTable maps offsets of one source text to line and column numbers.
type LineTable struct {
	filename string
	lines    []int // offset of the first byte of each line
	size     int
}

// NewLineTable builds the line table for src.
func NewLineTable(filename string, src []byte) *LineTable {
	t := &LineTable{filename: filename, lines: []int{0}, size: len(src)}
	for i, b := range src {
		if b == '\n' {
			t.lines = append(t.lines, i+1)
		}
	}
	return t
}

// Filename returns the file name the table was built for.
func (t *LineTable) Filename() string {
	return t.filename
}

// Position converts an offset into a line and column.
// Offsets past the end are clamped to the end of the text.
func (t *LineTable) Position(p Pos) Position {
	if !p.IsValid() {
		return Position{Filename: t.filename}
	}
	offs := int(p)
	if offs > t.size {
		offs = t.size
	}
	i := sort.Search(len(t.lines), func(i int) bool { return t.lines[i] > offs }) - 1
	return Position{
		Filename: t.filename,
		Line:     i + 1,
		Col:      offs - t.lines[i] + 1,
	}
}

// Character classification helpers

// isLetter reports whether r is a letter (a-z, A-Z, or _).
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r is a space, tab, or carriage return.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}
