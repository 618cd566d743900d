package syntax

import "strconv"

// Pos is a byte offset into a source text. Offsets are 0-based.
type Pos int

// NoPos is the invalid position.
const NoPos Pos = -1

// IsValid reports whether the position is valid.
func (p Pos) IsValid() bool {
	return p >= 0
}

// String returns the decimal offset, or "-" for NoPos.
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return strconv.Itoa(int(p))
}

// Position is a human-readable source location.
type Position struct {
	Filename string
	Line     int // 1-based line number
	Col      int // 1-based column number (byte offset in line)
}

// String returns "filename:line:col" or "line:col" if filename is empty.
func (p Position) String() string {
	s := strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
	if p.Filename != "" {
		return p.Filename + ":" + s
	}
	return s
}
