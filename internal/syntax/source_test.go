package syntax

import (
	"strings"
	"testing"
)

func TestSourceOffsets(t *testing.T) {
	src, err := newSource(strings.NewReader("aλb"))
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		ch   rune
		offs int
	}{
		{'a', 0},
		{'λ', 1},
		{'b', 3},
		{-1, 4},
	}
	for i, w := range want {
		if src.ch != w.ch || src.offs != w.offs {
			t.Errorf("step %d: got ch=%q offs=%d, want ch=%q offs=%d", i, src.ch, src.offs, w.ch, w.offs)
		}
		src.nextch()
	}
}

func TestLineTable(t *testing.T) {
	lt := NewLineTable("m.mini", []byte("var x = 1\nvar y = 2\n\nz"))
	tests := []struct {
		pos  Pos
		want string
	}{
		{0, "m.mini:1:1"},
		{4, "m.mini:1:5"},
		{9, "m.mini:1:10"},
		{10, "m.mini:2:1"},
		{14, "m.mini:2:5"},
		{20, "m.mini:3:1"},
		{21, "m.mini:4:1"},
		{500, "m.mini:4:2"},
	}
	for _, tt := range tests {
		if got := lt.Position(tt.pos).String(); got != tt.want {
			t.Errorf("Position(%d) = %s, want %s", tt.pos, got, tt.want)
		}
	}
	if got := lt.Position(NoPos).Line; got != 0 {
		t.Errorf("Position(NoPos).Line = %d, want 0", got)
	}
}

func TestPosString(t *testing.T) {
	if got := Pos(12).String(); got != "12" {
		t.Errorf("Pos(12) = %q", got)
	}
	if got := NoPos.String(); got != "-" {
		t.Errorf("NoPos = %q", got)
	}
	if got := (Position{Line: 2, Col: 3}).String(); got != "2:3" {
		t.Errorf("Position without file = %q", got)
	}
}
