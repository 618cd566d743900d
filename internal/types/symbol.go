package types

import (
	"strings"

	"github.com/you-not-fish/mini/internal/syntax"
)

// Meaning is the namespace a declaration lives in. A single name may carry
// one declaration per meaning.
type Meaning int

const (
	ValueMeaning    Meaning = iota // var declarations and parameters
	TypeMeaning                    // type aliases and type parameters
	CallableMeaning                // function declarations
)

var meaningNames = [...]string{
	ValueMeaning:    "value",
	TypeMeaning:     "type",
	CallableMeaning: "callable",
}

func (m Meaning) String() string {
	if m >= 0 && int(m) < len(meaningNames) {
		return meaningNames[m]
	}
	return "meaning(?)"
}

// MeaningOf returns the meaning of a declaration node and whether n is a
// declaration at all. A bare *syntax.Name declares a type parameter.
func MeaningOf(n syntax.Node) (Meaning, bool) {
	switch n.(type) {
	case *syntax.VarDecl, *syntax.Field:
		return ValueMeaning, true
	case *syntax.TypeDecl, *syntax.Name:
		return TypeMeaning, true
	case *syntax.FuncDecl:
		return CallableMeaning, true
	}
	return 0, false
}

// Symbol groups every declaration of one name within a Table.
type Symbol struct {
	Name      string
	Decls     []syntax.Node // declarations in source order, at most one per meaning
	ValueDecl syntax.Node   // the value declaration, or nil
}

// NewSymbol returns a symbol holding the single declaration d.
func NewSymbol(name string, d syntax.Node) *Symbol {
	s := &Symbol{Name: name}
	s.Add(d)
	return s
}

// Add appends declaration d. It records d as the value declaration when d
// has value meaning. Add does not check for duplicates.
func (s *Symbol) Add(d syntax.Node) {
	s.Decls = append(s.Decls, d)
	if m, ok := MeaningOf(d); ok && m == ValueMeaning {
		s.ValueDecl = d
	}
}

// Decl returns the declaration of s with meaning m, or nil.
func (s *Symbol) Decl(m Meaning) syntax.Node {
	for _, d := range s.Decls {
		if dm, ok := MeaningOf(d); ok && dm == m {
			return d
		}
	}
	return nil
}

// Has reports whether s has a declaration with meaning m.
func (s *Symbol) Has(m Meaning) bool {
	return s.Decl(m) != nil
}

// Pos returns the position of the first declaration of s.
func (s *Symbol) Pos() syntax.Pos {
	if len(s.Decls) == 0 {
		return syntax.NoPos
	}
	return s.Decls[0].Pos()
}

// String returns the name and meanings of s, e.g. "x [value type]".
func (s *Symbol) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteString(" [")
	for i, d := range s.Decls {
		if i > 0 {
			b.WriteByte(' ')
		}
		m, _ := MeaningOf(d)
		b.WriteString(m.String())
	}
	b.WriteByte(']')
	return b.String()
}
