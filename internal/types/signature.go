package types

import (
	"strings"

	"github.com/you-not-fish/mini/internal/syntax"
)

// Signature describes a function declaration as seen from a call site.
// Signatures are derived on demand and never cached on the tree.
type Signature struct {
	Decl       *syntax.FuncDecl
	TParams    []*Type   // fresh type parameters, one per declared name
	Params     []*Symbol // parameter symbols from the function's table
	ParamTypes []*Type   // declared parameter types; nil where unannotated
	Result     *Type     // declared result type
}

// TParam returns the type parameter named name, or nil.
func (s *Signature) TParam(name string) *Type {
	for _, tp := range s.TParams {
		if tp.name == name {
			return tp
		}
	}
	return nil
}

// String renders s as "<T>(x: T, y): T".
func (s *Signature) String() string {
	var b strings.Builder
	if len(s.TParams) > 0 {
		b.WriteByte('<')
		for i, tp := range s.TParams {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(tp.String())
		}
		b.WriteByte('>')
	}
	b.WriteByte('(')
	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		if p != nil {
			b.WriteString(p.Name)
		}
		if i < len(s.ParamTypes) && s.ParamTypes[i] != nil {
			b.WriteString(": ")
			b.WriteString(s.ParamTypes[i].String())
		}
	}
	b.WriteString("): ")
	b.WriteString(s.Result.String())
	return b.String()
}
