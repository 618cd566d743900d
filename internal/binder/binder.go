// Package binder builds the symbol tables of a parsed module.
//
// Bind walks the top-level statements once. Each var, type and function
// declaration is entered into the module table under its meaning, and each
// function gets a table of its own for its parameters and type parameters.
// The tables are returned as side tables; the syntax tree is left untouched.
package binder

import (
	"fmt"

	"github.com/you-not-fish/mini/internal/syntax"
	"github.com/you-not-fish/mini/internal/types"
)

// BindError represents a binding error.
type BindError struct {
	Pos syntax.Pos
	Msg string
}

func (e *BindError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrorHandler is called for each binding error.
type ErrorHandler func(pos syntax.Pos, msg string)

// Bindings holds the symbol tables of one module.
type Bindings struct {
	Module *types.Table                       // top-level declarations
	Funcs  map[*syntax.FuncDecl]*types.Table // parameters and type parameters per function
}

// Locals returns the table of fd, or nil if fd was not bound.
func (b *Bindings) Locals(fd *syntax.FuncDecl) *types.Table {
	return b.Funcs[fd]
}

// binder holds the state of one Bind call.
type binder struct {
	b      *Bindings
	errh   ErrorHandler
	errors int
	first  error // first error encountered
}

// Bind builds the tables of m. Errors are reported to errh and never stop
// binding; the returned Bindings is always complete.
func Bind(m *syntax.Module, errh ErrorHandler) *Bindings {
	b, _ := BindModule(m, errh)
	return b
}

// BindModule is like Bind but also returns the first error reported, as a
// *BindError, or nil.
func BindModule(m *syntax.Module, errh ErrorHandler) (*Bindings, error) {
	bd := &binder{
		b: &Bindings{
			Module: types.NewTable("module"),
			Funcs:  make(map[*syntax.FuncDecl]*types.Table),
		},
		errh: errh,
	}
	for _, s := range m.Stmts {
		bd.bindStmt(s)
	}
	return bd.b, bd.first
}

// Resolve returns the symbol named name in t if it has a declaration with
// meaning m, and nil otherwise.
func Resolve(t *types.Table, name string, m types.Meaning) *types.Symbol {
	if t == nil {
		return nil
	}
	if sym := t.Lookup(name); sym != nil && sym.Has(m) {
		return sym
	}
	return nil
}

func (bd *binder) bindStmt(s syntax.Stmt) {
	d, ok := s.(syntax.Decl)
	if !ok {
		return
	}
	bd.declare(bd.b.Module, d.DeclName().Value, d)

	if fd, ok := d.(*syntax.FuncDecl); ok {
		bd.bindFunc(fd)
	}
}

// bindFunc builds the table of fd. Parameters and type parameters are
// declared in the same table.
func (bd *binder) bindFunc(fd *syntax.FuncDecl) {
	t := types.NewTable("function " + fd.Name.Value)
	for _, p := range fd.Params {
		bd.declare(t, p.Name.Value, p)
	}
	for _, tp := range fd.TParams {
		if sym := bd.declare(t, tp.Value, tp); sym != nil && sym.ValueDecl == nil {
			// A type parameter refers to itself, like a parameter.
			sym.ValueDecl = tp
		}
	}
	bd.b.Funcs[fd] = t
}

// declare enters d under name into t. A second declaration with the same
// meaning is reported and dropped. It returns the symbol d was added to,
// or nil if d was dropped. Placeholder names are never declared.
func (bd *binder) declare(t *types.Table, name string, d syntax.Node) *types.Symbol {
	if name == syntax.MissingName {
		return nil
	}
	sym := t.Lookup(name)
	if sym == nil {
		sym = types.NewSymbol(name, d)
		t.Insert(sym)
		return sym
	}

	m, _ := types.MeaningOf(d)
	if other := sym.Decl(m); other != nil {
		bd.errorf(d.Pos(), "cannot redeclare %s; first declared at %s", name, other.Pos())
		return nil
	}
	sym.Add(d)
	return sym
}

func (bd *binder) errorf(pos syntax.Pos, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if bd.errors == 0 {
		bd.first = &BindError{Pos: pos, Msg: msg}
	}
	bd.errors++
	if bd.errh != nil {
		bd.errh(pos, msg)
	}
}
