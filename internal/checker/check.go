// Package checker infers and checks the types of a bound module.
package checker

import (
	"github.com/you-not-fish/mini/internal/binder"
	"github.com/you-not-fish/mini/internal/syntax"
	"github.com/you-not-fish/mini/internal/types"
)

// Checker is the type checker. A Checker checks one module once.
type Checker struct {
	conf     *Config
	info     *Info
	bindings *binder.Bindings

	// Declaration types, computed at most once per declaration.
	// A declaration is in progress while its own type is being computed;
	// reaching it again is a circular reference.
	varTypes   map[*syntax.VarDecl]*types.Type
	aliasTypes map[*syntax.TypeDecl]*types.Type
	inProgress map[syntax.Decl]bool

	// Error tracking
	errors int        // error count
	first  *TypeError // first error
}

func newChecker(b *binder.Bindings, conf *Config, info *Info) *Checker {
	return &Checker{
		conf:       conf,
		info:       info,
		bindings:   b,
		varTypes:   make(map[*syntax.VarDecl]*types.Type),
		aliasTypes: make(map[*syntax.TypeDecl]*types.Type),
		inProgress: make(map[syntax.Decl]bool),
	}
}

// checkModule checks every top-level statement in source order.
func (c *Checker) checkModule(m *syntax.Module) []*types.Type {
	result := make([]*types.Type, len(m.Stmts))
	for i, s := range m.Stmts {
		result[i] = c.stmt(s)
	}
	return result
}

// stmt returns the type of a top-level statement, or nil if it has none.
func (c *Checker) stmt(s syntax.Stmt) *types.Type {
	switch s := s.(type) {
	case *syntax.ExprStmt:
		return c.expr(s.X)
	case *syntax.VarDecl:
		return c.varDecl(s, syntax.NoPos)
	case *syntax.TypeDecl:
		return c.typeDecl(s, syntax.NoPos)
	case *syntax.FuncDecl:
		c.funcDecl(s)
		return nil
	case *syntax.EmptyStmt:
		return nil
	}
	return nil
}

// varDecl returns the type of the variable declared by d. use is the
// position of the identifier that led here, or NoPos when d is checked as
// a statement.
func (c *Checker) varDecl(d *syntax.VarDecl, use syntax.Pos) *types.Type {
	if t, ok := c.varTypes[d]; ok {
		return t
	}
	if c.inProgress[d] {
		c.errorf(use, "circular reference to %s", d.Name.Value)
		return types.Error
	}
	c.inProgress[d] = true
	defer delete(c.inProgress, d)

	i := c.expr(d.Value)
	t := i
	if d.Type != nil {
		t = c.typeName(d.Type)
		if t != i && !isError(t) {
			c.errorf(d.Value.Pos(), "cannot assign initializer of type '%s' to variable with declared type '%s'",
				TypeString(i), TypeString(t))
		}
	}

	c.varTypes[d] = t
	return t
}

// typeDecl returns the type aliased by d.
func (c *Checker) typeDecl(d *syntax.TypeDecl, use syntax.Pos) *types.Type {
	if t, ok := c.aliasTypes[d]; ok {
		return t
	}
	if c.inProgress[d] {
		c.errorf(use, "circular reference to %s", d.Name.Value)
		return types.Error
	}
	c.inProgress[d] = true
	defer delete(c.inProgress, d)

	t := c.typeName(d.Type)
	c.aliasTypes[d] = t
	return t
}

// funcDecl derives the signature of d, reporting parameter and result
// types that do not resolve.
func (c *Checker) funcDecl(d *syntax.FuncDecl) {
	c.signature(d, true)
}

// isError reports whether t is the error sentinel.
func isError(t *types.Type) bool {
	return t == types.Error
}

// recordType records the type of an expression.
func (c *Checker) recordType(e syntax.Expr, t *types.Type) {
	if c.info != nil {
		c.info.Types[e] = t
	}
}

// recordUse records the symbol a name resolved to.
func (c *Checker) recordUse(name *syntax.Name, sym *types.Symbol) {
	if c.info != nil && sym != nil {
		c.info.Uses[name] = sym
	}
}

// recordSignature records the signature derived for a call.
func (c *Checker) recordSignature(e *syntax.CallExpr, sig *types.Signature) {
	if c.info != nil {
		c.info.Signatures[e] = sig
	}
}
