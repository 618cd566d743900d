package checker

import (
	"github.com/you-not-fish/mini/internal/binder"
	"github.com/you-not-fish/mini/internal/syntax"
	"github.com/you-not-fish/mini/internal/types"
)

// expr returns the type of expression e and records it.
func (c *Checker) expr(e syntax.Expr) *types.Type {
	var t *types.Type
	switch e := e.(type) {
	case *syntax.Name:
		t = c.ident(e)
	case *syntax.BasicLit:
		t = types.Number
	case *syntax.AssignExpr:
		t = c.assign(e)
	case *syntax.CallExpr:
		t = c.call(e)
	default:
		t = types.Error
	}
	c.recordType(e, t)
	return t
}

// ident resolves name in the value space of the module.
func (c *Checker) ident(name *syntax.Name) *types.Type {
	if name.IsMissing() {
		// already reported by the parser
		return types.Error
	}
	sym := binder.Resolve(c.bindings.Module, name.Value, types.ValueMeaning)
	if sym == nil {
		c.errorf(name.Pos(), "could not resolve %s", name.Value)
		return types.Error
	}
	c.recordUse(name, sym)

	if d, ok := sym.ValueDecl.(*syntax.VarDecl); ok {
		return c.varDecl(d, name.Pos())
	}
	return types.Error
}

// assign checks Target = Value and returns the type of the target.
func (c *Checker) assign(e *syntax.AssignExpr) *types.Type {
	v := c.expr(e.Value)
	t := c.expr(e.Target)
	if t != v && !isError(t) && !isError(v) {
		c.errorf(e.Value.Pos(), "cannot assign value of type '%s' to variable of type '%s'",
			TypeString(v), TypeString(t))
	}
	return t
}
