package checker

import (
	"github.com/you-not-fish/mini/internal/binder"
	"github.com/you-not-fish/mini/internal/syntax"
	"github.com/you-not-fish/mini/internal/types"
)

// typeName resolves a type name at module level: an intrinsic or a type
// alias. Unresolved names are reported and yield the error sentinel.
func (c *Checker) typeName(name *syntax.Name) *types.Type {
	if t := c.lookupType(name); t != nil {
		return t
	}
	if !name.IsMissing() {
		c.errorf(name.Pos(), "could not resolve type %s", name.Value)
	}
	return types.Error
}

// lookupType resolves name as an intrinsic or a module type alias.
// It returns nil if name denotes neither.
func (c *Checker) lookupType(name *syntax.Name) *types.Type {
	if t := types.LookupIntrinsic(name.Value); t != nil {
		return t
	}
	sym := binder.Resolve(c.bindings.Module, name.Value, types.TypeMeaning)
	if sym == nil {
		return nil
	}
	c.recordUse(name, sym)
	if d, ok := sym.Decl(types.TypeMeaning).(*syntax.TypeDecl); ok {
		return c.typeDecl(d, name.Pos())
	}
	return types.Error
}
