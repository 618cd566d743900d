package checker

import (
	"github.com/you-not-fish/mini/internal/binder"
	"github.com/you-not-fish/mini/internal/syntax"
	"github.com/you-not-fish/mini/internal/types"
)

// signature derives the signature of d. Every call derives its own, so the
// type parameters are fresh per call. With report set, parameter and result
// type names that do not resolve are reported.
func (c *Checker) signature(d *syntax.FuncDecl, report bool) *types.Signature {
	locals := c.bindings.Locals(d)
	sig := &types.Signature{Decl: d}

	for _, tp := range d.TParams {
		var sym *types.Symbol
		if locals != nil {
			sym = locals.Lookup(tp.Value)
		}
		sig.TParams = append(sig.TParams, types.NewTypeParam(tp.Value, sym))
	}

	for _, p := range d.Params {
		var sym *types.Symbol
		if locals != nil {
			sym = locals.Lookup(p.Name.Value)
		}
		sig.Params = append(sig.Params, sym)

		var pt *types.Type
		if p.Type != nil {
			pt = c.sigType(p.Type, sig, report)
		}
		sig.ParamTypes = append(sig.ParamTypes, pt)
	}

	sig.Result = types.Error
	if d.Result != nil {
		sig.Result = c.sigType(d.Result, sig, report)
	}
	return sig
}

// sigType resolves a type name inside a signature: an intrinsic, one of
// the signature's type parameters, or a module type alias, in that order.
func (c *Checker) sigType(name *syntax.Name, sig *types.Signature, report bool) *types.Type {
	if t := types.LookupIntrinsic(name.Value); t != nil {
		return t
	}
	if tp := sig.TParam(name.Value); tp != nil {
		if report {
			c.recordUse(name, tp.Symbol())
		}
		return tp
	}
	if t := c.lookupType(name); t != nil {
		return t
	}
	if report && !name.IsMissing() {
		c.errorf(name.Pos(), "could not resolve type %s", name.Value)
	}
	return types.Error
}

// call checks a call and returns its result type.
//
// Explicit type arguments bind the callee's type parameters in order.
// Otherwise a type parameter is bound by the first argument passed to a
// parameter declared with it; later arguments must match that binding.
func (c *Checker) call(e *syntax.CallExpr) *types.Type {
	sym := binder.Resolve(c.bindings.Module, e.Fun.Value, types.CallableMeaning)
	if sym == nil {
		if !e.Fun.IsMissing() {
			c.errorf(e.Fun.Pos(), "could not resolve function %s", e.Fun.Value)
		}
		for _, ta := range e.TypeArgs {
			c.typeName(ta)
		}
		for _, arg := range e.Args {
			c.expr(arg)
		}
		return types.Error
	}
	c.recordUse(e.Fun, sym)

	d := sym.Decl(types.CallableMeaning).(*syntax.FuncDecl)
	sig := c.signature(d, false)
	c.recordSignature(e, sig)

	inferred := make(map[*types.Type]*types.Type)

	// Type arguments
	typeArgsOK := true
	if len(e.TypeArgs) > 0 {
		targs := make([]*types.Type, len(e.TypeArgs))
		for i, ta := range e.TypeArgs {
			targs[i] = c.typeName(ta)
		}
		if len(targs) != len(sig.TParams) {
			c.errorf(e.Pos(), "expected %d type arguments but got %d", len(sig.TParams), len(targs))
			typeArgsOK = false
		} else {
			for i, tp := range sig.TParams {
				inferred[tp] = targs[i]
			}
		}
	}

	// Arguments
	if len(e.Args) != len(sig.Params) {
		c.errorf(e.Pos(), "expected %d arguments but got %d", len(sig.Params), len(e.Args))
	}
	for i, arg := range e.Args {
		at := c.expr(arg)
		if i >= len(sig.ParamTypes) || sig.ParamTypes[i] == nil {
			continue
		}
		pt := sig.ParamTypes[i]
		if pt.IsTypeParam() {
			bound, ok := inferred[pt]
			if !ok {
				inferred[pt] = at
				continue
			}
			pt = bound
		}
		if at != pt && !isError(at) && !isError(pt) {
			c.errorf(arg.Pos(), "cannot pass argument of type '%s' to parameter of type '%s'",
				TypeString(at), TypeString(pt))
		}
	}

	if !typeArgsOK {
		return types.Error
	}

	// Result
	result := sig.Result
	if result.IsTypeParam() {
		bound, ok := inferred[result]
		if !ok {
			c.errorf(e.Pos(), "cannot infer type parameter %s", result.Name())
			return types.Error
		}
		result = bound
	}
	return result
}
