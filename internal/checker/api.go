package checker

import (
	"github.com/you-not-fish/mini/internal/binder"
	"github.com/you-not-fish/mini/internal/syntax"
	"github.com/you-not-fish/mini/internal/types"
)

// Config specifies the configuration for type checking.
type Config struct {
	// Error is called for each type error.
	// If nil, errors are silently ignored.
	Error ErrorHandler
}

// Info holds the results of type checking.
type Info struct {
	// Types maps every checked expression to its type.
	Types map[syntax.Expr]*types.Type

	// Uses maps referencing identifiers to the symbols they resolved to.
	// Identifiers that failed to resolve have no entry.
	Uses map[*syntax.Name]*types.Symbol

	// Signatures maps each call whose callee resolved to the signature
	// derived for that call.
	Signatures map[*syntax.CallExpr]*types.Signature
}

// TypeOf returns the type recorded for e, or nil.
func (info *Info) TypeOf(e syntax.Expr) *types.Type {
	return info.Types[e]
}

// Check type-checks the statements of m using the tables in b.
// It returns one type per top-level statement, nil for statements that
// have no type, and the first error encountered, if any. Check never stops
// early: every error is reported to conf.Error.
//
// If b is nil, m is bound first and binding errors are reported to
// conf.Error as well.
func Check(m *syntax.Module, b *binder.Bindings, conf *Config, info *Info) ([]*types.Type, error) {
	if conf == nil {
		conf = &Config{}
	}
	if b == nil {
		b = binder.Bind(m, binder.ErrorHandler(conf.Error))
	}

	// Initialize info maps if not provided
	if info != nil {
		if info.Types == nil {
			info.Types = make(map[syntax.Expr]*types.Type)
		}
		if info.Uses == nil {
			info.Uses = make(map[*syntax.Name]*types.Symbol)
		}
		if info.Signatures == nil {
			info.Signatures = make(map[*syntax.CallExpr]*types.Signature)
		}
	}

	c := newChecker(b, conf, info)
	result := c.checkModule(m)

	if c.errors > 0 {
		return result, c.first
	}
	return result, nil
}

// TypeString returns the display name of t: the intrinsic or type
// parameter name, and "unknown" otherwise.
func TypeString(t *types.Type) string {
	return t.String()
}
