// Package emit turns a checked statement list back into mini source text.
package emit

import (
	"strconv"
	"strings"

	"github.com/you-not-fish/mini/internal/syntax"
)

// Config controls the emitted form.
type Config struct {
	// TypeArguments keeps explicit type arguments on calls, so that
	// f<number>(x) is emitted as written. When false they are dropped.
	TypeArguments bool
}

// Emit renders stmts with the zero Config.
func Emit(stmts []syntax.Stmt) string {
	return Config{}.Emit(stmts)
}

// Emit renders stmts as source text, one statement per line, separated by
// ";\n". An empty statement renders as the empty string. Emit never fails.
func (conf Config) Emit(stmts []syntax.Stmt) string {
	e := &emitter{conf: conf}
	for i, s := range stmts {
		if i > 0 {
			e.buf.WriteString(";\n")
		}
		e.stmt(s)
	}
	return e.buf.String()
}

type emitter struct {
	conf Config
	buf  strings.Builder
}

func (e *emitter) print(args ...string) {
	for _, s := range args {
		e.buf.WriteString(s)
	}
}

func (e *emitter) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.ExprStmt:
		e.expr(s.X)

	case *syntax.VarDecl:
		e.print("var ", s.Name.Value)
		if s.Type != nil {
			e.print(": ", s.Type.Value)
		}
		e.print(" = ")
		e.expr(s.Value)

	case *syntax.TypeDecl:
		e.print("type ", s.Name.Value, " = ", s.Type.Value)

	case *syntax.FuncDecl:
		e.print("function ", s.Name.Value)
		if len(s.TParams) > 0 {
			e.print("<")
			e.names(s.TParams)
			e.print(">")
		}
		e.print("(")
		for i, p := range s.Params {
			if i > 0 {
				e.print(", ")
			}
			e.print(p.Name.Value)
			if p.Type != nil {
				e.print(": ", p.Type.Value)
			}
		}
		e.print(")")
		if s.Result != nil {
			e.print(": ", s.Result.Value)
		}

	case *syntax.EmptyStmt:
		// nothing
	}
}

func (e *emitter) expr(x syntax.Expr) {
	switch x := x.(type) {
	case *syntax.Name:
		e.print(x.Value)

	case *syntax.BasicLit:
		e.print(FormatNumber(x.Value))

	case *syntax.AssignExpr:
		e.print(x.Target.Value, " = ")
		e.expr(x.Value)

	case *syntax.CallExpr:
		e.print(x.Fun.Value)
		if e.conf.TypeArguments && len(x.TypeArgs) > 0 {
			e.print("<")
			e.names(x.TypeArgs)
			e.print(">")
		}
		e.print("(")
		for i, a := range x.Args {
			if i > 0 {
				e.print(", ")
			}
			e.expr(a)
		}
		e.print(")")
	}
}

func (e *emitter) names(list []*syntax.Name) {
	for i, n := range list {
		if i > 0 {
			e.print(", ")
		}
		e.print(n.Value)
	}
}

// FormatNumber returns the shortest decimal text that reads back as v.
// It never uses an exponent, so the result always scans as one literal.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
