package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Module:
		p.printf("Module %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *VarDecl:
		p.printf("VarDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if n.Type != nil {
			p.printf("Type: %s\n", n.Type.Value)
		}
		p.printf("Value:\n")
		p.indent++
		p.print(n.Value)
		p.indent--
		p.indent--

	case *TypeDecl:
		p.printf("TypeDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		p.printf("Type: %s\n", n.Type.Value)
		p.indent--

	case *FuncDecl:
		p.printf("FuncDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if len(n.TParams) > 0 {
			p.printf("TypeParams: %s\n", joinNames(n.TParams))
		}
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, f := range n.Params {
				p.print(f)
			}
			p.indent--
		}
		if n.Result != nil {
			p.printf("Result: %s\n", n.Result.Value)
		}
		p.indent--

	case *Field:
		if n.Type != nil {
			p.printf("%s %s\n", n.Name.Value, n.Type.Value)
		} else {
			p.printf("%s\n", n.Name.Value)
		}

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *EmptyStmt:
		p.printf("EmptyStmt %s\n", n.pos)

	case *Name:
		p.printf("Name %q %s\n", n.Value, n.pos)

	case *BasicLit:
		p.printf("BasicLit %s %s\n", n.Raw, n.pos)

	case *AssignExpr:
		p.printf("AssignExpr %s\n", n.pos)
		p.indent++
		p.printf("Target: %s\n", n.Target.Value)
		p.printf("Value:\n")
		p.indent++
		p.print(n.Value)
		p.indent--
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s\n", n.pos)
		p.indent++
		p.printf("Fun: %s\n", n.Fun.Value)
		if len(n.TypeArgs) > 0 {
			p.printf("TypeArgs: %s\n", joinNames(n.TypeArgs))
		}
		for _, a := range n.Args {
			p.print(a)
		}
		p.indent--

	default:
		p.printf("%T\n", n)
	}
}

// joinNames renders a name list as "A, B".
func joinNames(names []*Name) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.Value
	}
	return strings.Join(parts, ", ")
}
