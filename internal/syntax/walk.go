package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Module:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *VarDecl:
		Walk(n.Name, v)
		if n.Type != nil {
			Walk(n.Type, v)
		}
		Walk(n.Value, v)

	case *TypeDecl:
		Walk(n.Name, v)
		Walk(n.Type, v)

	case *FuncDecl:
		Walk(n.Name, v)
		for _, tp := range n.TParams {
			Walk(tp, v)
		}
		for _, f := range n.Params {
			Walk(f, v)
		}
		if n.Result != nil {
			Walk(n.Result, v)
		}

	case *Field:
		Walk(n.Name, v)
		if n.Type != nil {
			Walk(n.Type, v)
		}

	case *ExprStmt:
		Walk(n.X, v)

	case *AssignExpr:
		Walk(n.Target, v)
		Walk(n.Value, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, ta := range n.TypeArgs {
			Walk(ta, v)
		}
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *Name, *BasicLit, *EmptyStmt:
		// leaves
	}
}
