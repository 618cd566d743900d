package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Module:
		return map[string]interface{}{
			"type":  "Module",
			"pos":   int(n.pos),
			"stmts": mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) }),
		}

	case *VarDecl:
		m := map[string]interface{}{
			"type":  "VarDecl",
			"pos":   int(n.pos),
			"name":  n.Name.Value,
			"value": toJSON(n.Value),
		}
		if n.Type != nil {
			m["vartype"] = n.Type.Value
		}
		return m

	case *TypeDecl:
		return map[string]interface{}{
			"type":    "TypeDecl",
			"pos":     int(n.pos),
			"name":    n.Name.Value,
			"typedef": n.Type.Value,
		}

	case *FuncDecl:
		m := map[string]interface{}{
			"type":   "FuncDecl",
			"pos":    int(n.pos),
			"name":   n.Name.Value,
			"params": mapSlice(n.Params, func(f *Field) interface{} { return toJSON(f) }),
		}
		if n.Result != nil {
			m["result"] = n.Result.Value
		}
		if len(n.TParams) > 0 {
			m["tparams"] = mapSlice(n.TParams, func(t *Name) interface{} { return t.Value })
		}
		return m

	case *Field:
		m := map[string]interface{}{
			"type": "Field",
			"pos":  int(n.pos),
			"name": n.Name.Value,
		}
		if n.Type != nil {
			m["fieldtype"] = n.Type.Value
		}
		return m

	case *ExprStmt:
		return map[string]interface{}{
			"type": "ExprStmt",
			"pos":  int(n.pos),
			"x":    toJSON(n.X),
		}

	case *EmptyStmt:
		return map[string]interface{}{
			"type": "EmptyStmt",
			"pos":  int(n.pos),
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   int(n.pos),
			"value": n.Value,
		}

	case *BasicLit:
		return map[string]interface{}{
			"type":  "BasicLit",
			"pos":   int(n.pos),
			"value": n.Value,
			"raw":   n.Raw,
		}

	case *AssignExpr:
		return map[string]interface{}{
			"type":   "AssignExpr",
			"pos":    int(n.pos),
			"target": n.Target.Value,
			"value":  toJSON(n.Value),
		}

	case *CallExpr:
		m := map[string]interface{}{
			"type": "CallExpr",
			"pos":  int(n.pos),
			"fun":  n.Fun.Value,
			"args": mapSlice(n.Args, func(a Expr) interface{} { return toJSON(a) }),
		}
		if len(n.TypeArgs) > 0 {
			m["typeargs"] = mapSlice(n.TypeArgs, func(t *Name) interface{} { return t.Value })
		}
		return m

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
