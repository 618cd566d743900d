package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 3 main classes of nodes: Expressions, Statements, and Declarations.
// All nodes implement the Node interface. Declarations are statements that
// introduce a name into the module table.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // offset of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for top-level declarations: var, type and function.
type Decl interface {
	Stmt
	DeclName() *Name
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Module

// Module is the root of a parsed source text.
// Name tables live in binder.Bindings, not on the tree.
type Module struct {
	node
	Stmts []Stmt // top-level statements in source order
}

// ----------------------------------------------------------------------------
// Declarations

// VarDecl represents a variable declaration: var Name[: Type] = Value
type VarDecl struct {
	stmt
	Name  *Name // variable name
	Type  *Name // declared type (nil if inferred)
	Value Expr  // initializer
}

// TypeDecl represents a type alias: type Name = Type
type TypeDecl struct {
	stmt
	Name *Name // alias name
	Type *Name // aliased type name
}

// FuncDecl represents a function signature:
// function Name<TParams>(Params): Result
type FuncDecl struct {
	stmt
	Name    *Name    // function name
	TParams []*Name  // type parameters (nil if not generic)
	Params  []*Field // parameter list
	Result  *Name    // return type name
}

// Field represents a parameter declaration: Name[: Type]
type Field struct {
	node
	Name *Name // parameter name
	Type *Name // parameter type (nil if unannotated)
}

func (d *VarDecl) DeclName() *Name  { return d.Name }
func (d *TypeDecl) DeclName() *Name { return d.Name }
func (d *FuncDecl) DeclName() *Name { return d.Name }

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string // identifier string
}

// BasicLit represents a numeric literal.
type BasicLit struct {
	expr
	Value float64 // numeric value
	Raw   string  // literal text as written
}

// AssignExpr represents an assignment: Target = Value
type AssignExpr struct {
	expr
	Target *Name
	Value  Expr
}

// CallExpr represents a call: Fun<TypeArgs>(Args...)
type CallExpr struct {
	expr
	Fun      *Name   // callee
	TypeArgs []*Name // explicit type arguments (nil if none were written)
	Args     []Expr  // arguments: names or literals
}

// ----------------------------------------------------------------------------
// Statements

// EmptyStmt represents a statement made of a single unknown token.
type EmptyStmt struct {
	stmt
}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	stmt
	X Expr
}

// MissingName is the text of placeholder names synthesized during error recovery.
const MissingName = "(missing)"

// IsMissing reports whether n is a placeholder produced by error recovery.
func (n *Name) IsMissing() bool {
	return n.Value == MissingName
}

// NewName returns a Name at pos. It is used by the parser and by tests
// that build trees by hand.
func NewName(pos Pos, value string) *Name {
	n := &Name{Value: value}
	n.pos = pos
	return n
}
