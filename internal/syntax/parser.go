package syntax

import (
	"fmt"
	"io"
	"strconv"
)

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrorHandler receives every diagnostic reported by the parser.
// It must not stop the caller; parsing continues after each report.
type ErrorHandler func(pos Pos, msg string)

// Parser performs syntax analysis over a Lexer.
type Parser struct {
	lx Lexer

	// Current token info (cached from the lexer)
	tok Token
	lit string
	pos Pos

	// Error handling
	errh   ErrorHandler
	errcnt int
	first  error // first error encountered
	limit  int   // abort after this many errors; 0 means no limit
	abort  bool  // set to true when error limit reached
}

// NewParser creates a Parser reading from lx, which must already be
// positioned at its first token.
func NewParser(lx Lexer, errh ErrorHandler) *Parser {
	p := &Parser{lx: lx, errh: errh}
	p.load()
	return p
}

// Parse parses the token stream of lx into a Module.
func Parse(lx Lexer, errh ErrorHandler) *Module {
	return NewParser(lx, errh).Parse()
}

// ParseSource scans and parses src. The error reports a failure reading
// src; the returned Module covers whatever input was read.
func ParseSource(src io.Reader, errh ErrorHandler) (*Module, error) {
	s, err := NewScanner(src)
	return Parse(s, errh), err
}

// SetErrorLimit makes the parser stop after n syntax errors.
// A limit of 0 disables the check.
func (p *Parser) SetErrorLimit(n int) {
	p.limit = n
}

// ----------------------------------------------------------------------------
// Token navigation

// load copies the lexer's current token into the parser.
func (p *Parser) load() {
	p.tok = p.lx.Token()
	p.lit = p.lx.Text()
	p.pos = p.lx.Pos()
}

// next advances to the next token.
func (p *Parser) next() {
	if p.abort {
		return
	}
	p.lx.Next()
	p.load()
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error and leaves the token in place.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError(fmt.Sprintf("expected %s but got %s", tok, p.describe()))
	}
}

// describe names the current token for diagnostics.
func (p *Parser) describe() string {
	switch p.tok {
	case IDENT, LITERAL, UNKNOWN:
		return fmt.Sprintf("%s %q", p.tok, p.lit)
	}
	return p.tok.String()
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports a syntax error at the current position.
func (p *Parser) syntaxError(msg string) {
	p.syntaxErrorAt(p.pos, msg)
}

// syntaxErrorAt reports a syntax error at a specific position.
func (p *Parser) syntaxErrorAt(pos Pos, msg string) {
	if p.abort {
		return
	}
	if p.errcnt == 0 {
		p.first = &SyntaxError{Pos: pos, Msg: msg}
	}
	p.errcnt++

	if p.errh != nil {
		p.errh(pos, msg)
	}

	p.errorLimitCheck(pos)
}

// errorLimitCheck aborts parsing if too many errors have occurred.
func (p *Parser) errorLimitCheck(pos Pos) {
	if p.limit > 0 && p.errcnt >= p.limit {
		p.abort = true
		if p.errh != nil {
			p.errh(pos, "too many errors; aborting parse")
		}
		p.tok = EOF
	}
}

// Errors returns the number of errors encountered during parsing.
func (p *Parser) Errors() int {
	return p.errcnt
}

// FirstError returns the first error encountered, or nil if none.
func (p *Parser) FirstError() error {
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses the whole token stream and returns the Module.
// It always returns a well-formed Module, whatever the input.
func (p *Parser) Parse() *Module {
	m := &Module{}
	m.pos = p.pos

	for !p.abort {
		// Skip empty statements between separators.
		for p.tok == SEMICOLON {
			p.next()
		}
		if p.tok == EOF {
			break
		}

		m.Stmts = append(m.Stmts, p.stmt())

		if p.tok == EOF {
			break
		}
		if p.tok.IsSeparator() {
			p.next()
			continue
		}
		// Keep going: the next statement starts at the offending token.
		p.syntaxError(fmt.Sprintf("expected ; but got %s", p.describe()))
	}

	p.want(EOF)
	return m
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier. A literal in its place is reported and
// replaced with a placeholder.
func (p *Parser) name() *Name {
	x := p.operand()
	if n, ok := x.(*Name); ok {
		return n
	}
	p.syntaxErrorAt(x.Pos(), "expected identifier but got a literal")
	return NewName(x.Pos(), MissingName)
}

// nameList parses Name {, Name}.
func (p *Parser) nameList() []*Name {
	list := []*Name{p.name()}
	for p.got(COMMA) {
		list = append(list, p.name())
	}
	return list
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses a statement.
func (p *Parser) stmt() Stmt {
	switch p.tok {
	case VAR:
		return p.varDecl()

	case TYPE:
		return p.typeDecl()

	case FUNCTION:
		return p.funcDecl()

	case UNKNOWN:
		s := &EmptyStmt{}
		s.pos = p.pos
		p.next()
		return s

	default:
		s := &ExprStmt{}
		s.pos = p.pos
		s.X = p.expr()
		return s
	}
}

// varDecl parses: var Name[: Type] = Value
func (p *Parser) varDecl() *VarDecl {
	d := &VarDecl{}
	d.pos = p.pos

	p.want(VAR)
	d.Name = p.name()
	if p.got(COLON) {
		d.Type = p.name()
	}
	p.want(ASSIGN)
	d.Value = p.expr()

	return d
}

// typeDecl parses: type Name = Type
func (p *Parser) typeDecl() *TypeDecl {
	d := &TypeDecl{}
	d.pos = p.pos

	p.want(TYPE)
	d.Name = p.name()
	p.want(ASSIGN)
	d.Type = p.name()

	return d
}

// funcDecl parses: function Name<T, U>(p1: T1, p2): Result
func (p *Parser) funcDecl() *FuncDecl {
	d := &FuncDecl{}
	d.pos = p.pos

	p.want(FUNCTION)
	d.Name = p.name()

	if p.got(LSS) {
		d.TParams = p.nameList()
		p.want(GTR)
	}

	p.want(LPAREN)
	if !p.got(RPAREN) {
		d.Params = p.paramList()
		p.want(RPAREN)
	}

	p.want(COLON)
	d.Result = p.name()

	return d
}

// paramList parses a comma-separated list of parameter declarations.
func (p *Parser) paramList() []*Field {
	var params []*Field
	for {
		f := &Field{}
		f.pos = p.pos
		f.Name = p.name()
		if p.got(COLON) {
			f.Type = p.name()
		}
		params = append(params, f)

		if !p.got(COMMA) {
			break
		}
	}
	return params
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression: an operand, an assignment, or a call.
func (p *Parser) expr() Expr {
	pos := p.pos
	x := p.operand()

	n, ok := x.(*Name)
	if !ok {
		return x
	}

	switch {
	case p.got(ASSIGN):
		a := &AssignExpr{Target: n}
		a.pos = pos
		a.Value = p.expr()
		return a

	case p.tok == LSS || p.tok == LPAREN:
		return p.callExpr(n)
	}
	return n
}

// operand parses an identifier or a literal. Anything else is reported,
// skipped, and replaced with a placeholder name.
func (p *Parser) operand() Expr {
	switch p.tok {
	case IDENT:
		n := NewName(p.pos, p.lit)
		p.next()
		return n

	case LITERAL:
		lit := &BasicLit{Raw: p.lit}
		lit.pos = p.pos
		v, err := strconv.ParseFloat(p.lit, 64)
		if err != nil {
			p.syntaxError(fmt.Sprintf("malformed number %q", p.lit))
			v = 0
		}
		lit.Value = v
		p.next()
		return lit

	default:
		pos := p.pos
		p.syntaxError(fmt.Sprintf("expected identifier or literal but got %s", p.describe()))
		p.next()
		return NewName(pos, MissingName)
	}
}

// callExpr parses Fun<TypeArgs>(Args...)
func (p *Parser) callExpr(fun *Name) Expr {
	call := &CallExpr{Fun: fun}
	call.pos = fun.Pos()

	if p.got(LSS) {
		call.TypeArgs = p.nameList()
		p.want(GTR)
	}

	p.want(LPAREN)
	if !p.got(RPAREN) {
		call.Args = p.argList()
		p.want(RPAREN)
	}

	return call
}

// argList parses a comma-separated list of names or literals.
func (p *Parser) argList() []Expr {
	list := []Expr{p.operand()}
	for p.got(COMMA) {
		list = append(list, p.operand())
	}
	return list
}
