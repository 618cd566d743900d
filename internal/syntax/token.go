// Package syntax implements lexical and syntactic analysis for the mini language.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Keywords
	FUNCTION Token = iota // function
	VAR                   // var
	TYPE                  // type
	RETURN                // reserved; no statement starts with it

	ASSIGN  // =
	LITERAL // numeric literal
	IDENT   // identifier: foo, bar, T

	SEMICOLON // ;
	COLON     // :
	LSS       // <
	GTR       // >
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )

	// Special tokens
	UNKNOWN // any rune the scanner does not recognize
	BOF     // before first token
	EOF     // end of file

	tokenCount
)

// tokenNames maps tokens to the spelling used in diagnostics.
var tokenNames = [...]string{
	FUNCTION: "function",
	VAR:      "var",
	TYPE:     "type",
	RETURN:   "return",

	ASSIGN:  "=",
	LITERAL: "literal",
	IDENT:   "identifier",

	SEMICOLON: ";",
	COLON:     ":",
	LSS:       "<",
	GTR:       ">",
	COMMA:     ",",
	LPAREN:    "(",
	RPAREN:    ")",

	UNKNOWN: "unknown",
	BOF:     "BOF",
	EOF:     "EOF",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t <= RETURN
}

// IsSeparator reports whether t separates two statements.
// Unknown tokens double as separators so that a stray rune isolates
// the statements around it.
func (t Token) IsSeparator() bool {
	return t == SEMICOLON || t == UNKNOWN
}

var keywords = map[string]Token{
	"function": FUNCTION,
	"var":      VAR,
	"type":     TYPE,
	"return":   RETURN,
}

// LookupKeyword returns the keyword token for ident, or IDENT.
// Note: string and number are not keywords; they are ordinary
// identifiers resolved by the checker.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
