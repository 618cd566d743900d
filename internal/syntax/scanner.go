package syntax

import (
	"io"
	"strings"
)

// Lexer is the token stream consumed by the parser.
// A Lexer must be positioned at its first token before parsing starts.
type Lexer interface {
	Next()        // advance to the next token
	Token() Token // current token
	Pos() Pos     // offset of the current token
	Text() string // source text of the current token
}

// Scanner performs lexical analysis on mini source code.
// It implements Lexer.
type Scanner struct {
	source

	tok    Token  // current token
	lit    string // token text
	tokPos Pos    // token start offset

	litBuf strings.Builder
}

var _ Lexer = (*Scanner)(nil)

// NewScanner creates a Scanner over src and positions it at the first token.
// The returned error reports a failure reading src; the scanner is still
// usable and sees the input read so far.
func NewScanner(src io.Reader) (*Scanner, error) {
	r, err := newSource(src)
	s := &Scanner{source: *r, tok: BOF, tokPos: NoPos}
	s.Next()
	return s, err
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	for isWhitespace(s.ch) || s.ch == '\n' {
		s.nextch()
	}

	s.tokPos = s.pos()
	start := s.offs

	switch {
	case s.ch < 0:
		s.tok = EOF
		s.lit = ""
		return

	case isLetter(s.ch):
		s.scanIdent()
		return

	case isDigit(s.ch):
		s.scanNumber()
		return
	}

	ch := s.ch
	s.nextch()

	switch ch {
	case '=':
		s.tok = ASSIGN
	case ';':
		s.tok = SEMICOLON
	case ':':
		s.tok = COLON
	case '<':
		s.tok = LSS
	case '>':
		s.tok = GTR
	case ',':
		s.tok = COMMA
	case '(':
		s.tok = LPAREN
	case ')':
		s.tok = RPAREN
	case '/':
		if s.ch == '/' {
			s.skipLineComment()
			goto redo
		}
		s.tok = UNKNOWN
	default:
		s.tok = UNKNOWN
	}
	s.lit = s.segment(start, s.offs)
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Text returns the current token's source text.
func (s *Scanner) Text() string {
	return s.lit
}

// Pos returns the current token's start offset.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans a decimal literal with an optional fraction: 42, 3.14.
func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	s.scanDigits()
	if s.ch == '.' && s.peekDigit() {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
		s.scanDigits()
	}
	s.lit = s.litBuf.String()
	s.tok = LITERAL
}

func (s *Scanner) scanDigits() {
	for isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
}

// peekDigit reports whether the rune after the current one is a digit.
func (s *Scanner) peekDigit() bool {
	return s.next < len(s.buf) && isDigit(rune(s.buf[s.next]))
}

// skipLineComment skips a line comment (from // to end of line).
func (s *Scanner) skipLineComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}
