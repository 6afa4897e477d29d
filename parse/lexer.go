// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// parse reads stack-effect signatures and function bodies.
package parse

import (
	"fmt"
	"unicode"

	"github.com/smasher164/xid"
)

type TokenType int

const (
	EOF TokenType = iota
	LParen
	RParen
	Arrow
	SideArrow
	Equals
	Var
	Ident
	Illegal
)

var tokenNames = [...]string{
	EOF:       "end of input",
	LParen:    "(",
	RParen:    ")",
	Arrow:     "->",
	SideArrow: "~>",
	Equals:    "=",
	Var:       "variable",
	Ident:     "identifier",
	Illegal:   "illegal character",
}

func (t TokenType) String() string { return tokenNames[t] }

type Token struct {
	Type TokenType
	Pos  int
	Data string
}

func (t Token) String() string {
	if t.Data != "" {
		return fmt.Sprintf("%s %q", t.Type, t.Data)
	}
	return t.Type.String()
}

// Error is a syntax error at a rune offset within the input.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string { return fmt.Sprintf("%d: %s", e.Pos, e.Msg) }

func errorf(pos int, format string, args ...interface{}) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Lexer splits a signature into tokens.
type Lexer struct {
	src []rune
	pos int
}

func NewLexer(src string) *Lexer { return &Lexer{src: []rune(src)} }

const eof = -1

func (l *Lexer) peek(offset int) rune {
	if l.pos+offset >= len(l.src) {
		return eof
	}
	return l.src[l.pos+offset]
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch != eof && xid.Start(ch))
}

func isIdentContinue(ch rune) bool {
	return ch != eof && xid.Continue(ch)
}

func (l *Lexer) lexIdent() string {
	start := l.pos
	l.pos++
	for isIdentContinue(l.peek(0)) {
		l.pos++
	}
	return string(l.src[start:l.pos])
}

// Next returns the next token, or an EOF token at the end of the input.
func (l *Lexer) Next() Token {
	for unicode.IsSpace(l.peek(0)) {
		l.pos++
	}
	start := l.pos
	ch := l.peek(0)
	switch {
	case ch == eof:
		return Token{Type: EOF, Pos: start}
	case ch == '(':
		l.pos++
		return Token{Type: LParen, Pos: start}
	case ch == ')':
		l.pos++
		return Token{Type: RParen, Pos: start}
	case ch == '=':
		l.pos++
		return Token{Type: Equals, Pos: start}
	case ch == '-' && l.peek(1) == '>':
		l.pos += 2
		return Token{Type: Arrow, Pos: start}
	case ch == '~' && l.peek(1) == '>':
		l.pos += 2
		return Token{Type: SideArrow, Pos: start}
	case ch == '\'' && isIdentStart(l.peek(1)):
		l.pos++
		return Token{Type: Var, Pos: start, Data: "'" + l.lexIdent()}
	case isIdentStart(ch):
		return Token{Type: Ident, Pos: start, Data: l.lexIdent()}
	}
	l.pos++
	return Token{Type: Illegal, Pos: start, Data: string(ch)}
}
