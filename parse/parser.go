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

package parse

import (
	"unicode"
	"unicode/utf8"

	"github.com/wdamron/catinfer/types"
)

// SelfKeyword denotes the Self marker within a signature.
const SelfKeyword = "self"

type parser struct {
	lex  *Lexer
	tok  Token
	next Token
}

func newParser(src string) *parser {
	p := &parser{lex: NewLexer(src)}
	p.tok = p.lex.Next()
	p.next = p.lex.Next()
	return p
}

func (p *parser) advance() {
	p.tok, p.next = p.next, p.lex.Next()
}

func (p *parser) expect(tt TokenType) error {
	if p.tok.Type != tt {
		return errorf(p.tok.Pos, "expected %s, found %s", tt, p.tok)
	}
	p.advance()
	return nil
}

// Function parses a stack effect, with or without enclosing parentheses:
//
//	('R 'a -> 'R 'a 'a)
//	(string ~> )
//	('A -> 'B) -> ('A -> 'B)
func Function(src string) (*types.Function, error) {
	p := newParser(src)
	cons, err := p.parseStack()
	if err != nil {
		return nil, err
	}
	if p.tok.Type == EOF {
		if cons.Len() == 1 {
			if f, ok := cons.Top().(*types.Function); ok {
				return f, nil
			}
		}
		return nil, errorf(p.tok.Pos, "expected -> or ~>, found %s", p.tok)
	}
	f, err := p.parseArrow(cons)
	if err != nil {
		return nil, err
	}
	if err := p.expect(EOF); err != nil {
		return nil, err
	}
	return f, nil
}

// MustFunction is like Function but panics if the signature cannot be parsed.
func MustFunction(src string) *types.Function {
	f, err := Function(src)
	if err != nil {
		panic("parse: " + src + ": " + err.Error())
	}
	return f
}

// Kind parses a single kind: `int`, `'a`, `'R`, `self` or a parenthesized function type.
func Kind(src string) (types.Kind, error) {
	p := newParser(src)
	k, err := p.parseItem()
	if err != nil {
		return nil, err
	}
	if err := p.expect(EOF); err != nil {
		return nil, err
	}
	return k, nil
}

// Stack parses a sequence of kinds written bottom-first, such as `'R int bool`.
func Stack(src string) (*types.Vector, error) {
	p := newParser(src)
	v, err := p.parseStack()
	if err != nil {
		return nil, err
	}
	if err := p.expect(EOF); err != nil {
		return nil, err
	}
	return v, nil
}

func (p *parser) parseArrow(cons *types.Vector) (*types.Function, error) {
	sideEffects := false
	switch p.tok.Type {
	case Arrow:
	case SideArrow:
		sideEffects = true
	default:
		return nil, errorf(p.tok.Pos, "expected -> or ~>, found %s", p.tok)
	}
	p.advance()
	prod, err := p.parseStack()
	if err != nil {
		return nil, err
	}
	return types.NewFunction(cons, prod, sideEffects), nil
}

// parseStack reads kinds until an arrow, a closing parenthesis or the end of input.
func (p *parser) parseStack() (*types.Vector, error) {
	var bottomFirst []types.Kind
	for {
		switch p.tok.Type {
		case Arrow, SideArrow, RParen, EOF:
			return types.NewStack(bottomFirst...), nil
		}
		pos := p.tok.Pos
		k, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		if sv, ok := k.(*types.StackVar); ok && len(bottomFirst) > 0 {
			return nil, errorf(pos, "stack-variable %s must be at the bottom of the stack", sv.Name)
		}
		bottomFirst = append(bottomFirst, k)
	}
}

func (p *parser) parseItem() (types.Kind, error) {
	// named slot: `name=kind`
	if p.tok.Type == Ident && p.next.Type == Equals {
		p.advance()
		p.advance()
	}
	switch p.tok.Type {
	case LParen:
		p.advance()
		cons, err := p.parseStack()
		if err != nil {
			return nil, err
		}
		f, err := p.parseArrow(cons)
		if err != nil {
			return nil, err
		}
		if err := p.expect(RParen); err != nil {
			return nil, err
		}
		return f, nil
	case Var:
		name := p.tok.Data
		p.advance()
		if isStackVarName(name) {
			return &types.StackVar{Name: name}, nil
		}
		return &types.TypeVar{Name: name}, nil
	case Ident:
		name := p.tok.Data
		p.advance()
		if name == SelfKeyword {
			return types.SelfKind, nil
		}
		return &types.Simple{Name: name}, nil
	}
	return nil, errorf(p.tok.Pos, "unexpected %s", p.tok)
}

// Variables starting with an upper-case letter stand for stacks: `'R`, `'A`.
func isStackVarName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name[1:])
	return unicode.IsUpper(r)
}
