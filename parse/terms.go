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
	"strconv"
	"strings"
	"unicode"

	"github.com/wdamron/catinfer/ast"
	"github.com/wdamron/catinfer/types"
)

// Terms parses a function body: words, literals and bracketed quotations.
//
//	dup [1 +] apply "done" 'c' 3.5 true
func Terms(src string) ([]ast.Term, error) {
	s := &termScanner{src: []rune(src)}
	ts, err := s.scanTerms(false)
	if err != nil {
		return nil, err
	}
	return ts, nil
}

// MustTerms is like Terms but panics if the body cannot be parsed.
func MustTerms(src string) []ast.Term {
	ts, err := Terms(src)
	if err != nil {
		panic("parse: " + src + ": " + err.Error())
	}
	return ts
}

// Definition parses `name body...` into a definition.
func Definition(name, body string) (*ast.Definition, error) {
	ts, err := Terms(body)
	if err != nil {
		return nil, err
	}
	return &ast.Definition{Name: name, Body: ts}, nil
}

type termScanner struct {
	src []rune
	pos int
}

func (s *termScanner) peek() rune {
	if s.pos >= len(s.src) {
		return eof
	}
	return s.src[s.pos]
}

func isTermDelim(ch rune) bool {
	return ch == eof || ch == '[' || ch == ']' || unicode.IsSpace(ch)
}

func (s *termScanner) scanTerms(nested bool) ([]ast.Term, error) {
	var ts []ast.Term
	for {
		for unicode.IsSpace(s.peek()) {
			s.pos++
		}
		start := s.pos
		switch ch := s.peek(); {
		case ch == eof:
			if nested {
				return nil, errorf(start, "unterminated quotation")
			}
			return ts, nil
		case ch == ']':
			if !nested {
				return nil, errorf(start, "unexpected ]")
			}
			s.pos++
			return ts, nil
		case ch == '[':
			s.pos++
			nestedTerms, err := s.scanTerms(true)
			if err != nil {
				return nil, err
			}
			ts = append(ts, &ast.Quotation{Terms: nestedTerms})
		case ch == '"':
			lit, err := s.scanQuoted('"')
			if err != nil {
				return nil, err
			}
			ts = append(ts, &ast.Literal{Syntax: lit, Kind: &types.Simple{Name: "string"}})
		case ch == '\'':
			lit, err := s.scanQuoted('\'')
			if err != nil {
				return nil, err
			}
			ts = append(ts, &ast.Literal{Syntax: lit, Kind: &types.Simple{Name: "char"}})
		default:
			for !isTermDelim(s.peek()) {
				s.pos++
			}
			ts = append(ts, wordOrLiteral(string(s.src[start:s.pos])))
		}
	}
}

func (s *termScanner) scanQuoted(quote rune) (string, error) {
	start := s.pos
	s.pos++
	for {
		switch s.peek() {
		case eof:
			return "", errorf(start, "unterminated literal")
		case '\\':
			s.pos += 2
			continue
		case quote:
			s.pos++
			lit := string(s.src[start:s.pos])
			if _, err := strconv.Unquote(lit); err != nil {
				return "", errorf(start, "invalid literal %s", lit)
			}
			return lit, nil
		}
		s.pos++
	}
}

func wordOrLiteral(text string) ast.Term {
	switch text {
	case "true", "false":
		return &ast.Literal{Syntax: text, Kind: &types.Simple{Name: "bool"}}
	}
	if _, err := strconv.ParseInt(text, 0, 64); err == nil {
		return &ast.Literal{Syntax: text, Kind: &types.Simple{Name: "int"}}
	}
	if strings.ContainsAny(text, ".eE") {
		if _, err := strconv.ParseFloat(text, 64); err == nil {
			return &ast.Literal{Syntax: text, Kind: &types.Simple{Name: "float"}}
		}
	}
	return &ast.Word{Name: text}
}
