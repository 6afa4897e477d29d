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

package ast

import (
	"strings"
)

// TermString returns a string representation of a term.
func TermString(t Term) string {
	var sb strings.Builder
	termString(&sb, t)
	return sb.String()
}

// TermsString returns a string representation of a function body, with terms separated by spaces.
func TermsString(ts []Term) string {
	var sb strings.Builder
	termsString(&sb, ts)
	return sb.String()
}

// DefinitionString returns a string representation of a definition: `define name { body }`
func DefinitionString(d *Definition) string {
	var sb strings.Builder
	sb.WriteString("define ")
	sb.WriteString(d.Name)
	sb.WriteString(" { ")
	termsString(&sb, d.Body)
	if len(d.Body) > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteByte('}')
	return sb.String()
}

func termsString(sb *strings.Builder, ts []Term) {
	for i, t := range ts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		termString(sb, t)
	}
}

func termString(sb *strings.Builder, t Term) {
	switch t := t.(type) {
	case *Word:
		sb.WriteString(t.Name)
	case *Literal:
		sb.WriteString(t.Syntax)
	case *Quotation:
		sb.WriteByte('[')
		termsString(sb, t.Terms)
		sb.WriteByte(']')
	}
}
