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

package types

import (
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &kindPrinter{} },
}

type kindPrinter struct {
	sb strings.Builder
}

func newKindPrinter() *kindPrinter { return printerPool.Get().(*kindPrinter) }

func (p *kindPrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

// KindString returns the canonical string representation of a Kind.
//
// Vectors are written bottom-first, the way stacks are written in signatures. The canonical
// string of a variable is also its identity within a constraint store.
func KindString(k Kind) string {
	p := newKindPrinter()
	kindString(p, false, k)
	s := p.sb.String()
	p.Release()
	return s
}

// VectorString returns the elements of v written bottom-first, separated by spaces.
func VectorString(v *Vector) string {
	p := newKindPrinter()
	vectorString(p, v)
	s := p.sb.String()
	p.Release()
	return s
}

func vectorString(p *kindPrinter, v *Vector) {
	for i := v.Len() - 1; i >= 0; i-- {
		kindString(p, true, v.Get(i))
		if i > 0 {
			p.sb.WriteByte(' ')
		}
	}
}

func kindString(p *kindPrinter, nested bool, k Kind) {
	switch k := k.(type) {
	case nil:
		p.sb.WriteString("<nil>")

	case *Simple:
		p.sb.WriteString(k.Name)

	case *TypeVar:
		p.sb.WriteString(k.Name)

	case *StackVar:
		p.sb.WriteString(k.Name)

	case *Self:
		p.sb.WriteString("self")

	case *Vector:
		if nested {
			p.sb.WriteByte('[')
		}
		vectorString(p, k)
		if nested {
			p.sb.WriteByte(']')
		}

	case *Function:
		p.sb.WriteByte('(')
		vectorString(p, k.Cons)
		if k.SideEffects {
			p.sb.WriteString(" ~> ")
		} else {
			p.sb.WriteString(" -> ")
		}
		vectorString(p, k.Prod)
		p.sb.WriteByte(')')
	}
}
