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
	"github.com/wdamron/catinfer/types"
)

// Term is the base for all terms of a function body.
type Term interface {
	// Name of the syntax-type of the term.
	TermName() string
	// Type returns the stack effect of a term. Stack effects are only available after type-inference.
	Type() *types.Function
}

var (
	_ Term = (*Word)(nil)
	_ Term = (*Literal)(nil)
	_ Term = (*Quotation)(nil)
)

// Reference to a declared function: `dup`
type Word struct {
	Name     string
	inferred *types.Function
}

// "Word"
func (t *Word) TermName() string { return "Word" }

// Get the inferred stack effect of t.
func (t *Word) Type() *types.Function { return t.inferred }

// Assign a stack effect to t. Type assignments should occur indirectly, during inference.
func (t *Word) SetType(f *types.Function) { t.inferred = f }

// Literal value pushed onto the stack: `42`, `"s"`
type Literal struct {
	// Syntax is printed when the literal is printed.
	Syntax string
	// Kind is the kind of the pushed value.
	Kind     types.Kind
	inferred *types.Function
}

// "Literal"
func (t *Literal) TermName() string { return "Literal" }

// Get the inferred stack effect of t.
func (t *Literal) Type() *types.Function { return t.inferred }

// Assign a stack effect to t. Type assignments should occur indirectly, during inference.
func (t *Literal) SetType(f *types.Function) { t.inferred = f }

// Quoted function pushed onto the stack: `[1 +]`
type Quotation struct {
	Terms    []Term
	inferred *types.Function
}

// "Quotation"
func (t *Quotation) TermName() string { return "Quotation" }

// Get the inferred stack effect of t. The pushed function type is the sole element of the production.
func (t *Quotation) Type() *types.Function { return t.inferred }

// Assign a stack effect to t. Type assignments should occur indirectly, during inference.
func (t *Quotation) SetType(f *types.Function) { t.inferred = f }

// Definition binds a name to a function body: `define sq { dup * }`
type Definition struct {
	Name string
	Body []Term
}
