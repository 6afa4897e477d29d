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

package construct

import (
	"github.com/wdamron/catinfer/ast"
	"github.com/wdamron/catinfer/types"
)

// Kinds

// Nominal type: `int`, `bool`, etc
func KSimple(name string) *types.Simple {
	return &types.Simple{Name: name}
}

// Type-variable for a single stack slot: `'a`
func KVar(name string) *types.TypeVar {
	return &types.TypeVar{Name: name}
}

// Stack-variable for the rest of a stack: `'R`
func KStackVar(name string) *types.StackVar {
	return &types.StackVar{Name: name}
}

// Stack written bottom-first: `'R int bool`
func KStack(bottomFirst ...types.Kind) *types.Vector {
	return types.NewStack(bottomFirst...)
}

// Function type: `(int int -> int)`
func KFunc(cons, prod []types.Kind) *types.Function {
	return types.NewFunction(types.NewStack(cons...), types.NewStack(prod...), false)
}

// Function type with side effects: `(string ~> )`
func KEffect(cons, prod []types.Kind) *types.Function {
	return types.NewFunction(types.NewStack(cons...), types.NewStack(prod...), true)
}

// Function type which pushes values: `( -> int)`
func KPush(prod ...types.Kind) *types.Function {
	return types.NewFunction(nil, types.NewStack(prod...), false)
}

// Function type which pops values: `(int -> )`
func KPop(cons ...types.Kind) *types.Function {
	return types.NewFunction(types.NewStack(cons...), nil, false)
}

// Kinds listed bottom-first, for use with KFunc and KEffect.
func Kinds(bottomFirst ...types.Kind) []types.Kind {
	return bottomFirst
}

// Terms

// Word reference: `dup`
func Word(name string) *ast.Word {
	return &ast.Word{Name: name}
}

// Literal value of a nominal type: `42`
func Literal(syntax, kind string) *ast.Literal {
	return &ast.Literal{Syntax: syntax, Kind: KSimple(kind)}
}

// Integer literal: `42`
func Int(syntax string) *ast.Literal {
	return Literal(syntax, "int")
}

// Boolean literal: `true`
func Bool(value bool) *ast.Literal {
	if value {
		return Literal("true", "bool")
	}
	return Literal("false", "bool")
}

// String literal: `"s"`
func String(syntax string) *ast.Literal {
	return Literal(syntax, "string")
}

// Quotation: `[1 +]`
func Quote(terms ...ast.Term) *ast.Quotation {
	return &ast.Quotation{Terms: terms}
}

// Function body: `dup *`
func Body(terms ...ast.Term) []ast.Term {
	return terms
}

// Definition: `define sq { dup * }`
func Define(name string, body ...ast.Term) *ast.Definition {
	return &ast.Definition{Name: name, Body: body}
}
