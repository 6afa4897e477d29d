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

// catinfer provides stack-effect inference for a concatenative language.
//
// A function is described by the stack it consumes and the stack it produces, written bottom-first:
//
//	dup  : ('a -> 'a 'a)
//	eq   : ('a 'a -> bool)
//	dup eq : ('a -> bool)
//
// Type-variables ('a) stand for a single stack slot. Stack-variables ('R) stand for any number of
// slots and may only appear at the bottom of a stack. A function whose stacks are not open (that is,
// without a bottom stack-variable) leaves the rest of the stack untouched.
//
// Inference gathers equality constraints between variables and kinds in equivalence classes, reduces
// each class to a representative through a subtype lattice of nominal types, then substitutes the
// representatives in dependency order.
//
//
// Supported Features:
//
//   * Composition of stack effects, with surplus values passed through
//   * Stack-variables (row-polymorphic stacks) and first-class function kinds
//   * Nominal subtyping through a configurable lattice
//   * Quotations and self-referencing (recursive) quotations
//   * Mutually-recursive definitions inferred in dependency order
//   * Effectful functions (~>)
//
//
// Links:
//
// Row polymorphism for stacks (Diggins): https://www.cat-language.com/
//
// Tarjan's strongly connected components algorithm: https://en.wikipedia.org/wiki/Tarjan%27s_strongly_connected_components_algorithm
package catinfer
