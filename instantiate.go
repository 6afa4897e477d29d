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

package catinfer

import (
	"github.com/wdamron/catinfer/types"
)

// Base name for stack-variables added below closed stack effects.
const restName = "'R"

// instantiate renames every variable of f apart from the variables of the current pass, then pads f.
func (ctx *Context) instantiate(f *types.Function) *types.Function {
	return ctx.pad(ctx.vars.Instantiate(f).(*types.Function))
}

// pad extends both stacks of f with the same fresh stack-variable when neither stack is open, so
// the values below the consumption of f pass through unchanged.
func (ctx *Context) pad(f *types.Function) *types.Function {
	if types.IsOpen(f.Cons) || types.IsOpen(f.Prod) {
		return f
	}
	rest := ctx.vars.NewStackVar(restName)
	return types.NewFunction(f.Cons.Append(rest), f.Prod.Append(rest), f.SideEffects)
}

// identity returns the stack effect of an empty function body: ('R -> 'R)
func (ctx *Context) identity() *types.Function {
	rest := types.NewVector(ctx.vars.NewStackVar(restName))
	return types.NewFunction(rest, rest, false)
}

// recursive returns an unknown stack effect for a reference to a definition which is being inferred.
func (ctx *Context) recursive() *types.Function {
	cons := types.NewVector(ctx.vars.NewStackVar(restName))
	prod := types.NewVector(ctx.vars.NewStackVar("'S"))
	return types.NewFunction(cons, prod, false)
}

// pushes returns the stack effect of pushing k onto the stack: ( -> k). The variables of k
// are not renamed.
func pushes(k types.Kind) *types.Function {
	return types.NewFunction(nil, types.NewVector(k), false)
}
