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
	"fmt"

	"github.com/wdamron/catinfer/ast"
	"github.com/wdamron/catinfer/types"
)

// inferTerms composes the stack effects of terms from left to right, starting from ('R -> 'R).
func (ctx *Context) inferTerms(env *WordEnv, terms []ast.Term) (*types.Function, error) {
	acc := ctx.identity()
	for _, t := range terms {
		effect, err := ctx.inferTerm(env, t)
		if err != nil {
			return nil, err
		}
		ctx.annotations = append(ctx.annotations, annotation{term: t, effect: effect})
		if acc, err = ctx.compose(acc, ctx.pad(effect)); err != nil {
			ctx.invalid = t
			return nil, err
		}
	}
	return acc, nil
}

// inferTerm returns the stack effect of a single term, before padding.
func (ctx *Context) inferTerm(env *WordEnv, t ast.Term) (*types.Function, error) {
	switch t := t.(type) {
	case *ast.Word:
		if ctx.pending[t.Name] {
			return ctx.recursive(), nil
		}
		f, ok := env.Lookup(t.Name)
		if !ok {
			ctx.invalid = t
			return nil, fmt.Errorf("%w: %s", ErrUnknownWord, t.Name)
		}
		return ctx.vars.Instantiate(f).(*types.Function), nil

	case *ast.Literal:
		if t.Kind == nil {
			ctx.invalid = t
			return nil, ErrEmptyTerms
		}
		return pushes(t.Kind), nil

	case *ast.Quotation:
		q, err := ctx.inferTerms(env, t.Terms)
		if err != nil {
			return nil, err
		}
		if len(ctx.pending) > 0 && ast.Refers(t.Terms, ctx.pending) {
			return pushes(types.SelfKind), nil
		}
		return pushes(q), nil
	}

	ctx.invalid = t
	return nil, ErrEmptyTerms
}
