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
	"github.com/wdamron/catinfer/internal/util"
	"github.com/wdamron/catinfer/types"
	"golang.org/x/exp/slices"
)

// DefinitionResult holds the inferred stack effect of a definition, or the error which caused
// inference of the definition to fail.
type DefinitionResult struct {
	Name string
	Type *types.Function
	Err  error
}

// InferDefinitions infers a group of definitions which may reference each other, in dependency order.
//
// Definitions are sorted into strongly-connected components of their word references, and each
// component is inferred after the components it references. Within a component, references to a
// definition which has not been inferred yet have an unknown stack effect, and quotations which
// contain such references are pushed as `self`.
//
// Inferred definitions are declared in a new environment which inherits from env. A failed definition
// is not declared; inference continues with the remaining definitions.
func (ctx *Context) InferDefinitions(defs []*ast.Definition, env *WordEnv) ([]DefinitionResult, *WordEnv) {
	scope := NewWordEnv(env)
	verts := make(map[string]int, len(defs))
	for i, def := range defs {
		verts[def.Name] = i
	}
	g := util.NewGraph(len(defs))
	for i, def := range defs {
		for _, name := range ast.References(def.Body) {
			if j, ok := verts[name]; ok {
				g.AddEdge(i, j)
			}
		}
	}

	results := make([]DefinitionResult, 0, len(defs))
	for _, component := range g.SCC() {
		component = slices.Clone(component)
		slices.Sort(component)
		ctx.pending = make(map[string]bool, len(component))
		for _, i := range component {
			ctx.pending[defs[i].Name] = true
		}
		for _, i := range component {
			def := defs[i]
			f, err := ctx.Infer(def.Body, scope)
			delete(ctx.pending, def.Name)
			if err != nil {
				err = fmt.Errorf("%s: %w", def.Name, err)
				ctx.log("%v", err)
				results = append(results, DefinitionResult{Name: def.Name, Err: err})
				continue
			}
			scope.Declare(def.Name, f)
			results = append(results, DefinitionResult{Name: def.Name, Type: f})
		}
	}
	ctx.pending = nil
	return results, scope
}
