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
	"strconv"

	"github.com/wdamron/catinfer/types"
)

var (
	_typeVarNames  [128]string
	_stackVarNames [128]string
)

func init() {
	for i := range _typeVarNames {
		_typeVarNames[i] = varName('a', uint(i))
		_stackVarNames[i] = varName('A', uint(i))
	}
}

func varName(first byte, i uint) string {
	if i >= 26 {
		return "'" + string(first+byte(i%26)) + strconv.Itoa(int(i/26))
	}
	return "'" + string(first+byte(i))
}

func typeVarName(i uint) string {
	if i < uint(len(_typeVarNames)) {
		return _typeVarNames[i]
	}
	return varName('a', i)
}

func stackVarName(i uint) string {
	if i < uint(len(_stackVarNames)) {
		return _stackVarNames[i]
	}
	return varName('A', i)
}

// Generalize renames the variables of k canonically, in order of first appearance: type-variables
// become 'a, 'b, ... and stack-variables become 'A, 'B, ... Stacks are visited bottom-first and
// consumption is visited before production.
func Generalize(k types.Kind) types.Kind {
	stackVars := make(map[string]bool, 8)
	types.RenameVars(k, func(v types.Kind) types.Kind {
		if sv, ok := v.(*types.StackVar); ok {
			stackVars[sv.Name] = true
		}
		return v
	})
	canonical := make(map[string]types.Kind, 8)
	var ntype, nstack uint
	for _, name := range types.FreeVars(k) {
		if stackVars[name] {
			canonical[name] = &types.StackVar{Name: stackVarName(nstack)}
			nstack++
		} else {
			canonical[name] = &types.TypeVar{Name: typeVarName(ntype)}
			ntype++
		}
	}
	return types.RenameVars(k, func(v types.Kind) types.Kind {
		name, _ := types.VarName(v)
		return canonical[name]
	})
}

// CloseEffects removes a stack-variable which occurs only at the bottom of both stacks of a function
// type, at any depth within k: ('R 'a -> 'R 'a 'a) becomes ('a -> 'a 'a).
func CloseEffects(k types.Kind) types.Kind {
	counts := make(map[string]int, 8)
	types.RenameVars(k, func(v types.Kind) types.Kind {
		name, _ := types.VarName(v)
		counts[name]++
		return v
	})
	return closeEffects(k, counts)
}

func closeEffects(k types.Kind, counts map[string]int) types.Kind {
	switch k := k.(type) {
	case *types.Vector:
		return k.Map(func(e types.Kind) types.Kind { return closeEffects(e, counts) })

	case *types.Function:
		cons, prod := k.Cons, k.Prod
		if types.IsOpen(cons) && types.IsOpen(prod) && types.Equal(cons.Bottom(), prod.Bottom()) {
			if name, _ := types.VarName(cons.Bottom()); counts[name] == 2 {
				cons, prod = cons.Slice(0, cons.Len()-1), prod.Slice(0, prod.Len()-1)
			}
		}
		return &types.Function{
			Cons:        closeEffects(cons, counts).(*types.Vector),
			Prod:        closeEffects(prod, counts).(*types.Vector),
			SideEffects: k.SideEffects,
		}
	}
	return k
}
