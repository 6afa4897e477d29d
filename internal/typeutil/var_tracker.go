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

package typeutil

import (
	"strconv"

	"github.com/wdamron/catinfer/types"
)

// VarTracker allocates fresh variable names for a single inference pass.
//
// A fresh name is the original name followed by `_` and a unique number, so renaming the same
// name twice never collides with a name which was already renamed.
type VarTracker struct {
	NextId uint
}

func (vt *VarTracker) Reset() { vt.NextId = 0 }

func (vt *VarTracker) next(base string) string {
	name := base + "_" + strconv.FormatUint(uint64(vt.NextId), 10)
	vt.NextId++
	return name
}

func (vt *VarTracker) NewTypeVar(base string) *types.TypeVar {
	return &types.TypeVar{Name: vt.next(base)}
}

func (vt *VarTracker) NewStackVar(base string) *types.StackVar {
	return &types.StackVar{Name: vt.next(base)}
}

// Instantiate renames every variable in k apart from all variables allocated so far.
// Occurrences of the same name within k are renamed consistently.
func (vt *VarTracker) Instantiate(k types.Kind) types.Kind {
	lookup := make(map[string]types.Kind, 8)
	return types.RenameVars(k, func(v types.Kind) types.Kind {
		name, _ := types.VarName(v)
		if fresh, ok := lookup[name]; ok {
			return fresh
		}
		var fresh types.Kind
		if _, ok := v.(*types.StackVar); ok {
			fresh = vt.NewStackVar(name)
		} else {
			fresh = vt.NewTypeVar(name)
		}
		lookup[name] = fresh
		return fresh
	})
}
