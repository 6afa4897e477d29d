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
	"github.com/samber/lo"
	"github.com/wdamron/catinfer/parse"
	"github.com/wdamron/catinfer/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// WordEnv is an environment containing mappings from word names to declared stack effects.
//
// A word-environment cannot be used concurrently for inference; to share a word-environment
// across threads, create a new word-environment for each thread which inherits from the
// shared environment.
type WordEnv struct {
	// Predeclared words in the parent of the current word-environment
	Parent *WordEnv
	// Mappings from word names to declared stack effects in the current word-environment
	Words map[string]*types.Function
}

// Create a word-environment. The new environment will inherit declarations from the parent, if the parent is not nil.
func NewWordEnv(parent *WordEnv) *WordEnv {
	return &WordEnv{
		Parent: parent,
		Words:  make(map[string]*types.Function),
	}
}

// Assign a stack effect to a word name in the current environment. A declaration in a parent
// environment with the same name will be shadowed.
func (e *WordEnv) Declare(name string, f *types.Function) { e.Words[name] = f }

// Parse a signature such as `('a 'a -> bool)` and assign it to a word name in the current environment.
func (e *WordEnv) DeclareSignature(name, signature string) error {
	f, err := parse.Function(signature)
	if err != nil {
		return err
	}
	e.Declare(name, f)
	return nil
}

// Remove the declaration for name from the current environment. Declarations in parent
// environments are not affected.
func (e *WordEnv) Remove(name string) { delete(e.Words, name) }

// Lookup the stack effect of a word in the current environment or its parents.
func (e *WordEnv) Lookup(name string) (*types.Function, bool) {
	for env := e; env != nil; env = env.Parent {
		if f, ok := env.Words[name]; ok {
			return f, true
		}
	}
	return nil, false
}

// Names returns the sorted names of all words visible from the current environment.
func (e *WordEnv) Names() []string {
	var names []string
	for env := e; env != nil; env = env.Parent {
		names = append(names, maps.Keys(env.Words)...)
	}
	names = lo.Uniq(names)
	slices.Sort(names)
	return names
}
