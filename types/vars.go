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
	set "github.com/hashicorp/go-set/v2"
)

// FreeVars returns the names of the type-variables and stack-variables in k, in order of first
// appearance. Vectors are visited bottom-first; consumption is visited before production.
func FreeVars(k Kind) []string {
	seen := set.New[string](8)
	var names []string
	walkVars(k, func(name string) {
		if seen.Insert(name) {
			names = append(names, name)
		}
	})
	return names
}

// Mentions returns true if the variable name occurs anywhere within k.
func Mentions(k Kind, name string) bool {
	found := false
	walkVars(k, func(n string) {
		if n == name {
			found = true
		}
	})
	return found
}

func walkVars(k Kind, f func(string)) {
	switch k := k.(type) {
	case *TypeVar:
		f(k.Name)
	case *StackVar:
		f(k.Name)
	case *Vector:
		for i := k.Len() - 1; i >= 0; i-- {
			walkVars(k.Get(i), f)
		}
	case *Function:
		walkVars(k.Cons, f)
		walkVars(k.Prod, f)
	}
}

// RenameVars returns a copy of k with every variable replaced by rename(variable). The Self marker
// and nominal types are returned unchanged.
func RenameVars(k Kind, rename func(Kind) Kind) Kind {
	switch k := k.(type) {
	case *TypeVar, *StackVar:
		return rename(k)
	case *Vector:
		return k.Map(func(e Kind) Kind { return RenameVars(e, rename) })
	case *Function:
		return &Function{
			Cons:        RenameVars(k.Cons, rename).(*Vector),
			Prod:        RenameVars(k.Prod, rename).(*Vector),
			SideEffects: k.SideEffects,
		}
	}
	return k
}
