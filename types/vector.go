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
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

// EmptyVector is the empty stack.
var EmptyVector = &Vector{l: emptyList}

// Vector is an immutable sequence of kinds representing a stack. Index 0 is the top of the stack.
type Vector struct {
	l *immutable.List
}

// Create a vector from kinds listed top-first.
func NewVector(topFirst ...Kind) *Vector {
	if len(topFirst) == 0 {
		return EmptyVector
	}
	b := immutable.NewListBuilder(emptyList)
	for _, k := range topFirst {
		b.Append(k)
	}
	return &Vector{b.List()}
}

// Create a vector from kinds listed bottom-first, in the order they are written in a signature.
func NewStack(bottomFirst ...Kind) *Vector {
	if len(bottomFirst) == 0 {
		return EmptyVector
	}
	b := immutable.NewListBuilder(emptyList)
	for i := len(bottomFirst) - 1; i >= 0; i-- {
		b.Append(bottomFirst[i])
	}
	return &Vector{b.List()}
}

func (v *Vector) list() *immutable.List {
	if v == nil || v.l == nil {
		return emptyList
	}
	return v.l
}

func (v *Vector) Len() int       { return v.list().Len() }
func (v *Vector) IsEmpty() bool  { return v.Len() == 0 }
func (v *Vector) Get(i int) Kind { return v.list().Get(i).(Kind) }
func (v *Vector) Top() Kind      { return v.Get(0) }
func (v *Vector) Bottom() Kind   { return v.Get(v.Len() - 1) }
func (v *Vector) Rest() *Vector  { return v.Slice(1, v.Len()) }

// Push places k on top of the stack.
func (v *Vector) Push(k Kind) *Vector { return &Vector{v.list().Prepend(k)} }

// Slice returns the elements in [start, end), counted from the top.
func (v *Vector) Slice(start, end int) *Vector {
	if start >= end {
		return EmptyVector
	}
	return &Vector{v.list().Slice(start, end)}
}

// Append adds kinds below the current bottom of the stack, top-first.
func (v *Vector) Append(topFirst ...Kind) *Vector {
	if len(topFirst) == 0 {
		return v
	}
	b := immutable.NewListBuilder(v.list())
	for _, k := range topFirst {
		b.Append(k)
	}
	return &Vector{b.List()}
}

// Concat places w below v.
func (v *Vector) Concat(w *Vector) *Vector {
	if w.Len() == 0 {
		return v
	}
	b := immutable.NewListBuilder(v.list())
	w.Range(func(_ int, k Kind) bool {
		b.Append(k)
		return true
	})
	return &Vector{b.List()}
}

// Kinds returns the elements top-first.
func (v *Vector) Kinds() []Kind {
	ks := make([]Kind, 0, v.Len())
	v.Range(func(_ int, k Kind) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

// Iterate over the elements top-first. If f returns false, iteration will be stopped.
func (v *Vector) Range(f func(int, Kind) bool) {
	iter := v.list().Iterator()
	for !iter.Done() {
		i, k := iter.Next()
		if !f(i, k.(Kind)) {
			return
		}
	}
}

// Map returns a new vector with f applied to each element.
func (v *Vector) Map(f func(Kind) Kind) *Vector {
	if v.Len() == 0 {
		return EmptyVector
	}
	b := immutable.NewListBuilder(emptyList)
	v.Range(func(_ int, k Kind) bool {
		b.Append(f(k))
		return true
	})
	return &Vector{b.List()}
}

// Collapse returns the sole element of a single-element vector, otherwise v.
func (v *Vector) Collapse() Kind {
	if v.Len() == 1 {
		return v.Top()
	}
	return v
}
