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

// Kind is the base interface for all nodes of a stack-effect type tree.
type Kind interface {
	KindName() string
	String() string
}

var (
	_ Kind = (*Simple)(nil)
	_ Kind = (*TypeVar)(nil)
	_ Kind = (*StackVar)(nil)
	_ Kind = (*Vector)(nil)
	_ Kind = (*Function)(nil)
	_ Kind = (*Self)(nil)
)

func (k *Simple) KindName() string   { return "Simple" }
func (k *TypeVar) KindName() string  { return "TypeVar" }
func (k *StackVar) KindName() string { return "StackVar" }
func (k *Vector) KindName() string   { return "Vector" }
func (k *Function) KindName() string { return "Function" }
func (k *Self) KindName() string     { return "Self" }

func (k *Simple) String() string   { return KindString(k) }
func (k *TypeVar) String() string  { return KindString(k) }
func (k *StackVar) String() string { return KindString(k) }
func (k *Vector) String() string   { return KindString(k) }
func (k *Function) String() string { return KindString(k) }
func (k *Self) String() string     { return KindString(k) }

// Nominal type: `int`, `bool`, `any`
type Simple struct {
	Name string
}

// Type-variable for a single stack slot: `'a`
type TypeVar struct {
	Name string
}

// Stack-variable for an arbitrary stack tail: `'R`
//
// A stack-variable is only valid at the bottom of a vector.
type StackVar struct {
	Name string
}

// Self refers back to the function type currently being inferred.
type Self struct{}

// SelfKind is the shared Self marker.
var SelfKind = &Self{}

// Function type (stack effect): `('R int -> 'R bool)`, or `('R ~> 'R)` with side-effects
type Function struct {
	Cons        *Vector
	Prod        *Vector
	SideEffects bool
}

// NewFunction creates a stack effect. Nil vectors are treated as empty.
func NewFunction(cons, prod *Vector, sideEffects bool) *Function {
	if cons == nil {
		cons = EmptyVector
	}
	if prod == nil {
		prod = EmptyVector
	}
	return &Function{Cons: cons, Prod: prod, SideEffects: sideEffects}
}

// IsVar returns true for type-variables and stack-variables.
func IsVar(k Kind) bool {
	switch k.(type) {
	case *TypeVar, *StackVar:
		return true
	}
	return false
}

// IsComposite returns true for vectors and function types (including Self).
func IsComposite(k Kind) bool {
	switch k.(type) {
	case *Vector, *Function, *Self:
		return true
	}
	return false
}

// IsFunction returns true for function types and the Self marker.
func IsFunction(k Kind) bool {
	switch k.(type) {
	case *Function, *Self:
		return true
	}
	return false
}

// VarName returns the name of a type-variable or stack-variable.
func VarName(k Kind) (string, bool) {
	switch k := k.(type) {
	case *TypeVar:
		return k.Name, true
	case *StackVar:
		return k.Name, true
	}
	return "", false
}

// IsOpen returns true if the bottom of v is a stack-variable.
func IsOpen(v *Vector) bool {
	if v.Len() == 0 {
		return false
	}
	_, ok := v.Bottom().(*StackVar)
	return ok
}

// Equal compares kinds structurally.
func Equal(a, b Kind) bool {
	if a == b {
		return true
	}
	switch a := a.(type) {
	case *Simple:
		b, ok := b.(*Simple)
		return ok && a.Name == b.Name
	case *TypeVar:
		b, ok := b.(*TypeVar)
		return ok && a.Name == b.Name
	case *StackVar:
		b, ok := b.(*StackVar)
		return ok && a.Name == b.Name
	case *Self:
		_, ok := b.(*Self)
		return ok
	case *Vector:
		b, ok := b.(*Vector)
		if !ok || a.Len() != b.Len() {
			return false
		}
		for i, n := 0, a.Len(); i < n; i++ {
			if !Equal(a.Get(i), b.Get(i)) {
				return false
			}
		}
		return true
	case *Function:
		b, ok := b.(*Function)
		return ok && a.SideEffects == b.SideEffects && Equal(a.Cons, b.Cons) && Equal(a.Prod, b.Prod)
	}
	return false
}
