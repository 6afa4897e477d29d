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
	"strings"
	"testing"
)

func TestVectorOrder(t *testing.T) {
	intType, boolType := &Simple{"int"}, &Simple{"bool"}
	r := &StackVar{"'R"}

	v := NewStack(r, intType, boolType)
	if v.Top() != boolType || v.Bottom() != r {
		t.Fatalf("unexpected order: %s", VectorString(v))
	}
	if s := VectorString(v); s != "'R int bool" {
		t.Fatalf("vector: %s", s)
	}
	if !Equal(v, NewVector(boolType, intType, r)) {
		t.Fatalf("expected NewStack and NewVector to agree")
	}
	if !IsOpen(v) || IsOpen(v.Rest().Slice(0, 1)) {
		t.Fatalf("invalid open-stack detection")
	}
	if s := VectorString(v.Rest()); s != "'R int" {
		t.Fatalf("rest: %s", s)
	}
	if s := VectorString(v.Push(&TypeVar{"'a"})); s != "'R int bool 'a" {
		t.Fatalf("push: %s", s)
	}
	if s := VectorString(NewVector(intType).Concat(NewVector(boolType))); s != "bool int" {
		t.Fatalf("concat: %s", s)
	}
	if NewVector(intType).Collapse() != intType {
		t.Fatalf("expected a single-element vector to collapse")
	}
	if EmptyVector.Collapse() != EmptyVector || !EmptyVector.IsEmpty() {
		t.Fatalf("expected the empty vector to be kept")
	}
}

func TestEqualIsStructural(t *testing.T) {
	a := NewFunction(NewStack(&StackVar{"'R"}, &TypeVar{"'a"}), NewStack(&StackVar{"'R"}, &TypeVar{"'a"}, &TypeVar{"'a"}), false)
	b := NewFunction(NewStack(&StackVar{"'R"}, &TypeVar{"'a"}), NewStack(&StackVar{"'R"}, &TypeVar{"'a"}, &TypeVar{"'a"}), false)
	if a == b || !Equal(a, b) {
		t.Fatalf("expected separately constructed functions to be equal")
	}
	b.SideEffects = true
	if Equal(a, b) {
		t.Fatalf("expected side-effects to be compared")
	}
	if Equal(&TypeVar{"'a"}, &StackVar{"'a"}) {
		t.Fatalf("expected variables of different sorts to differ")
	}
	if !Equal(SelfKind, &Self{}) {
		t.Fatalf("expected Self markers to be equal")
	}
	if Equal(NewVector(&Simple{"int"}), &Simple{"int"}) {
		t.Fatalf("expected a vector to differ from its element")
	}
}

func TestKindString(t *testing.T) {
	f := NewFunction(
		NewStack(&StackVar{"'A"}, NewFunction(NewStack(&StackVar{"'A"}), NewStack(&StackVar{"'B"}), false)),
		NewStack(&StackVar{"'B"}),
		true,
	)
	if s := f.String(); s != "('A ('A -> 'B) ~> 'B)" {
		t.Fatalf("type: %s", s)
	}
	nested := NewStack(&Simple{"int"}, NewStack(&Simple{"bool"}, &Simple{"char"}))
	if s := nested.String(); s != "int [bool char]" {
		t.Fatalf("vector: %s", s)
	}
	if s := NewFunction(nil, nil, false).String(); s != "( -> )" {
		t.Fatalf("type: %s", s)
	}
}

func TestFreeVars(t *testing.T) {
	f := NewFunction(
		NewStack(&StackVar{"'R"}, &TypeVar{"'b"}, &TypeVar{"'a"}),
		NewStack(&StackVar{"'R"}, &TypeVar{"'a"}, &TypeVar{"'c"}),
		false,
	)
	if s := strings.Join(FreeVars(f), " "); s != "'R 'b 'a 'c" {
		t.Fatalf("free variables: %s", s)
	}
	if !Mentions(f, "'c") || Mentions(f, "'d") {
		t.Fatalf("invalid mention detection")
	}
	renamed := RenameVars(f, func(k Kind) Kind {
		if tv, ok := k.(*TypeVar); ok {
			return &TypeVar{tv.Name + "1"}
		}
		return k
	})
	if s := renamed.String(); s != "('R 'b1 'a1 -> 'R 'a1 'c1)" {
		t.Fatalf("renamed: %s", s)
	}
	if s := f.String(); s != "('R 'b 'a -> 'R 'a 'c)" {
		t.Fatalf("expected the original to be unmodified, got %s", s)
	}
}

func TestKindMismatchError(t *testing.T) {
	err := NewKindMismatch(&Simple{"int"}, &Simple{"string"}, MismatchSubtype)
	if s := err.Error(); s != "Failed to unify int with string: incompatible types" {
		t.Fatalf("error: %s", s)
	}
	err = NewKindMismatch(NewStack(&Simple{"int"}), EmptyVector, MismatchArity)
	if s := err.Error(); s != "Failed to unify [int] with []: stacks differ in size" {
		t.Fatalf("error: %s", s)
	}
}
