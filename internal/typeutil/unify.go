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
	"github.com/wdamron/catinfer/types"
)

// AddVectorConstraint unifies two stacks from the top down.
//
// A stack-variable absorbs the whole remaining tail of the other stack, after which alignment
// stops. Unless LenientArity is set, stacks which run out at different depths without an
// absorbing stack-variable are reported as a mismatch.
func (s *Store) AddVectorConstraint(v1, v2 *types.Vector) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.leave()

	orig1, orig2 := v1, v2
	for !v1.IsEmpty() && !v2.IsEmpty() {
		k1, k2 := v1.Top(), v2.Top()

		if sv1, ok := k1.(*types.StackVar); ok {
			if err := s.AddConstraint(sv1.Name, v2); err != nil {
				return err
			}
			if sv2, ok := k2.(*types.StackVar); ok {
				return s.AddConstraint(sv2.Name, v1)
			}
			return nil
		}
		if sv2, ok := k2.(*types.StackVar); ok {
			return s.AddConstraint(sv2.Name, v1)
		}

		if tv1, ok := k1.(*types.TypeVar); ok {
			if err := s.AddConstraint(tv1.Name, k2); err != nil {
				return err
			}
		}
		if tv2, ok := k2.(*types.TypeVar); ok {
			if err := s.AddConstraint(tv2.Name, k1); err != nil {
				return err
			}
		}
		if types.IsFunction(k1) && types.IsFunction(k2) {
			if err := s.AddFunctionConstraint(k1, k2); err != nil {
				return err
			}
		}

		_, simple1 := k1.(*types.Simple)
		_, simple2 := k2.(*types.Simple)
		if (simple1 && !types.IsVar(k2)) || (simple2 && !types.IsVar(k1)) {
			if !types.IsSubtype(s.Subtypes, k1, k2) && !types.IsSubtype(s.Subtypes, k2, k1) {
				return types.NewKindMismatch(k1, k2, types.MismatchSubtype)
			}
		}

		v1, v2 = v1.Rest(), v2.Rest()
	}

	if s.LenientArity || v1.Len() == v2.Len() {
		return nil
	}
	rest := v1
	if rest.IsEmpty() {
		rest = v2
	}
	// an open tail which is only a stack-variable matches the empty stack
	if sv, ok := rest.Top().(*types.StackVar); ok && rest.Len() == 1 {
		return s.AddConstraint(sv.Name, types.EmptyVector)
	}
	return types.NewKindMismatch(orig1, orig2, types.MismatchArity)
}

// AddFunctionConstraint unifies two stack effects: consumption first, then production.
// Either operand may be Self, in which case no constraints are recorded.
func (s *Store) AddFunctionConstraint(f1, f2 types.Kind) error {
	fn1, ok1 := f1.(*types.Function)
	fn2, ok2 := f2.(*types.Function)
	if !ok1 || !ok2 {
		return nil
	}
	if err := s.AddVectorConstraint(fn1.Cons, fn2.Cons); err != nil {
		return err
	}
	return s.AddVectorConstraint(fn1.Prod, fn2.Prod)
}
