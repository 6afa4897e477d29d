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
	"strings"
	"testing"

	"github.com/wdamron/catinfer/parse"
	"github.com/wdamron/catinfer/types"
)

func TestFreshNames(t *testing.T) {
	var vt VarTracker
	if name := vt.NewTypeVar("'x").Name; name != "'x_0" {
		t.Fatalf("expected 'x_0, found %s", name)
	}
	if name := vt.NewStackVar("'R").Name; name != "'R_1" {
		t.Fatalf("expected 'R_1, found %s", name)
	}
	vt.Reset()
	if name := vt.NewTypeVar("'x").Name; name != "'x_0" {
		t.Fatalf("expected 'x_0 after reset, found %s", name)
	}
}

func TestInstantiate(t *testing.T) {
	var vt VarTracker
	orig := parse.MustFunction("('R 'a -> 'R 'a 'a int)")
	first := vt.Instantiate(orig).(*types.Function)
	second := vt.Instantiate(orig).(*types.Function)

	for _, f := range []*types.Function{first, second} {
		if _, ok := f.Cons.Bottom().(*types.StackVar); !ok || !types.Equal(f.Cons.Bottom(), f.Prod.Bottom()) {
			t.Fatalf("expected a shared stack-variable: %s", f)
		}
		a := f.Cons.Top()
		if !types.Equal(a, f.Prod.Get(1)) || !types.Equal(a, f.Prod.Get(2)) {
			t.Fatalf("expected a shared type-variable: %s", f)
		}
		if !strings.HasPrefix(a.String(), "'a_") {
			t.Fatalf("unexpected fresh name: %s", a)
		}
		if f.Prod.Top().String() != "int" {
			t.Fatalf("expected nominal types to be kept: %s", f)
		}
	}
	for _, name := range types.FreeVars(first) {
		if types.Mentions(second, name) || types.Mentions(orig, name) {
			t.Fatalf("%s is shared between instantiations", name)
		}
	}
}
