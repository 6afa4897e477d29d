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

package parse

import (
	"errors"
	"testing"

	"github.com/wdamron/catinfer/ast"
	"github.com/wdamron/catinfer/types"
)

func TestFunctionRoundTrip(t *testing.T) {
	for _, sig := range []string{
		"( -> bool)",
		"('A -> )",
		"(int int -> int)",
		"('R 'a -> 'R 'a 'a)",
		"('R 'a 'b -> 'R 'b 'a)",
		"(string ~> )",
		"('A bool ('A -> 'B) ('A -> 'B) -> 'B)",
		"('R ('A -> 'B) ('B -> 'C) -> 'R ('A -> 'C))",
		"('A ('A self -> 'B) -> 'B)",
	} {
		f, err := Function(sig)
		if err != nil {
			t.Fatalf("%s: %v", sig, err)
		}
		if f.String() != sig {
			t.Fatalf("expected %s, got %s", sig, f.String())
		}
	}
}

func TestFunctionVariants(t *testing.T) {
	f, err := Function("('R 'a -> 'R 'a 'a)")
	if err != nil {
		t.Fatal(err)
	}
	if f.Cons.Len() != 2 || f.Prod.Len() != 3 {
		t.Fatalf("unexpected arity: %s", f)
	}
	if _, ok := f.Cons.Bottom().(*types.StackVar); !ok {
		t.Fatalf("expected stack-variable at the bottom, got %s", f.Cons.Bottom().KindName())
	}
	if _, ok := f.Cons.Top().(*types.TypeVar); !ok {
		t.Fatalf("expected type-variable on top, got %s", f.Cons.Top().KindName())
	}
	if f.SideEffects {
		t.Fatalf("unexpected side-effects")
	}

	g, err := Function("(string ~> )")
	if err != nil {
		t.Fatal(err)
	}
	if !g.SideEffects || g.Prod.Len() != 0 {
		t.Fatalf("unexpected function: %s", g)
	}
}

func TestNamedSlotsAndUnparenthesized(t *testing.T) {
	f, err := Function("(hash_list key=var value=var -> hash_list)")
	if err != nil {
		t.Fatal(err)
	}
	if s := f.String(); s != "(hash_list var var -> hash_list)" {
		t.Fatalf("type: %s", s)
	}

	f, err = Function("('A -> 'B) -> ('A -> 'B)")
	if err != nil {
		t.Fatal(err)
	}
	if s := f.String(); s != "(('A -> 'B) -> ('A -> 'B))" {
		t.Fatalf("type: %s", s)
	}
}

func TestSyntaxErrors(t *testing.T) {
	for _, sig := range []string{
		"(int 'R -> int)",
		"(int int)",
		"(int -> int",
		"(int -> int))",
		"(int # int -> int)",
	} {
		_, err := Function(sig)
		if err == nil {
			t.Fatalf("%s: expected an error", sig)
		}
		var perr *Error
		if !errors.As(err, &perr) {
			t.Fatalf("%s: expected a syntax error, got %T", sig, err)
		}
	}
}

func TestKindAndStack(t *testing.T) {
	k, err := Kind("self")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := k.(*types.Self); !ok {
		t.Fatalf("expected Self, got %s", k.KindName())
	}
	v, err := Stack("'R int bool")
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() != 3 || v.Top().String() != "bool" || v.Bottom().String() != "'R" {
		t.Fatalf("stack: %s", types.VectorString(v))
	}
}

func TestTerms(t *testing.T) {
	ts, err := Terms(`dup [1 +] apply "done" 'c' 3.5 true -2`)
	if err != nil {
		t.Fatal(err)
	}
	if s := ast.TermsString(ts); s != `dup [1 +] apply "done" 'c' 3.5 true -2` {
		t.Fatalf("terms: %s", s)
	}
	expectedKinds := map[int]string{3: "string", 4: "char", 5: "float", 6: "bool", 7: "int"}
	for i, name := range expectedKinds {
		lit, ok := ts[i].(*ast.Literal)
		if !ok {
			t.Fatalf("term %d: expected a literal, got %s", i, ts[i].TermName())
		}
		if lit.Kind.String() != name {
			t.Fatalf("term %d: expected %s, got %s", i, name, lit.Kind)
		}
	}
	q, ok := ts[1].(*ast.Quotation)
	if !ok || len(q.Terms) != 2 {
		t.Fatalf("expected a quotation with 2 terms, got %s", ast.TermString(ts[1]))
	}

	for _, src := range []string{"[dup", "dup ]", `"open`} {
		if _, err := Terms(src); err == nil {
			t.Fatalf("%s: expected an error", src)
		}
	}
}
