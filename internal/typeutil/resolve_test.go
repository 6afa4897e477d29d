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
	"errors"
	"testing"

	"github.com/wdamron/catinfer/parse"
	"github.com/wdamron/catinfer/types"
)

type bogusKind struct{}

func (bogusKind) KindName() string { return "Bogus" }
func (bogusKind) String() string   { return "bogus" }

func kind(t *testing.T, src string) types.Kind {
	k, err := parse.Kind(src)
	if err != nil {
		t.Fatal(err)
	}
	return k
}

func TestUnifier(t *testing.T) {
	s := newTestStore()
	for _, c := range []struct {
		a, b, expected string
	}{
		{"int", "number", "int"},
		{"number", "int", "int"},
		{"int", "int", "int"},
		{"int", "string", "any"},
		{"'a", "int", "int"},
		{"int", "'a", "int"},
		{"'b", "'a", "'a"},
		{"'a", "'b", "'a"},
		{"'R", "'a", "'a"},
		{"'a", "'R", "'a"},
		{"'S", "'R", "'R"},
		{"function", "(int -> int)", "(int -> int)"},
		{"(int -> int)", "'a", "(int -> int)"},
		{"( -> int)", "(int -> int)", "(int -> int)"},
		{"(int -> int)", "( -> int)", "(int -> int)"},
		{"(int -> bool)", "(string -> int)", "(string -> int)"},
		{"self", "(int -> int)", "(int -> int)"},
		{"(int -> int)", "self", "(int -> int)"},
		{"self", "self", "self"},
	} {
		u, err := s.Unifier(kind(t, c.a), kind(t, c.b))
		if err != nil {
			t.Fatalf("%s, %s: %v", c.a, c.b, err)
		}
		if u.String() != c.expected {
			t.Fatalf("%s, %s: expected %s, found %s", c.a, c.b, c.expected, u)
		}
	}
}

func TestUnifierVectors(t *testing.T) {
	s := newTestStore()
	short, long := stack(t, "int"), stack(t, "int bool")
	for _, c := range []struct {
		a, b, expected types.Kind
	}{
		{short, long, long},
		{long, short, long},
		{long, stack(t, "'a 'b"), stack(t, "'a 'b")},
		{tInt, long, long},
		{long, tv("'a"), long},
		{nil, long, long},
		{long, nil, long},
	} {
		u, err := s.Unifier(c.a, c.b)
		if err != nil {
			t.Fatal(err)
		}
		if !types.Equal(u, c.expected) {
			t.Fatalf("expected %s, found %s", constraintString(c.expected), constraintString(u))
		}
	}
}

func TestUnsupportedPairing(t *testing.T) {
	s := newTestStore()
	_, err := s.Unifier(bogusKind{}, bogusKind{})
	if !errors.Is(err, ErrEngineDefect) {
		t.Fatalf("expected an engine defect, got %v", err)
	}
	var pairing *UnsupportedPairingError
	if !errors.As(err, &pairing) {
		t.Fatalf("expected an unsupported pairing, got %T", err)
	}
}

func TestChainedResolution(t *testing.T) {
	s := newTestStore()
	for _, c := range []struct {
		name string
		kind types.Kind
	}{
		{"'a", parse.MustFunction("('b -> 'c)")},
		{"'b", tInt},
		{"'c", tv("'d")},
		{"'d", tBool},
	} {
		if err := s.AddConstraint(c.name, c.kind); err != nil {
			t.Fatal(err)
		}
	}
	expectUnifiers(t, s, map[string]string{
		"'a": "(int -> bool)",
		"'b": "int",
		"'c": "bool",
		"'d": "bool",
	})
}

func TestStackVariableSplicing(t *testing.T) {
	s := newTestStore()
	if err := s.AddConstraint("'R", stack(t, "int string")); err != nil {
		t.Fatal(err)
	}
	if err := s.AddConstraint("'f", parse.MustFunction("('R -> 'R bool)")); err != nil {
		t.Fatal(err)
	}
	expectUnifiers(t, s, map[string]string{
		"'R": "[int string]",
		"'f": "(int string -> int string bool)",
	})
}

func TestResolveKindIsIdempotent(t *testing.T) {
	s := newTestStore()
	if err := s.AddVectorConstraint(stack(t, "'R 'a"), stack(t, "string int")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Solve(); err != nil {
		t.Fatal(err)
	}
	f := parse.MustFunction("('R 'a -> 'R 'b)")
	once := s.ResolveKind(f)
	twice := s.ResolveKind(once)
	if !types.Equal(once, twice) {
		t.Fatalf("expected %s, found %s", once, twice)
	}
	if once.String() != "(string int -> string 'b)" {
		t.Fatalf("unexpected resolution: %s", once)
	}
}

func TestResetStore(t *testing.T) {
	s := newTestStore()
	if err := s.AddConstraint("'a", tInt); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Solve(); err != nil {
		t.Fatal(err)
	}
	s.Reset()
	if len(s.Names()) != 0 || s.String() != "" {
		t.Fatalf("expected an empty store, got:\n%s", s)
	}
	u, err := s.Solve()
	if err != nil {
		t.Fatal(err)
	}
	if len(u) != 0 {
		t.Fatalf("expected no unifiers, got %v", u)
	}
	if err := s.AddConstraint("'a", tString); err != nil {
		t.Fatal(err)
	}
	expectUnifiers(t, s, map[string]string{"'a": "string"})
}
