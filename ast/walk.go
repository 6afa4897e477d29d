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

package ast

// WalkTerm calls f for t and, for quotations, for every nested term.
func WalkTerm(t Term, f func(Term)) {
	f(t)
	if q, ok := t.(*Quotation); ok {
		for _, nested := range q.Terms {
			WalkTerm(nested, f)
		}
	}
}

// WalkTerms calls WalkTerm for each term.
func WalkTerms(ts []Term, f func(Term)) {
	for _, t := range ts {
		WalkTerm(t, f)
	}
}

// References returns the names of words referenced (at any depth) by ts, in order of first appearance.
func References(ts []Term) []string {
	seen := make(map[string]bool)
	var names []string
	WalkTerms(ts, func(t Term) {
		if w, ok := t.(*Word); ok && !seen[w.Name] {
			seen[w.Name] = true
			names = append(names, w.Name)
		}
	})
	return names
}

// Refers returns true if ts references any of the given word names.
func Refers(ts []Term, names map[string]bool) bool {
	found := false
	WalkTerms(ts, func(t Term) {
		if w, ok := t.(*Word); ok && names[w.Name] {
			found = true
		}
	})
	return found
}
