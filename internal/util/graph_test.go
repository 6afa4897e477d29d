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

package util

import (
	"testing"
)

func TestSCCDependencyOrder(t *testing.T) {
	// 0 -> 1 -> 2, 3 <-> 4 -> 2
	g := NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)
	g.AddEdge(4, 3)
	g.AddEdge(4, 2)

	position := make(map[int]int)
	for i, v := range g.DependencyOrder() {
		position[v] = i
	}
	if len(position) != 5 {
		t.Fatalf("expected 5 vertices in order, got %d", len(position))
	}
	if !(position[2] < position[1] && position[1] < position[0]) {
		t.Fatalf("invalid order: %v", position)
	}
	if position[2] > position[3] || position[2] > position[4] {
		t.Fatalf("invalid order: %v", position)
	}

	cyclic := 0
	for _, c := range g.SCC() {
		if g.IsCyclic(c) {
			cyclic++
			if len(c) != 2 {
				t.Fatalf("expected a 2-vertex cycle, got %v", c)
			}
		}
	}
	if cyclic != 1 {
		t.Fatalf("expected 1 cyclic component, got %d", cyclic)
	}
}

func TestSelfEdgeIsCyclic(t *testing.T) {
	g := NewGraph(2)
	g.AddEdge(0, 0)
	g.AddEdge(0, 1)
	sccs := g.SCC()
	if len(sccs) != 2 {
		t.Fatalf("expected 2 components, got %v", sccs)
	}
	if !g.IsCyclic([]int{0}) || g.IsCyclic([]int{1}) {
		t.Fatalf("invalid cycle detection")
	}
	if g.AddEdge(0, 1); len(g[0]) != 2 {
		t.Fatalf("duplicate edge added: %v", g[0])
	}
}
