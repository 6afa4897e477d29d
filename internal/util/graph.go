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

// Graph is a directed graph over vertices [0, n), stored as adjacency lists.
type Graph [][]int

func NewGraph(numVerts int) Graph { return Graph(make([][]int, numVerts)) }

func (g Graph) AddEdge(from, to int) {
	if !g.HasEdge(from, to) {
		g[from] = append(g[from], to)
	}
}

func (g Graph) HasEdge(from, to int) bool {
	for _, succ := range g[from] {
		if succ == to {
			return true
		}
	}
	return false
}

// IsCyclic returns true if the component contains more than one vertex or a self-edge.
func (g Graph) IsCyclic(component []int) bool {
	return len(component) > 1 || (len(component) == 1 && g.HasEdge(component[0], component[0]))
}

// SCC returns the strongly connected components of g. Every component is emitted after
// all components reachable from it, so dependencies (edge targets) come first.
func (g Graph) SCC() [][]int {
	state := sccState{
		indexTable: make([]int, len(g)),
		lowLink:    make([]int, len(g)),
		onStack:    make([]bool, len(g)),
	}
	for v := range g {
		if state.indexTable[v] == 0 {
			g.tarjan(&state, v)
		}
	}
	return state.sccs
}

// DependencyOrder flattens SCC into a single order in which edge targets precede their sources,
// except within cycles.
func (g Graph) DependencyOrder() []int {
	order := make([]int, 0, len(g))
	for _, c := range g.SCC() {
		order = append(order, c...)
	}
	return order
}

type sccState struct {
	index      int
	indexTable []int
	lowLink    []int
	onStack    []bool

	stack []int
	sccs  [][]int
}

// Tarjan's algorithm, based on https://github.com/gonum/gonum/blob/master/graph/topo/tarjan.go
func (g Graph) tarjan(state *sccState, v int) {
	state.index++
	state.indexTable[v] = state.index
	state.lowLink[v] = state.index
	state.stack = append(state.stack, v)
	state.onStack[v] = true

	for _, succ := range g[v] {
		switch {
		case state.indexTable[succ] == 0:
			g.tarjan(state, succ)
			if state.lowLink[succ] < state.lowLink[v] {
				state.lowLink[v] = state.lowLink[succ]
			}
		case state.onStack[succ]:
			if state.indexTable[succ] < state.lowLink[v] {
				state.lowLink[v] = state.indexTable[succ]
			}
		}
	}

	if state.lowLink[v] != state.indexTable[v] {
		return
	}
	var component []int
	for {
		top := state.stack[len(state.stack)-1]
		state.stack = state.stack[:len(state.stack)-1]
		state.onStack[top] = false
		component = append(component, top)
		if top == v {
			break
		}
	}
	state.sccs = append(state.sccs, component)
}
