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
	"github.com/samber/lo"
	"github.com/wdamron/catinfer/internal/util"
	"github.com/wdamron/catinfer/types"
)

// Unifier picks a single representative for two members of an equivalence class.
//
// Function types win over everything else and larger consumption wins between functions;
// vectors win over scalars and longer vectors win between vectors; concrete kinds win over
// variables and the lexicographically smaller name wins between variables of the same sort. Between nominal
// types the subtype is kept; unrelated nominal types widen to the top type.
func (s *Store) Unifier(a, b types.Kind) (types.Kind, error) {
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}

	fa, fb := types.IsFunction(a), types.IsFunction(b)
	if fa || fb {
		if !fa {
			return b, nil
		}
		if !fb {
			return a, nil
		}
		fna, oka := a.(*types.Function)
		fnb, okb := b.(*types.Function)
		switch {
		case !oka && okb:
			return b, nil
		case oka && !okb:
			return a, nil
		case !oka && !okb:
			return b, nil
		}
		if fna.Cons.Len() > fnb.Cons.Len() {
			return a, nil
		}
		return b, nil
	}

	va, oka := a.(*types.Vector)
	vb, okb := b.(*types.Vector)
	if oka || okb {
		if !oka {
			return b, nil
		}
		if !okb {
			return a, nil
		}
		if va.Len() > vb.Len() {
			return a, nil
		}
		return b, nil
	}

	vara, varb := types.IsVar(a), types.IsVar(b)
	if vara || varb {
		if !vara {
			return a, nil
		}
		if !varb {
			return b, nil
		}
		// a stack-variable bound to a single slot is represented by the slot
		_, stacka := a.(*types.StackVar)
		_, stackb := b.(*types.StackVar)
		if stacka != stackb {
			if stacka {
				return b, nil
			}
			return a, nil
		}
		if a.String() <= b.String() {
			return a, nil
		}
		return b, nil
	}

	sa, oka := a.(*types.Simple)
	sb, okb := b.(*types.Simple)
	if oka && okb {
		switch {
		case types.IsSubtype(s.Subtypes, sa, sb):
			return a, nil
		case types.IsSubtype(s.Subtypes, sb, sa):
			return b, nil
		}
		top := types.TopTypeName
		if s.Subtypes != nil {
			top = s.Subtypes.Top()
		}
		s.warnf("unifying over %s: %s is not compatible with %s", top, sa.Name, sb.Name)
		return &types.Simple{Name: top}, nil
	}

	return nil, &UnsupportedPairingError{Left: a, Right: b}
}

// Solve reduces every equivalence class to a representative, then substitutes resolved variables
// into each representative. Variables are resolved after the variables their representative
// mentions, so chains of variables resolve completely; within a cycle, substitution happens once.
//
// The returned map is owned by the store and is valid until the next Reset.
func (s *Store) Solve() (map[string]types.Kind, error) {
	for k := range s.unifiers {
		delete(s.unifiers, k)
	}

	reps := make(map[int]types.Kind, len(s.classes))
	for _, id := range s.liveClasses() {
		members := s.classes[id].kinds
		if len(members) == 0 {
			if s.hasNames(id) {
				return nil, defectf("empty equivalence class for %s", s.classNames(id))
			}
			continue
		}
		if s.Verbose {
			s.logf("merging constraints: %s", s.classString(id))
		}
		var u types.Kind
		for _, k := range members {
			var err error
			if u, err = s.Unifier(u, k); err != nil {
				return nil, err
			}
		}
		if u == nil {
			return nil, defectf("no representative for %s", s.classNames(id))
		}
		s.logf("unified constraint = %s", constraintString(u))
		reps[id] = u
	}

	names := s.names
	position := make(map[string]int, len(names))
	for i, name := range names {
		position[name] = i
	}
	g := util.NewGraph(len(names))
	for i, name := range names {
		id, _ := s.classOf(name)
		rep, ok := reps[id]
		if !ok {
			return nil, defectf("missing representative for %s", name)
		}
		for _, dep := range types.FreeVars(rep) {
			if j, ok := position[dep]; ok {
				g.AddEdge(i, j)
			}
		}
	}

	for _, i := range g.DependencyOrder() {
		name := names[i]
		id, _ := s.classOf(name)
		s.unifiers[name] = s.ResolveKind(reps[id])
	}
	return s.unifiers, nil
}

func (s *Store) hasNames(id int) bool { return len(s.classNames(id)) > 0 }

func (s *Store) classNames(id int) []string {
	return lo.Filter(s.names, func(name string, _ int) bool {
		other, _ := s.classOf(name)
		return other == id
	})
}

// Unifiers returns the resolved kind of each variable after Solve.
func (s *Store) Unifiers() map[string]types.Kind { return s.unifiers }

// ResolveKind substitutes resolved variables into k. Unconstrained variables resolve to themselves.
//
// A stack-variable which resolves to a vector is spliced into the enclosing vector.
func (s *Store) ResolveKind(k types.Kind) types.Kind {
	switch k := k.(type) {
	case *types.TypeVar:
		if u, ok := s.unifiers[k.Name]; ok {
			return u
		}
		return k
	case *types.StackVar:
		if u, ok := s.unifiers[k.Name]; ok {
			return u
		}
		return k
	case *types.Vector:
		return s.resolveVector(k)
	case *types.Function:
		return &types.Function{
			Cons:        s.resolveVector(k.Cons),
			Prod:        s.resolveVector(k.Prod),
			SideEffects: k.SideEffects,
		}
	}
	return k
}

func (s *Store) resolveVector(v *types.Vector) *types.Vector {
	kinds := make([]types.Kind, 0, v.Len())
	v.Range(func(_ int, k types.Kind) bool {
		r := s.ResolveKind(k)
		if _, isStack := k.(*types.StackVar); isStack {
			if rv, ok := r.(*types.Vector); ok {
				kinds = append(kinds, rv.Kinds()...)
				return true
			}
		}
		kinds = append(kinds, r)
		return true
	})
	return types.NewVector(kinds...)
}
