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

	"github.com/wdamron/catinfer/types"
)

// Name prefixes log messages from the constraint store.
const Name = "constraints"

// DepthLimit bounds the nesting of constraints triggered by a single call into the store.
const DepthLimit = 1000

// Store records, for each variable name, the equivalence class of kinds the variable must equal.
//
// Classes live in an arena and are joined with a union-find: merging a class into another leaves
// a parent link behind, so every name registered for the merged class reaches the surviving one.
// A Store holds the state of a single inference pass and cannot be used concurrently.
type Store struct {
	// Subtypes orders nominal types. When nil, nominal types are only compatible with
	// themselves and with `any`.
	Subtypes types.Subtyper
	// LenientArity stops vector unification at the shorter vector without reporting
	// a mismatch, even if neither vector ends with a stack-variable.
	LenientArity bool
	// Verbose enables logging of merges and reductions through Logf.
	Verbose bool
	// Logf receives log messages. Warnings are logged even when Verbose is false.
	Logf func(format string, v ...interface{})

	classes  []class
	parent   []int
	index    map[string]int
	names    []string
	unifiers map[string]types.Kind
	depth    int
}

type class struct {
	kinds []types.Kind
}

// NewStore creates an empty constraint store.
func NewStore(subtypes types.Subtyper) *Store {
	s := &Store{Subtypes: subtypes}
	s.Init()
	return s
}

func (s *Store) Init() {
	if s.index == nil {
		s.index = make(map[string]int, 16)
	}
	if s.unifiers == nil {
		s.unifiers = make(map[string]types.Kind, 16)
	}
}

// Reset clears all classes and resolved unifiers. Options are kept.
func (s *Store) Reset() {
	for i := range s.classes {
		s.classes[i] = class{}
	}
	s.classes, s.parent, s.names = s.classes[:0], s.parent[:0], s.names[:0]
	for k := range s.index {
		delete(s.index, k)
	}
	for k := range s.unifiers {
		delete(s.unifiers, k)
	}
	s.depth = 0
}

func (s *Store) logf(format string, v ...interface{}) {
	if s.Verbose && s.Logf != nil {
		s.Logf(Name+": "+format, v...)
	}
}

func (s *Store) warnf(format string, v ...interface{}) {
	if s.Logf != nil {
		s.Logf(Name+": warning: "+format, v...)
	}
}

func (s *Store) enter() error {
	s.depth++
	if s.depth > DepthLimit {
		return defectf("constraint depth limit (%d) exceeded", DepthLimit)
	}
	return nil
}

func (s *Store) leave() { s.depth-- }

func (s *Store) find(id int) int {
	root := id
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for s.parent[id] != root {
		s.parent[id], id = root, s.parent[id]
	}
	return root
}

func (s *Store) newClass() int {
	id := len(s.classes)
	s.classes = append(s.classes, class{})
	s.parent = append(s.parent, id)
	return id
}

func (s *Store) register(name string, id int) {
	s.index[name] = id
	s.names = append(s.names, name)
}

// classOf returns the live class for a variable name, if the name is registered.
func (s *Store) classOf(name string) (int, bool) {
	id, ok := s.index[name]
	if !ok {
		return 0, false
	}
	root := s.find(id)
	s.index[name] = root
	return root, true
}

// Class returns the members of the class which name belongs to.
func (s *Store) Class(name string) []types.Kind {
	id, ok := s.classOf(name)
	if !ok {
		return nil
	}
	return s.classes[id].kinds
}

// SameClass returns true if both names are registered in the same class.
func (s *Store) SameClass(a, b string) bool {
	ida, oka := s.classOf(a)
	idb, okb := s.classOf(b)
	return oka && okb && ida == idb
}

// Names returns the registered variable names in registration order.
func (s *Store) Names() []string { return s.names }

// AddConstraint records that the variable name must equal k.
func (s *Store) AddConstraint(name string, k types.Kind) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.leave()

	if kname, ok := types.VarName(k); ok && kname == name {
		return nil
	}
	if v, ok := k.(*types.Vector); ok && v.Len() == 1 {
		return s.AddConstraint(name, v.Top())
	}

	id, ok := s.classOf(name)
	if !ok {
		id = s.newClass()
		s.register(name, id)
	}

	if kname, ok := types.VarName(k); ok {
		if other, exists := s.classOf(kname); exists && other != id {
			if err := s.merge(other, id); err != nil {
				return err
			}
		}
	}
	return s.admit(id, k)
}

// merge drains src into dst. Members are admitted one at a time, since each admission may unify
// against the members of dst and trigger further merges.
func (s *Store) merge(src, dst int) error {
	src, dst = s.find(src), s.find(dst)
	if src == dst {
		return nil
	}
	s.logf("merge %s into %s", s.classString(src), s.classString(dst))
	s.parent[src] = dst
	for len(s.classes[src].kinds) > 0 {
		k := s.classes[src].kinds[0]
		s.classes[src].kinds = s.classes[src].kinds[1:]
		if err := s.admit(dst, k); err != nil {
			return err
		}
	}
	s.classes[src].kinds = nil
	return nil
}

// admit adds k to the class id, keeping the members of the class mutually unified.
func (s *Store) admit(id int, k types.Kind) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.leave()

	if s.contains(id, k) {
		return nil
	}

	switch k := k.(type) {
	case *types.Function, *types.Self:
		for i := 0; ; i++ {
			members := s.classes[s.find(id)].kinds
			if i >= len(members) {
				break
			}
			if types.IsFunction(members[i]) {
				if err := s.AddFunctionConstraint(k, members[i]); err != nil {
					return err
				}
			}
		}
	case *types.Vector:
		for i := 0; ; i++ {
			members := s.classes[s.find(id)].kinds
			if i >= len(members) {
				break
			}
			if v, ok := members[i].(*types.Vector); ok {
				if err := s.AddVectorConstraint(k, v); err != nil {
					return err
				}
			}
		}
	}

	// unification may have merged the class into another
	id = s.find(id)
	if s.contains(id, k) {
		return nil
	}
	s.classes[id].kinds = append(s.classes[id].kinds, k)

	if name, ok := types.VarName(k); ok {
		if other, exists := s.classOf(name); exists {
			return s.merge(other, id)
		}
		s.register(name, id)
	}
	return nil
}

func (s *Store) contains(id int, k types.Kind) bool {
	for _, existing := range s.classes[s.find(id)].kinds {
		if types.Equal(existing, k) {
			return true
		}
	}
	return false
}

// liveClasses returns the ids of classes which have not been merged away, in creation order.
func (s *Store) liveClasses() []int {
	var ids []int
	for id := range s.classes {
		if s.find(id) == id {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *Store) classString(id int) string {
	var sb strings.Builder
	for i, k := range s.classes[id].kinds {
		if i > 0 {
			sb.WriteString(" = ")
		}
		sb.WriteString(constraintString(k))
	}
	return sb.String()
}

func constraintString(k types.Kind) string {
	if v, ok := k.(*types.Vector); ok {
		return "[" + types.VectorString(v) + "]"
	}
	return types.KindString(k)
}

// String lists each equivalence class on its own line, as `k1 = k2 = ...`.
func (s *Store) String() string {
	var sb strings.Builder
	for _, id := range s.liveClasses() {
		if len(s.classes[id].kinds) == 0 {
			continue
		}
		sb.WriteString(s.classString(id))
		sb.WriteByte('\n')
	}
	return sb.String()
}
