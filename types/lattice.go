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
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/wdamron/catinfer/internal/util"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

const (
	// TopTypeName is the name of the top type of the default lattice.
	TopTypeName = "any"
	// FunctionTypeName is the nominal type which all function types are subtypes of.
	FunctionTypeName = "function"
)

// Subtyper is a partial order over nominal type names.
type Subtyper interface {
	// IsSubtypeOf returns true if sub is a (reflexive, transitive) subtype of super.
	IsSubtypeOf(sub, super string) bool
	// Top returns the name of the type which every type is a subtype of.
	Top() string
}

// Lattice is a Subtyper declared as a set of direct-supertype edges, with aliases.
//
// A Lattice may be read concurrently once it is fully declared.
type Lattice struct {
	top     string
	aliases map[string]string
	parents map[string][]string
}

var _ Subtyper = (*Lattice)(nil)

// Create an empty lattice with the given top type.
func NewLattice(top string) *Lattice {
	return &Lattice{
		top:     top,
		aliases: make(map[string]string),
		parents: make(map[string][]string),
	}
}

// Top returns the name of the top type.
func (l *Lattice) Top() string { return l.top }

// Declare a nominal type along with its direct supertypes.
func (l *Lattice) Declare(name string, parents ...string) {
	existing := l.parents[name]
	for _, p := range parents {
		if !slices.Contains(existing, p) {
			existing = append(existing, p)
		}
	}
	l.parents[name] = existing
}

// Alias declares name as another name for target.
func (l *Lattice) Alias(name, target string) { l.aliases[name] = target }

// Canonical resolves aliases for name.
func (l *Lattice) Canonical(name string) string {
	for i := 0; i <= len(l.aliases); i++ {
		target, ok := l.aliases[name]
		if !ok {
			return name
		}
		name = target
	}
	return name
}

// IsSubtypeOf returns true if sub is a (reflexive, transitive) subtype of super.
func (l *Lattice) IsSubtypeOf(sub, super string) bool {
	sub, super = l.Canonical(sub), l.Canonical(super)
	if sub == super || super == l.top {
		return true
	}
	seen := map[string]bool{sub: true}
	stack := append([]string(nil), l.parents[sub]...)
	for len(stack) > 0 {
		name := l.Canonical(stack[len(stack)-1])
		stack = stack[:len(stack)-1]
		if name == super {
			return true
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		stack = append(stack, l.parents[name]...)
	}
	return false
}

// Validate checks that every supertype is declared and that the lattice is acyclic.
func (l *Lattice) Validate() error {
	if l.top == "" {
		return errors.New("Lattice has no top type")
	}
	names := maps.Keys(l.parents)
	slices.Sort(names)
	index := make(map[string]int, len(names)+1)
	for i, name := range names {
		index[name] = i
	}
	if _, ok := index[l.top]; !ok {
		index[l.top] = len(names)
		names = append(names, l.top)
	}
	for alias, target := range l.aliases {
		if _, ok := index[l.Canonical(target)]; !ok {
			return fmt.Errorf("Alias %s refers to undeclared type %s", alias, target)
		}
	}
	g := util.NewGraph(len(names))
	for _, name := range names {
		for _, p := range l.parents[name] {
			to, ok := index[l.Canonical(p)]
			if !ok {
				return fmt.Errorf("Type %s has undeclared supertype %s", name, p)
			}
			g.AddEdge(index[name], to)
		}
	}
	for _, scc := range g.SCC() {
		if len(scc) > 1 || g.HasEdge(scc[0], scc[0]) {
			return fmt.Errorf("Subtype cycle through %s", names[scc[0]])
		}
	}
	return nil
}

type latticeFile struct {
	Top     string              `yaml:"top"`
	Aliases map[string]string   `yaml:"aliases"`
	Types   map[string][]string `yaml:"types"`
}

// Parse a lattice from its YAML form:
//
//	top: any
//	aliases: {var: any}
//	types: {int: [number], number: [any]}
func ParseLattice(data []byte) (*Lattice, error) {
	var f latticeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("Invalid lattice: %w", err)
	}
	return f.build()
}

// Load a lattice from a YAML stream.
func LoadLattice(r io.Reader) (*Lattice, error) {
	var f latticeFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("Invalid lattice: %w", err)
	}
	return f.build()
}

func (f *latticeFile) build() (*Lattice, error) {
	top := f.Top
	if top == "" {
		top = TopTypeName
	}
	l := NewLattice(top)
	for alias, target := range f.Aliases {
		l.Alias(alias, target)
	}
	for name, parents := range f.Types {
		l.Declare(name, parents...)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

//go:embed lattice.yaml
var defaultLatticeYAML []byte

var (
	defaultLattice     *Lattice
	defaultLatticeOnce sync.Once
)

// DefaultLattice returns the built-in lattice of nominal types, with `any` as the top type.
func DefaultLattice() *Lattice {
	defaultLatticeOnce.Do(func() {
		l, err := ParseLattice(defaultLatticeYAML)
		if err != nil {
			panic("invalid default lattice: " + err.Error())
		}
		defaultLattice = l
	})
	return defaultLattice
}

// IsSubtype extends a Subtyper from nominal types to kinds. Function types (and Self) are subtypes
// of the nominal `function` type; every kind is a subtype of the top type.
func IsSubtype(st Subtyper, sub, super Kind) bool {
	if Equal(sub, super) {
		return true
	}
	s, ok := super.(*Simple)
	if !ok {
		return false
	}
	if st == nil {
		return s.Name == TopTypeName
	}
	switch sub := sub.(type) {
	case *Simple:
		return st.IsSubtypeOf(sub.Name, s.Name)
	case *Function, *Self:
		return st.IsSubtypeOf(FunctionTypeName, s.Name)
	}
	return st.IsSubtypeOf(st.Top(), s.Name)
}
