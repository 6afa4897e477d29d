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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wdamron/catinfer"
	"github.com/wdamron/catinfer/ast"
	"github.com/wdamron/catinfer/parse"
	"github.com/wdamron/catinfer/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Config is read from a YAML file:
//
//	lattice: types.yaml
//	lenient_arity: false
//	verbose: false
//	words:
//	  dup: ('a -> 'a 'a)
//	definitions:
//	  sq: dup mul
type Config struct {
	// Lattice is a path to a subtype lattice, relative to the config file. The embedded
	// default lattice is used when empty.
	Lattice      string            `yaml:"lattice,omitempty"`
	LenientArity bool              `yaml:"lenient_arity,omitempty"`
	Verbose      bool              `yaml:"verbose,omitempty"`
	Words        map[string]string `yaml:"words,omitempty"`
	Definitions  map[string]string `yaml:"definitions,omitempty"`

	dir string
}

// LoadConfig reads the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// ParseConfig decodes a config file.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadLattice returns the configured lattice, or the default lattice.
func (c *Config) LoadLattice() (*types.Lattice, error) {
	if c.Lattice == "" {
		return types.DefaultLattice(), nil
	}
	path := c.Lattice
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.dir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return types.LoadLattice(f)
}

// WordNames returns the sorted names of the declared words.
func (c *Config) WordNames() []string {
	names := maps.Keys(c.Words)
	slices.Sort(names)
	return names
}

// Env declares every word which has a valid signature. Parse errors are returned by name.
func (c *Config) Env() (*catinfer.WordEnv, map[string]error) {
	env := catinfer.NewWordEnv(nil)
	var errs map[string]error
	for name, sig := range c.Words {
		if err := env.DeclareSignature(name, sig); err != nil {
			if errs == nil {
				errs = make(map[string]error)
			}
			errs[name] = err
		}
	}
	return env, errs
}

// ParseDefinitions parses the bodies of the definitions, sorted by name.
func (c *Config) ParseDefinitions() ([]*ast.Definition, error) {
	names := maps.Keys(c.Definitions)
	slices.Sort(names)
	defs := make([]*ast.Definition, 0, len(names))
	for _, name := range names {
		def, err := parse.Definition(name, c.Definitions[name])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}
