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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testConfig = `
lattice: lattice.yaml
words:
  dup: "('R 'a -> 'R 'a 'a)"
  eq: "('a 'a -> bool)"
  mul: "(int int -> int)"
  broken: "(int ->"
definitions:
  sq: dup mul
  quad: sq sq
  bad: frob
`

const testLattice = `
top: any
types:
  number: [any]
  int: [number]
  bool: [any]
`

func writeConfig(t *testing.T) string {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "lattice.yaml"), []byte(testLattice), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "cattypes.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, int) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr, false)
	return stdout.String(), code
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Lattice != "lattice.yaml" || len(cfg.Words) != 4 || len(cfg.Definitions) != 3 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if names := cfg.WordNames(); strings.Join(names, " ") != "broken dup eq mul" {
		t.Fatalf("unexpected names: %v", names)
	}
	env, errs := cfg.Env()
	if len(errs) != 1 || errs["broken"] == nil {
		t.Fatalf("expected a single parse error, got %v", errs)
	}
	if _, ok := env.Lookup("broken"); ok {
		t.Fatalf("expected broken to be skipped")
	}
}

func TestDump(t *testing.T) {
	path := writeConfig(t)
	out, code := runCommand(t, "dump", "-config", path)
	if code != 1 {
		t.Fatalf("expected a failure for the broken signature, got %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.HasPrefix(lines[0], "broken\t(int ->\terror:") {
		t.Fatalf("unexpected line: %s", lines[0])
	}
	for i, expected := range []string{
		"dup\t('R 'a -> 'R 'a 'a)\t('a -> 'a 'a)",
		"eq\t('a 'a -> bool)\t('a 'a -> bool)",
		"mul\t(int int -> int)\t(int int -> int)",
	} {
		if lines[i+1] != expected {
			t.Fatalf("expected %q, found %q", expected, lines[i+1])
		}
	}
}

func TestQuery(t *testing.T) {
	path := writeConfig(t)
	out, code := runCommand(t, "query", "-config", path, "dup eq")
	if code != 0 || out != "dup eq : ('a -> bool)\n" {
		t.Fatalf("unexpected output (%d): %s", code, out)
	}
	out, code = runCommand(t, "query", "-config", path, "1 dup eq mul")
	if code != 1 || !strings.HasPrefix(out, "type could not be inferred: ") {
		t.Fatalf("unexpected output (%d): %s", code, out)
	}
}

func TestDefs(t *testing.T) {
	path := writeConfig(t)
	out, code := runCommand(t, "defs", "-config", path)
	if code != 1 {
		t.Fatalf("expected a failure for bad, got %d", code)
	}
	for _, expected := range []string{
		"sq   : (int -> int)\n",
		"quad : (int -> int)\n",
		"bad  : error: bad: Unknown word: frob\n",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("expected %q in output:\n%s", expected, out)
		}
	}
	if strings.Index(out, "sq ") > strings.Index(out, "quad") {
		t.Fatalf("expected sq before quad:\n%s", out)
	}
}

func TestUsage(t *testing.T) {
	if _, code := runCommand(t); code != 2 {
		t.Fatalf("expected usage error, got %d", code)
	}
	if _, code := runCommand(t, "frob", "-config", writeConfig(t)); code != 2 {
		t.Fatalf("expected unknown command error, got %d", code)
	}
}
