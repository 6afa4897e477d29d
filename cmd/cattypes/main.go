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

// cattypes prints the inferred stack effects of words and function bodies.
//
//	cattypes dump -config words.yaml
//	cattypes query -config words.yaml "dup eq"
//	cattypes defs -config words.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	"github.com/wdamron/catinfer"
	"github.com/wdamron/catinfer/parse"
)

const usage = `usage: cattypes <command> [-config file] [args]

commands:
  dump    print the canonical stack effect of every declared word
  query   infer the stack effect of a function body
  defs    infer the definitions of the config file in dependency order
`

func main() {
	color := colorEnabled(os.Stdout)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, color))
}

func colorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type command struct {
	cfg    *Config
	ctx    *catinfer.Context
	env    *catinfer.WordEnv
	errs   map[string]error
	out    io.Writer
	color  bool
	failed bool
}

func run(args []string, stdout, stderr io.Writer, color bool) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	name := args[0]
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "cattypes.yaml", "config file")
	verbose := fs.Bool("v", false, "log constraint merges and reductions")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	lattice, err := cfg.LoadLattice()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	cmd := &command{cfg: cfg, ctx: catinfer.NewContext(), out: stdout, color: color}
	logger := log.New(stderr, "", 0)
	cmd.ctx.SetLattice(lattice)
	cmd.ctx.EnableLenientArity(cfg.LenientArity)
	cmd.ctx.SetLogger(cfg.Verbose || *verbose, logger.Printf)
	cmd.env, cmd.errs = cfg.Env()

	switch name {
	case "dump":
		cmd.dump()
	case "query":
		if fs.NArg() == 0 {
			fmt.Fprint(stderr, usage)
			return 2
		}
		cmd.query(strings.Join(fs.Args(), " "))
	case "defs":
		if err := cmd.defs(); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%s", name, usage)
		return 2
	}
	if cmd.failed {
		return 1
	}
	return 0
}

func (c *command) errorf(format string, v ...interface{}) {
	c.failed = true
	line := fmt.Sprintf(format, v...)
	if c.color {
		line = "\x1b[31m" + line + "\x1b[0m"
	}
	fmt.Fprintln(c.out, line)
}

// dump prints `name<TAB>signature<TAB>canonical` for every declared word.
func (c *command) dump() {
	for _, name := range c.cfg.WordNames() {
		sig := c.cfg.Words[name]
		if err := c.errs[name]; err != nil {
			c.errorf("%s\t%s\terror:%v", name, sig, err)
			continue
		}
		f, _ := c.env.Lookup(name)
		canonical, err := c.ctx.ComposeAll(f)
		if err != nil {
			c.errorf("%s\t%s\terror:%v", name, sig, err)
			continue
		}
		fmt.Fprintf(c.out, "%s\t%s\t%s\n", name, sig, canonical)
	}
}

// query prints `<terms> : <type>` for a function body.
func (c *command) query(src string) {
	terms, err := parse.Terms(src)
	if err != nil {
		c.errorf("type could not be inferred: %v", err)
		return
	}
	f, err := c.ctx.Infer(terms, c.env)
	if err != nil {
		c.errorf("type could not be inferred: %v", err)
		return
	}
	fmt.Fprintf(c.out, "%s : %s\n", src, f)
}

// defs prints `name : type` for every definition, in dependency order.
func (c *command) defs() error {
	defs, err := c.cfg.ParseDefinitions()
	if err != nil {
		return err
	}
	results, _ := c.ctx.InferDefinitions(defs, c.env)
	width := lo.Max(lo.Map(results, func(r catinfer.DefinitionResult, _ int) int { return len(r.Name) }))
	for _, r := range results {
		if r.Err != nil {
			c.errorf("%-*s : error: %v", width, r.Name, r.Err)
			continue
		}
		fmt.Fprintf(c.out, "%-*s : %s\n", width, r.Name, r.Type)
	}
	return nil
}
