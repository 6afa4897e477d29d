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

package catinfer

import (
	"errors"

	"github.com/wdamron/catinfer/ast"
	"github.com/wdamron/catinfer/internal/typeutil"
	"github.com/wdamron/catinfer/types"
)

// Name prefixes messages logged by a Context.
const Name = "catinfer"

var (
	// ErrUnknownWord is wrapped by errors for words which are not declared in the word-environment.
	ErrUnknownWord = errors.New("Unknown word")
	// ErrEmptyTerms is returned when a term is missing from a function body.
	ErrEmptyTerms = errors.New("Empty term")
)

// Context is a reusable context for stack-effect inference.
//
// A context cannot be used concurrently.
type Context struct {
	needsReset bool

	store typeutil.Store
	vars  typeutil.VarTracker

	verbose bool
	logf    func(format string, v ...interface{})

	// definitions which are being inferred; references to them are treated as recursive
	pending     map[string]bool
	annotations []annotation

	err     error
	invalid ast.Term

	// initial space:
	_annotations [32]annotation
}

type annotation struct {
	term   ast.Term
	effect *types.Function
}

type annotatable interface {
	SetType(f *types.Function)
}

// Create a new inference context with the default subtype lattice. A context may be reused for inference.
func NewContext() *Context {
	ctx := &Context{}
	ctx.store.Init()
	ctx.store.Subtypes = types.DefaultLattice()
	ctx.annotations = ctx._annotations[:0]
	return ctx
}

func (ctx *Context) reset() {
	ctx.store.Reset()
	ctx.vars.Reset()
	for i := range ctx.annotations {
		ctx.annotations[i] = annotation{}
	}
	ctx.annotations, ctx.err, ctx.invalid, ctx.needsReset = ctx.annotations[:0], nil, nil, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ctx *Context) Reset() {
	if !ctx.needsReset {
		return
	}
	ctx.reset()
}

// Set the subtype lattice used to order nominal types. When st is nil, nominal types are only
// compatible with themselves and with `any`.
func (ctx *Context) SetLattice(st types.Subtyper) { ctx.store.Subtypes = st }

// Lenient arity stops the unification of two stacks at the end of the shorter stack, without
// reporting a mismatch when neither stack ends with a stack-variable.
//
// By default, lenient arity is disabled.
func (ctx *Context) EnableLenientArity(enabled bool) { ctx.store.LenientArity = enabled }

// Set the function which receives log messages. Warnings are always logged; when verbose is true,
// merges and reductions of constraints are also logged. A nil logf disables logging.
func (ctx *Context) SetLogger(verbose bool, logf func(format string, v ...interface{})) {
	ctx.verbose, ctx.logf = verbose, logf
	ctx.store.Verbose, ctx.store.Logf = verbose, logf
}

func (ctx *Context) log(format string, v ...interface{}) {
	if ctx.verbose && ctx.logf != nil {
		ctx.logf(Name+": "+format, v...)
	}
}

// Get the error which caused inference to fail.
func (ctx *Context) Error() error { return ctx.err }

// Get the term which caused inference to fail.
func (ctx *Context) InvalidTerm() ast.Term { return ctx.invalid }

// Get the resolved unifiers of the most recent inference pass, keyed by variable name.
func (ctx *Context) Unifiers() map[string]types.Kind { return ctx.store.Unifiers() }

// Get the equivalence classes of the most recent inference pass, one class per line.
func (ctx *Context) Constraints() string { return ctx.store.String() }

func (ctx *Context) begin() {
	if ctx.needsReset {
		ctx.reset()
	}
	ctx.needsReset = true
}

// Compose infers the stack effect of f followed by g.
//
// The production of f is unified with the consumption of g. Values produced by f which g does not
// consume remain on the stack below the production of g; values consumed by g which f does not
// produce are consumed below the consumption of f.
func (ctx *Context) Compose(f, g *types.Function) (*types.Function, error) {
	if f == nil || g == nil {
		return nil, ErrEmptyTerms
	}
	return ctx.ComposeAll(f, g)
}

// ComposeAll infers the stack effect of fs applied in order, within a single inference pass.
// The stack effect of an empty sequence is `( -> )`.
func (ctx *Context) ComposeAll(fs ...*types.Function) (*types.Function, error) {
	ctx.begin()
	acc := ctx.identity()
	for _, f := range fs {
		if f == nil {
			ctx.err = ErrEmptyTerms
			return nil, ctx.err
		}
		var err error
		if acc, err = ctx.compose(acc, ctx.instantiate(f)); err != nil {
			ctx.err = err
			return nil, err
		}
	}
	return ctx.finish(acc)
}

// Infer the stack effect of a function body within env. Each term of the body will be annotated
// with its own stack effect.
//
// A word-environment cannot be used concurrently for inference; to share a word-environment
// across threads, create a new word-environment for each thread which inherits from the
// shared environment.
func (ctx *Context) Infer(terms []ast.Term, env *WordEnv) (*types.Function, error) {
	ctx.begin()
	ctx.log("infer %s", ast.TermsString(terms))
	acc, err := ctx.inferTerms(env, terms)
	if err != nil {
		ctx.err = err
		return nil, err
	}
	f, err := ctx.finish(acc)
	if err != nil {
		return nil, err
	}
	for _, a := range ctx.annotations {
		if t, ok := a.term.(annotatable); ok {
			t.SetType(ctx.finalize(a.effect))
		}
	}
	return f, nil
}

// compose adds the constraints for f followed by g to the current pass.
func (ctx *Context) compose(f, g *types.Function) (*types.Function, error) {
	if err := ctx.store.AddVectorConstraint(f.Prod, g.Cons); err != nil {
		return nil, err
	}
	return types.NewFunction(f.Cons, g.Prod, f.SideEffects || g.SideEffects), nil
}

// finish solves the constraints of the current pass and returns the finalized stack effect of f.
func (ctx *Context) finish(f *types.Function) (*types.Function, error) {
	if _, err := ctx.store.Solve(); err != nil {
		ctx.err = err
		return nil, err
	}
	result := ctx.finalize(f)
	ctx.log("inferred %s", result)
	return result, nil
}

func (ctx *Context) finalize(f *types.Function) *types.Function {
	resolved := ctx.store.ResolveKind(f).(*types.Function)
	return Generalize(CloseEffects(resolved)).(*types.Function)
}
