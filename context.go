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

package kan

import (
	"github.com/kanlang/kan/ast"
	"github.com/kanlang/kan/internal/astutil"
	"github.com/kanlang/kan/val"
)

// DefaultFuel bounds the number of recursive steps a single kernel call
// may take across evaluation, Kan operations, readback and checking.
const DefaultFuel = 1 << 20

// Context is a reusable context for evaluation, normalization and
// checking. Each call is a fresh derivation: no state beyond the recorded
// error survives between calls.
//
// A context cannot be used concurrently; independent contexts may run in
// parallel over shared, read-only scopes.
type Context struct {
	limit int
	fuel  int

	// High-water marks of the fresh-variable levels allocated during the
	// current call. Conversion checks started from values alone (the
	// runtime face-agreement precondition) quote at these levels, so
	// their fresh variables cannot capture a free variable already in
	// play.
	maxLevel    int
	maxDimLevel int

	err        error
	invalid    ast.Term
	needsReset bool
}

// Create a new kernel context. A context may be reused across calls.
func NewContext() *Context { return &Context{limit: DefaultFuel} }

// SetFuel bounds the recursion budget for each subsequent call. Exceeding
// the budget surfaces as a NonTermination error, never a stack overflow.
func (c *Context) SetFuel(limit int) { c.limit = limit }

// Get the error which caused the previous call to fail.
func (c *Context) Error() error { return c.err }

// Get the term which caused the previous call to fail.
func (c *Context) InvalidTerm() ast.Term { return c.invalid }

func (c *Context) begin() {
	if c.needsReset {
		c.err, c.invalid = nil, nil
	}
	c.fuel, c.needsReset = c.limit, true
	c.maxLevel, c.maxDimLevel = 0, 0
}

// noteLevels records binder depths as fresh variables are allocated.
func (c *Context) noteLevels(l, dl int) {
	if l > c.maxLevel {
		c.maxLevel = l
	}
	if dl > c.maxDimLevel {
		c.maxDimLevel = dl
	}
}

// step consumes one unit of fuel; structural recursion throughout the
// kernel calls it before descending.
func (c *Context) step() error {
	c.fuel--
	if c.fuel < 0 {
		return nonTerminationError()
	}
	return nil
}

// terr records the first failing term and its error.
func (c *Context) terr(t ast.Term, err error) error {
	if c.err == nil {
		c.err, c.invalid = err, t
	}
	return err
}

// Eval evaluates a term to a semantic value under the given environments.
// Every variable index must resolve within the supplied environments;
// violations are contract breaches reported as UnboundVariable.
func (c *Context) Eval(t ast.Term, env val.Env, dims val.DimEnv) (val.Value, error) {
	c.begin()
	c.noteLevels(env.Len(), dims.Len())
	if err := c.scopeCheck(t, env.Len(), dims.Len()); err != nil {
		return nil, err
	}
	v, err := c.eval(t, env, dims)
	if err != nil {
		return nil, c.terr(t, err)
	}
	return v, nil
}

// Infer synthesizes the type of t within scope.
func (c *Context) Infer(t ast.Term, s *Scope) (val.Value, error) {
	c.begin()
	if t == nil {
		return nil, c.terr(nil, cannotInferError(nil))
	}
	c.noteLevels(s.Len(), s.DimLen())
	if err := c.scopeCheck(t, s.Len(), s.DimLen()); err != nil {
		return nil, err
	}
	ty, err := c.inferTerm(s, t)
	if err != nil {
		return nil, c.terr(t, err)
	}
	return ty, nil
}

// Check checks t against an expected type value within scope.
func (c *Context) Check(t ast.Term, expected val.Value, s *Scope) error {
	c.begin()
	if t == nil {
		return c.terr(nil, cannotInferError(nil))
	}
	c.noteLevels(s.Len(), s.DimLen())
	if err := c.scopeCheck(t, s.Len(), s.DimLen()); err != nil {
		return err
	}
	if err := c.checkTerm(s, t, expected); err != nil {
		return c.terr(t, err)
	}
	return nil
}

// Normalize evaluates t within scope and reads the result back into
// canonical syntax.
func (c *Context) Normalize(t ast.Term, s *Scope) (ast.Term, error) {
	c.begin()
	c.noteLevels(s.Len(), s.DimLen())
	if err := c.scopeCheck(t, s.Len(), s.DimLen()); err != nil {
		return nil, err
	}
	v, err := c.eval(t, s.Env(), s.DimEnv())
	if err != nil {
		return nil, c.terr(t, err)
	}
	nf, err := c.quote(s.Len(), s.DimLen(), v)
	if err != nil {
		return nil, c.terr(t, err)
	}
	return nf, nil
}

func (c *Context) scopeCheck(t ast.Term, termDepth, dimDepth int) error {
	if err := astutil.ScopeCheck(t, termDepth, dimDepth); err != nil {
		se := err.(*astutil.ScopeError)
		if se.Face {
			return c.terr(t, invalidFaceError(se.Error()))
		}
		return c.terr(t, unboundError(se.Index))
	}
	return nil
}
