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
	"github.com/kanlang/kan/val"
)

// inferTerm is the synthesis judgment. Introduction forms without
// annotations (λ and path abstractions) are only checkable and fail with
// CannotInfer; everything else synthesizes a type value.
func (c *Context) inferTerm(s *Scope, t ast.Term) (val.Value, error) {
	if err := c.step(); err != nil {
		return nil, err
	}

	switch t := t.(type) {
	case *ast.Universe:
		return &val.VUniverse{Level: t.Level + 1}, nil

	case *ast.Var:
		ty, ok := s.Type(t.Index)
		if !ok {
			return nil, c.terr(t, unboundError(t.Index))
		}
		return ty, nil

	case *ast.Pi:
		// Strict maximum rule: Π(x:A).B lives in Type(max(level A, level B)).
		domLevel, err := c.inferUniverse(s, t.Domain)
		if err != nil {
			return nil, err
		}
		dom, err := c.eval(t.Domain, s.Env(), s.DimEnv())
		if err != nil {
			return nil, err
		}
		inner := s.Bind(t.Name, dom)
		c.noteLevels(inner.Len(), inner.DimLen())
		codLevel, err := c.inferUniverse(inner, t.Codomain)
		if err != nil {
			return nil, err
		}
		level := domLevel
		if codLevel > level {
			level = codLevel
		}
		return &val.VUniverse{Level: level}, nil

	case *ast.App:
		ft, err := c.inferTerm(s, t.Func)
		if err != nil {
			return nil, err
		}
		pi, ok := ft.(*val.VPi)
		if !ok {
			return nil, c.terr(t, mismatchError("a function type", c.printValue(s, ft)))
		}
		if err := c.checkTerm(s, t.Arg, pi.Domain); err != nil {
			return nil, err
		}
		arg, err := c.eval(t.Arg, s.Env(), s.DimEnv())
		if err != nil {
			return nil, err
		}
		return c.applyClosure(pi.Codomain, arg)

	case *ast.PathType:
		level, err := c.inferUniverse(s, t.Type)
		if err != nil {
			return nil, err
		}
		ty, err := c.eval(t.Type, s.Env(), s.DimEnv())
		if err != nil {
			return nil, err
		}
		if err := c.checkTerm(s, t.Left, ty); err != nil {
			return nil, err
		}
		if err := c.checkTerm(s, t.Right, ty); err != nil {
			return nil, err
		}
		return &val.VUniverse{Level: level}, nil

	case *ast.SmoothPathType:
		if t.Order < 1 {
			return nil, c.terr(t, invalidKanError("smooth path type requires a positive differentiability order"))
		}
		level, err := c.inferUniverse(s, t.Type)
		if err != nil {
			return nil, err
		}
		ty, err := c.eval(t.Type, s.Env(), s.DimEnv())
		if err != nil {
			return nil, err
		}
		if err := c.checkTerm(s, t.Left, ty); err != nil {
			return nil, err
		}
		if err := c.checkTerm(s, t.Right, ty); err != nil {
			return nil, err
		}
		return &val.VUniverse{Level: level}, nil

	case *ast.PathApp:
		pt, err := c.inferTerm(s, t.Path)
		if err != nil {
			return nil, err
		}
		if _, err := evalDim(t.Dim, s.DimEnv()); err != nil {
			return nil, c.terr(t, err)
		}
		switch pt := pt.(type) {
		case *val.VPathType:
			return pt.Type, nil
		case *val.VSmoothPathType:
			return pt.Type, nil
		}
		return nil, c.terr(t, mismatchError("a path type", c.printValue(s, pt)))

	case *ast.Comp:
		return c.checkComp(s, t)

	case *ast.Coe:
		return c.checkCoe(s, t)

	case *ast.HComp:
		return c.checkHComp(s, t)

	case *ast.Lambda, *ast.PathLambda:
		return nil, c.terr(t, cannotInferError(t))
	}

	panic("unknown term type: " + t.TermName())
}

// inferUniverse synthesizes the type of t and requires it to be a
// universe, returning the level.
func (c *Context) inferUniverse(s *Scope, t ast.Term) (int, error) {
	ty, err := c.inferTerm(s, t)
	if err != nil {
		return 0, err
	}
	u, ok := ty.(*val.VUniverse)
	if !ok {
		return 0, c.terr(t, mismatchError("a universe", c.printValue(s, ty)))
	}
	return u.Level, nil
}

// printValue renders a type value for error messages, preferring the
// normalized syntax when readback succeeds.
func (c *Context) printValue(s *Scope, v val.Value) string {
	q, err := c.quote(s.Len(), s.DimLen(), v)
	if err != nil {
		return val.ValueString(v)
	}
	return ast.TermString(q)
}
