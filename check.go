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

// checkTerm is the checking judgment. Introduction forms check directly
// against their type; every other form synthesizes and compares by
// conversion. The first violation aborts the derivation.
func (c *Context) checkTerm(s *Scope, t ast.Term, expected val.Value) error {
	if err := c.step(); err != nil {
		return err
	}

	switch t := t.(type) {
	case *ast.Lambda:
		pi, ok := expected.(*val.VPi)
		if !ok {
			return c.terr(t, mismatchError(c.printValue(s, expected), "a λ-abstraction"))
		}
		inner := s.Bind(t.Name, pi.Domain)
		c.noteLevels(inner.Len(), inner.DimLen())
		fresh, _ := inner.Env().Lookup(0)
		cod, err := c.applyClosure(pi.Codomain, fresh)
		if err != nil {
			return err
		}
		return c.checkTerm(inner, t.Body, cod)

	case *ast.PathLambda:
		switch expected := expected.(type) {
		case *val.VPathType:
			return c.checkPathBody(s, t, expected.Type, expected.Left, expected.Right)
		case *val.VSmoothPathType:
			return c.checkPathBody(s, t, expected.Type, expected.Left, expected.Right)
		}
		return c.terr(t, mismatchError(c.printValue(s, expected), "a path abstraction"))

	case *ast.Comp:
		actual, err := c.checkComp(s, t)
		if err != nil {
			return err
		}
		return c.checkConvertible(s, t, actual, expected)

	case *ast.Coe:
		actual, err := c.checkCoe(s, t)
		if err != nil {
			return err
		}
		return c.checkConvertible(s, t, actual, expected)

	case *ast.HComp:
		actual, err := c.checkHComp(s, t)
		if err != nil {
			return err
		}
		return c.checkConvertible(s, t, actual, expected)
	}

	actual, err := c.inferTerm(s, t)
	if err != nil {
		return err
	}
	return c.checkConvertible(s, t, actual, expected)
}

// checkPathBody checks a path abstraction against a path type: the body
// under a fresh interval variable, then agreement of both endpoints.
func (c *Context) checkPathBody(s *Scope, t *ast.PathLambda, ty, left, right val.Value) error {
	inner := s.BindDim(t.Name)
	c.noteLevels(inner.Len(), inner.DimLen())
	if err := c.checkTerm(inner, t.Body, ty); err != nil {
		return err
	}
	at0, err := c.eval(t.Body, s.Env(), s.DimEnv().Extend(val.D0{}))
	if err != nil {
		return err
	}
	if err := c.checkConvertible(s, t, at0, left); err != nil {
		return err
	}
	at1, err := c.eval(t.Body, s.Env(), s.DimEnv().Extend(val.D1{}))
	if err != nil {
		return err
	}
	return c.checkConvertible(s, t, at1, right)
}

// checkConvertible compares a synthesized type against the expected one.
func (c *Context) checkConvertible(s *Scope, t ast.Term, actual, expected val.Value) error {
	eq, err := c.convertible(s.Len(), s.DimLen(), actual, expected)
	if err != nil {
		return err
	}
	if !eq {
		return c.terr(t, mismatchError(c.printValue(s, expected), c.printValue(s, actual)))
	}
	return nil
}

// checkComp validates a composition node and returns its type: the family
// instantiated at the target dimension. The family must be a type under
// one additional interval variable, the base must inhabit the family at
// dimension 0, and every face must be valid per validateFaces.
func (c *Context) checkComp(s *Scope, t *ast.Comp) (val.Value, error) {
	inner := s.BindDim(t.Name)
	c.noteLevels(inner.Len(), inner.DimLen())
	if _, err := c.inferUniverse(inner, t.Family); err != nil {
		return nil, err
	}
	fam := &val.BindFamily{Name: t.Name, Env: s.Env(), Dims: s.DimEnv(), Body: t.Family}
	src, err := c.famAt(fam, val.D0{})
	if err != nil {
		return nil, err
	}
	if err := c.checkTerm(s, t.Base, src); err != nil {
		return nil, err
	}
	famAt := func(rs *Scope, d val.Dim) (val.Value, error) {
		return c.eval(t.Family, rs.Env(), rs.DimEnv().Extend(d))
	}
	if err := c.validateFaces(s, t.Name, famAt, t.Faces); err != nil {
		return nil, c.terr(t, err)
	}
	target, err := evalDim(t.Target, s.DimEnv())
	if err != nil {
		return nil, err
	}
	return c.famAt(fam, target)
}

// checkCoe validates a coercion node and returns the family at the target
// dimension.
func (c *Context) checkCoe(s *Scope, t *ast.Coe) (val.Value, error) {
	inner := s.BindDim(t.Name)
	c.noteLevels(inner.Len(), inner.DimLen())
	if _, err := c.inferUniverse(inner, t.Family); err != nil {
		return nil, err
	}
	fam := &val.BindFamily{Name: t.Name, Env: s.Env(), Dims: s.DimEnv(), Body: t.Family}
	source, err := evalDim(t.Source, s.DimEnv())
	if err != nil {
		return nil, err
	}
	src, err := c.famAt(fam, source)
	if err != nil {
		return nil, err
	}
	if err := c.checkTerm(s, t.Base, src); err != nil {
		return nil, err
	}
	target, err := evalDim(t.Target, s.DimEnv())
	if err != nil {
		return nil, err
	}
	return c.famAt(fam, target)
}

// checkHComp validates a homogeneous composition node and returns its
// (dimension-independent) type.
func (c *Context) checkHComp(s *Scope, t *ast.HComp) (val.Value, error) {
	if _, err := c.inferUniverse(s, t.Type); err != nil {
		return nil, err
	}
	ty, err := c.eval(t.Type, s.Env(), s.DimEnv())
	if err != nil {
		return nil, err
	}
	if err := c.checkTerm(s, t.Base, ty); err != nil {
		return nil, err
	}
	famAt := func(rs *Scope, _ val.Dim) (val.Value, error) {
		return c.eval(t.Type, rs.Env(), rs.DimEnv())
	}
	if err := c.validateFaces(s, "", famAt, t.Faces); err != nil {
		return nil, c.terr(t, err)
	}
	return ty, nil
}

// validateFaces enforces the face discipline: every formula well-scoped
// over the bound interval variables, every payload inhabiting the family
// under the composition's fill variable with the payload's own constraint
// in force, and overlapping faces agreeing up to conversion on their
// overlap. famAt instantiates the type family at a fill dimension within
// a constrained scope. Payloads are checked and compared once per
// satisfiable DNF clause of the governing formula, with the clause's
// interval variables pinned to their endpoints; a face is never compared
// or rejected outside the region where it can fire.
func (c *Context) validateFaces(s *Scope, name string, famAt func(*Scope, val.Dim) (val.Value, error), faces []ast.Face) error {
	for _, face := range faces {
		if err := astutil.ScopeCheckFormula(face.Cond, s.DimLen()); err != nil {
			return invalidFaceError(err.Error())
		}
		for _, clause := range dnfFormula(face.Cond) {
			rs, ok := constrainScope(s, clause)
			if !ok {
				continue
			}
			inner := rs.BindDim(name)
			c.noteLevels(inner.Len(), inner.DimLen())
			famTy, err := famAt(rs, &val.DFree{Level: rs.DimLen()})
			if err != nil {
				return err
			}
			if err := c.checkTerm(inner, face.Value, famTy); err != nil {
				return err
			}
		}
	}

	for i := range faces {
		for j := i + 1; j < len(faces); j++ {
			overlap := &ast.And{Left: faces[i].Cond, Right: faces[j].Cond}
			for _, clause := range dnfFormula(overlap) {
				rs, ok := constrainScope(s, clause)
				if !ok {
					continue
				}
				inner := rs.BindDim(name)
				c.noteLevels(inner.Len(), inner.DimLen())
				u, err := c.eval(faces[i].Value, inner.Env(), inner.DimEnv())
				if err != nil {
					return err
				}
				v, err := c.eval(faces[j].Value, inner.Env(), inner.DimEnv())
				if err != nil {
					return err
				}
				eq, err := c.convertible(inner.Len(), inner.DimLen(), u, v)
				if err != nil {
					return err
				}
				if !eq {
					return invalidFaceError("faces " + ast.FormulaString(faces[i].Cond) +
						" and " + ast.FormulaString(faces[j].Cond) + " overlap but disagree")
				}
			}
		}
	}
	return nil
}

// constrainScope pins the interval variables a clause assigns to their
// endpoints, leaving every other binding untouched. Reports false when
// the clause contradicts a dimension already decided in the scope.
func constrainScope(s *Scope, clause map[int]int) (*Scope, bool) {
	if len(clause) == 0 {
		return s, true
	}
	dims := val.NewDimEnv()
	for i := s.DimLen() - 1; i >= 0; i-- {
		d, _ := s.DimEnv().Lookup(i)
		if end, ok := clause[i]; ok {
			switch d.(type) {
			case val.D0:
				if end != 0 {
					return nil, false
				}
			case val.D1:
				if end != 1 {
					return nil, false
				}
			default:
				if end == 0 {
					d = val.D0{}
				} else {
					d = val.D1{}
				}
			}
		}
		dims = dims.Extend(d)
	}
	return &Scope{names: s.names, types: s.types, dimNames: s.dimNames, env: s.env, dims: dims}, true
}

// dnfFormula expands a formula into its satisfiable disjunctive-normal-
// form clauses, each a consistent assignment of endpoints to variables.
func dnfFormula(f ast.Formula) []map[int]int {
	switch f := f.(type) {
	case ast.Top:
		return []map[int]int{{}}

	case *ast.Eq:
		return []map[int]int{{f.Var: f.End}}

	case *ast.And:
		left := dnfFormula(f.Left)
		right := dnfFormula(f.Right)
		var out []map[int]int
		for _, ca := range left {
			for _, cb := range right {
				if merged, ok := mergeClause(ca, cb); ok {
					out = append(out, merged)
				}
			}
		}
		return out

	case *ast.Or:
		return append(dnfFormula(f.Left), dnfFormula(f.Right)...)
	}
	panic("unknown formula type: " + f.FormulaName())
}

func mergeClause(a, b map[int]int) (map[int]int, bool) {
	merged := make(map[int]int, len(a)+len(b))
	for v, end := range a {
		merged[v] = end
	}
	for v, end := range b {
		if prev, ok := merged[v]; ok && prev != end {
			return nil, false
		}
		merged[v] = end
	}
	return merged, true
}
