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

// eval reduces a term to a semantic value. Binder bodies are suspended in
// closures rather than reduced eagerly; the cubical operation nodes
// evaluate their type family, base and faces, then delegate to the Kan
// operations. Evaluation itself performs no cubical algebra.
func (c *Context) eval(t ast.Term, env val.Env, dims val.DimEnv) (val.Value, error) {
	if err := c.step(); err != nil {
		return nil, err
	}

	switch t := t.(type) {
	case *ast.Universe:
		return &val.VUniverse{Level: t.Level}, nil

	case *ast.Var:
		v, ok := env.Lookup(t.Index)
		if !ok {
			return nil, unboundError(t.Index)
		}
		return v, nil

	case *ast.Pi:
		dom, err := c.eval(t.Domain, env, dims)
		if err != nil {
			return nil, err
		}
		return &val.VPi{
			Name:     t.Name,
			Domain:   dom,
			Codomain: &val.TermClosure{Env: env, Dims: dims, Body: t.Codomain},
		}, nil

	case *ast.Lambda:
		return &val.VLambda{Name: t.Name, Body: &val.TermClosure{Env: env, Dims: dims, Body: t.Body}}, nil

	case *ast.App:
		fn, err := c.eval(t.Func, env, dims)
		if err != nil {
			return nil, err
		}
		arg, err := c.eval(t.Arg, env, dims)
		if err != nil {
			return nil, err
		}
		return c.apply(fn, arg)

	case *ast.PathType:
		ty, err := c.eval(t.Type, env, dims)
		if err != nil {
			return nil, err
		}
		left, err := c.eval(t.Left, env, dims)
		if err != nil {
			return nil, err
		}
		right, err := c.eval(t.Right, env, dims)
		if err != nil {
			return nil, err
		}
		return &val.VPathType{Type: ty, Left: left, Right: right}, nil

	case *ast.PathLambda:
		return &val.VPathLambda{Name: t.Name, Body: &val.DimTermClosure{Env: env, Dims: dims, Body: t.Body}}, nil

	case *ast.PathApp:
		p, err := c.eval(t.Path, env, dims)
		if err != nil {
			return nil, err
		}
		d, err := evalDim(t.Dim, dims)
		if err != nil {
			return nil, err
		}
		return c.pathApply(p, d)

	case *ast.SmoothPathType:
		ty, err := c.eval(t.Type, env, dims)
		if err != nil {
			return nil, err
		}
		left, err := c.eval(t.Left, env, dims)
		if err != nil {
			return nil, err
		}
		right, err := c.eval(t.Right, env, dims)
		if err != nil {
			return nil, err
		}
		return &val.VSmoothPathType{Order: t.Order, Type: ty, Left: left, Right: right}, nil

	case *ast.Comp:
		fam := &val.BindFamily{Name: t.Name, Env: env, Dims: dims, Body: t.Family}
		base, err := c.eval(t.Base, env, dims)
		if err != nil {
			return nil, err
		}
		faces, err := evalFaces(t.Faces, env, dims)
		if err != nil {
			return nil, err
		}
		target, err := evalDim(t.Target, dims)
		if err != nil {
			return nil, err
		}
		return c.comp(fam, base, faces, target)

	case *ast.Coe:
		fam := &val.BindFamily{Name: t.Name, Env: env, Dims: dims, Body: t.Family}
		source, err := evalDim(t.Source, dims)
		if err != nil {
			return nil, err
		}
		target, err := evalDim(t.Target, dims)
		if err != nil {
			return nil, err
		}
		base, err := c.eval(t.Base, env, dims)
		if err != nil {
			return nil, err
		}
		return c.coe(fam, source, target, base)

	case *ast.HComp:
		ty, err := c.eval(t.Type, env, dims)
		if err != nil {
			return nil, err
		}
		base, err := c.eval(t.Base, env, dims)
		if err != nil {
			return nil, err
		}
		faces, err := evalFaces(t.Faces, env, dims)
		if err != nil {
			return nil, err
		}
		return c.hcomp(ty, base, faces)
	}

	panic("unknown term type: " + t.TermName())
}

// apply eliminates a function value: β-reduction through the closure when
// the function is concrete, a neutral application when it is stuck.
func (c *Context) apply(fn, arg val.Value) (val.Value, error) {
	switch fn := fn.(type) {
	case *val.VLambda:
		return c.applyClosure(fn.Body, arg)
	case *val.VNeutral:
		return &val.VNeutral{N: &val.NApp{Func: fn.N, Arg: arg}}, nil
	}
	return nil, invalidKanError("application of non-function value " + fn.ValueName())
}

// pathApply eliminates a path value at a dimension.
func (c *Context) pathApply(p val.Value, d val.Dim) (val.Value, error) {
	switch p := p.(type) {
	case *val.VPathLambda:
		return c.applyDimClosure(p.Body, d)
	case *val.VNeutral:
		return &val.VNeutral{N: &val.NPathApp{Func: p.N, Arg: d}}, nil
	}
	return nil, invalidKanError("path application of non-path value " + p.ValueName())
}

func (c *Context) applyClosure(cl val.Closure, arg val.Value) (val.Value, error) {
	switch cl := cl.(type) {
	case *val.TermClosure:
		return c.eval(cl.Body, cl.Env.Extend(arg), cl.Dims)
	case *val.FnClosure:
		return cl.Fn(arg)
	}
	panic("unknown closure type: " + cl.ClosureName())
}

func (c *Context) applyDimClosure(cl val.DimClosure, d val.Dim) (val.Value, error) {
	switch cl := cl.(type) {
	case *val.DimTermClosure:
		return c.eval(cl.Body, cl.Env, cl.Dims.Extend(d))
	case *val.DimFnClosure:
		return cl.Fn(d)
	}
	panic("unknown closure type: " + cl.DimClosureName())
}

// evalDim resolves a dimension expression against the dimension
// environment.
func evalDim(d ast.Dim, dims val.DimEnv) (val.Dim, error) {
	switch d := d.(type) {
	case ast.Dim0:
		return val.D0{}, nil
	case ast.Dim1:
		return val.D1{}, nil
	case *ast.DimVar:
		dv, ok := dims.Lookup(d.Index)
		if !ok {
			return nil, unboundError(d.Index)
		}
		return dv, nil
	}
	panic("unknown dimension type: " + d.DimName())
}

// evalFormula resolves a face formula against the dimension environment.
// Equations decided by the environment fold to FTop/FBot.
func evalFormula(f ast.Formula, dims val.DimEnv) (val.Formula, error) {
	switch f := f.(type) {
	case ast.Top:
		return val.FTop{}, nil

	case *ast.Eq:
		dv, ok := dims.Lookup(f.Var)
		if !ok {
			return nil, unboundError(f.Var)
		}
		switch dv := dv.(type) {
		case val.D0:
			if f.End == 0 {
				return val.FTop{}, nil
			}
			return val.FBot{}, nil
		case val.D1:
			if f.End == 1 {
				return val.FTop{}, nil
			}
			return val.FBot{}, nil
		case *val.DFree:
			return &val.FEq{Level: dv.Level, End: f.End}, nil
		}
		panic("unknown dimension value: " + dv.DimName())

	case *ast.And:
		left, err := evalFormula(f.Left, dims)
		if err != nil {
			return nil, err
		}
		right, err := evalFormula(f.Right, dims)
		if err != nil {
			return nil, err
		}
		return val.MakeAnd(left, right), nil

	case *ast.Or:
		left, err := evalFormula(f.Left, dims)
		if err != nil {
			return nil, err
		}
		right, err := evalFormula(f.Right, dims)
		if err != nil {
			return nil, err
		}
		return val.MakeOr(left, right), nil
	}
	panic("unknown formula type: " + f.FormulaName())
}

// evalFaces resolves each face's formula and suspends its payload over the
// composition's interval variable. Faces whose formulas are decided false
// can never fire and are dropped.
func evalFaces(faces []ast.Face, env val.Env, dims val.DimEnv) ([]val.FaceVal, error) {
	var out []val.FaceVal
	for _, face := range faces {
		cond, err := evalFormula(face.Cond, dims)
		if err != nil {
			return nil, err
		}
		if _, decided := cond.(val.FBot); decided {
			continue
		}
		out = append(out, val.FaceVal{
			Cond:  cond,
			Value: &val.DimTermClosure{Env: env, Dims: dims, Body: face.Value},
		})
	}
	return out, nil
}
