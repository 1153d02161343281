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

// quote reads a value back into canonical syntax. l and dl count the
// term-level and interval-level binders in scope: closures are opened by
// applying them to fresh variables at the next level, and free levels
// convert to de Bruijn indices relative to l/dl.
func (c *Context) quote(l, dl int, v val.Value) (ast.Term, error) {
	if err := c.step(); err != nil {
		return nil, err
	}

	switch v := v.(type) {
	case *val.VUniverse:
		return &ast.Universe{Level: v.Level}, nil

	case *val.VPi:
		dom, err := c.quote(l, dl, v.Domain)
		if err != nil {
			return nil, err
		}
		body, err := c.quoteClosure(l, dl, v.Codomain)
		if err != nil {
			return nil, err
		}
		return &ast.Pi{Name: v.Name, Domain: dom, Codomain: body}, nil

	case *val.VLambda:
		body, err := c.quoteClosure(l, dl, v.Body)
		if err != nil {
			return nil, err
		}
		return &ast.Lambda{Name: v.Name, Body: body}, nil

	case *val.VPathType:
		ty, err := c.quote(l, dl, v.Type)
		if err != nil {
			return nil, err
		}
		left, err := c.quote(l, dl, v.Left)
		if err != nil {
			return nil, err
		}
		right, err := c.quote(l, dl, v.Right)
		if err != nil {
			return nil, err
		}
		return &ast.PathType{Type: ty, Left: left, Right: right}, nil

	case *val.VPathLambda:
		body, err := c.quoteDimClosure(l, dl, v.Body)
		if err != nil {
			return nil, err
		}
		return &ast.PathLambda{Name: v.Name, Body: body}, nil

	case *val.VSmoothPathType:
		ty, err := c.quote(l, dl, v.Type)
		if err != nil {
			return nil, err
		}
		left, err := c.quote(l, dl, v.Left)
		if err != nil {
			return nil, err
		}
		right, err := c.quote(l, dl, v.Right)
		if err != nil {
			return nil, err
		}
		return &ast.SmoothPathType{Order: v.Order, Type: ty, Left: left, Right: right}, nil

	case *val.VNeutral:
		return c.quoteNeutral(l, dl, v.N)
	}

	panic("unknown value type: " + v.ValueName())
}

func (c *Context) quoteNeutral(l, dl int, n val.Neutral) (ast.Term, error) {
	switch n := n.(type) {
	case *val.NVar:
		return &ast.Var{Index: l - 1 - n.Level}, nil

	case *val.NApp:
		fn, err := c.quoteNeutral(l, dl, n.Func)
		if err != nil {
			return nil, err
		}
		arg, err := c.quote(l, dl, n.Arg)
		if err != nil {
			return nil, err
		}
		return &ast.App{Func: fn, Arg: arg}, nil

	case *val.NPathApp:
		fn, err := c.quoteNeutral(l, dl, n.Func)
		if err != nil {
			return nil, err
		}
		return &ast.PathApp{Path: fn, Dim: quoteDim(dl, n.Arg)}, nil

	case *val.NComp:
		name, family, err := c.quoteFamily(l, dl, n.Family)
		if err != nil {
			return nil, err
		}
		base, err := c.quote(l, dl, n.Base)
		if err != nil {
			return nil, err
		}
		faces, err := c.quoteFaces(l, dl, n.Faces)
		if err != nil {
			return nil, err
		}
		return &ast.Comp{Name: name, Family: family, Base: base, Faces: faces, Target: quoteDim(dl, n.Target)}, nil

	case *val.NCoe:
		name, family, err := c.quoteFamily(l, dl, n.Family)
		if err != nil {
			return nil, err
		}
		base, err := c.quote(l, dl, n.Base)
		if err != nil {
			return nil, err
		}
		return &ast.Coe{
			Name:   name,
			Family: family,
			Source: quoteDim(dl, n.Source),
			Target: quoteDim(dl, n.Target),
			Base:   base,
		}, nil
	}

	panic("unknown neutral type: " + n.NeutralName())
}

// quoteClosure opens a closure with a fresh variable and quotes the body
// one level deeper.
func (c *Context) quoteClosure(l, dl int, cl val.Closure) (ast.Term, error) {
	c.noteLevels(l+1, dl)
	fresh := &val.VNeutral{N: &val.NVar{Level: l}}
	body, err := c.applyClosure(cl, fresh)
	if err != nil {
		return nil, err
	}
	return c.quote(l+1, dl, body)
}

func (c *Context) quoteDimClosure(l, dl int, cl val.DimClosure) (ast.Term, error) {
	c.noteLevels(l, dl+1)
	fresh := &val.DFree{Level: dl}
	body, err := c.applyDimClosure(cl, fresh)
	if err != nil {
		return nil, err
	}
	return c.quote(l, dl+1, body)
}

// quoteFamily reads a type family back as a term scoped under one
// additional interval variable.
func (c *Context) quoteFamily(l, dl int, fam val.Family) (string, ast.Term, error) {
	name := ""
	if bf, ok := fam.(*val.BindFamily); ok {
		name = bf.Name
	}
	c.noteLevels(l, dl+1)
	tv, err := c.famAt(fam, &val.DFree{Level: dl})
	if err != nil {
		return "", nil, err
	}
	body, err := c.quote(l, dl+1, tv)
	if err != nil {
		return "", nil, err
	}
	return name, body, nil
}

func (c *Context) quoteFaces(l, dl int, faces []val.FaceVal) ([]ast.Face, error) {
	if faces == nil {
		return nil, nil
	}
	out := make([]ast.Face, len(faces))
	for i, face := range faces {
		cond, err := quoteFormula(dl, face.Cond)
		if err != nil {
			return nil, err
		}
		payload, err := c.quoteDimClosure(l, dl, face.Value)
		if err != nil {
			return nil, err
		}
		out[i] = ast.Face{Cond: cond, Value: payload}
	}
	return out, nil
}

func quoteFormula(dl int, f val.Formula) (ast.Formula, error) {
	switch f := f.(type) {
	case val.FTop:
		return ast.Top{}, nil
	case val.FBot:
		// Unsatisfiable faces are dropped at evaluation time and cannot
		// reach a pending composition.
		return nil, invalidFaceError("unsatisfiable formula in pending composition")
	case *val.FEq:
		return &ast.Eq{Var: dl - 1 - f.Level, End: f.End}, nil
	case *val.FAnd:
		left, err := quoteFormula(dl, f.Left)
		if err != nil {
			return nil, err
		}
		right, err := quoteFormula(dl, f.Right)
		if err != nil {
			return nil, err
		}
		return &ast.And{Left: left, Right: right}, nil
	case *val.FOr:
		left, err := quoteFormula(dl, f.Left)
		if err != nil {
			return nil, err
		}
		right, err := quoteFormula(dl, f.Right)
		if err != nil {
			return nil, err
		}
		return &ast.Or{Left: left, Right: right}, nil
	}
	panic("unknown formula type: " + f.FormulaName())
}

// quoteDim converts a dimension value back to dimension syntax.
func quoteDim(dl int, d val.Dim) ast.Dim {
	switch d := d.(type) {
	case val.D0:
		return ast.Dim0{}
	case val.D1:
		return ast.Dim1{}
	case *val.DFree:
		return &ast.DimVar{Index: dl - 1 - d.Level}
	}
	panic("unknown dimension value: " + d.DimName())
}

// convertible decides definitional equality: two values are equal iff
// their quoted forms are syntactically identical up to bound-variable
// renaming. Both values must be quoted at the same l/dl, and l/dl must
// lie above every free level occurring in either value, so that the
// fresh variables opened during readback cannot collide with an
// existing one.
func (c *Context) convertible(l, dl int, a, b val.Value) (bool, error) {
	qa, err := c.quote(l, dl, a)
	if err != nil {
		return false, err
	}
	qb, err := c.quote(l, dl, b)
	if err != nil {
		return false, err
	}
	return ast.TermEqual(qa, qb), nil
}
