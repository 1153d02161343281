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

// The Kan operations operate purely on values and dimension assignments.
// Case analysis follows the shape of the type family; families which are
// neither function, path nor constant families reduce to first-class
// pending neutrals rather than errors.

// famAt instantiates a type family at a dimension.
func (c *Context) famAt(fam val.Family, d val.Dim) (val.Value, error) {
	switch fam := fam.(type) {
	case *val.ConstFamily:
		return fam.Type, nil
	case *val.BindFamily:
		return c.eval(fam.Body, fam.Env, fam.Dims.Extend(d))
	case *val.FnFamily:
		return fam.Fn(d)
	}
	panic("unknown family type: " + fam.FamilyName())
}

// famConstant reports whether a family is known to be dimension-
// independent. Semantic families built by the Kan operations themselves
// are conservatively treated as dimension-dependent.
func famConstant(fam val.Family) bool {
	switch fam := fam.(type) {
	case *val.ConstFamily:
		return true
	case *val.BindFamily:
		return !astutil.DimOccurs(fam.Body, 0)
	case *val.FnFamily:
		return false
	}
	panic("unknown family type: " + fam.FamilyName())
}

// comp is generalized composition: it fills a value along a type family
// given partial boundary data.
//
// Laws, in order of application: composition to the identity endpoint with
// no boundary data is the base unchanged; a satisfied face determines the
// result (all satisfied faces must agree up to conversion); a constant
// family with no boundary data transports trivially.
func (c *Context) comp(fam val.Family, base val.Value, faces []val.FaceVal, target val.Dim) (val.Value, error) {
	if err := c.step(); err != nil {
		return nil, err
	}

	if len(faces) == 0 {
		if _, ok := target.(val.D0); ok {
			return base, nil
		}
		if famConstant(fam) {
			return base, nil
		}
	}

	chosen, err := c.satisfiedFace(faces, target)
	if err != nil {
		return nil, err
	}
	if chosen != nil {
		return chosen, nil
	}

	shape, err := c.famAt(fam, target)
	if err != nil {
		return nil, err
	}

	switch shape := shape.(type) {
	case *val.VPi:
		// Pointwise through the codomain: (comp fam base faces r) a
		// computes as comp of the codomain family at a.
		fn := func(arg val.Value) (val.Value, error) {
			sub := &val.FnFamily{Fn: func(i val.Dim) (val.Value, error) {
				fi, err := c.famAt(fam, i)
				if err != nil {
					return nil, err
				}
				pi, ok := fi.(*val.VPi)
				if !ok {
					return nil, invalidKanError("family is not a function type at every dimension")
				}
				return c.applyClosure(pi.Codomain, arg)
			}}
			b, err := c.apply(base, arg)
			if err != nil {
				return nil, err
			}
			return c.comp(sub, b, c.facesApply(faces, arg), target)
		}
		return &val.VLambda{Name: shape.Name, Body: &val.FnClosure{Fn: fn}}, nil

	case *val.VPathType:
		// Along paths: the result's boundary is the target type's
		// boundary; in the interior, compose the underlying line.
		fn := func(j val.Dim) (val.Value, error) {
			switch j.(type) {
			case val.D0:
				return shape.Left, nil
			case val.D1:
				return shape.Right, nil
			}
			sub := &val.FnFamily{Fn: func(i val.Dim) (val.Value, error) {
				fi, err := c.famAt(fam, i)
				if err != nil {
					return nil, err
				}
				pt, ok := fi.(*val.VPathType)
				if !ok {
					return nil, invalidKanError("family is not a path type at every dimension")
				}
				return pt.Type, nil
			}}
			b, err := c.pathApply(base, j)
			if err != nil {
				return nil, err
			}
			return c.comp(sub, b, c.facesPathApply(faces, j), target)
		}
		return &val.VPathLambda{Body: &val.DimFnClosure{Fn: fn}}, nil

	case *val.VSmoothPathType:
		fn := func(j val.Dim) (val.Value, error) {
			switch j.(type) {
			case val.D0:
				return shape.Left, nil
			case val.D1:
				return shape.Right, nil
			}
			sub := &val.FnFamily{Fn: func(i val.Dim) (val.Value, error) {
				fi, err := c.famAt(fam, i)
				if err != nil {
					return nil, err
				}
				pt, ok := fi.(*val.VSmoothPathType)
				if !ok {
					return nil, invalidKanError("family is not a smooth path type at every dimension")
				}
				return pt.Type, nil
			}}
			b, err := c.pathApply(base, j)
			if err != nil {
				return nil, err
			}
			return c.comp(sub, b, c.facesPathApply(faces, j), target)
		}
		return &val.VPathLambda{Body: &val.DimFnClosure{Fn: fn}}, nil
	}

	// Unsupported family shape: a pending composition, intentionally.
	return &val.VNeutral{N: &val.NComp{Family: fam, Base: base, Faces: faces, Target: target}}, nil
}

// coe transports a value between two instantiations of a type family.
//
// Laws, in order of application: equal dimensions transport trivially
// (reflexivity); so does a constant family, regardless of the dimensions.
func (c *Context) coe(fam val.Family, source, target val.Dim, base val.Value) (val.Value, error) {
	if err := c.step(); err != nil {
		return nil, err
	}

	if val.DimValEqual(source, target) {
		return base, nil
	}
	if famConstant(fam) {
		return base, nil
	}

	shape, err := c.famAt(fam, target)
	if err != nil {
		return nil, err
	}

	switch shape := shape.(type) {
	case *val.VPi:
		fn := func(arg val.Value) (val.Value, error) {
			sub := &val.FnFamily{Fn: func(i val.Dim) (val.Value, error) {
				fi, err := c.famAt(fam, i)
				if err != nil {
					return nil, err
				}
				pi, ok := fi.(*val.VPi)
				if !ok {
					return nil, invalidKanError("family is not a function type at every dimension")
				}
				return c.applyClosure(pi.Codomain, arg)
			}}
			b, err := c.apply(base, arg)
			if err != nil {
				return nil, err
			}
			return c.coe(sub, source, target, b)
		}
		return &val.VLambda{Name: shape.Name, Body: &val.FnClosure{Fn: fn}}, nil

	case *val.VPathType:
		fn := func(j val.Dim) (val.Value, error) {
			switch j.(type) {
			case val.D0:
				return shape.Left, nil
			case val.D1:
				return shape.Right, nil
			}
			sub := &val.FnFamily{Fn: func(i val.Dim) (val.Value, error) {
				fi, err := c.famAt(fam, i)
				if err != nil {
					return nil, err
				}
				pt, ok := fi.(*val.VPathType)
				if !ok {
					return nil, invalidKanError("family is not a path type at every dimension")
				}
				return pt.Type, nil
			}}
			b, err := c.pathApply(base, j)
			if err != nil {
				return nil, err
			}
			return c.coe(sub, source, target, b)
		}
		return &val.VPathLambda{Body: &val.DimFnClosure{Fn: fn}}, nil

	case *val.VSmoothPathType:
		fn := func(j val.Dim) (val.Value, error) {
			switch j.(type) {
			case val.D0:
				return shape.Left, nil
			case val.D1:
				return shape.Right, nil
			}
			sub := &val.FnFamily{Fn: func(i val.Dim) (val.Value, error) {
				fi, err := c.famAt(fam, i)
				if err != nil {
					return nil, err
				}
				pt, ok := fi.(*val.VSmoothPathType)
				if !ok {
					return nil, invalidKanError("family is not a smooth path type at every dimension")
				}
				return pt.Type, nil
			}}
			b, err := c.pathApply(base, j)
			if err != nil {
				return nil, err
			}
			return c.coe(sub, source, target, b)
		}
		return &val.VPathLambda{Body: &val.DimFnClosure{Fn: fn}}, nil
	}

	// Unsupported family shape: a pending coercion, intentionally.
	return &val.VNeutral{N: &val.NCoe{Family: fam, Source: source, Target: target, Base: base}}, nil
}

// hcomp is composition at a dimension-independent family, evaluated at the
// far endpoint. The equivalence with comp is definitional: hcomp is that
// call.
func (c *Context) hcomp(ty val.Value, base val.Value, faces []val.FaceVal) (val.Value, error) {
	return c.comp(&val.ConstFamily{Type: ty}, base, faces, val.D1{})
}

// satisfiedFace selects the payload of a satisfied face, after checking
// that every satisfied face agrees up to conversion. Agreement is a
// checked precondition, not resolved by priority. The payloads carry no
// syntactic scope here, so conversion quotes at the context's recorded
// fresh-level watermarks: above every free variable in play.
func (c *Context) satisfiedFace(faces []val.FaceVal, target val.Dim) (val.Value, error) {
	var chosen val.Value
	for _, face := range faces {
		if !satisfies(face.Cond) {
			continue
		}
		v, err := c.applyDimClosure(face.Value, target)
		if err != nil {
			return nil, err
		}
		if chosen == nil {
			chosen = v
			continue
		}
		eq, err := c.convertible(c.maxLevel, c.maxDimLevel, chosen, v)
		if err != nil {
			return nil, err
		}
		if !eq {
			return nil, invalidFaceError("overlapping faces disagree")
		}
	}
	return chosen, nil
}

// facesApply restricts each face payload pointwise to an argument.
func (c *Context) facesApply(faces []val.FaceVal, arg val.Value) []val.FaceVal {
	if faces == nil {
		return nil
	}
	out := make([]val.FaceVal, len(faces))
	for i, face := range faces {
		face := face
		out[i] = val.FaceVal{
			Cond: face.Cond,
			Value: &val.DimFnClosure{Fn: func(d val.Dim) (val.Value, error) {
				v, err := c.applyDimClosure(face.Value, d)
				if err != nil {
					return nil, err
				}
				return c.apply(v, arg)
			}},
		}
	}
	return out
}

// facesPathApply restricts each face payload to a point of a path.
func (c *Context) facesPathApply(faces []val.FaceVal, j val.Dim) []val.FaceVal {
	if faces == nil {
		return nil
	}
	out := make([]val.FaceVal, len(faces))
	for i, face := range faces {
		face := face
		out[i] = val.FaceVal{
			Cond: face.Cond,
			Value: &val.DimFnClosure{Fn: func(d val.Dim) (val.Value, error) {
				v, err := c.applyDimClosure(face.Value, d)
				if err != nil {
					return nil, err
				}
				return c.pathApply(v, j)
			}},
		}
	}
	return out
}

// satisfies evaluates a resolved face formula. Equations on free interval
// variables satisfy nothing; conjunction and disjunction combine
// recursively, and are commutative and associative in the result.
func satisfies(f val.Formula) bool {
	switch f := f.(type) {
	case val.FTop:
		return true
	case val.FBot:
		return false
	case *val.FEq:
		return false
	case *val.FAnd:
		return satisfies(f.Left) && satisfies(f.Right)
	case *val.FOr:
		return satisfies(f.Left) || satisfies(f.Right)
	}
	panic("unknown formula type: " + f.FormulaName())
}

// Satisfies evaluates a face formula against a dimension environment.
func Satisfies(f ast.Formula, dims val.DimEnv) bool {
	vf, err := evalFormula(f, dims)
	if err != nil {
		return false
	}
	return satisfies(vf)
}
