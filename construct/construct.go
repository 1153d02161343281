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

// construct provides shorthand constructors for the term syntax, mainly
// for use within tests and upstream elaborators.
package construct

import (
	"github.com/kanlang/kan/ast"
)

// Terms

// Universe of types: `Type0`, `Type1`, ...
func Type(level int) *ast.Universe {
	return &ast.Universe{Level: level}
}

// Term-level variable by de Bruijn index
func Var(index int) *ast.Var {
	return &ast.Var{Index: index}
}

// Dependent function type: `Π(x : A). B`
func Pi(name string, domain, codomain ast.Term) *ast.Pi {
	return &ast.Pi{Name: name, Domain: domain, Codomain: codomain}
}

// Non-dependent function type: `A -> B`
//
// The codomain is scoped under the (unused) binder; its indices must
// already account for the extra binder.
func Arrow(domain, codomain ast.Term) *ast.Pi {
	return &ast.Pi{Name: "_", Domain: domain, Codomain: codomain}
}

// Abstraction: `λx. e`
func Lam(name string, body ast.Term) *ast.Lambda {
	return &ast.Lambda{Name: name, Body: body}
}

// Application: `f a b ...`
func App(fn ast.Term, args ...ast.Term) ast.Term {
	for _, arg := range args {
		fn = &ast.App{Func: fn, Arg: arg}
	}
	return fn
}

// Path type: `Path A left right`
func Path(ty, left, right ast.Term) *ast.PathType {
	return &ast.PathType{Type: ty, Left: left, Right: right}
}

// Path abstraction: `<i> e`
func PLam(name string, body ast.Term) *ast.PathLambda {
	return &ast.PathLambda{Name: name, Body: body}
}

// Path application: `p @ r`
func PApp(path ast.Term, d ast.Dim) *ast.PathApp {
	return &ast.PathApp{Path: path, Dim: d}
}

// Smooth path type: `Path^k A left right`
func SmoothPath(order int, ty, left, right ast.Term) *ast.SmoothPathType {
	return &ast.SmoothPathType{Order: order, Type: ty, Left: left, Right: right}
}

// Composition: `comp (λi. A) base faces target`
func Comp(name string, family, base ast.Term, faces []ast.Face, target ast.Dim) *ast.Comp {
	return &ast.Comp{Name: name, Family: family, Base: base, Faces: faces, Target: target}
}

// Coercion: `coe (λi. A) source target base`
func Coe(name string, family ast.Term, source, target ast.Dim, base ast.Term) *ast.Coe {
	return &ast.Coe{Name: name, Family: family, Source: source, Target: target, Base: base}
}

// Homogeneous composition: `hcomp A base faces`
func HComp(ty, base ast.Term, faces []ast.Face) *ast.HComp {
	return &ast.HComp{Type: ty, Base: base, Faces: faces}
}

// Faces and formulas

// Face constraint: `φ ↦ u`
func Face(cond ast.Formula, value ast.Term) ast.Face {
	return ast.Face{Cond: cond, Value: value}
}

// The constant true formula
func Top() ast.Formula {
	return ast.Top{}
}

// Endpoint equation: `i = end`
func Eq(index, end int) *ast.Eq {
	return &ast.Eq{Var: index, End: end}
}

// Conjunction: `φ ∧ ψ`
func And(left, right ast.Formula) *ast.And {
	return &ast.And{Left: left, Right: right}
}

// Disjunction: `φ ∨ ψ`
func Or(left, right ast.Formula) *ast.Or {
	return &ast.Or{Left: left, Right: right}
}

// Dimensions

// Left endpoint of the interval
func D0() ast.Dim {
	return ast.Dim0{}
}

// Right endpoint of the interval
func D1() ast.Dim {
	return ast.Dim1{}
}

// Interval variable by de Bruijn index
func DVar(index int) *ast.DimVar {
	return &ast.DimVar{Index: index}
}
