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

package ast

// Term is the base for all terms.
//
// Terms are trees: every subterm is owned by its parent and no sharing or
// cycles are permitted. Term-level variables and interval variables are
// both referenced by de Bruijn index, in disjoint namespaces.
type Term interface {
	// Name of the syntax-type of the term.
	TermName() string
}

var (
	_ Term = (*Universe)(nil)
	_ Term = (*Var)(nil)
	_ Term = (*Pi)(nil)
	_ Term = (*Lambda)(nil)
	_ Term = (*App)(nil)
	_ Term = (*PathType)(nil)
	_ Term = (*PathLambda)(nil)
	_ Term = (*PathApp)(nil)
	_ Term = (*SmoothPathType)(nil)
	_ Term = (*Comp)(nil)
	_ Term = (*Coe)(nil)
	_ Term = (*HComp)(nil)
)

// Universe of types: `Type0`, `Type1`, ...
type Universe struct {
	Level int
}

// "Universe"
func (t *Universe) TermName() string { return "Universe" }

// Term-level variable, referenced by de Bruijn index (0 is the innermost binder)
type Var struct {
	Index int
}

// "Var"
func (t *Var) TermName() string { return "Var" }

// Dependent function type: `Π(x : A). B`
//
// The codomain is scoped under the bound variable; Name is a display hint only.
type Pi struct {
	Name     string
	Domain   Term
	Codomain Term
}

// "Pi"
func (t *Pi) TermName() string { return "Pi" }

// Abstraction: `λx. e`
type Lambda struct {
	Name string
	Body Term
}

// "Lambda"
func (t *Lambda) TermName() string { return "Lambda" }

// Application: `f a`
type App struct {
	Func Term
	Arg  Term
}

// "App"
func (t *App) TermName() string { return "App" }

// Path type: `Path A left right`
type PathType struct {
	Type  Term
	Left  Term
	Right Term
}

// "PathType"
func (t *PathType) TermName() string { return "PathType" }

// Path abstraction over an interval variable: `<i> e`
type PathLambda struct {
	Name string
	Body Term
}

// "PathLambda"
func (t *PathLambda) TermName() string { return "PathLambda" }

// Path application at a dimension: `p @ r`
type PathApp struct {
	Path Term
	Dim  Dim
}

// "PathApp"
func (t *PathApp) TermName() string { return "PathApp" }

// Smooth path type carrying a differentiability order: `Path^k A left right`
//
// The order is purely syntactic: it is carried, compared and checked, but no
// differential structure is computed from it.
type SmoothPathType struct {
	Order int
	Type  Term
	Left  Term
	Right Term
}

// "SmoothPathType"
func (t *SmoothPathType) TermName() string { return "SmoothPathType" }

// Generalized composition: `comp (λi. A) base [φ ↦ u] target`
//
// Family and each face payload are scoped under one additional interval
// variable (index 0 inside their bodies). The base lives at dimension 0.
type Comp struct {
	Name   string
	Family Term
	Base   Term
	Faces  []Face
	Target Dim
}

// "Comp"
func (t *Comp) TermName() string { return "Comp" }

// Coercion: `coe (λi. A) source target base`
//
// Transports base from the family instantiated at Source to the family
// instantiated at Target. Family is scoped under one additional interval
// variable.
type Coe struct {
	Name   string
	Family Term
	Source Dim
	Target Dim
	Base   Term
}

// "Coe"
func (t *Coe) TermName() string { return "Coe" }

// Homogeneous composition: `hcomp A base [φ ↦ u]`
//
// The type does not depend on an interval variable; face payloads are scoped
// under one additional interval variable, as for Comp.
type HComp struct {
	Type  Term
	Base  Term
	Faces []Face
}

// "HComp"
func (t *HComp) TermName() string { return "HComp" }

// Dim is the base for dimension expressions: the two endpoints of the
// abstract interval, or an interval variable referenced by de Bruijn index.
// Dimensions are never computed with arithmetically; they are only compared
// against endpoints or combined through face formulas.
type Dim interface {
	// Name of the syntax-type of the dimension.
	DimName() string
}

var (
	_ Dim = Dim0{}
	_ Dim = Dim1{}
	_ Dim = (*DimVar)(nil)
)

// Left endpoint of the interval
type Dim0 struct{}

// "Dim0"
func (d Dim0) DimName() string { return "Dim0" }

// Right endpoint of the interval
type Dim1 struct{}

// "Dim1"
func (d Dim1) DimName() string { return "Dim1" }

// Interval variable, referenced by de Bruijn index (0 is the innermost binder)
type DimVar struct {
	Index int
}

// "DimVar"
func (d *DimVar) DimName() string { return "DimVar" }
