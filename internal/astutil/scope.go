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

// astutil provides scope analysis over the term syntax: verifying that
// every de Bruijn index resolves within its binder depth before any
// evaluation happens, and occurrence checks used by the Kan operations to
// detect dimension-independent type families.
package astutil

import (
	"strconv"

	"github.com/kanlang/kan/ast"
)

// ScopeError reports an out-of-scope variable reference found by ScopeCheck.
type ScopeError struct {
	// De Bruijn index of the unresolved reference
	Index int
	// Whether the reference is in the interval-variable namespace
	Interval bool
	// Whether the reference occurs inside a face formula
	Face bool
}

func (e *ScopeError) Error() string {
	if e.Interval {
		return "unbound interval variable @" + strconv.Itoa(e.Index)
	}
	return "unbound variable #" + strconv.Itoa(e.Index)
}

// ScopeCheck verifies that every term-level and interval-level de Bruijn
// index in t resolves within the given binder depths. It returns the first
// violation found, in pre-order, as a *ScopeError.
func ScopeCheck(t ast.Term, termDepth, dimDepth int) error {
	switch t := t.(type) {
	case *ast.Universe:
		return nil

	case *ast.Var:
		if t.Index < 0 || t.Index >= termDepth {
			return &ScopeError{Index: t.Index}
		}
		return nil

	case *ast.Pi:
		if err := ScopeCheck(t.Domain, termDepth, dimDepth); err != nil {
			return err
		}
		return ScopeCheck(t.Codomain, termDepth+1, dimDepth)

	case *ast.Lambda:
		return ScopeCheck(t.Body, termDepth+1, dimDepth)

	case *ast.App:
		if err := ScopeCheck(t.Func, termDepth, dimDepth); err != nil {
			return err
		}
		return ScopeCheck(t.Arg, termDepth, dimDepth)

	case *ast.PathType:
		if err := ScopeCheck(t.Type, termDepth, dimDepth); err != nil {
			return err
		}
		if err := ScopeCheck(t.Left, termDepth, dimDepth); err != nil {
			return err
		}
		return ScopeCheck(t.Right, termDepth, dimDepth)

	case *ast.PathLambda:
		return ScopeCheck(t.Body, termDepth, dimDepth+1)

	case *ast.PathApp:
		if err := ScopeCheck(t.Path, termDepth, dimDepth); err != nil {
			return err
		}
		return scopeCheckDim(t.Dim, dimDepth)

	case *ast.SmoothPathType:
		if err := ScopeCheck(t.Type, termDepth, dimDepth); err != nil {
			return err
		}
		if err := ScopeCheck(t.Left, termDepth, dimDepth); err != nil {
			return err
		}
		return ScopeCheck(t.Right, termDepth, dimDepth)

	case *ast.Comp:
		if err := ScopeCheck(t.Family, termDepth, dimDepth+1); err != nil {
			return err
		}
		if err := ScopeCheck(t.Base, termDepth, dimDepth); err != nil {
			return err
		}
		if err := scopeCheckFaces(t.Faces, termDepth, dimDepth); err != nil {
			return err
		}
		return scopeCheckDim(t.Target, dimDepth)

	case *ast.Coe:
		if err := ScopeCheck(t.Family, termDepth, dimDepth+1); err != nil {
			return err
		}
		if err := scopeCheckDim(t.Source, dimDepth); err != nil {
			return err
		}
		if err := scopeCheckDim(t.Target, dimDepth); err != nil {
			return err
		}
		return ScopeCheck(t.Base, termDepth, dimDepth)

	case *ast.HComp:
		if err := ScopeCheck(t.Type, termDepth, dimDepth); err != nil {
			return err
		}
		if err := ScopeCheck(t.Base, termDepth, dimDepth); err != nil {
			return err
		}
		return scopeCheckFaces(t.Faces, termDepth, dimDepth)

	case nil:
		return nil
	}
	panic("unknown term type: " + t.TermName())
}

// Face formulas constrain the surrounding interval variables; payloads are
// additionally scoped under the composition's fill variable.
func scopeCheckFaces(faces []ast.Face, termDepth, dimDepth int) error {
	for _, face := range faces {
		if err := ScopeCheckFormula(face.Cond, dimDepth); err != nil {
			err.(*ScopeError).Face = true
			return err
		}
		if err := ScopeCheck(face.Value, termDepth, dimDepth+1); err != nil {
			return err
		}
	}
	return nil
}

// ScopeCheckFormula verifies that every interval variable referenced by f
// resolves within the given binder depth.
func ScopeCheckFormula(f ast.Formula, dimDepth int) error {
	switch f := f.(type) {
	case ast.Top:
		return nil
	case *ast.Eq:
		if f.Var < 0 || f.Var >= dimDepth {
			return &ScopeError{Index: f.Var, Interval: true}
		}
		return nil
	case *ast.And:
		if err := ScopeCheckFormula(f.Left, dimDepth); err != nil {
			return err
		}
		return ScopeCheckFormula(f.Right, dimDepth)
	case *ast.Or:
		if err := ScopeCheckFormula(f.Left, dimDepth); err != nil {
			return err
		}
		return ScopeCheckFormula(f.Right, dimDepth)
	case nil:
		return nil
	}
	panic("unknown formula type: " + f.FormulaName())
}

func scopeCheckDim(d ast.Dim, dimDepth int) error {
	if dv, ok := d.(*ast.DimVar); ok {
		if dv.Index < 0 || dv.Index >= dimDepth {
			return &ScopeError{Index: dv.Index, Interval: true}
		}
	}
	return nil
}

// DimOccurs reports whether the interval variable with the given index
// occurs free in t. The Kan operations use it to recognize constant
// (dimension-independent) type families.
func DimOccurs(t ast.Term, index int) bool {
	switch t := t.(type) {
	case *ast.Universe, *ast.Var:
		return false

	case *ast.Pi:
		return DimOccurs(t.Domain, index) || DimOccurs(t.Codomain, index)

	case *ast.Lambda:
		return DimOccurs(t.Body, index)

	case *ast.App:
		return DimOccurs(t.Func, index) || DimOccurs(t.Arg, index)

	case *ast.PathType:
		return DimOccurs(t.Type, index) || DimOccurs(t.Left, index) || DimOccurs(t.Right, index)

	case *ast.PathLambda:
		return DimOccurs(t.Body, index+1)

	case *ast.PathApp:
		return DimOccurs(t.Path, index) || dimRefers(t.Dim, index)

	case *ast.SmoothPathType:
		return DimOccurs(t.Type, index) || DimOccurs(t.Left, index) || DimOccurs(t.Right, index)

	case *ast.Comp:
		if DimOccurs(t.Family, index+1) || DimOccurs(t.Base, index) || dimRefers(t.Target, index) {
			return true
		}
		return facesReferTo(t.Faces, index)

	case *ast.Coe:
		return DimOccurs(t.Family, index+1) || dimRefers(t.Source, index) ||
			dimRefers(t.Target, index) || DimOccurs(t.Base, index)

	case *ast.HComp:
		if DimOccurs(t.Type, index) || DimOccurs(t.Base, index) {
			return true
		}
		return facesReferTo(t.Faces, index)

	case nil:
		return false
	}
	panic("unknown term type: " + t.TermName())
}

func facesReferTo(faces []ast.Face, index int) bool {
	for _, face := range faces {
		if FormulaRefers(face.Cond, index) || DimOccurs(face.Value, index+1) {
			return true
		}
	}
	return false
}

// FormulaRefers reports whether f constrains the interval variable with
// the given index.
func FormulaRefers(f ast.Formula, index int) bool {
	switch f := f.(type) {
	case ast.Top:
		return false
	case *ast.Eq:
		return f.Var == index
	case *ast.And:
		return FormulaRefers(f.Left, index) || FormulaRefers(f.Right, index)
	case *ast.Or:
		return FormulaRefers(f.Left, index) || FormulaRefers(f.Right, index)
	case nil:
		return false
	}
	panic("unknown formula type: " + f.FormulaName())
}

func dimRefers(d ast.Dim, index int) bool {
	dv, ok := d.(*ast.DimVar)
	return ok && dv.Index == index
}
