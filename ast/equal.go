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

// TermEqual reports whether a and b are structurally equal. Binder names
// are display hints and do not participate in the comparison, so with de
// Bruijn indices structural equality coincides with alpha-equality.
func TermEqual(a, b Term) bool {
	switch a := a.(type) {
	case *Universe:
		b, ok := b.(*Universe)
		return ok && a.Level == b.Level

	case *Var:
		b, ok := b.(*Var)
		return ok && a.Index == b.Index

	case *Pi:
		b, ok := b.(*Pi)
		return ok && TermEqual(a.Domain, b.Domain) && TermEqual(a.Codomain, b.Codomain)

	case *Lambda:
		b, ok := b.(*Lambda)
		return ok && TermEqual(a.Body, b.Body)

	case *App:
		b, ok := b.(*App)
		return ok && TermEqual(a.Func, b.Func) && TermEqual(a.Arg, b.Arg)

	case *PathType:
		b, ok := b.(*PathType)
		return ok && TermEqual(a.Type, b.Type) && TermEqual(a.Left, b.Left) && TermEqual(a.Right, b.Right)

	case *PathLambda:
		b, ok := b.(*PathLambda)
		return ok && TermEqual(a.Body, b.Body)

	case *PathApp:
		b, ok := b.(*PathApp)
		return ok && TermEqual(a.Path, b.Path) && DimEqual(a.Dim, b.Dim)

	case *SmoothPathType:
		b, ok := b.(*SmoothPathType)
		return ok && a.Order == b.Order && TermEqual(a.Type, b.Type) &&
			TermEqual(a.Left, b.Left) && TermEqual(a.Right, b.Right)

	case *Comp:
		b, ok := b.(*Comp)
		return ok && TermEqual(a.Family, b.Family) && TermEqual(a.Base, b.Base) &&
			facesEqual(a.Faces, b.Faces) && DimEqual(a.Target, b.Target)

	case *Coe:
		b, ok := b.(*Coe)
		return ok && TermEqual(a.Family, b.Family) && DimEqual(a.Source, b.Source) &&
			DimEqual(a.Target, b.Target) && TermEqual(a.Base, b.Base)

	case *HComp:
		b, ok := b.(*HComp)
		return ok && TermEqual(a.Type, b.Type) && TermEqual(a.Base, b.Base) && facesEqual(a.Faces, b.Faces)

	case nil:
		return b == nil
	}
	panic("unknown term type: " + a.TermName())
}

// DimEqual reports whether two dimension expressions are equal.
func DimEqual(a, b Dim) bool {
	switch a := a.(type) {
	case Dim0:
		_, ok := b.(Dim0)
		return ok
	case Dim1:
		_, ok := b.(Dim1)
		return ok
	case *DimVar:
		b, ok := b.(*DimVar)
		return ok && a.Index == b.Index
	case nil:
		return b == nil
	}
	panic("unknown dimension type: " + a.DimName())
}

// FormulaEqual reports whether two face formulas are structurally equal.
func FormulaEqual(a, b Formula) bool {
	switch a := a.(type) {
	case Top:
		_, ok := b.(Top)
		return ok
	case *Eq:
		b, ok := b.(*Eq)
		return ok && a.Var == b.Var && a.End == b.End
	case *And:
		b, ok := b.(*And)
		return ok && FormulaEqual(a.Left, b.Left) && FormulaEqual(a.Right, b.Right)
	case *Or:
		b, ok := b.(*Or)
		return ok && FormulaEqual(a.Left, b.Left) && FormulaEqual(a.Right, b.Right)
	case nil:
		return b == nil
	}
	panic("unknown formula type: " + a.FormulaName())
}

func facesEqual(a, b []Face) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !FormulaEqual(a[i].Cond, b[i].Cond) || !TermEqual(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}
