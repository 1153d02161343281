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

// CopyTerm returns a deep copy of t. Dimensions and formulas are copied
// along with the terms which carry them, so the result shares no structure
// with t.
func CopyTerm(t Term) Term {
	switch t := t.(type) {
	case *Universe:
		return &Universe{Level: t.Level}

	case *Var:
		return &Var{Index: t.Index}

	case *Pi:
		return &Pi{Name: t.Name, Domain: CopyTerm(t.Domain), Codomain: CopyTerm(t.Codomain)}

	case *Lambda:
		return &Lambda{Name: t.Name, Body: CopyTerm(t.Body)}

	case *App:
		return &App{Func: CopyTerm(t.Func), Arg: CopyTerm(t.Arg)}

	case *PathType:
		return &PathType{Type: CopyTerm(t.Type), Left: CopyTerm(t.Left), Right: CopyTerm(t.Right)}

	case *PathLambda:
		return &PathLambda{Name: t.Name, Body: CopyTerm(t.Body)}

	case *PathApp:
		return &PathApp{Path: CopyTerm(t.Path), Dim: CopyDim(t.Dim)}

	case *SmoothPathType:
		return &SmoothPathType{Order: t.Order, Type: CopyTerm(t.Type), Left: CopyTerm(t.Left), Right: CopyTerm(t.Right)}

	case *Comp:
		return &Comp{Name: t.Name, Family: CopyTerm(t.Family), Base: CopyTerm(t.Base), Faces: copyFaces(t.Faces), Target: CopyDim(t.Target)}

	case *Coe:
		return &Coe{Name: t.Name, Family: CopyTerm(t.Family), Source: CopyDim(t.Source), Target: CopyDim(t.Target), Base: CopyTerm(t.Base)}

	case *HComp:
		return &HComp{Type: CopyTerm(t.Type), Base: CopyTerm(t.Base), Faces: copyFaces(t.Faces)}

	case nil:
		return nil
	}
	panic("unknown term type: " + t.TermName())
}

// CopyDim returns a copy of d.
func CopyDim(d Dim) Dim {
	switch d := d.(type) {
	case Dim0, Dim1:
		return d
	case *DimVar:
		return &DimVar{Index: d.Index}
	case nil:
		return nil
	}
	panic("unknown dimension type: " + d.DimName())
}

// CopyFormula returns a deep copy of f.
func CopyFormula(f Formula) Formula {
	switch f := f.(type) {
	case Top:
		return f
	case *Eq:
		return &Eq{Var: f.Var, End: f.End}
	case *And:
		return &And{Left: CopyFormula(f.Left), Right: CopyFormula(f.Right)}
	case *Or:
		return &Or{Left: CopyFormula(f.Left), Right: CopyFormula(f.Right)}
	case nil:
		return nil
	}
	panic("unknown formula type: " + f.FormulaName())
}

func copyFaces(faces []Face) []Face {
	if faces == nil {
		return nil
	}
	out := make([]Face, len(faces))
	for i, face := range faces {
		out[i] = Face{Cond: CopyFormula(face.Cond), Value: CopyTerm(face.Value)}
	}
	return out
}
