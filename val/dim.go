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

package val

// Dim is the base for dimension values: an endpoint of the abstract
// interval, or a free interval variable identified by its de Bruijn level.
type Dim interface {
	// Name of the value-type of the dimension.
	DimName() string
}

var (
	_ Dim = D0{}
	_ Dim = D1{}
	_ Dim = (*DFree)(nil)
)

// Left endpoint of the interval
type D0 struct{}

// "D0"
func (d D0) DimName() string { return "D0" }

// Right endpoint of the interval
type D1 struct{}

// "D1"
func (d D1) DimName() string { return "D1" }

// Free interval variable, identified by de Bruijn level
type DFree struct {
	Level int
}

// "DFree"
func (d *DFree) DimName() string { return "DFree" }

// DimValEqual reports whether two dimension values are equal.
func DimValEqual(a, b Dim) bool {
	switch a := a.(type) {
	case D0:
		_, ok := b.(D0)
		return ok
	case D1:
		_, ok := b.(D1)
		return ok
	case *DFree:
		b, ok := b.(*DFree)
		return ok && a.Level == b.Level
	case nil:
		return b == nil
	}
	panic("unknown dimension value: " + a.DimName())
}

// Formula is the base for face formulas resolved against a dimension
// environment: interval variables are replaced by their levels, and
// equations decided by the environment reduce to FTop or FBot.
type Formula interface {
	// Name of the value-type of the formula.
	FormulaName() string
}

var (
	_ Formula = FTop{}
	_ Formula = FBot{}
	_ Formula = (*FEq)(nil)
	_ Formula = (*FAnd)(nil)
	_ Formula = (*FOr)(nil)
)

// The constant true formula
type FTop struct{}

// "FTop"
func (f FTop) FormulaName() string { return "FTop" }

// The unsatisfiable formula, produced when an equation is decided false by
// the dimension environment
type FBot struct{}

// "FBot"
func (f FBot) FormulaName() string { return "FBot" }

// Endpoint equation on a free interval variable
type FEq struct {
	// De Bruijn level of the constrained interval variable
	Level int
	// Constrained endpoint, 0 or 1
	End int
}

// "FEq"
func (f *FEq) FormulaName() string { return "FEq" }

// Conjunction
type FAnd struct {
	Left  Formula
	Right Formula
}

// "FAnd"
func (f *FAnd) FormulaName() string { return "FAnd" }

// Disjunction
type FOr struct {
	Left  Formula
	Right Formula
}

// "FOr"
func (f *FOr) FormulaName() string { return "FOr" }

// MakeAnd builds a conjunction, folding away decided operands.
func MakeAnd(a, b Formula) Formula {
	if _, ok := a.(FBot); ok {
		return FBot{}
	}
	if _, ok := b.(FBot); ok {
		return FBot{}
	}
	if _, ok := a.(FTop); ok {
		return b
	}
	if _, ok := b.(FTop); ok {
		return a
	}
	return &FAnd{Left: a, Right: b}
}

// MakeOr builds a disjunction, folding away decided operands.
func MakeOr(a, b Formula) Formula {
	if _, ok := a.(FTop); ok {
		return FTop{}
	}
	if _, ok := b.(FTop); ok {
		return FTop{}
	}
	if _, ok := a.(FBot); ok {
		return b
	}
	if _, ok := b.(FBot); ok {
		return a
	}
	return &FOr{Left: a, Right: b}
}
