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

// Formula is the base for face formulas: boolean-like constraints over
// interval variables, attached to the faces of composition terms.
type Formula interface {
	// Name of the syntax-type of the formula.
	FormulaName() string
}

var (
	_ Formula = Top{}
	_ Formula = (*Eq)(nil)
	_ Formula = (*And)(nil)
	_ Formula = (*Or)(nil)
)

// The constant true formula
type Top struct{}

// "Top"
func (f Top) FormulaName() string { return "Top" }

// Endpoint equation: `i = 0` or `i = 1`
type Eq struct {
	// De Bruijn index of the constrained interval variable
	Var int
	// Constrained endpoint, 0 or 1
	End int
}

// "Eq"
func (f *Eq) FormulaName() string { return "Eq" }

// Conjunction of formulas: `φ ∧ ψ`
type And struct {
	Left  Formula
	Right Formula
}

// "And"
func (f *And) FormulaName() string { return "And" }

// Disjunction of formulas: `φ ∨ ψ`
type Or struct {
	Left  Formula
	Right Formula
}

// "Or"
func (f *Or) FormulaName() string { return "Or" }

// Face pairs a formula with the term the composition must produce wherever
// the formula is satisfied. The payload is scoped under the same additional
// interval variable as the composition's type family.
type Face struct {
	Cond  Formula
	Value Term
}
