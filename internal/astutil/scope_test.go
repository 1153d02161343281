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

package astutil

import (
	"errors"
	"testing"

	. "github.com/kanlang/kan/construct"

	"github.com/kanlang/kan/ast"
)

func TestScopeCheck(t *testing.T) {
	if err := ScopeCheck(Var(0), 1, 0); err != nil {
		t.Fatal(err)
	}
	if err := ScopeCheck(Lam("y", Var(1)), 1, 0); err != nil {
		t.Fatal(err)
	}
	if err := ScopeCheck(PLam("i", PApp(Var(0), DVar(0))), 1, 0); err != nil {
		t.Fatal(err)
	}
	// The composition's family and face payloads see one extra interval
	// variable; its base and target do not.
	if err := ScopeCheck(Comp("i", PApp(Var(0), DVar(0)), Var(0), nil, D0()), 1, 0); err != nil {
		t.Fatal(err)
	}
	payload := []ast.Face{Face(Eq(0, 0), PApp(Var(0), DVar(1)))}
	if err := ScopeCheck(Comp("i", Var(0), Var(0), payload, DVar(0)), 1, 1); err != nil {
		t.Fatal(err)
	}

	var se *ScopeError

	err := ScopeCheck(Var(2), 2, 0)
	if !errors.As(err, &se) || se.Index != 2 || se.Interval {
		t.Fatalf("error: %v", err)
	}
	if se.Error() != "unbound variable #2" {
		t.Fatalf("message: %s", se.Error())
	}

	err = ScopeCheck(PApp(Var(0), DVar(1)), 1, 1)
	if !errors.As(err, &se) || se.Index != 1 || !se.Interval || se.Face {
		t.Fatalf("error: %v", err)
	}
	if se.Error() != "unbound interval variable @1" {
		t.Fatalf("message: %s", se.Error())
	}

	// An out-of-scope formula is tagged as a face violation.
	faces := []ast.Face{Face(Eq(0, 1), Var(0))}
	err = ScopeCheck(Comp("i", Var(0), Var(0), faces, D0()), 1, 0)
	if !errors.As(err, &se) || !se.Interval || !se.Face {
		t.Fatalf("error: %v", err)
	}

	// Base and target are scoped outside the fill variable.
	err = ScopeCheck(Comp("i", Var(0), Var(0), nil, DVar(0)), 1, 0)
	if !errors.As(err, &se) || !se.Interval || se.Face {
		t.Fatalf("error: %v", err)
	}
}

func TestDimOccurs(t *testing.T) {
	if !DimOccurs(PApp(Var(0), DVar(0)), 0) {
		t.Fatal("occurrence not found")
	}
	if DimOccurs(PApp(Var(0), DVar(0)), 1) {
		t.Fatal("spurious occurrence")
	}

	// Interval binders shift the index under inspection.
	if !DimOccurs(PLam("j", PApp(Var(0), DVar(1))), 0) {
		t.Fatal("occurrence under binder not found")
	}
	if DimOccurs(PLam("j", PApp(Var(0), DVar(0))), 0) {
		t.Fatal("bound occurrence miscounted as free")
	}
	if !DimOccurs(Comp("i", PApp(Var(0), DVar(1)), Var(0), nil, D0()), 0) {
		t.Fatal("occurrence in family not found")
	}
	if !DimOccurs(Comp("i", Var(0), Var(0), nil, DVar(0)), 0) {
		t.Fatal("occurrence in target not found")
	}
	if DimOccurs(Comp("i", PApp(Var(0), DVar(0)), Var(0), nil, D0()), 0) {
		t.Fatal("fill variable miscounted as free")
	}
}

func TestFormulaRefers(t *testing.T) {
	f := And(Eq(0, 0), Or(Top(), Eq(2, 1)))
	if !FormulaRefers(f, 0) || !FormulaRefers(f, 2) {
		t.Fatal("reference not found")
	}
	if FormulaRefers(f, 1) {
		t.Fatal("spurious reference")
	}
}

func TestScopeCheckFormula(t *testing.T) {
	if err := ScopeCheckFormula(And(Eq(0, 0), Eq(1, 1)), 2); err != nil {
		t.Fatal(err)
	}
	var se *ScopeError
	err := ScopeCheckFormula(Or(Top(), Eq(2, 0)), 2)
	if !errors.As(err, &se) || se.Index != 2 || !se.Interval {
		t.Fatalf("error: %v", err)
	}
}
