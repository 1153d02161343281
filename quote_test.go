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
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/kanlang/kan/construct"

	"github.com/kanlang/kan/ast"
)

func TestNormalFormsStable(t *testing.T) {
	// Terms already in normal form read back unchanged.
	terms := []ast.Term{
		Type(3),
		Pi("A", Type(0), Pi("y", Var(0), Var(1))),
		Lam("y", Var(0)),
		Path(Type(1), Type(0), Type(0)),
		PLam("i", Type(0)),
		SmoothPath(2, Type(1), Type(0), Type(0)),
	}
	for _, term := range terms {
		nf, err := NewContext().Normalize(term, NewScope())
		if err != nil {
			t.Fatalf("%s: %v", ast.TermString(term), err)
		}
		if diff := cmp.Diff(term, nf); diff != "" {
			t.Fatalf("%s (-term +normal):\n%s", ast.TermString(term), diff)
		}
	}
}

func TestNormalizeReducesUnderBinders(t *testing.T) {
	nf, err := NewContext().Normalize(Lam("y", App(Lam("z", Var(0)), Var(0))), NewScope())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ast.Term(Lam("y", Var(0))), nf); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestNormalizeNeutralSpine(t *testing.T) {
	s, ctx := testScope(), NewContext()

	// Applications stuck on free variables read back as themselves.
	term := ast.Term(PApp(Var(1), D0()))
	nf, err := ctx.Normalize(term, s)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(term, nf); diff != "" {
		t.Fatalf("(-term +normal):\n%s", diff)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	s, ctx := testScope(), NewContext()

	term := Comp("i", Path(PApp(Var(1), DVar(0)), Var(0), Var(0)), Var(0), nil, D1())
	once, err := ctx.Normalize(term, s)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := ctx.Normalize(once, s)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("(-once +twice):\n%s", diff)
	}
}
