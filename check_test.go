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

	. "github.com/kanlang/kan/construct"

	"github.com/kanlang/kan/ast"
	"github.com/kanlang/kan/val"
)

func TestCheckPolymorphicIdentity(t *testing.T) {
	s, ctx := NewScope(), NewContext()

	ty, err := ctx.Eval(Pi("A", Type(0), Pi("y", Var(0), Var(1))), s.Env(), s.DimEnv())
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.Check(Lam("A", Lam("y", Var(0))), ty, s); err != nil {
		t.Fatal(err)
	}
}

func TestCheckLambdaBodyMismatch(t *testing.T) {
	s, ctx := NewScope(), NewContext()

	ty, err := ctx.Eval(Pi("A", Type(0), Pi("y", Var(0), Var(1))), s.Env(), s.DimEnv())
	if err != nil {
		t.Fatal(err)
	}
	// The body returns the type A where a member of A is required.
	err = ctx.Check(Lam("A", Lam("y", Var(1))), ty, s)
	if kind, ok := ErrorKind(err); !ok || kind != TypeMismatch {
		t.Fatalf("error: %v", err)
	}
	if ctx.InvalidTerm() == nil {
		t.Fatal("offending term not recorded")
	}
}

func TestCheckLambdaAgainstNonFunction(t *testing.T) {
	ctx := NewContext()

	err := ctx.Check(Lam("y", Var(0)), &val.VUniverse{Level: 0}, NewScope())
	if kind, ok := ErrorKind(err); !ok || kind != TypeMismatch {
		t.Fatalf("error: %v", err)
	}
}

func TestCheckPathRefl(t *testing.T) {
	s, ctx := testScope(), NewContext()

	ty, err := ctx.Eval(Path(Var(2), Var(0), Var(0)), s.Env(), s.DimEnv())
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.Check(PLam("i", Var(0)), ty, s); err != nil {
		t.Fatal(err)
	}
}

func TestCheckPathEndpointMismatch(t *testing.T) {
	s, ctx := testScope(), NewContext()
	aTy, _ := s.Type(0)
	s = s.Bind("y", aTy) // y=0, x=1, p=2, A=3

	ty, err := ctx.Eval(Path(Var(3), Var(1), Var(0)), s.Env(), s.DimEnv())
	if err != nil {
		t.Fatal(err)
	}
	// The constant path at x has the wrong right endpoint.
	err = ctx.Check(PLam("i", Var(1)), ty, s)
	if kind, ok := ErrorKind(err); !ok || kind != TypeMismatch {
		t.Fatalf("error: %v", err)
	}
}

func TestCheckSmoothPathRefl(t *testing.T) {
	s, ctx := testScope(), NewContext()

	ty, err := ctx.Eval(SmoothPath(2, Var(2), Var(0), Var(0)), s.Env(), s.DimEnv())
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.Check(PLam("i", Var(0)), ty, s); err != nil {
		t.Fatal(err)
	}
}

func TestCheckComp(t *testing.T) {
	s, ctx := testScope(), NewContext()
	aTy, _ := s.Type(0)

	comp := Comp("i", Var(2), Var(0), []ast.Face{Face(Top(), Var(0))}, D1())
	if err := ctx.Check(comp, aTy, s); err != nil {
		t.Fatal(err)
	}
}

func TestCheckCompBaseMismatch(t *testing.T) {
	s, ctx := testScope(), NewContext()

	// The base is a path, not a member of A.
	_, err := ctx.Infer(Comp("i", Var(2), Var(1), nil, D1()), s)
	if kind, ok := ErrorKind(err); !ok || kind != TypeMismatch {
		t.Fatalf("error: %v", err)
	}
}

func TestCheckCompIllScopedFace(t *testing.T) {
	s, ctx := testScope(), NewContext()

	// No interval variables are in scope, so the formula cannot refer to
	// one.
	faces := []ast.Face{Face(Eq(0, 1), Var(0))}
	_, err := ctx.Infer(Comp("i", Var(2), Var(0), faces, D1()), s)
	if kind, ok := ErrorKind(err); !ok || kind != InvalidFace {
		t.Fatalf("error: %v", err)
	}
}

func TestCheckCompOverlapDisagree(t *testing.T) {
	s, ctx := testScope(), NewContext()
	aTy, _ := s.Type(0)
	s = s.Bind("y", aTy) // y=0, x=1, p=2, A=3

	faces := []ast.Face{Face(Top(), Var(1)), Face(Top(), Var(0))}
	_, err := ctx.Infer(Comp("i", Var(3), Var(1), faces, D1()), s)
	if kind, ok := ErrorKind(err); !ok || kind != InvalidFace {
		t.Fatalf("error: %v", err)
	}
}

func TestCheckCompOverlapAgree(t *testing.T) {
	s, ctx := testScope(), NewContext()

	faces := []ast.Face{Face(Top(), Var(0)), Face(Top(), Var(0))}
	if _, err := ctx.Infer(Comp("i", Var(2), Var(0), faces, D1()), s); err != nil {
		t.Fatal(err)
	}
}

func TestCheckCompDisjointFaces(t *testing.T) {
	s, ctx := testScope(), NewContext()
	s = s.BindDim("j")

	// The two faces constrain j to different endpoints; no agreement
	// obligation arises, even with distinct payloads.
	aTy, _ := s.Type(0)
	s2 := s.Bind("y", aTy) // y=0, x=1, p=2, A=3
	faces := []ast.Face{Face(Eq(0, 0), Var(1)), Face(Eq(0, 1), Var(0))}
	if _, err := ctx.Infer(Comp("i", Var(3), Var(1), faces, D1()), s2); err != nil {
		t.Fatal(err)
	}
}

func TestCheckCompFacesAgreeOnOverlapOnly(t *testing.T) {
	s, ctx := testScope(), NewContext()
	s = s.BindDim("j")

	// Both faces fire only where j = 0, and there the payloads coincide
	// definitionally; at a generic j they differ. Agreement is owed only
	// on the overlap, so the composition must be accepted.
	faces := []ast.Face{
		Face(Eq(0, 0), PApp(Var(1), D0())),
		Face(Eq(0, 0), PApp(Var(1), DVar(1))),
	}
	ty, err := ctx.Infer(Comp("i", Type(0), PApp(Var(1), D0()), faces, D1()), s)
	if err != nil {
		t.Fatal(err)
	}
	if u, ok := ty.(*val.VUniverse); !ok || u.Level != 0 {
		t.Fatalf("type: %s", val.ValueString(ty))
	}
}

func TestCheckCompDisjunctiveFace(t *testing.T) {
	s, ctx := testScope(), NewContext()
	s = s.BindDim("j")

	faces := []ast.Face{Face(Or(Eq(0, 0), Eq(0, 1)), Var(0))}
	if _, err := ctx.Infer(Comp("i", Var(2), Var(0), faces, D1()), s); err != nil {
		t.Fatal(err)
	}
}

func TestCheckCoe(t *testing.T) {
	s, ctx := testScope(), NewContext()
	aTy, _ := s.Type(0)

	if err := ctx.Check(Coe("i", Var(2), D0(), D1(), Var(0)), aTy, s); err != nil {
		t.Fatal(err)
	}
}

func TestCheckCoeFamilyNotAType(t *testing.T) {
	s, ctx := testScope(), NewContext()

	// x is a member of A, not a type family.
	_, err := ctx.Infer(Coe("i", Var(0), D0(), D1(), Var(0)), s)
	if kind, ok := ErrorKind(err); !ok || kind != TypeMismatch {
		t.Fatalf("error: %v", err)
	}
}

func TestCheckHComp(t *testing.T) {
	s, ctx := testScope(), NewContext()
	aTy, _ := s.Type(0)

	h := HComp(Var(2), Var(0), []ast.Face{Face(Top(), Var(0))})
	if err := ctx.Check(h, aTy, s); err != nil {
		t.Fatal(err)
	}
	ty, err := ctx.Infer(h, s)
	if err != nil {
		t.Fatal(err)
	}
	n, ok := ty.(*val.VNeutral)
	if !ok {
		t.Fatalf("type: %s", val.ValueString(ty))
	}
	if v, ok := n.N.(*val.NVar); !ok || v.Level != 0 {
		t.Fatalf("type: %s", val.ValueString(ty))
	}
}

func TestCheckNilTerm(t *testing.T) {
	ctx := NewContext()

	if _, err := ctx.Infer(nil, NewScope()); err == nil {
		t.Fatal("expected an error for a nil term")
	}
	if err := ctx.Check(nil, &val.VUniverse{Level: 0}, NewScope()); err == nil {
		t.Fatal("expected an error for a nil term")
	}
}
