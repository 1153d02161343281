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
	"errors"
	"testing"

	"github.com/kr/pretty"

	. "github.com/kanlang/kan/construct"

	"github.com/kanlang/kan/val"
)

func TestInferUniverseHierarchy(t *testing.T) {
	ctx := NewContext()

	ty, err := ctx.Infer(Type(0), NewScope())
	if err != nil {
		t.Fatal(err)
	}
	u, ok := ty.(*val.VUniverse)
	if !ok || u.Level != 1 {
		t.Fatalf("type: %# v", pretty.Formatter(ty))
	}
}

func TestInferPiLevel(t *testing.T) {
	ctx := NewContext()

	// Π lands in the universe at the maximum of its domain and codomain
	// levels.
	ty, err := ctx.Infer(Pi("y", Type(0), Type(1)), NewScope())
	if err != nil {
		t.Fatal(err)
	}
	if u, ok := ty.(*val.VUniverse); !ok || u.Level != 2 {
		t.Fatalf("type: %# v", pretty.Formatter(ty))
	}

	ty, err = ctx.Infer(Pi("A", Type(1), Pi("y", Var(0), Var(1))), NewScope())
	if err != nil {
		t.Fatal(err)
	}
	if u, ok := ty.(*val.VUniverse); !ok || u.Level != 2 {
		t.Fatalf("type: %# v", pretty.Formatter(ty))
	}
}

func TestInferVar(t *testing.T) {
	s, ctx := testScope(), NewContext()

	ty, err := ctx.Infer(Var(0), s)
	if err != nil {
		t.Fatal(err)
	}
	n, ok := ty.(*val.VNeutral)
	if !ok {
		t.Fatalf("type: %# v", pretty.Formatter(ty))
	}
	if v, ok := n.N.(*val.NVar); !ok || v.Level != 0 {
		t.Fatalf("type: %# v", pretty.Formatter(ty))
	}
}

func TestInferApplication(t *testing.T) {
	s, ctx := testScope(), NewContext()

	piTy, err := ctx.Eval(Pi("y", Var(2), Var(3)), s.Env(), s.DimEnv())
	if err != nil {
		t.Fatal(err)
	}
	s = s.Bind("f", piTy) // f=0, x=1, p=2, A=3

	ty, err := ctx.Infer(App(Var(0), Var(1)), s)
	if err != nil {
		t.Fatal(err)
	}
	n, ok := ty.(*val.VNeutral)
	if !ok {
		t.Fatalf("type: %# v", pretty.Formatter(ty))
	}
	if v, ok := n.N.(*val.NVar); !ok || v.Level != 0 {
		t.Fatalf("type: %# v", pretty.Formatter(ty))
	}
}

func TestInferApplicationOfNonFunction(t *testing.T) {
	s, ctx := testScope(), NewContext()

	_, err := ctx.Infer(App(Var(0), Var(0)), s)
	if kind, ok := ErrorKind(err); !ok || kind != TypeMismatch {
		t.Fatalf("error: %v", err)
	}
}

func TestInferPathApplication(t *testing.T) {
	s, ctx := testScope(), NewContext()

	ty, err := ctx.Infer(PApp(Var(1), D0()), s)
	if err != nil {
		t.Fatal(err)
	}
	if u, ok := ty.(*val.VUniverse); !ok || u.Level != 0 {
		t.Fatalf("type: %# v", pretty.Formatter(ty))
	}
}

func TestInferSmoothPathOrder(t *testing.T) {
	s, ctx := testScope(), NewContext()

	_, err := ctx.Infer(SmoothPath(0, Var(2), Var(0), Var(0)), s)
	if kind, ok := ErrorKind(err); !ok || kind != InvalidKan {
		t.Fatalf("error: %v", err)
	}

	ty, err := ctx.Infer(SmoothPath(2, Var(2), Var(0), Var(0)), s)
	if err != nil {
		t.Fatal(err)
	}
	if u, ok := ty.(*val.VUniverse); !ok || u.Level != 0 {
		t.Fatalf("type: %# v", pretty.Formatter(ty))
	}
}

func TestCannotInferAbstractions(t *testing.T) {
	ctx := NewContext()

	_, err := ctx.Infer(Lam("y", Var(0)), NewScope())
	if kind, ok := ErrorKind(err); !ok || kind != CannotInfer {
		t.Fatalf("error: %v", err)
	}

	_, err = ctx.Infer(PLam("i", Type(0)), NewScope())
	if kind, ok := ErrorKind(err); !ok || kind != CannotInfer {
		t.Fatalf("error: %v", err)
	}
}

func TestInferUnboundVariable(t *testing.T) {
	ctx := NewContext()

	_, err := ctx.Infer(Var(3), NewScope())
	kind, ok := ErrorKind(err)
	if !ok || kind != UnboundVariable {
		t.Fatalf("error: %v", err)
	}
	var ke *Error
	if !errors.As(err, &ke) || ke.Index != 3 {
		t.Fatalf("error: %# v", pretty.Formatter(err))
	}
}
