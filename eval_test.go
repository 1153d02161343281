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
	"github.com/kanlang/kan/val"
)

func TestBetaReduction(t *testing.T) {
	s, ctx := testScope(), NewContext()

	nf, err := ctx.Normalize(App(Lam("y", Var(0)), Var(0)), s)
	if err != nil {
		t.Fatal(err)
	}
	if !ast.TermEqual(nf, Var(0)) {
		t.Fatalf("normal form: %s", ast.TermString(nf))
	}
}

func TestBinderBodiesSuspended(t *testing.T) {
	// The lambda body applies a universe as if it were a function. Since
	// binder bodies are suspended in closures, evaluating the lambda
	// itself must succeed; only forcing the body fails.
	s := NewScope().BindVal("A", &val.VUniverse{Level: 1}, &val.VUniverse{Level: 0})
	ctx := NewContext()

	v, err := ctx.Eval(Lam("y", App(Var(1), Var(0))), s.Env(), s.DimEnv())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(*val.VLambda); !ok {
		t.Fatalf("value: %s", val.ValueString(v))
	}

	_, err = ctx.Eval(App(Lam("y", App(Var(1), Var(0))), Var(0)), s.Env(), s.DimEnv())
	if kind, ok := ErrorKind(err); !ok || kind != InvalidKan {
		t.Fatalf("error: %v", err)
	}
}

func TestEvalDeterministic(t *testing.T) {
	s := testScope()
	term := Comp("i", Path(PApp(Var(1), DVar(0)), Var(0), Var(0)), Var(0), nil, D1())

	nf1, err := NewContext().Normalize(term, s)
	if err != nil {
		t.Fatal(err)
	}
	nf2, err := NewContext().Normalize(term, s)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(nf1, nf2); diff != "" {
		t.Fatalf("normal forms differ (-first +second):\n%s", diff)
	}
}

func TestFuelExhaustion(t *testing.T) {
	s, ctx := testScope(), NewContext()
	ctx.SetFuel(8)

	term := ast.Term(Var(0))
	for i := 0; i < 32; i++ {
		term = App(Lam("y", Var(0)), term)
	}
	_, err := ctx.Eval(term, s.Env(), s.DimEnv())
	if kind, ok := ErrorKind(err); !ok || kind != NonTermination {
		t.Fatalf("error: %v", err)
	}

	// The same term fits comfortably within the default budget.
	ctx.SetFuel(DefaultFuel)
	if _, err := ctx.Eval(term, s.Env(), s.DimEnv()); err != nil {
		t.Fatal(err)
	}
}

func TestSelfApplicationDiverges(t *testing.T) {
	ctx := NewContext()
	ctx.SetFuel(10000)

	omega := Lam("y", App(Var(0), Var(0)))
	_, err := ctx.Eval(App(omega, omega), val.NewEnv(), val.NewDimEnv())
	if kind, ok := ErrorKind(err); !ok || kind != NonTermination {
		t.Fatalf("error: %v", err)
	}
}

func TestContextReset(t *testing.T) {
	ctx := NewContext()

	if _, err := ctx.Infer(Var(0), NewScope()); err == nil {
		t.Fatal("expected an unbound-variable error")
	}
	if ctx.Error() == nil || ctx.InvalidTerm() == nil {
		t.Fatal("failure not recorded on the context")
	}

	// A subsequent successful call clears the recorded failure.
	if _, err := ctx.Infer(Type(0), NewScope()); err != nil {
		t.Fatal(err)
	}
	if ctx.Error() != nil || ctx.InvalidTerm() != nil {
		t.Fatalf("stale failure on the context: %v", ctx.Error())
	}
}

func TestEvalUnboundVariable(t *testing.T) {
	ctx := NewContext()

	_, err := ctx.Eval(Var(3), val.NewEnv(), val.NewDimEnv())
	if kind, ok := ErrorKind(err); !ok || kind != UnboundVariable {
		t.Fatalf("error: %v", err)
	}
}
