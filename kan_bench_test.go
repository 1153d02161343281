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
)

func BenchmarkCheckIdentity(b *testing.B) {
	s, ctx := NewScope(), NewContext()

	ty, err := ctx.Eval(Pi("A", Type(0), Pi("y", Var(0), Var(1))), s.Env(), s.DimEnv())
	if err != nil {
		b.Fatal(err)
	}
	id := Lam("A", Lam("y", Var(0)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ctx.Check(id, ty, s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNormalizeComp(b *testing.B) {
	s, ctx := testScope(), NewContext()
	term := Comp("i", Path(PApp(Var(1), DVar(0)), Var(0), Var(0)), Var(0), nil, D1())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ctx.Normalize(term, s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNormalizeBeta(b *testing.B) {
	s, ctx := testScope(), NewContext()
	term := App(Lam("y", Var(0)), App(Lam("z", Var(0)), Var(0)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ctx.Normalize(term, s); err != nil {
			b.Fatal(err)
		}
	}
}
