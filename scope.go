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
	"github.com/benbjohnson/immutable"

	"github.com/kanlang/kan/val"
)

var emptyNames = immutable.NewList()

// Scope is the checking context: an ordered sequence of (name, type-value)
// pairs for term-level variables, the evaluation environment binding each
// variable to a value (a fresh neutral unless a definition was supplied),
// and the interval-variable scope currently in effect.
//
// Scopes are persistent: Bind and BindDim return extended scopes backed by
// structural sharing, and the parent remains valid. A shared scope (e.g. a
// common prelude) must only ever be read after publication; under that
// discipline independent contexts may check against it in parallel.
type Scope struct {
	names    *immutable.List // string, outermost first
	types    *immutable.List // val.Value, parallel to names
	dimNames *immutable.List // string, outermost first
	env      val.Env
	dims     val.DimEnv
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{names: emptyNames, types: emptyNames, dimNames: emptyNames, env: val.NewEnv(), dims: val.NewDimEnv()}
}

// Get the number of term-level bindings in the scope.
func (s *Scope) Len() int { return s.types.Len() }

// Get the number of interval-variable bindings in the scope.
func (s *Scope) DimLen() int { return s.dims.Len() }

// Get the evaluation environment for the scope.
func (s *Scope) Env() val.Env { return s.env }

// Get the dimension environment for the scope.
func (s *Scope) DimEnv() val.DimEnv { return s.dims }

// Type resolves a de Bruijn index to the type of the corresponding
// variable.
func (s *Scope) Type(index int) (val.Value, bool) {
	n := s.types.Len()
	if index < 0 || index >= n {
		return nil, false
	}
	return s.types.Get(n - 1 - index).(val.Value), true
}

// Name returns the display name of the variable at a de Bruijn index.
func (s *Scope) Name(index int) string {
	n := s.names.Len()
	if index < 0 || index >= n {
		return ""
	}
	return s.names.Get(n - 1 - index).(string)
}

// DimName returns the display name of the interval variable at a de
// Bruijn index.
func (s *Scope) DimName(index int) string {
	n := s.dimNames.Len()
	if index < 0 || index >= n {
		return ""
	}
	return s.dimNames.Get(n - 1 - index).(string)
}

// Bind returns a scope extended with a variable of the given type, bound
// to a fresh neutral. The receiver is unchanged.
func (s *Scope) Bind(name string, ty val.Value) *Scope {
	fresh := &val.VNeutral{N: &val.NVar{Level: s.env.Len()}}
	return s.BindVal(name, ty, fresh)
}

// BindVal returns a scope extended with a variable of the given type bound
// to a definition. The receiver is unchanged.
func (s *Scope) BindVal(name string, ty val.Value, v val.Value) *Scope {
	return &Scope{
		names:    s.names.Append(name),
		types:    s.types.Append(ty),
		dimNames: s.dimNames,
		env:      s.env.Extend(v),
		dims:     s.dims,
	}
}

// BindDim returns a scope extended with a fresh interval variable. The
// receiver is unchanged.
func (s *Scope) BindDim(name string) *Scope {
	return s.bindDim(name, &val.DFree{Level: s.dims.Len()})
}

// BindDimVal returns a scope extended with an interval variable bound to a
// dimension value. The receiver is unchanged.
func (s *Scope) BindDimVal(d val.Dim) *Scope {
	return s.bindDim("", d)
}

func (s *Scope) bindDim(name string, d val.Dim) *Scope {
	return &Scope{
		names:    s.names,
		types:    s.types,
		dimNames: s.dimNames.Append(name),
		env:      s.env,
		dims:     s.dims.Extend(d),
	}
}
