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

import (
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

// EmptyEnv is the environment with no bindings.
var EmptyEnv = Env{emptyList}

// Env is a persistent mapping from term-level de Bruijn indices to values.
//
// Extending an environment returns a new environment backed by structural
// sharing; the parent remains valid and unchanged. Index 0 refers to the
// most recently bound variable.
type Env struct {
	l *immutable.List
}

// NewEnv returns an empty environment.
func NewEnv() Env { return Env{emptyList} }

// Get the number of bindings in the environment.
func (e Env) Len() int {
	if e.l == nil {
		return 0
	}
	return e.l.Len()
}

// Extend returns a new environment with v bound at index 0. The receiver
// is unchanged.
func (e Env) Extend(v Value) Env {
	l := e.l
	if l == nil {
		l = emptyList
	}
	return Env{l.Append(v)}
}

// Lookup resolves a de Bruijn index to its value.
func (e Env) Lookup(index int) (Value, bool) {
	n := e.Len()
	if index < 0 || index >= n {
		return nil, false
	}
	return e.l.Get(n - 1 - index).(Value), true
}

// Iterate over bindings from the innermost (index 0) outward.
// If f returns false, iteration will be stopped.
func (e Env) Range(f func(int, Value) bool) {
	n := e.Len()
	for i := 0; i < n; i++ {
		if !f(i, e.l.Get(n-1-i).(Value)) {
			return
		}
	}
}

// EmptyDimEnv is the dimension environment with no bindings.
var EmptyDimEnv = DimEnv{emptyList}

// DimEnv is a persistent mapping from interval-variable de Bruijn indices
// to dimension values, with the same sharing discipline as Env.
type DimEnv struct {
	l *immutable.List
}

// NewDimEnv returns an empty dimension environment.
func NewDimEnv() DimEnv { return DimEnv{emptyList} }

// Get the number of bindings in the environment.
func (e DimEnv) Len() int {
	if e.l == nil {
		return 0
	}
	return e.l.Len()
}

// Extend returns a new environment with d bound at index 0. The receiver
// is unchanged.
func (e DimEnv) Extend(d Dim) DimEnv {
	l := e.l
	if l == nil {
		l = emptyList
	}
	return DimEnv{l.Append(d)}
}

// Lookup resolves an interval-variable de Bruijn index to its dimension.
func (e DimEnv) Lookup(index int) (Dim, bool) {
	n := e.Len()
	if index < 0 || index >= n {
		return nil, false
	}
	return e.l.Get(n - 1 - index).(Dim), true
}
