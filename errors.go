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
	"strconv"

	"github.com/kanlang/kan/ast"
)

// Kind tags the closed set of kernel failure conditions.
type Kind int

const (
	// Conversion check failed during checking or application
	TypeMismatch Kind = iota
	// Scope violation; a contract breach by the caller, not a user error
	UnboundVariable
	// A checkable-only form was presented to synthesis
	CannotInfer
	// A face formula is ill-scoped, or overlapping faces disagree
	InvalidFace
	// A Kan operation was requested on an unsupported shape with no
	// neutral fallback
	InvalidKan
	// The recursion fuel limit was exceeded
	NonTermination
)

func (k Kind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case UnboundVariable:
		return "UnboundVariable"
	case CannotInfer:
		return "CannotInfer"
	case InvalidFace:
		return "InvalidFace"
	case InvalidKan:
		return "InvalidKan"
	case NonTermination:
		return "NonTermination"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Error is the result type carried by every failing kernel operation.
// The first failure aborts the derivation; the kernel never recovers,
// retries or substitutes defaults.
type Error struct {
	Kind Kind
	// Printed expected/actual types, for TypeMismatch
	Expected string
	Actual   string
	// De Bruijn index, for UnboundVariable
	Index int
	// Offending term, for CannotInfer
	Term ast.Term
	// Free-form detail, for InvalidFace and InvalidKan
	Reason string
}

func (e *Error) Error() string {
	switch e.Kind {
	case TypeMismatch:
		return "Type mismatch: expected " + e.Expected + ", found " + e.Actual
	case UnboundVariable:
		return "Unbound variable " + strconv.Itoa(e.Index)
	case CannotInfer:
		return "Cannot infer a type for " + ast.TermString(e.Term)
	case InvalidFace:
		return "Invalid face: " + e.Reason
	case InvalidKan:
		return "Invalid Kan operation: " + e.Reason
	case NonTermination:
		return "Recursion limit exceeded"
	}
	return "Unknown kernel error"
}

// ErrorKind extracts the failure kind from an error returned by the
// kernel. The second result is false if err did not originate here.
func ErrorKind(err error) (Kind, bool) {
	var ke *Error
	if errors.As(err, &ke) {
		return ke.Kind, true
	}
	return 0, false
}

func mismatchError(expected, actual string) *Error {
	return &Error{Kind: TypeMismatch, Expected: expected, Actual: actual}
}

func unboundError(index int) *Error {
	return &Error{Kind: UnboundVariable, Index: index}
}

func cannotInferError(t ast.Term) *Error {
	return &Error{Kind: CannotInfer, Term: t}
}

func invalidFaceError(reason string) *Error {
	return &Error{Kind: InvalidFace, Reason: reason}
}

func invalidKanError(reason string) *Error {
	return &Error{Kind: InvalidKan, Reason: reason}
}

func nonTerminationError() *Error {
	return &Error{Kind: NonTermination}
}
