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
	"github.com/kanlang/kan/ast"
)

// Value is the base for all semantic values produced by evaluation.
//
// Values are immutable after construction and may be shared by reference
// from any number of environments, closures and pending computations; they
// are never deep-copied on share and never mutated.
type Value interface {
	// Name of the value-type of the value.
	ValueName() string
}

var (
	_ Value = (*VUniverse)(nil)
	_ Value = (*VPi)(nil)
	_ Value = (*VLambda)(nil)
	_ Value = (*VPathType)(nil)
	_ Value = (*VPathLambda)(nil)
	_ Value = (*VSmoothPathType)(nil)
	_ Value = (*VNeutral)(nil)
)

// Universe of types
type VUniverse struct {
	Level int
}

// "VUniverse"
func (v *VUniverse) ValueName() string { return "VUniverse" }

// Dependent function type; the codomain is a closure awaiting the bound variable
type VPi struct {
	Name     string
	Domain   Value
	Codomain Closure
}

// "VPi"
func (v *VPi) ValueName() string { return "VPi" }

// Function value; the body is a closure awaiting the argument
type VLambda struct {
	Name string
	Body Closure
}

// "VLambda"
func (v *VLambda) ValueName() string { return "VLambda" }

// Path type value
type VPathType struct {
	Type  Value
	Left  Value
	Right Value
}

// "VPathType"
func (v *VPathType) ValueName() string { return "VPathType" }

// Path value; the body is a closure awaiting a dimension
type VPathLambda struct {
	Name string
	Body DimClosure
}

// "VPathLambda"
func (v *VPathLambda) ValueName() string { return "VPathLambda" }

// Smooth path type value carrying its differentiability order
type VSmoothPathType struct {
	Order int
	Type  Value
	Left  Value
	Right Value
}

// "VSmoothPathType"
func (v *VSmoothPathType) ValueName() string { return "VSmoothPathType" }

// Stuck computation
type VNeutral struct {
	N Neutral
}

// "VNeutral"
func (v *VNeutral) ValueName() string { return "VNeutral" }

// Neutral is the base for stuck computations: an eliminator applied to a
// free variable or to another neutral, or a Kan operation pending on a
// type-family shape the kernel does not reduce.
type Neutral interface {
	// Name of the value-type of the neutral.
	NeutralName() string
}

var (
	_ Neutral = (*NVar)(nil)
	_ Neutral = (*NApp)(nil)
	_ Neutral = (*NPathApp)(nil)
	_ Neutral = (*NComp)(nil)
	_ Neutral = (*NCoe)(nil)
)

// Free term-level variable, identified by de Bruijn level
type NVar struct {
	Level int
}

// "NVar"
func (n *NVar) NeutralName() string { return "NVar" }

// Application stuck on its function position
type NApp struct {
	Func Neutral
	Arg  Value
}

// "NApp"
func (n *NApp) NeutralName() string { return "NApp" }

// Path application stuck on its path position
type NPathApp struct {
	Func Neutral
	Arg  Dim
}

// "NPathApp"
func (n *NPathApp) NeutralName() string { return "NPathApp" }

// Composition pending on an unsupported type-family shape.
//
// Pending compositions are first-class values rather than errors; a later
// extension of the Kan operations may reduce them without changing the
// public contract.
type NComp struct {
	Family Family
	Base   Value
	Faces  []FaceVal
	Target Dim
}

// "NComp"
func (n *NComp) NeutralName() string { return "NComp" }

// Coercion pending on an unsupported type-family shape
type NCoe struct {
	Family Family
	Source Dim
	Target Dim
	Base   Value
}

// "NCoe"
func (n *NCoe) NeutralName() string { return "NCoe" }

// Closure is the base for suspended term-level bindings: an environment
// snapshot plus an unevaluated body. Bodies are only evaluated when the
// closure is applied, giving evaluation its call-by-need behavior.
type Closure interface {
	// Name of the value-type of the closure.
	ClosureName() string
}

var (
	_ Closure = (*TermClosure)(nil)
	_ Closure = (*FnClosure)(nil)
)

// Environment snapshot plus unevaluated body
type TermClosure struct {
	Env  Env
	Dims DimEnv
	Body ast.Term
}

// "TermClosure"
func (c *TermClosure) ClosureName() string { return "TermClosure" }

// Semantic function, used by the Kan operations to build pointwise results
type FnClosure struct {
	Fn func(Value) (Value, error)
}

// "FnClosure"
func (c *FnClosure) ClosureName() string { return "FnClosure" }

// DimClosure is the base for suspended interval-level bindings.
type DimClosure interface {
	// Name of the value-type of the closure.
	DimClosureName() string
}

var (
	_ DimClosure = (*DimTermClosure)(nil)
	_ DimClosure = (*DimFnClosure)(nil)
)

// Environment snapshot plus a body awaiting a dimension
type DimTermClosure struct {
	Env  Env
	Dims DimEnv
	Body ast.Term
}

// "DimTermClosure"
func (c *DimTermClosure) DimClosureName() string { return "DimTermClosure" }

// Semantic line of values, used by the Kan operations
type DimFnClosure struct {
	Fn func(Dim) (Value, error)
}

// "DimFnClosure"
func (c *DimFnClosure) DimClosureName() string { return "DimFnClosure" }

// Family is the base for type families handed to the Kan operations: a
// type possibly depending on one interval variable.
type Family interface {
	// Name of the value-type of the family.
	FamilyName() string
}

var (
	_ Family = (*ConstFamily)(nil)
	_ Family = (*BindFamily)(nil)
	_ Family = (*FnFamily)(nil)
)

// Dimension-independent family
type ConstFamily struct {
	Type Value
}

// "ConstFamily"
func (f *ConstFamily) FamilyName() string { return "ConstFamily" }

// Family abstracted over one interval variable (index 0 inside Body)
type BindFamily struct {
	Name string
	Env  Env
	Dims DimEnv
	Body ast.Term
}

// "BindFamily"
func (f *BindFamily) FamilyName() string { return "BindFamily" }

// Semantic line of types, used by the Kan operations to derive sub-families
type FnFamily struct {
	Fn func(Dim) (Value, error)
}

// "FnFamily"
func (f *FnFamily) FamilyName() string { return "FnFamily" }

// FaceVal pairs a resolved face formula with the payload the composition
// must produce wherever the formula is satisfied. The payload is a closure
// over the composition's interval variable.
type FaceVal struct {
	Cond  Formula
	Value DimClosure
}
