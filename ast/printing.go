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

package ast

import (
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &termPrinter{} },
}

type termPrinter struct {
	sb strings.Builder
}

func (p *termPrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

// TermString returns a string representation of a Term, for error messages
// and debugging. Bound variables print as their de Bruijn index prefixed
// with '#' (term-level) or '@' (interval-level).
func TermString(t Term) string {
	p := printerPool.Get().(*termPrinter)
	termString(&p.sb, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// DimString returns a string representation of a dimension expression.
func DimString(d Dim) string {
	var sb strings.Builder
	dimString(&sb, d)
	return sb.String()
}

// FormulaString returns a string representation of a face formula.
func FormulaString(f Formula) string {
	var sb strings.Builder
	formulaString(&sb, false, f)
	return sb.String()
}

func termString(sb *strings.Builder, simple bool, t Term) {
	switch t := t.(type) {
	case *Universe:
		sb.WriteString("Type")
		sb.WriteString(strconv.Itoa(t.Level))

	case *Var:
		sb.WriteByte('#')
		sb.WriteString(strconv.Itoa(t.Index))

	case *Pi:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("Π(")
		sb.WriteString(binderName(t.Name))
		sb.WriteString(" : ")
		termString(sb, false, t.Domain)
		sb.WriteString("). ")
		termString(sb, false, t.Codomain)
		if simple {
			sb.WriteByte(')')
		}

	case *Lambda:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("λ")
		sb.WriteString(binderName(t.Name))
		sb.WriteString(". ")
		termString(sb, false, t.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *App:
		termString(sb, true, t.Func)
		sb.WriteByte(' ')
		termString(sb, true, t.Arg)

	case *PathType:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("Path ")
		termString(sb, true, t.Type)
		sb.WriteByte(' ')
		termString(sb, true, t.Left)
		sb.WriteByte(' ')
		termString(sb, true, t.Right)
		if simple {
			sb.WriteByte(')')
		}

	case *PathLambda:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteByte('<')
		sb.WriteString(binderName(t.Name))
		sb.WriteString("> ")
		termString(sb, false, t.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *PathApp:
		termString(sb, true, t.Path)
		sb.WriteString(" @ ")
		dimString(sb, t.Dim)

	case *SmoothPathType:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("Path^")
		sb.WriteString(strconv.Itoa(t.Order))
		sb.WriteByte(' ')
		termString(sb, true, t.Type)
		sb.WriteByte(' ')
		termString(sb, true, t.Left)
		sb.WriteByte(' ')
		termString(sb, true, t.Right)
		if simple {
			sb.WriteByte(')')
		}

	case *Comp:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("comp (λ")
		sb.WriteString(binderName(t.Name))
		sb.WriteString(". ")
		termString(sb, false, t.Family)
		sb.WriteString(") ")
		termString(sb, true, t.Base)
		sb.WriteByte(' ')
		facesString(sb, t.Faces)
		sb.WriteByte(' ')
		dimString(sb, t.Target)
		if simple {
			sb.WriteByte(')')
		}

	case *Coe:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("coe (λ")
		sb.WriteString(binderName(t.Name))
		sb.WriteString(". ")
		termString(sb, false, t.Family)
		sb.WriteString(") ")
		dimString(sb, t.Source)
		sb.WriteByte(' ')
		dimString(sb, t.Target)
		sb.WriteByte(' ')
		termString(sb, true, t.Base)
		if simple {
			sb.WriteByte(')')
		}

	case *HComp:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("hcomp ")
		termString(sb, true, t.Type)
		sb.WriteByte(' ')
		termString(sb, true, t.Base)
		sb.WriteByte(' ')
		facesString(sb, t.Faces)
		if simple {
			sb.WriteByte(')')
		}

	case nil:
		sb.WriteString("<nil>")

	default:
		panic("unknown term type: " + t.TermName())
	}
}

func dimString(sb *strings.Builder, d Dim) {
	switch d := d.(type) {
	case Dim0:
		sb.WriteByte('0')
	case Dim1:
		sb.WriteByte('1')
	case *DimVar:
		sb.WriteByte('@')
		sb.WriteString(strconv.Itoa(d.Index))
	case nil:
		sb.WriteString("<nil>")
	default:
		panic("unknown dimension type: " + d.DimName())
	}
}

func formulaString(sb *strings.Builder, simple bool, f Formula) {
	switch f := f.(type) {
	case Top:
		sb.WriteRune('⊤')
	case *Eq:
		sb.WriteByte('@')
		sb.WriteString(strconv.Itoa(f.Var))
		sb.WriteString(" = ")
		sb.WriteString(strconv.Itoa(f.End))
	case *And:
		if simple {
			sb.WriteByte('(')
		}
		formulaString(sb, true, f.Left)
		sb.WriteString(" ∧ ")
		formulaString(sb, true, f.Right)
		if simple {
			sb.WriteByte(')')
		}
	case *Or:
		if simple {
			sb.WriteByte('(')
		}
		formulaString(sb, true, f.Left)
		sb.WriteString(" ∨ ")
		formulaString(sb, true, f.Right)
		if simple {
			sb.WriteByte(')')
		}
	case nil:
		sb.WriteString("<nil>")
	default:
		panic("unknown formula type: " + f.FormulaName())
	}
}

func facesString(sb *strings.Builder, faces []Face) {
	sb.WriteByte('[')
	for i, face := range faces {
		if i > 0 {
			sb.WriteString(", ")
		}
		formulaString(sb, false, face.Cond)
		sb.WriteString(" ↦ ")
		termString(sb, false, face.Value)
	}
	sb.WriteByte(']')
}

func binderName(name string) string {
	if name == "" {
		return "_"
	}
	return name
}
