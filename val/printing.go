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
	"strconv"
	"strings"
)

// ValueString returns a shallow string representation of a Value, for
// error messages and debugging. Closures print as opaque placeholders;
// faithful display of a value goes through the normalizer instead.
func ValueString(v Value) string {
	var sb strings.Builder
	valueString(&sb, v)
	return sb.String()
}

// DimValString returns a string representation of a dimension value.
func DimValString(d Dim) string {
	switch d := d.(type) {
	case D0:
		return "0"
	case D1:
		return "1"
	case *DFree:
		return "@" + strconv.Itoa(d.Level)
	case nil:
		return "<nil>"
	}
	panic("unknown dimension value: " + d.DimName())
}

func valueString(sb *strings.Builder, v Value) {
	switch v := v.(type) {
	case *VUniverse:
		sb.WriteString("Type")
		sb.WriteString(strconv.Itoa(v.Level))

	case *VPi:
		sb.WriteString("Π(")
		if v.Name != "" {
			sb.WriteString(v.Name)
		} else {
			sb.WriteByte('_')
		}
		sb.WriteString(" : ")
		valueString(sb, v.Domain)
		sb.WriteString("). …")

	case *VLambda:
		sb.WriteString("λ")
		if v.Name != "" {
			sb.WriteString(v.Name)
		} else {
			sb.WriteByte('_')
		}
		sb.WriteString(". …")

	case *VPathType:
		sb.WriteString("Path ")
		valueString(sb, v.Type)
		sb.WriteByte(' ')
		valueString(sb, v.Left)
		sb.WriteByte(' ')
		valueString(sb, v.Right)

	case *VPathLambda:
		sb.WriteByte('<')
		if v.Name != "" {
			sb.WriteString(v.Name)
		} else {
			sb.WriteByte('_')
		}
		sb.WriteString("> …")

	case *VSmoothPathType:
		sb.WriteString("Path^")
		sb.WriteString(strconv.Itoa(v.Order))
		sb.WriteByte(' ')
		valueString(sb, v.Type)
		sb.WriteByte(' ')
		valueString(sb, v.Left)
		sb.WriteByte(' ')
		valueString(sb, v.Right)

	case *VNeutral:
		neutralString(sb, v.N)

	case nil:
		sb.WriteString("<nil>")

	default:
		panic("unknown value type: " + v.ValueName())
	}
}

func neutralString(sb *strings.Builder, n Neutral) {
	switch n := n.(type) {
	case *NVar:
		sb.WriteByte('#')
		sb.WriteString(strconv.Itoa(n.Level))

	case *NApp:
		neutralString(sb, n.Func)
		sb.WriteByte(' ')
		valueString(sb, n.Arg)

	case *NPathApp:
		neutralString(sb, n.Func)
		sb.WriteString(" @ ")
		sb.WriteString(DimValString(n.Arg))

	case *NComp:
		sb.WriteString("comp … ")
		valueString(sb, n.Base)
		sb.WriteString(" … ")
		sb.WriteString(DimValString(n.Target))

	case *NCoe:
		sb.WriteString("coe … ")
		sb.WriteString(DimValString(n.Source))
		sb.WriteByte(' ')
		sb.WriteString(DimValString(n.Target))
		sb.WriteByte(' ')
		valueString(sb, n.Base)

	case nil:
		sb.WriteString("<nil>")

	default:
		panic("unknown neutral type: " + n.NeutralName())
	}
}
