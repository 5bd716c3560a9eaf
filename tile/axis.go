// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tile

import (
	"strings"

	"cogentcore.org/core/math32"
)

// Axis is the axis along which segments are stacked.
type Axis int32 //enums:enum -accept-lower

const (
	// X stacks along the X axis.
	X Axis = iota

	// Y stacks along the Y axis.
	Y

	// Z stacks along the Z axis. It is the default, and also the
	// fallback for any value that is not a known axis.
	Z
)

// axisFuncs maps each axis to its vector component accessor and setter.
// Entries are indexed by [Axis]; see [Axis.funcs] for the fallback.
var axisFuncs = [AxisN]struct {
	dim math32.Dims
	get func(v math32.Vector3) float32
	set func(v *math32.Vector3, value float32)
}{
	X: {math32.X, func(v math32.Vector3) float32 { return v.X }, func(v *math32.Vector3, value float32) { v.X = value }},
	Y: {math32.Y, func(v math32.Vector3) float32 { return v.Y }, func(v *math32.Vector3, value float32) { v.Y = value }},
	Z: {math32.Z, func(v math32.Vector3) float32 { return v.Z }, func(v *math32.Vector3, value float32) { v.Z = value }},
}

// IsValid returns whether the axis is one of [X], [Y], or [Z].
func (a Axis) IsValid() bool {
	return a >= X && a < AxisN
}

// Resolved returns the axis actually used for layout:
// the axis itself if it is valid, and [Z] otherwise.
func (a Axis) Resolved() Axis {
	if !a.IsValid() {
		return Z
	}
	return a
}

func (a Axis) funcs() int {
	return int(a.Resolved())
}

// Dim returns the [math32.Dims] for the resolved axis.
func (a Axis) Dim() math32.Dims {
	return axisFuncs[a.funcs()].dim
}

// ParseAxis parses an axis name (X, Y, or Z, in upper or lower case).
// It returns [Z] along with the error for any other name.
func ParseAxis(s string) (Axis, error) {
	var a Axis
	if err := a.SetString(strings.TrimSpace(s)); err != nil {
		return Z, err
	}
	return a, nil
}

// Component returns the component of v selected by the axis.
func Component(v math32.Vector3, a Axis) float32 {
	return axisFuncs[a.funcs()].get(v)
}

// Along returns a vector with value on the given axis and
// zero on the other two.
func Along(a Axis, value float32) math32.Vector3 {
	var v math32.Vector3
	axisFuncs[a.funcs()].set(&v, value)
	return v
}
