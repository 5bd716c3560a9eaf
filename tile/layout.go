// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tile computes where repeated mesh segments go when they are
// stacked end to end along one axis.
//
// Segments are placed so that the bounding box of each one starts flush
// where the previous one ends, with no scaling: segment i sits at
//
//	-halfExtent + i*2*halfExtent
//
// along the stacking axis, and the stack of n segments ends at n*2*halfExtent.
package tile

//go:generate core generate

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

// Tolerance is the segment length at or below which stacking
// is considered degenerate.
const Tolerance float32 = 1e-4

// ErrDegenerate is returned by [NewLayout] when the segment length
// along the stacking axis is at or below [Tolerance].
var ErrDegenerate = errors.New("tile: degenerate segment extent")

// Layout is the placement of segments along one axis,
// derived from the half-extents of the segment bounds.
type Layout struct {

	// Axis is the stacking axis, as given to [NewLayout].
	Axis Axis

	// HalfExtents are the segment bounding box half-extents.
	HalfExtents math32.Vector3

	// SegmentLength is the full extent of one segment along the axis.
	SegmentLength float32

	// BaseOffset is the offset of the first segment along the axis:
	// the negative half-extent.
	BaseOffset float32
}

// NewLayout returns the layout for segments with the given bounding
// half-extents stacked along the given axis. Invalid axes stack along [Z].
// It returns an error wrapping [ErrDegenerate] if the segment length
// is not above [Tolerance].
func NewLayout(halfExtents math32.Vector3, axis Axis) (Layout, error) {
	h := Component(halfExtents, axis)
	ly := Layout{
		Axis:          axis,
		HalfExtents:   halfExtents,
		SegmentLength: 2 * h,
		BaseOffset:    -h,
	}
	if !(ly.SegmentLength > Tolerance) { // also catches NaN
		return ly, fmt.Errorf("%w: length %g along %v", ErrDegenerate, ly.SegmentLength, axis.Resolved())
	}
	return ly, nil
}

// Value returns the offset of segment i along the axis.
func (ly Layout) Value(i int) float32 {
	return ly.BaseOffset + float32(i)*ly.SegmentLength
}

// Offset returns the local position of segment i.
func (ly Layout) Offset(i int) math32.Vector3 {
	return Along(ly.Axis, ly.Value(i))
}

// Offsets returns the local positions of n segments, in stacking order.
func (ly Layout) Offsets(n int) []math32.Vector3 {
	if n <= 0 {
		return nil
	}
	offs := make([]math32.Vector3, n)
	for i := range offs {
		offs[i] = ly.Offset(i)
	}
	return offs
}

// Extent returns the total extent of n stacked segments.
func (ly Layout) Extent(n int) float32 {
	return float32(n) * ly.SegmentLength
}

// ExtentOffset returns the position at the far end of n stacked segments.
func (ly Layout) ExtentOffset(n int) math32.Vector3 {
	return Along(ly.Axis, ly.Extent(n))
}

// HalfExtents returns the half-extents of the given box.
// Empty boxes have zero half-extents.
func HalfExtents(b math32.Box3) math32.Vector3 {
	if b.IsEmpty() {
		return math32.Vector3{}
	}
	return b.Size().MulScalar(0.5)
}
