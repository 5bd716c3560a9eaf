// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tilemesh

import (
	"cogentcore.org/tilemesh/asset"
	"cogentcore.org/tilemesh/scene"
	"cogentcore.org/tilemesh/tile"
)

// Config is the editable configuration of a [Component].
type Config struct {

	// SegmentCount is the number of segments to stack.
	// Values below 1 are treated as 1, and values above
	// [MaxSegments] as MaxSegments.
	SegmentCount int

	// HeightAxis is the axis along which segments are stacked.
	HeightAxis tile.Axis

	// SegmentAsset is the mesh used for every segment.
	// No segments are built while it is empty.
	SegmentAsset asset.MeshName

	// AttachTarget is the node to parent segments under. If it is
	// [scene.NoNode] or no longer valid, the owner root node is used.
	AttachTarget scene.NodeID

	// AnchorTarget is an optional node that is moved to the far
	// end of the stack after every successful rebuild.
	AnchorTarget scene.NodeID
}

// Defaults sets the default configuration: one segment stacked along Z.
func (cf *Config) Defaults() {
	cf.SegmentCount = 1
	cf.HeightAxis = tile.Z
}

// MaxSegments is the largest number of segments a [Component] builds.
const MaxSegments = 4096

// Count returns the number of segments to build:
// [Config.SegmentCount] clamped to the range [1, MaxSegments].
func (cf *Config) Count() int {
	return min(max(cf.SegmentCount, 1), MaxSegments)
}

// Changed returns the fields that differ between cf and old, in field order.
func (cf *Config) Changed(old Config) []Field {
	var fs []Field
	if cf.SegmentCount != old.SegmentCount {
		fs = append(fs, FieldSegmentCount)
	}
	if cf.HeightAxis != old.HeightAxis {
		fs = append(fs, FieldHeightAxis)
	}
	if cf.SegmentAsset != old.SegmentAsset {
		fs = append(fs, FieldSegmentAsset)
	}
	if cf.AttachTarget != old.AttachTarget {
		fs = append(fs, FieldAttachTarget)
	}
	if cf.AnchorTarget != old.AnchorTarget {
		fs = append(fs, FieldAnchorTarget)
	}
	return fs
}

// Field identifies a configuration field in change notifications.
// Hosts may pass values outside of the known fields for unrelated
// properties; see [Field.IsRelevant].
type Field int32 //enums:enum -trim-prefix Field

const (
	// FieldSegmentCount is [Config.SegmentCount].
	FieldSegmentCount Field = iota

	// FieldHeightAxis is [Config.HeightAxis].
	FieldHeightAxis

	// FieldSegmentAsset is [Config.SegmentAsset].
	FieldSegmentAsset

	// FieldAttachTarget is [Config.AttachTarget].
	FieldAttachTarget

	// FieldAnchorTarget is [Config.AnchorTarget].
	FieldAnchorTarget
)

// IsRelevant returns whether a change to the field requires a rebuild.
func (f Field) IsRelevant() bool {
	return f >= FieldSegmentCount && f < FieldN
}
