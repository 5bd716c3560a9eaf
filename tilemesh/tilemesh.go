// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tilemesh provides a [Component] that builds a tiled structure
// (a tower, pipe, or fence) by stacking copies of one mesh along an axis,
// without distorting the individual segments.
//
// The component owns the segment nodes it creates. Every [Component.Rebuild]
// destroys the previous segments before creating new ones, so the scene
// never holds stale or duplicate segments, and configuration problems
// (no mesh, a zero-length mesh, no parent) simply leave the stack empty.
package tilemesh

//go:generate core generate

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/core/math32"

	"cogentcore.org/tilemesh/asset"
	"cogentcore.org/tilemesh/scene"
	"cogentcore.org/tilemesh/tile"
)

// Graph is the part of the host scene graph used by a [Component].
// It is implemented by [scene.Scene].
type Graph interface {
	NewNode(parent scene.NodeID, name string) scene.NodeID
	SetMesh(id scene.NodeID, mesh string)
	SetPos(id scene.NodeID, pos math32.Vector3)
	SetMobility(id scene.NodeID, m scene.Mobility)
	SetVisible(id scene.NodeID, visible bool)
	SetHiddenInGame(id scene.NodeID, hidden bool)
	Register(id scene.NodeID)
	Destroy(id scene.NodeID)
	IsValid(id scene.NodeID) bool
}

// Bounds provides the bounding half-extents of mesh assets.
// It is implemented by [asset.Library].
type Bounds interface {
	HalfExtents(name asset.MeshName) (math32.Vector3, bool)
}

// Owner is the object that owns a [Component]; segments are
// parented under its root node by default.
// It is implemented by [scene.Actor].
type Owner interface {
	Root() scene.NodeID
}

// States are the observable build states of a [Component].
type States int32 //enums:enum

const (
	// Unbuilt means there are no segments.
	Unbuilt States = iota

	// Built means the last rebuild created at least one segment.
	Built
)

// Component stacks [Config.SegmentCount] copies of [Config.SegmentAsset]
// along [Config.HeightAxis]. It is not safe for concurrent use;
// callers must serialize Rebuild and Clear.
type Component struct {
	Config

	// Editing is set in interactive authoring contexts, where
	// [Component.OnConfigChanged] rebuilds the segments.
	// Outside of them, configuration change notifications are ignored.
	Editing bool

	graph  Graph
	meshes Bounds
	owner  Owner

	registered bool
	segments   []scene.NodeID
	layout     tile.Layout
	state      States
}

// New returns a new unregistered component with default configuration
// that creates segments in graph using the bounds of meshes.
func New(graph Graph, meshes Bounds) *Component {
	tm := &Component{graph: graph, meshes: meshes}
	tm.Defaults()
	return tm
}

// Segments returns the segment nodes, base first.
func (tm *Component) Segments() []scene.NodeID {
	return slices.Clone(tm.segments)
}

// Len returns the number of segments.
func (tm *Component) Len() int {
	return len(tm.segments)
}

// State returns the current build state.
func (tm *Component) State() States {
	return tm.state
}

// Layout returns the layout of the current segments,
// and false if there are none.
func (tm *Component) Layout() (tile.Layout, bool) {
	return tm.layout, tm.state == Built
}

// FinalExtent returns the total extent of the current segments
// along the stacking axis, which is where the anchor is placed.
func (tm *Component) FinalExtent() float32 {
	if tm.state != Built {
		return 0
	}
	return tm.layout.Extent(len(tm.segments))
}

// AttachNode returns the node that segments are parented under:
// [Config.AttachTarget] if it is set and valid, and otherwise the
// owner root node. It returns [scene.NoNode] if neither is available.
// It never creates a node; the owner root is expected to exist.
func (tm *Component) AttachNode() scene.NodeID {
	if tm.owner == nil {
		return scene.NoNode
	}
	if tm.AttachTarget != scene.NoNode && tm.graph.IsValid(tm.AttachTarget) {
		return tm.AttachTarget
	}
	root := tm.owner.Root()
	if !tm.graph.IsValid(root) {
		return scene.NoNode
	}
	return root
}

// Rebuild replaces the segments according to the current configuration.
// This is the RebuildMesh operation exposed to the host.
// It does nothing unless the component is registered with an owner.
// Otherwise, existing segments are always destroyed first, and the
// result is either exactly [Config.Count] segments or none, when there
// is no parent node, no segment mesh, or the mesh has no length along
// the axis. It never fails and is safe to call repeatedly.
func (tm *Component) Rebuild() {
	if !tm.registered || tm.owner == nil {
		return
	}
	attach := tm.AttachNode()
	if attach == scene.NoNode {
		slog.Debug("tilemesh.Rebuild: no attach node")
		tm.Clear()
		return
	}
	tm.Clear()

	if tm.SegmentAsset == "" {
		return
	}
	half, ok := tm.meshes.HalfExtents(tm.SegmentAsset)
	if !ok {
		slog.Debug("tilemesh.Rebuild: no bounds for segment asset", "asset", tm.SegmentAsset)
		return
	}
	if !tm.HeightAxis.IsValid() {
		slog.Warn("tilemesh.Rebuild: invalid height axis, using Z", "axis", tm.HeightAxis)
	}
	ly, err := tile.NewLayout(half, tm.HeightAxis)
	if err != nil {
		slog.Debug("tilemesh.Rebuild", "asset", tm.SegmentAsset, "err", err)
		return
	}

	n := tm.Count()
	for i := range n {
		sg := tm.graph.NewNode(attach, fmt.Sprintf("Segment_%d", i))
		if sg == scene.NoNode {
			break
		}
		tm.graph.SetMesh(sg, string(tm.SegmentAsset))
		tm.graph.SetMobility(sg, scene.Movable)
		tm.graph.SetVisible(sg, true)
		tm.graph.SetHiddenInGame(sg, false)
		tm.graph.SetPos(sg, ly.Offset(i))
		tm.graph.Register(sg)
		tm.segments = append(tm.segments, sg)
	}
	if len(tm.segments) != n {
		slog.Debug("tilemesh.Rebuild: could not create segment", "created", len(tm.segments), "count", n)
		tm.Clear()
		return
	}
	tm.layout = ly
	tm.state = Built

	if tm.AnchorTarget != scene.NoNode && tm.graph.IsValid(tm.AnchorTarget) {
		tm.graph.SetPos(tm.AnchorTarget, ly.ExtentOffset(n))
	}
}

// Clear destroys all segments, skipping any that are no longer valid.
// It is safe to call when there are no segments.
func (tm *Component) Clear() {
	for _, sg := range tm.segments {
		if tm.graph.IsValid(sg) {
			tm.graph.Destroy(sg)
		}
	}
	tm.segments = nil
	tm.layout = tile.Layout{}
	tm.state = Unbuilt
}

var (
	_ Graph  = (*scene.Scene)(nil)
	_ Bounds = (*asset.Library)(nil)
	_ Owner  = (*scene.Actor)(nil)
	_ Finder = (*scene.Scene)(nil)
)
