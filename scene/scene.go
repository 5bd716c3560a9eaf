// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a minimal scene graph held in an arena:
// nodes are addressed by [NodeID] handles, and whether a handle is
// still valid is an explicit lookup rather than a pointer check.
package scene

//go:generate core generate

import (
	"log/slog"
	"slices"
	"strings"

	"cogentcore.org/core/math32"
)

// NodeID is a handle to a [Node] in a [Scene]. IDs are never reused.
type NodeID uint64

// NoNode is the zero handle, which never refers to a node.
const NoNode NodeID = 0

// Mobility is how a node may change over its lifetime.
type Mobility int32 //enums:enum

const (
	// Static nodes never move after registration.
	Static Mobility = iota

	// Stationary nodes do not move but may otherwise change.
	Stationary

	// Movable nodes may be freely repositioned.
	Movable
)

// Node is one element of the scene graph.
type Node struct {

	// ID is the handle of this node.
	ID NodeID

	// Name is the node name; it need not be unique.
	Name string

	// Parent is the parent node, or [NoNode] for top-level nodes.
	Parent NodeID

	// Children are the child nodes, in insertion order.
	Children []NodeID

	// Mesh is the name of the mesh asset rendered at this node, if any.
	Mesh string

	// Pos is the position relative to the parent.
	Pos math32.Vector3

	// Mobility is how the node may change.
	Mobility Mobility

	// Visible is whether the node is rendered.
	Visible bool

	// HiddenInGame hides the node during play even if it is Visible.
	HiddenInGame bool

	// Registered is whether the node has been added to the live scene.
	Registered bool
}

// Scene is an arena of [Node]s.
// It is not safe for concurrent use.
type Scene struct {

	// Name is the scene name.
	Name string

	nodes  map[NodeID]*Node
	top    []NodeID
	nextID NodeID
}

// New returns a new empty scene with the given name.
func New(name string) *Scene {
	return &Scene{
		Name:   name,
		nodes:  make(map[NodeID]*Node),
		nextID: 1,
	}
}

// NewNode adds a new node with the given name under parent,
// which must be valid or [NoNode] for a top-level node.
// It returns [NoNode] if the parent is not valid.
// New nodes are static, visible, and not yet registered.
func (sc *Scene) NewNode(parent NodeID, name string) NodeID {
	var pn *Node
	if parent != NoNode {
		var ok bool
		pn, ok = sc.nodes[parent]
		if !ok {
			slog.Debug("scene.NewNode: invalid parent", "scene", sc.Name, "parent", parent, "name", name)
			return NoNode
		}
	}
	id := sc.nextID
	sc.nextID++
	sc.nodes[id] = &Node{ID: id, Name: name, Parent: parent, Visible: true}
	if pn != nil {
		pn.Children = append(pn.Children, id)
	} else {
		sc.top = append(sc.top, id)
	}
	return id
}

// Node returns the node for the given handle, if it is valid.
func (sc *Scene) Node(id NodeID) (*Node, bool) {
	n, ok := sc.nodes[id]
	return n, ok
}

// IsValid returns whether the handle refers to a live node.
func (sc *Scene) IsValid(id NodeID) bool {
	_, ok := sc.nodes[id]
	return ok
}

// Len returns the number of live nodes.
func (sc *Scene) Len() int {
	return len(sc.nodes)
}

// Top returns the top-level nodes, in insertion order.
func (sc *Scene) Top() []NodeID {
	return slices.Clone(sc.top)
}

// Children returns the children of the given node, in insertion order.
func (sc *Scene) Children(id NodeID) []NodeID {
	n, ok := sc.nodes[id]
	if !ok {
		return nil
	}
	return slices.Clone(n.Children)
}

// Destroy removes the node and everything below it, and detaches
// it from its parent. Destroying an invalid handle does nothing.
func (sc *Scene) Destroy(id NodeID) {
	n, ok := sc.nodes[id]
	if !ok {
		return
	}
	if pn, ok := sc.nodes[n.Parent]; ok {
		pn.Children = slices.DeleteFunc(pn.Children, func(c NodeID) bool { return c == id })
	} else {
		sc.top = slices.DeleteFunc(sc.top, func(c NodeID) bool { return c == id })
	}
	sc.destroy(n)
}

func (sc *Scene) destroy(n *Node) {
	for _, c := range n.Children {
		if cn, ok := sc.nodes[c]; ok {
			sc.destroy(cn)
		}
	}
	n.Children = nil
	n.Registered = false
	delete(sc.nodes, n.ID)
}

// SetMesh sets the mesh asset rendered at the node.
func (sc *Scene) SetMesh(id NodeID, mesh string) {
	if n, ok := sc.nodes[id]; ok {
		n.Mesh = mesh
	}
}

// SetPos sets the position of the node relative to its parent.
func (sc *Scene) SetPos(id NodeID, pos math32.Vector3) {
	if n, ok := sc.nodes[id]; ok {
		n.Pos = pos
	}
}

// SetMobility sets the mobility of the node.
func (sc *Scene) SetMobility(id NodeID, m Mobility) {
	if n, ok := sc.nodes[id]; ok {
		n.Mobility = m
	}
}

// SetVisible sets whether the node is rendered.
func (sc *Scene) SetVisible(id NodeID, visible bool) {
	if n, ok := sc.nodes[id]; ok {
		n.Visible = visible
	}
}

// SetHiddenInGame sets whether the node is hidden during play.
func (sc *Scene) SetHiddenInGame(id NodeID, hidden bool) {
	if n, ok := sc.nodes[id]; ok {
		n.HiddenInGame = hidden
	}
}

// Register adds the node to the live scene.
func (sc *Scene) Register(id NodeID) {
	if n, ok := sc.nodes[id]; ok {
		n.Registered = true
	}
}

// FindByName returns the first node with the given name,
// searching depth first from the top-level nodes.
func (sc *Scene) FindByName(name string) (NodeID, bool) {
	found := NoNode
	for _, t := range sc.top {
		sc.WalkDown(t, func(n *Node) bool {
			if found != NoNode {
				return Break
			}
			if n.Name == name {
				found = n.ID
				return Break
			}
			return Continue
		})
		if found != NoNode {
			return found, true
		}
	}
	return NoNode, false
}

// Path returns the slash-separated names from the top of the
// scene down to the given node, or "" if the handle is not valid.
func (sc *Scene) Path(id NodeID) string {
	var names []string
	for n, ok := sc.nodes[id]; ok; n, ok = sc.nodes[n.Parent] {
		names = append(names, n.Name)
	}
	if len(names) == 0 {
		return ""
	}
	slices.Reverse(names)
	return "/" + strings.Join(names, "/")
}

const (
	// Continue tells [Scene.WalkDown] to keep going into the children.
	Continue = true

	// Break tells [Scene.WalkDown] not to descend below the current node.
	Break = false
)

// WalkDown calls fun on the given node and then, depth first, on
// its children, skipping the children of any node for which fun
// returns [Break].
func (sc *Scene) WalkDown(id NodeID, fun func(n *Node) bool) {
	n, ok := sc.nodes[id]
	if !ok {
		return
	}
	if !fun(n) {
		return
	}
	for _, c := range slices.Clone(n.Children) {
		sc.WalkDown(c, fun)
	}
}
