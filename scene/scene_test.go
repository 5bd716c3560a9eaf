// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNode(t *testing.T) {
	sc := New("test")
	root := sc.NewNode(NoNode, "root")
	child := sc.NewNode(root, "child")
	require.NotEqual(t, NoNode, root)
	require.NotEqual(t, NoNode, child)
	assert.NotEqual(t, root, child)
	assert.Equal(t, 2, sc.Len())
	assert.Equal(t, []NodeID{child}, sc.Children(root))
	assert.Equal(t, []NodeID{root}, sc.Top())
	assert.Equal(t, "/root/child", sc.Path(child))

	n, ok := sc.Node(child)
	require.True(t, ok)
	assert.Equal(t, root, n.Parent)
	assert.True(t, n.Visible)
	assert.False(t, n.Registered)
	assert.Equal(t, Static, n.Mobility)

	assert.Equal(t, NoNode, sc.NewNode(NodeID(999), "orphan"))
	assert.Equal(t, 2, sc.Len())
}

func TestSetters(t *testing.T) {
	sc := New("test")
	id := sc.NewNode(NoNode, "n")
	sc.SetMesh(id, "pillar")
	sc.SetPos(id, math32.Vec3(1, 2, 3))
	sc.SetMobility(id, Movable)
	sc.SetVisible(id, false)
	sc.SetHiddenInGame(id, true)
	sc.Register(id)

	n, _ := sc.Node(id)
	assert.Equal(t, "pillar", n.Mesh)
	assert.Equal(t, math32.Vec3(1, 2, 3), n.Pos)
	assert.Equal(t, Movable, n.Mobility)
	assert.False(t, n.Visible)
	assert.True(t, n.HiddenInGame)
	assert.True(t, n.Registered)

	// setters on invalid handles are no-ops
	sc.SetPos(NodeID(42), math32.Vec3(1, 1, 1))
	sc.Register(NoNode)
	assert.Equal(t, 1, sc.Len())
}

func TestDestroy(t *testing.T) {
	sc := New("test")
	root := sc.NewNode(NoNode, "root")
	a := sc.NewNode(root, "a")
	b := sc.NewNode(root, "b")
	aa := sc.NewNode(a, "aa")

	sc.Destroy(a)
	assert.False(t, sc.IsValid(a))
	assert.False(t, sc.IsValid(aa))
	assert.True(t, sc.IsValid(b))
	assert.Equal(t, []NodeID{b}, sc.Children(root))
	assert.Equal(t, 2, sc.Len())

	sc.Destroy(a) // already gone
	sc.Destroy(NoNode)
	assert.Equal(t, 2, sc.Len())

	sc.Destroy(root)
	assert.Equal(t, 0, sc.Len())
	assert.Empty(t, sc.Top())

	// ids are not reused
	c := sc.NewNode(NoNode, "c")
	assert.Greater(t, c, aa)
}

func TestFindByName(t *testing.T) {
	sc := New("test")
	root := sc.NewNode(NoNode, "root")
	mount := sc.NewNode(root, "Mount")
	sc.NewNode(mount, "Cap")
	other := sc.NewNode(NoNode, "other")
	dup := sc.NewNode(other, "Mount")

	id, ok := sc.FindByName("Mount")
	assert.True(t, ok)
	assert.Equal(t, mount, id)

	sc.Destroy(mount)
	id, ok = sc.FindByName("Mount")
	assert.True(t, ok)
	assert.Equal(t, dup, id)

	_, ok = sc.FindByName("Cap")
	assert.False(t, ok)
}

func TestWalkDown(t *testing.T) {
	sc := New("test")
	root := sc.NewNode(NoNode, "root")
	a := sc.NewNode(root, "a")
	sc.NewNode(a, "aa")
	sc.NewNode(root, "b")

	var names []string
	sc.WalkDown(root, func(n *Node) bool {
		names = append(names, n.Name)
		return n.Name != "a"
	})
	assert.Equal(t, []string{"root", "a", "b"}, names)
}

type recorder struct {
	events []string
	actor  *Actor
}

func (r *recorder) OnRegister(ac *Actor) {
	r.actor = ac
	r.events = append(r.events, "register")
}
func (r *recorder) OnActivate()   { r.events = append(r.events, "activate") }
func (r *recorder) OnUnregister() { r.events = append(r.events, "unregister") }

func TestActorLifecycle(t *testing.T) {
	sc := New("test")
	ac := NewActor(sc, "tower")
	require.True(t, sc.IsValid(ac.Root()))
	assert.Equal(t, "/tower", sc.Path(ac.Root()))

	first := &recorder{}
	ac.AddComponent(first)
	assert.Equal(t, ac, first.actor)
	assert.Equal(t, []string{"register"}, first.events)

	ac.Activate()
	ac.Activate()
	assert.True(t, ac.IsActive())
	assert.Equal(t, []string{"register", "activate"}, first.events)

	late := &recorder{}
	ac.AddComponent(late)
	assert.Equal(t, []string{"register", "activate"}, late.events)
	cs := ac.Components()
	assert.Len(t, cs, 2)
	cs[0] = nil
	assert.Equal(t, first, ac.Components()[0])

	root := ac.Root()
	sc.NewNode(root, "child")
	ac.Destroy()
	assert.Equal(t, []string{"register", "activate", "unregister"}, first.events)
	assert.Equal(t, []string{"register", "activate", "unregister"}, late.events)
	assert.False(t, sc.IsValid(root))
	assert.Equal(t, NoNode, ac.Root())
	assert.Equal(t, 0, sc.Len())
}
