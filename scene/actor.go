// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "slices"

// Component is a lifecycle-managed object owned by an [Actor].
type Component interface {

	// OnRegister is called when the component is added to the actor.
	OnRegister(ac *Actor)

	// OnActivate is called once when the actor is activated, or
	// immediately on add if the actor is already active.
	OnActivate()

	// OnUnregister is called when the actor is destroyed.
	// The component must release everything it created.
	OnUnregister()
}

// Actor owns a root node in a [Scene] and a list of [Component]s.
type Actor struct {

	// Name is the actor name, also used for its root node.
	Name string

	// Scene is the scene holding the root node.
	Scene *Scene

	root       NodeID
	components []Component
	active     bool
}

// NewActor returns a new actor with a new top-level root node in sc.
func NewActor(sc *Scene, name string) *Actor {
	return &Actor{
		Name:  name,
		Scene: sc,
		root:  sc.NewNode(NoNode, name),
	}
}

// Root returns the root node of the actor, which is [NoNode]
// once the actor has been destroyed.
func (ac *Actor) Root() NodeID {
	return ac.root
}

// IsActive returns whether [Actor.Activate] has been called.
func (ac *Actor) IsActive() bool {
	return ac.active
}

// Components returns a copy of the components of the actor.
func (ac *Actor) Components() []Component {
	return slices.Clone(ac.components)
}

// AddComponent registers the component with the actor.
func (ac *Actor) AddComponent(c Component) {
	ac.components = append(ac.components, c)
	c.OnRegister(ac)
	if ac.active {
		c.OnActivate()
	}
}

// Activate activates all components, in the order they were added.
// Calling it again does nothing.
func (ac *Actor) Activate() {
	if ac.active {
		return
	}
	ac.active = true
	for _, c := range ac.components {
		c.OnActivate()
	}
}

// Destroy unregisters all components in reverse order and
// then destroys the root node and everything under it.
func (ac *Actor) Destroy() {
	for i := len(ac.components) - 1; i >= 0; i-- {
		ac.components[i].OnUnregister()
	}
	ac.components = nil
	ac.active = false
	ac.Scene.Destroy(ac.root)
	ac.root = NoNode
}
