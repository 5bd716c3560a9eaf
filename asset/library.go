// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asset provides a library of named meshes and their bounds.
package asset

import (
	"fmt"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/math32"

	"cogentcore.org/tilemesh/tile"
)

// MeshName is the name of a [Mesh] in a [Library].
// The empty name means no mesh.
type MeshName string

// Mesh is a mesh asset as seen by layout: its name and bounding box.
type Mesh struct {

	// Name is the unique name of the mesh in its library.
	Name MeshName

	// BBox is the bounding box of the mesh in its own coordinates.
	BBox math32.Box3
}

// HalfExtents returns the bounding box half-extents.
func (ms *Mesh) HalfExtents() math32.Vector3 {
	return tile.HalfExtents(ms.BBox)
}

// Library is an ordered collection of meshes, keyed by name.
type Library struct {
	Meshes *ordmap.Map[MeshName, *Mesh]
}

// NewLibrary returns a new empty library.
func NewLibrary() *Library {
	return &Library{Meshes: ordmap.New[MeshName, *Mesh]()}
}

// Add adds the mesh, replacing any existing mesh of the same name.
func (lb *Library) Add(ms *Mesh) {
	lb.Meshes.Add(ms.Name, ms)
}

// AddBox adds a mesh with a box of the given size centered on the origin.
func (lb *Library) AddBox(name MeshName, size math32.Vector3) *Mesh {
	ms := &Mesh{Name: name}
	ms.BBox.SetFromCenterAndSize(math32.Vector3{}, size)
	lb.Add(ms)
	return ms
}

// AddVertices adds a mesh whose bounds enclose the given vertices.
func (lb *Library) AddVertices(name MeshName, vertices []math32.Vector3) *Mesh {
	ms := &Mesh{Name: name}
	ms.BBox.SetFromPoints(vertices)
	lb.Add(ms)
	return ms
}

// MeshByName returns the mesh with the given name, or nil if there is none.
func (lb *Library) MeshByName(name MeshName) *Mesh {
	ms, ok := lb.Meshes.ValueByKeyTry(name)
	if ok {
		return ms
	}
	return nil
}

// MeshByNameTry returns the mesh with the given name, or an error if there is none.
func (lb *Library) MeshByNameTry(name MeshName) (*Mesh, error) {
	ms, ok := lb.Meshes.ValueByKeyTry(name)
	if ok {
		return ms, nil
	}
	return nil, fmt.Errorf("asset: mesh named %q not found", name)
}

// Delete removes the mesh with the given name, returning whether it was there.
func (lb *Library) Delete(name MeshName) bool {
	return lb.Meshes.DeleteKey(name)
}

// Names returns the mesh names, in the order they were added.
func (lb *Library) Names() []MeshName {
	return lb.Meshes.Keys()
}

// Len returns the number of meshes.
func (lb *Library) Len() int {
	return lb.Meshes.Len()
}

// HalfExtents returns the bounding half-extents of the named mesh.
// It returns false if the mesh does not exist or has empty bounds.
func (lb *Library) HalfExtents(name MeshName) (math32.Vector3, bool) {
	ms := lb.MeshByName(name)
	if ms == nil || ms.BBox.IsEmpty() {
		return math32.Vector3{}, false
	}
	return ms.HalfExtents(), true
}
