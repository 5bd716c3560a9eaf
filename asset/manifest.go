// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Manifest is the file form of a [Library]: a list of meshes
// with either explicit bounds or a size centered on the origin.
//
//	[[mesh]]
//	name = "pillar"
//	min = [-1.0, -1.0, -2.0]
//	max = [1.0, 1.0, 2.0]
//
//	[[mesh]]
//	name = "rail"
//	size = [4.0, 0.2, 0.2]
type Manifest struct {
	Meshes []ManifestMesh `toml:"mesh" yaml:"mesh" json:"mesh"`
}

// ManifestMesh is one mesh entry in a [Manifest].
type ManifestMesh struct {
	Name MeshName  `toml:"name" yaml:"name" json:"name"`
	Min  []float32 `toml:"min" yaml:"min" json:"min"`
	Max  []float32 `toml:"max" yaml:"max" json:"max"`
	Size []float32 `toml:"size" yaml:"size" json:"size"`
}

func vec3(field string, a []float32) (math32.Vector3, error) {
	if len(a) != 3 {
		return math32.Vector3{}, fmt.Errorf("%s needs 3 values, has %d", field, len(a))
	}
	return math32.Vec3(a[0], a[1], a[2]), nil
}

// Mesh returns the mesh described by the entry.
func (mm *ManifestMesh) Mesh() (*Mesh, error) {
	if mm.Name == "" {
		return nil, fmt.Errorf("asset: manifest mesh has no name")
	}
	ms := &Mesh{Name: mm.Name}
	switch {
	case mm.Min != nil && mm.Max != nil:
		mn, err := vec3("min", mm.Min)
		if err != nil {
			return nil, fmt.Errorf("asset: manifest mesh %q: %w", mm.Name, err)
		}
		mx, err := vec3("max", mm.Max)
		if err != nil {
			return nil, fmt.Errorf("asset: manifest mesh %q: %w", mm.Name, err)
		}
		ms.BBox = math32.Box3{Min: mn, Max: mx}
	case mm.Size != nil:
		sz, err := vec3("size", mm.Size)
		if err != nil {
			return nil, fmt.Errorf("asset: manifest mesh %q: %w", mm.Name, err)
		}
		ms.BBox.SetFromCenterAndSize(math32.Vector3{}, sz)
	default:
		return nil, fmt.Errorf("asset: manifest mesh %q needs min and max, or size", mm.Name)
	}
	return ms, nil
}

// Open adds the meshes listed in the given manifest file
// (.toml, .yaml, or .json; see [OpenFile]) to the library.
// Nothing is added if any entry is invalid.
func (lb *Library) Open(filename string) error {
	var mf Manifest
	if err := OpenFile(&mf, filename); err != nil {
		return err
	}
	meshes := make([]*Mesh, 0, len(mf.Meshes))
	for i := range mf.Meshes {
		ms, err := mf.Meshes[i].Mesh()
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		meshes = append(meshes, ms)
	}
	for _, ms := range meshes {
		lb.Add(ms)
	}
	return nil
}

// OpenManifest returns a new library with the meshes in the given manifest file.
func OpenManifest(filename string) (*Library, error) {
	lb := NewLibrary()
	if err := lb.Open(filename); err != nil {
		return nil, err
	}
	return lb, nil
}
