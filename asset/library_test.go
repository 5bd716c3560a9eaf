// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryAdd(t *testing.T) {
	lb := NewLibrary()
	lb.AddBox("pillar", math32.Vec3(2, 2, 4))
	lb.AddVertices("wedge", []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(3, 0, 0),
		math32.Vec3(0, 1, 5),
	})
	assert.Equal(t, 2, lb.Len())
	assert.Equal(t, []MeshName{"pillar", "wedge"}, lb.Names())

	h, ok := lb.HalfExtents("pillar")
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(1, 1, 2), h)

	h, ok = lb.HalfExtents("wedge")
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(1.5, 0.5, 2.5), h)

	// replace by name keeps a single entry
	lb.AddBox("pillar", math32.Vec3(1, 1, 1))
	assert.Equal(t, 2, lb.Len())
	h, _ = lb.HalfExtents("pillar")
	assert.Equal(t, math32.Vec3(0.5, 0.5, 0.5), h)
}

func TestLibraryLookup(t *testing.T) {
	lb := NewLibrary()
	lb.AddBox("pillar", math32.Vec3(2, 2, 4))

	assert.NotNil(t, lb.MeshByName("pillar"))
	assert.Nil(t, lb.MeshByName("missing"))
	_, err := lb.MeshByNameTry("missing")
	assert.Error(t, err)

	_, ok := lb.HalfExtents("missing")
	assert.False(t, ok)

	lb.AddVertices("empty", nil)
	_, ok = lb.HalfExtents("empty")
	assert.False(t, ok)

	assert.True(t, lb.Delete("pillar"))
	assert.False(t, lb.Delete("pillar"))
	assert.Nil(t, lb.MeshByName("pillar"))
}

func TestOpenManifest(t *testing.T) {
	for _, fn := range []string{"testdata/meshes.toml", "testdata/meshes.yaml", "testdata/meshes.json"} {
		t.Run(fn, func(t *testing.T) {
			lb, err := OpenManifest(fn)
			require.NoError(t, err)
			assert.Equal(t, []MeshName{"pillar", "rail"}, lb.Names())

			h, ok := lb.HalfExtents("pillar")
			require.True(t, ok)
			assert.Equal(t, math32.Vec3(1, 1, 2), h)

			h, ok = lb.HalfExtents("rail")
			require.True(t, ok)
			assert.InDelta(t, 2, h.X, 1e-6)
			assert.InDelta(t, 0.1, h.Y, 1e-6)
			assert.InDelta(t, 0.1, h.Z, 1e-6)
		})
	}
}

func TestOpenManifestErrors(t *testing.T) {
	lb := NewLibrary()
	err := lb.Open("testdata/bad.toml")
	assert.ErrorContains(t, err, "broken")
	assert.Equal(t, 0, lb.Len())

	_, err = OpenManifest("testdata/nope.toml")
	assert.Error(t, err)

	mm := ManifestMesh{Name: "x"}
	_, err = mm.Mesh()
	assert.Error(t, err)
	mm = ManifestMesh{Size: []float32{1, 1, 1}}
	_, err = mm.Mesh()
	assert.Error(t, err)
}
