// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tilemesh

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/tilemesh/asset"
	"cogentcore.org/tilemesh/scene"
	"cogentcore.org/tilemesh/tile"
)

func TestOpenSettings(t *testing.T) {
	want := Settings{
		SegmentCount: 4,
		HeightAxis:   "y",
		SegmentAsset: "pillar",
		AttachTarget: "Mount",
		AnchorTarget: "Cap",
	}
	for _, fn := range []string{"testdata/tower.toml", "testdata/tower.yaml"} {
		st, err := OpenSettings(fn)
		require.NoError(t, err, fn)
		assert.Equal(t, want, st, fn)
	}
	_, err := OpenSettings("testdata/missing.toml")
	assert.Error(t, err)
}

func TestSettingsResolve(t *testing.T) {
	sc := scene.New("test")
	mount := sc.NewNode(scene.NoNode, "Mount")
	capNode := sc.NewNode(mount, "Cap")

	st, err := OpenSettings("testdata/tower.toml")
	require.NoError(t, err)
	cf := st.Resolve(sc)
	assert.Equal(t, Config{
		SegmentCount: 4,
		HeightAxis:   tile.Y,
		SegmentAsset: "pillar",
		AttachTarget: mount,
		AnchorTarget: capNode,
	}, cf)

	st, err = OpenSettings("testdata/partial.toml")
	require.NoError(t, err)
	cf = st.Resolve(sc)
	assert.Equal(t, Config{
		SegmentCount: 1,
		HeightAxis:   tile.Z,
		SegmentAsset: "pillar",
	}, cf)
}

func writeSettings(t *testing.T, fn, text string) {
	t.Helper()
	require.NoError(t, os.WriteFile(fn, []byte(text), 0o644))
}

func TestWatch(t *testing.T) {
	fx := newFixture(t)
	fx.actor.Activate()
	require.Equal(t, 3, fx.tm.Len())

	fn := filepath.Join(t.TempDir(), "tower.toml")
	writeSettings(t, fn, "segment_count = 2\nsegment_asset = \"pillar\"\n")

	w, err := Watch(fn, fx.tm, fx.sc)
	require.NoError(t, err)
	defer w.Close()

	w.Mu.Lock()
	assert.True(t, fx.tm.Editing)
	assert.Equal(t, 2, fx.tm.Len())
	w.Mu.Unlock()

	writeSettings(t, fn, "segment_count = 5\nheight_axis = \"X\"\nsegment_asset = \"pillar\"\n")
	require.Eventually(t, func() bool {
		w.Mu.Lock()
		defer w.Mu.Unlock()
		return fx.tm.Len() == 5 && fx.tm.HeightAxis == tile.X
	}, 5*time.Second, 10*time.Millisecond)

	w.Mu.Lock()
	n, ok := fx.sc.Node(fx.tm.Segments()[4])
	require.True(t, ok)
	pos := n.Pos
	w.Mu.Unlock()
	assert.Equal(t, math32.Vec3(7, 0, 0), pos)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestWatchErrors(t *testing.T) {
	fx := newFixture(t)
	_, err := Watch(filepath.Join(t.TempDir(), "missing.toml"), fx.tm, fx.sc)
	assert.Error(t, err)
	assert.False(t, fx.tm.Editing)
	_, err = Watch(filepath.Join(t.TempDir(), "nodir", "tower.toml"), fx.tm, fx.sc)
	assert.Error(t, err)
	assert.False(t, fx.tm.Editing)

	dir := t.TempDir()
	fn := filepath.Join(dir, "tower.toml")
	writeSettings(t, fn, "segment_count = 2\nsegment_asset = \"pillar\"\n")
	w, err := Watch(fn, fx.tm, fx.sc)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.Remove(fn))
	assert.Error(t, w.Reload())
	w.Mu.Lock()
	assert.Equal(t, 2, fx.tm.SegmentCount)
	w.Mu.Unlock()
}

func TestWatchEmptyFile(t *testing.T) {
	fx := newFixture(t)
	fx.actor.Activate()
	fn := filepath.Join(t.TempDir(), "tower.toml")
	writeSettings(t, fn, "segment_count = 2\nsegment_asset = \"pillar\"\n")
	w, err := Watch(fn, fx.tm, fx.sc)
	require.NoError(t, err)
	defer w.Close()

	writeSettings(t, fn, "")
	require.NoError(t, w.Reload())
	w.Mu.Lock()
	assert.Equal(t, 2, fx.tm.Len())
	assert.Equal(t, asset.MeshName("pillar"), fx.tm.SegmentAsset)
	w.Mu.Unlock()

	// events for the empty write must not clear the segments either
	writeSettings(t, fn, "segment_count = 3\nsegment_asset = \"pillar\"\n")
	require.Eventually(t, func() bool {
		w.Mu.Lock()
		defer w.Mu.Unlock()
		return fx.tm.Len() == 3
	}, 5*time.Second, 10*time.Millisecond)
}

func TestSettingsMaxCount(t *testing.T) {
	fx := newFixture(t)
	fx.actor.Activate()
	fx.tm.Editing = true
	st := Settings{SegmentCount: math.MaxInt, SegmentAsset: "pillar"}
	require.NotPanics(t, func() { fx.tm.Apply(st.Resolve(fx.sc)) })
	assert.Equal(t, MaxSegments, fx.tm.Len())
}
