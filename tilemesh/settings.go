// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tilemesh

import (
	"log/slog"

	"cogentcore.org/tilemesh/asset"
	"cogentcore.org/tilemesh/scene"
	"cogentcore.org/tilemesh/tile"
)

// Settings is the file form of a [Config], with nodes referred to by name.
//
//	segment_count = 3
//	height_axis = "Z"
//	segment_asset = "pillar"
//	attach_target = "Mount"
//	anchor_target = "Cap"
type Settings struct {
	SegmentCount int    `toml:"segment_count" yaml:"segment_count" json:"segment_count"`
	HeightAxis   string `toml:"height_axis" yaml:"height_axis" json:"height_axis"`
	SegmentAsset string `toml:"segment_asset" yaml:"segment_asset" json:"segment_asset"`
	AttachTarget string `toml:"attach_target" yaml:"attach_target" json:"attach_target"`
	AnchorTarget string `toml:"anchor_target" yaml:"anchor_target" json:"anchor_target"`
}

// Finder looks up scene nodes by name. It is implemented by [scene.Scene].
type Finder interface {
	FindByName(name string) (scene.NodeID, bool)
}

// OpenSettings reads settings from the given .toml, .yaml, or .json file.
func OpenSettings(filename string) (Settings, error) {
	var st Settings
	err := asset.OpenFile(&st, filename)
	return st, err
}

// Resolve returns the [Config] for the settings, looking up node names
// with fd. Settings problems never fail: an unknown axis uses Z and an
// unknown node name leaves the target unset, with a warning.
// A missing or zero segment count is 1.
func (st *Settings) Resolve(fd Finder) Config {
	var cf Config
	cf.Defaults()
	if st.SegmentCount > 0 {
		cf.SegmentCount = st.SegmentCount
	}
	if st.HeightAxis != "" {
		ax, err := tile.ParseAxis(st.HeightAxis)
		if err != nil {
			slog.Warn("tilemesh.Settings: using Z", "err", err)
		}
		cf.HeightAxis = ax
	}
	cf.SegmentAsset = asset.MeshName(st.SegmentAsset)
	cf.AttachTarget = findNode(fd, "attach_target", st.AttachTarget)
	cf.AnchorTarget = findNode(fd, "anchor_target", st.AnchorTarget)
	return cf
}

func findNode(fd Finder, field, name string) scene.NodeID {
	if name == "" {
		return scene.NoNode
	}
	id, ok := fd.FindByName(name)
	if !ok {
		slog.Warn("tilemesh.Settings: node not found", "field", field, "name", name)
		return scene.NoNode
	}
	return id
}
