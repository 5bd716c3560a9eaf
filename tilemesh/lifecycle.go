// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tilemesh

import (
	"log/slog"

	"cogentcore.org/tilemesh/scene"
)

// Register marks the component as registered with the given owner,
// which may be nil. Rebuilds only happen while registered with an owner.
func (tm *Component) Register(owner Owner) {
	tm.owner = owner
	tm.registered = true
}

// Unregister destroys the segments and unregisters the component.
func (tm *Component) Unregister() {
	tm.Clear()
	tm.registered = false
	tm.owner = nil
}

// IsRegistered returns whether the component is registered.
func (tm *Component) IsRegistered() bool {
	return tm.registered
}

// Owner returns the owner the component is registered with, if any.
func (tm *Component) Owner() Owner {
	return tm.owner
}

// Destroy tears the component down, destroying all segments.
func (tm *Component) Destroy() {
	tm.Unregister()
}

// OnRegister implements [scene.Component].
func (tm *Component) OnRegister(ac *scene.Actor) {
	if ac == nil {
		tm.Register(nil)
		return
	}
	tm.Register(ac)
}

// OnActivate implements [scene.Component] by building the initial segments.
func (tm *Component) OnActivate() {
	tm.Rebuild()
}

// OnUnregister implements [scene.Component].
func (tm *Component) OnUnregister() {
	tm.Unregister()
}

// OnConfigChanged is the notification that the given configuration
// field was changed interactively. It rebuilds the segments if the
// component is [Component.Editing], the field affects the segments,
// and the component is registered. Otherwise it does nothing.
func (tm *Component) OnConfigChanged(f Field) {
	if !tm.Editing || !f.IsRelevant() || !tm.registered {
		return
	}
	slog.Debug("tilemesh.OnConfigChanged", "field", f)
	tm.Rebuild()
}

// Apply replaces the configuration, and if anything changed, sends
// [Component.OnConfigChanged] for the first changed field.
// It returns the changed fields.
func (tm *Component) Apply(cf Config) []Field {
	changed := cf.Changed(tm.Config)
	tm.Config = cf
	if len(changed) > 0 {
		tm.OnConfigChanged(changed[0])
	}
	return changed
}

var _ scene.Component = (*Component)(nil)
