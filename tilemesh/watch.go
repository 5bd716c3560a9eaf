// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tilemesh

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"

	"cogentcore.org/tilemesh/asset"
)

// Watcher applies a [Settings] file to a [Component] whenever the
// file changes, for interactive authoring. The component is only
// accessed while holding Mu, which other code touching the component
// must also hold while the watcher is running.
type Watcher struct {

	// Mu serializes access to the component.
	Mu sync.Mutex

	// Filename is the settings file being watched.
	Filename string

	comp   *Component
	finder Finder

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

// Watch applies the given settings file to the component, marks the
// component as [Component.Editing], and then re-applies the file
// every time it is written. The initial load must succeed, and if it
// does not, the component is left as it was. Later failures are logged
// and leave the last good configuration in place, as do empty files,
// which editors briefly produce while saving.
func Watch(filename string, tm *Component, fd Finder) (*Watcher, error) {
	abs, err := asset.AbsPath(filename)
	if err != nil {
		return nil, err
	}
	w := &Watcher{Filename: abs, comp: tm, finder: fd}
	w.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory so that editors that replace the file are seen
	if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
		w.watcher.Close()
		return nil, fmt.Errorf("tilemesh.Watch: %w", err)
	}
	w.Mu.Lock()
	editing := tm.Editing
	tm.Editing = true
	w.Mu.Unlock()
	if err := w.Reload(); err != nil {
		w.Mu.Lock()
		tm.Editing = editing
		w.Mu.Unlock()
		w.watcher.Close()
		return nil, err
	}
	w.done = make(chan struct{})
	w.wg.Add(1)
	go w.watch()
	return w, nil
}

func (w *Watcher) watch() {
	defer w.wg.Done()
	events := w.watcher.Events
	errs := w.watcher.Errors
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.Filename {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				errors.Log(w.Reload())
			}
		case err, ok := <-errs:
			if !ok {
				return
			}
			slog.Error("tilemesh.Watcher", "file", w.Filename, "err", err)
		}
	}
}

// Reload reads the settings file and applies it to the component.
// An empty file is skipped.
func (w *Watcher) Reload() error {
	fi, err := os.Stat(w.Filename)
	if err != nil {
		return fmt.Errorf("tilemesh.Watcher: %w", err)
	}
	if fi.Size() == 0 {
		slog.Debug("tilemesh.Watcher: skipping empty file", "file", w.Filename)
		return nil
	}
	st, err := OpenSettings(w.Filename)
	if err != nil {
		return fmt.Errorf("tilemesh.Watcher: %w", err)
	}
	w.Mu.Lock()
	defer w.Mu.Unlock()
	cf := st.Resolve(w.finder)
	w.comp.Apply(cf)
	return nil
}

// Close stops watching. The component keeps its current segments.
func (w *Watcher) Close() error {
	if w.watcher == nil {
		return nil
	}
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	w.watcher = nil
	return err
}
