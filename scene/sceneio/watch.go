// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneio

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/lamath/scene"
	"github.com/fsnotify/fsnotify"
)

// Watch loads the scene file at path and calls fn with the result, and
// then again on every Write or Create event for path, until ctx is done.
// Load errors are passed to fn rather than stopping the watch.
// The directory is watched instead of the file so that editors which
// save by writing a temporary file and renaming it over path are
// followed: fsnotify reports the file moved into place as a Create of
// path. A Rename event names the old path, so it is ignored.
// Watch returns nil when ctx is done, or the error of the watcher.
func Watch(ctx context.Context, path string, fn func(sc *scene.Scene, err error)) error {
	path = filepath.Clean(path)
	watch, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watch.Close()
	if err := watch.Add(filepath.Dir(path)); err != nil {
		return err
	}
	fn(Load(path))
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watch.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debug("scene file changed", "path", path, "op", event.Op.String())
				fn(Load(path))
			}
		case err, ok := <-watch.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
