// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package export

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/olegiv/quillfolio/internal/logging"
)

// DefaultDebounce is how long Watch waits after the last change before exporting.
const DefaultDebounce = 500 * time.Millisecond

// Watch exports once, then re-exports whenever files under ContentDir
// change, until ctx is cancelled. Bursts of events within debounce of each
// other trigger a single export. Failed exports are logged and watching
// continues.
func (e *Exporter) Watch(ctx context.Context, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := addTree(watcher, e.cfg.ContentDir); err != nil {
		return err
	}

	e.runExport(ctx)
	e.logger.Info("watching content for changes", "category", logging.CategoryExport, "dir", e.cfg.ContentDir)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := addTree(watcher, event.Name); err != nil {
					e.logger.Warn("watching new directory", "category", logging.CategoryExport, "dir", event.Name, "error", err)
				}
			}
			e.logger.Debug("content changed", "category", logging.CategoryExport, "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			e.runExport(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Warn("watcher error", "category", logging.CategoryExport, "error", err)
		}
	}
}

func (e *Exporter) runExport(ctx context.Context) {
	if _, err := e.Export(ctx); err != nil && ctx.Err() == nil {
		e.logger.Error("export failed", "category", logging.CategoryExport, "error", err)
	}
}

// addTree watches root and every directory below it.
func addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				return fmt.Errorf("watching %s: %w", path, err)
			}
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
