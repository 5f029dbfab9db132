package index

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cursorkit/cursorkit/internal/library"
)

// EventCallback is called after a watcher-driven index change.
// kind is one of "created", "updated", "deleted".
type EventCallback func(kind string, path string)

// Watch starts an fsnotify watcher over the example-library directories
// and processes change events until ctx is cancelled. Only directories
// that exist at startup are watched; a library with no directories makes
// Watch return immediately. cb (if non-nil) fires after each successful
// index mutation.
//
// Rename events fire on the old path only, so a rename schedules a short
// debounced reconciliation pass that removes stale entries and indexes
// files the event stream missed.
func Watch(ctx context.Context, db DocIndex, lib *library.Service, logger *slog.Logger, cb EventCallback) error {
	roots := map[string]string{} // absolute dir -> category
	for _, category := range []string{library.CategoryRules, library.CategoryCommands} {
		dir := lib.Dir(category)
		if dir == "" {
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		if info, statErr := os.Stat(abs); statErr != nil || !info.IsDir() {
			continue
		}
		roots[abs] = category
	}
	if len(roots) == 0 {
		logger.Info("watcher: no library directories to watch")
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for root := range roots {
		if err := addDirsRecursive(w, root); err != nil {
			return err
		}
		logger.Info("watcher: started", slog.String("root", root))
	}

	// resolve maps an event path to (category, rel) within a watched root.
	resolve := func(abs string) (string, string, bool) {
		for root, category := range roots {
			if rel, err := filepath.Rel(root, abs); err == nil && !strings.HasPrefix(rel, "..") {
				return category, rel, true
			}
		}
		return "", "", false
	}

	var reconcileTimer *time.Timer
	var reconcileCh <-chan time.Time

	scheduleReconcile := func() {
		if reconcileTimer == nil {
			reconcileTimer = time.NewTimer(200 * time.Millisecond)
			reconcileCh = reconcileTimer.C
		} else {
			reconcileTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reconcileTimer != nil {
				reconcileTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-reconcileCh:
			if err := SyncLibrary(db, lib, logger); err != nil {
				logger.Warn("watcher: reconcile failed", slog.String("error", err.Error()))
			} else if cb != nil {
				cb("updated", "")
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			absPath := ev.Name

			// New directories join the watch list.
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(absPath); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, absPath); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", absPath),
							slog.String("error", addErr.Error()))
					}
					scheduleReconcile()
					continue
				}
			}

			if !strings.HasSuffix(absPath, ".md") {
				continue
			}
			category, rel, ok := resolve(absPath)
			if !ok {
				continue
			}
			indexPath := libraryPath(category, rel)

			switch {
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				data, readErr := lib.Read(category, rel)
				if readErr != nil {
					logger.Warn("watcher: read failed", slog.String("path", indexPath), slog.String("error", readErr.Error()))
					continue
				}
				if idxErr := IndexLibraryFile(db, category, rel, data); idxErr != nil {
					logger.Warn("watcher: index failed", slog.String("path", indexPath), slog.String("error", idxErr.Error()))
					continue
				}
				kind := "updated"
				if ev.Op&fsnotify.Create != 0 {
					kind = "created"
				}
				logger.Debug("watcher: indexed", slog.String("path", indexPath), slog.String("op", kind))
				if cb != nil {
					cb(kind, indexPath)
				}

			case ev.Op&fsnotify.Remove != 0:
				if delErr := db.DeleteDoc(indexPath); delErr != nil {
					logger.Warn("watcher: delete failed", slog.String("path", indexPath), slog.String("error", delErr.Error()))
					continue
				}
				logger.Debug("watcher: deleted", slog.String("path", indexPath))
				if cb != nil {
					cb("deleted", indexPath)
				}

			case ev.Op&fsnotify.Rename != 0:
				if delErr := db.DeleteDoc(indexPath); delErr == nil {
					logger.Debug("watcher: rename old deleted", slog.String("path", indexPath))
					if cb != nil {
						cb("deleted", indexPath)
					}
				}
				scheduleReconcile()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
