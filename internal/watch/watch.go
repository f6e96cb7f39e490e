// Package watch reruns builds when project sources change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/texbuild/internal/dirs"
	"git.home.luguber.info/inful/texbuild/internal/logfields"
)

// RebuildFunc runs one build in response to a source change.
type RebuildFunc func(ctx context.Context) error

// Watcher monitors a project's source tree and manifest and invokes a
// rebuild callback after changes settle.
type Watcher struct {
	root         dirs.Path[dirs.Root]
	rebuild      RebuildFunc
	watcher      *fsnotify.Watcher
	changed      chan struct{}
	debounceTime time.Duration
}

// New creates a watcher over the project rooted at root.
func New(root dirs.Path[dirs.Root], rebuild RebuildFunc) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	return &Watcher{
		root:         root,
		rebuild:      rebuild,
		watcher:      watcher,
		changed:      make(chan struct{}, 1),
		debounceTime: 500 * time.Millisecond,
	}, nil
}

// Run watches until the context is canceled. The first build runs
// immediately; later builds run debounced after each change burst.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	// Watch the root for manifest edits and every directory under src.
	// fsnotify does not recurse, so subdirectories are added one by one
	// and new ones are picked up from create events.
	if err := w.watcher.Add(w.root.String()); err != nil {
		return fmt.Errorf("watch project root: %w", err)
	}
	srcDir := dirs.SrcDir(w.root).String()
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch source tree: %w", err)
	}

	slog.Info("watching for changes", logfields.Path(srcDir))

	go w.eventLoop(ctx)

	if err := w.rebuild(ctx); err != nil {
		slog.Error("build failed", logfields.Error(err))
	}
	return w.rebuildLoop(ctx)
}

func (w *Watcher) eventLoop(ctx context.Context) {
	manifest := dirs.ManifestFile(w.root).String()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event, manifest) {
				continue
			}
			if event.Op.Has(fsnotify.Create) {
				// A new directory under src needs its own watch.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.watcher.Add(event.Name)
				}
			}
			slog.Debug("source change detected", logfields.Path(event.Name))
			w.trigger()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("watch error", logfields.Error(err))
		}
	}
}

// relevant filters out events for unrelated files at the project root:
// only the manifest matters there, while anything under src counts.
func (w *Watcher) relevant(event fsnotify.Event, manifest string) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	if event.Name == manifest {
		return true
	}
	srcDir := dirs.SrcDir(w.root).String()
	rel, err := filepath.Rel(srcDir, event.Name)
	if err != nil {
		return false
	}
	return filepath.IsLocal(rel)
}

func (w *Watcher) trigger() {
	select {
	case w.changed <- struct{}{}:
	default:
		// A rebuild is already pending.
	}
}

func (w *Watcher) rebuildLoop(ctx context.Context) error {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()
		case <-w.changed:
			if timer == nil {
				timer = time.NewTimer(w.debounceTime)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounceTime)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if err := w.rebuild(ctx); err != nil {
				slog.Error("build failed", logfields.Error(err))
			}
		}
	}
}
