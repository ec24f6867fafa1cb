// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch rebuilds a résumé whenever its record file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 500 * time.Millisecond

// BuildFunc is called once per settled change. Its errors are logged and
// the watcher keeps running.
type BuildFunc func(ctx context.Context) error

// Watcher observes a single file through its parent directory, so editors
// that save by rename-and-replace are still seen.
type Watcher struct {
	path     string
	build    BuildFunc
	debounce time.Duration
	log      zerolog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger used for change and build events.
func WithLogger(log zerolog.Logger) Option {
	return func(w *Watcher) { w.log = log }
}

// New creates a Watcher for path that calls build after each change.
func New(path string, build BuildFunc, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	w := &Watcher{
		path:     abs,
		build:    build,
		debounce: DefaultDebounce,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run watches until ctx is cancelled. It returns nil on cancellation and an
// error only if the watch could not be established.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	w.log.Info().Str("file", w.path).Msg("watching for changes")
	w.loop(ctx, fw.Events, fw.Errors)
	return nil
}

// loop consumes fsnotify events until ctx is done or the channels close.
// Builds run on this goroutine, so they never overlap.
func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")
			timer.Reset(w.debounce)

		case err, ok := <-errs:
			if !ok {
				return
			}
			w.log.Error().Err(err).Msg("watcher error")

		case <-timer.C:
			w.rebuild(ctx)
		}
	}
}

// relevant reports whether event changes the watched file's content.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != filepath.Base(w.path) {
		return false
	}
	if event.Has(fsnotify.Remove) {
		w.log.Warn().Str("file", event.Name).Msg("record removed")
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) rebuild(ctx context.Context) {
	start := time.Now()
	if err := w.build(ctx); err != nil {
		w.log.Error().Err(err).Str("file", w.path).Msg("rebuild failed")
		return
	}
	w.log.Info().Str("file", w.path).Dur("duration", time.Since(start)).Msg("rebuilt")
}
