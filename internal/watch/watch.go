// Copyright LIMIT Lab, 2026. All rights reserved.

// Package watch reloads the content set when files in the content
// directory change, so a running server picks up edits without a restart.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/limitlab/labsite/internal/content"
)

// DefaultDebounce batches the burst of events an editor produces on save.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reloads content from a directory on change.
type Watcher struct {
	dir      string
	debounce time.Duration
	load     func(dir string) (*content.Content, error)
	apply    func(*content.Content)
	logger   *zap.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before reloading.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLoader replaces content.Load.
func WithLoader(load func(dir string) (*content.Content, error)) Option {
	return func(w *Watcher) { w.load = load }
}

// New creates a watcher for dir that passes each successfully reloaded
// content set to apply. A failed reload is logged and the previous content
// stays in place.
func New(dir string, apply func(*content.Content), logger *zap.Logger, opts ...Option) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Watcher{
		dir:      dir,
		debounce: DefaultDebounce,
		load:     content.Load,
		apply:    apply,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is cancelled. It returns an error only when the
// watch cannot be established.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	w.logger.Info("watching content", zap.String("dir", w.dir))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			w.logger.Debug("content changed", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	c, err := w.load(w.dir)
	if err != nil {
		w.logger.Error("reloading content, keeping previous", zap.Error(err))
		return
	}
	w.apply(c)
	w.logger.Info("content reloaded", zap.Int("publications", c.Publications.Len()))
}

// relevant filters to writes, creates, removes, and renames of the
// content files. Editor swap files are ignored.
func relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(ev.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	for _, f := range content.Files {
		if name == f {
			return true
		}
	}
	return false
}
