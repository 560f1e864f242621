// Package watch re-runs generation when Go sources change.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce collapses the burst of events editors produce on save.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches source folders and calls back once changes settle.
type Watcher struct {
	watcher  *fsnotify.Watcher
	ignored  []string
	debounce time.Duration
	logger   *zap.SugaredLogger
}

// New watches dirs. Events under any of the ignored folders are dropped, which keeps
// the generator from reacting to its own output.
func New(dirs, ignored []string, debounce time.Duration, logger *zap.SugaredLogger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		watcher:  fw,
		debounce: debounce,
		logger:   logger,
	}
	for _, dir := range ignored {
		abs, err := filepath.Abs(dir)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "resolving %s", dir)
		}
		w.ignored = append(w.ignored, abs)
	}

	for _, dir := range dirs {
		if w.isIgnored(dir) {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}
	return w, nil
}

// Run blocks until ctx is done, calling onChange after every settled burst of relevant
// events. A failing callback is logged and watching continues.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.follow(event)
			if !w.Relevant(event) {
				continue
			}

			w.logger.Debugw("source change detected", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("watcher error", "error", err)

		case <-fire:
			fire = nil
			if err := onChange(ctx); err != nil {
				w.logger.Errorw("generation failed", "error", err)
			}
		}
	}
}

// Relevant reports whether an event should trigger a new run.
func (w *Watcher) Relevant(event fsnotify.Event) bool {
	if filepath.Ext(event.Name) != ".go" || strings.HasSuffix(event.Name, "_test.go") {
		return false
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return !w.isIgnored(event.Name)
}

// follow starts watching folders created inside watched folders.
func (w *Watcher) follow(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) || w.isIgnored(event.Name) {
		return
	}
	info, err := os.Stat(event.Name)
	if err != nil || !info.IsDir() {
		return
	}
	if err := w.watcher.Add(event.Name); err != nil {
		w.logger.Warnw("failed to watch new folder", "path", event.Name, "error", err)
	}
}

func (w *Watcher) isIgnored(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, dir := range w.ignored {
		if abs == dir || strings.HasPrefix(abs, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
