package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/lagoon/pkg/lagoon"
	"github.com/bft-labs/lagoon/pkg/log"
)

// DefaultDebounce is the delay between the last change event and a re-solve.
const DefaultDebounce = 100 * time.Millisecond

// ResultFunc receives every solve outcome produced by a Watcher.
// Calls are serialized.
type ResultFunc func(lagoon.Result, error)

// Watcher re-solves the runner's input file whenever it is written.
type Watcher struct {
	runner   *Runner
	logger   log.Logger
	delay    time.Duration
	onResult ResultFunc

	mu       sync.Mutex
	debounce *time.Timer

	solveMu sync.Mutex
}

// NewWatcher creates a watcher around runner. A non-positive delay means
// DefaultDebounce.
func NewWatcher(runner *Runner, delay time.Duration, onResult ResultFunc) *Watcher {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Watcher{
		runner:   runner,
		logger:   runner.logger,
		delay:    delay,
		onResult: onResult,
	}
}

// Run solves once, then watches the input's directory and re-solves after
// every write or create of the input file. It blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	path := w.runner.Source().Path()
	dir := filepath.Dir(path)
	name := filepath.Base(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching input", log.String("path", path), log.Duration("debounce", w.delay))

	w.solve(ctx)

	for {
		select {
		case <-ctx.Done():
			w.stopDebounce()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceSolve(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) debounceSolve(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.delay, func() {
		w.solve(ctx)
	})
}

func (w *Watcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
		w.debounce = nil
	}
}

func (w *Watcher) solve(ctx context.Context) {
	w.solveMu.Lock()
	defer w.solveMu.Unlock()

	if ctx.Err() != nil {
		return
	}
	res, err := w.runner.Solve(ctx)
	if err != nil {
		w.logger.Error("solve failed", log.Err(err))
	}
	if w.onResult != nil {
		w.onResult(res, err)
	}
}
