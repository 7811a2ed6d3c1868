package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchFunc receives the outcome of every (re-)render during Watch.
type WatchFunc func(res *FileResult, err error)

// Watch renders inputs once, then re-renders an input whenever its AST or
// source file changes. It blocks until ctx is done. Render errors are
// reported through fn and do not stop watching. fn may be called from
// timer goroutines and must be safe for concurrent use.
func (e *Engine) Watch(ctx context.Context, inputs []FileInput, fn WatchFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Map each watched file to the inputs depending on it
	owners := make(map[string][]int)
	dirs := make(map[string]struct{})
	for i, in := range inputs {
		for _, p := range []string{in.Path, in.SourcePath} {
			if p == "" {
				continue
			}
			abs, err := filepath.Abs(p)
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", p, err)
			}
			owners[abs] = append(owners[abs], i)
			dirs[filepath.Dir(abs)] = struct{}{}
		}
	}

	// Editors often replace files instead of writing them, so watch directories
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	for _, in := range inputs {
		fn(e.RenderFile(ctx, in))
	}

	e.logger.Info("watching for changes", "files", len(owners), "dirs", len(dirs))
	e.watchLoop(ctx, watcher, inputs, owners, fn)
	return nil
}

// watchLoop handles file system events until ctx is done.
func (e *Engine) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, inputs []FileInput, owners map[string][]int, fn WatchFunc) {
	var (
		mu            sync.Mutex
		pending       = make(map[int]struct{})
		debounceTimer *time.Timer
	)

	flush := func() {
		mu.Lock()
		changed := pending
		pending = make(map[int]struct{})
		mu.Unlock()

		for i := range inputs {
			if _, ok := changed[i]; !ok {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			fn(e.RenderFile(ctx, inputs[i]))
		}
	}

	defer func() {
		mu.Lock()
		defer mu.Unlock()
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// Only handle write/create events for watched files
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			idx, ok := owners[abs]
			if !ok {
				continue
			}

			e.logger.Debug("change detected", "path", abs)

			mu.Lock()
			for _, i := range idx {
				pending[i] = struct{}{}
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(e.watchDebounce, flush)
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			e.logger.Warn("watcher error", "error", err)
		}
	}
}
