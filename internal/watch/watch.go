// Package watch re-runs validation when CHTL sources change on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/leapstack-labs/chtlcheck/internal/validator"
)

// DefaultDebounce is the quiet period after the last change before a re-run.
const DefaultDebounce = 100 * time.Millisecond

// Config holds watcher configuration.
type Config struct {
	// Paths are the validation inputs: files and directories.
	Paths []string
	// Extensions selects which changed files trigger a re-run (validator.DefaultExtensions if empty)
	Extensions []string
	// Debounce is the quiet period (DefaultDebounce if zero)
	Debounce time.Duration
	// OnChange is called with the last changed path once the debounce settles.
	OnChange func(ctx context.Context, changed string)
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Watcher watches input paths and calls OnChange after changes settle.
// Calls to OnChange never overlap.
type Watcher struct {
	paths      []string
	files      map[string]bool
	extensions []string
	debounce   time.Duration
	onChange   func(ctx context.Context, changed string)
	logger     *slog.Logger

	mu sync.Mutex // serializes OnChange
}

// New creates a watcher.
func New(cfg Config) (*Watcher, error) {
	if cfg.OnChange == nil {
		return nil, errors.New("watch: OnChange is required")
	}
	if len(cfg.Paths) == 0 {
		return nil, validator.ErrNoInputs
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = validator.DefaultExtensions
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		paths:      cfg.Paths,
		files:      make(map[string]bool),
		extensions: exts,
		debounce:   debounce,
		onChange:   cfg.OnChange,
		logger:     logger,
	}, nil
}

// Run watches until ctx is cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, p := range w.paths {
		if err := w.add(watcher, p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
	}
	w.logger.Info("watching for changes", "paths", len(w.paths), "debounce", w.debounce)

	w.loop(ctx, watcher)
	return nil
}

// add watches a directory tree, or the directory holding a single file.
// Editors often replace files on save, so files are watched through their parent.
func (w *Watcher) add(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		// Watch the parent so the file is picked up once it appears.
		w.files[filepath.Clean(path)] = true
		return watcher.Add(filepath.Dir(path))
	}
	if !info.IsDir() {
		w.files[filepath.Clean(path)] = true
		return watcher.Add(filepath.Dir(path))
	}
	return w.addTree(watcher, path)
}

func (w *Watcher) addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// relevant reports whether an event should trigger a re-run.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	if w.files[filepath.Clean(event.Name)] {
		return true
	}
	return validator.MatchesExtension(event.Name, w.extensions)
}

func (w *Watcher) loop(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
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

			// New directories inside a watched tree are watched too.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(watcher, event.Name); err != nil {
						w.logger.Warn("cannot watch new directory", "path", event.Name, "error", err)
					}
					continue
				}
			}

			if !w.relevant(event) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			changed := event.Name
			debounceTimer = time.AfterFunc(w.debounce, func() {
				if ctx.Err() != nil {
					return
				}
				w.mu.Lock()
				defer w.mu.Unlock()
				w.logger.Info("change detected", "path", changed)
				w.onChange(ctx, changed)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}
