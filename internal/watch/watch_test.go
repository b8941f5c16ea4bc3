package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/chtlcheck/internal/testutil"
	"github.com/leapstack-labs/chtlcheck/internal/validator"
)

// recorder collects OnChange calls.
type recorder struct {
	mu      sync.Mutex
	changed []string
}

func (r *recorder) onChange(_ context.Context, changed string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changed = append(r.changed, changed)
}

func (r *recorder) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.changed...)
}

// startWatcher runs a watcher over paths until the test ends.
func startWatcher(t *testing.T, paths ...string) *recorder {
	t.Helper()

	rec := &recorder{}
	w, err := New(Config{
		Paths:    paths,
		Debounce: 20 * time.Millisecond,
		OnChange: rec.onChange,
		Logger:   testutil.NewTestLogger(t),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})

	// Give the watcher time to register before the test writes.
	time.Sleep(100 * time.Millisecond)
	return rec
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Config{Paths: []string{"."}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OnChange")

	_, err = New(Config{OnChange: func(context.Context, string) {}})
	require.ErrorIs(t, err, validator.ErrNoInputs)
}

func TestNew_Defaults(t *testing.T) {
	w, err := New(Config{Paths: []string{"."}, OnChange: func(context.Context, string) {}})
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.debounce)
	assert.Equal(t, validator.DefaultExtensions, w.extensions)
}

func TestRelevant(t *testing.T) {
	w, err := New(Config{Paths: []string{"."}, OnChange: func(context.Context, string) {}})
	require.NoError(t, err)
	w.files[filepath.Clean("/src/notes.txt")] = true

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write chtl", fsnotify.Event{Name: "/src/a.chtl", Op: fsnotify.Write}, true},
		{"create chtl upper case", fsnotify.Event{Name: "/src/A.CHTL", Op: fsnotify.Create}, true},
		{"remove chtl", fsnotify.Event{Name: "/src/a.chtl", Op: fsnotify.Remove}, false},
		{"write other extension", fsnotify.Event{Name: "/src/a.md", Op: fsnotify.Write}, false},
		{"explicit input file", fsnotify.Event{Name: "/src/notes.txt", Op: fsnotify.Write}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.event))
		})
	}
}

func TestRun_ReportsChange(t *testing.T) {
	dir := t.TempDir()
	rec := startWatcher(t, dir)

	target := filepath.Join(dir, "page.chtl")
	writeFile(t, target, "div { }")

	require.Eventually(t, func() bool {
		return len(rec.calls()) > 0
	}, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, target, rec.calls()[0])
}

func TestRun_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	rec := startWatcher(t, dir)

	writeFile(t, filepath.Join(dir, "readme.txt"), "notes")

	assert.Never(t, func() bool {
		return len(rec.calls()) > 0
	}, 300*time.Millisecond, 20*time.Millisecond)
}

func TestRun_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "page.chtl")
	writeFile(t, target, "div { }")

	rec := &recorder{}
	w, err := New(Config{
		Paths:    []string{dir},
		Debounce: 300 * time.Millisecond,
		OnChange: rec.onChange,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 5; i++ {
		writeFile(t, target, "div { span { } }")
	}

	require.Eventually(t, func() bool {
		return len(rec.calls()) > 0
	}, 3*time.Second, 20*time.Millisecond)
	time.Sleep(400 * time.Millisecond)
	assert.Len(t, rec.calls(), 1)
}

func TestRun_WatchesSingleFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "single.chtl")
	writeFile(t, target, "div { }")
	rec := startWatcher(t, target)

	writeFile(t, target, "span { }")

	require.Eventually(t, func() bool {
		return len(rec.calls()) > 0
	}, 3*time.Second, 20*time.Millisecond)
}

func TestRun_StopsOnCancel(t *testing.T) {
	w, err := New(Config{Paths: []string{t.TempDir()}, OnChange: func(context.Context, string) {}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestRun_MissingRoot(t *testing.T) {
	w, err := New(Config{
		Paths:    []string{filepath.Join(t.TempDir(), "missing", "deeper", "x.chtl")},
		OnChange: func(context.Context, string) {},
	})
	require.NoError(t, err)

	err = w.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
