// Copyright LIMIT Lab, 2026. All rights reserved.

package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/limitlab/labsite/internal/content"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writePubs(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, content.PublicationsFile), []byte(body), 0o644))
}

// runWatcher starts w and returns a stop function that waits for Run.
func runWatcher(t *testing.T, w *Watcher) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	return func() {
		cancel()
		require.NoError(t, <-done)
	}
}

func TestReloadOnChange(t *testing.T) {
	dir := t.TempDir()
	writePubs(t, dir, "publications: []\n")

	var mu sync.Mutex
	var latest *content.Content
	w := New(dir, func(c *content.Content) {
		mu.Lock()
		latest = c
		mu.Unlock()
	}, nil, WithDebounce(20*time.Millisecond))
	stop := runWatcher(t, w)
	defer stop()

	// Give the watch a moment to register before writing.
	time.Sleep(50 * time.Millisecond)
	writePubs(t, dir, "publications:\n  - {id: 1, title: A, conference: X, year: 2024, field: F}\n")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return latest != nil && latest.Publications.Len() == 1
	}, 3*time.Second, 10*time.Millisecond)
}

func TestBadReloadKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	writePubs(t, dir, "publications: []\n")

	var applied atomic.Int32
	var attempts atomic.Int32
	w := New(dir, func(*content.Content) { applied.Add(1) }, nil,
		WithDebounce(20*time.Millisecond),
		WithLoader(func(d string) (*content.Content, error) {
			attempts.Add(1)
			return content.Load(d)
		}))
	stop := runWatcher(t, w)
	defer stop()

	time.Sleep(50 * time.Millisecond)
	writePubs(t, dir, "publications:\n  - {id: 1, title: A}\n  - {id: 1, title: B}\n")

	require.Eventually(t, func() bool { return attempts.Load() > 0 }, 3*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), applied.Load())
}

func TestRunMissingDir(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing"), func(*content.Content) {}, nil)
	err := w.Run(context.Background())
	require.Error(t, err)
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		ev   fsnotify.Event
		want bool
	}{
		{fsnotify.Event{Name: "/c/publications.yaml", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "/c/site.yaml", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "/c/news.yaml", Op: fsnotify.Remove}, true},
		{fsnotify.Event{Name: "/c/members.yaml", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "/c/.publications.yaml.swp", Op: fsnotify.Write}, false},
		{fsnotify.Event{Name: "/c/notes.txt", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, relevant(tt.ev), tt.ev.String())
	}
}
