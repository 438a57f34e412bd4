package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sviosdi/svldoc/internal/config"
)

func writeConfig(t *testing.T, path, title string) {
	t.Helper()
	data := []byte("title: " + title + "\nurl: https://example.org\nbaseUrl: /\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "svldoc.yaml")
	writeConfig(t, path, "First")

	titles := make(chan string, 4)
	w, err := New(path, func(_ context.Context, cfg *config.SiteConfig) error {
		titles <- cfg.Title
		return nil
	})
	require.NoError(t, err)
	w.WithDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	writeConfig(t, path, "Second")

	select {
	case title := <-titles:
		assert.Equal(t, "Second", title)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after config change")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherSkipsInvalidConfigAndUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "svldoc.yaml")
	writeConfig(t, path, "First")

	var calls atomic.Int32
	w, err := New(path, func(context.Context, *config.SiteConfig) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)
	w.WithDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("url: https://example.org\nbaseUrl: /\n"), 0o600))
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	writeConfig(t, path, "Fixed")
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 5*time.Second, 20*time.Millisecond)
}

func TestRelevant(t *testing.T) {
	w, err := New("/site/svldoc.yaml", nil)
	require.NoError(t, err)

	assert.True(t, w.relevant(fsnotify.Event{Name: "/site/svldoc.yaml", Op: fsnotify.Write}))
	assert.True(t, w.relevant(fsnotify.Event{Name: "/site/.env", Op: fsnotify.Create}))
	assert.False(t, w.relevant(fsnotify.Event{Name: "/site/other.yaml", Op: fsnotify.Write}))
	assert.False(t, w.relevant(fsnotify.Event{Name: "/site/svldoc.yaml", Op: fsnotify.Remove}))
}
