package generator

// Test Plan for Watcher:
// - Single file change fires callback after debounce
// - Rapid changes to several files are batched into one callback
// - Non-monitored extensions never fire
// - Stop() is idempotent and safe before Start()
// - Missing watch root fails construction

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDebounce = 150 * time.Millisecond

func TestWatcherSingleFileChange(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	w, err := NewWatcher([]string{tempDir}, []string{".h"}, testDebounce, nil)
	require.NoError(t, err)
	defer w.Stop()

	var mu sync.Mutex
	var got []string
	fired := make(chan struct{}, 1)

	require.NoError(t, w.Start(context.Background(), func(files []string) {
		mu.Lock()
		got = files
		mu.Unlock()
		fired <- struct{}{}
	}))

	// Give the watch goroutine time to come up
	time.Sleep(100 * time.Millisecond)

	header := filepath.Join(tempDir, "Widget.h")
	require.NoError(t, os.WriteFile(header, []byte("@interface Widget : NSObject\n@end\n"), 0644))

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("callback not called after timeout")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, got, header)
}

func TestWatcherBatchesRapidChanges(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	w, err := NewWatcher([]string{tempDir}, []string{".h", ".m"}, testDebounce, nil)
	require.NoError(t, err)
	defer w.Stop()

	var mu sync.Mutex
	var calls [][]string
	fired := make(chan struct{}, 4)

	require.NoError(t, w.Start(context.Background(), func(files []string) {
		mu.Lock()
		calls = append(calls, files)
		mu.Unlock()
		fired <- struct{}{}
	}))

	time.Sleep(100 * time.Millisecond)

	// All writes land inside one debounce window
	for _, name := range []string{"A.h", "B.h", "C.m"} {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), []byte("//\n"), 0644))
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("callback not called after timeout")
	}

	// Allow a straggler callback to show up if batching failed
	time.Sleep(2 * testDebounce)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, calls, 1, "rapid changes should coalesce into one callback")
	assert.Len(t, calls[0], 3)
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	w, err := NewWatcher([]string{tempDir}, []string{".h"}, testDebounce, nil)
	require.NoError(t, err)
	defer w.Stop()

	fired := make(chan struct{}, 1)
	require.NoError(t, w.Start(context.Background(), func(files []string) {
		fired <- struct{}{}
	}))

	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "notes.txt"), []byte("not a header"), 0644))

	select {
	case <-fired:
		t.Fatal("callback fired for a non-monitored extension")
	case <-time.After(3 * testDebounce):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	w, err := NewWatcher([]string{tempDir}, []string{".h"}, testDebounce, nil)
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background(), func([]string) {}))

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestWatcherStopBeforeStart(t *testing.T) {
	t.Parallel()

	w, err := NewWatcher([]string{t.TempDir()}, []string{".h"}, testDebounce, nil)
	require.NoError(t, err)

	assert.NoError(t, w.Stop())
}

func TestNewWatcherMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := NewWatcher([]string{filepath.Join(t.TempDir(), "missing")}, []string{".h"}, testDebounce, nil)
	assert.Error(t, err)
}

func TestNewWatcherCollapsesDuplicateRoots(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	w, err := NewWatcher([]string{tempDir, tempDir}, []string{".h"}, testDebounce, nil)
	require.NoError(t, err)
	defer w.Stop()

	assert.Len(t, w.dirs, 1)
}
