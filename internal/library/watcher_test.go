// This file tests the source library watcher. It is in the library
// package so the debounce delay can be shortened for tests.

package library

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherServiceStartStop(t *testing.T) {
	w := NewWatcherService(t.TempDir(), func() {})

	require.NoError(t, w.Start())
	require.NoError(t, w.Stop())
}

func TestWatcherServiceTriggersSyncOnArchiveCreate(t *testing.T) {
	sourceDir := t.TempDir()

	synced := make(chan struct{}, 1)
	w := NewWatcherService(sourceDir, func() {
		select {
		case synced <- struct{}{}:
		default:
		}
	})
	w.debounceDelay = 100 * time.Millisecond

	require.NoError(t, w.Start())
	defer w.Stop()

	// Give the watcher a moment to register before generating events.
	time.Sleep(100 * time.Millisecond)

	archive := filepath.Join(sourceDir, "issue.cbz")
	require.NoError(t, os.WriteFile(archive, []byte("not really a zip"), 0644))

	select {
	case <-synced:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not trigger a sync after an archive was created")
	}
}

func TestWatcherServiceIgnoresUnrelatedFiles(t *testing.T) {
	sourceDir := t.TempDir()

	synced := make(chan struct{}, 1)
	w := NewWatcherService(sourceDir, func() {
		select {
		case synced <- struct{}{}:
		default:
		}
	})
	w.debounceDelay = 100 * time.Millisecond

	require.NoError(t, w.Start())
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)

	note := filepath.Join(sourceDir, "notes.txt")
	require.NoError(t, os.WriteFile(note, []byte("just text"), 0644))

	select {
	case <-synced:
		t.Fatal("watcher should not sync for non-archive files")
	case <-time.After(500 * time.Millisecond):
	}
}
