// This file implements a file system watcher for the source library.
// It uses OS-level file system events to detect archive changes and
// re-runs the sync callback after a short quiet period.

package library

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherService watches the source library directory for file system
// changes and triggers a sync when archives are added, modified, or
// removed.
type WatcherService struct {
	source        string
	onSync        func()
	watcher       *fsnotify.Watcher
	changedPaths  map[string]bool
	mu            sync.Mutex
	debounceTimer *time.Timer
	debounceDelay time.Duration
	stopChan      chan struct{}
}

// NewWatcherService creates a watcher over source that calls onSync
// after changes settle.
func NewWatcherService(source string, onSync func()) *WatcherService {
	return &WatcherService{
		source:        source,
		onSync:        onSync,
		changedPaths:  make(map[string]bool),
		debounceDelay: 2 * time.Second, // Wait for the burst of events to settle before syncing
		stopChan:      make(chan struct{}),
	}
}

// Start begins watching the source directory for changes.
func (w *WatcherService) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher

	// Watch the source root recursively. Only directories are added;
	// files are watched via their parent directory.
	err = filepath.WalkDir(w.source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return err
	}

	log.Printf("File watcher started for source library: %s", w.source)

	go w.processEvents()
	return nil
}

// Stop stops the file watcher service.
func (w *WatcherService) Stop() error {
	close(w.stopChan)
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

func (w *WatcherService) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)

		case <-w.stopChan:
			return
		}
	}
}

// handleEvent processes a single file system event.
func (w *WatcherService) handleEvent(event fsnotify.Event) {
	// Ignore Chmod events; browsing the tree triggers them constantly.
	if event.Op == fsnotify.Chmod {
		return
	}

	relevant := event.Op&fsnotify.Create != 0 ||
		event.Op&fsnotify.Write != 0 ||
		event.Op&fsnotify.Remove != 0 ||
		event.Op&fsnotify.Rename != 0
	if !relevant {
		return
	}

	info, err := os.Stat(event.Name)
	isDir := err == nil && info.IsDir()

	// A new directory needs to join the watch list before anything
	// dropped into it can be seen.
	if event.Op&fsnotify.Create != 0 && isDir {
		w.watcher.Add(event.Name)
		w.markChanged(event.Name)
		return
	}

	// Removes can't be stat'ed; mark them if the name looks like an
	// archive, otherwise only archive files are relevant.
	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 || (!isDir && IsSupportedArchive(filepath.Base(event.Name))) {
		w.markChanged(event.Name)
	}
}

func (w *WatcherService) markChanged(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.changedPaths[path] = true
	w.changedPaths[filepath.Dir(path)] = true

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, w.triggerSync)
}

// triggerSync fires the sync callback once for the accumulated batch of
// changes.
func (w *WatcherService) triggerSync() {
	w.mu.Lock()
	if len(w.changedPaths) == 0 {
		w.mu.Unlock()
		return
	}
	changed := len(w.changedPaths)
	w.changedPaths = make(map[string]bool)
	w.mu.Unlock()

	log.Printf("File watcher detected %d changed path(s), triggering sync", changed)
	go w.onSync()
}
