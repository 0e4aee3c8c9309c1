// Package watch monitors the loaded cleanup script for external edits
// using fsnotify, so the panel can re-read it.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"scour/internal/log"

	"github.com/fsnotify/fsnotify"
)

// ScriptModification represents a change to the watched script file
type ScriptModification struct {
	Path      string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors a single script file for changes using fsnotify.
// The parent directory is watched because editors typically replace
// files instead of writing them in place.
type Watcher struct {
	// Absolute path of the script being watched
	path string

	// Channel to receive script modifications
	modChan chan ScriptModification

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Lock for running state
	mutex sync.RWMutex

	// Whether the watcher is running
	running bool
}

// New creates a watcher for the given script file
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve script path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("error accessing script: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch script directory: %w", err)
	}

	return &Watcher{
		path:      abs,
		modChan:   make(chan ScriptModification, 10),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// Path returns the watched script path
func (w *Watcher) Path() string {
	return w.path
}

// Channel returns the channel that delivers script modification events
func (w *Watcher) Channel() <-chan ScriptModification {
	return w.modChan
}

// Start begins watching the script file
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	log.LogWithFields(log.F("script", w.path)).Info("Watching script for edits")

	go func() {
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				mod := ScriptModification{
					Path:      w.path,
					Timestamp: time.Now(),
					Op:        event.Op,
				}
				select {
				case w.modChan <- mod:
				default:
					// Drop when the consumer lags; the next event
					// triggers the same re-read.
				}
			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.Warn("Script watcher error: %v", err)
			case <-w.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop halts the watcher and releases the fsnotify instance
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}
	w.running = false
	close(w.stopChan)
	w.fsWatcher.Close()
}

// Running reports whether the watcher is active
func (w *Watcher) Running() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
