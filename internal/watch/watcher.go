// Package watch refreshes the browser when the directory on screen
// changes underneath it, using fsnotify.
package watch

import (
	"fmt"
	"os"
	"sync"
	"time"

	"shareview/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Bursts of events inside this window collapse into one refresh; copies
// onto a network share generate many writes per file.
const debounceWindow = 500 * time.Millisecond

// Watcher monitors the single directory currently shown in the browser
// and delivers one refresh signal per burst of changes.
type Watcher struct {
	// Channel that delivers the path of the directory to re-list
	refreshChan chan string

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Lock for running state and the watched directory
	mutex sync.RWMutex

	// Whether the watcher is running
	running bool

	// Directory currently watched; empty until SetDirectory
	directory string
}

// New creates a directory watcher using fsnotify.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		refreshChan: make(chan string, 1),
		stopChan:    make(chan struct{}),
		fsWatcher:   fsWatcher,
	}, nil
}

// SetDirectory switches the watch to dir, dropping the previous
// directory. The browser calls this on every navigation.
func (w *Watcher) SetDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.directory != "" {
		// Removal can fail when the share vanished out from under us;
		// the new Add is what matters
		if err := w.fsWatcher.Remove(w.directory); err != nil {
			log.Debugf("could not unwatch %s: %v", w.directory, err)
		}
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		w.directory = ""
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	w.directory = dir
	log.LogWithFields(log.F("directory", dir)).Debug("Watching directory")
	return nil
}

// Directory returns the directory currently watched.
func (w *Watcher) Directory() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.directory
}

// RefreshChannel returns the channel that delivers refresh signals. Each
// value is the directory whose listing is stale.
func (w *Watcher) RefreshChannel() <-chan string {
	return w.refreshChan
}

// Start begins the event loop.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go func() {
		// The sender owns the channel: closing it here cannot race the
		// refresh send in the timer case
		defer close(w.refreshChan)

		// Debounce timer; idle until the first event of a burst
		timer := time.NewTimer(debounceWindow)
		if !timer.Stop() {
			<-timer.C
		}

		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) ||
					event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
					timer.Reset(debounceWindow)
				}

			case <-timer.C:
				w.mutex.RLock()
				dir := w.directory
				w.mutex.RUnlock()
				if dir == "" {
					continue
				}

				// Non-blocking: a pending refresh already covers this burst
				select {
				case w.refreshChan <- dir:
				default:
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	log.Debug("Watcher started.")
	return nil
}

// Stop halts the event loop; the loop closes the refresh channel on its
// way out.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}

	w.running = false
}

// IsRunning returns whether the watcher is currently active.
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
