// Package monitor watches the JSONL data file and reloads it on change.
package monitor

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/young1lin/tableview/internal/parser"
)

// DefaultPollInterval is how often the file is checked when no fsnotify
// event arrives
const DefaultPollInterval = 500 * time.Millisecond

// WatcherInterface defines the interface for data file watchers
type WatcherInterface interface {
	Changes() <-chan parser.Result
	Errors() <-chan error
	Close() error
}

// signature identifies one version of the file
type signature struct {
	size    int64
	modTime time.Time
}

// Watcher reloads a data file whenever it changes. The first load is sent
// as soon as the watcher starts.
type Watcher struct {
	watcher  *fsnotify.Watcher
	fs       FileSystem
	filePath string
	interval time.Duration
	last     signature
	loaded   bool

	changes   chan parser.Result
	errorChan chan error
	done      chan struct{}
	closeOnce sync.Once
}

// NewWatcher creates a watcher for the data file at filePath
func NewWatcher(filePath string) (*Watcher, error) {
	return NewWatcherWithFS(filePath, OSFileSystem{}, DefaultPollInterval)
}

// NewWatcherWithFS creates a watcher reading through fs and polling every
// interval
func NewWatcherWithFS(filePath string, fs FileSystem, interval time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	filePath = filepath.Clean(filePath)

	// Watch the directory so editors that replace the file are still seen
	if err := fsWatcher.Add(filepath.Dir(filePath)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(filePath), err)
	}

	w := &Watcher{
		watcher:   fsWatcher,
		fs:        fs,
		filePath:  filePath,
		interval:  interval,
		changes:   make(chan parser.Result, 1),
		errorChan: make(chan error, 10),
		done:      make(chan struct{}),
	}

	go w.watch()

	return w, nil
}

// watch runs the file watching loop
func (w *Watcher) watch() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.changes)
	defer close(w.errorChan)

	w.check()

	for {
		select {
		case <-w.done:
			return

		case <-ticker.C:
			// Polling as backup for missed events
			w.check()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.check()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// check reloads the file if its size or modification time changed
func (w *Watcher) check() {
	info, err := w.fs.Stat(w.filePath)
	if err != nil {
		if !w.loaded {
			w.sendError(fmt.Errorf("failed to stat data file: %w", err))
			w.loaded = true
		}
		return
	}

	sig := signature{size: info.Size(), modTime: info.ModTime()}
	if w.loaded && sig == w.last {
		return
	}

	f, err := w.fs.Open(w.filePath)
	if err != nil {
		w.sendError(fmt.Errorf("failed to open data file: %w", err))
		return
	}
	res, err := parser.ParseRecords(f)
	f.Close()
	if err != nil {
		w.sendError(err)
		return
	}

	w.last = sig
	w.loaded = true
	w.publish(res)
}

// publish delivers res, replacing a reload the reader has not taken yet
func (w *Watcher) publish(res parser.Result) {
	select {
	case w.changes <- res:
		return
	default:
	}
	select {
	case <-w.changes:
	default:
	}
	w.changes <- res
}

// sendError reports err unless the error buffer is full
func (w *Watcher) sendError(err error) {
	select {
	case w.errorChan <- err:
	default:
	}
}

// Changes returns a channel of reloaded file contents
func (w *Watcher) Changes() <-chan parser.Result {
	return w.changes
}

// Errors returns a channel of errors that occur during watching
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching the file
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

// TestWatcher is a helper for testing that provides direct control over channels
type TestWatcher struct {
	changes       chan parser.Result
	errorChan     chan error
	closed        bool
	changesClosed bool
	errorsClosed  bool
	mu            sync.Mutex
}

// NewTestWatcher creates a test watcher with controllable channels
func NewTestWatcher() *TestWatcher {
	return &TestWatcher{
		changes:   make(chan parser.Result, 10),
		errorChan: make(chan error, 10),
	}
}

func (tw *TestWatcher) Changes() <-chan parser.Result {
	return tw.changes
}

func (tw *TestWatcher) Errors() <-chan error {
	return tw.errorChan
}

func (tw *TestWatcher) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.closed {
		return nil
	}
	tw.closed = true

	if !tw.changesClosed {
		close(tw.changes)
		tw.changesClosed = true
	}
	if !tw.errorsClosed {
		close(tw.errorChan)
		tw.errorsClosed = true
	}
	return nil
}

// CloseChangesOnly closes only the Changes channel
func (tw *TestWatcher) CloseChangesOnly() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if !tw.changesClosed {
		close(tw.changes)
		tw.changesClosed = true
	}
}

// CloseErrorsOnly closes only the Errors channel
func (tw *TestWatcher) CloseErrorsOnly() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if !tw.errorsClosed {
		close(tw.errorChan)
		tw.errorsClosed = true
	}
}

// SendChange sends a reload result
func (tw *TestWatcher) SendChange(res parser.Result) {
	tw.changes <- res
}

// SendError sends a test error to the watcher
func (tw *TestWatcher) SendError(err error) {
	tw.errorChan <- err
}
