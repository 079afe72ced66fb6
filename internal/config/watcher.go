package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst of file events
// to settle before reloading.
const DefaultDebounce = 100 * time.Millisecond

// ChangeFunc receives a reloaded configuration. cfg is only meaningful
// when err is nil.
type ChangeFunc func(cfg Config, err error)

// Watcher reloads a configuration file whenever it changes on disk.
// The parent directory is watched so that editors which save by renaming
// a temporary file over the original are still noticed.
type Watcher struct {
	path     string
	onChange ChangeFunc
	lookup   LookupFunc
	debounce time.Duration

	fsw *fsnotify.Watcher

	closeOnce sync.Once
	closeCh   chan struct{}
	closedWg  sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the settle delay. Non-positive values reload on every
// event.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithLookup replaces the environment lookup used on reload.
func WithLookup(lookup LookupFunc) WatcherOption {
	return func(w *Watcher) {
		w.lookup = lookup
	}
}

// Watch starts watching path. onChange is called from the watcher's
// goroutine after each reload.
func Watch(path string, onChange ChangeFunc, opts ...WatcherOption) (*Watcher, error) {
	if _, err := FormatOf(path); err != nil {
		return nil, err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	w := &Watcher{
		path:     absPath,
		onChange: onChange,
		lookup:   os.LookupEnv,
		debounce: DefaultDebounce,
		fsw:      fsw,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and waits for its goroutine to exit.
// It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
		w.closedWg.Wait()
	})
	return err
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if w.debounce <= 0 {
				w.reload()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.onChange(Config{}, fmt.Errorf("watch %s: %w", w.path, err))

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

// relevant reports whether event changes the watched file's contents.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Remove)
}

func (w *Watcher) reload() {
	cfg, err := LoadWithEnv(w.path, w.lookup)
	w.onChange(cfg, err)
}
