package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// WatcherInterface defines the interface for config watchers
type WatcherInterface interface {
	Changes() <-chan *Config
	Errors() <-chan error
	Close() error
}

// Watcher reloads the config file whenever it is written
type Watcher struct {
	watcher     *fsnotify.Watcher
	path        string
	changesChan chan *Config
	errorChan   chan error
	done        chan struct{}
	closeOnce   sync.Once
}

// NewWatcher starts watching the directory containing path. The file
// itself does not need to exist yet.
func NewWatcher(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Editors often replace the file, so watch the directory
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:     fsWatcher,
		path:        filepath.Clean(path),
		changesChan: make(chan *Config, 4),
		errorChan:   make(chan error, 4),
		done:        make(chan struct{}),
	}

	go w.watch()

	return w, nil
}

// watch runs the event loop until Close
func (w *Watcher) watch() {
	defer close(w.changesChan)
	defer close(w.errorChan)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// reload parses the file and publishes the result. A file that fails to
// parse is reported on Errors and the previous config stays in effect.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.sendError(err)
		return
	}
	select {
	case w.changesChan <- cfg:
	case <-w.done:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errorChan <- err:
	case <-w.done:
	}
}

// Changes returns a channel of reloaded configs
func (w *Watcher) Changes() <-chan *Config {
	return w.changesChan
}

// Errors returns a channel of watch and parse errors
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
