// Package watcher invalidates the dataset cache when the local workbook file
// changes on disk (out-of-band replacement, not just the upload endpoint).
package watcher

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceWindow swallows the burst of events a single save produces.
const debounceWindow = 500 * time.Millisecond

// Watcher monitors one file and fires a callback on writes to it.
type Watcher struct {
	path     string
	onChange func()
	log      *zap.Logger

	fw   *fsnotify.Watcher
	done chan struct{}
}

// New creates a watcher for the given file.
func New(path string, onChange func(), log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		log:      log,
		fw:       fw,
		done:     make(chan struct{}),
	}, nil
}

// Start watches the file's directory (editors replace files by rename, which
// drops a watch placed on the file itself) and runs the event loop.
func (w *Watcher) Start() error {
	if err := w.fw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and its event loop.
func (w *Watcher) Stop() {
	close(w.done)
	w.fw.Close()
}

func (w *Watcher) loop() {
	var lastFired time.Time

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if time.Since(lastFired) < debounceWindow {
				continue
			}
			lastFired = time.Now()
			w.log.Info("workbook changed on disk", zap.String("file", w.path))
			w.onChange()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", zap.Error(err))
		}
	}
}
