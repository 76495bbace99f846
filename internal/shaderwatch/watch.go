// Package shaderwatch signals when shader source files change on disk.
package shaderwatch

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a fixed set of files. The containing
// directories are watched rather than the files, so editors that save by
// renaming a temp file over the original are still seen.
type Watcher struct {
	fw     *fsnotify.Watcher
	files  map[string]struct{}
	reload chan struct{}
	done   chan struct{}
	wg     sync.WaitGroup
}

// New starts watching paths.
func New(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shaderwatch: %w", err)
	}
	w := &Watcher{
		fw:     fw,
		files:  make(map[string]struct{}, len(paths)),
		reload: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("shaderwatch: %w", err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("shaderwatch: watch %s: %w", dir, err)
		}
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Poll reports whether a change arrived since the last call. It never blocks.
// Bursts of events between two calls collapse into one.
func (w *Watcher) Poll() bool {
	select {
	case <-w.reload:
		return true
	default:
		return false
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if _, ok := w.files[filepath.Clean(ev.Name)]; !ok {
				continue
			}
			select {
			case w.reload <- struct{}{}:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Printf("shaderwatch: %v", err)
		}
	}
}
