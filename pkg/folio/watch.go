package folio

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/atomic"

	"github.com/unknitin07/unknaveen/pkg/folio/internal"
)

// contentWatcher watches the content file in development mode and raises a
// dirty flag once writes settle, so the main loop can reload without
// restarting. Editors save with bursts of events (and some replace the
// file), so the watcher observes the parent directory and debounces.
type contentWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration

	dirty atomic.Bool
	done  chan struct{}
}

func startContentWatcher(path string) (*contentWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, NewInfrastructureError("start_watcher", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, NewInfrastructureError("start_watcher", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, NewInfrastructureError("start_watcher", err)
	}

	w := &contentWatcher{
		watcher:  watcher,
		path:     absPath,
		debounce: 250 * time.Millisecond,
		done:     make(chan struct{}),
	}
	go w.run()

	internal.GetLogger().Info("Watching content file for changes", "path", absPath)
	return w, nil
}

func (w *contentWatcher) run() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			w.dirty.Store(true)
			timer = nil
			fire = nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			internal.GetLogger().Warn("Content watcher error", "error", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// TakeDirty reports whether the file changed since the last call and
// clears the flag.
func (w *contentWatcher) TakeDirty() bool {
	return w.dirty.Swap(false)
}

func (w *contentWatcher) Close() {
	close(w.done)
	w.watcher.Close()
}
