package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TuningWatcher reports changes to a tuning file. Events carries the file
// path and is drained by the game loop, which reloads on its own goroutine.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchTuning starts watching the directory holding path. Editors often
// replace files instead of writing them, so the parent directory is watched
// and events are filtered by name.
func WatchTuning(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    abs,
		Events:  make(chan string, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
	})
	return err
}

func (tw *TuningWatcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != tw.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now
			select {
			case tw.Events <- tw.path:
			default:
			}
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case tw.Errors <- err:
			default:
			}
		case <-tw.closeCh:
			return
		}
	}
}
