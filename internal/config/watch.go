package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long a file must stay quiet before it is reloaded.
const debounce = 100 * time.Millisecond

// Update is a reloaded config, or the error that prevented loading it.
type Update struct {
	Path   string
	Config WorldConfig
	Err    error
}

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan Update
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// NewWatcher starts watching path. The parent directory is watched rather
// than the file, so atomic save-by-rename still triggers a reload.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Updates: make(chan Update, 4),
		closeCh: make(chan struct{}),
	}
	watcher.wg.Add(1)
	go watcher.run()
	return watcher, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and closes Updates.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.Updates)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
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
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// Reload once the burst of events settles.
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			cfg, err := LoadFile(w.path)
			w.send(Update{Path: w.path, Config: cfg, Err: err})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(Update{Path: w.path, Err: err})
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) send(u Update) {
	select {
	case w.Updates <- u:
	case <-w.closeCh:
	}
}
