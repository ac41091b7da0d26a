package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/WowVeryLogin/flycam/src/camcontroller"
	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reloads a config file when it changes and publishes the camera
// settings and keybinds. A file that fails to load is reported on Errors and
// nothing is published.
type Watcher struct {
	Updates chan camcontroller.Overrides
	Errors  chan error

	path    string
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Watch watches the directory holding path, so editors that replace the
// file on save are picked up too.
func Watch(path string) (*Watcher, error) {
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
		Updates: make(chan camcontroller.Overrides, 4),
		Errors:  make(chan error, 1),
		path:    abs,
		watcher: w,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Updates)
		close(w.Errors)
	})
	return err
}

// Overrides converts cfg into controller overrides.
func Overrides(cfg *Config) (camcontroller.Overrides, error) {
	binds, err := cfg.Bindings()
	if err != nil {
		return camcontroller.Overrides{}, err
	}
	settings := cfg.Settings()
	return camcontroller.Overrides{Settings: &settings, Keybinds: &binds}, nil
}

func (w *Watcher) run() {
	defer close(w.done)

	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(debounce)
		case <-pending:
			pending = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.report(err)
		return
	}
	o, err := Overrides(cfg)
	if err != nil {
		w.report(err)
		return
	}
	select {
	case w.Updates <- o:
	case <-w.closeCh:
	}
}

// report drops the error if the previous one has not been read yet.
func (w *Watcher) report(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
