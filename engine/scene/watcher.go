package scene

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/kinema/engine/core"
)

// Watcher reloads a scene file whenever it is written or recreated and hands
// the result to a callback.
type Watcher struct {
	path     string
	onChange func(*Graph, error)

	fsnotify *fsnotify.Watcher
	metrics  *core.Metrics

	mutex    sync.Mutex
	isClosed bool
}

// NewWatcher prepares a watcher for path. onChange receives either the
// freshly loaded graph or the load error.
func NewWatcher(path string, onChange func(*Graph, error)) (*Watcher, error) {
	if _, err := LoaderFor(path); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// the directory is watched since editors often replace the file on save
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	return &Watcher{
		path:     abs,
		onChange: onChange,
		fsnotify: fsWatch,
		metrics:  core.NewMetrics(),
	}, nil
}

// Metrics exposes the reload timings.
func (w *Watcher) Metrics() *core.Metrics {
	return w.metrics
}

// Run loads the scene once and then reloads it on every change until ctx is
// cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return errors.New("scene watcher already closed")
	}
	w.mutex.Unlock()
	defer w.close()

	w.reload()

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return nil
			}
			core.LogError("watching %s: %s", w.path, err)

		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) reload() {
	clock := core.NewClock()
	clock.Start()
	g, err := LoadFile(w.path)
	clock.Stop()

	w.metrics.Record(clock.Elapsed())
	if err != nil {
		core.LogWarn("reload %s failed: %s", w.path, err)
	} else {
		core.LogDebug("reloaded %s in %s (avg %s)", w.path, clock.Elapsed(), w.metrics.Average())
	}
	w.onChange(g, err)
}

func (w *Watcher) close() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.isClosed {
		w.isClosed = true
		w.fsnotify.Close()
	}
}
