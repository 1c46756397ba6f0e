package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/anima-math/engine/core"
)

type AssetType int

const (
	AssetTypeNone AssetType = iota
	AssetTypeScene
)

type AssetInfo struct {
	Path        string
	Type        AssetType
	LastChanged time.Time
}

/**
 * @brief Watches individual files for changes. Directories containing the
 * files are watched so that editors replacing a file on save are still seen.
 */
type Watcher struct {
	assets map[string]AssetInfo
	mutex  sync.RWMutex

	done      chan struct{}
	closeOnce sync.Once
	fsnotify  *fsnotify.Watcher
	isClosed  bool
	changes   chan AssetInfo
	errors    chan error
}

func NewWatcher() (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		assets:   make(map[string]AssetInfo),
		fsnotify: fsWatch,
		// one pending change is enough, later ones coalesce into it
		changes: make(chan AssetInfo, 1),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.start()
	return w, nil
}

// Add starts watching the named file.
func (w *Watcher) Add(path string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.isClosed {
		return core.ErrWatcherClosed
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	if err := w.fsnotify.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	w.assets[abs] = AssetInfo{
		Path:        abs,
		Type:        determineAssetType(abs),
		LastChanged: time.Now(),
	}
	core.LogDebug("watching %s", abs)
	return nil
}

// Assets lists the watched files.
func (w *Watcher) Assets() []AssetInfo {
	w.mutex.RLock()
	defer w.mutex.RUnlock()

	out := make([]AssetInfo, 0, len(w.assets))
	for _, a := range w.assets {
		out = append(out, a)
	}
	return out
}

func (w *Watcher) Changes() <-chan AssetInfo {
	return w.changes
}

func (w *Watcher) Errors() <-chan error {
	return w.errors
}

/**
 * @brief Blocks until a watched file changes and then stays quiet for the
 * given duration, so a burst of writes from one save is reported once.
 *
 * @return The last change seen, ctx.Err() on cancellation or
 * ErrWatcherClosed once the watcher is closed.
 */
func (w *Watcher) Next(ctx context.Context, quiet time.Duration) (AssetInfo, error) {
	var last AssetInfo
	select {
	case <-ctx.Done():
		return last, ctx.Err()
	case <-w.done:
		return last, core.ErrWatcherClosed
	case last = <-w.changes:
	}

	timer := time.NewTimer(quiet)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-w.done:
			return last, core.ErrWatcherClosed
		case last = <-w.changes:
			timer.Reset(quiet)
		case <-timer.C:
			return last, nil
		}
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.mutex.Lock()
		w.isClosed = true
		w.mutex.Unlock()
		close(w.done)
		err = w.fsnotify.Close()
	})
	return err
}

func (w *Watcher) start() {
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			// Handle create or modify events, a rename onto the file shows up as a create
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				if info, ok := w.handleFileEvent(e.Name); ok {
					w.publish(info)
				}
			}

		case e, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(e.Error())
			select {
			case w.errors <- e:
			default:
			}

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) publish(info AssetInfo) {
	select {
	case w.changes <- info:
	default:
		// a change is already pending
	}
}

// Handle the creation or modification of a file
func (w *Watcher) handleFileEvent(path string) (AssetInfo, bool) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	info, ok := w.assets[filepath.Clean(path)]
	if !ok {
		return AssetInfo{}, false
	}
	info.LastChanged = time.Now()
	w.assets[info.Path] = info
	core.LogDebug("%s changed", info.Path)
	return info, true
}

func determineAssetType(path string) AssetType {
	switch filepath.Ext(path) {
	case ".toml":
		return AssetTypeScene
	default:
		return AssetTypeNone
	}
}
