package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/donut/engine/core"
)

/**
 * @brief The outcome of reloading one file. File is nil when the file
 * could not be parsed; Err carries parse and decode failures.
 */
type Reload struct {
	Path string
	File *File
	Err  error
}

/**
 * @brief Watches directories for P3D files being created or written
 * and reloads them. Results are delivered on Reloads so the owner of the
 * resource manager can apply them on its own goroutine. A file whose
 * contents did not change since its last reload is not delivered again.
 */
type Watcher struct {
	loader *AssetLoader

	mutex sync.Mutex
	// Last delivered checksum per cleaned path.
	checksums map[string]uint64
	fsnotify  *fsnotify.Watcher
	isClosed  bool
	reloads   chan Reload
	done      chan struct{}
	wg        sync.WaitGroup
}

func NewWatcher(loader *AssetLoader) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		loader:    loader,
		checksums: make(map[string]uint64),
		fsnotify:  fsWatch,
		reloads:   make(chan Reload),
		done:      make(chan struct{}),
	}

	w.wg.Add(1)
	go w.start()

	return w, nil
}

func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Seen records the checksum of a file the owner already loaded, so an
// unchanged write to it is not delivered.
func (w *Watcher) Seen(path string, checksum uint64) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.checksums[filepath.Clean(path)] = checksum
}

// changed records checksum for path and reports whether it differs from
// the last one seen.
func (w *Watcher) changed(path string, checksum uint64) bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	key := filepath.Clean(path)
	if sum, ok := w.checksums[key]; ok && sum == checksum {
		return false
	}
	w.checksums[key] = checksum
	return true
}

// Watch starts watching the named directory and all sub-directories.
func (w *Watcher) Watch(dir string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.isClosed {
		return errors.New("watcher already closed")
	}
	return w.watchRecursive(dir)
}

// Close stops watching. The Reloads channel is closed once the watcher
// goroutine has exited.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return nil
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	w.wg.Wait()
	return w.fsnotify.Close()
}

func (w *Watcher) start() {
	defer w.wg.Done()
	defer close(w.reloads)

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			w.handleEvent(e)

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("%s", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handleEvent(e fsnotify.Event) {
	if e.Op&fsnotify.Create != 0 {
		if s, err := os.Stat(e.Name); err == nil && s.IsDir() {
			w.mutex.Lock()
			if err := w.watchRecursive(e.Name); err != nil {
				core.LogWarn("could not watch %s: %s", e.Name, err)
			}
			w.mutex.Unlock()
			return
		}
	}

	// Can't stat a deleted directory, so always try to drop it from the
	// watch list.
	if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		_ = w.fsnotify.Remove(e.Name)
		return
	}

	if e.Op&(fsnotify.Create|fsnotify.Write) == 0 || !IsP3DFile(e.Name) {
		return
	}

	f, err := w.loader.LoadFile(e.Name)
	if f != nil && !w.changed(e.Name, f.Checksum) {
		core.LogDebug("%s unchanged, not reloading", e.Name)
		return
	}
	core.LogInfo("reloading %s", e.Name)
	select {
	case w.reloads <- Reload{Path: e.Name, File: f, Err: err}:
	case <-w.done:
	}
}

// watchRecursive adds all directories under the given one to the watch list.
func (w *Watcher) watchRecursive(dir string) error {
	return filepath.Walk(dir, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return w.fsnotify.Add(walkPath)
		}
		return nil
	})
}

func IsP3DFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".p3d")
}
