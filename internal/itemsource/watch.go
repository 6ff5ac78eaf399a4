package itemsource

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"kanacombo/internal/candidate"
	"kanacombo/internal/logger"
)

// DefaultDebounce is how long a file must stay quiet before it is reloaded.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads an item file whenever it changes on disk.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	table     string
	debounce  time.Duration

	reloaded chan []candidate.Item
	errors   chan error
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// Watch starts watching path. Reloaded item lists arrive on Items.
func Watch(path, table string, debounce time.Duration) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve item path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Editors replace files on save, so watch the directory and filter.
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	w := &Watcher{
		fsWatcher: fsw,
		path:      absPath,
		table:     table,
		debounce:  debounce,
		reloaded:  make(chan []candidate.Item, 1),
		errors:    make(chan error, 1),
		done:      make(chan struct{}),
	}
	w.wg.Add(1)
	go w.eventLoop()
	return w, nil
}

// Items delivers each successfully reloaded item list.
func (w *Watcher) Items() <-chan []candidate.Item {
	return w.reloaded
}

// Errors delivers load and watch errors. Errors are dropped when nobody reads.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Stop shuts the watcher down and closes both channels.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		w.wg.Wait()
		close(w.reloaded)
		close(w.errors)
		err = w.fsWatcher.Close()
	})
	return err
}

func (w *Watcher) eventLoop() {
	defer w.wg.Done()

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			w.reload()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *Watcher) reload() {
	items, err := Load(w.path, w.table)
	if err != nil {
		logger.Error("reload %s: %v", w.path, err)
		w.report(err)
		return
	}
	logger.Info("reloaded %d items from %s", len(items), w.path)

	// Only the newest list matters; replace an unread one.
	select {
	case <-w.reloaded:
	default:
	}
	select {
	case w.reloaded <- items:
	case <-w.done:
	}
}

func (w *Watcher) report(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
