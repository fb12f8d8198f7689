package store

import (
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind describes the type of payload change detected.
type ChangeKind int

const (
	ChangeModified ChangeKind = iota // payload written or replaced
	ChangeRemoved                    // payload file deleted
)

func (k ChangeKind) String() string {
	if k == ChangeRemoved {
		return "removed"
	}
	return "modified"
}

// KeyChange is a detected change to one key of a FileStore.
type KeyChange struct {
	Kind ChangeKind
	Key  string
	File string
}

// Watcher monitors a FileStore directory for payload changes made by this
// process or any other writer.
type Watcher struct {
	Changes <-chan KeyChange // Read-only external channel

	store   *FileStore
	changes chan KeyChange
	stop    chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
	started bool
	once    sync.Once
}

// Watch returns a watcher for s. Call Start to begin receiving changes and
// Stop to release it, whether or not Start succeeded.
func (s *FileStore) Watch() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan KeyChange, 16)
	return &Watcher{
		Changes: ch,
		store:   s,
		changes: ch,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching the store directory.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.store.Dir()); err != nil {
		return err
	}
	w.started = true
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel. It is safe to call more
// than once and on a watcher that was never started.
func (w *Watcher) Stop() {
	w.once.Do(func() {
		close(w.stop)
		w.watcher.Close()
		if w.started {
			<-w.done // Wait for loop to exit
		}
		close(w.changes)
	})
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: a rename-based write produces several events per key.
	const debounce = 100 * time.Millisecond
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if _, isKey := w.store.KeyFor(event.Name); !isKey {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					delete(pending, file)
					if !w.emitChange(file) {
						return
					}
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

// emitChange reports false when the watcher is stopping.
func (w *Watcher) emitChange(file string) bool {
	key, _ := w.store.KeyFor(file)
	change := KeyChange{Kind: ChangeModified, Key: key, File: file}
	if _, err := os.Stat(file); os.IsNotExist(err) {
		change.Kind = ChangeRemoved
	}
	select {
	case w.changes <- change:
		return true
	case <-w.stop:
		return false
	}
}
