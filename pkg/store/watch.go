package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a change notification.
type EventType int

const (
	// EventManifestChanged indicates the manifest document changed on
	// disk.
	EventManifestChanged EventType = iota

	// EventWorklogChanged indicates the work-log document changed on
	// disk.
	EventWorklogChanged
)

// Event is emitted by Watch when a project document changes. The
// notification is advisory: the application never arbitrates concurrent
// external edits, it only lets read-only views refresh.
type Event struct {
	Type EventType
	Path string
}

// Watch streams change events for the project documents until ctx is
// cancelled. Callers should drain the returned channel; events are
// dropped rather than blocking the watcher when the consumer lags.
func Watch(ctx context.Context, paths ProjectPaths) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	dirs := []string{paths.Root}
	if err := os.MkdirAll(paths.StateDir(), 0o755); err == nil {
		dirs = append(dirs, paths.StateDir())
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events when the consumer is not ready; the next
				// change will trigger a fresh notification and the UI
				// refreshes from disk anyway.
			}
		}

		// Coalesce editor write bursts: most tools write a document as
		// several filesystem operations in quick succession.
		var pending map[EventType]string
		var timer *time.Timer
		var mu sync.Mutex
		flush := func() {
			mu.Lock()
			batch := pending
			pending = nil
			timer = nil
			mu.Unlock()
			for typ, path := range batch {
				send(Event{Type: typ, Path: path})
			}
		}
		enqueue := func(typ EventType, path string) {
			mu.Lock()
			if pending == nil {
				pending = make(map[EventType]string)
			}
			pending[typ] = path
			if timer == nil {
				timer = time.AfterFunc(100*time.Millisecond, flush)
			}
			mu.Unlock()
		}

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				switch filepath.Base(evt.Name) {
				case manifestFileName:
					enqueue(EventManifestChanged, evt.Name)
				case worklogFileName:
					enqueue(EventWorklogChanged, evt.Name)
				}
			}
		}
	}()

	return events, nil
}
