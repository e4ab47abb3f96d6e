package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceDelay is the quiet period after the last input change
// before a re-render fires, so rapid successive writes coalesce into
// one cycle.
const DebounceDelay = 200 * time.Millisecond

// WatchFile emits on the returned channel whenever path changes,
// debounced by delay. A newly observed change resets the pending
// timer (last-write-wins; only one timer is ever live). The channel
// closes when ctx is done or the watcher fails.
func WatchFile(ctx context.Context, path string, delay time.Duration) (<-chan struct{}, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("store: resolve %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("store: watch target: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	// Editors replace files on save, so watch the directory and
	// filter for our target.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", filepath.Dir(abs), err)
	}

	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		var pending *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if pending == nil {
					pending = time.NewTimer(delay)
					fire = pending.C
				} else {
					if !pending.Stop() {
						select {
						case <-pending.C:
						default:
						}
					}
					pending.Reset(delay)
				}

			case <-fire:
				pending = nil
				fire = nil
				select {
				case changes <- struct{}{}:
				default:
					// A change is already queued; coalesce.
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watch error: %v\n", err)
			}
		}
	}()

	return changes, nil
}
