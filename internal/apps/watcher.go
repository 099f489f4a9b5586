package apps

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"quicklaunch/internal/eventbus"
)

// debounceDelay coalesces bursts of filesystem events (package managers
// touch many entries at once) into a single rebuild request
const debounceDelay = 500 * time.Millisecond

// Watcher requests an index rebuild when a search root changes
type Watcher struct {
	bus   eventbus.EventBus
	roots []Root
}

// NewWatcher creates a watcher over the given roots
func NewWatcher(bus eventbus.EventBus, roots []Root) *Watcher {
	return &Watcher{bus: bus, roots: roots}
}

// Start watches every existing root directory until ctx is cancelled.
// Watch failures are logged and non-fatal: the index still rebuilds on
// launcher startup.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	watched := 0
	for _, root := range w.roots {
		if _, err := os.Stat(root.Path); err != nil {
			continue
		}
		if err := watcher.Add(root.Path); err != nil {
			log.Printf("failed to watch %s: %v", root.Path, err)
			continue
		}
		watched++
	}
	log.Printf("watching %d application roots", watched)

	go func() {
		defer watcher.Close()

		var debounce *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, func() {
					w.bus.Publish(eventbus.IndexRebuildRequestedEvent{})
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("application root watch error: %v", err)

			case <-ctx.Done():
				if debounce != nil {
					debounce.Stop()
				}
				return
			}
		}
	}()

	return nil
}
