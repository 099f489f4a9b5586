// Package apps maintains the searchable index of installed applications.
// Desktop-entry parsing is the Loader collaborator's job; this package
// owns where to look, deduplication across roots, and query filtering.
package apps

import (
	"log"
	"sync"

	"quicklaunch/internal/domain"
	"quicklaunch/internal/eventbus"
	"quicklaunch/internal/fuzzy"
)

// CategoryIcon is the themed icon tagged onto application candidates
const CategoryIcon = "application-default-symbolic"

// Result is one loader outcome: an entry or the reason it was skipped
type Result struct {
	Info domain.AppInfo
	Err  error
}

// Loader is the desktop-entry collaborator. It yields one Result per entry
// found under path; a missing directory yields nothing.
type Loader interface {
	LoadDesktopEntries(path string) []Result
}

// LoaderFunc adapts a function to the Loader interface
type LoaderFunc func(path string) []Result

func (f LoaderFunc) LoadDesktopEntries(path string) []Result {
	return f(path)
}

// Entry pairs an application with the label of the root it came from
type Entry struct {
	Origin string
	Info   domain.AppInfo
}

// Index holds the pre-loaded application entries. It is rebuilt on demand
// (startup or a root directory change), never per keystroke.
type Index struct {
	bus      eventbus.EventBus
	loader   Loader
	roots    []Root
	iconSize int

	mu      sync.RWMutex
	entries []Entry
}

// NewIndex creates an application index over the given roots
func NewIndex(bus eventbus.EventBus, loader Loader, roots []Root, iconSize int) *Index {
	idx := &Index{
		bus:      bus,
		loader:   loader,
		roots:    roots,
		iconSize: iconSize,
	}

	// Rebuild requests arrive from the watcher and from the UI
	bus.Subscribe(eventbus.EventIndexRebuildRequested, func(e eventbus.DomainEvent) {
		idx.Rebuild()
	})

	return idx
}

// Rebuild rescans every root in order, deduplicating by executable command
// so the same application is not listed twice: the first root wins. Per-
// entry load failures are logged and skipped.
func (idx *Index) Rebuild() {
	var entries []Entry
	seen := make(map[string]bool)

	for _, root := range idx.roots {
		for _, result := range idx.loader.LoadDesktopEntries(root.Path) {
			if result.Err != nil {
				log.Printf("failed to load desktop app under %s: %v", root.Path, result.Err)
				continue
			}
			if seen[result.Info.Exec()] {
				continue
			}
			seen[result.Info.Exec()] = true
			entries = append(entries, Entry{Origin: root.Label, Info: result.Info})
		}
	}

	idx.mu.Lock()
	idx.entries = entries
	idx.mu.Unlock()

	idx.bus.Publish(eventbus.IndexRebuiltEvent{Count: len(entries)})
}

// Filter returns one candidate per entry whose name, desktop identifier,
// or generic name matches the pattern
func (idx *Index) Filter(pattern *fuzzy.Pattern) []*domain.Candidate {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var candidates []*domain.Candidate
	for _, entry := range idx.entries {
		info := entry.Info
		if !pattern.Matches(info.Name()) &&
			!pattern.Matches(info.DesktopName()) &&
			!(info.GenericName() != "" && pattern.Matches(info.GenericName())) {
			continue
		}

		description := entry.Origin
		if generic := info.GenericName(); generic != "" {
			description = generic + " - " + entry.Origin
		}

		candidates = append(candidates, &domain.Candidate{
			Title:        info.Name(),
			Description:  description,
			CategoryIcon: CategoryIcon,
			ContentIcon:  domain.Icon{Name: info.Icon()},
			IconSize:     idx.iconSize,
			Identity:     domain.AppIdentity{App: info},
		})
	}
	return candidates
}

// Len returns the number of indexed entries
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}
