// Package recency tracks the most recently activated applications so the
// launcher can rank them ahead of plain fuzzy matches.
package recency

import (
	"log"

	"quicklaunch/internal/config"
)

const (
	// storeKey is the state file holding the ordered identity list
	storeKey = "mru_apps.json"
	// maxEntries bounds the list; the oldest entry is evicted first
	maxEntries = 15
)

// Store is a bounded, persisted list of application identities,
// most-recent-last. The in-memory list is authoritative for the session;
// persistence failures are logged and otherwise ignored.
type Store struct {
	store   *config.Store
	entries []string
}

// NewStore creates a recency store and loads any persisted entries.
// A read failure leaves the list empty; it is never fatal.
func NewStore(store *config.Store) *Store {
	s := &Store{store: store}
	s.reload()
	return s
}

// Add records identity as the most recent entry, deduplicating any earlier
// occurrence, trimming the oldest entries past the cap, and persisting
// synchronously.
func (s *Store) Add(identity string) {
	for i, entry := range s.entries {
		if entry == identity {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}

	s.entries = append(s.entries, identity)

	if over := len(s.entries) - maxEntries; over > 0 {
		s.entries = s.entries[over:]
	}

	s.syncToDisk()
}

// Score returns the recency rank for identity: 0 for the least recent
// entry up to len-1 for the most recent, or false if absent.
func (s *Store) Score(identity string) (int, bool) {
	for i, entry := range s.entries {
		if entry == identity {
			return i, true
		}
	}
	return 0, false
}

// Len returns the number of tracked identities
func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) reload() {
	entries, err := config.ReadType[[]string](s.store, storeKey)
	if err != nil {
		log.Printf("error loading mru list: %v", err)
		return
	}
	s.entries = entries
}

func (s *Store) syncToDisk() {
	if err := config.WriteType(s.store, storeKey, s.entries); err != nil {
		log.Printf("error writing mru list: %v", err)
	}
}
