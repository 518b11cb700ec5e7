package events

import (
	"sort"
	"sync"

	"github.com/cryptofundit/cryptofundit-go/internal/client/models"
)

// Feed is the merged, deduplicated event set for one campaign, held newest
// first. An event's identity is its (transaction hash, log index) pair, so
// a log seen by both backfill and the live subscription lands exactly once.
type Feed struct {
	mu     sync.RWMutex
	events []*models.Event
	seen   map[models.EventKey]struct{}
}

func NewFeed() *Feed {
	return &Feed{seen: make(map[models.EventKey]struct{})}
}

// Insert adds the event in canonical position and reports whether it was
// new. Duplicates are dropped regardless of which path delivered them first.
func (f *Feed) Insert(ev *models.Event) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := ev.Key()
	if _, dup := f.seen[key]; dup {
		return false
	}
	f.seen[key] = struct{}{}

	// newest first; most inserts during live operation hit index 0
	i := sort.Search(len(f.events), func(i int) bool {
		return !f.events[i].After(ev)
	})
	f.events = append(f.events, nil)
	copy(f.events[i+1:], f.events[i:])
	f.events[i] = ev
	return true
}

// Events returns a snapshot of the feed, newest first.
func (f *Feed) Events() []*models.Event {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]*models.Event, len(f.events))
	copy(out, f.events)
	return out
}

// Len returns the number of distinct events seen.
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.events)
}
