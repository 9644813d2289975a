// Package tracker keeps per-word crawl progress and makes it durable.
package tracker

import (
	"context"
	"fmt"

	"github.com/dtnitsch/lemma-crawler/models"
)

// Store is the durable side of the tracker. *db.DB implements it.
type Store interface {
	LoadTracker(ctx context.Context) (map[string]models.TrackerEntry, error)
	SaveTrackerEntry(ctx context.Context, e models.TrackerEntry) error
}

// Tracker holds the in-memory word -> entry mapping for one run.
// Entries recorded since the last Persist are written on the next Persist.
type Tracker struct {
	store   Store
	entries map[string]models.TrackerEntry
	dirty   map[string]struct{}
}

// Load reconstructs the mapping from store. A first run yields an empty tracker.
func Load(ctx context.Context, store Store) (*Tracker, error) {
	entries, err := store.LoadTracker(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracker: %w", err)
	}
	if entries == nil {
		entries = make(map[string]models.TrackerEntry)
	}
	return &Tracker{
		store:   store,
		entries: entries,
		dirty:   make(map[string]struct{}),
	}, nil
}

// IsDone is the skip rule: only done words are skipped, missing ones are retried.
func (t *Tracker) IsDone(word string) bool {
	e, ok := t.entries[word]
	return ok && e.Status == models.StatusDone
}

// RecordAttempt replaces the entry for e.Word.
func (t *Tracker) RecordAttempt(e models.TrackerEntry) {
	t.entries[e.Word] = e
	t.dirty[e.Word] = struct{}{}
}

// Persist writes every entry recorded since the previous Persist. Since the
// store was loaded from the same table, the durable table then equals the
// in-memory mapping.
func (t *Tracker) Persist(ctx context.Context) error {
	for word := range t.dirty {
		if err := t.store.SaveTrackerEntry(ctx, t.entries[word]); err != nil {
			return fmt.Errorf("failed to persist tracker: %w", err)
		}
		delete(t.dirty, word)
	}
	return nil
}

// Len returns the number of tracked words.
func (t *Tracker) Len() int {
	return len(t.entries)
}

// Counts returns the number of entries per status.
func (t *Tracker) Counts() map[models.Status]int {
	counts := make(map[models.Status]int)
	for _, e := range t.entries {
		counts[e.Status]++
	}
	return counts
}
