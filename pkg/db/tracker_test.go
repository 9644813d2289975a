package db

import (
	"context"
	"testing"

	"github.com/dtnitsch/lemma-crawler/models"
	"github.com/google/go-cmp/cmp"
)

func TestLoadTrackerEmpty(t *testing.T) {
	db := setupTestDB(t)

	entries, err := db.LoadTracker(context.Background())
	if err != nil {
		t.Fatalf("LoadTracker() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("LoadTracker() = %d entries, want 0", len(entries))
	}
}

func TestSaveTrackerEntryUpserts(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	steps := []models.TrackerEntry{
		{Word: "manger", PartOfSpeech: "unknown", Status: models.StatusMissing, Timestamp: "2024-01-01T10:00:00"},
		{Word: "manger", PartOfSpeech: "verb", Status: models.StatusDone, Attribute: "1st group", Timestamp: "2024-01-02T10:00:00"},
	}
	for _, e := range steps {
		if err := db.SaveTrackerEntry(ctx, e); err != nil {
			t.Fatalf("SaveTrackerEntry(%+v) error = %v", e, err)
		}
	}

	entries, err := db.LoadTracker(ctx)
	if err != nil {
		t.Fatalf("LoadTracker() error = %v", err)
	}
	want := map[string]models.TrackerEntry{"manger": steps[1]}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("LoadTracker() mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveTrackerEntryRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)

	err := db.SaveTrackerEntry(context.Background(), models.TrackerEntry{
		Word: "chien", PartOfSpeech: "noun", Status: "pending", Timestamp: "2024-01-01T10:00:00",
	})
	if err == nil {
		t.Error("SaveTrackerEntry() with invalid status should fail")
	}
}

func TestTrackerCountsAndRecent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	entries := []models.TrackerEntry{
		{Word: "a", PartOfSpeech: "verb", Status: models.StatusDone, Attribute: "1st group", Timestamp: "2024-01-01T10:00:01"},
		{Word: "b", PartOfSpeech: "noun", Status: models.StatusDone, Attribute: "feminine", Timestamp: "2024-01-01T10:00:02"},
		{Word: "c", PartOfSpeech: "unknown", Status: models.StatusMissing, Timestamp: "2024-01-01T10:00:03"},
	}
	for _, e := range entries {
		if err := db.SaveTrackerEntry(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	counts, err := db.TrackerCounts(ctx)
	if err != nil {
		t.Fatalf("TrackerCounts() error = %v", err)
	}
	if counts[models.StatusDone] != 2 || counts[models.StatusMissing] != 1 {
		t.Errorf("TrackerCounts() = %v, want 2 done and 1 missing", counts)
	}

	recent, err := db.RecentTrackerEntries(ctx, 2)
	if err != nil {
		t.Fatalf("RecentTrackerEntries() error = %v", err)
	}
	if len(recent) != 2 || recent[0].Word != "c" || recent[1].Word != "b" {
		t.Errorf("RecentTrackerEntries() = %+v, want c then b", recent)
	}
}
