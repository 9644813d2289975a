package db

import (
	"context"
	"fmt"

	"github.com/dtnitsch/lemma-crawler/models"
)

// LoadTracker returns every tracker row keyed by word. An empty database yields an empty map.
func (db *DB) LoadTracker(ctx context.Context) (map[string]models.TrackerEntry, error) {
	rows, err := db.QueryContext(ctx, `SELECT word, pos, status, gender_or_group, timestamp FROM tracker`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracker: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]models.TrackerEntry)
	for rows.Next() {
		var e models.TrackerEntry
		var status string
		if err := rows.Scan(&e.Word, &e.PartOfSpeech, &status, &e.Attribute, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan tracker row: %w", err)
		}
		e.Status = models.Status(status)
		entries[e.Word] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tracker: %w", err)
	}
	return entries, nil
}

// SaveTrackerEntry upserts a single row, fully replacing any previous one for the word.
func (db *DB) SaveTrackerEntry(ctx context.Context, e models.TrackerEntry) error {
	return saveTrackerEntry(ctx, db, e)
}

func saveTrackerEntry(ctx context.Context, ex execer, e models.TrackerEntry) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO tracker (word, pos, status, gender_or_group, timestamp)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(word) DO UPDATE SET
			pos = excluded.pos,
			status = excluded.status,
			gender_or_group = excluded.gender_or_group,
			timestamp = excluded.timestamp
	`, e.Word, e.PartOfSpeech, string(e.Status), e.Attribute, e.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to save tracker entry %q: %w", e.Word, err)
	}
	return nil
}

// TrackerCounts returns the number of tracker rows per status.
func (db *DB) TrackerCounts(ctx context.Context) (map[models.Status]int, error) {
	rows, err := db.QueryContext(ctx, `SELECT status, COUNT(*) FROM tracker GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count tracker: %w", err)
	}
	defer rows.Close()

	counts := map[models.Status]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan tracker count: %w", err)
		}
		counts[models.Status(status)] = n
	}
	return counts, rows.Err()
}

// RecentTrackerEntries returns the latest attempts, newest first.
func (db *DB) RecentTrackerEntries(ctx context.Context, limit int) ([]models.TrackerEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.QueryContext(ctx, `
		SELECT word, pos, status, gender_or_group, timestamp
		FROM tracker
		ORDER BY timestamp DESC, word
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent tracker entries: %w", err)
	}
	defer rows.Close()

	var entries []models.TrackerEntry
	for rows.Next() {
		var e models.TrackerEntry
		var status string
		if err := rows.Scan(&e.Word, &e.PartOfSpeech, &status, &e.Attribute, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan tracker row: %w", err)
		}
		e.Status = models.Status(status)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
