package db

import (
	"context"
	"fmt"

	"github.com/dtnitsch/lemma-crawler/models"
)

// ImportCounts reports what ImportLegacy wrote.
type ImportCounts struct {
	TrackerRows       int
	ClassifiedAdded   int
	UnclassifiedAdded int
}

// ImportLegacy loads the three legacy sets in a single transaction: either
// every row lands or none do. Words already present in the output sets are left alone.
func (db *DB) ImportLegacy(ctx context.Context, good []models.ClassifiedRecord, missing []models.UnclassifiedRecord, entries []models.TrackerEntry) (ImportCounts, error) {
	var counts ImportCounts

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return counts, fmt.Errorf("failed to begin import tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	for _, r := range good {
		added, err := appendClassified(ctx, tx, r)
		if err != nil {
			return ImportCounts{}, err
		}
		if added {
			counts.ClassifiedAdded++
		}
	}
	for _, r := range missing {
		added, err := appendUnclassified(ctx, tx, r)
		if err != nil {
			return ImportCounts{}, err
		}
		if added {
			counts.UnclassifiedAdded++
		}
	}
	for _, e := range entries {
		if err := saveTrackerEntry(ctx, tx, e); err != nil {
			return ImportCounts{}, err
		}
		counts.TrackerRows++
	}

	if err := tx.Commit(); err != nil {
		return ImportCounts{}, fmt.Errorf("failed to commit import: %w", err)
	}
	return counts, nil
}
