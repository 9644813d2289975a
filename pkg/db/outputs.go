package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtnitsch/lemma-crawler/models"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// AppendClassified inserts a words_good row. A word already present is left
// untouched and inserted is false.
func (db *DB) AppendClassified(ctx context.Context, r models.ClassifiedRecord) (bool, error) {
	return appendClassified(ctx, db, r)
}

// AppendUnclassified inserts a words_missing row unless the word is already there.
func (db *DB) AppendUnclassified(ctx context.Context, r models.UnclassifiedRecord) (bool, error) {
	return appendUnclassified(ctx, db, r)
}

func appendClassified(ctx context.Context, ex execer, r models.ClassifiedRecord) (bool, error) {
	res, err := ex.ExecContext(ctx, `
		INSERT OR IGNORE INTO words_good (word, pos, gender_or_group)
		VALUES (?, ?, ?)
	`, r.Word, r.PartOfSpeech, r.Attribute)
	if err != nil {
		return false, fmt.Errorf("failed to append classified word %q: %w", r.Word, err)
	}
	return rowsInserted(res)
}

func appendUnclassified(ctx context.Context, ex execer, r models.UnclassifiedRecord) (bool, error) {
	res, err := ex.ExecContext(ctx, `
		INSERT OR IGNORE INTO words_missing (word, pos)
		VALUES (?, ?)
	`, r.Word, r.PartOfSpeech)
	if err != nil {
		return false, fmt.Errorf("failed to append missing word %q: %w", r.Word, err)
	}
	return rowsInserted(res)
}

func rowsInserted(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}

// UnclassifiedWords returns the set of words already in words_missing.
func (db *DB) UnclassifiedWords(ctx context.Context) (map[string]struct{}, error) {
	rows, err := db.QueryContext(ctx, `SELECT word FROM words_missing`)
	if err != nil {
		return nil, fmt.Errorf("failed to query missing words: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("failed to scan missing word: %w", err)
		}
		seen[w] = struct{}{}
	}
	return seen, rows.Err()
}

// ListClassified returns words_good rows in insertion order. limit <= 0 means all.
func (db *DB) ListClassified(ctx context.Context, limit int) ([]models.ClassifiedRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.QueryContext(ctx, `SELECT word, pos, gender_or_group FROM words_good ORDER BY id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query classified words: %w", err)
	}
	defer rows.Close()

	var out []models.ClassifiedRecord
	for rows.Next() {
		var r models.ClassifiedRecord
		if err := rows.Scan(&r.Word, &r.PartOfSpeech, &r.Attribute); err != nil {
			return nil, fmt.Errorf("failed to scan classified word: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListUnclassified returns words_missing rows in insertion order. limit <= 0 means all.
func (db *DB) ListUnclassified(ctx context.Context, limit int) ([]models.UnclassifiedRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.QueryContext(ctx, `SELECT word, pos FROM words_missing ORDER BY id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query missing words: %w", err)
	}
	defer rows.Close()

	var out []models.UnclassifiedRecord
	for rows.Next() {
		var r models.UnclassifiedRecord
		if err := rows.Scan(&r.Word, &r.PartOfSpeech); err != nil {
			return nil, fmt.Errorf("failed to scan missing word: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RandomClassified picks one words_good row at random.
func (db *DB) RandomClassified(ctx context.Context) (*models.ClassifiedRecord, error) {
	var r models.ClassifiedRecord
	err := db.QueryRowContext(ctx, `
		SELECT word, pos, gender_or_group FROM words_good ORDER BY RANDOM() LIMIT 1
	`).Scan(&r.Word, &r.PartOfSpeech, &r.Attribute)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pick random word: %w", err)
	}
	return &r, nil
}

// AttributeCount is the number of classified words sharing a part of speech and attribute.
type AttributeCount struct {
	PartOfSpeech string `json:"pos" yaml:"pos"`
	Attribute    string `json:"gender_or_group" yaml:"gender_or_group"`
	Count        int    `json:"count" yaml:"count"`
}

// ClassifiedStats groups words_good by part of speech and attribute.
func (db *DB) ClassifiedStats(ctx context.Context) ([]AttributeCount, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT pos, gender_or_group, COUNT(*)
		FROM words_good
		GROUP BY pos, gender_or_group
		ORDER BY pos, gender_or_group
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query classified stats: %w", err)
	}
	defer rows.Close()

	var out []AttributeCount
	for rows.Next() {
		var c AttributeCount
		if err := rows.Scan(&c.PartOfSpeech, &c.Attribute, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan classified stats: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CountOutputs returns the sizes of words_good and words_missing.
func (db *DB) CountOutputs(ctx context.Context) (good, missing int, err error) {
	err = db.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM words_good), (SELECT COUNT(*) FROM words_missing)
	`).Scan(&good, &missing)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count outputs: %w", err)
	}
	return good, missing, nil
}
