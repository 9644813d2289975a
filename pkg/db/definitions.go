package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Definition is a cached dictionary excerpt attached to a word.
type Definition struct {
	Word      string `json:"word" yaml:"word"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	Excerpt   string `json:"excerpt" yaml:"excerpt"`
	Language  string `json:"language,omitempty" yaml:"language,omitempty"`
	SourceURL string `json:"source_url,omitempty" yaml:"source_url,omitempty"`
}

// GetDefinition returns the cached definition for word, or ErrNotFound.
func (db *DB) GetDefinition(ctx context.Context, word string) (*Definition, error) {
	d := Definition{Word: word}
	var title, language, sourceURL sql.NullString
	err := db.QueryRowContext(ctx, `
		SELECT title, excerpt, language, source_url FROM definitions WHERE word = ?
	`, word).Scan(&title, &d.Excerpt, &language, &sourceURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get definition: %w", err)
	}
	d.Title = title.String
	d.Language = language.String
	d.SourceURL = sourceURL.String
	return &d, nil
}

// SaveDefinition inserts or replaces the cached definition for d.Word.
func (db *DB) SaveDefinition(ctx context.Context, d Definition) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO definitions (word, title, excerpt, language, source_url, fetched_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(word) DO UPDATE SET
			title = excluded.title,
			excerpt = excluded.excerpt,
			language = excluded.language,
			source_url = excluded.source_url,
			fetched_at = excluded.fetched_at
	`, d.Word, NewNullString(d.Title), d.Excerpt, NewNullString(d.Language), NewNullString(d.SourceURL))
	if err != nil {
		return fmt.Errorf("failed to save definition: %w", err)
	}
	return nil
}

// NewNullString maps "" to NULL.
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
