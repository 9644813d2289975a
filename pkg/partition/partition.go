// Package partition appends crawl outcomes to the classified and unclassified sets.
package partition

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dtnitsch/lemma-crawler/models"
)

// Store is the durable side of the partitioner. *db.DB implements it.
type Store interface {
	AppendClassified(ctx context.Context, r models.ClassifiedRecord) (bool, error)
	AppendUnclassified(ctx context.Context, r models.UnclassifiedRecord) (bool, error)
	UnclassifiedWords(ctx context.Context) (map[string]struct{}, error)
}

// Partitioner owns the set of words already recorded as unclassified.
type Partitioner struct {
	store  Store
	seen   map[string]struct{}
	logger *slog.Logger
}

// New seeds the seen set from the durable unclassified set.
func New(ctx context.Context, store Store, logger *slog.Logger) (*Partitioner, error) {
	seen, err := store.UnclassifiedWords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load unclassified words: %w", err)
	}
	if seen == nil {
		seen = make(map[string]struct{})
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Partitioner{store: store, seen: seen, logger: logger}, nil
}

// RecordClassified appends word to the classified set. The store ignores a
// word that is already present.
func (p *Partitioner) RecordClassified(ctx context.Context, word, pos, attribute string) error {
	inserted, err := p.store.AppendClassified(ctx, models.ClassifiedRecord{
		Word:         word,
		PartOfSpeech: pos,
		Attribute:    attribute,
	})
	if err != nil {
		return err
	}
	if !inserted {
		p.logger.Warn("Classified word already recorded", "word", word)
	}
	return nil
}

// RecordMissingOnce appends word to the unclassified set unless it was seen
// before, then marks it seen. It reports whether a row was appended.
func (p *Partitioner) RecordMissingOnce(ctx context.Context, word, posGuess string) (bool, error) {
	if _, ok := p.seen[word]; ok {
		return false, nil
	}
	inserted, err := p.store.AppendUnclassified(ctx, models.UnclassifiedRecord{
		Word:         word,
		PartOfSpeech: posGuess,
	})
	if err != nil {
		return false, err
	}
	p.seen[word] = struct{}{}
	return inserted, nil
}
