// Package definition looks up and caches a short dictionary excerpt for a word.
package definition

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/lemma-crawler/pkg/db"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
)

// MaxExcerptRunes bounds an excerpt taken from the article body.
const MaxExcerptRunes = 300

// ErrNoContent is returned when a page yields no readable text.
var ErrNoContent = errors.New("page has no readable content")

// PageFetcher fetches the dictionary page of a word.
type PageFetcher interface {
	Fetch(ctx context.Context, word string) ([]byte, error)
	URLFor(word string) string
}

// Store caches definitions by word. *db.DB implements it.
type Store interface {
	GetDefinition(ctx context.Context, word string) (*db.Definition, error)
	SaveDefinition(ctx context.Context, d db.Definition) error
}

type Definer struct {
	fetcher  PageFetcher
	store    Store
	detector lingua.LanguageDetector
	logger   *slog.Logger
}

func New(f PageFetcher, store Store, logger *slog.Logger) *Definer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Definer{
		fetcher: f,
		store:   store,
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.French, lingua.English).
			Build(),
		logger: logger,
	}
}

// Define returns the cached definition of word, fetching and caching it when
// absent or when refresh is set. cached reports whether no fetch happened.
func (d *Definer) Define(ctx context.Context, word string, refresh bool) (def *db.Definition, cached bool, err error) {
	if !refresh {
		def, err := d.store.GetDefinition(ctx, word)
		if err == nil {
			return def, true, nil
		}
		if !errors.Is(err, db.ErrNotFound) {
			return nil, false, err
		}
	}

	body, err := d.fetcher.Fetch(ctx, word)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch %q: %w", word, err)
	}

	pageURL := d.fetcher.URLFor(word)
	title, excerpt, err := Extract(pageURL, body)
	if err != nil {
		return nil, false, err
	}

	def = &db.Definition{
		Word:      word,
		Title:     title,
		Excerpt:   excerpt,
		Language:  d.languageOf(excerpt),
		SourceURL: pageURL,
	}
	if err := d.store.SaveDefinition(ctx, *def); err != nil {
		return nil, false, err
	}
	d.logger.Info("Cached definition", "word", word, "language", def.Language)
	return def, false, nil
}

// Extract returns the article title and a short excerpt of a dictionary page.
func Extract(pageURL string, body []byte) (title, excerpt string, err error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid page url: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(body), parsedURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract article: %w", err)
	}

	excerpt = strings.Join(strings.Fields(article.Excerpt), " ")
	if excerpt == "" && article.Content != "" {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
		if err != nil {
			return "", "", fmt.Errorf("failed to read article content: %w", err)
		}
		excerpt = truncate(strings.Join(strings.Fields(doc.Text()), " "), MaxExcerptRunes)
	}
	if excerpt == "" {
		return "", "", ErrNoContent
	}
	return strings.TrimSpace(article.Title), excerpt, nil
}

func (d *Definer) languageOf(text string) string {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n])) + "…"
}
