// Package crawl drives the resumable, sequential classification crawl.
//
// Each word goes PENDING -> FETCHING -> CLASSIFYING -> SUCCEEDED or FAILED and
// is fully persisted before the next one starts. Words the tracker already
// marks done are skipped without a request. A run stops when the input is
// exhausted or when the consecutive-failure streak reaches the pause threshold.
package crawl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dtnitsch/lemma-crawler/models"
	"github.com/dtnitsch/lemma-crawler/pkg/partition"
	"github.com/dtnitsch/lemma-crawler/pkg/tracker"
)

// TimestampLayout is the tracker timestamp format.
const TimestampLayout = "2006-01-02T15:04:05"

// State is the per-word processing state.
type State string

const (
	StatePending     State = "pending"
	StateFetching    State = "fetching"
	StateClassifying State = "classifying"
	StateSucceeded   State = "succeeded"
	StateFailed      State = "failed"
	StateSkipped     State = "skipped"
)

// Fetcher returns page content for a word, or an error meaning "no content".
type Fetcher interface {
	Fetch(ctx context.Context, word string) ([]byte, error)
}

// Classifier turns page content into a verdict. It must not fail.
type Classifier interface {
	Classify(content []byte, word string) models.Classification
}

// Pacer blocks for the pause that follows a processed word.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Outcome is the result of one word's processing step.
type Outcome struct {
	Word           string
	State          State
	Classification models.Classification
	FetchErr       error
	Streak         int
}

// Summary reports how a run ended.
type Summary struct {
	Processed int    `json:"processed" yaml:"processed"`
	Skipped   int    `json:"skipped" yaml:"skipped"`
	Succeeded int    `json:"succeeded" yaml:"succeeded"`
	Failed    int    `json:"failed" yaml:"failed"`
	Paused    bool   `json:"paused" yaml:"paused"`
	Streak    int    `json:"streak" yaml:"streak"`
	LastWord  string `json:"last_word,omitempty" yaml:"last_word,omitempty"`
}

// Status is "paused" or "completed".
func (s Summary) Status() string {
	if s.Paused {
		return "paused"
	}
	return "completed"
}

// Controller is the per-run context: it owns the collaborators and the failure streak.
type Controller struct {
	fetcher     Fetcher
	classifier  Classifier
	tracker     *tracker.Tracker
	partitioner *partition.Partitioner
	pacer       Pacer
	threshold   int
	logger      *slog.Logger
	now         func() time.Time
	observer    func(Outcome)
	streak      int
}

type Option func(*Controller)

// WithPauseThreshold sets how many consecutive failures halt the run.
// A non-positive n keeps the default.
func WithPauseThreshold(n int) Option {
	return func(c *Controller) {
		c.threshold = n
	}
}

func WithPacer(p Pacer) Option {
	return func(c *Controller) {
		c.pacer = p
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithObserver registers a callback invoked after every word, skipped ones included.
func WithObserver(fn func(Outcome)) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

func New(f Fetcher, cl Classifier, t *tracker.Tracker, p *partition.Partitioner, opts ...Option) *Controller {
	c := &Controller{
		fetcher:     f,
		classifier:  cl,
		tracker:     t,
		partitioner: p,
		pacer:       NewPacer(models.DefaultDelay),
		threshold:   models.DefaultPauseThreshold,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.threshold <= 0 {
		c.threshold = models.DefaultPauseThreshold
	}
	return c
}

// Run processes words in order. Per-word failures never surface as errors;
// only storage failures and context cancellation do. Durable state is
// consistent for resumption whenever Run returns.
func (c *Controller) Run(ctx context.Context, words []string) (Summary, error) {
	var sum Summary
	counts := c.tracker.Counts()
	c.logger.Info("Starting crawl", "words", len(words), "tracked", c.tracker.Len(), "done", counts[models.StatusDone], "missing", counts[models.StatusMissing], "pause_threshold", c.threshold)

	for i, raw := range words {
		word := strings.TrimSpace(raw)
		if word == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		if c.tracker.IsDone(word) {
			sum.Skipped++
			c.logger.Debug("Skipping done word", "word", word)
			c.notify(Outcome{Word: word, State: StateSkipped, Streak: c.streak})
			continue
		}

		out, err := c.processWord(ctx, word)
		if err != nil {
			return sum, err
		}
		sum.Processed++
		sum.LastWord = word
		if out.State == StateSucceeded {
			sum.Succeeded++
		} else {
			sum.Failed++
		}
		sum.Streak = c.streak
		c.notify(out)

		if c.streak >= c.threshold {
			sum.Paused = true
			c.logger.Warn("Auto-pause triggered", "streak", c.streak, "last_word", word)
			c.logger.Warn("Check network or site structure before resuming")
			return sum, nil
		}

		if i < len(words)-1 {
			if err := c.pacer.Wait(ctx); err != nil {
				return sum, err
			}
		}
	}

	c.logger.Info("Crawl finished", "processed", sum.Processed, "skipped", sum.Skipped, "succeeded", sum.Succeeded, "failed", sum.Failed)
	return sum, nil
}

func (c *Controller) processWord(ctx context.Context, word string) (Outcome, error) {
	out := Outcome{Word: word, State: StatePending}

	out.State = StateFetching
	content, fetchErr := c.fetcher.Fetch(ctx, word)
	if fetchErr != nil {
		if err := ctx.Err(); err != nil {
			// Interrupted, not a failure of the word.
			return out, err
		}
		c.logger.Warn("Request failed", "word", word, "error", fetchErr)
		out.FetchErr = fetchErr
		out.Classification = models.Classification{PartOfSpeech: models.PosUnknown}
	} else {
		out.State = StateClassifying
		out.Classification = c.classifier.Classify(content, word)
	}

	timestamp := c.now().Format(TimestampLayout)
	if out.FetchErr == nil && out.Classification.Usable() {
		out.State = StateSucceeded
		if err := c.succeed(ctx, word, out.Classification, timestamp); err != nil {
			return out, err
		}
	} else {
		out.State = StateFailed
		if err := c.fail(ctx, word, out.Classification.PartOfSpeech, timestamp); err != nil {
			return out, err
		}
	}
	out.Streak = c.streak

	if err := c.tracker.Persist(ctx); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Controller) succeed(ctx context.Context, word string, cl models.Classification, timestamp string) error {
	c.tracker.RecordAttempt(models.TrackerEntry{
		Word:         word,
		PartOfSpeech: cl.PartOfSpeech,
		Status:       models.StatusDone,
		Attribute:    cl.Attribute,
		Timestamp:    timestamp,
	})
	if err := c.partitioner.RecordClassified(ctx, word, cl.PartOfSpeech, cl.Attribute); err != nil {
		return fmt.Errorf("failed to record classified word: %w", err)
	}
	c.streak = 0
	c.logger.Info("[OK]", "word", word, "pos", cl.PartOfSpeech, "attribute", cl.Attribute)
	return nil
}

func (c *Controller) fail(ctx context.Context, word, posGuess, timestamp string) error {
	if posGuess == "" {
		posGuess = models.PosUnknown
	}
	c.tracker.RecordAttempt(models.TrackerEntry{
		Word:         word,
		PartOfSpeech: posGuess,
		Status:       models.StatusMissing,
		Attribute:    "",
		Timestamp:    timestamp,
	})
	appended, err := c.partitioner.RecordMissingOnce(ctx, word, posGuess)
	if err != nil {
		return fmt.Errorf("failed to record missing word: %w", err)
	}
	c.streak++
	c.logger.Warn("[MISSING]", "word", word, "pos", posGuess, "streak", c.streak, "new_row", appended)
	return nil
}

func (c *Controller) notify(o Outcome) {
	if c.observer != nil {
		c.observer(o)
	}
}
