package crawl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dtnitsch/lemma-crawler/internal/common"
	"github.com/dtnitsch/lemma-crawler/pkg/caching"
	"github.com/dtnitsch/lemma-crawler/pkg/classifier"
	crawlpkg "github.com/dtnitsch/lemma-crawler/pkg/crawl"
	"github.com/dtnitsch/lemma-crawler/pkg/db"
	"github.com/dtnitsch/lemma-crawler/pkg/fetcher"
	"github.com/dtnitsch/lemma-crawler/pkg/partition"
	"github.com/dtnitsch/lemma-crawler/pkg/tracker"
	"github.com/dtnitsch/lemma-crawler/pkg/wordlist"
	"github.com/urfave/cli/v2"
)

// Report is printed when a crawl ends.
type Report struct {
	Status      string  `json:"status" yaml:"status"`
	Input       string  `json:"input" yaml:"input"`
	InputWords  int     `json:"input_words" yaml:"input_words"`
	Processed   int     `json:"processed" yaml:"processed"`
	Skipped     int     `json:"skipped" yaml:"skipped"`
	Succeeded   int     `json:"succeeded" yaml:"succeeded"`
	Failed      int     `json:"failed" yaml:"failed"`
	Streak      int     `json:"streak" yaml:"streak"`
	LastWord    string  `json:"last_word,omitempty" yaml:"last_word,omitempty"`
	Database    string  `json:"database" yaml:"database"`
	ElapsedSecs float64 `json:"elapsed_seconds" yaml:"elapsed_seconds"`
}

func CrawlAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	startTime := time.Now()

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Input is validated before any durable state is touched.
	input := c.String("input")
	words, err := wordlist.Load(input)
	if err != nil {
		return err
	}
	logger.Info("Loaded input", "path", input, "words", len(words))

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	tr, err := tracker.Load(ctx, database)
	if err != nil {
		return err
	}
	part, err := partition.New(ctx, database, logger)
	if err != nil {
		return err
	}

	opts := []fetcher.Option{
		fetcher.WithTimeout(cfg.Timeout),
		fetcher.WithUserAgent(cfg.UserAgent),
		fetcher.WithMaxBodySize(cfg.MaxBodySize),
		fetcher.WithLogger(logger),
	}
	if cfg.CacheTTL > 0 {
		cache, err := caching.NewCache(cfg.CacheDir, cfg.CacheTTL)
		if err != nil {
			return fmt.Errorf("failed to initialize page cache: %w", err)
		}
		opts = append(opts, fetcher.WithCache(cache))
	}

	ctrl := crawlpkg.New(
		fetcher.NewFetcher(cfg.BaseURL, opts...),
		classifier.New(logger),
		tr,
		part,
		crawlpkg.WithPauseThreshold(cfg.PauseThreshold),
		crawlpkg.WithPacer(crawlpkg.NewPacer(cfg.Delay)),
		crawlpkg.WithLogger(logger),
	)

	sum, runErr := ctrl.Run(ctx, words)
	status := sum.Status()
	if errors.Is(runErr, context.Canceled) {
		logger.Warn("Crawl interrupted, progress saved", "processed", sum.Processed)
		status = "interrupted"
		runErr = nil
	}
	if runErr != nil {
		return fmt.Errorf("crawl aborted: %w", runErr)
	}

	report := Report{
		Status:      status,
		Input:       input,
		InputWords:  len(words),
		Processed:   sum.Processed,
		Skipped:     sum.Skipped,
		Succeeded:   sum.Succeeded,
		Failed:      sum.Failed,
		Streak:      sum.Streak,
		LastWord:    sum.LastWord,
		Database:    database.Path(),
		ElapsedSecs: time.Since(startTime).Seconds(),
	}
	if sum.Paused {
		fmt.Fprintf(os.Stderr, "Paused after %d consecutive failures. Check network or site structure, then rerun to resume.\n", sum.Streak)
	}
	return common.WriteOutput(os.Stdout, c.String("format"), report)
}
