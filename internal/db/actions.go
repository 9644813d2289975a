package db

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dtnitsch/lemma-crawler/internal/common"
	"github.com/dtnitsch/lemma-crawler/models"
	"github.com/dtnitsch/lemma-crawler/pkg/cards"
	dbpkg "github.com/dtnitsch/lemma-crawler/pkg/db"
	"github.com/urfave/cli/v2"
)

// StatusAction prints crawl progress: tracker counts, output sizes and the latest attempts.
func StatusAction(c *cli.Context) error {
	database, _, err := common.OpenDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := c.Context
	counts, err := database.TrackerCounts(ctx)
	if err != nil {
		return err
	}
	good, missing, err := database.CountOutputs(ctx)
	if err != nil {
		return err
	}
	recent, err := database.RecentTrackerEntries(ctx, c.Int("limit"))
	if err != nil {
		return err
	}

	if c.String("format") != "table" {
		return common.WriteOutput(os.Stdout, c.String("format"), map[string]any{
			"database":     database.Path(),
			"done":         counts[models.StatusDone],
			"missing":      counts[models.StatusMissing],
			"classified":   good,
			"unclassified": missing,
			"recent":       recent,
		})
	}

	fmt.Printf("Database: %s\n\n", database.Path())
	fmt.Printf("Tracker:  %d done, %d missing\n", counts[models.StatusDone], counts[models.StatusMissing])
	fmt.Printf("Outputs:  %d classified, %d unclassified\n", good, missing)

	if len(recent) == 0 {
		fmt.Println("\nNo words crawled yet")
		return nil
	}

	fmt.Printf("\n%-20s %-25s %-8s %-8s %-15s\n", "Timestamp", "Word", "Status", "POS", "Gender/Group")
	fmt.Println(strings.Repeat("-", 80))
	for _, e := range recent {
		fmt.Printf("%-20s %-25s %-8s %-8s %-15s\n", e.Timestamp, e.Word, e.Status, e.PartOfSpeech, e.Attribute)
	}
	return nil
}

// StatsAction prints classified counts grouped by part of speech and attribute.
func StatsAction(c *cli.Context) error {
	database, _, err := common.OpenDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	stats, err := database.ClassifiedStats(c.Context)
	if err != nil {
		return err
	}
	_, missing, err := database.CountOutputs(c.Context)
	if err != nil {
		return err
	}

	byPos := make(map[string]int)
	total := 0
	for _, s := range stats {
		byPos[s.PartOfSpeech] += s.Count
		total += s.Count
	}

	if c.String("format") != "table" {
		return common.WriteOutput(os.Stdout, c.String("format"), map[string]any{
			"total_classified":   total,
			"total_unclassified": missing,
			"by_pos":             byPos,
			"by_attribute":       stats,
		})
	}

	if total == 0 {
		fmt.Println("No classified words yet")
		return nil
	}
	fmt.Printf("%-10s %-15s %-8s\n", "POS", "Gender/Group", "Count")
	fmt.Println(strings.Repeat("-", 36))
	for _, s := range stats {
		fmt.Printf("%-10s %-15s %-8d\n", s.PartOfSpeech, s.Attribute, s.Count)
	}
	fmt.Printf("\nTotal: %d classified, %d unclassified\n", total, missing)
	return nil
}

// ListAction prints rows of the classified ("good") or unclassified ("missing") set.
func ListAction(c *cli.Context) error {
	set, err := parseSet(c.String("set"))
	if err != nil {
		return err
	}

	database, _, err := common.OpenDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	limit := c.Int("limit")
	format := c.String("format")

	if set == setGood {
		recs, err := database.ListClassified(c.Context, limit)
		if err != nil {
			return err
		}
		if format != "table" {
			return common.WriteOutput(os.Stdout, format, recs)
		}
		fmt.Printf("%-25s %-8s %-15s\n", "Word", "POS", "Gender/Group")
		fmt.Println(strings.Repeat("-", 50))
		for _, r := range recs {
			fmt.Printf("%-25s %-8s %-15s\n", r.Word, r.PartOfSpeech, r.Attribute)
		}
		fmt.Printf("\nTotal: %d words\n", len(recs))
		return nil
	}

	recs, err := database.ListUnclassified(c.Context, limit)
	if err != nil {
		return err
	}
	if format != "table" {
		return common.WriteOutput(os.Stdout, format, recs)
	}
	fmt.Printf("%-25s %-8s\n", "Word", "POS")
	fmt.Println(strings.Repeat("-", 34))
	for _, r := range recs {
		fmt.Printf("%-25s %-8s\n", r.Word, r.PartOfSpeech)
	}
	fmt.Printf("\nTotal: %d words\n", len(recs))
	return nil
}

// CardAction prints one random classified word as a flashcard.
func CardAction(c *cli.Context) error {
	database, _, err := common.OpenDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	rec, err := database.RandomClassified(c.Context)
	if errors.Is(err, dbpkg.ErrNotFound) {
		return fmt.Errorf("no classified words yet. Run 'lemma-crawler crawl' first")
	}
	if err != nil {
		return err
	}
	good, _, err := database.CountOutputs(c.Context)
	if err != nil {
		return err
	}

	return common.WriteOutput(os.Stdout, c.String("format"), cards.New(*rec, good))
}

// InitAction creates the schema in a fresh database.
func InitAction(c *cli.Context) error {
	database, _, err := common.OpenDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.InitSchema(); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	fmt.Printf("Database initialized at: %s\n", database.Path())
	return nil
}
