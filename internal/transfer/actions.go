package transfer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dtnitsch/lemma-crawler/internal/common"
	"github.com/dtnitsch/lemma-crawler/models"
	"github.com/dtnitsch/lemma-crawler/pkg/legacycsv"
	"github.com/dtnitsch/lemma-crawler/pkg/storage"
	"github.com/urfave/cli/v2"
)

// ImportReport counts rows taken from the legacy CSV files.
type ImportReport struct {
	TrackerRows       int `json:"tracker_rows" yaml:"tracker_rows"`
	ClassifiedAdded   int `json:"classified_added" yaml:"classified_added"`
	UnclassifiedAdded int `json:"unclassified_added" yaml:"unclassified_added"`
}

// ImportAction loads scrape_tracker.csv, words_good.csv and words_missing.csv
// from --dir into the database. Missing files are skipped. All three files are
// parsed before anything is written, and the write is one transaction.
// Rerunning it adds nothing.
func ImportAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	dir := c.String("dir")

	var (
		entries []models.TrackerEntry
		good    []models.ClassifiedRecord
		missing []models.UnclassifiedRecord
	)
	err := readFile(filepath.Join(dir, legacycsv.TrackerFile), func(r io.Reader) (err error) {
		entries, err = legacycsv.ReadTracker(r)
		return err
	})
	if err != nil {
		return err
	}
	err = readFile(filepath.Join(dir, legacycsv.GoodFile), func(r io.Reader) (err error) {
		good, err = legacycsv.ReadGood(r)
		return err
	})
	if err != nil {
		return err
	}
	err = readFile(filepath.Join(dir, legacycsv.MissingFile), func(r io.Reader) (err error) {
		missing, err = legacycsv.ReadMissing(r)
		return err
	})
	if err != nil {
		return err
	}

	database, _, err := common.OpenDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	counts, err := database.ImportLegacy(c.Context, good, missing, entries)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", dir, err)
	}
	report := ImportReport{
		TrackerRows:       counts.TrackerRows,
		ClassifiedAdded:   counts.ClassifiedAdded,
		UnclassifiedAdded: counts.UnclassifiedAdded,
	}

	logger.Info("Import complete", "dir", dir, "tracker_rows", report.TrackerRows)
	return common.WriteOutput(os.Stdout, c.String("format"), report)
}

// ExportAction writes words_good.csv and words_missing.csv into --dir.
func ExportAction(c *cli.Context) error {
	dir := c.String("dir")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	database, _, err := common.OpenDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	good, err := database.ListClassified(c.Context, 0)
	if err != nil {
		return err
	}
	missing, err := database.ListUnclassified(c.Context, 0)
	if err != nil {
		return err
	}

	goodPath := filepath.Join(dir, legacycsv.GoodFile)
	if err := storage.WriteWith(goodPath, 0o644, func(w io.Writer) error { return legacycsv.WriteGood(w, good) }); err != nil {
		return fmt.Errorf("failed to write %s: %w", goodPath, err)
	}
	missingPath := filepath.Join(dir, legacycsv.MissingFile)
	if err := storage.WriteWith(missingPath, 0o644, func(w io.Writer) error { return legacycsv.WriteMissing(w, missing) }); err != nil {
		return fmt.Errorf("failed to write %s: %w", missingPath, err)
	}

	fmt.Printf("Wrote %d classified words to %s\n", len(good), goodPath)
	fmt.Printf("Wrote %d unclassified words to %s\n", len(missing), missingPath)
	return nil
}

func readFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path) //nolint:gosec // user-provided import directory
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}
	return nil
}
