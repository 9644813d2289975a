// Package legacycsv reads and writes the flat CSV files used before the
// SQLite store: scrape_tracker.csv, words_good.csv and words_missing.csv.
package legacycsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/lemma-crawler/models"
)

const (
	TrackerFile = "scrape_tracker.csv"
	GoodFile    = "words_good.csv"
	MissingFile = "words_missing.csv"
)

var (
	TrackerHeader = []string{"word", "pos", "status", "gender_or_group", "timestamp"}
	GoodHeader    = []string{"word", "pos", "gender_or_group"}
	MissingHeader = []string{"word", "pos"}
)

// ReadTracker reads a tracker CSV with a header row. Unknown statuses are
// rejected. A done row the crawler could not have produced (no attribute, or
// pos other/unknown) is demoted to missing.
func ReadTracker(r io.Reader) ([]models.TrackerEntry, error) {
	rows, err := readRows(r, TrackerHeader)
	if err != nil {
		return nil, err
	}

	entries := make([]models.TrackerEntry, 0, len(rows))
	for i, row := range rows {
		e := models.TrackerEntry{
			Word:         row["word"],
			PartOfSpeech: row["pos"],
			Status:       models.Status(row["status"]),
			Attribute:    row["gender_or_group"],
			Timestamp:    row["timestamp"],
		}
		if e.Word == "" {
			continue
		}
		switch e.Status {
		case models.StatusDone:
			if !(models.Classification{PartOfSpeech: e.PartOfSpeech, Attribute: e.Attribute}).Usable() {
				e.Status = models.StatusMissing
				e.Attribute = ""
			}
		case models.StatusMissing:
		default:
			return nil, fmt.Errorf("row %d: unknown status %q", i+2, e.Status)
		}
		if e.PartOfSpeech == "" {
			e.PartOfSpeech = models.PosUnknown
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ReadGood reads words_good.csv. The header row is optional.
func ReadGood(r io.Reader) ([]models.ClassifiedRecord, error) {
	recs, err := readPositional(r, GoodHeader)
	if err != nil {
		return nil, err
	}
	out := make([]models.ClassifiedRecord, 0, len(recs))
	for _, rec := range recs {
		if len(rec) < 3 || rec[2] == "" {
			continue
		}
		out = append(out, models.ClassifiedRecord{Word: rec[0], PartOfSpeech: rec[1], Attribute: rec[2]})
	}
	return out, nil
}

// ReadMissing reads words_missing.csv. The header row is optional.
func ReadMissing(r io.Reader) ([]models.UnclassifiedRecord, error) {
	recs, err := readPositional(r, MissingHeader)
	if err != nil {
		return nil, err
	}
	out := make([]models.UnclassifiedRecord, 0, len(recs))
	for _, rec := range recs {
		pos := models.PosUnknown
		if len(rec) > 1 && rec[1] != "" {
			pos = rec[1]
		}
		out = append(out, models.UnclassifiedRecord{Word: rec[0], PartOfSpeech: pos})
	}
	return out, nil
}

// WriteGood writes words_good.csv with a header row.
func WriteGood(w io.Writer, recs []models.ClassifiedRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(GoodHeader); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write([]string{r.Word, r.PartOfSpeech, r.Attribute}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMissing writes words_missing.csv with a header row.
func WriteMissing(w io.Writer, recs []models.UnclassifiedRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(MissingHeader); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write([]string{r.Word, r.PartOfSpeech}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func readRows(r io.Reader, want []string) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range want {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		row := make(map[string]string, len(want))
		for _, col := range want {
			if i := index[col]; i < len(rec) {
				row[col] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// readPositional returns trimmed records, dropping empty rows and a leading
// row equal to header.
func readPositional(r io.Reader, header []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var out [][]string
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if first {
			first = false
			if len(rec) > 0 && rec[0] == header[0] {
				continue
			}
		}
		if len(rec) == 0 || rec[0] == "" {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
