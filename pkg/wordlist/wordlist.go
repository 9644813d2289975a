// Package wordlist loads the ordered input words for a crawl.
package wordlist

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// HeaderMarker identifies the header row of an input CSV.
const HeaderMarker = "lemme"

var (
	ErrNoWords  = errors.New("input contains no words")
	ErrNoHeader = errors.New("input CSV does not have enough lines")
)

// Load reads words from path. Files ending in .txt hold one word per line;
// anything else is read as CSV.
func Load(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided input path
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		words, err = ReadLines(f)
	} else {
		words, err = ReadCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	return words, nil
}

// ReadCSV reads a CSV that may start with free-form comment lines. The header
// is the first line mentioning "lemme", or the second line when none does.
// Words come from the "word" column when present, else "lemme"; rows with an
// empty lemme are dropped.
func ReadCSV(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines := strings.SplitAfter(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	headerIdx := -1
	for i, line := range lines {
		if strings.Contains(line, HeaderMarker) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		if len(lines) <= 1 {
			return nil, ErrNoHeader
		}
		headerIdx = 1
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines[headerIdx:], "")))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	lemmeCol, wordCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case HeaderMarker:
			lemmeCol = i
		case "word":
			wordCol = i
		}
	}

	var words []string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if field(rec, lemmeCol) == "" {
			continue
		}
		word := field(rec, wordCol)
		if word == "" {
			word = field(rec, lemmeCol)
		}
		words = append(words, word)
	}
	return words, nil
}

// ReadLines reads one word per line, ignoring blank lines and # comments.
func ReadLines(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
