package legacycsv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dtnitsch/lemma-crawler/models"
	"github.com/google/go-cmp/cmp"
)

func TestReadTracker(t *testing.T) {
	input := `word,pos,status,gender_or_group,timestamp
manger,verb,done,1st group,2024-01-01T10:00:00
xyzzy123,unknown,missing,,2024-01-01T10:00:02
vite,other,done,,2024-01-01T10:00:03
,verb,done,1st group,2024-01-01T10:00:04
bientôt,other,done,adverb,2024-01-01T10:00:05
truc,unknown,done,masculine,2024-01-01T10:00:06
`
	got, err := ReadTracker(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTracker() error = %v", err)
	}
	want := []models.TrackerEntry{
		{Word: "manger", PartOfSpeech: "verb", Status: models.StatusDone, Attribute: "1st group", Timestamp: "2024-01-01T10:00:00"},
		{Word: "xyzzy123", PartOfSpeech: "unknown", Status: models.StatusMissing, Timestamp: "2024-01-01T10:00:02"},
		{Word: "vite", PartOfSpeech: "other", Status: models.StatusMissing, Timestamp: "2024-01-01T10:00:03"},
		{Word: "bientôt", PartOfSpeech: "other", Status: models.StatusMissing, Timestamp: "2024-01-01T10:00:05"},
		{Word: "truc", PartOfSpeech: "unknown", Status: models.StatusMissing, Timestamp: "2024-01-01T10:00:06"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadTracker() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTrackerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unknown status", input: "word,pos,status,gender_or_group,timestamp\nchien,noun,pending,,t\n"},
		{name: "missing column", input: "word,pos\nchien,noun\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadTracker(strings.NewReader(tt.input)); err == nil {
				t.Error("ReadTracker() should fail")
			}
		})
	}
}

func TestReadGoodAndMissing(t *testing.T) {
	good, err := ReadGood(strings.NewReader("word,pos,gender_or_group\nchien,noun,masculine\nmanger,verb,1st group\nbroken,noun\n"))
	if err != nil {
		t.Fatalf("ReadGood() error = %v", err)
	}
	wantGood := []models.ClassifiedRecord{
		{Word: "chien", PartOfSpeech: "noun", Attribute: "masculine"},
		{Word: "manger", PartOfSpeech: "verb", Attribute: "1st group"},
	}
	if diff := cmp.Diff(wantGood, good); diff != "" {
		t.Errorf("ReadGood() mismatch (-want +got):\n%s", diff)
	}

	// Headerless, as appended by the oldest runs.
	missing, err := ReadMissing(strings.NewReader("xyzzy123,unknown\nvite,other\nseul\n"))
	if err != nil {
		t.Fatalf("ReadMissing() error = %v", err)
	}
	wantMissing := []models.UnclassifiedRecord{
		{Word: "xyzzy123", PartOfSpeech: "unknown"},
		{Word: "vite", PartOfSpeech: "other"},
		{Word: "seul", PartOfSpeech: "unknown"},
	}
	if diff := cmp.Diff(wantMissing, missing); diff != "" {
		t.Errorf("ReadMissing() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteThenReadGood(t *testing.T) {
	recs := []models.ClassifiedRecord{
		{Word: "pomme de terre", PartOfSpeech: "noun", Attribute: "feminine"},
		{Word: "prendre", PartOfSpeech: "verb", Attribute: "3rd group"},
	}
	var buf bytes.Buffer
	if err := WriteGood(&buf, recs); err != nil {
		t.Fatalf("WriteGood() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "word,pos,gender_or_group\n") {
		t.Errorf("missing header: %q", buf.String())
	}

	got, err := ReadGood(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(recs, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteMissing(t *testing.T) {
	var buf bytes.Buffer
	err := WriteMissing(&buf, []models.UnclassifiedRecord{{Word: "xyzzy123", PartOfSpeech: "unknown"}})
	if err != nil {
		t.Fatalf("WriteMissing() error = %v", err)
	}
	if want := "word,pos\nxyzzy123,unknown\n"; buf.String() != want {
		t.Errorf("WriteMissing() = %q, want %q", buf.String(), want)
	}
}
