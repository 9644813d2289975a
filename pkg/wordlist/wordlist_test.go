package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{
			name:  "header on first line",
			input: "lemme,freq\nmanger,100\nchien,90\n",
			want:  []string{"manger", "chien"},
		},
		{
			name:  "comment lines before header",
			input: "Lexique 3.83\nsource: lexique.org\nlemme,cgram\nmanger,VER\nchien,NOM\n",
			want:  []string{"manger", "chien"},
		},
		{
			name:  "word column preferred over lemme",
			input: "word,lemme\nmangeait,manger\nchiens,chien\n",
			want:  []string{"mangeait", "chiens"},
		},
		{
			name:  "empty word falls back to lemme",
			input: "word,lemme\n,manger\n",
			want:  []string{"manger"},
		},
		{
			name:  "rows with empty lemme dropped",
			input: "lemme,freq\nmanger,1\n,2\n  ,3\nchien,4\n",
			want:  []string{"manger", "chien"},
		},
		{
			name:  "duplicates kept in order",
			input: "lemme\nchien\nmanger\nchien\n",
			want:  []string{"chien", "manger", "chien"},
		},
		{
			name:  "byte order mark on header",
			input: "\ufefflemme\npomme de terre\n",
			want:  []string{"pomme de terre"},
		},
		{
			name:  "no marker uses second line as header",
			input: "title line\nfoo,bar\n1,2\n",
			want:  nil,
		},
		{
			name:    "single line without marker",
			input:   "just one line",
			wantErr: ErrNoHeader,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ReadCSV() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadCSV() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadCSV() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	got, err := ReadLines(strings.NewReader("# mots\nmanger\n\n  chien  \n#skip\nxyzzy123\n"))
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	want := []string{"manger", "chien", "xyzzy123"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		return p
	}

	t.Run("csv", func(t *testing.T) {
		words, err := Load(write("input_words.csv", "lemme\nmanger\n"))
		if err != nil || len(words) != 1 || words[0] != "manger" {
			t.Errorf("Load() = %v, %v", words, err)
		}
	})

	t.Run("txt", func(t *testing.T) {
		words, err := Load(write("words.TXT", "chien\nchat\n"))
		if err != nil || len(words) != 2 {
			t.Errorf("Load() = %v, %v", words, err)
		}
	})

	t.Run("no words", func(t *testing.T) {
		_, err := Load(write("empty.csv", "lemme\n"))
		if !errors.Is(err, ErrNoWords) {
			t.Errorf("Load() error = %v, want ErrNoWords", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "nope.csv")); err == nil {
			t.Error("Load() of a missing file should fail")
		}
	})
}
