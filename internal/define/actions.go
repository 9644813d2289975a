package define

import (
	"fmt"
	"os"
	"strings"

	"github.com/dtnitsch/lemma-crawler/internal/common"
	"github.com/dtnitsch/lemma-crawler/pkg/db"
	"github.com/dtnitsch/lemma-crawler/pkg/definition"
	"github.com/dtnitsch/lemma-crawler/pkg/fetcher"
	"github.com/urfave/cli/v2"
)

// Output is the printed shape of a definition lookup.
type Output struct {
	Word      string `json:"word" yaml:"word"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	Excerpt   string `json:"excerpt" yaml:"excerpt"`
	Language  string `json:"language,omitempty" yaml:"language,omitempty"`
	SourceURL string `json:"source_url" yaml:"source_url"`
	Cached    bool   `json:"cached" yaml:"cached"`
}

func DefineAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	if c.NArg() == 0 {
		return fmt.Errorf("missing word. Usage: lemma-crawler define <word>")
	}
	word := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	f := fetcher.NewFetcher(cfg.BaseURL,
		fetcher.WithTimeout(cfg.Timeout),
		fetcher.WithUserAgent(cfg.UserAgent),
		fetcher.WithMaxBodySize(cfg.MaxBodySize),
		fetcher.WithLogger(logger),
	)

	def, cached, err := definition.New(f, database, logger).Define(c.Context, word, c.Bool("refresh"))
	if err != nil {
		return err
	}

	return common.WriteOutput(os.Stdout, c.String("format"), Output{
		Word:      def.Word,
		Title:     def.Title,
		Excerpt:   def.Excerpt,
		Language:  def.Language,
		SourceURL: def.SourceURL,
		Cached:    cached,
	})
}
