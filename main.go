package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dtnitsch/lemma-crawler/internal/crawl"
	"github.com/dtnitsch/lemma-crawler/internal/db"
	"github.com/dtnitsch/lemma-crawler/internal/define"
	"github.com/dtnitsch/lemma-crawler/internal/transfer"
	"github.com/dtnitsch/lemma-crawler/models"
	"github.com/dtnitsch/lemma-crawler/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	formatFlag := func(def string) *cli.StringFlag {
		usage := "Output format: yaml, json"
		if def == "table" {
			usage += ", table"
		}
		return &cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   def,
			Usage:   usage,
		}
	}

	app := &cli.App{
		Name:  models.AppName,
		Usage: "Resumable Wiktionary crawler classifying French lemmas by part of speech, gender and verb group",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file (default: " + models.DefaultConfigPath() + ")",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "Path to SQLite database (default: " + models.DefaultDBPath() + ")",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log debug details",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "crawl",
				Usage:  "Classify every word of the input list, resuming where the last run stopped",
				Action: crawl.CrawlAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Value:   "input_words.csv",
						Usage:   "Input word list (.csv with a 'lemme' header, or .txt one word per line)",
					},
					&cli.StringFlag{
						Name:  "base-url",
						Usage: "Dictionary base URL (default: " + models.DefaultBaseURL + ")",
					},
					&cli.DurationFlag{
						Name:  "delay",
						Usage: "Minimum time between requests (default: 1.5s)",
					},
					&cli.IntFlag{
						Name:  "pause-threshold",
						Usage: "Consecutive failures that pause the run (default: 10)",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "Per-request timeout (default: 10s)",
					},
					&cli.StringFlag{
						Name:  "user-agent",
						Usage: "User-Agent header sent with each request",
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Usage: "Page cache directory (default: " + models.DefaultCacheDir() + ")",
					},
					&cli.DurationFlag{
						Name:  "cache-ttl",
						Usage: "Reuse cached pages younger than this; 0 disables the cache",
					},
					formatFlag("yaml"),
				},
			},
			{
				Name:   "status",
				Usage:  "Show crawl progress and the most recent attempts",
				Action: db.StatusAction,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: 10, Usage: "Number of recent entries"},
					formatFlag("table"),
				},
			},
			{
				Name:   "stats",
				Usage:  "Count classified words per part of speech and gender/group",
				Action: db.StatsAction,
				Flags:  []cli.Flag{formatFlag("table")},
			},
			{
				Name:   "list",
				Usage:  "List classified (good) or unclassified (missing) words",
				Action: db.ListAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "set", Aliases: []string{"s"}, Value: "good", Usage: "good or missing"},
					&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: 0, Usage: "Maximum rows (0 = all)"},
					formatFlag("table"),
				},
			},
			{
				Name:   "card",
				Usage:  "Show a random classified word as a flashcard",
				Action: db.CardAction,
				Flags:  []cli.Flag{formatFlag("yaml")},
			},
			{
				Name:      "define",
				Usage:     "Fetch, cache and print a short definition of a word",
				ArgsUsage: "<word>",
				Action:    define.DefineAction,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "refresh", Usage: "Ignore the cached definition"},
					&cli.StringFlag{Name: "base-url", Usage: "Dictionary base URL"},
					&cli.DurationFlag{Name: "timeout", Usage: "Request timeout"},
					formatFlag("yaml"),
				},
			},
			{
				Name:   "import",
				Usage:  "Import scrape_tracker.csv, words_good.csv and words_missing.csv from a previous CSV-based run",
				Action: transfer.ImportAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Value: ".", Usage: "Directory holding the CSV files"},
					formatFlag("yaml"),
				},
			},
			{
				Name:   "export",
				Usage:  "Write the classified and unclassified sets to CSV",
				Action: transfer.ExportAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Value: ".", Usage: "Output directory"},
				},
			},
			{
				Name:   "init",
				Usage:  "Initialize the database schema",
				Action: db.InitAction,
			},
			{
				Name:   "quickstart",
				Usage:  "Print a quick-start cheat sheet",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
