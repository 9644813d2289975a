package help

const ColdstartYAML = `# lemma-crawler Quick Start

what_it_does: "Classifies French lemmas as verbs (with conjugation group) or nouns (with gender) from Wiktionary"

commands:
  crawl: |
    lemma-crawler crawl --input input_words.csv

  crawl_txt: |
    lemma-crawler crawl --input words.txt --delay 2s

  resume: |
    # Rerun the same command. Done words are skipped without a request,
    # missing words are retried.
    lemma-crawler crawl --input input_words.csv

  progress: |
    lemma-crawler status
    lemma-crawler stats

  browse: |
    lemma-crawler list --set good --limit 20
    lemma-crawler list --set missing
    lemma-crawler card --format json

  define: |
    lemma-crawler define manger

  migrate_csv: |
    # One-time import of scrape_tracker.csv, words_good.csv, words_missing.csv
    lemma-crawler import --dir ./old-run
    lemma-crawler export --dir ./out

input_format:
  csv: "Header row is the first line containing 'lemme'. Words come from 'word' if present, else 'lemme'."
  txt: "One word per line, '#' comments and blank lines ignored"

auto_pause:
  - "A run stops after 10 consecutive failures (--pause-threshold)"
  - "The last failing word is saved before stopping"
  - "Exit status is 0; rerun to resume once the network or site is fine"

config:
  file: "$XDG_CONFIG_HOME/lemma-crawler/config.yaml"
  database: "$XDG_DATA_HOME/lemma-crawler/lemma-crawler.db"
  keys: "base_url, delay, pause_threshold, timeout, user_agent, max_body_size, db_path, cache_dir, cache_ttl"
  precedence: "flags > config file > defaults"

results:
  pos: "verb | noun | other (page found, nothing recognized) | unknown (no page)"
  gender_or_group: "1st group | 2nd group | 3rd group | unknown group | masculine | feminine"
`
