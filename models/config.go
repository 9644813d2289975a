// Package models defines data structures for configuration and crawl results.
package models

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "lemma-crawler"

	DefaultBaseURL        = "https://fr.wiktionary.org/wiki/"
	DefaultDelay          = 1500 * time.Millisecond
	DefaultPauseThreshold = 10
	DefaultTimeout        = 10 * time.Second
	DefaultMaxBodySize    = 5 * 1024 * 1024
	DefaultUserAgent      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:91.0) Gecko/20100101 Firefox/91.0"
	DefaultDBName         = "lemma-crawler.db"
	DefaultConfigName     = "config.yaml"
)

var (
	ErrInvalidDelay          = errors.New("invalid delay: must be non-negative")
	ErrInvalidPauseThreshold = errors.New("invalid pause threshold: must be positive")
	ErrInvalidTimeout        = errors.New("invalid timeout: must be positive")
	ErrInvalidBaseURL        = errors.New("invalid base url: must be an absolute http(s) url")
)

// CrawlConfig holds the static tunables of a crawl run.
// Values come from an optional YAML file and are overridden by CLI flags.
type CrawlConfig struct {
	BaseURL        string        `yaml:"base_url"`
	Delay          time.Duration `yaml:"delay"`
	PauseThreshold int           `yaml:"pause_threshold"`
	Timeout        time.Duration `yaml:"timeout"`
	UserAgent      string        `yaml:"user_agent"`
	MaxBodySize    int64         `yaml:"max_body_size"`
	DBPath         string        `yaml:"db_path"`
	CacheDir       string        `yaml:"cache_dir"`
	CacheTTL       time.Duration `yaml:"cache_ttl"`
}

// DefaultConfig returns a config with every field set to its default.
func DefaultConfig() *CrawlConfig {
	return &CrawlConfig{
		BaseURL:        DefaultBaseURL,
		Delay:          DefaultDelay,
		PauseThreshold: DefaultPauseThreshold,
		Timeout:        DefaultTimeout,
		UserAgent:      DefaultUserAgent,
		MaxBodySize:    DefaultMaxBodySize,
		DBPath:         DefaultDBPath(),
		CacheDir:       DefaultCacheDir(),
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
// A missing file is not an error when the path is the default one.
func LoadConfig(path string) (*CrawlConfig, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path
	if err != nil {
		if os.IsNotExist(err) && path == DefaultConfigPath() {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the tunables that would make a run misbehave.
func (c *CrawlConfig) Validate() error {
	if c.Delay < 0 {
		return ErrInvalidDelay
	}
	if c.PauseThreshold <= 0 {
		return ErrInvalidPauseThreshold
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidBaseURL
	}
	return nil
}

// DefaultDBPath returns $XDG_DATA_HOME/lemma-crawler/lemma-crawler.db.
func DefaultDBPath() string {
	return filepath.Join(xdg.DataHome, AppName, DefaultDBName)
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/lemma-crawler/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, DefaultConfigName)
}

// DefaultCacheDir returns $XDG_CACHE_HOME/lemma-crawler/pages.
func DefaultCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName, "pages")
}
