package models

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CrawlConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(*CrawlConfig) {}},
		{name: "zero delay allowed", mutate: func(c *CrawlConfig) { c.Delay = 0 }},
		{name: "negative delay", mutate: func(c *CrawlConfig) { c.Delay = -time.Second }, wantErr: ErrInvalidDelay},
		{name: "zero threshold", mutate: func(c *CrawlConfig) { c.PauseThreshold = 0 }, wantErr: ErrInvalidPauseThreshold},
		{name: "zero timeout", mutate: func(c *CrawlConfig) { c.Timeout = 0 }, wantErr: ErrInvalidTimeout},
		{name: "relative base url", mutate: func(c *CrawlConfig) { c.BaseURL = "wiki/" }, wantErr: ErrInvalidBaseURL},
		{name: "ftp base url", mutate: func(c *CrawlConfig) { c.BaseURL = "ftp://example.com/" }, wantErr: ErrInvalidBaseURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "delay: 3s\npause_threshold: 5\nbase_url: https://en.wiktionary.org/wiki/\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Delay != 3*time.Second {
		t.Errorf("Delay = %v, want 3s", cfg.Delay)
	}
	if cfg.PauseThreshold != 5 {
		t.Errorf("PauseThreshold = %d, want 5", cfg.PauseThreshold)
	}
	if cfg.BaseURL != "https://en.wiktionary.org/wiki/" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default %v", cfg.Timeout, DefaultTimeout)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadConfig() of an explicit missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("delay: [not a duration"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("LoadConfig() of malformed yaml should fail")
	}
}
