package caching

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if _, ok := c.Get("https://fr.wiktionary.org/wiki/chien"); ok {
		t.Fatal("Get() on empty cache should miss")
	}
	if err := c.Set("https://fr.wiktionary.org/wiki/chien", []byte("<html/>")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, ok := c.Get("https://fr.wiktionary.org/wiki/chien")
	if !ok || string(data) != "<html/>" {
		t.Errorf("Get() = %q, %v", data, ok)
	}
	if _, ok := c.Get("https://fr.wiktionary.org/wiki/chat"); ok {
		t.Error("Get() for another url should miss")
	}
}

func TestCacheExpires(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	url := "https://fr.wiktionary.org/wiki/vieux"
	if err := c.Set(url, []byte("old")); err != nil {
		t.Fatal(err)
	}

	old := time.Now().Add(-2 * time.Minute)
	if err := os.Chtimes(filepath.Join(dir, c.key(url)), old, old); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(url); ok {
		t.Error("Get() should miss an entry older than the ttl")
	}
}

func TestNewCacheRejectsNonPositiveTTL(t *testing.T) {
	if _, err := NewCache(t.TempDir(), 0); err == nil {
		t.Error("NewCache() with zero ttl should fail")
	}
}
