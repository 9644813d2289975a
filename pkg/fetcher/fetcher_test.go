package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dtnitsch/lemma-crawler/pkg/caching"
)

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "plain", word: "manger", want: "manger"},
		{name: "uppercase", word: "Chien", want: "chien"},
		{name: "accented uppercase", word: "ÉTÉ", want: "été"},
		{name: "multi-word", word: "pomme de terre", want: "pomme-de-terre"},
		{name: "surrounding and repeated spaces", word: "  pomme   de\tterre ", want: "pomme-de-terre"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWord(tt.word); got != tt.want {
				t.Errorf("NormalizeWord(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestURLFor(t *testing.T) {
	tests := []struct {
		base string
		word string
		want string
	}{
		{base: "https://fr.wiktionary.org/wiki/", word: "manger", want: "https://fr.wiktionary.org/wiki/manger"},
		{base: "https://fr.wiktionary.org/wiki", word: "Pomme de terre", want: "https://fr.wiktionary.org/wiki/pomme-de-terre"},
		{base: "https://fr.wiktionary.org/wiki/", word: "être", want: "https://fr.wiktionary.org/wiki/%C3%AAtre"},
		{base: "https://fr.wiktionary.org/wiki/", word: "a/b", want: "https://fr.wiktionary.org/wiki/a%2Fb"},
	}
	for _, tt := range tests {
		f := NewFetcher(tt.base)
		if got := f.URLFor(tt.word); got != tt.want {
			t.Errorf("URLFor(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestFetchSendsHeadersAndReturnsBody(t *testing.T) {
	var gotPath, gotUA, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		_, _ = w.Write([]byte("<html>verbe</html>"))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL+"/wiki/", WithUserAgent("test-agent/1.0"))
	body, err := f.Fetch(context.Background(), "Pomme de terre")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(body) != "<html>verbe</html>" {
		t.Errorf("Fetch() body = %q", body)
	}
	if gotPath != "/wiki/pomme-de-terre" {
		t.Errorf("request path = %q, want /wiki/pomme-de-terre", gotPath)
	}
	if gotUA != "test-agent/1.0" {
		t.Errorf("User-Agent = %q", gotUA)
	}
	if !strings.HasPrefix(gotLang, "fr") {
		t.Errorf("Accept-Language = %q, want fr first", gotLang)
	}
}

func TestFetchNon2xxIsStatusError(t *testing.T) {
	for _, code := range []int{http.StatusNotFound, http.StatusTooManyRequests, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", code)
		}))

		_, err := NewFetcher(srv.URL).Fetch(context.Background(), "xyzzy123")
		srv.Close()

		var se *StatusError
		if !errors.As(err, &se) {
			t.Fatalf("status %d: Fetch() error = %v, want *StatusError", code, err)
		}
		if se.StatusCode != code {
			t.Errorf("StatusCode = %d, want %d", se.StatusCode, code)
		}
	}
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, WithTimeout(50*time.Millisecond))
	if _, err := f.Fetch(context.Background(), "lent"); err == nil {
		t.Error("Fetch() should fail when the server is slower than the timeout")
	}
}

func TestFetchBodyTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 100)))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, WithMaxBodySize(10))
	if _, err := f.Fetch(context.Background(), "gros"); err == nil {
		t.Error("Fetch() should reject an oversized body")
	}
}

func TestFetchUsesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte("page"))
	}))
	defer srv.Close()

	cache, err := caching.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	f := NewFetcher(srv.URL, WithCache(cache))

	for i := 0; i < 3; i++ {
		body, err := f.Fetch(context.Background(), "chien")
		if err != nil {
			t.Fatalf("Fetch() #%d error = %v", i, err)
		}
		if string(body) != "page" {
			t.Errorf("Fetch() #%d body = %q", i, body)
		}
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1", hits)
	}
}
