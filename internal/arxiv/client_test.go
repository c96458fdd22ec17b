package arxiv

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/corpuscan/corpuscan/internal/config"
	"github.com/corpuscan/corpuscan/internal/model"
)

// testConfig returns a config pointed at the given test server.
func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()

	cfg := config.NewConfig()
	cfg.SharedDir = t.TempDir()
	cfg.ArxivBaseURL = baseURL
	cfg.ArxivRetries = 2
	cfg.ArxivBackoff = 10 * time.Millisecond
	return cfg
}

// TestClientSearch tests API querying and retry behavior.
func TestClientSearch(t *testing.T) {
	t.Parallel()

	t.Run("passes query parameters", func(t *testing.T) {
		t.Parallel()

		var gotQuery, gotMax string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("search_query")
			gotMax = r.URL.Query().Get("max_results")
			_, _ = w.Write([]byte(`<feed xmlns="http://www.w3.org/2005/Atom"></feed>`))
		}))
		t.Cleanup(srv.Close)

		c := NewClient(testConfig(t, srv.URL), WithClientLogger(discardLogger()))
		if _, err := c.Search(context.Background(), "cat:cs.LG", 10); err != nil {
			t.Fatalf("search failed: %v", err)
		}

		if gotQuery != "cat:cs.LG" {
			t.Errorf("expected search_query cat:cs.LG, got %q", gotQuery)
		}
		if gotMax != "10" {
			t.Errorf("expected max_results 10, got %q", gotMax)
		}
	})

	t.Run("retries on 429 and succeeds", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) <= 2 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_, _ = w.Write([]byte(`<feed xmlns="http://www.w3.org/2005/Atom"></feed>`))
		}))
		t.Cleanup(srv.Close)

		c := NewClient(testConfig(t, srv.URL), WithClientLogger(discardLogger()))
		if _, err := c.Search(context.Background(), "q", 5); err != nil {
			t.Fatalf("expected success after retries, got %v", err)
		}
		if calls.Load() != 3 {
			t.Errorf("expected 3 calls, got %d", calls.Load())
		}
	})

	t.Run("gives up after the retry budget", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		t.Cleanup(srv.Close)

		c := NewClient(testConfig(t, srv.URL), WithClientLogger(discardLogger()))
		if _, err := c.Search(context.Background(), "q", 5); err == nil {
			t.Fatal("expected error after retries exhausted")
		}
		// Initial attempt plus two retries.
		if calls.Load() != 3 {
			t.Errorf("expected 3 calls, got %d", calls.Load())
		}
	})

	t.Run("does not retry other HTTP errors", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		c := NewClient(testConfig(t, srv.URL), WithClientLogger(discardLogger()))
		if _, err := c.Search(context.Background(), "q", 5); err == nil {
			t.Fatal("expected error")
		}
		if calls.Load() != 1 {
			t.Errorf("expected 1 call, got %d", calls.Load())
		}
	})
}

// TestProcessorProcess tests a query end to end against a stub server.
func TestProcessorProcess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleFeed))
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(t, srv.URL)
	outDir := filepath.Join(t.TempDir(), "out")

	p := NewProcessor(cfg, WithLogger(discardLogger()))
	if err := p.Process(context.Background(), "cat:cs.LG", 10, outDir); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	t.Run("papers file round-trips", func(t *testing.T) {
		t.Parallel()

		data, err := os.ReadFile(filepath.Join(outDir, "papers.json"))
		if err != nil {
			t.Fatalf("failed to read papers: %v", err)
		}
		var papers []model.Paper
		if err := json.Unmarshal(data, &papers); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(papers) != 1 {
			t.Fatalf("expected 1 paper, got %d", len(papers))
		}
		if papers[0].AbstractStats.TotalWords == 0 {
			t.Error("expected abstract stats to be filled")
		}
	})

	t.Run("analysis file round-trips", func(t *testing.T) {
		t.Parallel()

		data, err := os.ReadFile(filepath.Join(outDir, "corpus_analysis.json"))
		if err != nil {
			t.Fatalf("failed to read analysis: %v", err)
		}
		var analysis model.CorpusAnalysis
		if err := json.Unmarshal(data, &analysis); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if analysis.Query != "cat:cs.LG" {
			t.Errorf("expected query in analysis, got %q", analysis.Query)
		}
		if analysis.PapersProcessed != 1 {
			t.Errorf("expected 1 paper processed, got %d", analysis.PapersProcessed)
		}
	})
}
