package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoadConfigFile tests YAML config file loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads overrides", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".corpuscan")
		content := `
sharedDir: /data/corpus
pollInterval: 500ms
lingerDuration: 0s
topWords: 50
fetch:
  concurrency: 8
arxiv:
  retries: 5
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		file, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		cfg := NewConfig()
		file.ApplyTo(cfg)

		if cfg.SharedDir != "/data/corpus" {
			t.Errorf("expected shared dir /data/corpus, got %q", cfg.SharedDir)
		}
		if cfg.PollInterval != 500*time.Millisecond {
			t.Errorf("expected poll interval 500ms, got %v", cfg.PollInterval)
		}
		if cfg.LingerDuration != 0 {
			t.Errorf("expected linger duration 0, got %v", cfg.LingerDuration)
		}
		if cfg.TopWords != 50 {
			t.Errorf("expected top words 50, got %d", cfg.TopWords)
		}
		if cfg.FetchConcurrency != 8 {
			t.Errorf("expected fetch concurrency 8, got %d", cfg.FetchConcurrency)
		}
		if cfg.ArxivRetries != 5 {
			t.Errorf("expected arxiv retries 5, got %d", cfg.ArxivRetries)
		}
	})

	t.Run("absent linger keeps default", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".corpuscan")
		if err := os.WriteFile(path, []byte("topWords: 10\n"), 0600); err != nil {
			t.Fatal(err)
		}

		file, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		cfg := NewConfig()
		file.ApplyTo(cfg)
		if cfg.LingerDuration != DefaultLingerDuration {
			t.Errorf("expected default linger duration, got %v", cfg.LingerDuration)
		}
	})

	t.Run("missing file returns sentinel error", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".corpuscan")
		if err := os.WriteFile(path, []byte("sharedDir: [broken\n"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

// TestFindConfigFile tests the config file search order.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path wins", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "nope.yaml")); got != "" {
			t.Errorf("expected empty path, got %q", got)
		}
	})
}
