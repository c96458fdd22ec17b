package arxiv

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/corpuscan/corpuscan/internal/config"
)

// Output file names written by a Processor run.
const (
	papersFileName   = "papers.json"
	analysisFileName = "corpus_analysis.json"
)

// Processor runs one ArXiv query end to end: fetch, parse, analyze and
// write the output files.
type Processor struct {
	// cfg provides the API endpoint and retry settings.
	cfg *config.Config

	// logger for structured logging.
	logger *slog.Logger

	// client performs the API request.
	client *Client
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithLogger sets a custom logger for the processor.
func WithLogger(logger *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithClient sets a custom API client, used by tests.
func WithClient(client *Client) ProcessorOption {
	return func(p *Processor) {
		p.client = client
	}
}

// NewProcessor creates a Processor with the given configuration.
func NewProcessor(cfg *config.Config, opts ...ProcessorOption) *Processor {
	p := &Processor{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.client == nil {
		p.client = NewClient(cfg, WithClientLogger(p.logger))
	}
	return p
}

// Process queries the API and writes papers.json and corpus_analysis.json
// into outputDir. A fetch that exhausts its retries is the only fatal
// error source besides the filesystem; invalid entries are skipped.
func (p *Processor) Process(ctx context.Context, query string, maxResults int, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	start := time.Now()
	p.logger.Info("starting query", "query", query, "maxResults", maxResults)

	data, err := p.client.Search(ctx, query, maxResults)
	if err != nil {
		return err
	}

	papers, err := ParseFeed(data, p.logger)
	if err != nil {
		return err
	}
	p.logger.Info("parsed valid entries", "count", len(papers))

	analysis := BuildAnalysis(query, papers)

	if err := writeJSON(filepath.Join(outputDir, papersFileName), papers); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(outputDir, analysisFileName), analysis); err != nil {
		return err
	}

	p.logger.Info("completed processing",
		"papers", len(papers),
		"elapsed", time.Since(start).Round(10*time.Millisecond),
	)
	return nil
}

// writeJSON persists v as pretty-printed JSON.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // Analysis output files
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
