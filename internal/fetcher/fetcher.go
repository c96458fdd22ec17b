package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/sync/errgroup"

	"github.com/corpuscan/corpuscan/internal/config"
	"github.com/corpuscan/corpuscan/internal/marker"
	"github.com/corpuscan/corpuscan/internal/model"
	"github.com/corpuscan/corpuscan/internal/textutil"
)

// maxBodyBytes caps how much of a response body is read. Corpus documents
// are web pages, not archives; the cap protects against a misbehaving
// server streaming forever.
const maxBodyBytes = 10 << 20

// Fetcher downloads a batch of URLs and records per-URL metrics.
type Fetcher struct {
	// cfg provides timeouts, concurrency and the shared-area paths.
	cfg *config.Config

	// logger for structured logging.
	logger *slog.Logger

	// client is the HTTP client used for all requests.
	client *http.Client
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithLogger sets a custom logger for the fetcher.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client, used by tests to point the
// fetcher at an httptest server with its own transport.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// New creates a Fetcher with the given configuration.
func New(cfg *config.Config, opts ...Option) *Fetcher {
	f := &Fetcher{cfg: cfg}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: cfg.FetchTimeout}
	}
	return f
}

// Batch holds the outcome of one fetch run. Results keep the input URL
// order regardless of completion order; decoded textual bodies are kept
// alongside so a run can be saved into the raw pipeline area.
type Batch struct {
	// Results holds one entry per input URL, in input order.
	Results []*model.FetchResult

	// Start is when the batch began.
	Start time.Time

	// End is when the batch finished.
	End time.Time

	bodies [][]byte
}

// Summary aggregates the batch into a FetchSummary.
func (b *Batch) Summary() *model.FetchSummary {
	return model.NewFetchSummary(b.Results, b.Start, b.End)
}

// Run fetches every URL with bounded parallelism. Request failures are
// recorded per result, never returned; the only error source is context
// cancellation.
func (f *Fetcher) Run(ctx context.Context, urls []string) (*Batch, error) {
	b := &Batch{
		Results: make([]*model.FetchResult, len(urls)),
		Start:   time.Now().UTC(),
		bodies:  make([][]byte, len(urls)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.cfg.FetchConcurrency)

	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, body := f.fetch(gctx, u)
			b.Results[i] = result
			b.bodies[i] = body

			if result.Failed() {
				f.logger.Warn("fetch failed", "url", u, "error", result.Error)
			} else {
				f.logger.Debug("fetched",
					"url", u,
					"status", result.StatusCode,
					"bytes", result.ContentLength,
					"ms", result.ResponseTimeMS,
				)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	b.End = time.Now().UTC()
	return b, nil
}

// fetch requests a single URL. The returned body is the decoded text for
// textual responses and nil otherwise.
func (f *Fetcher) fetch(ctx context.Context, url string) (*model.FetchResult, []byte) {
	result := &model.FetchResult{
		URL:       url,
		Timestamp: time.Now().UTC(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		result.Error = err.Error()
		return result, nil
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	result.ResponseTimeMS = float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		result.Error = err.Error()
		return result, nil
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode

	contentType := resp.Header.Get("Content-Type")
	result.TextResponse = isTextual(contentType)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	result.ContentLength = len(raw)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read body: %v", err)
		return result, nil
	}

	if !result.TextResponse {
		return result, nil
	}

	// Decode to UTF-8 honoring the declared charset; pages off the open
	// web still show up in latin-1 and friends.
	decoded, err := decodeBody(raw, contentType)
	if err != nil {
		result.Error = fmt.Sprintf("failed to decode body: %v", err)
		return result, nil
	}

	result.WordCount = len(textutil.Words(string(decoded)))
	return result, decoded
}

// isTextual reports whether a Content-Type carries text worth counting.
func isTextual(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.HasPrefix(ct, "text/") ||
		strings.Contains(ct, "json") ||
		strings.Contains(ct, "xml") ||
		strings.Contains(ct, "xhtml")
}

// decodeBody converts a response body to UTF-8 using the charset declared
// in the Content-Type header or sniffed from the content itself.
func decodeBody(raw []byte, contentType string) ([]byte, error) {
	reader, err := charset.NewReader(strings.NewReader(string(raw)), contentType)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(reader)
}

// Output file names written by WriteResults.
const (
	resultsFileName = "responses.json"
	summaryFileName = "summary.json"
	errorsFileName  = "errors.log"
)

// WriteResults persists the batch into dir: every result as JSON, the
// aggregate summary as JSON, and one log line per failed URL.
func (f *Fetcher) WriteResults(dir string, b *Batch) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeJSON(filepath.Join(dir, resultsFileName), b.Results); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, summaryFileName), b.Summary()); err != nil {
		return err
	}

	var sb strings.Builder
	for _, r := range b.Results {
		if r.Failed() {
			fmt.Fprintf(&sb, "%s: %s\n", r.URL, r.Error)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, errorsFileName), []byte(sb.String()), 0644); err != nil { //nolint:gosec // Log output
		return fmt.Errorf("failed to write error log: %w", err)
	}

	f.logger.Info("fetch results written", "dir", dir, "urls", len(b.Results))
	return nil
}

// writeJSON persists v as pretty-printed JSON.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // Fetch output files
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// SaveRaw seeds the shared pipeline area: each successfully decoded
// textual body becomes a raw document, and the fetch completion marker is
// written strictly last so the processor never sees a partial batch.
func (f *Fetcher) SaveRaw(b *Batch) (int, error) {
	if err := os.MkdirAll(f.cfg.RawDir(), 0750); err != nil {
		return 0, fmt.Errorf("failed to create raw directory: %w", err)
	}

	saved := 0
	for i, r := range b.Results {
		if r.Failed() || !r.TextResponse || len(b.bodies[i]) == 0 {
			continue
		}

		name := fmt.Sprintf("page_%03d%s", i+1, f.cfg.RawExtension)
		path := filepath.Join(f.cfg.RawDir(), name)
		if err := os.WriteFile(path, b.bodies[i], 0644); err != nil { //nolint:gosec // Raw documents are pipeline input
			return saved, fmt.Errorf("failed to save raw document %s: %w", name, err)
		}
		saved++
	}

	m := model.FetchMarker{
		Timestamp:  time.Now().UTC(),
		FilesSaved: saved,
	}
	if err := marker.Write(f.cfg.FetchMarkerPath(), m); err != nil {
		return saved, fmt.Errorf("failed to write completion marker: %w", err)
	}

	f.logger.Info("raw documents saved", "dir", f.cfg.RawDir(), "saved", saved)
	return saved, nil
}
