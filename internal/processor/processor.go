package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/corpuscan/corpuscan/internal/config"
	"github.com/corpuscan/corpuscan/internal/extract"
	"github.com/corpuscan/corpuscan/internal/marker"
	"github.com/corpuscan/corpuscan/internal/model"
	"github.com/corpuscan/corpuscan/internal/textutil"
)

// Processor converts raw HTML documents into normalized records.
// It is the sole writer to the processed area and its completion marker.
type Processor struct {
	// cfg provides the shared-area paths and the polling interval.
	cfg *config.Config

	// logger for structured logging.
	logger *slog.Logger

	// state tracks the stage's position in its state machine,
	// exported through State for observability in tests and logs.
	state model.ProcessorState
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets a custom logger for the processor.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// New creates a Processor with the given configuration.
func New(cfg *config.Config, opts ...Option) *Processor {
	p := &Processor{
		cfg:   cfg,
		state: model.ProcessorWaitingForSource,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Name returns the stage name.
func (p *Processor) Name() string {
	return "processor"
}

// State returns the current state machine position.
func (p *Processor) State() model.ProcessorState {
	return p.state
}

// Run executes the stage: wait for the upstream marker, process every raw
// document, then publish the completion marker. Per-document faults are
// logged and skipped; structural faults (missing raw area, unwritable
// output area) are returned and leave no marker behind, which correctly
// blocks the downstream stage rather than letting it read a partial batch.
func (p *Processor) Run(ctx context.Context) error {
	p.state = model.ProcessorWaitingForSource
	p.logger.Info("waiting for source marker",
		"state", p.state.String(),
		"marker", p.cfg.FetchMarkerPath(),
		"interval", p.cfg.PollInterval,
	)

	if err := marker.Wait(ctx, p.cfg.FetchMarkerPath(), p.cfg.PollInterval); err != nil {
		return fmt.Errorf("wait for source marker: %w", err)
	}

	p.state = model.ProcessorProcessing
	p.logger.Info("source ready, processing", "state", p.state.String())

	if err := os.MkdirAll(p.cfg.ProcessedDir(), 0750); err != nil {
		return fmt.Errorf("failed to create processed directory: %w", err)
	}
	if err := os.MkdirAll(p.cfg.StatusDir(), 0750); err != nil {
		return fmt.Errorf("failed to create status directory: %w", err)
	}

	// ReadDir returns entries sorted by name, which fixes the batch's
	// deterministic iteration order.
	entries, err := os.ReadDir(p.cfg.RawDir())
	if err != nil {
		return fmt.Errorf("failed to read raw directory: %w", err)
	}

	processed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), p.cfg.RawExtension) {
			continue
		}

		// An unreadable document is a per-item fault: skip and continue.
		record, err := p.processDocument(entry.Name())
		if err != nil {
			p.logger.Warn("skipping document",
				"file", entry.Name(),
				"error", err,
			)
			continue
		}

		// A failed record write is structural (unwritable area, disk
		// full): abort without a marker instead of publishing a batch
		// with holes in it.
		if err := writeRecord(p.recordPath(entry.Name()), record); err != nil {
			return err
		}
		processed++
	}

	// The marker goes last: its existence promises that every record
	// counted in it is already on disk.
	m := model.ProcessMarker{
		Timestamp:      time.Now().UTC(),
		FilesProcessed: processed,
	}
	if err := marker.Write(p.cfg.ProcessMarkerPath(), m); err != nil {
		return fmt.Errorf("failed to write completion marker: %w", err)
	}

	p.state = model.ProcessorDone
	p.logger.Info("processing complete",
		"state", p.state.String(),
		"filesProcessed", processed,
	)
	return nil
}

// processDocument reads and extracts a single raw document.
func (p *Processor) processDocument(name string) (*model.ProcessedRecord, error) {
	data, err := os.ReadFile(filepath.Join(p.cfg.RawDir(), name)) //nolint:gosec // Path is within the configured raw area
	if err != nil {
		return nil, fmt.Errorf("failed to read raw document: %w", err)
	}

	// Invalid byte sequences are dropped rather than failing the
	// document; raw inputs come from the wild.
	markup := strings.ToValidUTF8(string(data), "")

	text, links, images := extract.Extract(markup)

	return &model.ProcessedRecord{
		SourceID:    name,
		Text:        text,
		Statistics:  buildStatistics(text),
		Links:       links,
		Images:      images,
		ProcessedAt: time.Now().UTC(),
	}, nil
}

// recordPath maps a raw file name to its record path, replacing the raw
// extension with .json.
func (p *Processor) recordPath(name string) string {
	base := strings.TrimSuffix(name, p.cfg.RawExtension)
	return filepath.Join(p.cfg.ProcessedDir(), base+".json")
}

// buildStatistics computes the structural statistics of extracted text.
func buildStatistics(text string) model.TextStatistics {
	words := textutil.Words(text)

	stats := model.TextStatistics{
		WordCount:      len(words),
		SentenceCount:  len(textutil.Sentences(text)),
		ParagraphCount: len(textutil.Paragraphs(text)),
	}

	if len(words) > 0 {
		total := 0
		for _, w := range words {
			total += len(w)
		}
		stats.AvgWordLength = float64(total) / float64(len(words))
	}
	return stats
}

// writeRecord persists a record as pretty-printed JSON.
func writeRecord(path string, record *model.ProcessedRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // Records are world-readable pipeline output
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}
