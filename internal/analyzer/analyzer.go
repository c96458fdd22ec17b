package analyzer

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
	"github.com/corpuscan/corpuscan/internal/database"
	"github.com/corpuscan/corpuscan/internal/marker"
	"github.com/corpuscan/corpuscan/internal/model"
	"github.com/corpuscan/corpuscan/internal/report"
	"github.com/corpuscan/corpuscan/internal/textutil"
)

// Analyzer aggregates the processed batch into a single corpus report.
// It is the sole writer to the analysis area and its completion marker.
type Analyzer struct {
	// cfg provides the shared-area paths, polling interval and table sizes.
	cfg *config.Config

	// logger for structured logging.
	logger *slog.Logger

	// db is the optional report history store. Nil disables persistence.
	db *database.ReportDB

	// state tracks the stage's position in its state machine.
	state model.AnalyzerState
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets a custom logger for the analyzer.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithDatabase attaches a report history database. Every completed run is
// then saved for later comparison.
func WithDatabase(db *database.ReportDB) Option {
	return func(a *Analyzer) {
		a.db = db
	}
}

// New creates an Analyzer with the given configuration.
func New(cfg *config.Config, opts ...Option) *Analyzer {
	a := &Analyzer{
		cfg:   cfg,
		state: model.AnalyzerWaitingForProcessor,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// Name returns the stage name.
func (a *Analyzer) Name() string {
	return "analyzer"
}

// State returns the current state machine position.
func (a *Analyzer) State() model.AnalyzerState {
	return a.state
}

// Run executes the stage: wait for the processor marker, load the batch,
// aggregate, write the report and then the completion marker, then linger
// for the configured window. A corrupt record is a per-item fault and is
// skipped; a failed report or marker write is structural and aborts the
// stage without publishing completion.
func (a *Analyzer) Run(ctx context.Context) error {
	a.state = model.AnalyzerWaitingForProcessor
	a.logger.Info("waiting for processor marker",
		"state", a.state.String(),
		"marker", a.cfg.ProcessMarkerPath(),
		"interval", a.cfg.PollInterval,
	)

	if err := marker.Wait(ctx, a.cfg.ProcessMarkerPath(), a.cfg.PollInterval); err != nil {
		return fmt.Errorf("wait for processor marker: %w", err)
	}

	a.state = model.AnalyzerLoading
	a.logger.Info("processor done, loading records", "state", a.state.String())

	records, err := a.loadRecords()
	if err != nil {
		return err
	}

	a.state = model.AnalyzerAggregating
	a.logger.Info("aggregating corpus statistics",
		"state", a.state.String(),
		"documents", len(records),
	)

	rep := aggregate(records, a.cfg.TopWords, a.cfg.TopNgrams)

	if err := a.writeReport(rep); err != nil {
		return err
	}

	if a.db != nil {
		id, err := a.db.SaveReport(ctx, rep)
		if err != nil {
			// History is best-effort; the on-disk report stays the
			// authoritative output.
			a.logger.Warn("failed to save report to history", "error", err)
		} else {
			a.logger.Info("report saved to history", "id", id)
		}
	}

	// The marker goes last: once it exists, the report is complete.
	m := model.AnalysisMarker{Timestamp: time.Now().UTC()}
	if err := marker.Write(a.cfg.AnalysisMarkerPath(), m); err != nil {
		return fmt.Errorf("failed to write completion marker: %w", err)
	}

	a.state = model.AnalyzerReported
	a.logger.Info("analysis complete",
		"state", a.state.String(),
		"documents", rep.DocumentsProcessed,
		"totalWords", rep.TotalWords,
		"uniqueWords", rep.UniqueWords,
	)

	if err := a.linger(ctx); err != nil {
		return err
	}

	a.state = model.AnalyzerExit
	a.logger.Info("exiting", "state", a.state.String())
	return nil
}

// document is one loaded record with its derived token list.
type document struct {
	name   string
	record model.ProcessedRecord
	tokens []string
}

// loadRecords reads every processed record, sorted by file name. A record
// that fails to read or parse is logged and skipped so one corrupt file
// cannot block the whole report.
func (a *Analyzer) loadRecords() ([]document, error) {
	entries, err := os.ReadDir(a.cfg.ProcessedDir())
	if err != nil {
		return nil, fmt.Errorf("failed to read processed directory: %w", err)
	}

	docs := make([]document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(a.cfg.ProcessedDir(), entry.Name())
		data, err := os.ReadFile(path) //nolint:gosec // Path is within the configured processed area
		if err != nil {
			a.logger.Warn("skipping unreadable record", "file", entry.Name(), "error", err)
			continue
		}

		var rec model.ProcessedRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			a.logger.Warn("skipping corrupt record", "file", entry.Name(), "error", err)
			continue
		}

		docs = append(docs, document{
			name:   entry.Name(),
			record: rec,
			tokens: textutil.LowerWords(rec.Text),
		})
	}
	return docs, nil
}

// aggregate computes the corpus report from loaded documents. It is a pure
// function of its inputs apart from the report timestamp, which makes the
// analytics directly testable without a filesystem.
func aggregate(docs []document, topWords, topNgrams int) *model.CorpusReport {
	rep := model.NewCorpusReport()
	rep.DocumentsProcessed = len(docs)

	wordCounter := textutil.NewCounter()
	bigramCounter := textutil.NewCounter()
	trigramCounter := textutil.NewCounter()

	sentenceCount := 0
	sentenceTokens := 0

	for _, doc := range docs {
		wordCounter.AddAll(doc.tokens)
		bigramCounter.AddAll(textutil.NGrams(doc.tokens, 2))
		trigramCounter.AddAll(textutil.NGrams(doc.tokens, 3))

		// Sentences are recomputed from the record text rather than
		// trusted from its statistics block, so a stale or hand-edited
		// record cannot skew the readability scalars.
		for _, s := range textutil.Sentences(doc.record.Text) {
			sentenceCount++
			sentenceTokens += len(textutil.Words(s))
		}
	}

	totalWords := wordCounter.Total()
	rep.TotalWords = totalWords
	rep.UniqueWords = wordCounter.Len()

	for _, e := range wordCounter.MostCommon(topWords) {
		freq := 0.0
		if totalWords > 0 {
			freq = float64(e.Count) / float64(totalWords)
		}
		rep.TopWords = append(rep.TopWords, model.WordFrequency{
			Word:      e.Key,
			Count:     e.Count,
			Frequency: freq,
		})
	}

	// Upper triangle of the pairwise matrix, in document order.
	for i := 0; i < len(docs); i++ {
		for j := i + 1; j < len(docs); j++ {
			rep.DocumentSimilarity = append(rep.DocumentSimilarity, model.DocumentSimilarity{
				Doc1:       docs[i].name,
				Doc2:       docs[j].name,
				Similarity: textutil.Jaccard(docs[i].tokens, docs[j].tokens),
			})
		}
	}

	for _, e := range bigramCounter.MostCommon(topNgrams) {
		rep.TopBigrams = append(rep.TopBigrams, model.BigramCount{
			Bigram: e.Key,
			Count:  e.Count,
		})
	}
	for _, e := range trigramCounter.MostCommon(topNgrams) {
		rep.TopTrigrams = append(rep.TopTrigrams, model.TrigramCount{
			Trigram: e.Key,
			Count:   e.Count,
		})
	}

	rep.Readability = computeReadability(wordCounter, sentenceCount, sentenceTokens)
	return rep
}

// computeReadability derives the three readability scalars. Every division
// is guarded so an empty corpus yields zeros instead of NaN.
func computeReadability(words *textutil.Counter, sentenceCount, sentenceTokens int) model.Readability {
	var r model.Readability

	if sentenceCount > 0 {
		r.AvgSentenceLength = float64(sentenceTokens) / float64(sentenceCount)
	}

	total := words.Total()
	if total > 0 {
		chars := 0
		for _, e := range words.MostCommon(-1) {
			chars += len(e.Key) * e.Count
		}
		r.AvgWordLength = float64(chars) / float64(total)
		r.ComplexityScore = float64(words.Len()) / float64(total)
	}
	return r
}

// writeReport persists the report as pretty-printed JSON into the analysis
// area, plus an optional Markdown rendering next to it.
func (a *Analyzer) writeReport(rep *model.CorpusReport) error {
	if err := os.MkdirAll(a.cfg.AnalysisDir(), 0750); err != nil {
		return fmt.Errorf("failed to create analysis directory: %w", err)
	}

	f, err := os.Create(a.cfg.ReportPath())
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	w := report.NewJSONWriter(f, report.WithPrettyPrint())
	if _, err := w.Write(rep); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}

	if a.cfg.MarkdownReport {
		mdPath := strings.TrimSuffix(a.cfg.ReportPath(), ".json") + ".md"
		mf, err := os.Create(mdPath)
		if err != nil {
			return fmt.Errorf("failed to create markdown report: %w", err)
		}
		mw := report.NewMarkdownWriter(mf)
		if _, err := mw.Write(rep); err != nil {
			_ = mf.Close()
			return fmt.Errorf("failed to write markdown report: %w", err)
		}
		if err := mf.Close(); err != nil {
			return fmt.Errorf("failed to close markdown report: %w", err)
		}
	}

	a.logger.Info("report written", "path", a.cfg.ReportPath())
	return nil
}

// linger keeps the process alive after reporting so an external monitor
// can observe the finished state. A zero duration exits immediately;
// cancellation cuts the window short without error.
func (a *Analyzer) linger(ctx context.Context) error {
	if a.cfg.LingerDuration <= 0 {
		return nil
	}

	a.state = model.AnalyzerLingering
	a.logger.Info("lingering after report",
		"state", a.state.String(),
		"duration", a.cfg.LingerDuration,
	)

	timer := time.NewTimer(a.cfg.LingerDuration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil
	case <-timer.C:
		return nil
	}
}
