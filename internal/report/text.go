package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/corpuscan/corpuscan/internal/model"
)

// TextWriter outputs terse human-readable text reports for the terminal.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because it works in all terminals and pipes cleanly to
// files or other tools.
type TextWriter struct {
	baseWriter

	// topRows limits how many top-table rows are printed.
	topRows int
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithTopRows sets how many rows of each top table are printed.
func WithTopRows(n int) TextWriterOption {
	return func(w *TextWriter) {
		if n > 0 {
			w.topRows = n
		}
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
		topRows:    10,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report in human-readable format.
func (w *TextWriter) Write(report *model.CorpusReport) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Corpus Analysis - %s\n", report.ProcessingTimestamp.Format("2006-01-02 15:04:05 MST"))
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	fmt.Fprintf(&sb, "Documents:    %d\n", report.DocumentsProcessed)
	fmt.Fprintf(&sb, "Total words:  %d\n", report.TotalWords)
	fmt.Fprintf(&sb, "Unique words: %d\n\n", report.UniqueWords)

	if len(report.TopWords) > 0 {
		sb.WriteString("Top words:\n")
		for i, wf := range report.TopWords {
			if i >= w.topRows {
				break
			}
			fmt.Fprintf(&sb, "  %-20s %6d  (%.4f)\n", wf.Word, wf.Count, wf.Frequency)
		}
		sb.WriteString("\n")
	}

	if len(report.TopBigrams) > 0 {
		sb.WriteString("Top bigrams:\n")
		for i, bg := range report.TopBigrams {
			if i >= w.topRows {
				break
			}
			fmt.Fprintf(&sb, "  %-30s %6d\n", bg.Bigram, bg.Count)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Similar pairs: %d\n", len(report.DocumentSimilarity))
	fmt.Fprintf(&sb, "Readability:   sentence %.2f, word %.2f, complexity %.4f\n",
		report.Readability.AvgSentenceLength,
		report.Readability.AvgWordLength,
		report.Readability.ComplexityScore,
	)

	return w.output.Write([]byte(sb.String()))
}
