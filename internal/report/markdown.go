package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/corpuscan/corpuscan/internal/model"
)

// markdownTableLimit caps how many rows of each top-K table appear in the
// Markdown summary. The full tables live in the JSON report; the summary
// is for skimming.
const markdownTableLimit = 10

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables, lists, and headings instead
// of hand-concatenated strings.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.CorpusReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeOverview(md, report)
	w.writeTopWords(md, report)
	w.writeNgrams(md, report)
	w.writeSimilarity(md, report)
	w.writeReadability(md, report)

	return len(md.String()), md.Build()
}

// writeOverview writes the report header with corpus-level totals.
func (w *MarkdownWriter) writeOverview(md *markdown.Markdown, report *model.CorpusReport) {
	md.H1("Corpus Analysis Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Analyzed", report.ProcessingTimestamp.Format("2006-01-02 15:04:05 MST")},
			{"Documents", strconv.Itoa(report.DocumentsProcessed)},
			{"Total Words", strconv.Itoa(report.TotalWords)},
			{"Unique Words", strconv.Itoa(report.UniqueWords)},
		},
	})
	md.PlainText("")
}

// writeTopWords writes the leading rows of the global frequency table.
func (w *MarkdownWriter) writeTopWords(md *markdown.Markdown, report *model.CorpusReport) {
	md.H2("Top Words")
	md.PlainText("")

	if len(report.TopWords) == 0 {
		md.PlainText("No words in corpus.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, markdownTableLimit)
	for i, wf := range report.TopWords {
		if i >= markdownTableLimit {
			break
		}
		rows = append(rows, []string{
			wf.Word,
			strconv.Itoa(wf.Count),
			fmt.Sprintf("%.4f", wf.Frequency),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Word", "Count", "Frequency"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeNgrams writes the leading rows of the bigram and trigram tables.
func (w *MarkdownWriter) writeNgrams(md *markdown.Markdown, report *model.CorpusReport) {
	md.H2("Top Bigrams")
	md.PlainText("")
	if len(report.TopBigrams) == 0 {
		md.PlainText("No bigrams in corpus.")
		md.PlainText("")
	} else {
		rows := make([][]string, 0, markdownTableLimit)
		for i, bg := range report.TopBigrams {
			if i >= markdownTableLimit {
				break
			}
			rows = append(rows, []string{bg.Bigram, strconv.Itoa(bg.Count)})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Bigram", "Count"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	md.H2("Top Trigrams")
	md.PlainText("")
	if len(report.TopTrigrams) == 0 {
		md.PlainText("No trigrams in corpus.")
		md.PlainText("")
		return
	}
	rows := make([][]string, 0, markdownTableLimit)
	for i, tg := range report.TopTrigrams {
		if i >= markdownTableLimit {
			break
		}
		rows = append(rows, []string{tg.Trigram, strconv.Itoa(tg.Count)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Trigram", "Count"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSimilarity writes the most similar document pairs.
func (w *MarkdownWriter) writeSimilarity(md *markdown.Markdown, report *model.CorpusReport) {
	md.H2("Most Similar Documents")
	md.PlainText("")

	if len(report.DocumentSimilarity) == 0 {
		md.PlainText("Fewer than two documents; no pairs to compare.")
		md.PlainText("")
		return
	}

	// The report stores pairs in document iteration order; rank a copy
	// by similarity for display.
	pairs := make([]model.DocumentSimilarity, len(report.DocumentSimilarity))
	copy(pairs, report.DocumentSimilarity)
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Similarity > pairs[j].Similarity
	})

	rows := make([][]string, 0, markdownTableLimit)
	for i, p := range pairs {
		if i >= markdownTableLimit {
			break
		}
		rows = append(rows, []string{
			p.Doc1,
			p.Doc2,
			fmt.Sprintf("%.4f", p.Similarity),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Document A", "Document B", "Jaccard"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeReadability writes the readability scalars.
func (w *MarkdownWriter) writeReadability(md *markdown.Markdown, report *model.CorpusReport) {
	md.H2("Readability")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Avg Sentence Length", fmt.Sprintf("%.2f", report.Readability.AvgSentenceLength)},
			{"Avg Word Length", fmt.Sprintf("%.2f", report.Readability.AvgWordLength)},
			{"Complexity Score", fmt.Sprintf("%.4f", report.Readability.ComplexityScore)},
		},
	})
	md.PlainText("")
}
