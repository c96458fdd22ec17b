package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/corpuscan/corpuscan/internal/model"
)

// sampleReport returns a small populated report for writer tests.
func sampleReport() *model.CorpusReport {
	rep := model.NewCorpusReport()
	rep.ProcessingTimestamp = time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	rep.DocumentsProcessed = 2
	rep.TotalWords = 10
	rep.UniqueWords = 8
	rep.TopWords = []model.WordFrequency{
		{Word: "dogs", Count: 3, Frequency: 0.3},
		{Word: "and", Count: 2, Frequency: 0.2},
	}
	rep.DocumentSimilarity = []model.DocumentSimilarity{
		{Doc1: "doc1.json", Doc2: "doc2.json", Similarity: 0.2857},
	}
	rep.TopBigrams = []model.BigramCount{{Bigram: "dogs run", Count: 2}}
	rep.TopTrigrams = []model.TrigramCount{{Trigram: "dogs run fast", Count: 1}}
	rep.Readability = model.Readability{
		AvgSentenceLength: 3.33,
		AvgWordLength:     3.9,
		ComplexityScore:   0.8,
	}
	return rep
}

// TestJSONWriter tests JSON report output.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("compact output round-trips", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		n, err := w.Write(sampleReport())
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
		}

		var got model.CorpusReport
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if got.TotalWords != 10 {
			t.Errorf("expected 10 total words, got %d", got.TotalWords)
		}
	})

	t.Run("pretty print indents with two spaces", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())

		if _, err := w.Write(sampleReport()); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"processing_timestamp\"") {
			t.Error("expected two-space indented output")
		}
		if !strings.HasSuffix(buf.String(), "\n") {
			t.Error("expected trailing newline")
		}
	})

	t.Run("wire keys are present", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		for _, key := range []string{
			"processing_timestamp", "documents_processed", "total_words",
			"unique_words", "top_100_words", "document_similarity",
			"top_bigrams", "top_trigrams", "readability",
		} {
			if !strings.Contains(buf.String(), `"`+key+`"`) {
				t.Errorf("expected key %q in output", key)
			}
		}
	})
}

// errWriter always fails.
type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink is broken")
}

// TestMultiWriter tests fan-out report writing.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all sinks", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		mw := NewMultiWriter(NewJSONWriter(&a), NewTextWriter(&b))

		if _, err := mw.Write(sampleReport()); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if a.Len() == 0 || b.Len() == 0 {
			t.Error("expected output in both sinks")
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var after bytes.Buffer
		mw := NewMultiWriter(NewJSONWriter(errWriter{}), NewJSONWriter(&after))

		if _, err := mw.Write(sampleReport()); err == nil {
			t.Fatal("expected error from broken sink")
		}
		if after.Len() != 0 {
			t.Error("expected no write after the failing sink")
		}
	})
}

// TestTextWriter tests plain text report output.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewTextWriter(&buf).Write(sampleReport()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "dogs") {
		t.Error("expected top word in output")
	}
	if !strings.Contains(out, "2") {
		t.Error("expected document count in output")
	}
}

// TestMarkdownWriter tests Markdown report output.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("renders sections and tables", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewMarkdownWriter(&buf).Write(sampleReport())
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if n == 0 {
			t.Error("expected non-zero byte count")
		}

		out := buf.String()
		if !strings.Contains(out, "# ") {
			t.Error("expected a top-level heading")
		}
		if !strings.Contains(out, "dogs") {
			t.Error("expected top word in output")
		}
		if !strings.Contains(out, "|") {
			t.Error("expected Markdown tables")
		}
	})

	t.Run("empty report renders without tables", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(model.NewCorpusReport()); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if buf.Len() == 0 {
			t.Error("expected output for empty report")
		}
	})
}
