package arxiv

import (
	"testing"

	"github.com/corpuscan/corpuscan/internal/model"
)

// TestAnalyzeAbstract tests per-abstract statistics.
func TestAnalyzeAbstract(t *testing.T) {
	t.Parallel()

	t.Run("counts hyphenated terms as single words", func(t *testing.T) {
		t.Parallel()

		stats := AnalyzeAbstract("We evaluate state-of-the-art models. Results improve.")
		if stats.TotalWords != 6 {
			t.Errorf("expected 6 words, got %d", stats.TotalWords)
		}
		if stats.TotalSentences != 2 {
			t.Errorf("expected 2 sentences, got %d", stats.TotalSentences)
		}
	})

	t.Run("unique words are case-insensitive", func(t *testing.T) {
		t.Parallel()

		stats := AnalyzeAbstract("Model model MODEL.")
		if stats.TotalWords != 3 {
			t.Errorf("expected 3 words, got %d", stats.TotalWords)
		}
		if stats.UniqueWords != 1 {
			t.Errorf("expected 1 unique word, got %d", stats.UniqueWords)
		}
	})

	t.Run("averages are rounded to three decimals", func(t *testing.T) {
		t.Parallel()

		// Tokens ab, abc: 5 chars over 2 words = 2.5.
		stats := AnalyzeAbstract("ab abc.")
		if stats.AvgWordLength != 2.5 {
			t.Errorf("expected 2.5, got %f", stats.AvgWordLength)
		}
		if stats.AvgWordsPerSentence != 2.0 {
			t.Errorf("expected 2.0, got %f", stats.AvgWordsPerSentence)
		}
	})

	t.Run("empty abstract yields zeros", func(t *testing.T) {
		t.Parallel()

		stats := AnalyzeAbstract("")
		if stats.TotalWords != 0 || stats.TotalSentences != 0 {
			t.Errorf("expected zero counts, got %+v", stats)
		}
		if stats.AvgWordsPerSentence != 0 || stats.AvgWordLength != 0 {
			t.Errorf("expected zero averages, got %+v", stats)
		}
	})
}

// TestBuildAnalysis tests corpus-wide aggregation.
func TestBuildAnalysis(t *testing.T) {
	t.Parallel()

	papers := []model.Paper{
		{
			ArxivID:    "1",
			Title:      "First",
			Authors:    []string{"A"},
			Abstract:   "Neural networks learn representations. Neural models use GPU-based training with 10 layers.",
			Categories: []string{"cs.LG"},
		},
		{
			ArxivID:    "2",
			Title:      "Second",
			Authors:    []string{"B"},
			Abstract:   "Neural architectures scale.",
			Categories: []string{"cs.LG", "cs.CL"},
		},
	}

	analysis := BuildAnalysis("cat:cs.LG", papers)

	t.Run("fills paper statistics in place", func(t *testing.T) {
		t.Parallel()
		if papers[0].AbstractStats.TotalWords == 0 {
			t.Error("expected abstract stats to be filled")
		}
	})

	t.Run("corpus stats", func(t *testing.T) {
		t.Parallel()

		cs := analysis.CorpusStats
		if cs.TotalAbstracts != 2 {
			t.Errorf("expected 2 abstracts, got %d", cs.TotalAbstracts)
		}
		if cs.TotalWords != papers[0].AbstractStats.TotalWords+papers[1].AbstractStats.TotalWords {
			t.Errorf("total words mismatch: %d", cs.TotalWords)
		}
		if cs.LongestAbstractWords < cs.ShortestAbstractWords {
			t.Errorf("longest %d < shortest %d", cs.LongestAbstractWords, cs.ShortestAbstractWords)
		}
	})

	t.Run("top words exclude stopwords and carry document counts", func(t *testing.T) {
		t.Parallel()

		if len(analysis.TopWords) == 0 {
			t.Fatal("expected top words")
		}
		if analysis.TopWords[0].Word != "neural" {
			t.Errorf("expected 'neural' first, got %q", analysis.TopWords[0].Word)
		}
		if analysis.TopWords[0].Frequency != 3 {
			t.Errorf("expected frequency 3, got %d", analysis.TopWords[0].Frequency)
		}
		if analysis.TopWords[0].Documents != 2 {
			t.Errorf("expected 2 documents, got %d", analysis.TopWords[0].Documents)
		}
		for _, w := range analysis.TopWords {
			if IsStopword(w.Word) {
				t.Errorf("stopword %q in frequency table", w.Word)
			}
		}
	})

	t.Run("technical terms", func(t *testing.T) {
		t.Parallel()

		terms := analysis.TechnicalTerms
		if !contains(terms.UppercaseTerms, "GPU-based") {
			t.Errorf("expected GPU-based in uppercase terms, got %v", terms.UppercaseTerms)
		}
		if !contains(terms.NumericTerms, "10") {
			t.Errorf("expected 10 in numeric terms, got %v", terms.NumericTerms)
		}
		if !contains(terms.HyphenatedTerms, "GPU-based") {
			t.Errorf("expected GPU-based in hyphenated terms, got %v", terms.HyphenatedTerms)
		}
	})

	t.Run("category distribution", func(t *testing.T) {
		t.Parallel()

		if analysis.CategoryDistribution["cs.LG"] != 2 {
			t.Errorf("expected cs.LG count 2, got %d", analysis.CategoryDistribution["cs.LG"])
		}
		if analysis.CategoryDistribution["cs.CL"] != 1 {
			t.Errorf("expected cs.CL count 1, got %d", analysis.CategoryDistribution["cs.CL"])
		}
	})

	t.Run("empty corpus yields zeros", func(t *testing.T) {
		t.Parallel()

		empty := BuildAnalysis("q", nil)
		if empty.PapersProcessed != 0 {
			t.Errorf("expected 0 papers, got %d", empty.PapersProcessed)
		}
		if empty.CorpusStats.AvgAbstractLength != 0 {
			t.Errorf("expected 0 average, got %f", empty.CorpusStats.AvgAbstractLength)
		}
		if empty.TopWords == nil {
			t.Error("expected non-nil top words")
		}
	})
}

// contains reports whether s contains v.
func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
