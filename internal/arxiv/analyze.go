package arxiv

import (
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/corpuscan/corpuscan/internal/model"
	"github.com/corpuscan/corpuscan/internal/textutil"
)

// topWordCount is the size of the corpus frequency table.
const topWordCount = 50

// AnalyzeAbstract computes the statistics block for one abstract.
// Hyphenated tokens count as single words so "state-of-the-art" is one
// term, not four.
func AnalyzeAbstract(abstract string) model.AbstractStats {
	words := textutil.HyphenWords(abstract)
	sentences := textutil.Sentences(abstract)

	stats := model.AbstractStats{
		TotalWords:     len(words),
		TotalSentences: len(sentences),
	}

	unique := make(map[string]struct{}, len(words))
	chars := 0
	for _, w := range words {
		unique[strings.ToLower(w)] = struct{}{}
		chars += len(w)
	}
	stats.UniqueWords = len(unique)

	if len(sentences) > 0 {
		tokens := 0
		for _, s := range sentences {
			tokens += len(textutil.HyphenWords(s))
		}
		stats.AvgWordsPerSentence = round3(float64(tokens) / float64(len(sentences)))
	}
	if len(words) > 0 {
		stats.AvgWordLength = round3(float64(chars) / float64(len(words)))
	}
	return stats
}

// BuildAnalysis fills in each paper's abstract statistics and aggregates
// the corpus-wide analysis for the query.
func BuildAnalysis(query string, papers []model.Paper) *model.CorpusAnalysis {
	freq := textutil.NewCounter()
	docCount := make(map[string]int)
	uniqueGlobal := make(map[string]struct{})
	uppercase := make(map[string]struct{})
	numeric := make(map[string]struct{})
	hyphenated := make(map[string]struct{})
	categoryDist := make(map[string]int)

	totalWords := 0
	longest, shortest := 0, 0

	for i := range papers {
		p := &papers[i]
		p.AbstractStats = AnalyzeAbstract(p.Abstract)

		words := textutil.HyphenWords(p.Abstract)
		seen := make(map[string]struct{}, len(words))
		for _, w := range words {
			lower := strings.ToLower(w)
			freq.Add(lower)
			uniqueGlobal[lower] = struct{}{}
			if _, ok := seen[lower]; !ok {
				seen[lower] = struct{}{}
				docCount[lower]++
			}

			if strings.IndexFunc(w, unicode.IsUpper) >= 0 {
				uppercase[w] = struct{}{}
			}
			if strings.IndexFunc(w, unicode.IsDigit) >= 0 {
				numeric[w] = struct{}{}
			}
			if strings.Contains(w, "-") {
				hyphenated[w] = struct{}{}
			}
		}

		totalWords += p.AbstractStats.TotalWords
		if i == 0 || p.AbstractStats.TotalWords > longest {
			longest = p.AbstractStats.TotalWords
		}
		if i == 0 || p.AbstractStats.TotalWords < shortest {
			shortest = p.AbstractStats.TotalWords
		}

		for _, c := range p.Categories {
			categoryDist[c]++
		}
	}

	analysis := &model.CorpusAnalysis{
		Query:               query,
		PapersProcessed:     len(papers),
		ProcessingTimestamp: time.Now().UTC(),
		CorpusStats: model.CorpusStats{
			TotalAbstracts:        len(papers),
			TotalWords:            totalWords,
			UniqueWordsGlobal:     len(uniqueGlobal),
			LongestAbstractWords:  longest,
			ShortestAbstractWords: shortest,
		},
		TopWords: make([]model.WordDocFrequency, 0, topWordCount),
		TechnicalTerms: model.TechnicalTerms{
			UppercaseTerms:  sortedKeys(uppercase),
			NumericTerms:    sortedKeys(numeric),
			HyphenatedTerms: sortedKeys(hyphenated),
		},
		CategoryDistribution: categoryDist,
	}

	if len(papers) > 0 {
		analysis.CorpusStats.AvgAbstractLength = round3(float64(totalWords) / float64(len(papers)))
	}

	// Stopwords are filtered after ranking so the table holds the top
	// content words of the corpus.
	for _, e := range freq.MostCommon(-1) {
		if IsStopword(e.Key) {
			continue
		}
		analysis.TopWords = append(analysis.TopWords, model.WordDocFrequency{
			Word:      e.Key,
			Frequency: e.Count,
			Documents: docCount[e.Key],
		})
		if len(analysis.TopWords) == topWordCount {
			break
		}
	}

	return analysis
}

// sortedKeys returns the keys of set in lexical order.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// round3 rounds to three decimal places, matching the precision of the
// serialized statistics.
func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
