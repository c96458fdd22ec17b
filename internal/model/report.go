package model

import "time"

// WordFrequency is one entry of the global frequency table.
type WordFrequency struct {
	// Word is the lower-cased token.
	Word string `json:"word"`

	// Count is the number of occurrences across the corpus.
	Count int `json:"count"`

	// Frequency is Count divided by the total token count,
	// 0.0 for an empty corpus.
	Frequency float64 `json:"frequency"`
}

// DocumentSimilarity is the Jaccard similarity of one unordered document
// pair. Only pairs with Doc1 sorted before Doc2 appear in a report;
// self-similarity is never computed.
type DocumentSimilarity struct {
	// Doc1 is the record file name of the first document.
	Doc1 string `json:"doc1"`

	// Doc2 is the record file name of the second document.
	Doc2 string `json:"doc2"`

	// Similarity is |intersection| / |union| of the two token sets,
	// 0.0 when both sets are empty.
	Similarity float64 `json:"similarity"`
}

// BigramCount is one entry of the corpus-wide bigram table.
type BigramCount struct {
	// Bigram is the space-joined two-token sequence.
	Bigram string `json:"bigram"`

	// Count is the number of occurrences across the corpus.
	Count int `json:"count"`
}

// TrigramCount is one entry of the corpus-wide trigram table.
type TrigramCount struct {
	// Trigram is the space-joined three-token sequence.
	Trigram string `json:"trigram"`

	// Count is the number of occurrences across the corpus.
	Count int `json:"count"`
}

// Readability holds the three corpus-level readability scalars.
// All values are guarded to 0.0 when their denominator is zero, so a
// serialized report never contains NaN or Infinity.
type Readability struct {
	// AvgSentenceLength is the mean token count of all sentences
	// across all documents.
	AvgSentenceLength float64 `json:"avg_sentence_length"`

	// AvgWordLength is the mean character length of all tokens.
	AvgWordLength float64 `json:"avg_word_length"`

	// ComplexityScore is the unique-token count divided by the total
	// token count (lexical diversity).
	ComplexityScore float64 `json:"complexity_score"`
}

// CorpusReport is the single aggregate analytics object produced by the
// analyzer from the complete set of processed records. The field order
// matches the on-disk JSON key order.
type CorpusReport struct {
	// ProcessingTimestamp is when the analysis completed.
	ProcessingTimestamp time.Time `json:"processing_timestamp"`

	// DocumentsProcessed is the number of records that were loaded.
	DocumentsProcessed int `json:"documents_processed"`

	// TotalWords is the total token count across the corpus.
	TotalWords int `json:"total_words"`

	// UniqueWords is the number of distinct lower-cased tokens.
	UniqueWords int `json:"unique_words"`

	// TopWords is the global frequency table, count descending.
	// Equal counts keep first-occurrence order; this tie-break is an
	// accepted property of the counting structure, not a guarantee.
	TopWords []WordFrequency `json:"top_100_words"`

	// DocumentSimilarity is the upper triangle of the pairwise
	// similarity matrix, in document iteration order.
	DocumentSimilarity []DocumentSimilarity `json:"document_similarity"`

	// TopBigrams is the corpus bigram table, count descending.
	TopBigrams []BigramCount `json:"top_bigrams"`

	// TopTrigrams is the corpus trigram table, count descending.
	TopTrigrams []TrigramCount `json:"top_trigrams"`

	// Readability holds the corpus readability scalars.
	Readability Readability `json:"readability"`
}

// NewCorpusReport returns a report with every table initialized to an
// empty slice so an empty corpus still serializes with all keys present.
func NewCorpusReport() *CorpusReport {
	return &CorpusReport{
		ProcessingTimestamp: time.Now().UTC(),
		TopWords:            make([]WordFrequency, 0),
		DocumentSimilarity:  make([]DocumentSimilarity, 0),
		TopBigrams:          make([]BigramCount, 0),
		TopTrigrams:         make([]TrigramCount, 0),
	}
}
