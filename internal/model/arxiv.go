package model

import "time"

// AbstractStats holds per-abstract text statistics for one paper.
type AbstractStats struct {
	// TotalWords is the token count of the abstract.
	TotalWords int `json:"total_words"`

	// UniqueWords is the number of distinct lower-cased tokens.
	UniqueWords int `json:"unique_words"`

	// TotalSentences is the sentence count of the abstract.
	TotalSentences int `json:"total_sentences"`

	// AvgWordsPerSentence is the mean token count per sentence,
	// 0.0 when the abstract has no sentences.
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`

	// AvgWordLength is the mean character length of the tokens,
	// 0.0 when the abstract has no words.
	AvgWordLength float64 `json:"avg_word_length"`
}

// Paper is one ArXiv entry with its computed abstract statistics.
// Entries missing an ID, title, abstract, or authors are skipped during
// parsing and never become a Paper.
type Paper struct {
	// ArxivID is the entry identifier without the URL prefix.
	ArxivID string `json:"arxiv_id"`

	// Title is the paper title.
	Title string `json:"title"`

	// Authors are the author names in feed order.
	Authors []string `json:"authors"`

	// Abstract is the paper summary text.
	Abstract string `json:"abstract"`

	// Categories are the category terms in feed order.
	Categories []string `json:"categories"`

	// Published is the feed's published timestamp, verbatim.
	Published string `json:"published"`

	// Updated is the feed's updated timestamp, verbatim.
	Updated string `json:"updated"`

	// AbstractStats holds the computed statistics for Abstract.
	AbstractStats AbstractStats `json:"abstract_stats"`
}

// CorpusStats aggregates abstract-level statistics across a query result.
type CorpusStats struct {
	// TotalAbstracts is the number of papers analyzed.
	TotalAbstracts int `json:"total_abstracts"`

	// TotalWords is the token count summed over all abstracts.
	TotalWords int `json:"total_words"`

	// UniqueWordsGlobal is the number of distinct lower-cased tokens
	// across all abstracts.
	UniqueWordsGlobal int `json:"unique_words_global"`

	// AvgAbstractLength is the mean abstract token count.
	AvgAbstractLength float64 `json:"avg_abstract_length"`

	// LongestAbstractWords is the largest abstract token count.
	LongestAbstractWords int `json:"longest_abstract_words"`

	// ShortestAbstractWords is the smallest abstract token count.
	ShortestAbstractWords int `json:"shortest_abstract_words"`
}

// WordDocFrequency is one entry of the stopword-filtered corpus frequency
// table, carrying both the raw count and the document frequency.
type WordDocFrequency struct {
	// Word is the lower-cased token.
	Word string `json:"word"`

	// Frequency is the number of occurrences across all abstracts.
	Frequency int `json:"frequency"`

	// Documents is the number of abstracts containing the token.
	Documents int `json:"documents"`
}

// TechnicalTerms groups tokens with technical-looking shapes,
// each list sorted and deduplicated.
type TechnicalTerms struct {
	// UppercaseTerms are tokens containing an upper-case letter.
	UppercaseTerms []string `json:"uppercase_terms"`

	// NumericTerms are tokens containing a digit.
	NumericTerms []string `json:"numeric_terms"`

	// HyphenatedTerms are tokens containing a hyphen.
	HyphenatedTerms []string `json:"hyphenated_terms"`
}

// CorpusAnalysis is the aggregate output of one ArXiv query.
type CorpusAnalysis struct {
	// Query is the search query that produced this analysis.
	Query string `json:"query"`

	// PapersProcessed is the number of papers analyzed.
	PapersProcessed int `json:"papers_processed"`

	// ProcessingTimestamp is when the analysis completed.
	ProcessingTimestamp time.Time `json:"processing_timestamp"`

	// CorpusStats holds the aggregate abstract statistics.
	CorpusStats CorpusStats `json:"corpus_stats"`

	// TopWords is the stopword-filtered frequency table, count descending.
	TopWords []WordDocFrequency `json:"top_50_words"`

	// TechnicalTerms groups technical-looking tokens.
	TechnicalTerms TechnicalTerms `json:"technical_terms"`

	// CategoryDistribution counts papers per category term.
	CategoryDistribution map[string]int `json:"category_distribution"`
}
