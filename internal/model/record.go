package model

import "time"

// TextStatistics holds the structural statistics computed for a single
// document during processing. All counters are zero or positive;
// AvgWordLength is 0.0 when the document has no words.
type TextStatistics struct {
	// WordCount is the number of maximal alphanumeric runs in the text.
	WordCount int `json:"word_count"`

	// SentenceCount is the number of non-blank fragments after splitting
	// the text on '.', '!' and '?'.
	SentenceCount int `json:"sentence_count"`

	// ParagraphCount is the number of non-blank fragments after splitting
	// the text on runs of newlines.
	ParagraphCount int `json:"paragraph_count"`

	// AvgWordLength is the mean character length of the words,
	// guarded to 0.0 for empty documents.
	AvgWordLength float64 `json:"avg_word_length"`
}

// ProcessedRecord is the normalized output for one raw document.
// One record is written per input file, keyed by the input file name
// with its extension replaced by ".json".
//
// The field order matches the on-disk JSON key order expected by the
// analyzer and by external consumers of the processed area.
type ProcessedRecord struct {
	// SourceID is the stable key linking back to the raw document,
	// typically the raw file name.
	SourceID string `json:"source_id"`

	// Text is the extracted plain-text body. It may be empty but is
	// never absent from the serialized record.
	Text string `json:"text"`

	// Statistics holds the structural statistics of Text.
	Statistics TextStatistics `json:"statistics"`

	// Links are the href attribute values found in the source markup,
	// in document order with duplicates preserved.
	Links []string `json:"links"`

	// Images are the src attribute values found in the source markup,
	// in document order with duplicates preserved.
	Images []string `json:"images"`

	// ProcessedAt is the record creation timestamp.
	ProcessedAt time.Time `json:"processed_at"`
}
