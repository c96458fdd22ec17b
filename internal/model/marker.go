package model

import "time"

// Completion markers are the synchronization primitive between pipeline
// stages. A stage writes its marker only after every record it describes is
// durably on disk; a downstream stage transitions on marker existence alone
// and never inspects marker content before proceeding.
//
// Design decision: Markers carry a small amount of metadata (timestamp,
// counts) even though only their existence is load-bearing. The metadata
// costs nothing and makes manual inspection of a stalled pipeline possible
// without extra tooling.

// FetchMarker signals that the upstream fetch stage has populated the raw
// input area. The processor only checks that this file exists.
type FetchMarker struct {
	// Timestamp is when the fetch batch completed.
	Timestamp time.Time `json:"timestamp"`

	// FilesSaved is the number of raw documents written, when known.
	FilesSaved int `json:"files_saved"`
}

// ProcessMarker signals that the processor has written every
// ProcessedRecord for its batch. Its existence gates the analyzer.
type ProcessMarker struct {
	// Timestamp is when the processing batch completed.
	Timestamp time.Time `json:"timestamp"`

	// FilesProcessed is the number of records written for the batch.
	FilesProcessed int `json:"files_processed"`
}

// AnalysisMarker signals that the analyzer has written its report.
// Nothing downstream consumes its content in this system.
type AnalysisMarker struct {
	// Timestamp is when the analysis completed.
	Timestamp time.Time `json:"timestamp"`
}
