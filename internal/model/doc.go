// Package model defines the core data structures used throughout corpuscan.
//
// This package contains the following main types:
//   - ProcessedRecord: Normalized per-document output of the processor stage
//   - ProcessMarker / AnalysisMarker / FetchMarker: Completion markers that
//     gate stage hand-off on the shared filesystem
//   - CorpusReport: The aggregate analytics report produced by the analyzer
//   - FetchResult / FetchSummary: Output of the fetch utility
//   - Paper / CorpusAnalysis: Output of the arxiv utility
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (processor, analyzer, report, database) need
// to use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON; the JSON field names
// and their order are the wire contract between the pipeline stages.
package model
