// Package processor implements the document processing stage.
//
// The stage moves through WAITING_FOR_SOURCE, PROCESSING, and DONE. It
// blocks until the upstream fetch marker exists, converts each raw HTML
// document into a normalized record, and signals completion by writing its
// own marker strictly after the last record. A single unreadable document
// never aborts the batch; it is logged and skipped.
//
// Ordering is the correctness contract of this package: the completion
// marker must never be observable while any record it counts is missing.
package processor
