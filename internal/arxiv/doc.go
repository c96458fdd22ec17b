// Package arxiv implements the ArXiv abstract corpus utility.
//
// It queries the ArXiv Atom API, validates and parses the returned
// entries, computes per-abstract and corpus-wide text statistics and
// writes papers.json plus corpus_analysis.json into an output directory.
// HTTP 429 responses and transient network errors are retried with a
// fixed backoff before the run is abandoned.
package arxiv
