// Package report provides output writers for corpus analysis reports.
//
// Three formats are supported:
//   - JSON: the wire format consumed by downstream tooling, pretty-printed
//     for human inspection and reproducible diffs
//   - Markdown: a document summary with tables, for sharing
//   - Text: a terse terminal summary
//
// All writers implement the Writer interface; MultiWriter fans a report
// out to several destinations at once.
package report
