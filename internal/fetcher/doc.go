// Package fetcher implements the batch URL fetch utility.
//
// The fetcher requests a list of URLs, records per-URL metrics (status,
// latency, size, word count) and writes a results file, a summary file and
// an error log. It can additionally seed the shared pipeline area: textual
// bodies are saved as raw documents and the fetch completion marker is
// written last, which starts the processor stage.
package fetcher
