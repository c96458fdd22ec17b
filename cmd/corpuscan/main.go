// Package main provides the entry point for the corpuscan CLI.
//
// Corpuscan is a batch text-corpus pipeline. Independent stages hand work
// to each other through a shared filesystem area: a processor turns raw
// HTML documents into normalized records, and an analyzer aggregates the
// records into a single corpus report. Completion markers, not sockets,
// synchronize the stages.
//
// Usage:
//
//	corpuscan process --shared /shared
//	corpuscan analyze --shared /shared
//	corpuscan run --shared /shared
//
// See --help for all available options.
package main

// main is the entry point for corpuscan.
func main() {
	Execute()
}
