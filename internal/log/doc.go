// Package log provides logger construction for corpuscan, built on top of
// the standard slog package.
//
// Two conventions are enforced here so every stage logs the same way:
//   - Level is Warn by default and Debug in verbose mode
//   - Every record carries a "stage" attribute identifying the pipeline
//     stage that emitted it, added by StageHandler
//
// The stage attribute matters because the processor and analyzer may run as
// separate processes writing to the same collected log stream; without it,
// interleaved records are hard to attribute.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(log.WithStage(logger, "processor"))
package log
