package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoSharedDir is returned when the shared directory is empty.
	// Every stage needs the shared area; there is no in-memory fallback.
	ErrNoSharedDir = errors.New("no shared directory specified")

	// ErrInvalidPollInterval is returned when the poll interval is not
	// positive. A zero interval would busy-spin on marker checks.
	ErrInvalidPollInterval = errors.New("invalid poll interval: must be positive")

	// ErrInvalidLingerDuration is returned when the linger duration is
	// negative. Zero is valid and means exit immediately after reporting.
	ErrInvalidLingerDuration = errors.New("invalid linger duration: must be non-negative")

	// ErrInvalidTableSize is returned when a top-K table size is not
	// positive. A zero-sized table would produce empty reports.
	ErrInvalidTableSize = errors.New("invalid table size: top words and n-grams must be positive")

	// ErrInvalidFetchTimeout is returned when the fetch timeout is not
	// positive. A zero timeout would fail every request immediately.
	ErrInvalidFetchTimeout = errors.New("invalid fetch timeout: must be positive")

	// ErrInvalidFetchConcurrency is returned when the fetch concurrency
	// is not positive. Zero would mean no fetching at all.
	ErrInvalidFetchConcurrency = errors.New("invalid fetch concurrency: must be positive")

	// ErrInvalidRetries is returned when the retry budget is negative.
	// Use 0 to disable retries.
	ErrInvalidRetries = errors.New("invalid retries: must be non-negative")
)
