package config

import "time"

// File represents the structure of the .corpuscan configuration file.
// Every field is optional; zero values leave the corresponding Config
// field untouched so the file only has to name what it overrides.
type File struct {
	// SharedDir overrides the shared filesystem root.
	SharedDir string `yaml:"sharedDir,omitempty"`

	// PollInterval overrides the marker polling interval.
	PollInterval time.Duration `yaml:"pollInterval,omitempty"`

	// LingerDuration overrides the analyzer keep-alive window.
	// Distinguishing "absent" from an explicit 0 requires a pointer,
	// since 0 is a meaningful setting (exit immediately).
	LingerDuration *time.Duration `yaml:"lingerDuration,omitempty"`

	// RawExtension overrides the recognized raw file extension.
	RawExtension string `yaml:"rawExtension,omitempty"`

	// TopWords overrides the frequency table size.
	TopWords int `yaml:"topWords,omitempty"`

	// TopNgrams overrides the n-gram table sizes.
	TopNgrams int `yaml:"topNgrams,omitempty"`

	// Fetch holds fetch-utility overrides.
	Fetch FetchFile `yaml:"fetch,omitempty"`

	// Arxiv holds arxiv-utility overrides.
	Arxiv ArxivFile `yaml:"arxiv,omitempty"`
}

// FetchFile holds the fetch-utility section of the config file.
type FetchFile struct {
	// Timeout overrides the per-request timeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Concurrency overrides the parallel fetch limit.
	Concurrency int `yaml:"concurrency,omitempty"`

	// UserAgent overrides the HTTP User-Agent header.
	UserAgent string `yaml:"userAgent,omitempty"`
}

// ArxivFile holds the arxiv-utility section of the config file.
type ArxivFile struct {
	// BaseURL overrides the Atom API endpoint.
	BaseURL string `yaml:"baseURL,omitempty"`

	// Retries overrides the retry budget.
	Retries int `yaml:"retries,omitempty"`

	// Backoff overrides the retry delay.
	Backoff time.Duration `yaml:"backoff,omitempty"`
}

// ApplyTo copies the file's non-zero settings onto cfg.
func (f *File) ApplyTo(cfg *Config) {
	if f.SharedDir != "" {
		cfg.SharedDir = f.SharedDir
	}
	if f.PollInterval > 0 {
		cfg.PollInterval = f.PollInterval
	}
	if f.LingerDuration != nil && *f.LingerDuration >= 0 {
		cfg.LingerDuration = *f.LingerDuration
	}
	if f.RawExtension != "" {
		cfg.RawExtension = f.RawExtension
	}
	if f.TopWords > 0 {
		cfg.TopWords = f.TopWords
	}
	if f.TopNgrams > 0 {
		cfg.TopNgrams = f.TopNgrams
	}
	if f.Fetch.Timeout > 0 {
		cfg.FetchTimeout = f.Fetch.Timeout
	}
	if f.Fetch.Concurrency > 0 {
		cfg.FetchConcurrency = f.Fetch.Concurrency
	}
	if f.Fetch.UserAgent != "" {
		cfg.UserAgent = f.Fetch.UserAgent
	}
	if f.Arxiv.BaseURL != "" {
		cfg.ArxivBaseURL = f.Arxiv.BaseURL
	}
	if f.Arxiv.Retries > 0 {
		cfg.ArxivRetries = f.Arxiv.Retries
	}
	if f.Arxiv.Backoff > 0 {
		cfg.ArxivBackoff = f.Arxiv.Backoff
	}
}
