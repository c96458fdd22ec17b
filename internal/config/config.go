package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The durations mirror the behavior of the original batch pipeline:
// a 2 second marker poll and a 600 second post-report linger window.
const (
	// DefaultSharedDir is the root of the shared filesystem area that
	// carries the wire contract between pipeline stages.
	DefaultSharedDir = "/shared"

	// DefaultPollInterval is the delay between marker existence checks.
	DefaultPollInterval = 2 * time.Second

	// DefaultLingerDuration is how long the analyzer stays alive after
	// writing its report so an external monitor can observe completion.
	// This is not part of the correctness contract; 0 exits immediately.
	DefaultLingerDuration = 600 * time.Second

	// DefaultRawExtension is the file extension recognized in the raw
	// input area. Files with other extensions are ignored.
	DefaultRawExtension = ".html"

	// DefaultTopWords is the size of the global frequency table.
	DefaultTopWords = 100

	// DefaultTopNgrams is the size of the bigram and trigram tables.
	DefaultTopNgrams = 20

	// DefaultFetchTimeout bounds each HTTP request in the fetch utility.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultFetchConcurrency is the number of parallel fetches.
	// The original tool fetched sequentially; a small parallel limit
	// keeps result ordering while shortening large batches.
	DefaultFetchConcurrency = 4

	// DefaultUserAgent identifies corpuscan in HTTP requests.
	DefaultUserAgent = "corpuscan/1.0 (+https://github.com/corpuscan/corpuscan)"

	// DefaultArxivBaseURL is the ArXiv Atom API endpoint.
	DefaultArxivBaseURL = "http://export.arxiv.org/api/query"

	// DefaultArxivRetries is how many times a failed ArXiv request is
	// retried before giving up.
	DefaultArxivRetries = 3

	// DefaultArxivBackoff is the delay before an ArXiv retry, also used
	// when the API answers 429.
	DefaultArxivBackoff = 3 * time.Second

	// AppName is the application name used for XDG directory paths.
	AppName = "corpuscan"
)

// Shared-area file names. These are the wire contract between stages;
// renaming any of them breaks hand-off with independently built stages.
const (
	rawDirName      = "raw"
	processedDir    = "processed"
	analysisDirName = "analysis"
	statusDirName   = "status"

	fetchMarkerName    = "fetch_complete.json"
	processMarkerName  = "process_complete.json"
	analysisMarkerName = "analysis_complete.json"
	reportFileName     = "final_report.json"
)

// Config holds all configuration options for corpuscan.
// This struct is populated from defaults, the optional config file, and CLI
// flags, then passed through the application via dependency injection.
//
// Design decision: We use a single flat struct instead of nested sub-structs
// per stage. The number of options is manageable, and nesting would add
// complexity without significant benefit.
type Config struct {
	// SharedDir is the root of the shared filesystem area.
	SharedDir string

	// PollInterval is the marker polling interval for both stages.
	PollInterval time.Duration

	// LingerDuration bounds the analyzer's post-report keep-alive window.
	LingerDuration time.Duration

	// RawExtension is the recognized extension in the raw input area.
	RawExtension string

	// TopWords is the number of entries in the frequency table.
	TopWords int

	// TopNgrams is the number of entries in the n-gram tables.
	TopNgrams int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// MarkdownReport additionally writes a Markdown summary of the
	// corpus report next to the JSON report.
	MarkdownReport bool

	// DBDir is the directory for the report history SQLite database.
	// When empty, reports are not persisted to the database.
	DBDir string

	// SaveToDB indicates whether analyzer runs are stored in the
	// history database. Set automatically when DBDir is configured.
	SaveToDB bool

	// FetchTimeout bounds each HTTP request in the fetch utility.
	FetchTimeout time.Duration

	// FetchConcurrency is the number of parallel fetches.
	FetchConcurrency int

	// UserAgent is sent with all outgoing HTTP requests.
	UserAgent string

	// ArxivBaseURL is the ArXiv Atom API endpoint, overridable in tests.
	ArxivBaseURL string

	// ArxivRetries is the retry budget for ArXiv requests.
	ArxivRetries int

	// ArxivBackoff is the delay between ArXiv retries.
	ArxivBackoff time.Duration

	// ConfigFilePath is an explicit config file path. If empty, the tool
	// searches for .corpuscan in the current and then the home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on zero
// values because most defaults are non-zero (intervals, table sizes). It
// also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		SharedDir:        DefaultSharedDir,
		PollInterval:     DefaultPollInterval,
		LingerDuration:   DefaultLingerDuration,
		RawExtension:     DefaultRawExtension,
		TopWords:         DefaultTopWords,
		TopNgrams:        DefaultTopNgrams,
		FetchTimeout:     DefaultFetchTimeout,
		FetchConcurrency: DefaultFetchConcurrency,
		UserAgent:        DefaultUserAgent,
		ArxivBaseURL:     DefaultArxivBaseURL,
		ArxivRetries:     DefaultArxivRetries,
		ArxivBackoff:     DefaultArxivBackoff,
	}
}

// RawDir returns the raw input area path.
func (c *Config) RawDir() string {
	return filepath.Join(c.SharedDir, rawDirName)
}

// ProcessedDir returns the processed record area path.
func (c *Config) ProcessedDir() string {
	return filepath.Join(c.SharedDir, processedDir)
}

// AnalysisDir returns the analysis output area path.
func (c *Config) AnalysisDir() string {
	return filepath.Join(c.SharedDir, analysisDirName)
}

// StatusDir returns the status (marker) area path.
func (c *Config) StatusDir() string {
	return filepath.Join(c.SharedDir, statusDirName)
}

// FetchMarkerPath returns the upstream readiness marker path.
func (c *Config) FetchMarkerPath() string {
	return filepath.Join(c.StatusDir(), fetchMarkerName)
}

// ProcessMarkerPath returns the processor completion marker path.
func (c *Config) ProcessMarkerPath() string {
	return filepath.Join(c.StatusDir(), processMarkerName)
}

// AnalysisMarkerPath returns the analyzer completion marker path.
func (c *Config) AnalysisMarkerPath() string {
	return filepath.Join(c.StatusDir(), analysisMarkerName)
}

// ReportPath returns the corpus report path.
func (c *Config) ReportPath() string {
	return filepath.Join(c.AnalysisDir(), reportFileName)
}

// XDGDataDir returns the XDG data directory for corpuscan.
// On Linux: ~/.local/share/corpuscan
// On macOS: ~/Library/Application Support/corpuscan
// On Windows: %LOCALAPPDATA%\corpuscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast with a clear message before any marker polling
// begins. The first error found is returned because fixing one error often
// makes others irrelevant.
func (c *Config) Validate() error {
	if c.SharedDir == "" {
		return ErrNoSharedDir
	}
	if c.PollInterval <= 0 {
		return ErrInvalidPollInterval
	}
	if c.LingerDuration < 0 {
		return ErrInvalidLingerDuration
	}
	if c.TopWords <= 0 || c.TopNgrams <= 0 {
		return ErrInvalidTableSize
	}
	if c.FetchTimeout <= 0 {
		return ErrInvalidFetchTimeout
	}
	if c.FetchConcurrency <= 0 {
		return ErrInvalidFetchConcurrency
	}
	if c.ArxivRetries < 0 {
		return ErrInvalidRetries
	}
	return nil
}
