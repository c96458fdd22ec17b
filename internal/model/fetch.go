package model

import (
	"strconv"
	"time"
)

// FetchResult records the outcome of fetching a single URL.
// Failures are recorded in Error rather than aborting the batch;
// a result exists for every input URL.
type FetchResult struct {
	// URL is the requested URL.
	URL string `json:"url"`

	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int `json:"status_code"`

	// ResponseTimeMS is the wall-clock request duration in milliseconds.
	ResponseTimeMS float64 `json:"response_time_ms"`

	// ContentLength is the number of body bytes read.
	ContentLength int `json:"content_length"`

	// WordCount is the number of words in the decoded body.
	// It is meaningful only when TextResponse is true.
	WordCount int `json:"word_count"`

	// TextResponse reports whether the response Content-Type was textual.
	TextResponse bool `json:"text_response"`

	// Timestamp is when the request was started.
	Timestamp time.Time `json:"timestamp"`

	// Error describes a request or decoding failure, empty on success.
	Error string `json:"error,omitempty"`
}

// Failed reports whether the fetch ended in an error.
func (r *FetchResult) Failed() bool {
	return r.Error != ""
}

// FetchSummary aggregates a batch of fetch results.
type FetchSummary struct {
	// TotalURLs is the number of URLs in the batch.
	TotalURLs int `json:"total_urls"`

	// SuccessfulRequests is the number of results without an error.
	SuccessfulRequests int `json:"successful_requests"`

	// FailedRequests is the number of results with an error.
	FailedRequests int `json:"failed_requests"`

	// AverageResponseTimeMS is the mean request duration,
	// 0.0 for an empty batch.
	AverageResponseTimeMS float64 `json:"average_response_time_ms"`

	// TotalBytesDownloaded is the sum of all body byte counts.
	TotalBytesDownloaded int `json:"total_bytes_downloaded"`

	// StatusCodeDistribution counts results per HTTP status code.
	// Keys are the decimal status codes; responseless failures are
	// not counted.
	StatusCodeDistribution map[string]int `json:"status_code_distribution"`

	// ProcessingStart is when the batch began.
	ProcessingStart time.Time `json:"processing_start"`

	// ProcessingEnd is when the batch finished.
	ProcessingEnd time.Time `json:"processing_end"`
}

// NewFetchSummary aggregates results into a summary for the given window.
func NewFetchSummary(results []*FetchResult, start, end time.Time) *FetchSummary {
	s := &FetchSummary{
		TotalURLs:              len(results),
		StatusCodeDistribution: make(map[string]int),
		ProcessingStart:        start,
		ProcessingEnd:          end,
	}

	var totalMS float64
	for _, r := range results {
		if r.Failed() {
			s.FailedRequests++
		} else {
			s.SuccessfulRequests++
		}
		totalMS += r.ResponseTimeMS
		s.TotalBytesDownloaded += r.ContentLength
		if r.StatusCode != 0 {
			s.StatusCodeDistribution[strconv.Itoa(r.StatusCode)]++
		}
	}
	if len(results) > 0 {
		s.AverageResponseTimeMS = totalMS / float64(len(results))
	}
	return s
}
