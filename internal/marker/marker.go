package marker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultPollInterval is the fixed delay between existence checks while
// waiting for a marker. Two seconds trades a little detection latency for
// negligible load; batch turnaround is measured in document-processing
// time, not polling time.
const DefaultPollInterval = 2 * time.Second

// Write serializes v as pretty-printed JSON and places it at path
// atomically. The parent directory is created if needed.
//
// The temp-and-rename dance guarantees the all-or-nothing property of the
// protocol: a consumer either sees no marker or a complete one.
func Write(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create marker directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize marker: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp marker: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write marker: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close marker: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to publish marker: %w", err)
	}
	return nil
}

// Exists reports whether a marker is present at path.
// Content is never inspected; existence is the whole signal.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Wait blocks until a marker exists at path, checking every interval.
// If interval is not positive, DefaultPollInterval is used.
//
// The original contract is an unbounded wait: a hung upstream blocks the
// caller forever by design. Cancellation via ctx is an extension for
// callers that need a bounded wait; passing context.Background() reproduces
// the unbounded behavior.
func Wait(ctx context.Context, path string, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if Exists(path) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
