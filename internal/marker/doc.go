// Package marker implements the filesystem readiness protocol shared by the
// pipeline stages.
//
// A marker file is a small JSON record whose mere existence, not content,
// signals that a producing stage has finished a batch. The producer writes
// every output record first and the marker strictly last, so a consumer that
// observes the marker can trust the complete output set. Consumers block on
// marker existence with fixed-interval sleep polling; there is no wake-notify
// mechanism because batch turnaround is dominated by document processing,
// not marker detection latency.
//
// Markers are written atomically (temp file then rename) so a partially
// written marker can never be observed.
package marker
