// Package database provides SQLite-based storage for corpus report history.
//
// Every analyzer run may persist its report here, keyed by run timestamp,
// so the compare command can diff batches over time. The database is a
// convenience layer on top of the filesystem wire contract, never a
// replacement for it: the JSON report in the analysis area remains the
// authoritative output.
//
// We use modernc.org/sqlite, a pure-Go driver, so the binary stays
// cgo-free and portable.
package database
