// Package catalog persists the episode catalog as a CSV file.
//
// The store reads the whole catalog into memory, hands callers a Snapshot
// to modify, and writes the result back atomically (temp file + rename)
// under an exclusive file lock. Columns the current schema does not know
// about survive a load/save round trip untouched, so newer and older
// builds can share one catalog file.
package catalog
