// Package report provides periodic sales snapshots.
//
// A Report freezes the order and reservation figures of one window
// (daily, weekly or monthly) ending at its generation time. Snapshots are
// immutable once created.
package report
