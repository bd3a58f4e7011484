// Package logging provides a unified logging interface for the sequence
// calculator. It abstracts the underlying logging implementation, allowing
// consistent diagnostics across components while supporting multiple backends.
//
// Diagnostics always go to the error stream so that table, CSV and OEIS output
// on stdout stays machine-readable.
package logging
