// Package format holds presentation-neutral formatting helpers for durations
// and batch progress shared by the CLI and the calibration report.
package format
