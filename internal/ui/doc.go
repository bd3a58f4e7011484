// Package ui provides theme and color support for the application's user interface.
// It defines color schemes, ANSI escape code helpers and the lipgloss palette
// used by rendered tables, so that presentation packages share one notion of
// "colors enabled".
package ui
