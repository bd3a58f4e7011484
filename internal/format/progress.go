package format

import (
	"fmt"
	"strings"
	"time"
)

// maxETA caps estimates made from very little progress.
const maxETA = 24 * time.Hour

// FormatExecutionDuration renders a wall time in whole µs or ms below one
// second and in time.Duration's own form above.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d\u00b5s", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}

// BatchProgress tracks completion of a batch of independent rows and derives
// an ETA from the mean time per completed row. It is not safe for concurrent
// use; the progress display owns it.
type BatchProgress struct {
	total     int
	done      int
	startTime time.Time
	now       func() time.Time
}

// NewBatchProgress creates a tracker for total rows, starting the clock now.
func NewBatchProgress(total int) *BatchProgress {
	return &BatchProgress{total: total, startTime: time.Now(), now: time.Now}
}

// Advance marks one more row as complete and returns the new fraction and ETA.
func (p *BatchProgress) Advance() (float64, time.Duration) {
	if p.done < p.total {
		p.done++
	}
	return p.Fraction(), p.ETA()
}

// Done returns the number of completed rows.
func (p *BatchProgress) Done() int { return p.done }

// Fraction returns the completed share in [0, 1].
func (p *BatchProgress) Fraction() float64 {
	if p.total <= 0 {
		return 0
	}
	return float64(p.done) / float64(p.total)
}

// ETA extrapolates the remaining time linearly. It returns 0 before the first
// row completes and after the last one.
func (p *BatchProgress) ETA() time.Duration {
	if p.done == 0 || p.done >= p.total {
		return 0
	}
	elapsed := p.now().Sub(p.startTime)
	perRow := elapsed / time.Duration(p.done)
	eta := perRow * time.Duration(p.total-p.done)
	return min(eta, maxETA)
}

// FormatETA renders an ETA compactly ("45s", "2m30s", "1h15m").
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		s := int(eta.Seconds()) % 60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h := int(eta.Hours())
		m := int(eta.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// ProgressBar renders a bar of the given length, clamping progress to [0, 1].
func ProgressBar(progress float64, length int) string {
	progress = max(0, min(progress, 1))
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA combines the bar, the percentage and the ETA.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s",
		ProgressBar(progress, width), max(0, min(progress, 1))*100, FormatETA(eta))
}
