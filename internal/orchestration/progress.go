package orchestration

import (
	"time"

	"github.com/agbru/dangle/internal/format"
)

// ProgressAggregator turns the stream of per-row completions into an overall
// fraction and ETA. It wraps format.BatchProgress.
type ProgressAggregator struct {
	state *format.BatchProgress
	total int
}

// NewProgressAggregator creates an aggregator for a batch of total rows.
// Returns nil if total <= 0.
func NewProgressAggregator(total int) *ProgressAggregator {
	if total <= 0 {
		return nil
	}
	return &ProgressAggregator{state: format.NewBatchProgress(total), total: total}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// N is the row that just completed.
	N int
	// Done is the number of rows completed so far.
	Done int
	// Fraction is Done/Total.
	Fraction float64
	// ETA is the estimated time remaining.
	ETA time.Duration
}

// Update records one completion and returns the aggregated state.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	fraction, eta := a.state.Advance()
	return AggregatedProgress{
		N:        update.N,
		Done:     a.state.Done(),
		Fraction: fraction,
		ETA:      eta,
	}
}

// Fraction returns the current completed share without updating.
func (a *ProgressAggregator) Fraction() float64 { return a.state.Fraction() }

// ETA returns the current estimate without updating.
func (a *ProgressAggregator) ETA() time.Duration { return a.state.ETA() }

// Total returns the batch size.
func (a *ProgressAggregator) Total() int { return a.total }

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
