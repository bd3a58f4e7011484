package calibration

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/dangle/internal/cevian"
	"github.com/agbru/dangle/internal/config"
	"github.com/agbru/dangle/internal/orchestration"
)

// Result is the outcome of the candidate method at one tolerance.
type Result struct {
	Tolerance float64
	// Mismatches lists every n on which the candidate disagreed with the
	// reference, in increasing order.
	Mismatches []int
	Duration   time.Duration
	Err        error
}

// Clean reports whether the run completed without any mismatch.
func (r Result) Clean() bool { return r.Err == nil && len(r.Mismatches) == 0 }

// Report is a complete tolerance sweep.
type Report struct {
	MaxN      int
	Candidate string
	Reference string
	Results   []Result
	// BandLoose and BandTight bound the safe band; HasBand is false when no
	// tolerance agreed with the reference.
	BandLoose float64
	BandTight float64
	HasBand   bool
}

// Run computes the reference sequence once, then the candidate sequence for
// every tolerance, and compares them row by row over cfg.Range().
func Run(ctx context.Context, candidate, reference cevian.Calculator, cfg config.AppConfig, tolerances []float64, opts ...orchestration.Option) (Report, error) {
	report := Report{
		MaxN:      cfg.MaxN,
		Candidate: candidate.Name(),
		Reference: reference.Name(),
	}

	want, err := orchestration.ExecuteBatch(ctx, reference, cfg, orchestration.NullProgressReporter{}, io.Discard, opts...)
	if err != nil {
		return report, fmt.Errorf("reference %s: %w", reference.Name(), err)
	}

	for _, tol := range tolerances {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		run := cfg
		run.Tolerance = tol

		start := time.Now()
		got, err := orchestration.ExecuteBatch(ctx, candidate, run, orchestration.NullProgressReporter{}, io.Discard, opts...)
		res := Result{Tolerance: tol, Duration: time.Since(start), Err: err}
		if err == nil {
			res.Mismatches = mismatches(got, want)
		}
		report.Results = append(report.Results, res)
	}

	report.BandLoose, report.BandTight, report.HasBand = SafeBand(report.Results)
	return report, nil
}

func mismatches(got, want []orchestration.SequenceEntry) []int {
	var ns []int
	for i := range min(len(got), len(want)) {
		if got[i].Value != want[i].Value {
			ns = append(ns, got[i].N)
		}
	}
	return ns
}
