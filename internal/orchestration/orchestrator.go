package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/dangle/internal/cevian"
	"github.com/agbru/dangle/internal/config"
	apperrors "github.com/agbru/dangle/internal/errors"
	"github.com/agbru/dangle/internal/logging"
	"github.com/agbru/dangle/internal/metrics"
)

const tracerName = "github.com/agbru/dangle/internal/orchestration"

// Option customizes how calculations are observed.
type Option func(*runOptions)

type runOptions struct {
	logger  logging.Logger
	metrics *metrics.Collector
}

// WithLogger routes diagnostics to logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *runOptions) { o.logger = logger }
}

// WithMetrics records every calculation in collector.
func WithMetrics(collector *metrics.Collector) Option {
	return func(o *runOptions) { o.metrics = collector }
}

func buildOptions(opts []Option) runOptions {
	o := runOptions{logger: logging.NopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ExecuteBatch computes d_angle(n) for every n of cfg.Range() with calc.
//
// Rows are independent and run on an errgroup bounded by cfg.Workers; each
// goroutine writes only its own slot of the result slice. A completion is
// sent to the progress reporter for every row. The first failing row cancels
// the rest of the batch.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - calc: The calculator to run.
//   - cfg: The application configuration (range, shape, tolerance, workers).
//   - progressReporter: The progress display (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []SequenceEntry: One entry per n, in increasing order of n.
//   - error: The first calculation error, wrapped in a CalculationError.
func ExecuteBatch(ctx context.Context, calc cevian.Calculator, cfg config.AppConfig, progressReporter ProgressReporter, out io.Writer, opts ...Option) ([]SequenceEntry, error) {
	o := buildOptions(opts)
	lo, hi := cfg.Range()
	total := hi - lo + 1
	if total <= 0 {
		return nil, nil
	}
	entries := make([]SequenceEntry, total)
	calcOpts := cfg.CalculationOptions()

	// Buffered to the batch size: workers never block on a slow display.
	progressChan := make(chan ProgressUpdate, total)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, total, out)

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}

	o.logger.Debug("batch started",
		logging.String("method", calc.Name()),
		logging.Int("from", lo),
		logging.Int("to", hi),
		logging.Int("workers", cfg.Workers))

	for idx := range entries {
		if gctx.Err() != nil {
			break
		}
		n := lo + idx
		g.Go(func() error {
			res, elapsed, err := runOne(gctx, calc, n, calcOpts, o)
			entries[idx] = SequenceEntry{
				N:          n,
				Value:      res.Count,
				Candidates: res.Candidates,
				Witnesses:  res.Witnesses,
				Duration:   elapsed,
				Err:        err,
			}
			progressChan <- ProgressUpdate{N: n, Total: total}
			if err != nil {
				return apperrors.CalculationError{N: n, Cause: err}
			}
			return nil
		})
	}

	err := g.Wait()
	close(progressChan)
	displayWg.Wait()

	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	return entries, err
}

// ListWitnesses runs calc on a single n and collects the witness triples.
func ListWitnesses(ctx context.Context, calc cevian.Calculator, n int, calcOpts cevian.Options, opts ...Option) (SequenceEntry, error) {
	o := buildOptions(opts)
	calcOpts.CollectWitnesses = true
	res, elapsed, err := runOne(ctx, calc, n, calcOpts, o)
	entry := SequenceEntry{
		N:          n,
		Value:      res.Count,
		Candidates: res.Candidates,
		Witnesses:  res.Witnesses,
		Duration:   elapsed,
		Err:        err,
	}
	if err != nil {
		return entry, apperrors.CalculationError{N: n, Cause: err}
	}
	return entry, nil
}

// runOne wraps a single calculation in a span and records its metrics.
func runOne(ctx context.Context, calc cevian.Calculator, n int, calcOpts cevian.Options, o runOptions) (cevian.Result, time.Duration, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "cevian.Calculate",
		trace.WithAttributes(
			attribute.String("method", calc.Name()),
			attribute.Int("n", n),
		),
	)
	defer span.End()

	start := time.Now()
	res, err := calc.Calculate(ctx, n, calcOpts)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, cevian.ErrOutOfDomain):
		span.SetAttributes(attribute.Bool("applicable", false))
		return res, elapsed, err
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, "calculation failed")
		return res, elapsed, err
	}

	span.SetAttributes(
		attribute.Int("count", res.Count),
		attribute.Int("candidates", res.Candidates),
	)
	o.metrics.ObserveResult(calc.Name(), res, elapsed)
	o.logger.Debug("calculated",
		logging.String("method", calc.Name()),
		logging.Int("n", n),
		logging.Int("count", res.Count),
		logging.Int("candidates", res.Candidates))
	return res, elapsed, nil
}

// CrossCheck compares entries produced by method against reference wherever
// reference applies. Rows for which reference returns ErrOutOfDomain are
// skipped. Every divergence is logged and returned as a diagnostic; deciding
// whether it is fatal is left to the caller.
func CrossCheck(ctx context.Context, entries []SequenceEntry, method string, reference cevian.Calculator, calcOpts cevian.Options, opts ...Option) ([]apperrors.InconsistencyError, error) {
	o := buildOptions(opts)
	var diags []apperrors.InconsistencyError

	for _, e := range entries {
		if e.Err != nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return diags, err
		}
		want, _, err := runOne(ctx, reference, e.N, calcOpts, o)
		if errors.Is(err, cevian.ErrOutOfDomain) {
			continue
		}
		if err != nil {
			return diags, apperrors.CalculationError{N: e.N, Cause: err}
		}
		if want.Count == e.Value {
			continue
		}
		diag := apperrors.InconsistencyError{
			N:         e.N,
			Method:    method,
			Got:       e.Value,
			Reference: reference.Name(),
			Want:      want.Count,
		}
		o.metrics.ObserveInconsistency()
		o.logger.Warn("cross-check mismatch",
			logging.Int("n", e.N),
			logging.String("method", method),
			logging.Int("got", e.Value),
			logging.String("reference", reference.Name()),
			logging.Int("want", want.Count))
		diags = append(diags, diag)
	}
	return diags, nil
}

// CompareMethods runs every calculator over the configured range, one batch
// after another, so that each batch keeps the full worker budget.
func CompareMethods(ctx context.Context, calculators []cevian.Calculator, cfg config.AppConfig, progressReporter ProgressReporter, out io.Writer, opts ...Option) []MethodRun {
	runs := make([]MethodRun, 0, len(calculators))
	for _, calc := range calculators {
		start := time.Now()
		entries, err := ExecuteBatch(ctx, calc, cfg, progressReporter, out, opts...)
		runs = append(runs, MethodRun{
			Name:     calc.Name(),
			Entries:  entries,
			Duration: time.Since(start),
			Err:      err,
		})
		if ctx.Err() != nil {
			break
		}
	}
	return runs
}

// ComparisonOutcome summarizes a method comparison.
type ComparisonOutcome struct {
	// Reference is the fastest successful run, nil if every run failed.
	Reference *MethodRun
	// Inconsistencies lists every (method, n) that disagrees with Reference.
	Inconsistencies []apperrors.InconsistencyError
	// ExitCode is the process exit code the comparison implies.
	ExitCode int
}

// AnalyzeComparisonResults sorts the runs by duration, checks that every
// successful run agrees with the fastest one on each n and presents the
// summary.
//
// Parameters:
//   - runs: The batch results, one per method.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - ComparisonOutcome: The reference run, the disagreements and the exit code.
func AnalyzeComparisonResults(runs []MethodRun, presenter ResultPresenter, out io.Writer, opts ...Option) ComparisonOutcome {
	o := buildOptions(opts)
	sort.SliceStable(runs, func(i, j int) bool {
		if (runs[i].Err == nil) != (runs[j].Err == nil) {
			return runs[i].Err == nil
		}
		return runs[i].Duration < runs[j].Duration
	})

	presenter.PresentComparisonTable(runs, out)

	if len(runs) == 0 || runs[0].Err != nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No method could complete the calculation.\n")
		var firstErr error
		if len(runs) > 0 {
			firstErr = runs[0].Err
		}
		return ComparisonOutcome{ExitCode: apperrors.HandleCalculationError(firstErr, out)}
	}

	ref := &runs[0]
	var diags []apperrors.InconsistencyError
	for _, run := range runs[1:] {
		if run.Err != nil {
			continue
		}
		for i, e := range run.Entries {
			if i >= len(ref.Entries) {
				break
			}
			want := ref.Entries[i]
			if e.N == want.N && e.Value != want.Value {
				diags = append(diags, apperrors.InconsistencyError{
					N:         e.N,
					Method:    run.Name,
					Got:       e.Value,
					Reference: ref.Name,
					Want:      want.Value,
				})
				o.metrics.ObserveInconsistency()
			}
		}
	}

	if len(diags) > 0 {
		presenter.PresentInconsistencies(diags, out)
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The methods disagree on %d value(s).\n", len(diags))
		return ComparisonOutcome{Reference: ref, Inconsistencies: diags, ExitCode: apperrors.ExitErrorMismatch}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All methods agree on every n.\n")
	return ComparisonOutcome{Reference: ref, ExitCode: apperrors.ExitSuccess}
}

// Values extracts the counts of entries in order.
func Values(entries []SequenceEntry) []int {
	values := make([]int, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}
	return values
}
