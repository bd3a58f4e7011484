package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/dangle/internal/cevian"
	apperrors "github.com/agbru/dangle/internal/errors"
)

// SequenceEntry is d_angle(n) as computed by one method.
type SequenceEntry struct {
	N int
	// Value is the count; it is meaningless when Err is set.
	Value int
	// Candidates is the number of triples the method examined.
	Candidates int
	// Witnesses is populated only when requested.
	Witnesses []cevian.Triple
	// Duration is the time spent on this n.
	Duration time.Duration
	Err      error
}

// MethodRun is the outcome of a whole batch for one method.
type MethodRun struct {
	Name     string
	Entries  []SequenceEntry
	Duration time.Duration
	Err      error
}

// ProgressUpdate signals that one more n of the batch is complete.
type ProgressUpdate struct {
	// N is the row just finished.
	N int
	// Total is the batch size.
	Total int
}

// ProgressReporter defines the interface for displaying batch progress.
// Implementations handle the visual representation (spinners, bars) while
// the orchestration layer coordinates the calculations.
type ProgressReporter interface {
	// DisplayProgress consumes progressChan until it is closed, then calls
	// wg.Done.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer) {
	f(wg, progressChan, total, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting a method comparison.
type ResultPresenter interface {
	// PresentComparisonTable displays one summary line per method.
	PresentComparisonTable(runs []MethodRun, out io.Writer)
	// PresentInconsistencies lists every disagreement found.
	PresentInconsistencies(diags []apperrors.InconsistencyError, out io.Writer)
}
