package cli

import (
	"fmt"
	"io"
	"sync"

	apperrors "github.com/agbru/dangle/internal/errors"
	"github.com/agbru/dangle/internal/format"
	"github.com/agbru/dangle/internal/orchestration"
	"github.com/agbru/dangle/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	DisplayProgress(wg, progressChan, total, out)
}

// NewProgressReporter returns the spinner reporter when out is a terminal
// and progress is wanted, and a silent one otherwise.
func NewProgressReporter(out io.Writer, quiet bool) orchestration.ProgressReporter {
	if quiet || !IsTerminal(out) {
		return orchestration.NullProgressReporter{}
	}
	return CLIProgressReporter{}
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays one line per method with its duration and
// status. Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(runs []orchestration.MethodRun, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := 6     // "Method" header length
	maxDurationLen := 8 // "Duration" header length
	for _, run := range runs {
		maxNameLen = max(maxNameLen, len(run.Name))
		maxDurationLen = max(maxDurationLen, len(formatRunDuration(run)))
	}

	fmt.Fprintf(out, "%sMethod%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-6),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	for _, run := range runs {
		var status string
		if run.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), run.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s (%d values)", ui.ColorGreen(), ui.ColorReset(), len(run.Entries))
		}
		duration := formatRunDuration(run)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), run.Name, ui.ColorReset(), padRight("", maxNameLen-len(run.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// PresentInconsistencies lists every disagreement.
func (CLIResultPresenter) PresentInconsistencies(diags []apperrors.InconsistencyError, out io.Writer) {
	DisplayInconsistencies(out, diags)
}

func formatRunDuration(run orchestration.MethodRun) string {
	if run.Duration == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(run.Duration)
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}
