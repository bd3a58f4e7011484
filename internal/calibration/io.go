package calibration

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/agbru/dangle/internal/format"
	"github.com/agbru/dangle/internal/ui"
)

// maxListedMismatches bounds the n values printed per row.
const maxListedMismatches = 8

// PrintReport formats and prints the calibration summary table.
func PrintReport(out io.Writer, report Report) {
	fmt.Fprintf(out, "\n--- Calibration Summary (%s vs %s, n=1..%d) ---\n", report.Candidate, report.Reference, report.MaxN)
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sTolerance%s    │ %sTime%s       │ %sMismatching n%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s┼%s┼%s\n", strings.Repeat("─", 14), strings.Repeat("─", 13), strings.Repeat("─", 30))
	for _, res := range report.Results {
		durationStr := fmt.Sprintf("%sN/A%s", ui.ColorRed(), ui.ColorReset())
		if res.Err == nil {
			durationStr = format.FormatExecutionDuration(res.Duration)
		}
		highlight := ""
		if report.HasBand && res.Tolerance <= report.BandLoose && res.Tolerance >= report.BandTight {
			highlight = fmt.Sprintf(" %s(safe)%s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %s%-12g%s │ %s%-10s%s │ %s%s\n",
			ui.ColorCyan(), res.Tolerance, ui.ColorReset(),
			ui.ColorYellow(), durationStr, ui.ColorReset(),
			describeMismatches(res), highlight)
	}
	tw.Flush()

	if report.HasBand {
		fmt.Fprintf(out, "%sSafe tolerance band%s: %g … %g\n",
			ui.ColorGreen(), ui.ColorReset(), report.BandLoose, report.BandTight)
	} else {
		fmt.Fprintf(out, "%sNo tolerance agreed with the %s method.%s\n",
			ui.ColorRed(), report.Reference, ui.ColorReset())
	}
}

func describeMismatches(res Result) string {
	if res.Err != nil {
		return fmt.Sprintf("%serror: %v%s", ui.ColorRed(), res.Err, ui.ColorReset())
	}
	if len(res.Mismatches) == 0 {
		return "none"
	}
	listed := res.Mismatches[:min(len(res.Mismatches), maxListedMismatches)]
	parts := make([]string, len(listed))
	for i, n := range listed {
		parts[i] = strconv.Itoa(n)
	}
	s := strings.Join(parts, ", ")
	if extra := len(res.Mismatches) - len(listed); extra > 0 {
		s += fmt.Sprintf(" (+%d more)", extra)
	}
	return fmt.Sprintf("%s%s%s", ui.ColorRed(), s, ui.ColorReset())
}
