package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/agbru/dangle/internal/cevian"
	apperrors "github.com/agbru/dangle/internal/errors"
	"github.com/agbru/dangle/internal/orchestration"
	"github.com/agbru/dangle/internal/ui"
)

// Check column values.
const (
	CheckOK   = "OK"
	CheckDiff = "DIFF"
	CheckNone = "-"
)

// tableHeaders are the column titles of the value table.
var tableHeaders = []string{"n", "d_angle(n)", "rule", "check"}

// FormatTableRows builds the cells of the value table. The rule and check
// columns hold "-" where the closed form does not apply to (n, shape).
func FormatTableRows(entries []orchestration.SequenceEntry, shape cevian.Triangle) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rule, check := CheckNone, CheckNone
		if cevian.RuleApplies(e.N, shape) {
			r := cevian.RuleValue(e.N)
			rule = strconv.Itoa(r)
			check = CheckOK
			if r != e.Value {
				check = CheckDiff
			}
		}
		rows = append(rows, []string{strconv.Itoa(e.N), strconv.Itoa(e.Value), rule, check})
	}
	return rows
}

// RenderTable renders the value table with lipgloss.
func RenderTable(entries []orchestration.SequenceEntry, shape cevian.Triangle) string {
	theme := ui.GetCurrentTableTheme()
	rows := FormatTableRows(entries, shape)

	base := lipgloss.NewStyle().Padding(0, 1)
	headerStyle := base.Bold(true).Foreground(theme.Header).Align(lipgloss.Center)
	cellStyle := base.Foreground(theme.Text).Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col != 3 || row < 0 || row >= len(rows) {
				return cellStyle
			}
			switch rows[row][3] {
			case CheckOK:
				return cellStyle.Foreground(theme.OK).Align(lipgloss.Center)
			case CheckDiff:
				return cellStyle.Foreground(theme.Diff).Bold(true).Align(lipgloss.Center)
			default:
				return cellStyle.Foreground(theme.Dim).Align(lipgloss.Center)
			}
		})
	return t.String()
}

// DisplayTable writes the value table followed by a newline.
func DisplayTable(out io.Writer, entries []orchestration.SequenceEntry, shape cevian.Triangle) {
	fmt.Fprintln(out, RenderTable(entries, shape))
}

// DisplayCSV writes one "n,value" record per entry.
func DisplayCSV(out io.Writer, entries []orchestration.SequenceEntry) error {
	w := csv.NewWriter(out)
	for _, e := range entries {
		if err := w.Write([]string{strconv.Itoa(e.N), strconv.Itoa(e.Value)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// FormatOEISLine joins the values in the "a(1), a(2), ..." data convention.
func FormatOEISLine(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// DisplayOEISLine writes the data line, preceded by a header unless quiet.
func DisplayOEISLine(out io.Writer, entries []orchestration.SequenceEntry, quiet bool) {
	if !quiet {
		fmt.Fprintln(out, "OEIS data (offset 1):")
	}
	fmt.Fprintln(out, FormatOEISLine(orchestration.Values(entries)))
}

// DisplayTriples lists the witnesses of one n, then the closed form value
// when it applies.
//
// Parameters:
//   - out: The output writer.
//   - entry: The calculation result, with witnesses collected.
//   - tol: The tolerance the witnesses were accepted under.
//   - shape: The triangle, used to decide whether the closed form applies.
func DisplayTriples(out io.Writer, entry orchestration.SequenceEntry, tol float64, shape cevian.Triangle) {
	fmt.Fprintf(out, "Solution triples for n=%d (tol=%g): count = %d\n", entry.N, tol, len(entry.Witnesses))
	for _, w := range entry.Witnesses {
		fmt.Fprintln(out, w.String())
	}
	if cevian.RuleApplies(entry.N, shape) {
		fmt.Fprintf(out, "Rule a_rule(%d) = %d\n", entry.N, cevian.RuleValue(entry.N))
	}
}

// DisplayInconsistencies writes one line per cross-check diagnostic.
func DisplayInconsistencies(out io.Writer, diags []apperrors.InconsistencyError) {
	for _, d := range diags {
		fmt.Fprintf(out, "%sDIFF%s %s\n", ui.ColorRed(), ui.ColorReset(), d.Error())
	}
}
