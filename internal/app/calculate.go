package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/dangle/internal/cevian"
	"github.com/agbru/dangle/internal/cli"
	"github.com/agbru/dangle/internal/config"
	apperrors "github.com/agbru/dangle/internal/errors"
	"github.com/agbru/dangle/internal/export"
	"github.com/agbru/dangle/internal/logging"
	"github.com/agbru/dangle/internal/orchestration"
)

// runCalculate computes the batch, cross-checks it and emits every requested
// output. Data goes to out; diagnostics go to the error writer.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	cfg := a.Config
	exitCode := apperrors.ExitSuccess

	var (
		entries []orchestration.SequenceEntry
		method  string
	)
	if a.needsBatch() {
		var code int
		entries, method, code = a.runBatch(ctx)
		if entries == nil {
			return code
		}
		exitCode = max(exitCode, code)

		if code := a.crossCheck(ctx, entries, method); code != apperrors.ExitSuccess {
			if apperrors.IsContextError(ctx.Err()) {
				return code
			}
			exitCode = max(exitCode, code)
		}
		a.displayBatch(out, entries)
	}

	var witnesses *orchestration.SequenceEntry
	if cfg.ListTriples > 0 {
		entry, code := a.listTriples(ctx)
		if entry == nil {
			return code
		}
		if a.needsBatch() {
			fmt.Fprintln(out)
		}
		cli.DisplayTriples(out, *entry, cfg.Tolerance, cfg.Triangle())
		witnesses = entry
	}

	if err := a.writeFiles(out, entries, method, witnesses); err != nil {
		return apperrors.HandleCalculationError(err, a.ErrWriter)
	}
	return exitCode
}

// needsBatch reports whether any requested output needs the 1..max_n
// sequence. --list-triples on its own lists witnesses only.
func (a *Application) needsBatch() bool {
	c := a.Config
	return c.ListTriples == 0 || c.CSV || c.OEISLine || c.BFile != "" || c.ExportFile != ""
}

// runBatch computes the sequence with the configured method, or with every
// enumerating method when the method is "all". It returns nil entries when
// nothing usable was produced.
func (a *Application) runBatch(ctx context.Context) ([]orchestration.SequenceEntry, string, int) {
	cfg := a.Config
	reporter := cli.NewProgressReporter(a.ErrWriter, cfg.Quiet)

	if cfg.Method == config.MethodAll {
		calcs, err := a.enumeratingCalculators()
		if err != nil {
			return nil, "", apperrors.HandleCalculationError(err, a.ErrWriter)
		}
		runs := orchestration.CompareMethods(ctx, calcs, cfg, reporter, a.ErrWriter, a.observers()...)
		summaryOut := a.ErrWriter
		if cfg.Quiet {
			summaryOut = io.Discard
		}
		outcome := orchestration.AnalyzeComparisonResults(runs, cli.CLIResultPresenter{}, summaryOut, a.observers()...)
		if outcome.Reference == nil {
			return nil, "", outcome.ExitCode
		}
		if outcome.ExitCode != apperrors.ExitSuccess && cfg.Quiet {
			cli.DisplayInconsistencies(a.ErrWriter, outcome.Inconsistencies)
		}
		return outcome.Reference.Entries, outcome.Reference.Name, outcome.ExitCode
	}

	calc, err := a.Factory.Get(cfg.Method)
	if err != nil {
		return nil, "", apperrors.HandleCalculationError(err, a.ErrWriter)
	}
	entries, err := orchestration.ExecuteBatch(ctx, calc, cfg, reporter, a.ErrWriter, a.observers()...)
	if err != nil {
		return nil, "", apperrors.HandleCalculationError(err, a.ErrWriter)
	}
	return entries, calc.Name(), apperrors.ExitSuccess
}

// enumeratingCalculators returns every registered calculator except the
// closed form, in factory order.
func (a *Application) enumeratingCalculators() ([]cevian.Calculator, error) {
	var calcs []cevian.Calculator
	for _, name := range a.Factory.List() {
		if name == cevian.MethodRule {
			continue
		}
		calc, err := a.Factory.Get(name)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, calc)
	}
	return calcs, nil
}

// crossCheck compares the sequence against the closed form. Disagreements are
// reported on the error writer; they only affect the exit code in strict mode.
func (a *Application) crossCheck(ctx context.Context, entries []orchestration.SequenceEntry, method string) int {
	reference, err := a.Factory.Get(cevian.MethodRule)
	if err != nil {
		a.Logger.Debug("no closed form registered, skipping cross-check")
		return apperrors.ExitSuccess
	}
	diags, err := orchestration.CrossCheck(ctx, entries, method, reference, a.Config.CalculationOptions(), a.observers()...)
	if err != nil {
		return apperrors.HandleCalculationError(err, a.ErrWriter)
	}
	if len(diags) == 0 {
		return apperrors.ExitSuccess
	}
	cli.DisplayInconsistencies(a.ErrWriter, diags)
	if a.Config.Strict {
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitSuccess
}

// displayBatch writes the table, CSV and OEIS outputs in that order.
func (a *Application) displayBatch(out io.Writer, entries []orchestration.SequenceEntry) {
	cfg := a.Config
	if !cfg.NoTable && !cfg.CSV {
		cli.DisplayTable(out, entries, cfg.Triangle())
	}
	if cfg.CSV {
		if err := cli.DisplayCSV(out, entries); err != nil {
			a.Logger.Error("failed to write CSV", err)
		}
	}
	if cfg.OEISLine {
		cli.DisplayOEISLine(out, entries, cfg.Quiet)
	}
}

// listTriples collects the witnesses for --list-triples. With method "all"
// the exact method is used.
func (a *Application) listTriples(ctx context.Context) (*orchestration.SequenceEntry, int) {
	name := a.Config.Method
	if name == config.MethodAll {
		name = cevian.MethodExact
	}
	calc, err := a.Factory.Get(name)
	if err != nil {
		return nil, apperrors.HandleCalculationError(err, a.ErrWriter)
	}
	entry, err := orchestration.ListWitnesses(ctx, calc, a.Config.ListTriples, a.Config.CalculationOptions(), a.observers()...)
	if err != nil {
		return nil, apperrors.HandleCalculationError(err, a.ErrWriter)
	}
	return &entry, apperrors.ExitSuccess
}

// writeFiles produces the b-file and the export report when requested.
func (a *Application) writeFiles(out io.Writer, entries []orchestration.SequenceEntry, method string, witnesses *orchestration.SequenceEntry) error {
	cfg := a.Config
	if cfg.BFile != "" {
		if err := export.WriteBFile(cfg.BFile, orchestration.Values(entries)); err != nil {
			return err
		}
		a.Logger.Debug("b-file written", logging.String("path", cfg.BFile), logging.Int("terms", len(entries)))
		if !cfg.Quiet {
			fmt.Fprintf(out, "Wrote b-file: %s\n", cfg.BFile)
		}
	}
	if cfg.ExportFile != "" {
		report := export.NewReport(cfg.Triangle(), method, cfg.Tolerance, entries, witnesses)
		if err := export.WriteReport(cfg.ExportFile, report); err != nil {
			return err
		}
		a.Logger.Debug("report exported", logging.String("path", cfg.ExportFile))
		if !cfg.Quiet {
			fmt.Fprintf(out, "Wrote report: %s\n", cfg.ExportFile)
		}
	}
	return nil
}
