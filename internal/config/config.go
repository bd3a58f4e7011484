// Package config defines the application configuration and parses it from
// command-line flags. Configuration is an explicit value passed to every
// component; there are no package-level defaults read at run time.
package config

import (
	"flag"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"slices"
	"strings"

	"github.com/agbru/dangle/internal/cevian"
	apperrors "github.com/agbru/dangle/internal/errors"
)

// MethodAll runs every enumerating method and compares their results.
const MethodAll = "all"

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// N, when positive, restricts the run to a single n.
	N int
	// MaxN is the upper bound of the batch 1..MaxN.
	MaxN int
	// Method selects the calculator ("trig", "exact" or "all").
	Method string
	// Shape holds the triangle weights as "A,B,C".
	Shape string
	// Tolerance is the floating acceptance bound for the trig method.
	Tolerance float64
	// Workers bounds the number of n computed concurrently; 0 means auto.
	Workers int

	CSV      bool
	NoTable  bool
	OEISLine bool
	// ListTriples, when positive, lists every witness for that n.
	ListTriples int

	BFile       string
	ExportFile  string
	MetricsFile string

	// Strict turns cross-check inconsistencies into a non-zero exit.
	Strict    bool
	Calibrate bool

	Verbose bool
	Quiet   bool
	NoColor bool
}

// Triangle returns the parsed shape. It must only be called after Validate.
func (c AppConfig) Triangle() cevian.Triangle {
	t, err := cevian.ParseTriangle(c.Shape)
	if err != nil {
		return cevian.Equilateral
	}
	return t
}

// CalculationOptions converts the configuration into calculator options.
func (c AppConfig) CalculationOptions() cevian.Options {
	return cevian.Options{
		Shape:     c.Triangle(),
		Tolerance: c.Tolerance,
	}
}

// Range returns the inclusive range of n to compute.
func (c AppConfig) Range() (lo, hi int) {
	if c.N > 0 {
		return c.N, c.N
	}
	return 1, c.MaxN
}

// Validate checks the configuration for consistency.
//
// Parameters:
//   - availableMethods: The calculator names registered in the factory.
//
// Returns:
//   - error: A ConfigError or ValidationError describing the first problem found.
func (c AppConfig) Validate(availableMethods []string) error {
	if c.MaxN <= 0 {
		return apperrors.NewConfigError("--max-n must be a positive integer, got %d", c.MaxN)
	}
	if c.N < 0 {
		return apperrors.NewConfigError("-n must be a positive integer, got %d", c.N)
	}
	if c.ListTriples < 0 {
		return apperrors.NewConfigError("--list-triples must be a positive integer, got %d", c.ListTriples)
	}
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0) {
		return apperrors.NewConfigError("--tol must be a positive finite number, got %g", c.Tolerance)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("--workers must be non-negative, got %d", c.Workers)
	}
	if c.Method != MethodAll && (c.Method == cevian.MethodRule || !slices.Contains(availableMethods, c.Method)) {
		return apperrors.NewConfigError("unknown method %q (valid: %s, %s)",
			c.Method, strings.Join(enumeratingMethods(availableMethods), ", "), MethodAll)
	}
	if _, err := cevian.ParseTriangle(c.Shape); err != nil {
		return err
	}
	if c.ExportFile != "" && !slices.Contains(exportExtensions, strings.ToLower(filepath.Ext(c.ExportFile))) {
		return apperrors.NewConfigError("--export must end in %s, got %q", strings.Join(exportExtensions, ", "), c.ExportFile)
	}
	return nil
}

// exportExtensions are the report formats understood by --export.
var exportExtensions = []string{".json", ".yaml", ".yml"}

// enumeratingMethods filters the closed form out of the selectable methods.
func enumeratingMethods(available []string) []string {
	out := make([]string, 0, len(available))
	for _, m := range available {
		if m != cevian.MethodRule {
			out = append(out, m)
		}
	}
	return out
}

// ParseConfig parses command-line arguments into an AppConfig.
//
// Parameters:
//   - programName: The program name shown in usage output.
//   - args: The arguments after the program name.
//   - errorOutput: The writer receiving usage and parse errors.
//   - availableMethods: The calculator names registered in the factory.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp for -h, a parse error, or a validation error.
func ParseConfig(programName string, args []string, errorOutput io.Writer, availableMethods []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorOutput)

	config := AppConfig{}
	fs.IntVar(&config.N, "n", 0, "Compute a single n instead of the batch 1..max-n.")
	fs.IntVar(&config.MaxN, "max-n", cevian.DefaultMaxN, "Compute the table for n=1..MAX_N.")
	fs.StringVar(&config.Method, "method", cevian.MethodTrig,
		fmt.Sprintf("Counting method (%s, %s).", strings.Join(enumeratingMethods(availableMethods), ", "), MethodAll))
	fs.StringVar(&config.Shape, "shape", cevian.Equilateral.String(), "Triangle angle weights A,B,C.")
	fs.Float64Var(&config.Tolerance, "tol", cevian.DefaultTolerance, "Tolerance for the floating Ceva test.")
	fs.IntVar(&config.Workers, "workers", 0, "Concurrent workers for the batch (0 = number of CPUs).")
	fs.BoolVar(&config.CSV, "csv", false, "Also print CSV (n,d_angle(n)) lines.")
	fs.BoolVar(&config.NoTable, "no-table", false, "Suppress the side-by-side table.")
	fs.BoolVar(&config.OEISLine, "oeis-line", false, "Also print a single OEIS-style data line.")
	fs.IntVar(&config.ListTriples, "list-triples", 0, "List all solution triples (i,j,k) for the given n.")
	fs.StringVar(&config.BFile, "bfile", "", "Write an OEIS b-file (n a(n)) to this path.")
	fs.StringVar(&config.ExportFile, "export", "", "Export the results as JSON (.json) or YAML (.yaml, .yml).")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus text metrics to this path.")
	fs.BoolVar(&config.Strict, "strict", false, "Exit non-zero when the cross-check finds an inconsistency.")
	fs.BoolVar(&config.Calibrate, "calibrate", false, "Sweep tolerances against the exact method and exit.")
	fs.BoolVar(&config.Verbose, "v", false, "Enable verbose diagnostics.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable verbose diagnostics.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode: data output only.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode: data output only.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable coloured output.")

	fs.Usage = func() {
		fmt.Fprintf(errorOutput, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errorOutput, "Computes d_angle(n), the number of triple-cevian concurrency points\n")
		fmt.Fprintf(errorOutput, "when each angle of a triangle is split into n+1 equal sectors.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(errorOutput, err)
		return AppConfig{}, err
	}
	if isFlagSet(fs, "n") && config.N <= 0 {
		err := apperrors.NewConfigError("-n must be a positive integer, got %d", config.N)
		fmt.Fprintln(errorOutput, err)
		return AppConfig{}, err
	}
	if isFlagSet(fs, "list-triples") && config.ListTriples <= 0 {
		err := apperrors.NewConfigError("--list-triples must be a positive integer, got %d", config.ListTriples)
		fmt.Fprintln(errorOutput, err)
		return AppConfig{}, err
	}
	if err := config.Validate(availableMethods); err != nil {
		fmt.Fprintln(errorOutput, err)
		return AppConfig{}, err
	}
	return config, nil
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
