package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/dangle/internal/calibration"
	"github.com/agbru/dangle/internal/cevian"
	"github.com/agbru/dangle/internal/cli"
	"github.com/agbru/dangle/internal/config"
	apperrors "github.com/agbru/dangle/internal/errors"
	"github.com/agbru/dangle/internal/logging"
	"github.com/agbru/dangle/internal/metrics"
	"github.com/agbru/dangle/internal/orchestration"
	"github.com/agbru/dangle/internal/ui"
)

// Application represents the dangle application instance.
type Application struct {
	Config    config.AppConfig
	Factory   cevian.CalculatorFactory
	ErrWriter io.Writer
	Logger    logging.Logger
	Metrics   *metrics.Collector
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f cevian.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = cevian.NewDefaultFactory()
	}

	programName := "dangle"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = config.ApplyAdaptiveWorkers(cfg)

	if app.Logger == nil {
		app.Logger = logging.NewConsoleLogger(errWriter, "dangle", app.Config.Verbose)
	}
	if app.Config.MetricsFile != "" {
		app.Metrics = metrics.NewCollector()
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Quiet {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	// Escape codes are only emitted when both streams reach a terminal.
	ui.InitTheme(a.Config.NoColor || !cli.IsTerminal(out) || !cli.IsTerminal(a.ErrWriter))

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.Verbose && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, a.ErrWriter)
	}

	var exitCode int
	if a.Config.Calibrate {
		exitCode = a.runCalibration(ctx, out)
	} else {
		exitCode = a.runCalculate(ctx, out)
	}

	if err := a.writeMetrics(); err != nil {
		a.Logger.Error("failed to write metrics", err, logging.String("path", a.Config.MetricsFile))
		if exitCode == apperrors.ExitSuccess {
			exitCode = apperrors.ExitErrorGeneric
		}
	}
	return exitCode
}

// observers returns the orchestration options shared by every run.
func (a *Application) observers() []orchestration.Option {
	return []orchestration.Option{
		orchestration.WithLogger(a.Logger),
		orchestration.WithMetrics(a.Metrics),
	}
}

// runCalibration sweeps the trig tolerance against the exact method.
func (a *Application) runCalibration(ctx context.Context, out io.Writer) int {
	candidate, err := a.Factory.Get(cevian.MethodTrig)
	if err != nil {
		return apperrors.HandleCalculationError(err, a.ErrWriter)
	}
	reference, err := a.Factory.Get(cevian.MethodExact)
	if err != nil {
		return apperrors.HandleCalculationError(err, a.ErrWriter)
	}

	report, err := calibration.Run(ctx, candidate, reference, a.Config, calibration.DefaultTolerances(), a.observers()...)
	if err != nil {
		return apperrors.HandleCalculationError(err, a.ErrWriter)
	}
	calibration.PrintReport(out, report)
	if !report.HasBand {
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitSuccess
}

// writeMetrics dumps the collector when --metrics-file is set.
func (a *Application) writeMetrics() error {
	if a.Metrics == nil || a.Config.MetricsFile == "" {
		return nil
	}
	if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
		return fmt.Errorf("metrics textfile: %w", err)
	}
	a.Logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
	return nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
