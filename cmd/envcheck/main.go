package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/jordanbean-msft/semantic-kernel/internal/logging"
	"github.com/jordanbean-msft/semantic-kernel/internal/report"
	"github.com/jordanbean-msft/semantic-kernel/settings"
)

// options carries the parsed command line.
type options struct {
	envFile  string
	format   string
	services []string
	strict   bool
}

// Exit codes: 0 when the report was produced (and, under --strict, every
// selected service is configured), 1 for a strict-mode failure, 2 for usage
// or runtime errors.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	app := kingpin.New("envcheck", "Reports which service integrations a settings file configures. Prints key names and presence only, never values.")
	envFile := app.Flag("env-file", "Path to the settings file").Default(settings.DotEnvFile).String()
	format := app.Flag("format", "Report output format").Default(report.FormatYAML).Enum(report.FormatYAML, report.FormatJSON)
	services := app.Flag("service", "Restrict the report to the named services (repeatable)").Strings()
	strict := app.Flag("strict", "Exit nonzero unless every selected service is configured").Bool()
	logLevel := app.Flag("log-level", "Log level (debug, info, warn, error)").Default("info").String()

	if _, err := app.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "envcheck: %v\n", err)
		return 2
	}

	logger, err := logging.New(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "envcheck: %v\n", err)
		return 2
	}
	defer func() {
		_ = logger.Sync()
	}()

	return check(options{
		envFile:  *envFile,
		format:   *format,
		services: *services,
		strict:   *strict,
	}, stdout, logger)
}

// check builds the report for the selected services, writes it to stdout,
// and maps the outcome to an exit code.
func check(opts options, stdout io.Writer, logger *zap.Logger) int {
	src := settings.FromFile(opts.envFile)

	rep, err := report.Build(src, opts.services)
	if err != nil {
		logger.Error("failed to build report", zap.Error(err))
		return 2
	}

	if !rep.SourceFound {
		logger.Warn("settings file not found", zap.String("path", rep.Source))
	}

	out, err := report.Render(rep, opts.format)
	if err != nil {
		logger.Error("failed to render report", zap.Error(err))
		return 2
	}
	if _, err := stdout.Write(out); err != nil {
		logger.Error("failed to write report", zap.Error(err))
		return 2
	}

	logger.Info("report complete",
		zap.String("source", rep.Source),
		zap.Int("configured", rep.Configured),
		zap.Int("total", rep.Total),
	)

	if opts.strict && !rep.FullyConfigured() {
		return 1
	}
	return 0
}
