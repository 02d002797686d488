// Package main is the entry point for the Student Grade Analyzer console.
//
// Layers follow a clean-architecture split:
// - Domain: students, grades, report and top-performer rules
// - Application: commands and queries over the roster
// - Infrastructure: in-memory roster store, event bus
// - Interface: the console menu loop
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gradebook/grade-analyzer/config"
	"github.com/gradebook/grade-analyzer/internal/application/command"
	"github.com/gradebook/grade-analyzer/internal/application/query"
	"github.com/gradebook/grade-analyzer/internal/domain/shared"
	"github.com/gradebook/grade-analyzer/internal/infrastructure/messaging"
	"github.com/gradebook/grade-analyzer/internal/infrastructure/persistence/memory"
	"github.com/gradebook/grade-analyzer/internal/interface/console"
	"github.com/gradebook/grade-analyzer/internal/interface/console/presenter"
	"github.com/gradebook/grade-analyzer/pkg/logger"
)

// flags overrides configuration loaded from the environment.
type flags struct {
	envFile   string
	logLevel  string
	logFormat string
	logFile   string
	noColor   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "analyzer",
		Short:         "Track students and grades, show averages and the top performer",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cmd, f, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.envFile, "env-file", "", "load environment from this file (default .env if present)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: json or text")
	fs.StringVar(&f.logFile, "log-file", "", "write logs to this file (default: discard)")
	fs.BoolVar(&f.noColor, "no-color", false, "disable terminal styling")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, f flags, in io.Reader, out io.Writer) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. CONFIGURATION
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg, f)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	log, closeLog, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info("starting grade analyzer",
		logger.String("app", cfg.App.Name),
		logger.String("env", string(cfg.App.Environment)),
		logger.String("version", cfg.App.Version),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. INFRASTRUCTURE
	// ─────────────────────────────────────────────────────────────────────────
	repo := memory.NewStudentRepository()

	bus := messaging.NewInMemoryEventBus(log)
	defer bus.Close()

	if err := bus.SubscribeAll(func(e shared.Event) error {
		log.Debug("domain event",
			logger.String("event_type", string(e.EventType())),
			logger.StudentID(e.AggregateID()),
			logger.F("payload", e.Payload()),
		)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to subscribe event logger: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 4. APPLICATION + INTERFACE
	// ─────────────────────────────────────────────────────────────────────────
	handlers := console.Handlers{
		AddStudent:   command.NewAddStudentHandler(repo, bus, log),
		AddGrade:     command.NewAddGradeHandler(repo, bus, log),
		FindStudent:  query.NewFindStudentHandler(repo),
		Report:       query.NewGetReportHandler(repo, log),
		TopPerformer: query.NewGetTopPerformerHandler(repo, log),
	}

	router := console.NewRouter(in, out, handlers, presenter.New(presenter.ThemeFor(cfg.UI.NoColor)), log)
	if err := router.Run(ctx); err != nil {
		if ctx.Err() == nil {
			return err
		}
		log.Info("session interrupted", logger.Err(err))
	}

	stats := bus.Stats()
	log.Info("shutdown complete",
		logger.F("events_published", stats.Published),
		logger.F("handler_failures", stats.HandlerFailures),
	)
	return nil
}

// applyFlags lets explicitly set flags win over environment values.
func applyFlags(cmd *cobra.Command, cfg *config.Config, f flags) {
	if cmd.Flags().Changed("log-level") {
		cfg.Observability.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Observability.LogFormat = f.logFormat
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Observability.LogFile = f.logFile
	}
	if cmd.Flags().Changed("no-color") {
		cfg.UI.NoColor = f.noColor
	}
}

// setupLogger configures structured logging. Without a log file, logs are
// discarded so they do not interleave with the menu transcript.
func setupLogger(cfg *config.Config) (*logger.Logger, func(), error) {
	opts := logger.DefaultOptions()
	opts.Output = io.Discard
	opts.Level = logger.ParseLevel(cfg.Observability.LogLevel)
	opts.Format = logger.Format(cfg.Observability.LogFormat)
	closeFn := func() {}

	if cfg.Observability.LogFile != "" {
		file, err := os.OpenFile(cfg.Observability.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		opts.Output = file
		opts.AddCaller = cfg.IsDevelopment()
		closeFn = func() { _ = file.Close() }
	}

	return logger.New(opts), closeFn, nil
}
