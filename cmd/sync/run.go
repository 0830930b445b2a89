package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/courtvision/court-vision/internal/app"
	"github.com/courtvision/court-vision/internal/config"
	"github.com/courtvision/court-vision/internal/domain/syncrun"
	"github.com/courtvision/court-vision/internal/observability"
	"github.com/courtvision/court-vision/internal/platform/logging"
	"github.com/courtvision/court-vision/internal/usecase"
)

const defaultServiceName = "court-vision-sync"

type runOptions struct {
	date    string
	from    string
	to      string
	season  string
	force   bool
	workers int
	logDir  string
}

func (o *runOptions) syncOptions() (usecase.SyncOptions, error) {
	var (
		out usecase.SyncOptions
		err error
	)
	if v := strings.TrimSpace(o.date); v != "" {
		if out.Date, err = usecase.ParseSyncDate(v); err != nil {
			return usecase.SyncOptions{}, err
		}
	}
	if v := strings.TrimSpace(o.from); v != "" {
		if out.From, err = usecase.ParseSyncDate(v); err != nil {
			return usecase.SyncOptions{}, err
		}
	}
	if v := strings.TrimSpace(o.to); v != "" {
		if out.To, err = usecase.ParseSyncDate(v); err != nil {
			return usecase.SyncOptions{}, err
		}
	}
	if v := strings.TrimSpace(o.season); v != "" {
		if out.Season, err = usecase.ParseSyncSeason(v); err != nil {
			return usecase.SyncOptions{}, err
		}
	}
	if o.workers < 0 {
		return usecase.SyncOptions{}, fmt.Errorf("%w: workers must be >= 1", usecase.ErrInvalidInput)
	}
	out.Force = o.force
	out.Workers = o.workers
	return out, nil
}

// loadConfig applies CLI overrides on top of the environment.
func (o *runOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if strings.TrimSpace(o.logDir) != "" {
		cfg.SyncLogDir = strings.TrimSpace(o.logDir)
	}
	if o.workers > 0 {
		cfg.SyncWorkers = o.workers
	}
	if cfg.ServiceName == "" || cfg.ServiceName == "court-vision-api" {
		cfg.ServiceName = defaultServiceName
	}
	return cfg, nil
}

// withApp builds the application for one command and always closes the
// database handle before returning.
func withApp(ctx context.Context, opts *runOptions, fn func(ctx context.Context, a *app.App, logger *logging.Logger) error) (err error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	telemetry, err := observability.Start(cfg, logger, observability.Options{})
	if err != nil {
		return fmt.Errorf("start observability: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := telemetry.Shutdown(flushCtx); shutdownErr != nil {
			logger.Warn("shutdown observability", "error", shutdownErr)
		}
	}()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return err
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			logger.Error("close app", "error", closeErr)
			if err == nil {
				err = closeErr
			}
		}
	}()

	return fn(ctx, a, logger)
}

func runEntity(ctx context.Context, out io.Writer, entity syncrun.Entity, opts *runOptions) error {
	syncOpts, err := opts.syncOptions()
	if err != nil {
		return err
	}

	return withApp(ctx, opts, func(ctx context.Context, a *app.App, logger *logging.Logger) error {
		run, err := a.Services.Sync.Run(ctx, entity, syncOpts)
		if err != nil {
			logger.ErrorContext(ctx, "sync failed", "entity", entity, "error", err)
			return err
		}
		printRun(out, run)
		return nil
	})
}

func printRun(out io.Writer, run syncrun.Run) {
	s := run.Summary
	fmt.Fprintf(out, "%s: %s (run %s)\n", s.Entity, run.Status, run.ID)
	if s.SkipReason != "" {
		fmt.Fprintf(out, "  skipped: %s\n", s.SkipReason)
	}
	fmt.Fprintf(out, "  created=%d updated=%d skipped=%d errors=%d duration=%s\n",
		s.Created, s.Updated, s.Skipped, s.Errors, s.Duration().Round(time.Millisecond))
	for _, msg := range s.ErrorMessages {
		fmt.Fprintf(out, "  error: %s\n", msg)
	}
}
