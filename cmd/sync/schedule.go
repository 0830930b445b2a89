package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/courtvision/court-vision/internal/app"
	"github.com/courtvision/court-vision/internal/domain/syncrun"
	"github.com/courtvision/court-vision/internal/platform/logging"
	"github.com/courtvision/court-vision/internal/usecase"
)

const defaultSchedule = "0 6 * * *"

func scheduleCmd(opts *runOptions) *cobra.Command {
	var spec string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the all sync on a cron schedule until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := cron.ParseStandard(strings.TrimSpace(spec)); err != nil {
				return fmt.Errorf("%w: invalid cron expression %q: %v", usecase.ErrInvalidInput, spec, err)
			}
			syncOpts, err := opts.syncOptions()
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), opts, func(ctx context.Context, a *app.App, logger *logging.Logger) error {
				return runSchedule(ctx, strings.TrimSpace(spec), a.Services.Sync, syncOpts, logger)
			})
		},
	}
	cmd.Flags().StringVar(&spec, "cron", defaultSchedule, "Standard five-field cron expression")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Sync stats even during the offseason")
	return cmd
}

type syncRunner interface {
	Run(ctx context.Context, entity syncrun.Entity, opts usecase.SyncOptions) (syncrun.Run, error)
}

// runSchedule blocks until ctx is cancelled. Overlapping ticks are skipped
// while a previous run is still going.
func runSchedule(ctx context.Context, spec string, runner syncRunner, opts usecase.SyncOptions, logger *logging.Logger) error {
	cl := cronLogger{logger: logger.Named("cron")}
	c := cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))

	_, err := c.AddFunc(spec, func() {
		run, err := runner.Run(ctx, syncrun.EntityAll, opts)
		if err != nil {
			logger.ErrorContext(ctx, "scheduled sync failed", "error", err)
			return
		}
		logger.InfoContext(ctx, "scheduled sync finished",
			"run_id", run.ID,
			"status", run.Status,
			"errors", run.Summary.Errors,
		)
	})
	if err != nil {
		return fmt.Errorf("schedule sync: %w", err)
	}

	c.Start()
	logger.Info("sync scheduler started", "cron", spec)

	<-ctx.Done()
	<-c.Stop().Done()
	logger.Info("sync scheduler stopped")
	return nil
}

// cronLogger adapts the service logger to cron.Logger.
type cronLogger struct {
	logger *logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
