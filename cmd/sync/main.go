// Command sync pulls NBA reference data from ESPN and BallDontLie into the
// configured storage.
//
// Usage:
//
//	sync teams
//	sync games --from 2025-01-01 --to 2025-01-07
//	sync athlete-stats --date 2025-01-10 --force
//	sync all --season 2024 --workers 4
//	sync schedule --cron "0 6 * * *"
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/courtvision/court-vision/internal/domain/syncrun"
)

func main() {
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	root := &cobra.Command{
		Use:           "sync",
		Short:         "Sync NBA teams, players, games and stats from external providers",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.logDir, "log-dir", "", "Directory for sync-YYYY-MM-DD.jsonl run logs (default SYNC_LOG_DIR)")
	root.PersistentFlags().IntVar(&opts.workers, "workers", 0, "Worker pool size for the all command (default SYNC_WORKERS)")

	root.AddCommand(entityCmd(syncrun.EntityTeams, "Sync teams from ESPN with BallDontLie fallback", opts))
	root.AddCommand(entityCmd(syncrun.EntityPlayers, "Sync active players from BallDontLie", opts))
	root.AddCommand(entityCmd(syncrun.EntityPlayerAverages, "Sync season averages for stored players", opts, withSeasonFlag))
	root.AddCommand(entityCmd(syncrun.EntityGames, "Sync the ESPN scoreboard for a date range", opts, withRangeFlags))
	root.AddCommand(entityCmd(syncrun.EntityAthleteStats, "Sync per-game player stats for a day", opts, withDateFlags))
	root.AddCommand(entityCmd(syncrun.EntityTeamStats, "Sync per-game team box scores for a day", opts, withDateFlags))
	root.AddCommand(entityCmd(syncrun.EntityAll, "Run every sync stage in order", opts, withSeasonFlag, withRangeFlags, withDateFlags))
	root.AddCommand(scheduleCmd(opts))

	return root
}

type flagOption func(cmd *cobra.Command, opts *runOptions)

func withSeasonFlag(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().StringVar(&opts.season, "season", "", "Season start year, e.g. 2024 (default derived from today)")
}

func withRangeFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().StringVar(&opts.from, "from", "", "First day to sync, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Last day to sync, YYYY-MM-DD (default --from)")
}

func withDateFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().StringVar(&opts.date, "date", "", "Game day for stats, YYYY-MM-DD (default yesterday)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Sync stats even during the offseason")
}

func entityCmd(entity syncrun.Entity, short string, opts *runOptions, flags ...flagOption) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(entity),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEntity(cmd.Context(), cmd.OutOrStdout(), entity, opts)
		},
	}
	for _, f := range flags {
		f(cmd, opts)
	}
	return cmd
}
