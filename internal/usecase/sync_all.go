package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/courtvision/court-vision/internal/domain/syncrun"
)

type SyncAllResult struct {
	Summary syncrun.Summary
	Stages  []syncrun.Summary
}

type syncTask struct {
	entity syncrun.Entity
	run    func(ctx context.Context) (syncrun.Summary, error)
}

// SyncAll runs teams, players and games in order, then the stats jobs.
// Tasks within a stage share a worker pool; stages never overlap because
// later stages map onto rows written by earlier ones.
func (s *SyncService) SyncAll(ctx context.Context, opts SyncOptions) (SyncAllResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncAll")
	defer span.End()

	workers := opts.Workers
	if workers < 1 {
		workers = s.cfg.Workers
	}
	from, to := s.gameRange(opts)
	date := s.statsDate(opts)

	stages := [][]syncTask{
		{{entity: syncrun.EntityTeams, run: s.SyncTeams}},
		{{entity: syncrun.EntityPlayers, run: s.SyncPlayers}},
		{{entity: syncrun.EntityGames, run: func(ctx context.Context) (syncrun.Summary, error) {
			return s.SyncGames(ctx, from, to)
		}}},
		{
			{entity: syncrun.EntityAthleteStats, run: func(ctx context.Context) (syncrun.Summary, error) {
				return s.SyncAthleteStats(ctx, date, opts.Force)
			}},
			{entity: syncrun.EntityTeamStats, run: func(ctx context.Context) (syncrun.Summary, error) {
				return s.SyncTeamStats(ctx, date, opts.Force)
			}},
			{entity: syncrun.EntityPlayerAverages, run: func(ctx context.Context) (syncrun.Summary, error) {
				return s.SyncPlayerAverages(ctx, opts.Season)
			}},
		},
	}

	result := SyncAllResult{}
	total := syncrun.NewSummary(syncrun.EntityAll, s.now().UTC())
	for i, stage := range stages {
		summaries, err := s.runStage(ctx, stage, workers)
		if err != nil {
			return SyncAllResult{}, fmt.Errorf("sync stage %d: %w", i+1, err)
		}
		for _, summary := range summaries {
			total.Merge(summary)
			result.Stages = append(result.Stages, summary)
		}
	}

	result.Summary = s.finish(ctx, total)
	return result, nil
}

// runStage returns summaries in task order. The first task error is
// returned after every task has finished.
func (s *SyncService) runStage(ctx context.Context, tasks []syncTask, workers int) ([]syncrun.Summary, error) {
	if len(tasks) == 1 || workers == 1 {
		out := make([]syncrun.Summary, 0, len(tasks))
		for _, task := range tasks {
			summary, err := task.run(ctx)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", task.entity, err)
			}
			out = append(out, summary)
		}
		return out, nil
	}

	pool, err := ants.NewPool(min(workers, len(tasks)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	out := make([]syncrun.Summary, len(tasks))
	errs := make([]error, len(tasks))

	var workersWG sync.WaitGroup
	for i, task := range tasks {
		workersWG.Add(1)
		if err := pool.Submit(func() {
			defer workersWG.Done()

			start := time.Now()
			out[i], errs[i] = task.run(ctx)
			s.logger.DebugContext(ctx, "sync task done", "entity", task.entity, "duration", time.Since(start))
		}); err != nil {
			workersWG.Done()
			errs[i] = fmt.Errorf("submit %s to worker pool: %w", task.entity, err)
		}
	}
	workersWG.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tasks[i].entity, err)
		}
	}
	return out, nil
}
