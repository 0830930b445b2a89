package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/courtvision/court-vision/internal/domain/syncrun"
)

const maxRecentSyncRuns = 100

type SyncRunRepository struct {
	mu   sync.RWMutex
	runs map[string]syncrun.Run
}

func NewSyncRunRepository() *SyncRunRepository {
	return &SyncRunRepository{runs: make(map[string]syncrun.Run)}
}

func (r *SyncRunRepository) Create(_ context.Context, run syncrun.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[run.ID]; exists {
		return fmt.Errorf("sync run %s already exists", run.ID)
	}
	run.Summary.ErrorMessages = append([]string(nil), run.Summary.ErrorMessages...)
	r.runs[run.ID] = run
	return nil
}

func (r *SyncRunRepository) GetByID(_ context.Context, id string) (syncrun.Run, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, ok := r.runs[id]
	return run, ok, nil
}

func (r *SyncRunRepository) ListRecent(_ context.Context, limit int) ([]syncrun.Run, error) {
	if limit <= 0 || limit > maxRecentSyncRuns {
		limit = maxRecentSyncRuns
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]syncrun.Run, 0, len(r.runs))
	for _, run := range r.runs {
		out = append(out, run)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Summary.StartedAt.Equal(out[j].Summary.StartedAt) {
			return out[i].Summary.StartedAt.After(out[j].Summary.StartedAt)
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
