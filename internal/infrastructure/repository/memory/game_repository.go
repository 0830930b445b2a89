package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/courtvision/court-vision/internal/domain/game"
	"github.com/courtvision/court-vision/internal/domain/syncrun"
)

type GameRepository struct {
	mu    sync.RWMutex
	games map[string]game.Game
	now   func() time.Time
}

func NewGameRepository(games []game.Game) *GameRepository {
	byID := make(map[string]game.Game, len(games))
	for _, item := range games {
		byID[item.ExternalID] = item
	}
	return &GameRepository{games: byID, now: time.Now}
}

func (r *GameRepository) List(_ context.Context, filter game.ListFilter) ([]game.Game, error) {
	var from, to time.Time
	if filter.Day != "" {
		var err error
		from, to, err = game.DayBounds(filter.Day)
		if err != nil {
			return nil, err
		}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, len(r.games))
	for _, item := range r.games {
		if filter.Day != "" && (item.Date.Before(from) || !item.Date.Before(to)) {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.TeamExternalID != "" && !item.HasTeam(filter.TeamExternalID) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ExternalID < out[j].ExternalID
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *GameRepository) ListBetween(_ context.Context, from, to time.Time) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0)
	for _, item := range r.games {
		if item.Date.Before(from) || !item.Date.Before(to) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ExternalID < out[j].ExternalID
	})
	return out, nil
}

func (r *GameRepository) GetByExternalID(_ context.Context, externalID string) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.games[externalID]
	return item, ok, nil
}

func (r *GameRepository) Upsert(_ context.Context, g game.Game) (syncrun.Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	syncedAt := r.now().UTC()
	existing, ok := r.games[g.ExternalID]
	if ok && existing.SameContent(g) {
		existing.LastSyncedAt = syncedAt
		r.games[g.ExternalID] = existing
		return syncrun.OutcomeUnchanged, nil
	}
	g.LastSyncedAt = syncedAt
	r.games[g.ExternalID] = g
	if !ok {
		return syncrun.OutcomeCreated, nil
	}
	return syncrun.OutcomeUpdated, nil
}
