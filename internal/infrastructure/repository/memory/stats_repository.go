package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/courtvision/court-vision/internal/domain/stats"
	"github.com/courtvision/court-vision/internal/domain/syncrun"
)

type statKey struct {
	game  string
	owner string
}

type StatsRepository struct {
	mu      sync.RWMutex
	players map[statKey]stats.PlayerGameStat
	teams   map[statKey]stats.TeamGameStat
}

func NewStatsRepository() *StatsRepository {
	return &StatsRepository{
		players: make(map[statKey]stats.PlayerGameStat),
		teams:   make(map[statKey]stats.TeamGameStat),
	}
}

func (r *StatsRepository) UpsertPlayerGameStat(_ context.Context, s stats.PlayerGameStat) (syncrun.Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := statKey{game: s.GameExternalID, owner: s.PlayerExternalID}
	existing, ok := r.players[key]
	if ok && existing == s {
		return syncrun.OutcomeUnchanged, nil
	}
	r.players[key] = s
	if !ok {
		return syncrun.OutcomeCreated, nil
	}
	return syncrun.OutcomeUpdated, nil
}

func (r *StatsRepository) UpsertTeamGameStat(_ context.Context, s stats.TeamGameStat) (syncrun.Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := statKey{game: s.GameExternalID, owner: s.TeamExternalID}
	existing, ok := r.teams[key]
	if ok && existing == s {
		return syncrun.OutcomeUnchanged, nil
	}
	r.teams[key] = s
	if !ok {
		return syncrun.OutcomeCreated, nil
	}
	return syncrun.OutcomeUpdated, nil
}

func (r *StatsRepository) ListPlayerStatsByGame(_ context.Context, gameExternalID string) ([]stats.PlayerGameStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stats.PlayerGameStat, 0)
	for key, s := range r.players {
		if key.game == gameExternalID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TeamExternalID != out[j].TeamExternalID {
			return out[i].TeamExternalID < out[j].TeamExternalID
		}
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].PlayerExternalID < out[j].PlayerExternalID
	})
	return out, nil
}

func (r *StatsRepository) ListTeamStatsByGame(_ context.Context, gameExternalID string) ([]stats.TeamGameStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stats.TeamGameStat, 0, 2)
	for key, s := range r.teams {
		if key.game == gameExternalID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamExternalID < out[j].TeamExternalID })
	return out, nil
}
