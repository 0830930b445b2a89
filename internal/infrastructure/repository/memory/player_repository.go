package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/courtvision/court-vision/internal/domain/player"
	"github.com/courtvision/court-vision/internal/domain/syncrun"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	byID := make(map[string]player.Player, len(players))
	for _, item := range players {
		byID[item.ExternalID] = clonePlayer(item)
	}
	return &PlayerRepository{players: byID}
}

func (r *PlayerRepository) List(_ context.Context, filter player.ListFilter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]player.Player, 0, len(r.players))
	for _, item := range r.players {
		if filter.TeamExternalID != "" && item.TeamExternalID != filter.TeamExternalID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.FullName()), search) {
			continue
		}
		out = append(out, clonePlayer(item))
	}
	sortPlayers(out)
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamExternalID string) ([]player.Player, error) {
	if teamExternalID == "" {
		return []player.Player{}, nil
	}
	return r.List(ctx, player.ListFilter{TeamExternalID: teamExternalID})
}

func (r *PlayerRepository) GetByExternalID(_ context.Context, externalID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.players[externalID]
	if !ok {
		return player.Player{}, false, nil
	}
	return clonePlayer(item), true, nil
}

func (r *PlayerRepository) GetByExternalIDs(_ context.Context, externalIDs []string) (map[string]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]player.Player, len(externalIDs))
	for _, id := range externalIDs {
		if item, ok := r.players[id]; ok {
			out[id] = clonePlayer(item)
		}
	}
	return out, nil
}

func (r *PlayerRepository) ListExternalIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.players))
	for id := range r.players {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (r *PlayerRepository) Upsert(_ context.Context, p player.Player) (syncrun.Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	existing, ok := r.players[p.ExternalID]
	if !ok {
		p.SeasonAverages = nil
		p.HasStatistics = false
		p.CreatedAt, p.UpdatedAt = now, now
		r.players[p.ExternalID] = p
		return syncrun.OutcomeCreated, nil
	}
	if existing.SameProfile(p) {
		return syncrun.OutcomeUnchanged, nil
	}
	p.SeasonAverages = existing.SeasonAverages
	p.HasStatistics = existing.HasStatistics
	p.CreatedAt, p.UpdatedAt = existing.CreatedAt, now
	r.players[p.ExternalID] = p
	return syncrun.OutcomeUpdated, nil
}

func (r *PlayerRepository) UpdateSeasonAverages(_ context.Context, externalID string, averages player.SeasonAverages) (syncrun.Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.players[externalID]
	if !ok {
		return syncrun.OutcomeUnchanged, nil
	}
	if existing.HasStatistics && existing.SeasonAverages != nil && *existing.SeasonAverages == averages {
		return syncrun.OutcomeUnchanged, nil
	}
	existing.SeasonAverages = &averages
	existing.HasStatistics = true
	existing.UpdatedAt = time.Now().UTC()
	r.players[externalID] = existing
	return syncrun.OutcomeUpdated, nil
}

func clonePlayer(p player.Player) player.Player {
	if p.SeasonAverages != nil {
		avg := *p.SeasonAverages
		p.SeasonAverages = &avg
	}
	return p
}

func sortPlayers(items []player.Player) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].LastName != items[j].LastName {
			return items[i].LastName < items[j].LastName
		}
		if items[i].FirstName != items[j].FirstName {
			return items[i].FirstName < items[j].FirstName
		}
		return items[i].ExternalID < items[j].ExternalID
	})
}
