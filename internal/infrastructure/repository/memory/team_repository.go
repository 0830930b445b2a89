package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/courtvision/court-vision/internal/domain/syncrun"
	"github.com/courtvision/court-vision/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[string]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	byID := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		item.Abbreviation = team.NormalizeAbbreviation(item.Abbreviation)
		byID[item.ExternalID] = item
	}
	return &TeamRepository{teams: byID}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Conference != out[j].Conference {
			return out[i].Conference < out[j].Conference
		}
		if out[i].Division != out[j].Division {
			return out[i].Division < out[j].Division
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *TeamRepository) GetByExternalID(_ context.Context, externalID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[externalID]
	return item, ok, nil
}

func (r *TeamRepository) GetByAbbreviation(_ context.Context, abbreviation string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	abbreviation = team.NormalizeAbbreviation(abbreviation)
	for _, item := range r.teams {
		if item.Abbreviation == abbreviation {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) Upsert(_ context.Context, t team.Team) (syncrun.Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	t.Abbreviation = team.NormalizeAbbreviation(t.Abbreviation)
	existing, ok := r.teams[t.ExternalID]
	if !ok {
		t.CreatedAt, t.UpdatedAt = now, now
		r.teams[t.ExternalID] = t
		return syncrun.OutcomeCreated, nil
	}
	if existing.SameContent(t) {
		return syncrun.OutcomeUnchanged, nil
	}
	t.CreatedAt, t.UpdatedAt = existing.CreatedAt, now
	r.teams[t.ExternalID] = t
	return syncrun.OutcomeUpdated, nil
}
