package player

import (
	"context"

	"github.com/courtvision/court-vision/internal/domain/syncrun"
)

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Player, error)
	ListByTeam(ctx context.Context, teamExternalID string) ([]Player, error)
	GetByExternalID(ctx context.Context, externalID string) (Player, bool, error)
	GetByExternalIDs(ctx context.Context, externalIDs []string) (map[string]Player, error)
	ListExternalIDs(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, p Player) (syncrun.Outcome, error)
	UpdateSeasonAverages(ctx context.Context, externalID string, averages SeasonAverages) (syncrun.Outcome, error)
}
