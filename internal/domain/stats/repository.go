package stats

import (
	"context"

	"github.com/courtvision/court-vision/internal/domain/syncrun"
)

type Repository interface {
	UpsertPlayerGameStat(ctx context.Context, s PlayerGameStat) (syncrun.Outcome, error)
	UpsertTeamGameStat(ctx context.Context, s TeamGameStat) (syncrun.Outcome, error)
	ListPlayerStatsByGame(ctx context.Context, gameExternalID string) ([]PlayerGameStat, error)
	ListTeamStatsByGame(ctx context.Context, gameExternalID string) ([]TeamGameStat, error)
}
