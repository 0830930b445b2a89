package game

import (
	"context"
	"time"

	"github.com/courtvision/court-vision/internal/domain/syncrun"
)

// Repository describes game persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Game, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]Game, error)
	GetByExternalID(ctx context.Context, externalID string) (Game, bool, error)
	Upsert(ctx context.Context, g Game) (syncrun.Outcome, error)
}
