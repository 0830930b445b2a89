package team

import (
	"context"

	"github.com/courtvision/court-vision/internal/domain/syncrun"
)

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByExternalID(ctx context.Context, externalID string) (Team, bool, error)
	GetByAbbreviation(ctx context.Context, abbreviation string) (Team, bool, error)
	Upsert(ctx context.Context, t Team) (syncrun.Outcome, error)
}
