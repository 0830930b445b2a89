package memory

import (
	"context"
	"testing"
	"time"

	"github.com/courtvision/court-vision/internal/domain/game"
	"github.com/courtvision/court-vision/internal/domain/syncrun"
)

func TestGameRepository_UnchangedUpsertStillMarksSynced(t *testing.T) {
	ctx := context.Background()
	repo := NewGameRepository(nil)
	first := time.Date(2026, 1, 10, 6, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)

	g := game.Game{
		ExternalID:         "401585001",
		Date:               time.Date(2026, 1, 10, 0, 30, 0, 0, time.UTC),
		HomeTeamExternalID: "13",
		AwayTeamExternalID: "2",
		Status:             game.StatusFinished,
		HomeScore:          112,
		AwayScore:          104,
	}

	repo.now = func() time.Time { return first }
	if got, err := repo.Upsert(ctx, g); err != nil || got != syncrun.OutcomeCreated {
		t.Fatalf("first upsert: outcome=%s err=%v", got, err)
	}

	repo.now = func() time.Time { return second }
	if got, err := repo.Upsert(ctx, g); err != nil || got != syncrun.OutcomeUnchanged {
		t.Fatalf("second upsert: outcome=%s err=%v", got, err)
	}

	stored, ok, err := repo.GetByExternalID(ctx, g.ExternalID)
	if err != nil || !ok {
		t.Fatalf("get game: ok=%v err=%v", ok, err)
	}
	if !stored.LastSyncedAt.Equal(second) {
		t.Fatalf("expected last synced at %s, got %s", second, stored.LastSyncedAt)
	}
}
