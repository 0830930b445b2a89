package cache

import (
	"context"
	"testing"
	"time"

	"github.com/courtvision/court-vision/internal/domain/tag"
	"github.com/courtvision/court-vision/internal/domain/team"
	"github.com/courtvision/court-vision/internal/infrastructure/repository/memory"
	basecache "github.com/courtvision/court-vision/internal/platform/cache"
)

type countingTeams struct {
	*memory.TeamRepository
	lists int
}

func (c *countingTeams) List(ctx context.Context) ([]team.Team, error) {
	c.lists++
	return c.TeamRepository.List(ctx)
}

func TestTeamRepository_CachesUntilUpsertChangesData(t *testing.T) {
	ctx := context.Background()
	next := &countingTeams{TeamRepository: memory.NewTeamRepository(memory.SeedTeams())}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		if _, err := repo.List(ctx); err != nil {
			t.Fatalf("list teams: %v", err)
		}
	}
	if next.lists != 1 {
		t.Fatalf("expected one underlying list, got %d", next.lists)
	}

	if _, err := repo.Upsert(ctx, team.Team{ExternalID: "20", Name: "76ers", Abbreviation: "PHI"}); err != nil {
		t.Fatalf("upsert team: %v", err)
	}
	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if next.lists != 2 || len(items) != 5 {
		t.Fatalf("expected cache refresh after upsert, lists=%d teams=%d", next.lists, len(items))
	}
}

func TestTagRepository_CreateInvalidatesList(t *testing.T) {
	ctx := context.Background()
	repo := NewTagRepository(memory.NewTagRepository(nil), basecache.NewStore(time.Minute))

	before, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	if len(before) != 0 {
		t.Fatalf("expected empty tag list, got %d", len(before))
	}

	if err := repo.Create(ctx, tag.Tag{ID: "hammer", Name: "Hammer", Category: tag.CategoryOffense}); err != nil {
		t.Fatalf("create tag: %v", err)
	}
	after, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	if len(after) != 1 {
		t.Fatalf("expected created tag to be visible, got %d", len(after))
	}
}
