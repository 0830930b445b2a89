package memory

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtvision/court-vision/internal/domain/play"
)

func newPlayFixture(id, gameID string, quarter int, clock string, createdAt time.Time, tagIDs ...string) play.Play {
	p := play.Play{
		ID:             id,
		GameExternalID: gameID,
		Quarter:        quarter,
		GameTime:       clock,
		CreatedByID:    SystemUserID,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
	for i, tagID := range tagIDs {
		p.Tags = append(p.Tags, play.PlayTag{ID: id + "-t" + strconv.Itoa(i), TagID: tagID, PlayerExternalID: "434", TeamExternalID: "2"})
	}
	return p
}

func TestPlayRepository_CreateAssignsPositions(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayRepository(NewTagRepository(SeedTags()))

	p := newPlayFixture("p1", "401585001", 1, "11:30", time.Now(), "pick-and-roll", "drive", "layup")
	require.NoError(t, repo.Create(ctx, p))

	got, ok, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got.Tags, 3)
	for i, tg := range got.Tags {
		assert.Equal(t, i, tg.Position)
		assert.Equal(t, "p1", tg.PlayID)
	}
}

func TestPlayRepository_CreateRejectsUnknownTag(t *testing.T) {
	repo := NewPlayRepository(NewTagRepository(SeedTags()))

	err := repo.Create(context.Background(), newPlayFixture("p1", "401585001", 1, "11:30", time.Now(), "not-a-tag"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, play.ErrUnknownReference))

	_, ok, _ := repo.GetByID(context.Background(), "p1")
	assert.False(t, ok, "failed create must not leave a partial play")
}

func TestPlayRepository_AddTagAppendsAfterExisting(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayRepository(NewTagRepository(SeedTags()))
	require.NoError(t, repo.Create(ctx, newPlayFixture("p1", "401585001", 2, "05:00", time.Now(), "screen", "drive")))

	added, err := repo.AddTag(ctx, play.PlayTag{ID: "extra", PlayID: "p1", TagID: "jump-shot", Position: 99})
	require.NoError(t, err)
	assert.Equal(t, 2, added.Position)

	_, err = repo.AddTag(ctx, play.PlayTag{ID: "missing", PlayID: "nope", TagID: "jump-shot"})
	assert.True(t, errors.Is(err, play.ErrNotFound))
}

func TestPlayRepository_ListActionsChronological(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayRepository(NewTagRepository(SeedTags()))
	base := time.Date(2026, 1, 10, 1, 0, 0, 0, time.UTC)

	// created out of order on purpose
	require.NoError(t, repo.Create(ctx, newPlayFixture("late", "401585001", 2, "03:00", base, "isolation")))
	require.NoError(t, repo.Create(ctx, newPlayFixture("early", "401585001", 1, "10:00", base.Add(time.Minute), "pick-and-roll", "drive")))
	require.NoError(t, repo.Create(ctx, newPlayFixture("mid", "401585001", 1, "02:00", base.Add(2*time.Minute), "post-up")))

	actions, err := repo.ListActions(ctx, play.ActionFilter{PlayerExternalID: "434"})
	require.NoError(t, err)

	var names []string
	for _, a := range actions {
		names = append(names, a.TagName)
	}
	assert.Equal(t, []string{"Pick and Roll", "Drive", "Post Up", "Isolation"}, names)
	assert.Equal(t, "OFFENSE", actions[0].TagCategory)

	none, err := repo.ListActions(ctx, play.ActionFilter{PlayerExternalID: "237"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
