package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/courtvision/court-vision/internal/domain/game"
	"github.com/courtvision/court-vision/internal/domain/player"
	"github.com/courtvision/court-vision/internal/domain/tag"
	"github.com/courtvision/court-vision/internal/domain/team"
	"github.com/courtvision/court-vision/internal/infrastructure/repository/memory"
	gamemock "github.com/courtvision/court-vision/internal/mocks/domain/game"
	playermock "github.com/courtvision/court-vision/internal/mocks/domain/player"
	tagmock "github.com/courtvision/court-vision/internal/mocks/domain/tag"
	teammock "github.com/courtvision/court-vision/internal/mocks/domain/team"
)

func TestTeamService_GetTeam_FallsBackToAbbreviation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, nil)

	teamRepo.
		On("GetByExternalID", mock.Anything, "BOS").
		Return(team.Team{}, false, nil).
		Once()
	teamRepo.
		On("GetByAbbreviation", mock.Anything, "BOS").
		Return(team.Team{ExternalID: "2", Abbreviation: "BOS", Name: "Celtics"}, true, nil).
		Once()

	got, err := service.GetTeam(ctx, "BOS")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if got.ExternalID != "2" {
		t.Fatalf("unexpected team id: got=%s want=2", got.ExternalID)
	}
}

func TestTeamService_ListRoster_TeamNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewTeamService(teamRepo, playerRepo)

	teamRepo.On("GetByExternalID", mock.Anything, "999").Return(team.Team{}, false, nil).Once()
	teamRepo.On("GetByAbbreviation", mock.Anything, "999").Return(team.Team{}, false, nil).Once()

	_, err := service.ListRoster(ctx, "999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_ListRoster(t *testing.T) {
	t.Parallel()

	service := NewTeamService(memory.NewTeamRepository(memory.SeedTeams()), memory.NewPlayerRepository(memory.SeedPlayers()))

	roster, err := service.ListRoster(context.Background(), "lal")
	require.NoError(t, err)
	require.Len(t, roster, 2)
	for _, p := range roster {
		assert.Equal(t, "13", p.TeamExternalID)
	}
}

func TestPlayerService_ListPlayers_NormalizesFilter(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	playerRepo.
		On("List", mock.Anything, player.ListFilter{TeamExternalID: "2", Search: "tat", Limit: defaultListLimit}).
		Return([]player.Player{{ExternalID: "434"}}, nil).
		Once()

	got, err := service.ListPlayers(context.Background(), player.ListFilter{TeamExternalID: " 2 ", Search: " tat "})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = service.ListPlayers(context.Background(), player.ListFilter{Limit: maxListLimit + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPlayerService_GetPlayer_RequiresID(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(playermock.NewRepository(t))
	_, err := service.GetPlayer(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGameService_ListGames_ValidatesAndResolvesTeam(t *testing.T) {
	t.Parallel()

	gameRepo := gamemock.NewRepository(t)
	teams := NewTeamService(memory.NewTeamRepository(memory.SeedTeams()), nil)
	service := NewGameService(gameRepo, teams, memory.NewStatsRepository())

	gameRepo.
		On("List", mock.Anything, game.ListFilter{Day: "2025-01-10", Status: game.StatusFinished, TeamExternalID: "18", Limit: 10}).
		Return([]game.Game{{ExternalID: "401705001"}}, nil).
		Once()

	got, err := service.ListGames(context.Background(), ListGamesInput{Date: "2025-01-10", Status: "finished", Team: "NY", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	cases := map[string]ListGamesInput{
		"bad date":   {Date: "10-01-2025"},
		"bad status": {Status: "halftime-show"},
		"bad limit":  {Limit: -1},
	}
	for name, input := range cases {
		_, err := service.ListGames(context.Background(), input)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}

	_, err = service.ListGames(context.Background(), ListGamesInput{Team: "XXX"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGameService_GetBoxScore_EmptyBeforeSync(t *testing.T) {
	t.Parallel()

	service := NewGameService(
		memory.NewGameRepository(memory.SeedGames(time.Now())),
		NewTeamService(memory.NewTeamRepository(memory.SeedTeams()), nil),
		memory.NewStatsRepository(),
	)

	box, err := service.GetBoxScore(context.Background(), "401585001")
	require.NoError(t, err)
	assert.True(t, box.IsEmpty())

	_, err = service.GetBoxScore(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTagService_CreateTag(t *testing.T) {
	t.Parallel()

	service := NewTagService(memory.NewTagRepository(memory.SeedTags()))
	ctx := context.Background()

	created, err := service.CreateTag(ctx, CreateTagInput{
		Name:        "Horns Flare",
		Category:    "offense",
		Triggers:    []TriggerInput{{Kind: "after_tag", Value: "Screen"}},
		Suggestions: []string{"Three Pointer"},
	})
	require.NoError(t, err)
	assert.Equal(t, "horns-flare", created.ID)
	assert.Equal(t, tag.CategoryOffense, created.Category)
	assert.Equal(t, tag.TriggerAfterTag, created.Triggers[0].Kind)

	got, err := service.GetTag(ctx, "Horns Flare")
	require.NoError(t, err)
	assert.Equal(t, "horns-flare", got.ID)

	_, err = service.CreateTag(ctx, CreateTagInput{Name: "Horns Flare", Category: "OFFENSE"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = service.CreateTag(ctx, CreateTagInput{Name: "Zone", Category: "SPECIAL TEAMS"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.CreateTag(ctx, CreateTagInput{Name: "Zone", Category: "DEFENSE", Triggers: []TriggerInput{{Kind: "SOMETIME", Value: "x"}}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTagService_ListTags_FiltersCategory(t *testing.T) {
	t.Parallel()

	tagRepo := tagmock.NewRepository(t)
	service := NewTagService(tagRepo)

	tagRepo.
		On("List", mock.Anything, tag.CategoryDefense).
		Return([]tag.Tag{{ID: "steal", Name: "Steal", Category: tag.CategoryDefense}}, nil).
		Once()

	got, err := service.ListTags(context.Background(), "defense")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = service.ListTags(context.Background(), "bench")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
