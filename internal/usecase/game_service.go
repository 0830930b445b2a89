package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/courtvision/court-vision/internal/domain/game"
	"github.com/courtvision/court-vision/internal/domain/stats"
)

type ListGamesInput struct {
	Date   string
	Status string
	Team   string
	Limit  int
}

type GameService struct {
	gameRepo  game.Repository
	teamSvc   *TeamService
	statsRepo stats.Repository
}

func NewGameService(gameRepo game.Repository, teamSvc *TeamService, statsRepo stats.Repository) *GameService {
	return &GameService{
		gameRepo:  gameRepo,
		teamSvc:   teamSvc,
		statsRepo: statsRepo,
	}
}

func (s *GameService) ListGames(ctx context.Context, input ListGamesInput) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListGames")
	defer span.End()

	limit, err := normalizeLimit(input.Limit)
	if err != nil {
		return nil, err
	}
	filter := game.ListFilter{Day: strings.TrimSpace(input.Date), Limit: limit}
	if filter.Day != "" {
		if _, _, err := game.DayBounds(filter.Day); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if raw := strings.TrimSpace(input.Status); raw != "" {
		status, err := game.ParseStatus(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = status
	}
	if raw := strings.TrimSpace(input.Team); raw != "" {
		item, err := s.teamSvc.getTeam(ctx, raw)
		if err != nil {
			return nil, err
		}
		filter.TeamExternalID = item.ExternalID
	}

	items, err := s.gameRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return items, nil
}

func (s *GameService) GetGame(ctx context.Context, gameID string) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GetGame")
	defer span.End()

	return s.getGame(ctx, gameID)
}

// GetBoxScore returns the stored team and player lines of a game. A game
// that has not been synced yet yields an empty box score.
func (s *GameService) GetBoxScore(ctx context.Context, gameID string) (stats.BoxScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GetBoxScore")
	defer span.End()

	item, err := s.getGame(ctx, gameID)
	if err != nil {
		return stats.BoxScore{}, err
	}
	return loadBoxScore(ctx, s.statsRepo, item.ExternalID)
}

func (s *GameService) getGame(ctx context.Context, gameID string) (game.Game, error) {
	return lookupGame(ctx, s.gameRepo, gameID)
}

func lookupGame(ctx context.Context, repo game.Repository, gameID string) (game.Game, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return game.Game{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByExternalID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}
	return item, nil
}

func loadBoxScore(ctx context.Context, repo stats.Repository, gameID string) (stats.BoxScore, error) {
	teams, err := repo.ListTeamStatsByGame(ctx, gameID)
	if err != nil {
		return stats.BoxScore{}, fmt.Errorf("list team stats: %w", err)
	}
	players, err := repo.ListPlayerStatsByGame(ctx, gameID)
	if err != nil {
		return stats.BoxScore{}, fmt.Errorf("list player stats: %w", err)
	}
	return stats.BoxScore{GameExternalID: gameID, Teams: teams, Players: players}, nil
}
