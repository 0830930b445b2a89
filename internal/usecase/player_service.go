package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/courtvision/court-vision/internal/domain/player"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) ListPlayers(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	limit, err := normalizeLimit(filter.Limit)
	if err != nil {
		return nil, err
	}
	filter.Limit = limit
	filter.Search = strings.TrimSpace(filter.Search)
	filter.TeamExternalID = strings.TrimSpace(filter.TeamExternalID)

	items, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	return lookupPlayer(ctx, s.playerRepo, playerID)
}

func lookupPlayer(ctx context.Context, repo player.Repository, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByExternalID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return item, nil
}

// normalizeLimit maps 0 to the default and rejects values outside 1..max.
func normalizeLimit(limit int) (int, error) {
	switch {
	case limit == 0:
		return defaultListLimit, nil
	case limit < 0 || limit > maxListLimit:
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, maxListLimit)
	default:
		return limit, nil
	}
}
