package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/courtvision/court-vision/internal/domain/game"
	"github.com/courtvision/court-vision/internal/domain/play"
	"github.com/courtvision/court-vision/internal/domain/player"
	"github.com/courtvision/court-vision/internal/domain/tag"
	"github.com/courtvision/court-vision/internal/domain/team"
	"github.com/courtvision/court-vision/internal/domain/user"
	"github.com/courtvision/court-vision/internal/platform/id"
)

// TagInput references a tag by id or name, optionally with the player
// and team that performed it.
type TagInput struct {
	TagID    string
	PlayerID string
	TeamID   string
	Context  play.Context
}

type CreatePlayInput struct {
	GameID      string
	Description string
	Quarter     int
	GameTime    string
	CreatedByID string
	Tags        []TagInput
}

// UpdatePlayInput leaves nil fields untouched.
type UpdatePlayInput struct {
	Description *string
	Quarter     *int
	GameTime    *string
}

type PlayService struct {
	playRepo   play.Repository
	gameRepo   game.Repository
	tagRepo    tag.Repository
	playerRepo player.Repository
	teamRepo   team.Repository
	userRepo   user.Repository
	idGen      id.Generator
	now        func() time.Time
}

func NewPlayService(
	playRepo play.Repository,
	gameRepo game.Repository,
	tagRepo tag.Repository,
	playerRepo player.Repository,
	teamRepo team.Repository,
	userRepo user.Repository,
	idGen id.Generator,
) *PlayService {
	return &PlayService{
		playRepo:   playRepo,
		gameRepo:   gameRepo,
		tagRepo:    tagRepo,
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		userRepo:   userRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

// CreatePlay validates every reference before writing; the play and its
// tags are stored in one transaction.
func (s *PlayService) CreatePlay(ctx context.Context, input CreatePlayInput) (play.Play, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayService.CreatePlay")
	defer span.End()

	gameItem, err := lookupGame(ctx, s.gameRepo, input.GameID)
	if err != nil {
		return play.Play{}, err
	}
	if err := validateClock(input.Quarter, input.GameTime); err != nil {
		return play.Play{}, err
	}

	createdBy := strings.TrimSpace(input.CreatedByID)
	if createdBy != "" {
		if err := s.ensureUser(ctx, createdBy); err != nil {
			return play.Play{}, err
		}
	}

	tags, err := s.resolveTagInputs(ctx, gameItem, input.Tags)
	if err != nil {
		return play.Play{}, err
	}

	playID, err := s.idGen.NewID()
	if err != nil {
		return play.Play{}, fmt.Errorf("generate play id: %w", err)
	}
	now := s.now().UTC()
	item := play.Play{
		ID:             playID,
		GameExternalID: gameItem.ExternalID,
		Quarter:        input.Quarter,
		GameTime:       strings.TrimSpace(input.GameTime),
		Description:    strings.TrimSpace(input.Description),
		CreatedByID:    createdBy,
		Tags:           make([]play.PlayTag, 0, len(tags)),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for i, t := range tags {
		tagID, err := s.idGen.NewID()
		if err != nil {
			return play.Play{}, fmt.Errorf("generate play tag id: %w", err)
		}
		t.ID = tagID
		t.PlayID = playID
		t.Position = i
		t.CreatedAt = now
		item.Tags = append(item.Tags, t)
	}
	if err := item.Validate(); err != nil {
		return play.Play{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playRepo.Create(ctx, item); err != nil {
		return play.Play{}, mapPlayWriteError("create play", err)
	}
	return item, nil
}

func (s *PlayService) ListPlaysByGame(ctx context.Context, gameID string) ([]play.Play, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayService.ListPlaysByGame")
	defer span.End()

	gameItem, err := lookupGame(ctx, s.gameRepo, gameID)
	if err != nil {
		return nil, err
	}

	items, err := s.playRepo.ListByGame(ctx, gameItem.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("list plays: %w", err)
	}
	return items, nil
}

func (s *PlayService) GetPlay(ctx context.Context, playID string) (play.Play, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayService.GetPlay")
	defer span.End()

	return s.getPlay(ctx, playID)
}

// UpdatePlay overwrites the given fields. Concurrent edits are last write wins.
func (s *PlayService) UpdatePlay(ctx context.Context, playID string, input UpdatePlayInput) (play.Play, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayService.UpdatePlay")
	defer span.End()

	item, err := s.getPlay(ctx, playID)
	if err != nil {
		return play.Play{}, err
	}
	if input.Description != nil {
		item.Description = strings.TrimSpace(*input.Description)
	}
	if input.Quarter != nil {
		item.Quarter = *input.Quarter
	}
	if input.GameTime != nil {
		item.GameTime = strings.TrimSpace(*input.GameTime)
	}
	if err := validateClock(item.Quarter, item.GameTime); err != nil {
		return play.Play{}, err
	}

	if err := s.playRepo.Update(ctx, item); err != nil {
		return play.Play{}, mapPlayWriteError("update play", err)
	}
	item.UpdatedAt = s.now().UTC()
	return item, nil
}

// AddTag appends one tag after the play's existing tags.
func (s *PlayService) AddTag(ctx context.Context, playID string, input TagInput) (play.PlayTag, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayService.AddTag")
	defer span.End()

	item, err := s.getPlay(ctx, playID)
	if err != nil {
		return play.PlayTag{}, err
	}
	gameItem, err := lookupGame(ctx, s.gameRepo, item.GameExternalID)
	if err != nil {
		return play.PlayTag{}, err
	}

	resolved, err := s.resolveTagInputs(ctx, gameItem, []TagInput{input})
	if err != nil {
		return play.PlayTag{}, err
	}
	tagID, err := s.idGen.NewID()
	if err != nil {
		return play.PlayTag{}, fmt.Errorf("generate play tag id: %w", err)
	}
	pt := resolved[0]
	pt.ID = tagID
	pt.PlayID = item.ID
	pt.CreatedAt = s.now().UTC()

	created, err := s.playRepo.AddTag(ctx, pt)
	if err != nil {
		return play.PlayTag{}, mapPlayWriteError("add play tag", err)
	}
	return created, nil
}

func (s *PlayService) getPlay(ctx context.Context, playID string) (play.Play, error) {
	playID = strings.TrimSpace(playID)
	if playID == "" {
		return play.Play{}, fmt.Errorf("%w: play id is required", ErrInvalidInput)
	}

	item, exists, err := s.playRepo.GetByID(ctx, playID)
	if err != nil {
		return play.Play{}, fmt.Errorf("get play: %w", err)
	}
	if !exists {
		return play.Play{}, fmt.Errorf("%w: play=%s", ErrNotFound, playID)
	}
	return item, nil
}

func (s *PlayService) ensureUser(ctx context.Context, userID string) error {
	u, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: unknown user %s", ErrInvalidInput, userID)
	}
	if !u.CanTag() {
		return fmt.Errorf("%w: user %s cannot tag plays", ErrUnauthorized, userID)
	}
	return nil
}

// resolveTagInputs checks tags, players and teams exist and that teams
// take part in g. Tags given by name are resolved to their ids.
func (s *PlayService) resolveTagInputs(ctx context.Context, g game.Game, inputs []TagInput) ([]play.PlayTag, error) {
	out := make([]play.PlayTag, 0, len(inputs))
	playerIDs := make([]string, 0, len(inputs))

	for i, input := range inputs {
		t, err := resolveTag(ctx, s.tagRepo, input.TagID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("%w: tag %d: unknown tag %q", ErrInvalidInput, i, input.TagID)
			}
			return nil, err
		}
		if err := input.Context.Validate(); err != nil {
			return nil, fmt.Errorf("%w: tag %d: %v", ErrInvalidInput, i, err)
		}

		pt := play.PlayTag{
			TagID:            t.ID,
			PlayerExternalID: strings.TrimSpace(input.PlayerID),
			TeamExternalID:   strings.TrimSpace(input.TeamID),
			Context:          input.Context,
		}
		if pt.Context.Action == "" {
			pt.Context.Action = t.Name
		}
		if pt.TeamExternalID != "" {
			if !g.HasTeam(pt.TeamExternalID) {
				return nil, fmt.Errorf("%w: tag %d: team %s does not play in game %s", ErrInvalidInput, i, pt.TeamExternalID, g.ExternalID)
			}
			if _, exists, err := s.teamRepo.GetByExternalID(ctx, pt.TeamExternalID); err != nil {
				return nil, fmt.Errorf("get team: %w", err)
			} else if !exists {
				return nil, fmt.Errorf("%w: tag %d: unknown team %s", ErrInvalidInput, i, pt.TeamExternalID)
			}
		}
		if pt.PlayerExternalID != "" {
			playerIDs = append(playerIDs, pt.PlayerExternalID)
		}
		if d := strings.TrimSpace(pt.Context.DefenderExternalID); d != "" {
			pt.Context.DefenderExternalID = d
			playerIDs = append(playerIDs, d)
		}
		out = append(out, pt)
	}

	if len(playerIDs) == 0 {
		return out, nil
	}
	players, err := s.playerRepo.GetByExternalIDs(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("get players: %w", err)
	}
	for _, pid := range playerIDs {
		if _, ok := players[pid]; !ok {
			return nil, fmt.Errorf("%w: unknown player %s", ErrInvalidInput, pid)
		}
	}
	for i, pt := range out {
		if pt.PlayerExternalID == "" || pt.TeamExternalID != "" {
			continue
		}
		// Default the team from the player's roster when it plays in g.
		if teamID := players[pt.PlayerExternalID].TeamExternalID; teamID != "" && g.HasTeam(teamID) {
			out[i].TeamExternalID = teamID
		}
	}
	return out, nil
}

func validateClock(quarter int, gameTime string) error {
	if err := play.ValidateQuarter(quarter); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := play.ParseGameTime(gameTime, quarter); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func mapPlayWriteError(op string, err error) error {
	switch {
	case errors.Is(err, play.ErrNotFound):
		return fmt.Errorf("%w: %s: %v", ErrNotFound, op, err)
	case errors.Is(err, play.ErrUnknownReference):
		return fmt.Errorf("%w: %s: %v", ErrInvalidInput, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
