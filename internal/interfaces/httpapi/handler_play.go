package httpapi

import (
	"net/http"
	"strings"

	"github.com/courtvision/court-vision/internal/domain/play"
	"github.com/courtvision/court-vision/internal/usecase"
)

type playContextRequest struct {
	Action     string `json:"action" validate:"omitempty,max=100"`
	Outcome    string `json:"outcome"`
	ShotZone   string `json:"shotZone"`
	DefenderID string `json:"defenderId"`
	Notes      string `json:"notes" validate:"omitempty,max=500"`
}

type playTagRequest struct {
	TagID    string              `json:"tagId" validate:"required"`
	PlayerID string              `json:"playerId"`
	TeamID   string              `json:"teamId"`
	Context  *playContextRequest `json:"context"`
}

// createPlayRequest accepts either a tags list or the single-tag shorthand
// (tagId, playerId, teamId, context) at the top level.
type createPlayRequest struct {
	GameID      string              `json:"gameId" validate:"required"`
	Description string              `json:"description" validate:"omitempty,max=1000"`
	Quarter     int                 `json:"quarter" validate:"required,min=1"`
	GameTime    string              `json:"gameTime" validate:"required"`
	CreatedBy   string              `json:"createdBy"`
	TagID       string              `json:"tagId"`
	PlayerID    string              `json:"playerId"`
	TeamID      string              `json:"teamId"`
	Context     *playContextRequest `json:"context"`
	Tags        []playTagRequest    `json:"tags" validate:"omitempty,dive"`
}

type updatePlayRequest struct {
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Quarter     *int    `json:"quarter" validate:"omitempty,min=1"`
	GameTime    *string `json:"gameTime"`
}

func (h *Handler) ListPlaysByGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlaysByGame")
	defer span.End()

	gameID := r.PathValue("gameID")
	plays, err := h.playService.ListPlaysByGame(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "list plays failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playsToDTO(plays))
}

func (h *Handler) CreatePlay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlay")
	defer span.End()

	var req createPlayRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.CreatePlayInput{
		GameID:      req.GameID,
		Description: req.Description,
		Quarter:     req.Quarter,
		GameTime:    req.GameTime,
		CreatedByID: strings.TrimSpace(req.CreatedBy),
	}
	if input.CreatedByID == "" {
		input.CreatedByID, _ = userIDFromContext(ctx)
	}
	if strings.TrimSpace(req.TagID) != "" {
		input.Tags = append(input.Tags, tagInputFromRequest(playTagRequest{
			TagID:    req.TagID,
			PlayerID: req.PlayerID,
			TeamID:   req.TeamID,
			Context:  req.Context,
		}))
	}
	for _, t := range req.Tags {
		input.Tags = append(input.Tags, tagInputFromRequest(t))
	}

	item, err := h.playService.CreatePlay(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create play failed", "game_id", req.GameID, "tags", len(input.Tags), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playToDTO(item))
}

func (h *Handler) GetPlay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlay")
	defer span.End()

	playID := r.PathValue("playID")
	item, err := h.playService.GetPlay(ctx, playID)
	if err != nil {
		h.logger.WarnContext(ctx, "get play failed", "play_id", playID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playToDTO(item))
}

func (h *Handler) UpdatePlay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlay")
	defer span.End()

	var req updatePlayRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	playID := r.PathValue("playID")
	item, err := h.playService.UpdatePlay(ctx, playID, usecase.UpdatePlayInput{
		Description: req.Description,
		Quarter:     req.Quarter,
		GameTime:    req.GameTime,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update play failed", "play_id", playID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playToDTO(item))
}

func (h *Handler) AddPlayTag(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayTag")
	defer span.End()

	var req playTagRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	playID := r.PathValue("playID")
	item, err := h.playService.AddTag(ctx, playID, tagInputFromRequest(req))
	if err != nil {
		h.logger.WarnContext(ctx, "add play tag failed", "play_id", playID, "tag_id", req.TagID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playTagToDTO(item))
}

func tagInputFromRequest(req playTagRequest) usecase.TagInput {
	input := usecase.TagInput{
		TagID:    req.TagID,
		PlayerID: req.PlayerID,
		TeamID:   req.TeamID,
	}
	if c := req.Context; c != nil {
		input.Context = play.Context{
			Action:             strings.TrimSpace(c.Action),
			Outcome:            play.Outcome(strings.ToUpper(strings.TrimSpace(c.Outcome))),
			ShotZone:           play.ShotZone(strings.ToUpper(strings.TrimSpace(c.ShotZone))),
			DefenderExternalID: strings.TrimSpace(c.DefenderID),
			Notes:              strings.TrimSpace(c.Notes),
		}
	}
	return input
}
