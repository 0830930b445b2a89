package httpapi

import (
	"net/http"
	"strings"

	"github.com/courtvision/court-vision/internal/domain/player"
	"github.com/courtvision/court-vision/internal/usecase"
)

type createTagRequest struct {
	ID          string           `json:"id" validate:"omitempty,max=64"`
	Name        string           `json:"name" validate:"required,max=100"`
	Category    string           `json:"category" validate:"required"`
	Subcategory string           `json:"subcategory" validate:"omitempty,max=100"`
	Description string           `json:"description" validate:"omitempty,max=500"`
	Triggers    []triggerRequest `json:"triggers" validate:"omitempty,dive"`
	Suggestions []string         `json:"suggestions" validate:"omitempty,dive,required"`
}

type triggerRequest struct {
	Kind  string `json:"kind" validate:"required"`
	Value string `json:"value" validate:"required"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	item, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) ListRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoster")
	defer span.End()

	teamID := r.PathValue("teamID")
	players, err := h.teamService.ListRoster(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list roster failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := player.ListFilter{Search: queryString(r, "search"), Limit: limit}
	if teamRef := queryString(r, "team"); teamRef != "" {
		item, err := h.teamService.GetTeam(ctx, teamRef)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		filter.TeamExternalID = item.ExternalID
	}

	players, err := h.playerService.ListPlayers(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	games, err := h.gameService.ListGames(ctx, usecase.ListGamesInput{
		Date:   queryString(r, "date"),
		Status: queryString(r, "status"),
		Team:   queryString(r, "team"),
		Limit:  limit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list games failed", "query", r.URL.RawQuery, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, g := range games {
		items = append(items, gameToDTO(g))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	gameID := r.PathValue("gameID")
	item, err := h.gameService.GetGame(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

func (h *Handler) GetBoxScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBoxScore")
	defer span.End()

	gameID := r.PathValue("gameID")
	box, err := h.gameService.GetBoxScore(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get box score failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, boxScoreToDTO(box))
}

func (h *Handler) GetGameAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameAnalysis")
	defer span.End()

	gameID := r.PathValue("gameID")
	analysis, err := h.analysisService.Analyze(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "game analysis failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameAnalysisToDTO(analysis))
}

func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTags")
	defer span.End()

	tags, err := h.tagService.ListTags(ctx, queryString(r, "category"))
	if err != nil {
		h.logger.WarnContext(ctx, "list tags failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]tagDTO, 0, len(tags))
	for _, t := range tags {
		items = append(items, tagToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTag(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTag")
	defer span.End()

	tagID := r.PathValue("tagID")
	item, err := h.tagService.GetTag(ctx, tagID)
	if err != nil {
		h.logger.WarnContext(ctx, "get tag failed", "tag_id", tagID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tagToDTO(item))
}

func (h *Handler) CreateTag(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTag")
	defer span.End()

	var req createTagRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.CreateTagInput{
		ID:          req.ID,
		Name:        req.Name,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Description: req.Description,
		Suggestions: req.Suggestions,
	}
	for _, trigger := range req.Triggers {
		input.Triggers = append(input.Triggers, usecase.TriggerInput{Kind: trigger.Kind, Value: trigger.Value})
	}

	item, err := h.tagService.CreateTag(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create tag failed", "name", strings.TrimSpace(req.Name), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tagToDTO(item))
}
