package httpapi

import (
	"net/http"

	"github.com/courtvision/court-vision/internal/usecase"
)

func (h *Handler) GetPlayerPatterns(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerPatterns")
	defer span.End()

	opts, err := patternOptionsFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID := r.PathValue("playerID")
	result, err := h.analytics.PlayerPatterns(ctx, playerID, opts)
	if err != nil {
		h.logger.WarnContext(ctx, "player patterns failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerPatternsDTO{
		PlayerID:            result.PlayerExternalID,
		TotalActions:        result.TotalActions,
		MostCommonActions:   actionCountsToDTO(result.MostCommonActions),
		QuarterDistribution: nonNilQuarters(result.QuarterDistribution),
		Outcomes:            nonNilCounts(result.Outcomes),
	})
}

func (h *Handler) GetTeamTendencies(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamTendencies")
	defer span.End()

	opts, err := patternOptionsFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.PathValue("teamID")
	result, err := h.analytics.TeamTendencies(ctx, teamID, opts)
	if err != nil {
		h.logger.WarnContext(ctx, "team tendencies failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	categories := make([]categoryShareDTO, 0, len(result.Categories))
	for _, c := range result.Categories {
		categories = append(categories, categoryShareDTO{Category: c.Category, Count: c.Count, Percentage: c.Percentage})
	}
	writeSuccess(ctx, w, http.StatusOK, teamTendenciesDTO{
		TeamID:              result.TeamExternalID,
		TotalActions:        result.TotalActions,
		MostCommonActions:   actionCountsToDTO(result.MostCommonActions),
		Categories:          categories,
		QuarterDistribution: nonNilQuarters(result.QuarterDistribution),
	})
}

func (h *Handler) GetDecisionQuality(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDecisionQuality")
	defer span.End()

	playerID := r.PathValue("playerID")
	result, err := h.analytics.DecisionQuality(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "decision quality failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, decisionQualityToDTO(result))
}

func (h *Handler) GetNextTagSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNextTagSuggestions")
	defer span.End()

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lastTag := queryString(r, "lastTag")
	result, err := h.analytics.NextTagSuggestions(ctx, lastTag, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "next tag suggestions failed", "last_tag", lastTag, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nextTagSuggestionsDTO{
		LastTag:     result.LastTag,
		Source:      result.Source,
		Total:       result.Total,
		Suggestions: suggestionsToDTO(result.Suggestions),
	})
}

func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSuggestions")
	defer span.End()

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.analytics.Suggestions(ctx, queryString(r, "previousAction"), limit)
	if err != nil {
		h.logger.WarnContext(ctx, "action suggestions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, actionSuggestionsDTO{
		PreviousAction: result.PreviousAction,
		Allowed:        quickActionsToDTO(result.Allowed),
		Predictions:    suggestionsToDTO(result.Predictions),
	})
}

func (h *Handler) GetGameContext(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameContext")
	defer span.End()

	gameID := r.PathValue("gameID")
	result, err := h.analytics.GameContext(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "game context failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameContextToDTO(result))
}

func (h *Handler) GetDefensiveScouting(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDefensiveScouting")
	defer span.End()

	playerID := r.PathValue("playerID")
	result, err := h.analytics.DefensiveScouting(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "defensive scouting failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoutingReportToDTO(result))
}

func patternOptionsFromQuery(r *http.Request) (usecase.PatternOptions, error) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		return usecase.PatternOptions{}, err
	}
	days, err := queryInt(r, "days")
	if err != nil {
		return usecase.PatternOptions{}, err
	}
	return usecase.PatternOptions{Limit: limit, LookbackDays: days}, nil
}

func nonNilQuarters(in map[int]int) map[int]int {
	if in == nil {
		return map[int]int{}
	}
	return in
}
