package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /teams", handler.ListTeams)
	mux.HandleFunc("GET /teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /teams/{teamID}/players", handler.ListRoster)
	mux.HandleFunc("GET /players", handler.ListPlayers)
	mux.HandleFunc("GET /players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /games", handler.ListGames)
	mux.HandleFunc("GET /games/{gameID}", handler.GetGame)
	mux.HandleFunc("GET /games/{gameID}/boxscore", handler.GetBoxScore)
	mux.HandleFunc("GET /games/{gameID}/analysis", handler.GetGameAnalysis)
	mux.HandleFunc("GET /tags", handler.ListTags)
	mux.HandleFunc("GET /tags/{tagID}", handler.GetTag)
	mux.HandleFunc("POST /tags", handler.CreateTag)
}

func registerTaggingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /games/{gameID}/plays", handler.ListPlaysByGame)
	mux.HandleFunc("POST /plays", handler.CreatePlay)
	mux.HandleFunc("GET /plays/{playID}", handler.GetPlay)
	mux.HandleFunc("PUT /plays/{playID}", handler.UpdatePlay)
	mux.HandleFunc("POST /plays/{playID}/tags", handler.AddPlayTag)
}

func registerAnalyticsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /analytics/game-context/{gameID}", handler.GetGameContext)
	mux.HandleFunc("GET /analytics/suggestions", handler.GetSuggestions)
	mux.HandleFunc("GET /analytics/player-patterns/{playerID}", handler.GetPlayerPatterns)
	mux.HandleFunc("GET /analytics/team-tendencies/{teamID}", handler.GetTeamTendencies)
	mux.HandleFunc("GET /analytics/decision-quality/{playerID}", handler.GetDecisionQuality)
	mux.HandleFunc("GET /analytics/defensive-scouting/{playerID}", handler.GetDefensiveScouting)
	mux.HandleFunc("GET /analytics/next-tag-suggestions", handler.GetNextTagSuggestions)
}

func registerInternalSyncRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /internal/sync/{entity}", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSync)))
	mux.Handle("GET /internal/sync/runs", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ListSyncRuns)))
	mux.Handle("GET /internal/sync/runs/{runID}", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.GetSyncRun)))
}
