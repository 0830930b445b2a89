package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtvision/court-vision/internal/domain/play"
	"github.com/courtvision/court-vision/internal/domain/taxonomy"
	"github.com/courtvision/court-vision/internal/infrastructure/repository/memory"
	"github.com/courtvision/court-vision/internal/platform/id"
	"github.com/courtvision/court-vision/internal/platform/logging"
	"github.com/courtvision/court-vision/internal/usecase"
)

const testJobToken = "job-token"

type apiFixture struct {
	router http.Handler
	plays  *memory.PlayRepository
}

func newAPIFixture(t *testing.T) apiFixture {
	t.Helper()

	tags := memory.NewTagRepository(memory.SeedTags())
	teams := memory.NewTeamRepository(memory.SeedTeams())
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	games := memory.NewGameRepository(memory.SeedGames(time.Now()))
	statsRepo := memory.NewStatsRepository()
	plays := memory.NewPlayRepository(tags)
	users := memory.NewUserRepository(memory.SeedUsers())

	teamService := usecase.NewTeamService(teams, players)
	handler := NewHandler(
		teamService,
		usecase.NewPlayerService(players),
		usecase.NewGameService(games, teamService, statsRepo),
		usecase.NewTagService(tags),
		usecase.NewPlayService(plays, games, tags, players, teams, users, id.NewRandomGenerator()),
		usecase.NewAnalyticsService(plays, games, teams, players, tags, taxonomy.MustDefault()),
		usecase.NewGameAnalysisService(games, teams, players, statsRepo, nil, usecase.GameAnalysisConfig{}, logging.NewNop()),
		nil,
		logging.NewNop(),
	)

	router := NewRouter(handler, logging.NewNop(), RouterConfig{
		CORSAllowedOrigins: []string{"*"},
		InternalJobToken:   testJobToken,
	})
	return apiFixture{router: router, plays: plays}
}

func (f apiFixture) do(t *testing.T, method, path, body string, header map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal %s %s response: %v (body=%s)", method, path, err, rec.Body.String())
	}
	return rec, envelope
}

func errorStatus(envelope map[string]any) string {
	errObj, _ := envelope["error"].(map[string]any)
	status, _ := errObj["status"].(string)
	return status
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	rec, body := f.do(t, http.MethodGet, "/healthz", "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	data, _ := body["data"].(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("unexpected health payload: %v", body)
	}
}

func TestRouter_CreatePlay_UnknownGameIsNotFoundAndStoresNothing(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	rec, body := f.do(t, http.MethodPost, "/plays",
		`{"gameId":"999999","quarter":1,"gameTime":"10:00","tagId":"pick-and-roll","playerId":"434"}`, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorStatus(body))

	actions, err := f.plays.ListActions(context.Background(), play.ActionFilter{})
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestRouter_CreatePlay_SingleTagShorthand(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	rec, body := f.do(t, http.MethodPost, "/plays",
		`{"gameId":"401585001","quarter":3,"gameTime":"05:12","tagId":"pick-and-roll","playerId":"434","context":{"outcome":"made","shotZone":"paint"}}`,
		map[string]string{userIDHeader: memory.SystemUserID})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	data, _ := body["data"].(map[string]any)
	assert.Equal(t, "401585001", data["gameId"])
	assert.Equal(t, memory.SystemUserID, data["createdBy"])

	tags, _ := data["tags"].([]any)
	require.Len(t, tags, 1)
	first, _ := tags[0].(map[string]any)
	assert.Equal(t, "pick-and-roll", first["tagId"])
	assert.Equal(t, "2", first["teamId"])
	ctxObj, _ := first["context"].(map[string]any)
	assert.Equal(t, "MADE", ctxObj["outcome"])
	assert.Equal(t, "PAINT", ctxObj["shotZone"])

	playID, _ := data["id"].(string)
	rec, _ = f.do(t, http.MethodPost, "/plays/"+playID+"/tags", `{"tagId":"layup","playerId":"434"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, body = f.do(t, http.MethodGet, "/games/401585001/plays", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	plays, _ := body["data"].([]any)
	require.Len(t, plays, 1)
	stored, _ := plays[0].(map[string]any)
	storedTags, _ := stored["tags"].([]any)
	assert.Len(t, storedTags, 2)
}

func TestRouter_CreatePlay_RejectsBadPayloads(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	payloads := map[string]string{
		"unknown field":   `{"gameId":"401585001","quarter":1,"gameTime":"10:00","color":"green"}`,
		"missing quarter": `{"gameId":"401585001","gameTime":"10:00"}`,
		"bad clock":       `{"gameId":"401585001","quarter":1,"gameTime":"ten"}`,
		"empty body":      ``,
	}
	for name, payload := range payloads {
		req := httptest.NewRequest(http.MethodPost, "/plays", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d (%s)", name, rec.Code, rec.Body.String())
		}
	}
}

func TestRouter_NextTagSuggestions_StaticWithoutHistory(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	rec, body := f.do(t, http.MethodGet, "/analytics/next-tag-suggestions?lastTag=pick-and-roll", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	data, _ := body["data"].(map[string]any)
	assert.Equal(t, "static", data["source"])

	suggestions, _ := data["suggestions"].([]any)
	want := taxonomy.MustDefault().Transitions[taxonomy.PickAndRoll]
	require.Len(t, suggestions, len(want))
	for i, s := range suggestions {
		item, _ := s.(map[string]any)
		assert.Equal(t, want[i], item["tagName"])
	}
}

func TestRouter_DecisionQuality_NeutralWithoutPlays(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	rec, body := f.do(t, http.MethodGet, "/analytics/decision-quality/434", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data, _ := body["data"].(map[string]any)
	assert.Equal(t, "N/A", data["grade"])
	assert.Empty(t, data["decisions"])
}

func TestRouter_GameAnalysis_FallbackIsStable(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	first := httptest.NewRecorder()
	f.router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/games/401585001/analysis", nil))
	second := httptest.NewRecorder()
	f.router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/games/401585001/analysis", nil))

	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Contains(t, first.Body.String(), `"source":"fallback"`)

	rec, _ := f.do(t, http.MethodGet, "/games/401585002/analysis", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Catalog(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	rec, body := f.do(t, http.MethodGet, "/teams/ny", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := body["data"].(map[string]any)
	assert.Equal(t, "18", data["id"])

	rec, body = f.do(t, http.MethodGet, "/players?team=LAL", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	players, _ := body["data"].([]any)
	assert.Len(t, players, 2)

	rec, _ = f.do(t, http.MethodGet, "/games?date=yesterday", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/players?limit=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = f.do(t, http.MethodPost, "/tags", `{"name":"Layup","category":"SHOT"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_InternalSyncRequiresToken(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	rec, body := f.do(t, http.MethodPost, "/internal/sync/teams", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", errorStatus(body))

	rec, body = f.do(t, http.MethodPost, "/internal/sync/teams", "", map[string]string{"X-Internal-Job-Token": testJobToken})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "UNAVAILABLE", errorStatus(body))
}

func TestSyncOptionsFromRequest(t *testing.T) {
	t.Parallel()

	opts, err := syncOptionsFromRequest(runSyncRequest{Date: "2025-01-10", Season: 2024, Force: true})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), opts.Date)
	assert.True(t, opts.From.IsZero())
	assert.Equal(t, 2024, opts.Season)
	assert.True(t, opts.Force)
}
