package balldontlie

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtvision/court-vision/internal/usecase"
)

const teamsFixture = `{"data": [
  {"id": 2, "abbreviation": "BOS", "city": "Boston", "conference": "East", "division": "Atlantic", "full_name": "Boston Celtics", "name": "Celtics"},
  {"id": 20, "abbreviation": "NYK", "city": "New York", "conference": "East", "division": "Atlantic", "full_name": "New York Knicks", "name": "Knicks"}
]}`

func TestClient_FetchPlayersFollowsCursor(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-key", r.Header.Get("Authorization"))
		assert.Equal(t, "/players", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		calls.Add(1)

		switch r.URL.Query().Get("cursor") {
		case "":
			_, _ = w.Write([]byte(`{"data": [
			  {"id": 434, "first_name": "Jayson", "last_name": "Tatum", "position": "F", "jersey_number": "0", "team": {"id": 2, "abbreviation": "BOS"}}
			], "meta": {"next_cursor": 435, "per_page": 100}}`))
		case "435":
			_, _ = w.Write([]byte(`{"data": [
			  {"id": 999, "first_name": "Free", "last_name": "Agent", "jersey_number": 7, "draft_year": 2019, "team": null}
			], "meta": {"per_page": 100}}`))
		default:
			t.Errorf("unexpected cursor %q", r.URL.Query().Get("cursor"))
		}
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "secret-key"})

	var got []usecase.ExternalPlayer
	err := client.FetchPlayers(context.Background(), func(page []usecase.ExternalPlayer) error {
		got = append(got, page...)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int32(2), calls.Load())

	assert.Equal(t, "434", got[0].ExternalID)
	assert.Equal(t, "BOS", got[0].TeamAbbreviation)
	assert.Equal(t, "0", got[0].JerseyNumber)

	assert.Equal(t, "", got[1].TeamAbbreviation)
	assert.Equal(t, "7", got[1].JerseyNumber)
	assert.Equal(t, 2019, got[1].DraftYear)
}

func TestClient_FetchPlayersStopsOnPageError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("cursor") == "" {
			_, _ = w.Write([]byte(`{"data": [{"id": 1, "first_name": "A", "last_name": "B"}], "meta": {"next_cursor": 2}}`))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	pages := 0
	err := client.FetchPlayers(context.Background(), func(page []usecase.ExternalPlayer) error {
		pages++
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, 1, pages)
}

func TestClient_FetchSeasonAveragesBatches(t *testing.T) {
	t.Parallel()

	var batches atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024", r.URL.Query().Get("season"))
		ids := r.URL.Query()["player_ids[]"]
		assert.LessOrEqual(t, len(ids), seasonAveragesBatch)
		batches.Add(1)
		if len(ids) > 0 && ids[0] == "p0" {
			_, _ = w.Write([]byte(`{"data": [{"player_id": 434, "season": 2024, "games_played": 40, "min": "36:02", "pts": 27.1, "reb": 8.4, "ast": 5.9, "fg_pct": 0.461}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	ids := make([]string, 0, 30)
	for i := range 30 {
		ids = append(ids, "p"+string(rune('0'+i%10)))
	}

	client := NewClient(ClientConfig{BaseURL: srv.URL})
	got, err := client.FetchSeasonAverages(context.Background(), 2024, ids)
	require.NoError(t, err)
	assert.Equal(t, int32(2), batches.Load())
	require.Len(t, got, 1)
	assert.Equal(t, "434", got[0].PlayerExternalID)
	assert.InDelta(t, 27.1, got[0].Points, 0.001)
	assert.Equal(t, "36:02", got[0].Minutes)
}

func TestClient_FetchGameStatsResolvesTeams(t *testing.T) {
	t.Parallel()

	var teamCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/teams":
			teamCalls.Add(1)
			_, _ = w.Write([]byte(teamsFixture))
		case "/stats":
			assert.Equal(t, "2025-01-10", r.URL.Query().Get("dates[]"))
			_, _ = w.Write([]byte(`{"data": [
			  {"id": 1, "min": "38", "pts": 31, "reb": 9, "ast": 4, "fgm": 11, "fga": 22, "fg3m": 5, "fg3a": 11, "ftm": 4, "fta": 4,
			   "player": {"id": 434}, "team": {"id": 2, "abbreviation": "BOS"},
			   "game": {"id": 77, "date": "2025-01-10", "home_team_id": 2, "visitor_team_id": 20}},
			  {"id": 2, "player": {"id": 73}, "team": {"id": 20, "abbreviation": "NYK"},
			   "game": {"id": 77, "date": "garbage", "home_team_id": 2, "visitor_team_id": 20}}
			], "meta": {}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	for range 2 {
		var got []usecase.ExternalPlayerGameStat
		err := client.FetchGameStats(context.Background(), day, func(page []usecase.ExternalPlayerGameStat) error {
			got = append(got, page...)
			return nil
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "BOS", got[0].HomeAbbreviation)
		assert.Equal(t, "NYK", got[0].AwayAbbreviation)
		assert.Equal(t, 31, got[0].Points)
		assert.Equal(t, 0, got[0].Steals)
		assert.True(t, got[0].GameDate.Equal(day))
	}
	assert.Equal(t, int32(1), teamCalls.Load())
}

func TestClient_FetchTeams(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(teamsFixture))
	}))
	defer srv.Close()

	got, err := NewClient(ClientConfig{BaseURL: srv.URL}).FetchTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, usecase.ExternalTeam{
		ExternalID:   "2",
		Name:         "Celtics",
		Abbreviation: "BOS",
		Location:     "Boston",
		DisplayName:  "Boston Celtics",
		Conference:   "East",
		Division:     "Atlantic",
	}, got[0])
}
