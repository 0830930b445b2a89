package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoreboardFixture = `{
  "events": [
    {
      "id": "401705001",
      "date": "2025-01-11T00:30Z",
      "status": {"displayClock": "0.0", "period": 4, "type": {"name": "STATUS_FINAL", "state": "post", "completed": true}},
      "competitions": [{
        "id": "401705001",
        "competitors": [
          {"id": "2", "homeAway": "home", "score": "112", "team": {"id": "2", "abbreviation": "BOS"}},
          {"id": "18", "homeAway": "away", "score": "104", "team": {"id": "18", "abbreviation": "NY"}}
        ]
      }]
    },
    {"id": "broken", "date": "2025-01-11T01:00Z", "competitions": []}
  ]
}`

const summaryFixture = `{
  "header": {"competitions": [{"competitors": [
    {"id": "2", "homeAway": "home", "score": "112", "team": {"id": "2", "abbreviation": "BOS"}},
    {"id": "18", "homeAway": "away", "score": "104", "team": {"id": "18", "abbreviation": "NY"}}
  ]}]},
  "boxscore": {"teams": [
    {"team": {"id": "2", "abbreviation": "BOS"}, "statistics": [
      {"name": "fieldGoalPct", "displayValue": "48.9"},
      {"name": "threePointFieldGoalPct", "displayValue": "38.5"},
      {"name": "freeThrowPct", "displayValue": "81.0"},
      {"name": "totalRebounds", "displayValue": "47"},
      {"name": "assists", "displayValue": "27"},
      {"name": "totalTurnovers", "displayValue": "11"},
      {"name": "fastBreakPoints", "displayValue": "14"},
      {"name": "pointsInPaint", "displayValue": "44"}
    ]}
  ]}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(ClientConfig{BaseURL: server.URL})
}

func TestFetchScoreboard_MapsEvents(t *testing.T) {
	t.Parallel()

	var gotDates string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scoreboard", r.URL.Path)
		gotDates = r.URL.Query().Get("dates")
		_, _ = w.Write([]byte(scoreboardFixture))
	})

	games, err := client.FetchScoreboard(context.Background(), time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "20250110", gotDates)
	require.Len(t, games, 1)

	g := games[0]
	assert.Equal(t, "401705001", g.ExternalID)
	assert.Equal(t, "2", g.HomeTeamExternalID)
	assert.Equal(t, "NY", g.AwayAbbreviation)
	assert.Equal(t, 112, g.HomeScore)
	assert.Equal(t, "STATUS_FINAL", g.Status)
	assert.Equal(t, time.Date(2025, 1, 11, 0, 30, 0, 0, time.UTC), g.Date)
}

func TestFetchTeamBoxScores(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "401705001", r.URL.Query().Get("event"))
		_, _ = w.Write([]byte(summaryFixture))
	})

	rows, err := client.FetchTeamBoxScores(context.Background(), "401705001")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 112, rows[0].Points)
	assert.InDelta(t, 48.9, rows[0].FGPct, 0.001)
	assert.Equal(t, 11, rows[0].Turnovers)
	assert.Equal(t, 44, rows[0].PointsInPaint)
}

func TestTime_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	cases := map[string]time.Time{
		`"2025-01-11T00:30Z"`:           time.Date(2025, 1, 11, 0, 30, 0, 0, time.UTC),
		`"2025-01-11T00:30:15Z"`:        time.Date(2025, 1, 11, 0, 30, 15, 0, time.UTC),
		`"2025-01-10T19:30:00-05:00"`:   time.Date(2025, 1, 11, 0, 30, 0, 0, time.UTC),
		`null`:                          {},
	}
	for input, want := range cases {
		var got Time
		require.NoError(t, sonic.Unmarshal([]byte(input), &got), input)
		assert.True(t, want.Equal(got.Time), "input %s: got %s", input, got.Time)
	}

	var bad Time
	assert.Error(t, sonic.Unmarshal([]byte(`"yesterday"`), &bad))
}
