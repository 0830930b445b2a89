package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/courtvision/court-vision/internal/domain/game"
	"github.com/courtvision/court-vision/internal/domain/player"
	qb "github.com/courtvision/court-vision/internal/platform/querybuilder"
)

func TestGameUpsertSQL_ReportsInsertAndSkipsUnchanged(t *testing.T) {
	g := game.Game{
		ExternalID:         "401585001",
		Date:               time.Date(2026, 1, 10, 0, 30, 0, 0, time.UTC),
		HomeTeamExternalID: "13",
		AwayTeamExternalID: "2",
		HomeScore:          112,
		AwayScore:          104,
		Status:             game.StatusFinished,
		Season:             2025,
	}
	builder, err := qb.UpsertModel("games", gameToUpsert(g), []string{"external_id"})
	if err != nil {
		t.Fatalf("prepare game upsert: %v", err)
	}
	query, args, err := upsertSQL(builder, "updated_at = NOW()", "last_synced_at = NOW()")
	if err != nil {
		t.Fatalf("build game upsert: %v", err)
	}

	for _, fragment := range []string{
		"INSERT INTO games (external_id, game_date,",
		"ON CONFLICT (external_id) DO UPDATE SET game_date = EXCLUDED.game_date,",
		"updated_at = NOW(), last_synced_at = NOW() WHERE (games.game_date,",
		") IS DISTINCT FROM (EXCLUDED.game_date,",
		"RETURNING (xmax = 0) AS inserted",
	} {
		if !strings.Contains(query, fragment) {
			t.Fatalf("upsert query missing %q:\n%s", fragment, query)
		}
	}
	if strings.Contains(query, "games.external_id") {
		t.Fatalf("conflict key must not be compared: %s", query)
	}
	if len(args) != len(qb.Columns(gameToUpsert(g))) || args[0] != "401585001" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestGameTouchSyncedQuery(t *testing.T) {
	query, args, err := gameTouchSyncedQuery("401585001").ToSQL()
	if err != nil {
		t.Fatalf("build touch query: %v", err)
	}
	if query != "UPDATE games SET last_synced_at = NOW() WHERE external_id = $1" {
		t.Fatalf("unexpected touch query: %s", query)
	}
	if len(args) != 1 || args[0] != "401585001" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestPlayerListQuery_SearchIsLiteral(t *testing.T) {
	query, args, err := playerListQuery(player.ListFilter{TeamExternalID: "13", Search: " 100%_ ", Limit: 20}).ToSQL()
	if err != nil {
		t.Fatalf("build player list query: %v", err)
	}
	if !strings.Contains(query, "WHERE team_external_id = $1 AND (first_name || ' ' || last_name) ILIKE $2") {
		t.Fatalf("unexpected player list query: %s", query)
	}
	if len(args) != 2 || args[1] != `%100\%\_%` {
		t.Fatalf("expected escaped search pattern, got %+v", args)
	}
}
