package postgres

import (
	"time"

	"github.com/courtvision/court-vision/internal/domain/game"
)

var gameColumns = []string{
	"external_id", "game_date", "home_team_external_id", "away_team_external_id", "home_score",
	"away_score", "status", "season", "period", "clock", "last_synced_at",
}

type gameTableModel struct {
	ExternalID         string    `db:"external_id"`
	GameDate           time.Time `db:"game_date"`
	HomeTeamExternalID string    `db:"home_team_external_id"`
	AwayTeamExternalID string    `db:"away_team_external_id"`
	HomeScore          int       `db:"home_score"`
	AwayScore          int       `db:"away_score"`
	Status             string    `db:"status"`
	Season             int       `db:"season"`
	Period             int       `db:"period"`
	Clock              string    `db:"clock"`
	LastSyncedAt       time.Time `db:"last_synced_at"`
}

type gameUpsertModel struct {
	ExternalID         string    `db:"external_id"`
	GameDate           time.Time `db:"game_date"`
	HomeTeamExternalID string    `db:"home_team_external_id"`
	AwayTeamExternalID string    `db:"away_team_external_id"`
	HomeScore          int       `db:"home_score"`
	AwayScore          int       `db:"away_score"`
	Status             string    `db:"status"`
	Season             int       `db:"season"`
	Period             int       `db:"period"`
	Clock              string    `db:"clock"`
}

func gameFromRow(row gameTableModel) game.Game {
	return game.Game{
		ExternalID:         row.ExternalID,
		Date:               row.GameDate,
		HomeTeamExternalID: row.HomeTeamExternalID,
		AwayTeamExternalID: row.AwayTeamExternalID,
		HomeScore:          row.HomeScore,
		AwayScore:          row.AwayScore,
		Status:             game.Status(row.Status),
		Season:             row.Season,
		Period:             row.Period,
		Clock:              row.Clock,
		LastSyncedAt:       row.LastSyncedAt,
	}
}

func gameToUpsert(g game.Game) gameUpsertModel {
	return gameUpsertModel{
		ExternalID:         g.ExternalID,
		GameDate:           g.Date.UTC(),
		HomeTeamExternalID: g.HomeTeamExternalID,
		AwayTeamExternalID: g.AwayTeamExternalID,
		HomeScore:          g.HomeScore,
		AwayScore:          g.AwayScore,
		Status:             string(g.Status),
		Season:             g.Season,
		Period:             g.Period,
		Clock:              g.Clock,
	}
}
