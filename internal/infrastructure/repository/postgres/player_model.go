package postgres

import (
	"database/sql"
	"time"

	"github.com/bytedance/sonic"

	"github.com/courtvision/court-vision/internal/domain/player"
)

var playerColumns = []string{
	"external_id", "first_name", "last_name", "position", "team_external_id", "jersey_number",
	"height", "weight", "college", "country", "draft_year", "draft_round", "draft_number",
	"season_averages", "has_statistics", "created_at", "updated_at",
}

type playerTableModel struct {
	ExternalID     string         `db:"external_id"`
	FirstName      string         `db:"first_name"`
	LastName       string         `db:"last_name"`
	Position       string         `db:"position"`
	TeamExternalID sql.NullString `db:"team_external_id"`
	JerseyNumber   string         `db:"jersey_number"`
	Height         string         `db:"height"`
	Weight         string         `db:"weight"`
	College        string         `db:"college"`
	Country        string         `db:"country"`
	DraftYear      sql.NullInt64  `db:"draft_year"`
	DraftRound     sql.NullInt64  `db:"draft_round"`
	DraftNumber    sql.NullInt64  `db:"draft_number"`
	SeasonAverages []byte         `db:"season_averages"`
	HasStatistics  bool           `db:"has_statistics"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type playerUpsertModel struct {
	ExternalID     string         `db:"external_id"`
	FirstName      string         `db:"first_name"`
	LastName       string         `db:"last_name"`
	Position       string         `db:"position"`
	TeamExternalID sql.NullString `db:"team_external_id"`
	JerseyNumber   string         `db:"jersey_number"`
	Height         string         `db:"height"`
	Weight         string         `db:"weight"`
	College        string         `db:"college"`
	Country        string         `db:"country"`
	DraftYear      sql.NullInt64  `db:"draft_year"`
	DraftRound     sql.NullInt64  `db:"draft_round"`
	DraftNumber    sql.NullInt64  `db:"draft_number"`
}

type seasonAveragesDocument struct {
	Season      int     `json:"season"`
	GamesPlayed int     `json:"games_played"`
	Minutes     string  `json:"min"`
	Points      float64 `json:"pts"`
	Rebounds    float64 `json:"reb"`
	Assists     float64 `json:"ast"`
	Steals      float64 `json:"stl"`
	Blocks      float64 `json:"blk"`
	Turnovers   float64 `json:"turnover"`
	FGPct       float64 `json:"fg_pct"`
	FG3Pct      float64 `json:"fg3_pct"`
	FTPct       float64 `json:"ft_pct"`
}

func playerFromRow(row playerTableModel) (player.Player, error) {
	p := player.Player{
		ExternalID:     row.ExternalID,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		Position:       row.Position,
		TeamExternalID: row.TeamExternalID.String,
		JerseyNumber:   row.JerseyNumber,
		Height:         row.Height,
		Weight:         row.Weight,
		College:        row.College,
		Country:        row.Country,
		DraftYear:      intFromNull(row.DraftYear),
		DraftRound:     intFromNull(row.DraftRound),
		DraftNumber:    intFromNull(row.DraftNumber),
		HasStatistics:  row.HasStatistics,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if len(row.SeasonAverages) > 0 {
		var doc seasonAveragesDocument
		if err := sonic.Unmarshal(row.SeasonAverages, &doc); err != nil {
			return player.Player{}, err
		}
		avg := player.SeasonAverages(doc)
		p.SeasonAverages = &avg
	}
	return p, nil
}

func playerToUpsert(p player.Player) playerUpsertModel {
	return playerUpsertModel{
		ExternalID:     p.ExternalID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Position:       p.Position,
		TeamExternalID: nullString(p.TeamExternalID),
		JerseyNumber:   p.JerseyNumber,
		Height:         p.Height,
		Weight:         p.Weight,
		College:        p.College,
		Country:        p.Country,
		DraftYear:      nullInt(p.DraftYear),
		DraftRound:     nullInt(p.DraftRound),
		DraftNumber:    nullInt(p.DraftNumber),
	}
}
