package postgres

import "github.com/courtvision/court-vision/internal/domain/stats"

var playerGameStatKey = []string{"game_external_id", "player_external_id"}
var teamGameStatKey = []string{"game_external_id", "team_external_id"}

type playerGameStatModel struct {
	GameExternalID   string `db:"game_external_id"`
	PlayerExternalID string `db:"player_external_id"`
	TeamExternalID   string `db:"team_external_id"`
	Minutes          string `db:"minutes"`
	Points           int    `db:"points"`
	Rebounds         int    `db:"rebounds"`
	Assists          int    `db:"assists"`
	Steals           int    `db:"steals"`
	Blocks           int    `db:"blocks"`
	Turnovers        int    `db:"turnovers"`
	FGM              int    `db:"fgm"`
	FGA              int    `db:"fga"`
	FG3M             int    `db:"fg3m"`
	FG3A             int    `db:"fg3a"`
	FTM              int    `db:"ftm"`
	FTA              int    `db:"fta"`
}

type teamGameStatModel struct {
	GameExternalID  string  `db:"game_external_id"`
	TeamExternalID  string  `db:"team_external_id"`
	Points          int     `db:"points"`
	FGPct           float64 `db:"fg_pct"`
	FG3Pct          float64 `db:"fg3_pct"`
	FTPct           float64 `db:"ft_pct"`
	Rebounds        int     `db:"rebounds"`
	Assists         int     `db:"assists"`
	Turnovers       int     `db:"turnovers"`
	Steals          int     `db:"steals"`
	Blocks          int     `db:"blocks"`
	FastBreakPoints int     `db:"fast_break_points"`
	PointsInPaint   int     `db:"points_in_paint"`
}

// The domain and row structs share field layout, so plain conversions work.
func playerGameStatToModel(s stats.PlayerGameStat) playerGameStatModel {
	return playerGameStatModel(s)
}

func teamGameStatToModel(s stats.TeamGameStat) teamGameStatModel {
	return teamGameStatModel(s)
}
