package balldontlie

import (
	"encoding/json"
	"strings"
)

type paginatedResponse struct {
	Data json.RawMessage `json:"data"`
	Meta struct {
		NextCursor *int `json:"next_cursor"`
		PerPage    int  `json:"per_page"`
	} `json:"meta"`
}

type teamRaw struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
}

type playerRaw struct {
	ID           int             `json:"id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Position     string          `json:"position"`
	Height       string          `json:"height"`
	Weight       string          `json:"weight"`
	JerseyNumber json.RawMessage `json:"jersey_number"`
	College      string          `json:"college"`
	Country      string          `json:"country"`
	DraftYear    *int            `json:"draft_year"`
	DraftRound   *int            `json:"draft_round"`
	DraftNumber  *int            `json:"draft_number"`
	Team         *teamRaw        `json:"team"`
}

type seasonAverageRaw struct {
	PlayerID    int     `json:"player_id"`
	Season      int     `json:"season"`
	GamesPlayed int     `json:"games_played"`
	Min         string  `json:"min"`
	Pts         float64 `json:"pts"`
	Reb         float64 `json:"reb"`
	Ast         float64 `json:"ast"`
	Stl         float64 `json:"stl"`
	Blk         float64 `json:"blk"`
	Turnover    float64 `json:"turnover"`
	FGPct       float64 `json:"fg_pct"`
	FG3Pct      float64 `json:"fg3_pct"`
	FTPct       float64 `json:"ft_pct"`
}

type statRaw struct {
	ID       int       `json:"id"`
	Min      string    `json:"min"`
	Pts      *int      `json:"pts"`
	Reb      *int      `json:"reb"`
	Ast      *int      `json:"ast"`
	Stl      *int      `json:"stl"`
	Blk      *int      `json:"blk"`
	Turnover *int      `json:"turnover"`
	FGM      *int      `json:"fgm"`
	FGA      *int      `json:"fga"`
	FG3M     *int      `json:"fg3m"`
	FG3A     *int      `json:"fg3a"`
	FTM      *int      `json:"ftm"`
	FTA      *int      `json:"fta"`
	Player   playerRaw `json:"player"`
	Team     teamRaw   `json:"team"`
	Game     struct {
		ID            int    `json:"id"`
		Date          string `json:"date"`
		HomeTeamID    int    `json:"home_team_id"`
		VisitorTeamID int    `json:"visitor_team_id"`
	} `json:"game"`
}

// jerseyNumber accepts "23", 23 or null.
func jerseyNumber(raw json.RawMessage) string {
	v := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if v == "" || v == "null" {
		return ""
	}
	return v
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
