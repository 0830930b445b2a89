package stats

import (
	"fmt"
	"sort"
)

// PlayerGameStat is one player's box score line for a game.
type PlayerGameStat struct {
	GameExternalID   string
	PlayerExternalID string
	TeamExternalID   string
	Minutes          string
	Points           int
	Rebounds         int
	Assists          int
	Steals           int
	Blocks           int
	Turnovers        int
	FGM              int
	FGA              int
	FG3M             int
	FG3A             int
	FTM              int
	FTA              int
}

func (s PlayerGameStat) Validate() error {
	if s.GameExternalID == "" || s.PlayerExternalID == "" {
		return fmt.Errorf("player stat requires game and player ids")
	}
	return nil
}

// ImpactScore is a rough single-number ranking used to pick top performers.
func (s PlayerGameStat) ImpactScore() float64 {
	return float64(s.Points) + 1.2*float64(s.Rebounds) + 1.5*float64(s.Assists) +
		2*float64(s.Steals+s.Blocks) - float64(s.Turnovers)
}

// TeamGameStat is one team's box score totals for a game.
type TeamGameStat struct {
	GameExternalID  string
	TeamExternalID  string
	Points          int
	FGPct           float64
	FG3Pct          float64
	FTPct           float64
	Rebounds        int
	Assists         int
	Turnovers       int
	Steals          int
	Blocks          int
	FastBreakPoints int
	PointsInPaint   int
}

func (s TeamGameStat) Validate() error {
	if s.GameExternalID == "" || s.TeamExternalID == "" {
		return fmt.Errorf("team stat requires game and team ids")
	}
	return nil
}

// BoxScore groups the stored stats of one game.
type BoxScore struct {
	GameExternalID string
	Teams          []TeamGameStat
	Players        []PlayerGameStat
}

func (b BoxScore) IsEmpty() bool {
	return len(b.Teams) == 0 && len(b.Players) == 0
}

// TopPerformers returns up to n player lines by ImpactScore, ties broken
// by points then player id.
func (b BoxScore) TopPerformers(n int) []PlayerGameStat {
	out := append([]PlayerGameStat(nil), b.Players...)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := out[i].ImpactScore(), out[j].ImpactScore()
		if si != sj {
			return si > sj
		}
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].PlayerExternalID < out[j].PlayerExternalID
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Team returns the totals for teamExternalID, if present.
func (b BoxScore) Team(teamExternalID string) (TeamGameStat, bool) {
	for _, t := range b.Teams {
		if t.TeamExternalID == teamExternalID {
			return t, true
		}
	}
	return TeamGameStat{}, false
}
