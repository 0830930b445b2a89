package player

import (
	"fmt"
	"strings"
	"time"
)

// SeasonAverages are per-game averages for one season.
type SeasonAverages struct {
	Season      int
	GamesPlayed int
	Minutes     string
	Points      float64
	Rebounds    float64
	Assists     float64
	Steals      float64
	Blocks      float64
	Turnovers   float64
	FGPct       float64
	FG3Pct      float64
	FTPct       float64
}

// Player is keyed by its BallDontLie id. TeamExternalID is a weak
// reference to team.Team.ExternalID and may be empty for free agents.
type Player struct {
	ExternalID     string
	FirstName      string
	LastName       string
	Position       string
	TeamExternalID string
	JerseyNumber   string
	Height         string
	Weight         string
	College        string
	Country        string
	DraftYear      int
	DraftRound     int
	DraftNumber    int
	SeasonAverages *SeasonAverages
	HasStatistics  bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.ExternalID) == "" {
		return fmt.Errorf("player external id is required")
	}
	if p.FullName() == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}

// SameProfile compares the roster fields written by the players sync.
// Season averages are owned by a separate sync and ignored here.
func (p Player) SameProfile(other Player) bool {
	return p.ExternalID == other.ExternalID &&
		p.FirstName == other.FirstName &&
		p.LastName == other.LastName &&
		p.Position == other.Position &&
		p.TeamExternalID == other.TeamExternalID &&
		p.JerseyNumber == other.JerseyNumber &&
		p.Height == other.Height &&
		p.Weight == other.Weight &&
		p.College == other.College &&
		p.Country == other.Country &&
		p.DraftYear == other.DraftYear &&
		p.DraftRound == other.DraftRound &&
		p.DraftNumber == other.DraftNumber
}

type ListFilter struct {
	TeamExternalID string
	Search         string
	Limit          int
}
