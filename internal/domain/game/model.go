package game

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusLive      Status = "LIVE"
	StatusFinished  Status = "FINISHED"
	StatusPostponed Status = "POSTPONED"
	StatusCancelled Status = "CANCELLED"
)

var validStatuses = map[Status]struct{}{
	StatusScheduled: {},
	StatusLive:      {},
	StatusFinished:  {},
	StatusPostponed: {},
	StatusCancelled: {},
}

func ParseStatus(v string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(v)))
	if _, ok := validStatuses[s]; !ok {
		return "", fmt.Errorf("invalid game status %q", v)
	}
	return s, nil
}

// NormalizeStatus maps ESPN status type names, ESPN states (pre/in/post)
// and BallDontLie status strings onto Status. Unknown values are SCHEDULED.
func NormalizeStatus(raw string) Status {
	v := strings.ToUpper(strings.TrimSpace(raw))
	switch v {
	case "STATUS_FINAL", "STATUS_FINAL_OT", "POST", "FINAL", "FINISHED":
		return StatusFinished
	case "STATUS_IN_PROGRESS", "STATUS_HALFTIME", "STATUS_END_PERIOD", "IN", "LIVE":
		return StatusLive
	case "STATUS_POSTPONED", "POSTPONED":
		return StatusPostponed
	case "STATUS_CANCELED", "STATUS_CANCELLED", "CANCELED", "CANCELLED":
		return StatusCancelled
	}
	if strings.HasPrefix(v, "FINAL") {
		return StatusFinished
	}
	if strings.HasPrefix(v, "Q") || strings.HasPrefix(v, "HALF") || strings.HasPrefix(v, "OT") {
		return StatusLive
	}
	return StatusScheduled
}

// Game is keyed by its ESPN event id.
type Game struct {
	ExternalID         string
	Date               time.Time
	HomeTeamExternalID string
	AwayTeamExternalID string
	HomeScore          int
	AwayScore          int
	Status             Status
	Season             int
	Period             int
	Clock              string
	LastSyncedAt       time.Time
}

func (g Game) Validate() error {
	if strings.TrimSpace(g.ExternalID) == "" {
		return fmt.Errorf("game external id is required")
	}
	if g.Date.IsZero() {
		return fmt.Errorf("game date is required")
	}
	if g.HomeTeamExternalID == "" || g.AwayTeamExternalID == "" {
		return fmt.Errorf("game home and away teams are required")
	}
	if g.HomeTeamExternalID == g.AwayTeamExternalID {
		return fmt.Errorf("game home and away teams must differ")
	}
	if _, ok := validStatuses[g.Status]; !ok {
		return fmt.Errorf("invalid game status: %s", g.Status)
	}

	return nil
}

func (g Game) IsFinished() bool {
	return g.Status == StatusFinished
}

func (g Game) IsLive() bool {
	return g.Status == StatusLive
}

// HasTeam reports whether teamExternalID plays in g.
func (g Game) HasTeam(teamExternalID string) bool {
	return g.HomeTeamExternalID == teamExternalID || g.AwayTeamExternalID == teamExternalID
}

// SameContent ignores LastSyncedAt.
func (g Game) SameContent(other Game) bool {
	return g.ExternalID == other.ExternalID &&
		g.Date.Equal(other.Date) &&
		g.HomeTeamExternalID == other.HomeTeamExternalID &&
		g.AwayTeamExternalID == other.AwayTeamExternalID &&
		g.HomeScore == other.HomeScore &&
		g.AwayScore == other.AwayScore &&
		g.Status == other.Status &&
		g.Season == other.Season &&
		g.Period == other.Period &&
		g.Clock == other.Clock
}

// League days run on US Eastern time; a 7:30pm ET tip is the next UTC day.
var leagueLocation = mustLoadLocation("America/New_York")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("load location %s: %v", name, err))
	}
	return loc
}

const DayLayout = "2006-01-02"

// LeagueDay returns the league calendar day of t as YYYY-MM-DD.
func LeagueDay(t time.Time) string {
	return t.In(leagueLocation).Format(DayLayout)
}

// DayBounds returns the [start, end) instants of a league calendar day.
func DayBounds(day string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DayLayout, day, leagueLocation)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse day %q: %w", day, err)
	}
	return start, start.AddDate(0, 0, 1), nil
}

// SeasonFor returns the season start year: games from October onward
// belong to that year's season, earlier months to the previous one.
func SeasonFor(t time.Time) int {
	t = t.In(leagueLocation)
	if t.Month() >= time.October {
		return t.Year()
	}
	return t.Year() - 1
}

type ListFilter struct {
	Day            string
	Status         Status
	TeamExternalID string
	Limit          int
}
