package usecase

import (
	"context"
	"time"
)

// ScheduleProvider is the ESPN side of the sync: teams, daily scoreboards
// and per-game team box scores.
type ScheduleProvider interface {
	FetchTeams(ctx context.Context) ([]ExternalTeam, error)
	FetchScoreboard(ctx context.Context, day time.Time) ([]ExternalGame, error)
	FetchTeamBoxScores(ctx context.Context, gameExternalID string) ([]ExternalTeamBoxScore, error)
}

// StatsProvider is the BallDontLie side of the sync. Paged fetches hand
// each page to fn; an error after some pages ends paging and is returned.
type StatsProvider interface {
	FetchTeams(ctx context.Context) ([]ExternalTeam, error)
	FetchPlayers(ctx context.Context, fn func(page []ExternalPlayer) error) error
	FetchSeasonAverages(ctx context.Context, season int, playerExternalIDs []string) ([]ExternalSeasonAverages, error)
	FetchGameStats(ctx context.Context, day time.Time, fn func(page []ExternalPlayerGameStat) error) error
}

type ExternalTeam struct {
	ExternalID     string
	Name           string
	Abbreviation   string
	Location       string
	DisplayName    string
	Conference     string
	Division       string
	Color          string
	AlternateColor string
	LogoURL        string
}

type ExternalGame struct {
	ExternalID         string
	Date               time.Time
	HomeTeamExternalID string
	AwayTeamExternalID string
	HomeAbbreviation   string
	AwayAbbreviation   string
	HomeScore          int
	AwayScore          int
	Status             string
	Period             int
	Clock              string
}

type ExternalTeamBoxScore struct {
	TeamExternalID  string
	Abbreviation    string
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

// ExternalPlayer carries the provider's team abbreviation; an empty value
// means the provider reports no team.
type ExternalPlayer struct {
	ExternalID       string
	FirstName        string
	LastName         string
	Position         string
	TeamAbbreviation string
	JerseyNumber     string
	Height           string
	Weight           string
	College          string
	Country          string
	DraftYear        int
	DraftRound       int
	DraftNumber      int
}

type ExternalSeasonAverages struct {
	PlayerExternalID string
	Season           int
	GamesPlayed      int
	Minutes          string
	Points           float64
	Rebounds         float64
	Assists          float64
	Steals           float64
	Blocks           float64
	Turnovers        float64
	FGPct            float64
	FG3Pct           float64
	FTPct            float64
}

// ExternalPlayerGameStat is one player's line in a provider game. The
// game is identified by date and team abbreviations since provider game
// ids differ between ESPN and BallDontLie.
type ExternalPlayerGameStat struct {
	PlayerExternalID string
	TeamAbbreviation string
	GameDate         time.Time
	HomeAbbreviation string
	AwayAbbreviation string
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
