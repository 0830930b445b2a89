package espn

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/courtvision/court-vision/external/internal/transport"
	"github.com/courtvision/court-vision/internal/platform/logging"
	"github.com/courtvision/court-vision/internal/platform/resilience"
	"github.com/courtvision/court-vision/internal/usecase"
)

const defaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba"

type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RequestDelay   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the public ESPN site API. No key is required.
type Client struct {
	http   *transport.Client
	logger *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		http: transport.New(transport.Config{
			Name:           "espn",
			BaseURL:        baseURL,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			RequestDelay:   cfg.RequestDelay,
			Logger:         logger,
			CircuitBreaker: cfg.CircuitBreaker,
		}),
		logger: logger,
	}
}

func (c *Client) FetchTeams(ctx context.Context) ([]usecase.ExternalTeam, error) {
	var envelope teamsEnvelope
	if _, err := c.http.GetJSON(ctx, "/teams", url.Values{"limit": {"50"}}, &envelope); err != nil {
		return nil, crerr.Wrap(err, "fetch espn teams")
	}

	out := make([]usecase.ExternalTeam, 0, 30)
	for _, sport := range envelope.Sports {
		for _, league := range sport.Leagues {
			for _, item := range league.Teams {
				if item.Team.ID == "" {
					continue
				}
				out = append(out, mapTeam(item.Team))
			}
		}
	}
	return out, nil
}

// FetchScoreboard returns the games ESPN lists for day's calendar date.
func (c *Client) FetchScoreboard(ctx context.Context, day time.Time) ([]usecase.ExternalGame, error) {
	dates := day.Format("20060102")
	var envelope scoreboardEnvelope
	if _, err := c.http.GetJSON(ctx, "/scoreboard", url.Values{"dates": {dates}, "limit": {"100"}}, &envelope); err != nil {
		return nil, crerr.Wrapf(err, "fetch espn scoreboard dates=%s", dates)
	}

	out := make([]usecase.ExternalGame, 0, len(envelope.Events))
	for _, event := range envelope.Events {
		g, ok := mapEvent(event)
		if !ok {
			c.logger.WarnContext(ctx, "skip scoreboard event without two competitors", "event_id", event.ID)
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (c *Client) FetchTeamBoxScores(ctx context.Context, gameExternalID string) ([]usecase.ExternalTeamBoxScore, error) {
	var envelope summaryEnvelope
	if _, err := c.http.GetJSON(ctx, "/summary", url.Values{"event": {gameExternalID}}, &envelope); err != nil {
		return nil, crerr.Wrapf(err, "fetch espn summary event=%s", gameExternalID)
	}

	points := make(map[string]int, 2)
	for _, comp := range envelope.Header.Competitions {
		for _, competitor := range comp.Competitors {
			points[firstNonEmpty(competitor.Team.ID, competitor.ID)] = atoi(competitor.Score)
		}
	}

	out := make([]usecase.ExternalTeamBoxScore, 0, len(envelope.Boxscore.Teams))
	for _, item := range envelope.Boxscore.Teams {
		stats := make(map[string]string, len(item.Statistics))
		for _, s := range item.Statistics {
			stats[s.Name] = s.DisplayValue
		}
		out = append(out, usecase.ExternalTeamBoxScore{
			TeamExternalID:  item.Team.ID,
			Abbreviation:    item.Team.Abbreviation,
			Points:          points[item.Team.ID],
			FGPct:           atof(stats["fieldGoalPct"]),
			FG3Pct:          atof(stats["threePointFieldGoalPct"]),
			FTPct:           atof(stats["freeThrowPct"]),
			Rebounds:        atoi(stats["totalRebounds"]),
			Assists:         atoi(stats["assists"]),
			Turnovers:       atoi(firstNonEmpty(stats["totalTurnovers"], stats["turnovers"])),
			Steals:          atoi(stats["steals"]),
			Blocks:          atoi(stats["blocks"]),
			FastBreakPoints: atoi(stats["fastBreakPoints"]),
			PointsInPaint:   atoi(stats["pointsInPaint"]),
		})
	}
	return out, nil
}

func mapTeam(raw teamRaw) usecase.ExternalTeam {
	logo := raw.Logo
	if len(raw.Logos) > 0 && raw.Logos[0].Href != "" {
		logo = raw.Logos[0].Href
	}
	return usecase.ExternalTeam{
		ExternalID:     raw.ID,
		Name:           firstNonEmpty(raw.Name, raw.ShortDisplayName),
		Abbreviation:   raw.Abbreviation,
		Location:       raw.Location,
		DisplayName:    raw.DisplayName,
		Color:          raw.Color,
		AlternateColor: raw.AlternateColor,
		LogoURL:        logo,
	}
}

func mapEvent(event eventRaw) (usecase.ExternalGame, bool) {
	if len(event.Competitions) == 0 {
		return usecase.ExternalGame{}, false
	}
	comp := event.Competitions[0]

	g := usecase.ExternalGame{ExternalID: event.ID, Date: event.Date.Time}
	if g.Date.IsZero() {
		g.Date = comp.Date.Time
	}

	status := event.Status
	if status.Type.Name == "" {
		status = comp.Status
	}
	g.Status = firstNonEmpty(status.Type.Name, status.Type.State)
	g.Period = status.Period
	g.Clock = status.DisplayClock

	var seen int
	for _, competitor := range comp.Competitors {
		teamID := firstNonEmpty(competitor.Team.ID, competitor.ID)
		switch competitor.HomeAway {
		case "home":
			g.HomeTeamExternalID = teamID
			g.HomeAbbreviation = competitor.Team.Abbreviation
			g.HomeScore = atoi(competitor.Score)
			seen++
		case "away":
			g.AwayTeamExternalID = teamID
			g.AwayAbbreviation = competitor.Team.Abbreviation
			g.AwayScore = atoi(competitor.Score)
			seen++
		}
	}
	return g, seen == 2 && g.ExternalID != ""
}

func atoi(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

// atof parses ESPN percentages, which come as "47.3".
func atof(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

var _ usecase.ScheduleProvider = (*Client)(nil)
