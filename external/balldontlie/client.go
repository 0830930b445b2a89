package balldontlie

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/courtvision/court-vision/external/internal/transport"
	"github.com/courtvision/court-vision/internal/platform/logging"
	"github.com/courtvision/court-vision/internal/platform/resilience"
	"github.com/courtvision/court-vision/internal/usecase"
)

const (
	defaultBaseURL = "https://api.balldontlie.io/v1"
	perPage        = 100
	// season_averages accepts a bounded list of player_ids per request.
	seasonAveragesBatch = 25
	gameDateLayout      = "2006-01-02"
)

type ClientConfig struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	RequestDelay   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	http   *transport.Client
	logger *logging.Logger

	teamsMu      sync.Mutex
	teamAbbrByID map[int]string
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

	header := http.Header{}
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		header.Set("Authorization", key)
	}

	return &Client{
		http: transport.New(transport.Config{
			Name:           "balldontlie",
			BaseURL:        baseURL,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			RequestDelay:   cfg.RequestDelay,
			Header:         header,
			Secret:         cfg.APIKey,
			Logger:         logger,
			CircuitBreaker: cfg.CircuitBreaker,
		}),
		logger: logger,
	}
}

func (c *Client) FetchTeams(ctx context.Context) ([]usecase.ExternalTeam, error) {
	raw, err := c.fetchTeams(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]usecase.ExternalTeam, 0, len(raw))
	for _, t := range raw {
		out = append(out, usecase.ExternalTeam{
			ExternalID:   strconv.Itoa(t.ID),
			Name:         t.Name,
			Abbreviation: t.Abbreviation,
			Location:     t.City,
			DisplayName:  t.FullName,
			Conference:   t.Conference,
			Division:     t.Division,
		})
	}
	return out, nil
}

func (c *Client) FetchPlayers(ctx context.Context, fn func(page []usecase.ExternalPlayer) error) error {
	params := url.Values{"per_page": {strconv.Itoa(perPage)}}
	return c.paginate(ctx, "/players", params, func(data []byte) error {
		var raw []playerRaw
		if err := sonic.Unmarshal(data, &raw); err != nil {
			return crerr.Wrap(err, "decode balldontlie players")
		}
		page := make([]usecase.ExternalPlayer, 0, len(raw))
		for _, p := range raw {
			page = append(page, mapPlayer(p))
		}
		return fn(page)
	})
}

func (c *Client) FetchSeasonAverages(ctx context.Context, season int, playerExternalIDs []string) ([]usecase.ExternalSeasonAverages, error) {
	out := make([]usecase.ExternalSeasonAverages, 0, len(playerExternalIDs))
	for start := 0; start < len(playerExternalIDs); start += seasonAveragesBatch {
		end := min(start+seasonAveragesBatch, len(playerExternalIDs))

		params := url.Values{"season": {strconv.Itoa(season)}}
		for _, id := range playerExternalIDs[start:end] {
			params.Add("player_ids[]", id)
		}

		var resp paginatedResponse
		if _, err := c.http.GetJSON(ctx, "/season_averages", params, &resp); err != nil {
			return out, crerr.Wrapf(err, "fetch season averages season=%d batch=%d", season, start/seasonAveragesBatch)
		}
		var raw []seasonAverageRaw
		if err := sonic.Unmarshal(resp.Data, &raw); err != nil {
			return out, crerr.Wrap(err, "decode season averages")
		}
		for _, r := range raw {
			out = append(out, usecase.ExternalSeasonAverages{
				PlayerExternalID: strconv.Itoa(r.PlayerID),
				Season:           r.Season,
				GamesPlayed:      r.GamesPlayed,
				Minutes:          r.Min,
				Points:           r.Pts,
				Rebounds:         r.Reb,
				Assists:          r.Ast,
				Steals:           r.Stl,
				Blocks:           r.Blk,
				Turnovers:        r.Turnover,
				FGPct:            r.FGPct,
				FG3Pct:           r.FG3Pct,
				FTPct:            r.FTPct,
			})
		}
	}
	return out, nil
}

func (c *Client) FetchGameStats(ctx context.Context, day time.Time, fn func(page []usecase.ExternalPlayerGameStat) error) error {
	abbrByID, err := c.teamAbbreviations(ctx)
	if err != nil {
		return err
	}

	params := url.Values{
		"dates[]":  {day.Format(gameDateLayout)},
		"per_page": {strconv.Itoa(perPage)},
	}
	return c.paginate(ctx, "/stats", params, func(data []byte) error {
		var raw []statRaw
		if err := sonic.Unmarshal(data, &raw); err != nil {
			return crerr.Wrap(err, "decode balldontlie stats")
		}
		page := make([]usecase.ExternalPlayerGameStat, 0, len(raw))
		for _, s := range raw {
			row, ok := mapStat(s, abbrByID)
			if !ok {
				c.logger.WarnContext(ctx, "skip stat row with unparsable game", "stat_id", s.ID, "game_date", s.Game.Date)
				continue
			}
			page = append(page, row)
		}
		return fn(page)
	})
}

// paginate walks meta.next_cursor. Errors from fn stop paging as well.
func (c *Client) paginate(ctx context.Context, path string, params url.Values, fn func(data []byte) error) error {
	for page := 1; ; page++ {
		var resp paginatedResponse
		if _, err := c.http.GetJSON(ctx, path, params, &resp); err != nil {
			return crerr.Wrapf(err, "fetch %s page=%d", path, page)
		}
		if err := fn(resp.Data); err != nil {
			return err
		}
		if resp.Meta.NextCursor == nil {
			return nil
		}
		params.Set("cursor", strconv.Itoa(*resp.Meta.NextCursor))
	}
}

func (c *Client) fetchTeams(ctx context.Context) ([]teamRaw, error) {
	var resp paginatedResponse
	if _, err := c.http.GetJSON(ctx, "/teams", nil, &resp); err != nil {
		return nil, crerr.Wrap(err, "fetch balldontlie teams")
	}
	var raw []teamRaw
	if err := sonic.Unmarshal(resp.Data, &raw); err != nil {
		return nil, crerr.Wrap(err, "decode balldontlie teams")
	}
	return raw, nil
}

// teamAbbreviations resolves game home/visitor ids; loaded once per client.
func (c *Client) teamAbbreviations(ctx context.Context) (map[int]string, error) {
	c.teamsMu.Lock()
	defer c.teamsMu.Unlock()

	if c.teamAbbrByID != nil {
		return c.teamAbbrByID, nil
	}
	raw, err := c.fetchTeams(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]string, len(raw))
	for _, t := range raw {
		byID[t.ID] = t.Abbreviation
	}
	c.teamAbbrByID = byID
	return byID, nil
}

func mapPlayer(p playerRaw) usecase.ExternalPlayer {
	out := usecase.ExternalPlayer{
		ExternalID:   strconv.Itoa(p.ID),
		FirstName:    strings.TrimSpace(p.FirstName),
		LastName:     strings.TrimSpace(p.LastName),
		Position:     p.Position,
		JerseyNumber: jerseyNumber(p.JerseyNumber),
		Height:       p.Height,
		Weight:       p.Weight,
		College:      p.College,
		Country:      p.Country,
		DraftYear:    deref(p.DraftYear),
		DraftRound:   deref(p.DraftRound),
		DraftNumber:  deref(p.DraftNumber),
	}
	if p.Team != nil && p.Team.ID > 0 {
		out.TeamAbbreviation = p.Team.Abbreviation
	}
	return out
}

func mapStat(s statRaw, abbrByID map[int]string) (usecase.ExternalPlayerGameStat, bool) {
	date, err := parseGameDate(s.Game.Date)
	if err != nil {
		return usecase.ExternalPlayerGameStat{}, false
	}
	return usecase.ExternalPlayerGameStat{
		PlayerExternalID: strconv.Itoa(s.Player.ID),
		TeamAbbreviation: s.Team.Abbreviation,
		GameDate:         date,
		HomeAbbreviation: abbrByID[s.Game.HomeTeamID],
		AwayAbbreviation: abbrByID[s.Game.VisitorTeamID],
		Minutes:          s.Min,
		Points:           deref(s.Pts),
		Rebounds:         deref(s.Reb),
		Assists:          deref(s.Ast),
		Steals:           deref(s.Stl),
		Blocks:           deref(s.Blk),
		Turnovers:        deref(s.Turnover),
		FGM:              deref(s.FGM),
		FGA:              deref(s.FGA),
		FG3M:             deref(s.FG3M),
		FG3A:             deref(s.FG3A),
		FTM:              deref(s.FTM),
		FTA:              deref(s.FTA),
	}, true
}

// parseGameDate accepts "2025-01-10" and full timestamps.
func parseGameDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if len(v) >= len(gameDateLayout) {
		if t, err := time.Parse(gameDateLayout, v[:len(gameDateLayout)]); err == nil {
			return t, nil
		}
	}
	return time.Time{}, crerr.Newf("invalid game date %q", v)
}

var _ usecase.StatsProvider = (*Client)(nil)
