package usecase

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/courtvision/court-vision/internal/domain/game"
	"github.com/courtvision/court-vision/internal/domain/player"
	"github.com/courtvision/court-vision/internal/domain/stats"
	"github.com/courtvision/court-vision/internal/domain/syncrun"
	"github.com/courtvision/court-vision/internal/domain/team"
	"github.com/courtvision/court-vision/internal/platform/id"
	"github.com/courtvision/court-vision/internal/platform/logging"
)

const (
	maxGameSyncDays   = 62
	skipReasonOffseas = "offseason"
)

// SyncLogWriter appends finished runs to an external log.
type SyncLogWriter interface {
	Append(ctx context.Context, run syncrun.Run) error
}

type SyncConfig struct {
	OffseasonMonths []time.Month
	// Season overrides the season derived from the current date when > 0.
	Season  int
	Workers int
}

// SyncOptions selects what a run covers. Zero dates default to the
// previous league day for stats and today for games.
type SyncOptions struct {
	From    time.Time
	To      time.Time
	Date    time.Time
	Season  int
	Force   bool
	Workers int
}

type SyncService struct {
	schedule   ScheduleProvider
	statsAPI   StatsProvider
	teamRepo   team.Repository
	playerRepo player.Repository
	gameRepo   game.Repository
	statsRepo  stats.Repository
	runRepo    syncrun.Repository
	idGen      id.Generator
	syncLog    SyncLogWriter
	cfg        SyncConfig
	logger     *logging.Logger
	now        func() time.Time
}

func NewSyncService(
	schedule ScheduleProvider,
	statsAPI StatsProvider,
	teamRepo team.Repository,
	playerRepo player.Repository,
	gameRepo game.Repository,
	statsRepo stats.Repository,
	runRepo syncrun.Repository,
	idGen id.Generator,
	syncLog SyncLogWriter,
	cfg SyncConfig,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return &SyncService{
		schedule:   schedule,
		statsAPI:   statsAPI,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		statsRepo:  statsRepo,
		runRepo:    runRepo,
		idGen:      idGen,
		syncLog:    syncLog,
		cfg:        cfg,
		logger:     logger.Named("sync"),
		now:        time.Now,
	}
}

// Run executes one entity sync and records its summary. For EntityAll
// every stage summary is recorded as well as the aggregate.
func (s *SyncService) Run(ctx context.Context, entity syncrun.Entity, opts SyncOptions) (syncrun.Run, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.Run")
	defer span.End()

	var (
		summary syncrun.Summary
		err     error
	)
	switch entity {
	case syncrun.EntityTeams:
		summary, err = s.SyncTeams(ctx)
	case syncrun.EntityPlayers:
		summary, err = s.SyncPlayers(ctx)
	case syncrun.EntityPlayerAverages:
		summary, err = s.SyncPlayerAverages(ctx, opts.Season)
	case syncrun.EntityGames:
		from, to := s.gameRange(opts)
		summary, err = s.SyncGames(ctx, from, to)
	case syncrun.EntityAthleteStats:
		summary, err = s.SyncAthleteStats(ctx, s.statsDate(opts), opts.Force)
	case syncrun.EntityTeamStats:
		summary, err = s.SyncTeamStats(ctx, s.statsDate(opts), opts.Force)
	case syncrun.EntityAll:
		var result SyncAllResult
		result, err = s.SyncAll(ctx, opts)
		if err == nil {
			for _, stage := range result.Stages {
				if _, recErr := s.record(ctx, stage); recErr != nil {
					return syncrun.Run{}, recErr
				}
			}
		}
		summary = result.Summary
	default:
		return syncrun.Run{}, fmt.Errorf("%w: unknown sync entity %q", ErrInvalidInput, entity)
	}
	if err != nil {
		return syncrun.Run{}, err
	}

	return s.record(ctx, summary)
}

func (s *SyncService) GetRun(ctx context.Context, runID string) (syncrun.Run, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.GetRun")
	defer span.End()

	run, exists, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return syncrun.Run{}, fmt.Errorf("get sync run: %w", err)
	}
	if !exists {
		return syncrun.Run{}, fmt.Errorf("%w: sync run=%s", ErrNotFound, runID)
	}
	return run, nil
}

func (s *SyncService) ListRuns(ctx context.Context, limit int) ([]syncrun.Run, error) {
	runs, err := s.runRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list sync runs: %w", err)
	}
	return runs, nil
}

// SyncTeams upserts ESPN teams. BallDontLie, when available, fills in
// conference and division, which ESPN's team list omits.
func (s *SyncService) SyncTeams(ctx context.Context) (syncrun.Summary, error) {
	summary := syncrun.NewSummary(syncrun.EntityTeams, s.now().UTC())
	logger := s.logger.Named("teams")

	items, err := s.schedule.FetchTeams(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return syncrun.Summary{}, ctx.Err()
		}
		logger.ErrorContext(ctx, "fetch teams failed", "error", err)
		summary.AddErrorf("fetch teams: %v", err)
		return s.finish(ctx, summary), nil
	}

	enrich := map[string]ExternalTeam{}
	if s.statsAPI != nil {
		if extra, err := s.statsAPI.FetchTeams(ctx); err != nil {
			logger.WarnContext(ctx, "fetch conference data failed", "error", err)
		} else {
			for _, t := range extra {
				enrich[team.NormalizeAbbreviation(t.Abbreviation)] = t
			}
		}
	}

	for _, ext := range items {
		abbr := team.NormalizeAbbreviation(ext.Abbreviation)
		item := team.Team{
			ExternalID:     ext.ExternalID,
			Name:           ext.Name,
			Abbreviation:   abbr,
			Location:       ext.Location,
			DisplayName:    ext.DisplayName,
			Conference:     ext.Conference,
			Division:       ext.Division,
			Color:          ext.Color,
			AlternateColor: ext.AlternateColor,
			LogoURL:        ext.LogoURL,
		}
		if extra, ok := enrich[abbr]; ok {
			if item.Conference == "" {
				item.Conference = extra.Conference
			}
			if item.Division == "" {
				item.Division = extra.Division
			}
		}
		if err := item.Validate(); err != nil {
			summary.AddErrorf("team %s: %v", ext.ExternalID, err)
			continue
		}

		outcome, err := s.teamRepo.Upsert(ctx, item)
		if err != nil {
			logger.WarnContext(ctx, "upsert team failed", "team_id", item.ExternalID, "error", err)
			summary.AddErrorf("team %s: %v", item.ExternalID, err)
			continue
		}
		summary.Record(outcome)
	}

	return s.finish(ctx, summary), nil
}

// SyncPlayers pages through BallDontLie players and maps each to a local
// team by abbreviation.
func (s *SyncService) SyncPlayers(ctx context.Context) (syncrun.Summary, error) {
	summary := syncrun.NewSummary(syncrun.EntityPlayers, s.now().UTC())
	logger := s.logger.Named("players")

	teamsByAbbr, err := s.teamsByAbbreviation(ctx)
	if err != nil {
		return syncrun.Summary{}, err
	}

	pages := 0
	err = s.statsAPI.FetchPlayers(ctx, func(page []ExternalPlayer) error {
		pages++
		for _, ext := range page {
			item := player.Player{
				ExternalID:   ext.ExternalID,
				FirstName:    ext.FirstName,
				LastName:     ext.LastName,
				Position:     ext.Position,
				JerseyNumber: ext.JerseyNumber,
				Height:       ext.Height,
				Weight:       ext.Weight,
				College:      ext.College,
				Country:      ext.Country,
				DraftYear:    ext.DraftYear,
				DraftRound:   ext.DraftRound,
				DraftNumber:  ext.DraftNumber,
			}
			if ext.TeamAbbreviation != "" {
				t, ok := teamsByAbbr[team.NormalizeAbbreviation(ext.TeamAbbreviation)]
				if !ok {
					logger.WarnContext(ctx, "skip player with unknown team", "player_id", ext.ExternalID, "team", ext.TeamAbbreviation)
					summary.Skip()
					continue
				}
				item.TeamExternalID = t.ExternalID
			}
			if err := item.Validate(); err != nil {
				summary.AddErrorf("player %s: %v", ext.ExternalID, err)
				continue
			}

			outcome, err := s.playerRepo.Upsert(ctx, item)
			if err != nil {
				logger.WarnContext(ctx, "upsert player failed", "player_id", item.ExternalID, "error", err)
				summary.AddErrorf("player %s: %v", item.ExternalID, err)
				continue
			}
			summary.Record(outcome)
		}
		logger.InfoContext(ctx, "players page synced", "page", pages, "size", len(page))
		return ctx.Err()
	})
	if err != nil {
		if ctx.Err() != nil {
			return syncrun.Summary{}, ctx.Err()
		}
		logger.ErrorContext(ctx, "player paging stopped", "pages", pages, "error", err)
		summary.AddErrorf("fetch players: %v", err)
	}

	return s.finish(ctx, summary), nil
}

// SyncPlayerAverages refreshes season averages for every stored player.
func (s *SyncService) SyncPlayerAverages(ctx context.Context, season int) (syncrun.Summary, error) {
	summary := syncrun.NewSummary(syncrun.EntityPlayerAverages, s.now().UTC())
	logger := s.logger.Named("player-averages")

	if season <= 0 {
		season = s.season()
	}
	ids, err := s.playerRepo.ListExternalIDs(ctx)
	if err != nil {
		return syncrun.Summary{}, fmt.Errorf("list player ids: %w", err)
	}
	if len(ids) == 0 {
		return s.finish(ctx, summary), nil
	}

	averages, err := s.statsAPI.FetchSeasonAverages(ctx, season, ids)
	if err != nil {
		if ctx.Err() != nil {
			return syncrun.Summary{}, ctx.Err()
		}
		logger.ErrorContext(ctx, "fetch season averages failed", "season", season, "received", len(averages), "error", err)
		summary.AddErrorf("fetch season averages: %v", err)
	}

	seen := make(map[string]struct{}, len(averages))
	for _, ext := range averages {
		seen[ext.PlayerExternalID] = struct{}{}
		outcome, err := s.playerRepo.UpdateSeasonAverages(ctx, ext.PlayerExternalID, player.SeasonAverages{
			Season:      ext.Season,
			GamesPlayed: ext.GamesPlayed,
			Minutes:     ext.Minutes,
			Points:      ext.Points,
			Rebounds:    ext.Rebounds,
			Assists:     ext.Assists,
			Steals:      ext.Steals,
			Blocks:      ext.Blocks,
			Turnovers:   ext.Turnovers,
			FGPct:       ext.FGPct,
			FG3Pct:      ext.FG3Pct,
			FTPct:       ext.FTPct,
		})
		if err != nil {
			summary.AddErrorf("player %s averages: %v", ext.PlayerExternalID, err)
			continue
		}
		summary.Record(outcome)
	}
	if err == nil {
		for _, playerID := range ids {
			if _, ok := seen[playerID]; !ok {
				summary.Skip()
			}
		}
	}

	return s.finish(ctx, summary), nil
}

// SyncGames fetches the ESPN scoreboard for every day in [from, to].
func (s *SyncService) SyncGames(ctx context.Context, from, to time.Time) (syncrun.Summary, error) {
	summary := syncrun.NewSummary(syncrun.EntityGames, s.now().UTC())
	logger := s.logger.Named("games")

	from, to = truncateDay(from), truncateDay(to)
	if to.Before(from) {
		return syncrun.Summary{}, fmt.Errorf("%w: sync range end %s is before start %s", ErrInvalidInput, to.Format(game.DayLayout), from.Format(game.DayLayout))
	}
	if days := int(to.Sub(from).Hours()/24) + 1; days > maxGameSyncDays {
		return syncrun.Summary{}, fmt.Errorf("%w: sync range spans %d days, max %d", ErrInvalidInput, days, maxGameSyncDays)
	}

	teams, err := s.teamIndex(ctx)
	if err != nil {
		return syncrun.Summary{}, err
	}

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		items, err := s.schedule.FetchScoreboard(ctx, day)
		if err != nil {
			if ctx.Err() != nil {
				return syncrun.Summary{}, ctx.Err()
			}
			logger.ErrorContext(ctx, "fetch scoreboard failed", "day", day.Format(game.DayLayout), "error", err)
			summary.AddErrorf("scoreboard %s: %v", day.Format(game.DayLayout), err)
			continue
		}

		for _, ext := range items {
			home, okHome := teams.resolve(ext.HomeTeamExternalID, ext.HomeAbbreviation)
			away, okAway := teams.resolve(ext.AwayTeamExternalID, ext.AwayAbbreviation)
			if !okHome || !okAway {
				logger.WarnContext(ctx, "skip game with unknown team", "game_id", ext.ExternalID,
					"home", ext.HomeAbbreviation, "away", ext.AwayAbbreviation)
				summary.Skip()
				continue
			}

			item := game.Game{
				ExternalID:         ext.ExternalID,
				Date:               ext.Date.UTC(),
				HomeTeamExternalID: home.ExternalID,
				AwayTeamExternalID: away.ExternalID,
				HomeScore:          ext.HomeScore,
				AwayScore:          ext.AwayScore,
				Status:             game.NormalizeStatus(ext.Status),
				Season:             game.SeasonFor(ext.Date),
				Period:             ext.Period,
				Clock:              ext.Clock,
			}
			if err := item.Validate(); err != nil {
				summary.AddErrorf("game %s: %v", ext.ExternalID, err)
				continue
			}

			outcome, err := s.gameRepo.Upsert(ctx, item)
			if err != nil {
				logger.WarnContext(ctx, "upsert game failed", "game_id", item.ExternalID, "error", err)
				summary.AddErrorf("game %s: %v", item.ExternalID, err)
				continue
			}
			summary.Record(outcome)
		}
	}

	return s.finish(ctx, summary), nil
}

// SyncAthleteStats stores BallDontLie player box score lines for date.
// Rows are matched to local games by league day and team abbreviations.
func (s *SyncService) SyncAthleteStats(ctx context.Context, date time.Time, force bool) (syncrun.Summary, error) {
	summary := syncrun.NewSummary(syncrun.EntityAthleteStats, s.now().UTC())
	logger := s.logger.Named("athlete-stats")

	if s.skipOffseason(ctx, summary, date, force) {
		return s.finish(ctx, summary), nil
	}

	teams, err := s.teamIndex(ctx)
	if err != nil {
		return syncrun.Summary{}, err
	}
	games, err := s.gamesOnDay(ctx, date, teams)
	if err != nil {
		return syncrun.Summary{}, err
	}

	err = s.statsAPI.FetchGameStats(ctx, date, func(page []ExternalPlayerGameStat) error {
		ids := make([]string, 0, len(page))
		for _, row := range page {
			ids = append(ids, row.PlayerExternalID)
		}
		players, err := s.playerRepo.GetByExternalIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("get players: %w", err)
		}

		for _, row := range page {
			if _, ok := players[row.PlayerExternalID]; !ok {
				logger.WarnContext(ctx, "skip stat row with unknown player", "player_id", row.PlayerExternalID)
				summary.Skip()
				continue
			}
			g, ok := games[gameKey(row.HomeAbbreviation, row.AwayAbbreviation)]
			if !ok {
				logger.WarnContext(ctx, "skip stat row with unknown game", "player_id", row.PlayerExternalID,
					"home", row.HomeAbbreviation, "away", row.AwayAbbreviation)
				summary.Skip()
				continue
			}
			teamID := ""
			if t, ok := teams.byAbbr[team.NormalizeAbbreviation(row.TeamAbbreviation)]; ok && g.HasTeam(t.ExternalID) {
				teamID = t.ExternalID
			}

			line := stats.PlayerGameStat{
				GameExternalID:   g.ExternalID,
				PlayerExternalID: row.PlayerExternalID,
				TeamExternalID:   teamID,
				Minutes:          row.Minutes,
				Points:           row.Points,
				Rebounds:         row.Rebounds,
				Assists:          row.Assists,
				Steals:           row.Steals,
				Blocks:           row.Blocks,
				Turnovers:        row.Turnovers,
				FGM:              row.FGM,
				FGA:              row.FGA,
				FG3M:             row.FG3M,
				FG3A:             row.FG3A,
				FTM:              row.FTM,
				FTA:              row.FTA,
			}
			outcome, err := s.statsRepo.UpsertPlayerGameStat(ctx, line)
			if err != nil {
				summary.AddErrorf("player %s game %s: %v", line.PlayerExternalID, line.GameExternalID, err)
				continue
			}
			summary.Record(outcome)
		}
		return ctx.Err()
	})
	if err != nil {
		if ctx.Err() != nil {
			return syncrun.Summary{}, ctx.Err()
		}
		logger.ErrorContext(ctx, "stat paging stopped", "error", err)
		summary.AddErrorf("fetch game stats: %v", err)
	}

	return s.finish(ctx, summary), nil
}

// SyncTeamStats stores ESPN team box scores for finished games on date.
func (s *SyncService) SyncTeamStats(ctx context.Context, date time.Time, force bool) (syncrun.Summary, error) {
	summary := syncrun.NewSummary(syncrun.EntityTeamStats, s.now().UTC())
	logger := s.logger.Named("team-stats")

	if s.skipOffseason(ctx, summary, date, force) {
		return s.finish(ctx, summary), nil
	}

	teams, err := s.teamIndex(ctx)
	if err != nil {
		return syncrun.Summary{}, err
	}
	games, err := s.gamesOnDay(ctx, date, teams)
	if err != nil {
		return syncrun.Summary{}, err
	}

	ordered := make([]game.Game, 0, len(games))
	for _, g := range games {
		ordered = append(ordered, g)
	}
	slices.SortFunc(ordered, func(a, b game.Game) int { return a.Date.Compare(b.Date) })

	for _, g := range ordered {
		if !g.IsFinished() {
			summary.Skip()
			continue
		}
		boxes, err := s.schedule.FetchTeamBoxScores(ctx, g.ExternalID)
		if err != nil {
			if ctx.Err() != nil {
				return syncrun.Summary{}, ctx.Err()
			}
			logger.WarnContext(ctx, "fetch box score failed", "game_id", g.ExternalID, "error", err)
			summary.AddErrorf("box score %s: %v", g.ExternalID, err)
			continue
		}

		for _, box := range boxes {
			t, ok := teams.resolve(box.TeamExternalID, box.Abbreviation)
			if !ok || !g.HasTeam(t.ExternalID) {
				logger.WarnContext(ctx, "skip box score with unknown team", "game_id", g.ExternalID, "team", box.Abbreviation)
				summary.Skip()
				continue
			}
			line := stats.TeamGameStat{
				GameExternalID:  g.ExternalID,
				TeamExternalID:  t.ExternalID,
				Points:          box.Points,
				FGPct:           box.FGPct,
				FG3Pct:          box.FG3Pct,
				FTPct:           box.FTPct,
				Rebounds:        box.Rebounds,
				Assists:         box.Assists,
				Turnovers:       box.Turnovers,
				Steals:          box.Steals,
				Blocks:          box.Blocks,
				FastBreakPoints: box.FastBreakPoints,
				PointsInPaint:   box.PointsInPaint,
			}
			outcome, err := s.statsRepo.UpsertTeamGameStat(ctx, line)
			if err != nil {
				summary.AddErrorf("team %s game %s: %v", line.TeamExternalID, line.GameExternalID, err)
				continue
			}
			summary.Record(outcome)
		}
	}

	return s.finish(ctx, summary), nil
}

func (s *SyncService) record(ctx context.Context, summary syncrun.Summary) (syncrun.Run, error) {
	runID, err := s.idGen.NewID()
	if err != nil {
		return syncrun.Run{}, fmt.Errorf("generate sync run id: %w", err)
	}
	run := syncrun.Run{ID: runID, Summary: summary, Status: summary.Status()}

	if err := s.runRepo.Create(ctx, run); err != nil {
		return syncrun.Run{}, fmt.Errorf("store sync run: %w", err)
	}
	if s.syncLog != nil {
		if err := s.syncLog.Append(ctx, run); err != nil {
			s.logger.WarnContext(ctx, "append sync log failed", "run_id", run.ID, "error", err)
		}
	}
	return run, nil
}

func (s *SyncService) finish(ctx context.Context, summary *syncrun.Summary) syncrun.Summary {
	summary.Finish(s.now().UTC())
	s.logger.InfoContext(ctx, "sync finished",
		"entity", summary.Entity,
		"status", summary.Status(),
		"created", summary.Created,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
		"errors", summary.Errors,
		"duration", summary.Duration(),
	)
	return *summary
}

func (s *SyncService) skipOffseason(ctx context.Context, summary *syncrun.Summary, date time.Time, force bool) bool {
	if force || !slices.Contains(s.cfg.OffseasonMonths, date.Month()) {
		return false
	}
	s.logger.InfoContext(ctx, "skip stats sync in offseason", "entity", summary.Entity, "date", date.Format(game.DayLayout))
	summary.SkipReason = skipReasonOffseas
	return true
}

func (s *SyncService) season() int {
	if s.cfg.Season > 0 {
		return s.cfg.Season
	}
	return game.SeasonFor(s.now())
}

func (s *SyncService) gameRange(opts SyncOptions) (time.Time, time.Time) {
	from, to := opts.From, opts.To
	if from.IsZero() {
		from = leagueToday(s.now())
	}
	if to.IsZero() {
		to = from
	}
	return from, to
}

func (s *SyncService) statsDate(opts SyncOptions) time.Time {
	if !opts.Date.IsZero() {
		return truncateDay(opts.Date)
	}
	return leagueToday(s.now()).AddDate(0, 0, -1)
}

type teamIndex struct {
	byID   map[string]team.Team
	byAbbr map[string]team.Team
}

func (idx teamIndex) resolve(externalID, abbreviation string) (team.Team, bool) {
	if t, ok := idx.byID[externalID]; ok && externalID != "" {
		return t, true
	}
	t, ok := idx.byAbbr[team.NormalizeAbbreviation(abbreviation)]
	return t, ok
}

func (s *SyncService) teamIndex(ctx context.Context) (teamIndex, error) {
	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return teamIndex{}, fmt.Errorf("list teams: %w", err)
	}
	idx := teamIndex{
		byID:   make(map[string]team.Team, len(items)),
		byAbbr: make(map[string]team.Team, len(items)),
	}
	for _, t := range items {
		idx.byID[t.ExternalID] = t
		idx.byAbbr[team.NormalizeAbbreviation(t.Abbreviation)] = t
	}
	return idx, nil
}

func (s *SyncService) teamsByAbbreviation(ctx context.Context) (map[string]team.Team, error) {
	idx, err := s.teamIndex(ctx)
	if err != nil {
		return nil, err
	}
	return idx.byAbbr, nil
}

// gamesOnDay keys the league day's games by home/away abbreviation.
func (s *SyncService) gamesOnDay(ctx context.Context, date time.Time, teams teamIndex) (map[string]game.Game, error) {
	start, end, err := game.DayBounds(date.Format(game.DayLayout))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	items, err := s.gameRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	out := make(map[string]game.Game, len(items))
	for _, g := range items {
		home, okHome := teams.byID[g.HomeTeamExternalID]
		away, okAway := teams.byID[g.AwayTeamExternalID]
		if !okHome || !okAway {
			continue
		}
		out[gameKey(home.Abbreviation, away.Abbreviation)] = g
	}
	return out, nil
}

func gameKey(home, away string) string {
	return team.NormalizeAbbreviation(home) + "@" + team.NormalizeAbbreviation(away)
}

// leagueToday is the current league day as a UTC midnight date.
func leagueToday(now time.Time) time.Time {
	day, _ := time.Parse(game.DayLayout, game.LeagueDay(now))
	return day
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseSyncDate parses YYYY-MM-DD as a calendar date.
func ParseSyncDate(v string) (time.Time, error) {
	t, err := time.Parse(game.DayLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, v)
	}
	return t, nil
}

// ParseSyncSeason parses a season start year such as 2024.
func ParseSyncSeason(v string) (int, error) {
	season, err := strconv.Atoi(v)
	if err != nil || season < 1946 {
		return 0, fmt.Errorf("%w: invalid season %q", ErrInvalidInput, v)
	}
	return season, nil
}
