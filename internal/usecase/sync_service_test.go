package usecase

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/courtvision/court-vision/internal/domain/game"
	"github.com/courtvision/court-vision/internal/domain/syncrun"
	"github.com/courtvision/court-vision/internal/infrastructure/repository/memory"
	syncrunmock "github.com/courtvision/court-vision/internal/mocks/domain/syncrun"
	"github.com/courtvision/court-vision/internal/platform/logging"
)

// callLog records provider calls in order across goroutines.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(call string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

func (l *callLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

func (l *callLog) index(call string) int {
	return slices.Index(l.snapshot(), call)
}

type fakeSchedule struct {
	log         *callLog
	teams       []ExternalTeam
	scoreboards map[string][]ExternalGame
	boxScores   map[string][]ExternalTeamBoxScore
}

func (f *fakeSchedule) FetchTeams(context.Context) ([]ExternalTeam, error) {
	f.log.add("espn.teams")
	return f.teams, nil
}

func (f *fakeSchedule) FetchScoreboard(_ context.Context, day time.Time) ([]ExternalGame, error) {
	key := day.Format(game.DayLayout)
	f.log.add("espn.scoreboard " + key)
	return f.scoreboards[key], nil
}

func (f *fakeSchedule) FetchTeamBoxScores(_ context.Context, gameExternalID string) ([]ExternalTeamBoxScore, error) {
	f.log.add("espn.boxscore " + gameExternalID)
	return f.boxScores[gameExternalID], nil
}

type fakeStats struct {
	log         *callLog
	teams       []ExternalTeam
	players     [][]ExternalPlayer
	playersErr  error
	averages    []ExternalSeasonAverages
	averagesErr error
	gameStats   []ExternalPlayerGameStat
}

func (f *fakeStats) FetchTeams(context.Context) ([]ExternalTeam, error) {
	f.log.add("bdl.teams")
	return f.teams, nil
}

func (f *fakeStats) FetchPlayers(_ context.Context, fn func(page []ExternalPlayer) error) error {
	f.log.add("bdl.players")
	for _, page := range f.players {
		if err := fn(page); err != nil {
			return err
		}
	}
	return f.playersErr
}

func (f *fakeStats) FetchSeasonAverages(context.Context, int, []string) ([]ExternalSeasonAverages, error) {
	f.log.add("bdl.averages")
	return f.averages, f.averagesErr
}

func (f *fakeStats) FetchGameStats(_ context.Context, day time.Time, fn func(page []ExternalPlayerGameStat) error) error {
	f.log.add("bdl.stats " + day.Format(game.DayLayout))
	if len(f.gameStats) == 0 {
		return nil
	}
	return fn(f.gameStats)
}

type recordingSyncLog struct {
	mu   sync.Mutex
	runs []syncrun.Run
}

func (l *recordingSyncLog) Append(_ context.Context, run syncrun.Run) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.runs = append(l.runs, run)
	return nil
}

var (
	syncNow  = time.Date(2025, 1, 11, 15, 0, 0, 0, time.UTC)
	statsDay = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
)

type syncFixture struct {
	service  *SyncService
	log      *callLog
	schedule *fakeSchedule
	stats    *fakeStats
	teams    *memory.TeamRepository
	players  *memory.PlayerRepository
	games    *memory.GameRepository
	box      *memory.StatsRepository
	runs     *memory.SyncRunRepository
	syncLog  *recordingSyncLog
}

func newSyncFixture(t *testing.T, cfg SyncConfig) syncFixture {
	t.Helper()

	log := &callLog{}
	f := syncFixture{
		log: log,
		schedule: &fakeSchedule{
			log: log,
			teams: []ExternalTeam{
				{ExternalID: "2", Name: "Celtics", Abbreviation: "BOS", Location: "Boston", DisplayName: "Boston Celtics"},
				{ExternalID: "18", Name: "Knicks", Abbreviation: "NY", Location: "New York", DisplayName: "New York Knicks"},
			},
			scoreboards: map[string][]ExternalGame{
				"2025-01-10": {
					{ExternalID: "401705001", Date: time.Date(2025, 1, 11, 0, 30, 0, 0, time.UTC), HomeTeamExternalID: "2", AwayTeamExternalID: "18",
						HomeAbbreviation: "BOS", AwayAbbreviation: "NY", HomeScore: 112, AwayScore: 104, Status: "STATUS_FINAL", Period: 4},
					{ExternalID: "401705002", Date: time.Date(2025, 1, 11, 1, 0, 0, 0, time.UTC), HomeTeamExternalID: "99", AwayTeamExternalID: "18",
						HomeAbbreviation: "XXX", AwayAbbreviation: "NY", Status: "STATUS_SCHEDULED"},
				},
			},
			boxScores: map[string][]ExternalTeamBoxScore{
				"401705001": {
					{TeamExternalID: "2", Abbreviation: "BOS", Points: 112, FGPct: 48.9, Rebounds: 47, Assists: 27},
					{TeamExternalID: "18", Abbreviation: "NY", Points: 104, FGPct: 44.1, Rebounds: 40, Assists: 21},
				},
			},
		},
		stats: &fakeStats{
			log: log,
			teams: []ExternalTeam{
				{ExternalID: "2", Abbreviation: "BOS", Conference: "East", Division: "Atlantic"},
				{ExternalID: "20", Abbreviation: "NYK", Conference: "East", Division: "Atlantic"},
			},
			players: [][]ExternalPlayer{
				{
					{ExternalID: "434", FirstName: "Jayson", LastName: "Tatum", TeamAbbreviation: "BOS"},
					{ExternalID: "73", FirstName: "Jalen", LastName: "Brunson", TeamAbbreviation: "NYK"},
				},
				{
					{ExternalID: "999", FirstName: "Free", LastName: "Agent"},
					{ExternalID: "555", FirstName: "Overseas", LastName: "Player", TeamAbbreviation: "MAD"},
				},
			},
			averages: []ExternalSeasonAverages{
				{PlayerExternalID: "434", Season: 2024, GamesPlayed: 40, Minutes: "36:02", Points: 27.1},
			},
			gameStats: []ExternalPlayerGameStat{
				{PlayerExternalID: "434", TeamAbbreviation: "BOS", GameDate: statsDay, HomeAbbreviation: "BOS", AwayAbbreviation: "NYK", Points: 31, Rebounds: 9},
				{PlayerExternalID: "73", TeamAbbreviation: "NYK", GameDate: statsDay, HomeAbbreviation: "BOS", AwayAbbreviation: "NYK", Points: 28, Assists: 8},
				{PlayerExternalID: "12345", TeamAbbreviation: "NYK", GameDate: statsDay, HomeAbbreviation: "BOS", AwayAbbreviation: "NYK"},
			},
		},
		teams:   memory.NewTeamRepository(nil),
		players: memory.NewPlayerRepository(nil),
		games:   memory.NewGameRepository(nil),
		box:     memory.NewStatsRepository(),
		runs:    memory.NewSyncRunRepository(),
		syncLog: &recordingSyncLog{},
	}
	f.service = NewSyncService(f.schedule, f.stats, f.teams, f.players, f.games, f.box, f.runs,
		&sequenceIDs{}, f.syncLog, cfg, logging.NewNop())
	f.service.now = func() time.Time { return syncNow }
	return f
}

func TestSyncService_SyncTeams_IsIdempotentAndEnriched(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t, SyncConfig{})
	ctx := context.Background()

	first, err := f.service.SyncTeams(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)
	assert.Equal(t, syncrun.StatusSuccess, first.Status())

	knicks, ok, err := f.teams.GetByExternalID(ctx, "18")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "NYK", knicks.Abbreviation)
	assert.Equal(t, "East", knicks.Conference)
	assert.Equal(t, "Atlantic", knicks.Division)

	second, err := f.service.SyncTeams(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.Created)
	assert.Zero(t, second.Updated)
	assert.Equal(t, 2, second.Skipped)
}

func TestSyncService_SyncPlayers_MapsTeamsAndCountsPagingErrors(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t, SyncConfig{})
	f.stats.playersErr = errors.New("page 3: provider status=500")
	ctx := context.Background()

	_, err := f.service.SyncTeams(ctx)
	require.NoError(t, err)

	summary, err := f.service.SyncPlayers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Created)
	assert.Equal(t, 1, summary.Skipped, "player on an unknown team")
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, syncrun.StatusPartial, summary.Status())

	brunson, ok, err := f.players.GetByExternalID(ctx, "73")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "18", brunson.TeamExternalID)

	agent, ok, err := f.players.GetByExternalID(ctx, "999")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, agent.TeamExternalID)
}

func TestSyncService_SyncPlayerAverages(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("missing averages are skipped", func(t *testing.T) {
		f := newSyncFixture(t, SyncConfig{})
		_, err := f.service.SyncTeams(ctx)
		require.NoError(t, err)
		_, err = f.service.SyncPlayers(ctx)
		require.NoError(t, err)

		summary, err := f.service.SyncPlayerAverages(ctx, 2024)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Updated)
		assert.Equal(t, 2, summary.Skipped)

		tatum, _, err := f.players.GetByExternalID(ctx, "434")
		require.NoError(t, err)
		require.NotNil(t, tatum.SeasonAverages)
		assert.InDelta(t, 27.1, tatum.SeasonAverages.Points, 0.001)
	})

	t.Run("partial results are kept on error", func(t *testing.T) {
		f := newSyncFixture(t, SyncConfig{})
		f.stats.averagesErr = errors.New("batch 2 failed")
		_, err := f.service.SyncTeams(ctx)
		require.NoError(t, err)
		_, err = f.service.SyncPlayers(ctx)
		require.NoError(t, err)

		summary, err := f.service.SyncPlayerAverages(ctx, 2024)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Updated)
		assert.Zero(t, summary.Skipped)
		assert.Equal(t, 1, summary.Errors)
		assert.Equal(t, syncrun.StatusPartial, summary.Status())
	})
}

func TestSyncService_SyncGames(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t, SyncConfig{})
	ctx := context.Background()
	_, err := f.service.SyncTeams(ctx)
	require.NoError(t, err)

	summary, err := f.service.SyncGames(ctx, statsDay, statsDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Skipped, "game with an unknown home team")
	assert.Equal(t, []string{"espn.teams", "bdl.teams", "espn.scoreboard 2025-01-10", "espn.scoreboard 2025-01-11"}, f.log.snapshot())

	g, ok, err := f.games.GetByExternalID(ctx, "401705001")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, game.StatusFinished, g.Status)
	assert.Equal(t, 2024, g.Season)

	_, err = f.service.SyncGames(ctx, statsDay, statsDay.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.service.SyncGames(ctx, statsDay, statsDay.AddDate(0, 0, maxGameSyncDays))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSyncService_StatsSkipInOffseason(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t, SyncConfig{OffseasonMonths: []time.Month{time.July, time.August}})
	ctx := context.Background()
	july := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	athletes, err := f.service.SyncAthleteStats(ctx, july, false)
	require.NoError(t, err)
	assert.Equal(t, "offseason", athletes.SkipReason)
	assert.Equal(t, syncrun.StatusSkipped, athletes.Status())

	teamStats, err := f.service.SyncTeamStats(ctx, july, false)
	require.NoError(t, err)
	assert.Equal(t, syncrun.StatusSkipped, teamStats.Status())
	assert.Empty(t, f.log.snapshot(), "no provider calls in the offseason")

	forced, err := f.service.SyncAthleteStats(ctx, july, true)
	require.NoError(t, err)
	assert.Empty(t, forced.SkipReason)
	assert.Equal(t, []string{"bdl.stats 2025-07-15"}, f.log.snapshot())
}

func TestSyncService_SyncAthleteAndTeamStats(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t, SyncConfig{})
	ctx := context.Background()
	_, err := f.service.SyncTeams(ctx)
	require.NoError(t, err)
	_, err = f.service.SyncPlayers(ctx)
	require.NoError(t, err)
	_, err = f.service.SyncGames(ctx, statsDay, statsDay)
	require.NoError(t, err)

	athletes, err := f.service.SyncAthleteStats(ctx, statsDay, false)
	require.NoError(t, err)
	assert.Equal(t, 2, athletes.Created)
	assert.Equal(t, 1, athletes.Skipped, "unknown player")

	lines, err := f.box.ListPlayerStatsByGame(ctx, "401705001")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	teamStats, err := f.service.SyncTeamStats(ctx, statsDay, false)
	require.NoError(t, err)
	assert.Equal(t, 2, teamStats.Created)

	rows, err := f.box.ListTeamStatsByGame(ctx, "401705001")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestSyncService_SyncTeamStats_SkipsUnfinishedGames(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t, SyncConfig{})
	ctx := context.Background()
	_, err := f.service.SyncTeams(ctx)
	require.NoError(t, err)
	f.schedule.scoreboards["2025-01-10"][0].Status = "STATUS_IN_PROGRESS"
	_, err = f.service.SyncGames(ctx, statsDay, statsDay)
	require.NoError(t, err)

	summary, err := f.service.SyncTeamStats(ctx, statsDay, false)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Zero(t, summary.Created)
	assert.Equal(t, -1, f.log.index("espn.boxscore 401705001"))
}

func TestSyncService_Run_RecordsAndLogs(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t, SyncConfig{})
	ctx := context.Background()

	run, err := f.service.Run(ctx, syncrun.EntityTeams, SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, "id-1", run.ID)
	assert.Equal(t, syncrun.StatusSuccess, run.Status)

	stored, err := f.service.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Summary.Created)
	require.Len(t, f.syncLog.runs, 1)
	assert.Equal(t, run.ID, f.syncLog.runs[0].ID)

	_, err = f.service.GetRun(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.service.Run(ctx, syncrun.Entity("injuries"), SyncOptions{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSyncService_Run_StoreFailure(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t, SyncConfig{})
	runRepo := syncrunmock.NewRepository(t)
	f.service.runRepo = runRepo
	runRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(run syncrun.Run) bool { return run.Summary.Entity == syncrun.EntityTeams })).
		Return(errors.New("connection refused")).
		Once()

	_, err := f.service.Run(context.Background(), syncrun.EntityTeams, SyncOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store sync run")
	assert.Empty(t, f.syncLog.runs)
}

func TestSyncService_SyncAll_OrdersStagesAndIsIdempotent(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t, SyncConfig{Workers: 3})
	ctx := context.Background()
	opts := SyncOptions{From: statsDay, To: statsDay, Date: statsDay}

	run, err := f.service.Run(ctx, syncrun.EntityAll, opts)
	require.NoError(t, err)
	assert.Equal(t, syncrun.EntityAll, run.Summary.Entity)
	// 2 teams, 3 players, 1 game, 2 player lines, 2 team lines.
	assert.Equal(t, 10, run.Summary.Created)
	assert.Equal(t, 1, run.Summary.Updated, "season averages")

	teams := f.log.index("espn.teams")
	players := f.log.index("bdl.players")
	games := f.log.index("espn.scoreboard 2025-01-10")
	require.GreaterOrEqual(t, teams, 0)
	assert.Less(t, teams, players)
	assert.Less(t, players, games)
	for _, call := range []string{"bdl.stats 2025-01-10", "espn.boxscore 401705001", "bdl.averages"} {
		assert.Greater(t, f.log.index(call), games, call)
	}

	runs, err := f.service.ListRuns(ctx, 20)
	require.NoError(t, err)
	assert.Len(t, runs, 7, "six stages plus the aggregate")

	again, err := f.service.Run(ctx, syncrun.EntityAll, opts)
	require.NoError(t, err)
	assert.Zero(t, again.Summary.Created)
	assert.Zero(t, again.Summary.Updated)
}

func TestSyncService_SyncAll_ResultStagesInOrder(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t, SyncConfig{Workers: 2})
	result, err := f.service.SyncAll(context.Background(), SyncOptions{From: statsDay, To: statsDay, Date: statsDay})
	require.NoError(t, err)

	entities := make([]syncrun.Entity, 0, len(result.Stages))
	for _, stage := range result.Stages {
		entities = append(entities, stage.Entity)
	}
	assert.Equal(t, []syncrun.Entity{
		syncrun.EntityTeams,
		syncrun.EntityPlayers,
		syncrun.EntityGames,
		syncrun.EntityAthleteStats,
		syncrun.EntityTeamStats,
		syncrun.EntityPlayerAverages,
	}, entities)
}

func TestParseSyncDateAndSeason(t *testing.T) {
	t.Parallel()

	d, err := ParseSyncDate("2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, statsDay, d)
	_, err = ParseSyncDate("01/10/2025")
	assert.ErrorIs(t, err, ErrInvalidInput)

	season, err := ParseSyncSeason("2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, season)
	_, err = ParseSyncSeason("24")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSyncService_DefaultStatsDateIsPreviousLeagueDay(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t, SyncConfig{})
	assert.Equal(t, statsDay, f.service.statsDate(SyncOptions{}))
	from, to := f.service.gameRange(SyncOptions{})
	assert.Equal(t, time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, from, to)
}
