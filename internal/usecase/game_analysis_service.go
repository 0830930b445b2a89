package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/courtvision/court-vision/internal/domain/game"
	"github.com/courtvision/court-vision/internal/domain/player"
	"github.com/courtvision/court-vision/internal/domain/stats"
	"github.com/courtvision/court-vision/internal/domain/team"
	"github.com/courtvision/court-vision/internal/platform/cache"
	"github.com/courtvision/court-vision/internal/platform/logging"
)

const (
	AnalysisSourceAI       = "openai"
	AnalysisSourceFallback = "fallback"

	globalCooldownKey = "cooldown:global"

	analysisTopPerformers = 3
	analysisMaxKeyFactors = 5

	analysisSystemPrompt = "You are an NBA analyst. Answer with a single JSON object " +
		`{"summary": string, "keyFactors": [string], "playerOfTheGame": string} and nothing else.`
)

// CompletionRequest is one system+user chat completion.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

type CompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// GameAnalysis carries no timestamps so repeated reads encode identically.
type GameAnalysis struct {
	GameExternalID  string
	Source          string
	Summary         string
	KeyFactors      []string
	PlayerOfTheGame string
}

type GameAnalysisConfig struct {
	// Enabled is false when no API key is configured.
	Enabled           bool
	GlobalCooldown    time.Duration
	RateLimitCooldown time.Duration
}

type GameAnalysisService struct {
	gameRepo   game.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	statsRepo  stats.Repository
	provider   CompletionProvider
	cfg        GameAnalysisConfig
	memo       *cache.Store
	logger     *logging.Logger

	// mu serialises the cooldown check with the provider call decision.
	mu sync.Mutex
}

func NewGameAnalysisService(
	gameRepo game.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	statsRepo stats.Repository,
	provider CompletionProvider,
	cfg GameAnalysisConfig,
	logger *logging.Logger,
) *GameAnalysisService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.GlobalCooldown <= 0 {
		cfg.GlobalCooldown = 30 * time.Second
	}
	if cfg.RateLimitCooldown <= 0 {
		cfg.RateLimitCooldown = 5 * time.Minute
	}

	return &GameAnalysisService{
		gameRepo:   gameRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		statsRepo:  statsRepo,
		provider:   provider,
		cfg:        cfg,
		memo:       cache.NewStore(0),
		logger:     logger.Named("analysis"),
	}
}

func analysisKey(gameID string) string     { return "analysis:ai:" + gameID }
func fallbackKey(gameID string) string     { return "analysis:fallback:" + gameID }
func gameCooldownKey(gameID string) string { return "cooldown:game:" + gameID }

// Analyze returns the narrative for a finished game. Provider answers are
// memoized forever; fallbacks are memoized until a provider call succeeds.
func (s *GameAnalysisService) Analyze(ctx context.Context, gameID string) (GameAnalysis, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameAnalysisService.Analyze")
	defer span.End()

	g, err := lookupGame(ctx, s.gameRepo, gameID)
	if err != nil {
		return GameAnalysis{}, err
	}
	if !g.IsFinished() {
		return GameAnalysis{}, fmt.Errorf("%w: game %s is not finished (status %s)", ErrInvalidInput, g.ExternalID, g.Status)
	}

	if cached, ok := s.memo.Get(ctx, analysisKey(g.ExternalID)); ok {
		return cached.(GameAnalysis), nil
	}

	input, err := s.loadInput(ctx, g)
	if err != nil {
		return GameAnalysis{}, err
	}

	if reason := s.acquireProviderCall(ctx, g.ExternalID); reason != "" {
		s.logger.DebugContext(ctx, "use fallback analysis", "game_id", g.ExternalID, "reason", reason)
		return s.fallback(ctx, input), nil
	}

	raw, err := s.provider.Complete(ctx, CompletionRequest{
		System:      analysisSystemPrompt,
		Prompt:      buildAnalysisPrompt(input),
		Temperature: 0.4,
		MaxTokens:   600,
	})
	if err != nil {
		if errors.Is(err, ErrProviderRateLimited) {
			s.memo.SetWithTTL(ctx, gameCooldownKey(g.ExternalID), true, s.cfg.RateLimitCooldown)
		}
		s.logger.WarnContext(ctx, "analysis provider failed", "game_id", g.ExternalID, "error", err)
		return s.fallback(ctx, input), nil
	}

	analysis, err := parseAnalysis(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "unparsable analysis response", "game_id", g.ExternalID, "error", err)
		return s.fallback(ctx, input), nil
	}
	analysis.GameExternalID = g.ExternalID
	analysis.Source = AnalysisSourceAI

	s.memo.Set(ctx, analysisKey(g.ExternalID), analysis)
	s.memo.Delete(ctx, fallbackKey(g.ExternalID))
	return analysis, nil
}

// acquireProviderCall returns why the provider must not be called, or ""
// after starting the global cooldown.
func (s *GameAnalysisService) acquireProviderCall(ctx context.Context, gameID string) string {
	if !s.cfg.Enabled || s.provider == nil {
		return "disabled"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.memo.Get(ctx, gameCooldownKey(gameID)); ok {
		return "rate limited"
	}
	if _, ok := s.memo.Get(ctx, globalCooldownKey); ok {
		return "global cooldown"
	}
	s.memo.SetWithTTL(ctx, globalCooldownKey, true, s.cfg.GlobalCooldown)
	return ""
}

func (s *GameAnalysisService) fallback(ctx context.Context, input analysisInput) GameAnalysis {
	value, _ := s.memo.GetOrLoad(ctx, fallbackKey(input.game.ExternalID), func(context.Context) (any, error) {
		return buildFallbackAnalysis(input), nil
	})
	return value.(GameAnalysis)
}

type analysisInput struct {
	game    game.Game
	home    team.Team
	away    team.Team
	box     stats.BoxScore
	top     []stats.PlayerGameStat
	players map[string]player.Player
}

func (s *GameAnalysisService) loadInput(ctx context.Context, g game.Game) (analysisInput, error) {
	input := analysisInput{game: g}

	var err error
	if input.home, _, err = s.teamRepo.GetByExternalID(ctx, g.HomeTeamExternalID); err != nil {
		return analysisInput{}, fmt.Errorf("get home team: %w", err)
	}
	if input.away, _, err = s.teamRepo.GetByExternalID(ctx, g.AwayTeamExternalID); err != nil {
		return analysisInput{}, fmt.Errorf("get away team: %w", err)
	}
	if input.box, err = loadBoxScore(ctx, s.statsRepo, g.ExternalID); err != nil {
		return analysisInput{}, err
	}

	input.top = input.box.TopPerformers(analysisTopPerformers)
	ids := make([]string, 0, len(input.top))
	for _, line := range input.top {
		ids = append(ids, line.PlayerExternalID)
	}
	if input.players, err = s.playerRepo.GetByExternalIDs(ctx, ids); err != nil {
		return analysisInput{}, fmt.Errorf("get top performers: %w", err)
	}
	return input, nil
}

func (in analysisInput) teamName(t team.Team, fallbackID string) string {
	switch {
	case t.DisplayName != "":
		return t.DisplayName
	case t.Name != "":
		return t.Name
	default:
		return fallbackID
	}
}

func (in analysisInput) playerName(line stats.PlayerGameStat) string {
	if p, ok := in.players[line.PlayerExternalID]; ok && p.FullName() != "" {
		return p.FullName()
	}
	return "Player " + line.PlayerExternalID
}

func buildAnalysisPrompt(in analysisInput) string {
	g := in.game
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this finished NBA game.\n")
	fmt.Fprintf(&b, "Final: %s %d, %s %d (home team listed first).\n",
		in.teamName(in.home, g.HomeTeamExternalID), g.HomeScore,
		in.teamName(in.away, g.AwayTeamExternalID), g.AwayScore)

	for _, side := range []struct {
		id   string
		name string
	}{
		{g.HomeTeamExternalID, in.teamName(in.home, g.HomeTeamExternalID)},
		{g.AwayTeamExternalID, in.teamName(in.away, g.AwayTeamExternalID)},
	} {
		t, ok := in.box.Team(side.id)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s: FG %.1f%%, 3PT %.1f%%, FT %.1f%%, REB %d, AST %d, TOV %d, STL %d, BLK %d, fast break %d, paint %d.\n",
			side.name, t.FGPct, t.FG3Pct, t.FTPct, t.Rebounds, t.Assists, t.Turnovers, t.Steals, t.Blocks,
			t.FastBreakPoints, t.PointsInPaint)
	}

	if len(in.top) > 0 {
		b.WriteString("Top performers:\n")
		for _, line := range in.top {
			fmt.Fprintf(&b, "- %s: %d PTS, %d REB, %d AST, %d STL, %d BLK, %d/%d FG, %d/%d 3PT\n",
				in.playerName(line), line.Points, line.Rebounds, line.Assists, line.Steals, line.Blocks,
				line.FGM, line.FGA, line.FG3M, line.FG3A)
		}
	}
	b.WriteString("Give a two sentence summary, up to five key factors and the player of the game.")
	return b.String()
}

type analysisPayload struct {
	Summary         string   `json:"summary"`
	KeyFactors      []string `json:"keyFactors"`
	PlayerOfTheGame string   `json:"playerOfTheGame"`
}

// parseAnalysis extracts the outermost JSON object from raw.
func parseAnalysis(raw string) (GameAnalysis, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return GameAnalysis{}, errors.New("no json object in response")
	}

	var payload analysisPayload
	if err := sonic.UnmarshalString(raw[start:end+1], &payload); err != nil {
		return GameAnalysis{}, fmt.Errorf("decode analysis: %w", err)
	}
	payload.Summary = strings.TrimSpace(payload.Summary)
	if payload.Summary == "" {
		return GameAnalysis{}, errors.New("analysis summary is empty")
	}

	factors := make([]string, 0, len(payload.KeyFactors))
	for _, f := range payload.KeyFactors {
		if f = strings.TrimSpace(f); f != "" && len(factors) < analysisMaxKeyFactors {
			factors = append(factors, f)
		}
	}
	return GameAnalysis{
		Summary:         payload.Summary,
		KeyFactors:      factors,
		PlayerOfTheGame: strings.TrimSpace(payload.PlayerOfTheGame),
	}, nil
}

// buildFallbackAnalysis is a deterministic template over the box score.
func buildFallbackAnalysis(in analysisInput) GameAnalysis {
	g := in.game
	homeName := in.teamName(in.home, g.HomeTeamExternalID)
	awayName := in.teamName(in.away, g.AwayTeamExternalID)

	winner, loser := homeName, awayName
	winnerID, loserID := g.HomeTeamExternalID, g.AwayTeamExternalID
	ws, ls := g.HomeScore, g.AwayScore
	if g.AwayScore > g.HomeScore {
		winner, loser = awayName, homeName
		winnerID, loserID = g.AwayTeamExternalID, g.HomeTeamExternalID
		ws, ls = g.AwayScore, g.HomeScore
	}

	out := GameAnalysis{
		GameExternalID: g.ExternalID,
		Source:         AnalysisSourceFallback,
		KeyFactors:     []string{},
	}
	if ws == ls {
		out.Summary = fmt.Sprintf("%s and %s finished level at %d.", homeName, awayName, ws)
	} else {
		out.Summary = fmt.Sprintf("%s beat %s %d-%d.", winner, loser, ws, ls)
		out.KeyFactors = append(out.KeyFactors, fmt.Sprintf("Final margin: %d", ws-ls))
	}

	wt, okW := in.box.Team(winnerID)
	lt, okL := in.box.Team(loserID)
	if okW && okL {
		if wt.Rebounds != lt.Rebounds {
			out.KeyFactors = append(out.KeyFactors, fmt.Sprintf("Rebounding: %s %d, %s %d", winner, wt.Rebounds, loser, lt.Rebounds))
		}
		if wt.Assists != lt.Assists {
			out.KeyFactors = append(out.KeyFactors, fmt.Sprintf("Ball movement: %s %d assists, %s %d", winner, wt.Assists, loser, lt.Assists))
		}
		if wt.Turnovers != lt.Turnovers {
			out.KeyFactors = append(out.KeyFactors, fmt.Sprintf("Turnovers: %s %d, %s %d", winner, wt.Turnovers, loser, lt.Turnovers))
		}
		out.KeyFactors = append(out.KeyFactors,
			fmt.Sprintf("Shooting: %s %.1f%% FG / %.1f%% 3PT, %s %.1f%% FG / %.1f%% 3PT", winner, wt.FGPct, wt.FG3Pct, loser, lt.FGPct, lt.FG3Pct))
		if wt.PointsInPaint != lt.PointsInPaint {
			out.KeyFactors = append(out.KeyFactors, fmt.Sprintf("Paint scoring: %s %d, %s %d", winner, wt.PointsInPaint, loser, lt.PointsInPaint))
		}
	}
	if len(out.KeyFactors) > analysisMaxKeyFactors {
		out.KeyFactors = out.KeyFactors[:analysisMaxKeyFactors]
	}

	if len(in.top) > 0 {
		line := in.top[0]
		out.PlayerOfTheGame = fmt.Sprintf("%s (%d PTS, %d REB, %d AST)", in.playerName(line), line.Points, line.Rebounds, line.Assists)
	}
	return out
}
