package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/courtvision/court-vision/internal/domain/game"
	"github.com/courtvision/court-vision/internal/domain/play"
	"github.com/courtvision/court-vision/internal/domain/player"
	"github.com/courtvision/court-vision/internal/domain/tag"
	"github.com/courtvision/court-vision/internal/domain/taxonomy"
	"github.com/courtvision/court-vision/internal/domain/team"
)

const (
	defaultPatternLimit    = 5
	maxPatternLimit        = 50
	recentPlaysLimit       = 10
	gameContextTopActions  = 3
	scoutingTopActions     = 5
	scoutingMaxCounters    = 6
	scoutingMinSampleSize  = 10
	suggestionSourceStatic = "static"
	suggestionSourceHist   = "history"
	gradeNotAvailable      = "N/A"
)

type ThreatLevel string

const (
	ThreatLow      ThreatLevel = "LOW"
	ThreatModerate ThreatLevel = "MODERATE"
	ThreatHigh     ThreatLevel = "HIGH"
)

type PatternOptions struct {
	Limit int
	// LookbackDays limits to plays created in the last N days; 0 means all.
	LookbackDays int
}

type ActionCount struct {
	Action     string
	Category   string
	Count      int
	Percentage float64
}

type CategoryShare struct {
	Category   string
	Count      int
	Percentage float64
}

type PlayerPatterns struct {
	PlayerExternalID    string
	TotalActions        int
	MostCommonActions   []ActionCount
	QuarterDistribution map[int]int
	Outcomes            map[string]int
}

type TeamTendencies struct {
	TeamExternalID      string
	TotalActions        int
	MostCommonActions   []ActionCount
	Categories          []CategoryShare
	QuarterDistribution map[int]int
}

// Decision is one graded step. From is empty when a single-action play
// was graded on its own.
type Decision struct {
	PlayID         string
	GameExternalID string
	From           string
	To             string
	Label          taxonomy.Label
	Score          float64
}

type DecisionQuality struct {
	PlayerExternalID string
	Grade            string
	AverageScore     float64
	Sequences        int
	Decisions        []Decision
	LabelCounts      map[taxonomy.Label]int
}

type TagSuggestion struct {
	TagName    string
	Count      int
	Confidence float64
}

type NextTagSuggestions struct {
	LastTag     string
	Source      string
	Total       int
	Suggestions []TagSuggestion
}

type ActionSuggestions struct {
	PreviousAction string
	Allowed        []taxonomy.QuickAction
	Predictions    []TagSuggestion
}

type GameContext struct {
	Game           game.Game
	HomeTeam       team.Team
	AwayTeam       team.Team
	PlayCount      int
	LatestQuarter  int
	RecentPlays    []play.Play
	HomeTopActions []ActionCount
	AwayTopActions []ActionCount
}

type ScoutingReport struct {
	Player          player.Player
	SampleSize      int
	Tendencies      []ActionCount
	ShotZones       map[string]int
	Outcomes        map[string]int
	Recommendations []string
	DecisionGrade   string
	ThreatLevel     ThreatLevel
}

type AnalyticsService struct {
	playRepo   play.Repository
	gameRepo   game.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	tagRepo    tag.Repository
	tables     taxonomy.Tables
	now        func() time.Time
}

func NewAnalyticsService(
	playRepo play.Repository,
	gameRepo game.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	tagRepo tag.Repository,
	tables taxonomy.Tables,
) *AnalyticsService {
	return &AnalyticsService{
		playRepo:   playRepo,
		gameRepo:   gameRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		tagRepo:    tagRepo,
		tables:     tables,
		now:        time.Now,
	}
}

func (s *AnalyticsService) PlayerPatterns(ctx context.Context, playerID string, opts PatternOptions) (PlayerPatterns, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.PlayerPatterns")
	defer span.End()

	p, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return PlayerPatterns{}, err
	}
	limit, since, err := s.patternWindow(opts)
	if err != nil {
		return PlayerPatterns{}, err
	}

	actions, err := s.playRepo.ListActions(ctx, play.ActionFilter{PlayerExternalID: p.ExternalID, Since: since})
	if err != nil {
		return PlayerPatterns{}, fmt.Errorf("list player actions: %w", err)
	}

	counts := countActions(actions)
	out := PlayerPatterns{
		PlayerExternalID:    p.ExternalID,
		TotalActions:        len(actions),
		MostCommonActions:   topN(counts, limit),
		QuarterDistribution: make(map[int]int),
		Outcomes:            make(map[string]int),
	}
	for _, a := range actions {
		out.QuarterDistribution[a.Quarter]++
		if a.Context.Outcome != "" {
			out.Outcomes[string(a.Context.Outcome)]++
		}
	}
	return out, nil
}

func (s *AnalyticsService) TeamTendencies(ctx context.Context, teamID string, opts PatternOptions) (TeamTendencies, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.TeamTendencies")
	defer span.End()

	t, err := lookupTeam(ctx, s.teamRepo, teamID)
	if err != nil {
		return TeamTendencies{}, err
	}
	limit, since, err := s.patternWindow(opts)
	if err != nil {
		return TeamTendencies{}, err
	}

	actions, err := s.playRepo.ListActions(ctx, play.ActionFilter{TeamExternalID: t.ExternalID, Since: since})
	if err != nil {
		return TeamTendencies{}, fmt.Errorf("list team actions: %w", err)
	}

	out := TeamTendencies{
		TeamExternalID:      t.ExternalID,
		TotalActions:        len(actions),
		MostCommonActions:   topN(countActions(actions), limit),
		Categories:          []CategoryShare{},
		QuarterDistribution: make(map[int]int),
	}
	byCategory := make(map[string]int)
	for _, a := range actions {
		byCategory[a.TagCategory]++
		out.QuarterDistribution[a.Quarter]++
	}
	for category, count := range byCategory {
		out.Categories = append(out.Categories, CategoryShare{
			Category:   category,
			Count:      count,
			Percentage: percentage(count, len(actions)),
		})
	}
	sort.Slice(out.Categories, func(i, j int) bool {
		if out.Categories[i].Count != out.Categories[j].Count {
			return out.Categories[i].Count > out.Categories[j].Count
		}
		return out.Categories[i].Category < out.Categories[j].Category
	})
	return out, nil
}

// DecisionQuality grades the player's action sequences per play.
func (s *AnalyticsService) DecisionQuality(ctx context.Context, playerID string) (DecisionQuality, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.DecisionQuality")
	defer span.End()

	p, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return DecisionQuality{}, err
	}
	actions, err := s.playRepo.ListActions(ctx, play.ActionFilter{PlayerExternalID: p.ExternalID})
	if err != nil {
		return DecisionQuality{}, fmt.Errorf("list player actions: %w", err)
	}
	return gradeDecisions(p.ExternalID, actions, s.tables), nil
}

// NextTagSuggestions counts what followed lastTag across stored games.
// Without history the tag's static suggestions are returned as is.
func (s *AnalyticsService) NextTagSuggestions(ctx context.Context, lastTag string, limit int) (NextTagSuggestions, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.NextTagSuggestions")
	defer span.End()

	limit, err := normalizePatternLimit(limit)
	if err != nil {
		return NextTagSuggestions{}, err
	}
	t, err := resolveTag(ctx, s.tagRepo, lastTag)
	if err != nil {
		return NextTagSuggestions{}, err
	}

	actions, err := s.playRepo.ListActions(ctx, play.ActionFilter{})
	if err != nil {
		return NextTagSuggestions{}, fmt.Errorf("list actions: %w", err)
	}

	suggestions, total := transitionsFrom(actions, func(a play.TaggedAction) bool { return a.TagID == t.ID })
	if total == 0 {
		static := make([]TagSuggestion, 0, len(t.Suggestions))
		for _, name := range t.Suggestions {
			static = append(static, TagSuggestion{TagName: name})
		}
		return NextTagSuggestions{LastTag: t.Name, Source: suggestionSourceStatic, Suggestions: static}, nil
	}

	return NextTagSuggestions{
		LastTag:     t.Name,
		Source:      suggestionSourceHist,
		Total:       total,
		Suggestions: topSuggestions(suggestions, limit),
	}, nil
}

// Suggestions returns the advisory next quick actions after
// previousAction plus what history says usually follows it. An empty
// previousAction yields the start actions.
func (s *AnalyticsService) Suggestions(ctx context.Context, previousAction string, limit int) (ActionSuggestions, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Suggestions")
	defer span.End()

	limit, err := normalizePatternLimit(limit)
	if err != nil {
		return ActionSuggestions{}, err
	}
	previousAction = strings.TrimSpace(previousAction)
	out := ActionSuggestions{PreviousAction: previousAction, Predictions: []TagSuggestion{}}

	names := s.tables.StartActions
	if previousAction != "" {
		name, ok := s.quickActionName(previousAction)
		if !ok {
			return ActionSuggestions{}, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, previousAction)
		}
		out.PreviousAction = name
		if next := s.tables.Transitions[name]; len(next) > 0 {
			names = next
		}
	}
	out.Allowed = s.quickActions(names)

	if out.PreviousAction == "" {
		return out, nil
	}
	actions, err := s.playRepo.ListActions(ctx, play.ActionFilter{})
	if err != nil {
		return ActionSuggestions{}, fmt.Errorf("list actions: %w", err)
	}
	counts, _ := transitionsFrom(actions, func(a play.TaggedAction) bool {
		return strings.EqualFold(a.TagName, out.PreviousAction)
	})
	out.Predictions = topSuggestions(counts, limit)
	return out, nil
}

// GameContext loads the game's teams, plays and tagged actions concurrently.
func (s *AnalyticsService) GameContext(ctx context.Context, gameID string) (GameContext, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.GameContext")
	defer span.End()

	g, err := lookupGame(ctx, s.gameRepo, gameID)
	if err != nil {
		return GameContext{}, err
	}

	var (
		home, away team.Team
		plays      []play.Play
		actions    []play.TaggedAction
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		item, _, err := s.teamRepo.GetByExternalID(ctx, g.HomeTeamExternalID)
		if err != nil {
			return fmt.Errorf("get home team: %w", err)
		}
		home = item
		return nil
	})
	p.Go(func(ctx context.Context) error {
		item, _, err := s.teamRepo.GetByExternalID(ctx, g.AwayTeamExternalID)
		if err != nil {
			return fmt.Errorf("get away team: %w", err)
		}
		away = item
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.playRepo.ListByGame(ctx, g.ExternalID)
		if err != nil {
			return fmt.Errorf("list plays: %w", err)
		}
		plays = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.playRepo.ListActions(ctx, play.ActionFilter{GameExternalID: g.ExternalID})
		if err != nil {
			return fmt.Errorf("list game actions: %w", err)
		}
		actions = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return GameContext{}, err
	}

	out := GameContext{
		Game:        g,
		HomeTeam:    home,
		AwayTeam:    away,
		PlayCount:   len(plays),
		RecentPlays: make([]play.Play, 0, recentPlaysLimit),
	}
	for i := len(plays) - 1; i >= 0 && len(out.RecentPlays) < recentPlaysLimit; i-- {
		out.RecentPlays = append(out.RecentPlays, plays[i])
	}
	for _, item := range plays {
		out.LatestQuarter = max(out.LatestQuarter, item.Quarter)
	}

	var homeActions, awayActions []play.TaggedAction
	for _, a := range actions {
		switch a.TeamExternalID {
		case g.HomeTeamExternalID:
			homeActions = append(homeActions, a)
		case g.AwayTeamExternalID:
			awayActions = append(awayActions, a)
		}
	}
	out.HomeTopActions = topN(countActions(homeActions), gameContextTopActions)
	out.AwayTopActions = topN(countActions(awayActions), gameContextTopActions)
	return out, nil
}

// DefensiveScouting summarises how a player attacks and how to defend it.
func (s *AnalyticsService) DefensiveScouting(ctx context.Context, playerID string) (ScoutingReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.DefensiveScouting")
	defer span.End()

	p, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return ScoutingReport{}, err
	}
	actions, err := s.playRepo.ListActions(ctx, play.ActionFilter{PlayerExternalID: p.ExternalID})
	if err != nil {
		return ScoutingReport{}, fmt.Errorf("list player actions: %w", err)
	}

	offensive := make([]play.TaggedAction, 0, len(actions))
	for _, a := range actions {
		switch tag.Category(a.TagCategory) {
		case tag.CategoryOffense, tag.CategoryShot, tag.CategoryTransition:
			offensive = append(offensive, a)
		}
	}

	report := ScoutingReport{
		Player:          p,
		SampleSize:      len(offensive),
		Tendencies:      topN(countActions(offensive), scoutingTopActions),
		ShotZones:       make(map[string]int),
		Outcomes:        make(map[string]int),
		Recommendations: []string{},
	}
	for _, a := range offensive {
		if a.Context.ShotZone != "" {
			report.ShotZones[string(a.Context.ShotZone)]++
		}
		if a.Context.Outcome != "" {
			report.Outcomes[string(a.Context.Outcome)]++
		}
	}

	seen := make(map[string]struct{})
	for _, tendency := range report.Tendencies {
		for _, counter := range s.tables.Counters[tendency.Action] {
			if len(report.Recommendations) >= scoutingMaxCounters {
				break
			}
			if _, dup := seen[counter]; dup {
				continue
			}
			seen[counter] = struct{}{}
			report.Recommendations = append(report.Recommendations, counter)
		}
	}

	quality := gradeDecisions(p.ExternalID, actions, s.tables)
	report.DecisionGrade = quality.Grade
	report.ThreatLevel = threatLevel(report.SampleSize, quality.Grade)
	return report, nil
}

func (s *AnalyticsService) getPlayer(ctx context.Context, playerID string) (player.Player, error) {
	return lookupPlayer(ctx, s.playerRepo, playerID)
}

func (s *AnalyticsService) patternWindow(opts PatternOptions) (int, time.Time, error) {
	limit, err := normalizePatternLimit(opts.Limit)
	if err != nil {
		return 0, time.Time{}, err
	}
	if opts.LookbackDays < 0 {
		return 0, time.Time{}, fmt.Errorf("%w: days must be >= 0", ErrInvalidInput)
	}
	var since time.Time
	if opts.LookbackDays > 0 {
		since = s.now().UTC().AddDate(0, 0, -opts.LookbackDays)
	}
	return limit, since, nil
}

func (s *AnalyticsService) quickActionName(name string) (string, bool) {
	for _, qa := range s.tables.QuickActions {
		if strings.EqualFold(qa.Name, name) {
			return qa.Name, true
		}
	}
	return "", false
}

func (s *AnalyticsService) quickActions(names []string) []taxonomy.QuickAction {
	byName := make(map[string]taxonomy.QuickAction, len(s.tables.QuickActions))
	for _, qa := range s.tables.QuickActions {
		byName[qa.Name] = qa
	}
	out := make([]taxonomy.QuickAction, 0, len(names))
	for _, name := range names {
		if qa, ok := byName[name]; ok {
			out = append(out, qa)
		}
	}
	return out
}

func normalizePatternLimit(limit int) (int, error) {
	switch {
	case limit == 0:
		return defaultPatternLimit, nil
	case limit < 0 || limit > maxPatternLimit:
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, maxPatternLimit)
	default:
		return limit, nil
	}
}

// countActions groups by tag name, sorted by count desc then name asc.
func countActions(actions []play.TaggedAction) []ActionCount {
	byName := make(map[string]*ActionCount)
	for _, a := range actions {
		c, ok := byName[a.TagName]
		if !ok {
			c = &ActionCount{Action: a.TagName, Category: a.TagCategory}
			byName[a.TagName] = c
		}
		c.Count++
	}

	out := make([]ActionCount, 0, len(byName))
	for _, c := range byName {
		c.Percentage = percentage(c.Count, len(actions))
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Action < out[j].Action
	})
	return out
}

func topN(items []ActionCount, n int) []ActionCount {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// percentage rounds count/total to one decimal.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)*1000/float64(total)) / 10
}

// transitionsFrom counts the tag that directly follows a matching tag
// within the same game. actions must be ordered by game then chronology.
func transitionsFrom(actions []play.TaggedAction, match func(play.TaggedAction) bool) (map[string]int, int) {
	counts := make(map[string]int)
	total := 0
	for i := 0; i+1 < len(actions); i++ {
		cur, next := actions[i], actions[i+1]
		if cur.GameExternalID != next.GameExternalID || !match(cur) {
			continue
		}
		counts[next.TagName]++
		total++
	}
	return counts, total
}

func topSuggestions(counts map[string]int, limit int) []TagSuggestion {
	total := 0
	for _, c := range counts {
		total += c
	}
	out := make([]TagSuggestion, 0, len(counts))
	for name, c := range counts {
		out = append(out, TagSuggestion{
			TagName:    name,
			Count:      c,
			Confidence: math.Round(float64(c)*100/float64(total)) / 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].TagName < out[j].TagName
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// gradeDecisions walks each play's actions in order. A step is graded by
// the sequence table, falling back to the single-action grade of its
// target. A play with one action is graded on that action alone.
func gradeDecisions(playerID string, actions []play.TaggedAction, tables taxonomy.Tables) DecisionQuality {
	out := DecisionQuality{
		PlayerExternalID: playerID,
		Grade:            gradeNotAvailable,
		Decisions:        []Decision{},
		LabelCounts:      make(map[taxonomy.Label]int),
	}

	var sequences [][]play.TaggedAction
	for _, a := range actions {
		n := len(sequences)
		if n > 0 && sequences[n-1][0].PlayID == a.PlayID {
			sequences[n-1] = append(sequences[n-1], a)
			continue
		}
		sequences = append(sequences, []play.TaggedAction{a})
	}
	out.Sequences = len(sequences)

	rate := func(seq []play.TaggedAction, from, to string) {
		label, ok := tables.Sequences[taxonomy.Step{From: from, To: to}]
		if !ok {
			if label, ok = tables.SingleActions[to]; !ok {
				return
			}
		}
		score, _ := label.Score()
		out.Decisions = append(out.Decisions, Decision{
			PlayID:         seq[0].PlayID,
			GameExternalID: seq[0].GameExternalID,
			From:           from,
			To:             to,
			Label:          label,
			Score:          score,
		})
		out.LabelCounts[label]++
	}

	for _, seq := range sequences {
		if len(seq) == 1 {
			rate(seq, "", seq[0].TagName)
			continue
		}
		for i := 1; i < len(seq); i++ {
			rate(seq, seq[i-1].TagName, seq[i].TagName)
		}
	}

	if len(out.Decisions) == 0 {
		return out
	}
	var sum float64
	for _, d := range out.Decisions {
		sum += d.Score
	}
	out.AverageScore = math.Round(sum*100/float64(len(out.Decisions))) / 100
	out.Grade = letterGrade(sum / float64(len(out.Decisions)))
	return out
}

func letterGrade(avg float64) string {
	switch {
	case avg >= 3.5:
		return "A"
	case avg >= 2.5:
		return "B"
	case avg >= 1.5:
		return "C"
	default:
		return "D"
	}
}

// threatLevel is capped at MODERATE until the sample is large enough.
func threatLevel(sample int, grade string) ThreatLevel {
	var level ThreatLevel
	switch grade {
	case "A":
		level = ThreatHigh
	case "B":
		level = ThreatModerate
	default:
		level = ThreatLow
	}
	if sample == 0 {
		return ThreatLow
	}
	if sample < scoutingMinSampleSize && level == ThreatHigh {
		return ThreatModerate
	}
	return level
}
