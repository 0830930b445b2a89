package httpapi

import (
	"time"

	"github.com/courtvision/court-vision/internal/domain/game"
	"github.com/courtvision/court-vision/internal/domain/play"
	"github.com/courtvision/court-vision/internal/domain/player"
	"github.com/courtvision/court-vision/internal/domain/stats"
	"github.com/courtvision/court-vision/internal/domain/syncrun"
	"github.com/courtvision/court-vision/internal/domain/tag"
	"github.com/courtvision/court-vision/internal/domain/taxonomy"
	"github.com/courtvision/court-vision/internal/domain/team"
	"github.com/courtvision/court-vision/internal/usecase"
)

type teamDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	DisplayName  string   `json:"displayName"`
	Abbreviation string   `json:"abbreviation"`
	Location     string   `json:"location,omitempty"`
	Conference   string   `json:"conference,omitempty"`
	Division     string   `json:"division,omitempty"`
	LogoURL      string   `json:"logoUrl,omitempty"`
	TeamColor    []string `json:"teamColor,omitempty"`
}

type seasonAveragesDTO struct {
	Season      int     `json:"season"`
	GamesPlayed int     `json:"gamesPlayed"`
	Minutes     string  `json:"minutes"`
	Points      float64 `json:"points"`
	Rebounds    float64 `json:"rebounds"`
	Assists     float64 `json:"assists"`
	Steals      float64 `json:"steals"`
	Blocks      float64 `json:"blocks"`
	Turnovers   float64 `json:"turnovers"`
	FGPct       float64 `json:"fgPct"`
	FG3Pct      float64 `json:"fg3Pct"`
	FTPct       float64 `json:"ftPct"`
}

type playerDTO struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	FirstName      string             `json:"firstName"`
	LastName       string             `json:"lastName"`
	Position       string             `json:"position,omitempty"`
	TeamID         string             `json:"teamId,omitempty"`
	JerseyNumber   string             `json:"jerseyNumber,omitempty"`
	Height         string             `json:"height,omitempty"`
	Weight         string             `json:"weight,omitempty"`
	College        string             `json:"college,omitempty"`
	Country        string             `json:"country,omitempty"`
	DraftYear      int                `json:"draftYear,omitempty"`
	HasStatistics  bool               `json:"hasStatistics"`
	SeasonAverages *seasonAveragesDTO `json:"seasonAverages,omitempty"`
}

type gameDTO struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
	HomeScore  int    `json:"homeScore"`
	AwayScore  int    `json:"awayScore"`
	Status     string `json:"status"`
	Season     int    `json:"season"`
	Period     int    `json:"period,omitempty"`
	Clock      string `json:"clock,omitempty"`
}

type teamGameStatDTO struct {
	TeamID          string  `json:"teamId"`
	Points          int     `json:"points"`
	FGPct           float64 `json:"fgPct"`
	FG3Pct          float64 `json:"fg3Pct"`
	FTPct           float64 `json:"ftPct"`
	Rebounds        int     `json:"rebounds"`
	Assists         int     `json:"assists"`
	Turnovers       int     `json:"turnovers"`
	Steals          int     `json:"steals"`
	Blocks          int     `json:"blocks"`
	FastBreakPoints int     `json:"fastBreakPoints"`
	PointsInPaint   int     `json:"pointsInPaint"`
}

type playerGameStatDTO struct {
	PlayerID  string `json:"playerId"`
	TeamID    string `json:"teamId"`
	Minutes   string `json:"minutes"`
	Points    int    `json:"points"`
	Rebounds  int    `json:"rebounds"`
	Assists   int    `json:"assists"`
	Steals    int    `json:"steals"`
	Blocks    int    `json:"blocks"`
	Turnovers int    `json:"turnovers"`
	FGM       int    `json:"fgm"`
	FGA       int    `json:"fga"`
	FG3M      int    `json:"fg3m"`
	FG3A      int    `json:"fg3a"`
	FTM       int    `json:"ftm"`
	FTA       int    `json:"fta"`
}

type boxScoreDTO struct {
	GameID  string              `json:"gameId"`
	Teams   []teamGameStatDTO   `json:"teams"`
	Players []playerGameStatDTO `json:"players"`
}

type triggerDTO struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type tagDTO struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Subcategory string       `json:"subcategory,omitempty"`
	Description string       `json:"description,omitempty"`
	Triggers    []triggerDTO `json:"triggers"`
	Suggestions []string     `json:"suggestions"`
}

type playContextDTO struct {
	Action     string `json:"action,omitempty"`
	Outcome    string `json:"outcome,omitempty"`
	ShotZone   string `json:"shotZone,omitempty"`
	DefenderID string `json:"defenderId,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type playTagDTO struct {
	ID        string          `json:"id"`
	TagID     string          `json:"tagId"`
	PlayerID  string          `json:"playerId,omitempty"`
	TeamID    string          `json:"teamId,omitempty"`
	Position  int             `json:"position"`
	Context   *playContextDTO `json:"context,omitempty"`
	CreatedAt string          `json:"createdAt"`
}

type playDTO struct {
	ID          string       `json:"id"`
	GameID      string       `json:"gameId"`
	Quarter     int          `json:"quarter"`
	GameTime    string       `json:"gameTime"`
	Description string       `json:"description,omitempty"`
	CreatedBy   string       `json:"createdBy,omitempty"`
	Tags        []playTagDTO `json:"tags"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}

type actionCountDTO struct {
	Action     string  `json:"action"`
	Category   string  `json:"category,omitempty"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type categoryShareDTO struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type playerPatternsDTO struct {
	PlayerID            string           `json:"playerId"`
	TotalActions        int              `json:"totalActions"`
	MostCommonActions   []actionCountDTO `json:"mostCommonActions"`
	QuarterDistribution map[int]int      `json:"quarterDistribution"`
	Outcomes            map[string]int   `json:"outcomes"`
}

type teamTendenciesDTO struct {
	TeamID              string             `json:"teamId"`
	TotalActions        int                `json:"totalActions"`
	MostCommonActions   []actionCountDTO   `json:"mostCommonActions"`
	Categories          []categoryShareDTO `json:"categories"`
	QuarterDistribution map[int]int        `json:"quarterDistribution"`
}

type decisionDTO struct {
	PlayID string  `json:"playId"`
	GameID string  `json:"gameId"`
	From   string  `json:"from,omitempty"`
	To     string  `json:"to"`
	Label  string  `json:"label"`
	Score  float64 `json:"score"`
}

type decisionQualityDTO struct {
	PlayerID     string         `json:"playerId"`
	Grade        string         `json:"grade"`
	AverageScore float64        `json:"averageScore"`
	Sequences    int            `json:"sequences"`
	Decisions    []decisionDTO  `json:"decisions"`
	LabelCounts  map[string]int `json:"labelCounts"`
}

type tagSuggestionDTO struct {
	TagName    string  `json:"tagName"`
	Count      int     `json:"count"`
	Confidence float64 `json:"confidence"`
}

type nextTagSuggestionsDTO struct {
	LastTag     string             `json:"lastTag"`
	Source      string             `json:"source"`
	Total       int                `json:"total"`
	Suggestions []tagSuggestionDTO `json:"suggestions"`
}

type quickActionDTO struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	Shortcut    string `json:"shortcut,omitempty"`
	Description string `json:"description,omitempty"`
}

type actionSuggestionsDTO struct {
	PreviousAction string             `json:"previousAction,omitempty"`
	Allowed        []quickActionDTO   `json:"allowed"`
	Predictions    []tagSuggestionDTO `json:"predictions"`
}

type gameContextDTO struct {
	Game           gameDTO          `json:"game"`
	HomeTeam       teamDTO          `json:"homeTeam"`
	AwayTeam       teamDTO          `json:"awayTeam"`
	PlayCount      int              `json:"playCount"`
	LatestQuarter  int              `json:"latestQuarter"`
	RecentPlays    []playDTO        `json:"recentPlays"`
	HomeTopActions []actionCountDTO `json:"homeTopActions"`
	AwayTopActions []actionCountDTO `json:"awayTopActions"`
}

type scoutingReportDTO struct {
	Player          playerDTO        `json:"player"`
	SampleSize      int              `json:"sampleSize"`
	Tendencies      []actionCountDTO `json:"tendencies"`
	ShotZones       map[string]int   `json:"shotZones"`
	Outcomes        map[string]int   `json:"outcomes"`
	Recommendations []string         `json:"recommendations"`
	DecisionGrade   string           `json:"decisionGrade"`
	ThreatLevel     string           `json:"threatLevel"`
}

type gameAnalysisDTO struct {
	GameID          string   `json:"gameId"`
	Source          string   `json:"source"`
	Summary         string   `json:"summary"`
	KeyFactors      []string `json:"keyFactors"`
	PlayerOfTheGame string   `json:"playerOfTheGame"`
}

type syncSummaryDTO struct {
	Entity        string   `json:"entity"`
	Status        string   `json:"status"`
	Created       int      `json:"created"`
	Updated       int      `json:"updated"`
	Skipped       int      `json:"skipped"`
	Errors        int      `json:"errors"`
	ErrorMessages []string `json:"errorMessages,omitempty"`
	SkipReason    string   `json:"skipReason,omitempty"`
	StartedAt     string   `json:"startedAt"`
	FinishedAt    string   `json:"finishedAt"`
	DurationMS    int64    `json:"durationMs"`
}

type syncRunDTO struct {
	ID      string         `json:"id"`
	Status  string         `json:"status"`
	Summary syncSummaryDTO `json:"summary"`
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:           v.ExternalID,
		Name:         v.Name,
		DisplayName:  v.DisplayName,
		Abbreviation: v.Abbreviation,
		Location:     v.Location,
		Conference:   v.Conference,
		Division:     v.Division,
		LogoURL:      v.LogoURL,
		TeamColor:    teamColorArray(v.Color, v.AlternateColor),
	}
}

func teamColorArray(primary, secondary string) []string {
	out := make([]string, 0, 2)
	if primary != "" {
		out = append(out, "#"+primary)
	}
	if secondary != "" {
		out = append(out, "#"+secondary)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func playerToDTO(v player.Player) playerDTO {
	out := playerDTO{
		ID:            v.ExternalID,
		Name:          v.FullName(),
		FirstName:     v.FirstName,
		LastName:      v.LastName,
		Position:      v.Position,
		TeamID:        v.TeamExternalID,
		JerseyNumber:  v.JerseyNumber,
		Height:        v.Height,
		Weight:        v.Weight,
		College:       v.College,
		Country:       v.Country,
		DraftYear:     v.DraftYear,
		HasStatistics: v.HasStatistics,
	}
	if avg := v.SeasonAverages; avg != nil {
		out.SeasonAverages = &seasonAveragesDTO{
			Season:      avg.Season,
			GamesPlayed: avg.GamesPlayed,
			Minutes:     avg.Minutes,
			Points:      avg.Points,
			Rebounds:    avg.Rebounds,
			Assists:     avg.Assists,
			Steals:      avg.Steals,
			Blocks:      avg.Blocks,
			Turnovers:   avg.Turnovers,
			FGPct:       avg.FGPct,
			FG3Pct:      avg.FG3Pct,
			FTPct:       avg.FTPct,
		}
	}
	return out
}

func gameToDTO(v game.Game) gameDTO {
	return gameDTO{
		ID:         v.ExternalID,
		Date:       formatTime(v.Date),
		HomeTeamID: v.HomeTeamExternalID,
		AwayTeamID: v.AwayTeamExternalID,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
		Status:     string(v.Status),
		Season:     v.Season,
		Period:     v.Period,
		Clock:      v.Clock,
	}
}

func boxScoreToDTO(v stats.BoxScore) boxScoreDTO {
	out := boxScoreDTO{
		GameID:  v.GameExternalID,
		Teams:   make([]teamGameStatDTO, 0, len(v.Teams)),
		Players: make([]playerGameStatDTO, 0, len(v.Players)),
	}
	for _, t := range v.Teams {
		out.Teams = append(out.Teams, teamGameStatDTO{
			TeamID:          t.TeamExternalID,
			Points:          t.Points,
			FGPct:           t.FGPct,
			FG3Pct:          t.FG3Pct,
			FTPct:           t.FTPct,
			Rebounds:        t.Rebounds,
			Assists:         t.Assists,
			Turnovers:       t.Turnovers,
			Steals:          t.Steals,
			Blocks:          t.Blocks,
			FastBreakPoints: t.FastBreakPoints,
			PointsInPaint:   t.PointsInPaint,
		})
	}
	for _, p := range v.Players {
		out.Players = append(out.Players, playerGameStatDTO{
			PlayerID:  p.PlayerExternalID,
			TeamID:    p.TeamExternalID,
			Minutes:   p.Minutes,
			Points:    p.Points,
			Rebounds:  p.Rebounds,
			Assists:   p.Assists,
			Steals:    p.Steals,
			Blocks:    p.Blocks,
			Turnovers: p.Turnovers,
			FGM:       p.FGM,
			FGA:       p.FGA,
			FG3M:      p.FG3M,
			FG3A:      p.FG3A,
			FTM:       p.FTM,
			FTA:       p.FTA,
		})
	}
	return out
}

func tagToDTO(v tag.Tag) tagDTO {
	out := tagDTO{
		ID:          v.ID,
		Name:        v.Name,
		Category:    string(v.Category),
		Subcategory: v.Subcategory,
		Description: v.Description,
		Triggers:    make([]triggerDTO, 0, len(v.Triggers)),
		Suggestions: append([]string{}, v.Suggestions...),
	}
	for _, trigger := range v.Triggers {
		out.Triggers = append(out.Triggers, triggerDTO{Kind: string(trigger.Kind), Value: trigger.Value})
	}
	return out
}

func playToDTO(v play.Play) playDTO {
	out := playDTO{
		ID:          v.ID,
		GameID:      v.GameExternalID,
		Quarter:     v.Quarter,
		GameTime:    v.GameTime,
		Description: v.Description,
		CreatedBy:   v.CreatedByID,
		Tags:        make([]playTagDTO, 0, len(v.Tags)),
		CreatedAt:   formatTime(v.CreatedAt),
		UpdatedAt:   formatTime(v.UpdatedAt),
	}
	for _, t := range v.Tags {
		out.Tags = append(out.Tags, playTagToDTO(t))
	}
	return out
}

func playsToDTO(items []play.Play) []playDTO {
	out := make([]playDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playToDTO(item))
	}
	return out
}

func playTagToDTO(v play.PlayTag) playTagDTO {
	out := playTagDTO{
		ID:        v.ID,
		TagID:     v.TagID,
		PlayerID:  v.PlayerExternalID,
		TeamID:    v.TeamExternalID,
		Position:  v.Position,
		CreatedAt: formatTime(v.CreatedAt),
	}
	if !v.Context.IsZero() {
		out.Context = &playContextDTO{
			Action:     v.Context.Action,
			Outcome:    string(v.Context.Outcome),
			ShotZone:   string(v.Context.ShotZone),
			DefenderID: v.Context.DefenderExternalID,
			Notes:      v.Context.Notes,
		}
	}
	return out
}

func actionCountsToDTO(items []usecase.ActionCount) []actionCountDTO {
	out := make([]actionCountDTO, 0, len(items))
	for _, item := range items {
		out = append(out, actionCountDTO{
			Action:     item.Action,
			Category:   item.Category,
			Count:      item.Count,
			Percentage: item.Percentage,
		})
	}
	return out
}

func suggestionsToDTO(items []usecase.TagSuggestion) []tagSuggestionDTO {
	out := make([]tagSuggestionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, tagSuggestionDTO{TagName: item.TagName, Count: item.Count, Confidence: item.Confidence})
	}
	return out
}

func quickActionsToDTO(items []taxonomy.QuickAction) []quickActionDTO {
	out := make([]quickActionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, quickActionDTO{
			Name:        item.Name,
			Category:    string(item.Category),
			Subcategory: item.Subcategory,
			Shortcut:    item.Shortcut,
			Description: item.Description,
		})
	}
	return out
}

func decisionQualityToDTO(v usecase.DecisionQuality) decisionQualityDTO {
	out := decisionQualityDTO{
		PlayerID:     v.PlayerExternalID,
		Grade:        v.Grade,
		AverageScore: v.AverageScore,
		Sequences:    v.Sequences,
		Decisions:    make([]decisionDTO, 0, len(v.Decisions)),
		LabelCounts:  make(map[string]int, len(v.LabelCounts)),
	}
	for _, d := range v.Decisions {
		out.Decisions = append(out.Decisions, decisionDTO{
			PlayID: d.PlayID,
			GameID: d.GameExternalID,
			From:   d.From,
			To:     d.To,
			Label:  string(d.Label),
			Score:  d.Score,
		})
	}
	for label, count := range v.LabelCounts {
		out.LabelCounts[string(label)] = count
	}
	return out
}

func gameContextToDTO(v usecase.GameContext) gameContextDTO {
	return gameContextDTO{
		Game:           gameToDTO(v.Game),
		HomeTeam:       teamToDTO(v.HomeTeam),
		AwayTeam:       teamToDTO(v.AwayTeam),
		PlayCount:      v.PlayCount,
		LatestQuarter:  v.LatestQuarter,
		RecentPlays:    playsToDTO(v.RecentPlays),
		HomeTopActions: actionCountsToDTO(v.HomeTopActions),
		AwayTopActions: actionCountsToDTO(v.AwayTopActions),
	}
}

func scoutingReportToDTO(v usecase.ScoutingReport) scoutingReportDTO {
	return scoutingReportDTO{
		Player:          playerToDTO(v.Player),
		SampleSize:      v.SampleSize,
		Tendencies:      actionCountsToDTO(v.Tendencies),
		ShotZones:       nonNilCounts(v.ShotZones),
		Outcomes:        nonNilCounts(v.Outcomes),
		Recommendations: append([]string{}, v.Recommendations...),
		DecisionGrade:   v.DecisionGrade,
		ThreatLevel:     string(v.ThreatLevel),
	}
}

func gameAnalysisToDTO(v usecase.GameAnalysis) gameAnalysisDTO {
	return gameAnalysisDTO{
		GameID:          v.GameExternalID,
		Source:          v.Source,
		Summary:         v.Summary,
		KeyFactors:      append([]string{}, v.KeyFactors...),
		PlayerOfTheGame: v.PlayerOfTheGame,
	}
}

func syncSummaryToDTO(v syncrun.Summary) syncSummaryDTO {
	return syncSummaryDTO{
		Entity:        string(v.Entity),
		Status:        string(v.Status()),
		Created:       v.Created,
		Updated:       v.Updated,
		Skipped:       v.Skipped,
		Errors:        v.Errors,
		ErrorMessages: v.ErrorMessages,
		SkipReason:    v.SkipReason,
		StartedAt:     formatTime(v.StartedAt),
		FinishedAt:    formatTime(v.FinishedAt),
		DurationMS:    v.Duration().Milliseconds(),
	}
}

func syncRunToDTO(v syncrun.Run) syncRunDTO {
	return syncRunDTO{ID: v.ID, Status: string(v.Status), Summary: syncSummaryToDTO(v.Summary)}
}

func nonNilCounts(in map[string]int) map[string]int {
	if in == nil {
		return map[string]int{}
	}
	return in
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
