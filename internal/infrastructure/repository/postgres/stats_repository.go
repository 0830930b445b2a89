package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/courtvision/court-vision/internal/domain/stats"
	"github.com/courtvision/court-vision/internal/domain/syncrun"
	qb "github.com/courtvision/court-vision/internal/platform/querybuilder"
)

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) UpsertPlayerGameStat(ctx context.Context, s stats.PlayerGameStat) (syncrun.Outcome, error) {
	builder, err := qb.UpsertModel("player_game_stats", playerGameStatToModel(s), playerGameStatKey)
	if err != nil {
		return "", fmt.Errorf("prepare player game stat upsert: %w", err)
	}
	outcome, err := upsertOutcome(ctx, r.db, builder, "updated_at = NOW()")
	if err != nil {
		return "", fmt.Errorf("upsert player game stat %s/%s: %w", s.GameExternalID, s.PlayerExternalID, err)
	}
	return outcome, nil
}

func (r *StatsRepository) UpsertTeamGameStat(ctx context.Context, s stats.TeamGameStat) (syncrun.Outcome, error) {
	builder, err := qb.UpsertModel("team_game_stats", teamGameStatToModel(s), teamGameStatKey)
	if err != nil {
		return "", fmt.Errorf("prepare team game stat upsert: %w", err)
	}
	outcome, err := upsertOutcome(ctx, r.db, builder, "updated_at = NOW()")
	if err != nil {
		return "", fmt.Errorf("upsert team game stat %s/%s: %w", s.GameExternalID, s.TeamExternalID, err)
	}
	return outcome, nil
}

func (r *StatsRepository) ListPlayerStatsByGame(ctx context.Context, gameExternalID string) ([]stats.PlayerGameStat, error) {
	query, args, err := qb.Select(qb.Columns(playerGameStatModel{})...).
		From("player_game_stats").
		Where(qb.Eq("game_external_id", gameExternalID)).
		OrderBy("team_external_id", "points DESC", "player_external_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player game stats query: %w", err)
	}

	var rows []playerGameStatModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player game stats: %w", err)
	}
	out := make([]stats.PlayerGameStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.PlayerGameStat(row))
	}
	return out, nil
}

func (r *StatsRepository) ListTeamStatsByGame(ctx context.Context, gameExternalID string) ([]stats.TeamGameStat, error) {
	query, args, err := qb.Select(qb.Columns(teamGameStatModel{})...).
		From("team_game_stats").
		Where(qb.Eq("game_external_id", gameExternalID)).
		OrderBy("team_external_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team game stats query: %w", err)
	}

	var rows []teamGameStatModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team game stats: %w", err)
	}
	out := make([]stats.TeamGameStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.TeamGameStat(row))
	}
	return out, nil
}
