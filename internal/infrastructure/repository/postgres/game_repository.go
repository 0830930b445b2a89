package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/courtvision/court-vision/internal/domain/game"
	"github.com/courtvision/court-vision/internal/domain/syncrun"
	qb "github.com/courtvision/court-vision/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) List(ctx context.Context, filter game.ListFilter) ([]game.Game, error) {
	builder := qb.Select(gameColumns...).From("games").
		OrderBy("game_date DESC", "external_id").
		Limit(filter.Limit)
	if filter.Day != "" {
		from, to, err := game.DayBounds(filter.Day)
		if err != nil {
			return nil, err
		}
		builder.Where(qb.Gte("game_date", from), qb.Expr("game_date < ?", to))
	}
	if filter.Status != "" {
		builder.Where(qb.Eq("status", string(filter.Status)))
	}
	if filter.TeamExternalID != "" {
		builder.Where(qb.Expr("(home_team_external_id = ? OR away_team_external_id = ?)", filter.TeamExternalID, filter.TeamExternalID))
	}

	return r.selectGames(ctx, builder, "list games")
}

func (r *GameRepository) ListBetween(ctx context.Context, from, to time.Time) ([]game.Game, error) {
	builder := qb.Select(gameColumns...).From("games").
		Where(qb.Gte("game_date", from.UTC()), qb.Expr("game_date < ?", to.UTC())).
		OrderBy("game_date", "external_id")
	return r.selectGames(ctx, builder, "list games between")
}

func (r *GameRepository) GetByExternalID(ctx context.Context, externalID string) (game.Game, bool, error) {
	query, args, err := qb.Select(gameColumns...).From("games").
		Where(qb.Eq("external_id", externalID)).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build get game query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game %s: %w", externalID, err)
	}
	return gameFromRow(row), true, nil
}

func (r *GameRepository) Upsert(ctx context.Context, g game.Game) (syncrun.Outcome, error) {
	builder, err := qb.UpsertModel("games", gameToUpsert(g), []string{"external_id"})
	if err != nil {
		return "", fmt.Errorf("prepare game upsert: %w", err)
	}

	outcome, err := upsertOutcome(ctx, r.db, builder, "updated_at = NOW()", "last_synced_at = NOW()")
	if err != nil {
		return "", fmt.Errorf("upsert game %s: %w", g.ExternalID, err)
	}
	if outcome == syncrun.OutcomeUnchanged {
		if err := r.touchSynced(ctx, g.ExternalID); err != nil {
			return "", err
		}
	}
	return outcome, nil
}

// touchSynced records a sync that found nothing to change.
func (r *GameRepository) touchSynced(ctx context.Context, externalID string) error {
	query, args, err := gameTouchSyncedQuery(externalID).ToSQL()
	if err != nil {
		return fmt.Errorf("build touch game query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("touch game %s: %w", externalID, err)
	}
	return nil
}

func gameTouchSyncedQuery(externalID string) *qb.UpdateBuilder {
	return qb.Update("games").
		SetExpr("last_synced_at", "NOW()").
		Where(qb.Eq("external_id", externalID))
}

func (r *GameRepository) selectGames(ctx context.Context, builder *qb.SelectBuilder, op string) ([]game.Game, error) {
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}
	return out, nil
}
