package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/courtvision/court-vision/internal/domain/player"
	"github.com/courtvision/court-vision/internal/domain/syncrun"
	qb "github.com/courtvision/court-vision/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	return r.selectPlayers(ctx, playerListQuery(filter), "list players")
}

// playerListQuery matches the search term literally against the full name.
func playerListQuery(filter player.ListFilter) *qb.SelectBuilder {
	builder := qb.Select(playerColumns...).From("players").
		OrderBy("last_name", "first_name", "external_id").
		Limit(filter.Limit)
	if filter.TeamExternalID != "" {
		builder.Where(qb.Eq("team_external_id", filter.TeamExternalID))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		builder.Where(qb.ILike("(first_name || ' ' || last_name)", qb.ContainsPattern(search)))
	}
	return builder
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamExternalID string) ([]player.Player, error) {
	builder := qb.Select(playerColumns...).From("players").
		Where(qb.Eq("team_external_id", teamExternalID)).
		OrderBy("last_name", "first_name")
	return r.selectPlayers(ctx, builder, "list players by team")
}

func (r *PlayerRepository) GetByExternalID(ctx context.Context, externalID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns...).From("players").
		Where(qb.Eq("external_id", externalID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player %s: %w", externalID, err)
	}

	p, err := playerFromRow(row)
	if err != nil {
		return player.Player{}, false, fmt.Errorf("decode player %s: %w", externalID, err)
	}
	return p, true, nil
}

func (r *PlayerRepository) GetByExternalIDs(ctx context.Context, externalIDs []string) (map[string]player.Player, error) {
	out := make(map[string]player.Player, len(externalIDs))
	if len(externalIDs) == 0 {
		return out, nil
	}

	builder := qb.Select(playerColumns...).From("players").
		Where(qb.In("external_id", toAnySlice(externalIDs)))
	players, err := r.selectPlayers(ctx, builder, "get players by ids")
	if err != nil {
		return nil, err
	}
	for _, p := range players {
		out[p.ExternalID] = p
	}
	return out, nil
}

func (r *PlayerRepository) ListExternalIDs(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("external_id").From("players").OrderBy("external_id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player ids query: %w", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list player ids: %w", err)
	}
	return ids, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, p player.Player) (syncrun.Outcome, error) {
	builder, err := qb.UpsertModel("players", playerToUpsert(p), []string{"external_id"})
	if err != nil {
		return "", fmt.Errorf("prepare player upsert: %w", err)
	}

	outcome, err := upsertOutcome(ctx, r.db, builder, "updated_at = NOW()")
	if err != nil {
		return "", fmt.Errorf("upsert player %s: %w", p.ExternalID, err)
	}
	return outcome, nil
}

func (r *PlayerRepository) UpdateSeasonAverages(ctx context.Context, externalID string, averages player.SeasonAverages) (syncrun.Outcome, error) {
	doc, err := marshalJSONB(seasonAveragesDocument(averages))
	if err != nil {
		return "", fmt.Errorf("encode season averages for %s: %w", externalID, err)
	}

	query, args, err := qb.Update("players").
		SetExpr("season_averages", "?::jsonb", doc).
		SetExpr("has_statistics", "TRUE").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("external_id", externalID),
			qb.Expr("(season_averages IS DISTINCT FROM ?::jsonb OR has_statistics = FALSE)", doc),
		).
		Returning("external_id").
		ToSQL()
	if err != nil {
		return "", fmt.Errorf("build update season averages query: %w", err)
	}

	var updated string
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if isNotFound(err) {
			return syncrun.OutcomeUnchanged, nil
		}
		return "", fmt.Errorf("update season averages for %s: %w", externalID, err)
	}
	return syncrun.OutcomeUpdated, nil
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, builder *qb.SelectBuilder, op string) ([]player.Player, error) {
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		p, err := playerFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("decode player %s: %w", row.ExternalID, err)
		}
		out = append(out, p)
	}
	return out, nil
}
