package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/courtvision/court-vision/internal/domain/play"
	qb "github.com/courtvision/court-vision/internal/platform/querybuilder"
)

const insertPlayTagQuery = `
INSERT INTO play_tags (id, play_id, tag_id, player_external_id, team_external_id, position, context, created_at)
VALUES (:id, :play_id, :tag_id, :player_external_id, :team_external_id, :position, CAST(:context AS JSONB), :created_at)`

type PlayRepository struct {
	db *sqlx.DB
}

func NewPlayRepository(db *sqlx.DB) *PlayRepository {
	return &PlayRepository{db: db}
}

func (r *PlayRepository) Create(ctx context.Context, p play.Play) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx create play: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertInto("plays").
		Columns("id", "game_external_id", "quarter", "game_time", "description", "created_by_id", "created_at", "updated_at").
		Values(p.ID, p.GameExternalID, p.Quarter, p.GameTime, p.Description, nullString(p.CreatedByID), p.CreatedAt, p.UpdatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build create play query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert play %s: %w", p.ID, mapPlayWriteError(err))
	}

	for i, t := range p.Tags {
		t.PlayID = p.ID
		t.Position = i
		if err := insertPlayTag(ctx, tx, t); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create play tx: %w", err)
	}
	return nil
}

func (r *PlayRepository) GetByID(ctx context.Context, id string) (play.Play, bool, error) {
	plays, err := r.selectPlays(ctx, qb.Select(playColumns...).From("plays p").Where(qb.Eq("p.id", id)).Limit(1), "get play")
	if err != nil {
		return play.Play{}, false, err
	}
	if len(plays) == 0 {
		return play.Play{}, false, nil
	}
	return plays[0], true, nil
}

func (r *PlayRepository) ListByGame(ctx context.Context, gameExternalID string) ([]play.Play, error) {
	return r.selectPlays(ctx, qb.Select(playColumns...).From("plays p").
		Where(qb.Eq("p.game_external_id", gameExternalID)).
		OrderBy("p.quarter", clockOrder, "p.created_at", "p.id"), "list plays by game")
}

func (r *PlayRepository) Update(ctx context.Context, p play.Play) error {
	query, args, err := qb.Update("plays").
		Set("quarter", p.Quarter).
		Set("game_time", p.GameTime).
		Set("description", p.Description).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update play query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update play %s: %w", p.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update play %s: %w", p.ID, play.ErrNotFound)
	}
	return nil
}

func (r *PlayRepository) AddTag(ctx context.Context, t play.PlayTag) (play.PlayTag, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return play.PlayTag{}, fmt.Errorf("begin tx add play tag: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Row lock serializes concurrent AddTag calls on the same play.
	var locked string
	if err := tx.GetContext(ctx, &locked, tx.Rebind(`SELECT id FROM plays WHERE id = ? FOR UPDATE`), t.PlayID); err != nil {
		if isNotFound(err) {
			return play.PlayTag{}, fmt.Errorf("add tag to play %s: %w", t.PlayID, play.ErrNotFound)
		}
		return play.PlayTag{}, fmt.Errorf("lock play %s: %w", t.PlayID, err)
	}

	if err := tx.GetContext(ctx, &t.Position,
		tx.Rebind(`SELECT COALESCE(MAX(position), -1) + 1 FROM play_tags WHERE play_id = ?`), t.PlayID); err != nil {
		return play.PlayTag{}, fmt.Errorf("next tag position for play %s: %w", t.PlayID, err)
	}

	if err := insertPlayTag(ctx, tx, t); err != nil {
		return play.PlayTag{}, err
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE plays SET updated_at = NOW() WHERE id = ?`), t.PlayID); err != nil {
		return play.PlayTag{}, fmt.Errorf("touch play %s: %w", t.PlayID, err)
	}

	if err := tx.Commit(); err != nil {
		return play.PlayTag{}, fmt.Errorf("commit add play tag tx: %w", err)
	}
	return t, nil
}

func (r *PlayRepository) ListActions(ctx context.Context, filter play.ActionFilter) ([]play.TaggedAction, error) {
	builder := qb.Select(
		"p.id AS play_id",
		"p.game_external_id",
		"p.quarter",
		"p.game_time",
		"p.created_at AS play_created_at",
		"pt.position",
		"pt.tag_id",
		"t.name AS tag_name",
		"t.category AS tag_category",
		"COALESCE(pt.player_external_id, '') AS player_external_id",
		"COALESCE(pt.team_external_id, '') AS team_external_id",
		"pt.context",
	).
		From("play_tags pt").
		Join("JOIN plays p ON p.id = pt.play_id").
		Join("JOIN tags t ON t.id = pt.tag_id").
		OrderBy("p.game_external_id", "p.quarter", clockOrder, "p.created_at", "p.id", "pt.position")

	if filter.PlayerExternalID != "" {
		builder.Where(qb.Eq("pt.player_external_id", filter.PlayerExternalID))
	}
	if filter.TeamExternalID != "" {
		builder.Where(qb.Eq("pt.team_external_id", filter.TeamExternalID))
	}
	if filter.GameExternalID != "" {
		builder.Where(qb.Eq("p.game_external_id", filter.GameExternalID))
	}
	if !filter.Since.IsZero() {
		builder.Where(qb.Gte("p.created_at", filter.Since))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tagged actions query: %w", err)
	}

	var rows []taggedActionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tagged actions: %w", err)
	}

	out := make([]play.TaggedAction, 0, len(rows))
	for _, row := range rows {
		action, err := taggedActionFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("decode tagged action %s/%d: %w", row.PlayID, row.Position, err)
		}
		out = append(out, action)
	}
	return out, nil
}

func (r *PlayRepository) selectPlays(ctx context.Context, builder *qb.SelectBuilder, op string) ([]play.Play, error) {
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []playTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(rows) == 0 {
		return []play.Play{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	tagsByPlay, err := r.loadTags(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]play.Play, 0, len(rows))
	for _, row := range rows {
		p := playFromRow(row)
		p.Tags = tagsByPlay[row.ID]
		if p.Tags == nil {
			p.Tags = []play.PlayTag{}
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PlayRepository) loadTags(ctx context.Context, playIDs []string) (map[string][]play.PlayTag, error) {
	query, args, err := qb.Select(playTagColumns...).From("play_tags").
		Where(qb.In("play_id", toAnySlice(playIDs))).
		OrderBy("play_id", "position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build load play tags query: %w", err)
	}

	var rows []playTagTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("load play tags: %w", err)
	}

	out := make(map[string][]play.PlayTag, len(playIDs))
	for _, row := range rows {
		t, err := playTagFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("decode play tag %s: %w", row.ID, err)
		}
		out[row.PlayID] = append(out[row.PlayID], t)
	}
	return out, nil
}

func insertPlayTag(ctx context.Context, tx *sqlx.Tx, t play.PlayTag) error {
	params, err := playTagInsertArgs(t)
	if err != nil {
		return fmt.Errorf("encode play tag %s: %w", t.ID, err)
	}
	query, args, err := sqlx.Named(insertPlayTagQuery, params)
	if err != nil {
		return fmt.Errorf("bind play tag %s: %w", t.ID, err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return fmt.Errorf("insert play tag %s: %w", t.ID, mapPlayWriteError(err))
	}
	return nil
}

func mapPlayWriteError(err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: %v", play.ErrUnknownReference, err)
	}
	return err
}
