package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/courtvision/court-vision/internal/domain/tag"
	qb "github.com/courtvision/court-vision/internal/platform/querybuilder"
)

type TagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) List(ctx context.Context, category tag.Category) ([]tag.Tag, error) {
	builder := qb.Select(tagColumns...).From("tags").OrderBy("category", "name")
	if category != "" {
		builder.Where(qb.Eq("category", string(category)))
	}
	return r.selectTags(ctx, builder, "list tags")
}

func (r *TagRepository) GetByID(ctx context.Context, id string) (tag.Tag, bool, error) {
	return r.getOne(ctx, qb.Eq("id", id))
}

func (r *TagRepository) GetByName(ctx context.Context, name string) (tag.Tag, bool, error) {
	return r.getOne(ctx, qb.Expr("LOWER(name) = LOWER(?)", name))
}

func (r *TagRepository) GetByIDs(ctx context.Context, ids []string) (map[string]tag.Tag, error) {
	out := make(map[string]tag.Tag, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	tags, err := r.selectTags(ctx, qb.Select(tagColumns...).From("tags").Where(qb.In("id", toAnySlice(ids))), "get tags by ids")
	if err != nil {
		return nil, err
	}
	for _, t := range tags {
		out[t.ID] = t
	}
	return out, nil
}

func (r *TagRepository) Create(ctx context.Context, t tag.Tag) error {
	builder, err := tagInsert(t)
	if err != nil {
		return err
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build create tag query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create tag %s: %w", t.Name, tag.ErrDuplicate)
		}
		return fmt.Errorf("create tag %s: %w", t.Name, err)
	}
	return nil
}

func (r *TagRepository) Seed(ctx context.Context, tags []tag.Tag) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx for tag seed: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	inserted := 0
	for _, t := range tags {
		builder, err := tagInsert(t)
		if err != nil {
			return 0, err
		}
		query, args, err := builder.OnConflictDoNothing().ToSQL()
		if err != nil {
			return 0, fmt.Errorf("build seed tag %s query: %w", t.ID, err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("seed tag %s: %w", t.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tag seed tx: %w", err)
	}
	return inserted, nil
}

func tagInsert(t tag.Tag) (*qb.InsertBuilder, error) {
	triggers, err := encodeTriggers(t.Triggers)
	if err != nil {
		return nil, fmt.Errorf("encode triggers for %s: %w", t.ID, err)
	}
	suggestions := pq.StringArray(t.Suggestions)
	if suggestions == nil {
		suggestions = pq.StringArray{}
	}
	return qb.InsertInto("tags").
		Columns("id", "name", "category", "subcategory", "description", "triggers", "suggestions").
		Values(t.ID, t.Name, string(t.Category), t.Subcategory, t.Description, triggers, suggestions), nil
}

func (r *TagRepository) getOne(ctx context.Context, cond qb.Condition) (tag.Tag, bool, error) {
	tags, err := r.selectTags(ctx, qb.Select(tagColumns...).From("tags").Where(cond).Limit(1), "get tag")
	if err != nil {
		return tag.Tag{}, false, err
	}
	if len(tags) == 0 {
		return tag.Tag{}, false, nil
	}
	return tags[0], true, nil
}

func (r *TagRepository) selectTags(ctx context.Context, builder *qb.SelectBuilder, op string) ([]tag.Tag, error) {
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []tagTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]tag.Tag, 0, len(rows))
	for _, row := range rows {
		t, err := tagFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("decode tag %s: %w", row.ID, err)
		}
		out = append(out, t)
	}
	return out, nil
}
