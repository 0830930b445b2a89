package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/courtvision/court-vision/internal/domain/syncrun"
	qb "github.com/courtvision/court-vision/internal/platform/querybuilder"
)

const maxRecentSyncRuns = 100

type syncRunTableModel struct {
	ID            string         `db:"id"`
	Entity        string         `db:"entity"`
	Status        string         `db:"status"`
	Created       int            `db:"created"`
	Updated       int            `db:"updated"`
	Skipped       int            `db:"skipped"`
	Errors        int            `db:"errors"`
	ErrorMessages pq.StringArray `db:"error_messages"`
	SkipReason    string         `db:"skip_reason"`
	StartedAt     time.Time      `db:"started_at"`
	FinishedAt    time.Time      `db:"finished_at"`
}

func syncRunToRow(run syncrun.Run) syncRunTableModel {
	messages := pq.StringArray(run.Summary.ErrorMessages)
	if messages == nil {
		messages = pq.StringArray{}
	}
	return syncRunTableModel{
		ID:            run.ID,
		Entity:        string(run.Summary.Entity),
		Status:        string(run.Status),
		Created:       run.Summary.Created,
		Updated:       run.Summary.Updated,
		Skipped:       run.Summary.Skipped,
		Errors:        run.Summary.Errors,
		ErrorMessages: messages,
		SkipReason:    run.Summary.SkipReason,
		StartedAt:     run.Summary.StartedAt,
		FinishedAt:    run.Summary.FinishedAt,
	}
}

func syncRunFromRow(row syncRunTableModel) syncrun.Run {
	return syncrun.Run{
		ID:     row.ID,
		Status: syncrun.Status(row.Status),
		Summary: syncrun.Summary{
			Entity:        syncrun.Entity(row.Entity),
			Created:       row.Created,
			Updated:       row.Updated,
			Skipped:       row.Skipped,
			Errors:        row.Errors,
			ErrorMessages: append([]string(nil), row.ErrorMessages...),
			SkipReason:    row.SkipReason,
			StartedAt:     row.StartedAt,
			FinishedAt:    row.FinishedAt,
		},
	}
}

type SyncRunRepository struct {
	db *sqlx.DB
}

func NewSyncRunRepository(db *sqlx.DB) *SyncRunRepository {
	return &SyncRunRepository{db: db}
}

func (r *SyncRunRepository) Create(ctx context.Context, run syncrun.Run) error {
	row := syncRunToRow(run)
	query, args, err := qb.InsertInto("sync_runs").
		Columns(qb.Columns(row)...).
		Values(row.ID, row.Entity, row.Status, row.Created, row.Updated, row.Skipped, row.Errors,
			row.ErrorMessages, row.SkipReason, row.StartedAt, row.FinishedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build create sync run query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create sync run %s: %w", run.ID, err)
	}
	return nil
}

func (r *SyncRunRepository) GetByID(ctx context.Context, id string) (syncrun.Run, bool, error) {
	query, args, err := qb.Select(qb.Columns(syncRunTableModel{})...).
		From("sync_runs").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return syncrun.Run{}, false, fmt.Errorf("build get sync run query: %w", err)
	}

	var row syncRunTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return syncrun.Run{}, false, nil
		}
		return syncrun.Run{}, false, fmt.Errorf("get sync run %s: %w", id, err)
	}
	return syncRunFromRow(row), true, nil
}

func (r *SyncRunRepository) ListRecent(ctx context.Context, limit int) ([]syncrun.Run, error) {
	if limit <= 0 || limit > maxRecentSyncRuns {
		limit = maxRecentSyncRuns
	}
	query, args, err := qb.Select(qb.Columns(syncRunTableModel{})...).
		From("sync_runs").
		OrderBy("started_at DESC", "id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list sync runs query: %w", err)
	}

	var rows []syncRunTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list sync runs: %w", err)
	}
	out := make([]syncrun.Run, 0, len(rows))
	for _, row := range rows {
		out = append(out, syncRunFromRow(row))
	}
	return out, nil
}
