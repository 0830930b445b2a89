package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/courtvision/court-vision/internal/domain/syncrun"
	qb "github.com/courtvision/court-vision/internal/platform/querybuilder"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pqCode(err) == pqUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pqCode(err) == pqForeignKeyViolation
}

// upsertOutcome runs an OnlyIfChanged upsert. Postgres returns no row when
// the conflict update was skipped, and xmax = 0 only for fresh inserts.
func upsertOutcome(ctx context.Context, q sqlx.QueryerContext, b *qb.InsertBuilder, touch ...string) (syncrun.Outcome, error) {
	query, args, err := upsertSQL(b, touch...)
	if err != nil {
		return "", fmt.Errorf("build upsert query: %w", err)
	}

	var inserted bool
	if err := sqlx.GetContext(ctx, q, &inserted, query, args...); err != nil {
		if isNotFound(err) {
			return syncrun.OutcomeUnchanged, nil
		}
		return "", err
	}
	if inserted {
		return syncrun.OutcomeCreated, nil
	}
	return syncrun.OutcomeUpdated, nil
}

func upsertSQL(b *qb.InsertBuilder, touch ...string) (string, []any, error) {
	return b.
		OnConflictSet(touch...).
		Returning("(xmax = 0) AS inserted").
		ToSQL()
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func nullInt(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: v != 0}
}

func intFromNull(v sql.NullInt64) int {
	if !v.Valid {
		return 0
	}
	return int(v.Int64)
}

// marshalJSONB renders v as text so lib/pq sends it as jsonb, not bytea.
func marshalJSONB(v any) (string, error) {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func toAnySlice(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
