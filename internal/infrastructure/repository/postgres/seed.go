package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/courtvision/court-vision/internal/domain/taxonomy"
)

// BootstrapSeed inserts the built-in tag library. Existing tags, including
// ones edited by users, are left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) (int, error) {
	tables := taxonomy.Default()
	if err := tables.Validate(); err != nil {
		return 0, fmt.Errorf("validate taxonomy: %w", err)
	}

	inserted, err := NewTagRepository(db).Seed(ctx, tables.Tags())
	if err != nil {
		return 0, fmt.Errorf("seed tags: %w", err)
	}
	return inserted, nil
}
