package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/courtvision/court-vision/internal/domain/syncrun"
	"github.com/courtvision/court-vision/internal/domain/team"
	qb "github.com/courtvision/court-vision/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		OrderBy("conference", "division", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) GetByExternalID(ctx context.Context, externalID string) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Eq("external_id", externalID))
}

func (r *TeamRepository) GetByAbbreviation(ctx context.Context, abbreviation string) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Eq("abbreviation", team.NormalizeAbbreviation(abbreviation)))
}

func (r *TeamRepository) getOne(ctx context.Context, cond qb.Condition) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}
	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, t team.Team) (syncrun.Outcome, error) {
	t.Abbreviation = team.NormalizeAbbreviation(t.Abbreviation)
	builder, err := qb.UpsertModel("teams", teamToUpsert(t), []string{"external_id"})
	if err != nil {
		return "", fmt.Errorf("prepare team upsert: %w", err)
	}

	outcome, err := upsertOutcome(ctx, r.db, builder, "updated_at = NOW()")
	if err != nil {
		return "", fmt.Errorf("upsert team %s: %w", t.ExternalID, err)
	}
	return outcome, nil
}
