package app

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/courtvision/court-vision/internal/domain/game"
	"github.com/courtvision/court-vision/internal/domain/play"
	"github.com/courtvision/court-vision/internal/domain/player"
	"github.com/courtvision/court-vision/internal/domain/stats"
	"github.com/courtvision/court-vision/internal/domain/syncrun"
	"github.com/courtvision/court-vision/internal/domain/tag"
	"github.com/courtvision/court-vision/internal/domain/team"
	"github.com/courtvision/court-vision/internal/domain/user"
	"github.com/courtvision/court-vision/internal/infrastructure/repository/cache"
	"github.com/courtvision/court-vision/internal/infrastructure/repository/memory"
	"github.com/courtvision/court-vision/internal/infrastructure/repository/postgres"
	basecache "github.com/courtvision/court-vision/internal/platform/cache"
)

type repositories struct {
	teams   team.Repository
	players player.Repository
	games   game.Repository
	tags    tag.Repository
	plays   play.Repository
	stats   stats.Repository
	runs    syncrun.Repository
	users   user.Repository
}

func newMemoryRepositories(now time.Time) repositories {
	tags := memory.NewTagRepository(memory.SeedTags())
	return repositories{
		teams:   memory.NewTeamRepository(memory.SeedTeams()),
		players: memory.NewPlayerRepository(memory.SeedPlayers()),
		games:   memory.NewGameRepository(memory.SeedGames(now)),
		tags:    tags,
		plays:   memory.NewPlayRepository(tags),
		stats:   memory.NewStatsRepository(),
		runs:    memory.NewSyncRunRepository(),
		users:   memory.NewUserRepository(memory.SeedUsers()),
	}
}

func newPostgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		teams:   postgres.NewTeamRepository(db),
		players: postgres.NewPlayerRepository(db),
		games:   postgres.NewGameRepository(db),
		tags:    postgres.NewTagRepository(db),
		plays:   postgres.NewPlayRepository(db),
		stats:   postgres.NewStatsRepository(db),
		runs:    postgres.NewSyncRunRepository(db),
		users:   postgres.NewUserRepository(db),
	}
}

// withCache fronts the read-mostly catalogs with the shared store.
func (r repositories) withCache(store *basecache.Store) repositories {
	r.teams = cache.NewTeamRepository(r.teams, store)
	r.tags = cache.NewTagRepository(r.tags, store)
	return r
}

func bootstrapPostgres(ctx context.Context, db *sqlx.DB) (int, error) {
	return postgres.BootstrapSeed(ctx, db)
}
