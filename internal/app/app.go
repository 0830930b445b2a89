package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/courtvision/court-vision/external/balldontlie"
	"github.com/courtvision/court-vision/external/espn"
	"github.com/courtvision/court-vision/external/openai"
	"github.com/courtvision/court-vision/internal/config"
	"github.com/courtvision/court-vision/internal/domain/taxonomy"
	"github.com/courtvision/court-vision/internal/infrastructure/synclog"
	"github.com/courtvision/court-vision/internal/interfaces/httpapi"
	basecache "github.com/courtvision/court-vision/internal/platform/cache"
	idgen "github.com/courtvision/court-vision/internal/platform/id"
	"github.com/courtvision/court-vision/internal/platform/logging"
	"github.com/courtvision/court-vision/internal/usecase"
)

// Services are the usecases shared by the API server and the sync CLI.
type Services struct {
	Teams    *usecase.TeamService
	Players  *usecase.PlayerService
	Games    *usecase.GameService
	Tags     *usecase.TagService
	Plays    *usecase.PlayService
	Analyze  *usecase.AnalyticsService
	Analysis *usecase.GameAnalysisService
	Sync     *usecase.SyncService
}

type App struct {
	Services Services

	cfg     config.Config
	logger  *logging.Logger
	closers []func() error
}

// New wires storage, providers and usecases for cfg. Close releases the
// database pool when postgres storage is selected.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	a := &App{cfg: cfg, logger: logger}

	repos, err := a.buildRepositories(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.CacheEnabled {
		repos = repos.withCache(basecache.NewStore(cfg.CacheTTL))
	}

	tables := taxonomy.Default()
	if err := tables.Validate(); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("validate taxonomy: %w", err)
	}

	teamSvc := usecase.NewTeamService(repos.teams, repos.players)
	a.Services = Services{
		Teams:   teamSvc,
		Players: usecase.NewPlayerService(repos.players),
		Games:   usecase.NewGameService(repos.games, teamSvc, repos.stats),
		Tags:    usecase.NewTagService(repos.tags),
		Plays: usecase.NewPlayService(
			repos.plays,
			repos.games,
			repos.tags,
			repos.players,
			repos.teams,
			repos.users,
			idgen.NewUUIDGenerator(),
		),
		Analyze: usecase.NewAnalyticsService(repos.plays, repos.games, repos.teams, repos.players, repos.tags, tables),
		Analysis: usecase.NewGameAnalysisService(
			repos.games,
			repos.teams,
			repos.players,
			repos.stats,
			a.completionProvider(),
			usecase.GameAnalysisConfig{
				Enabled:           strings.TrimSpace(cfg.OpenAIAPIKey) != "",
				GlobalCooldown:    cfg.AIGlobalCooldown,
				RateLimitCooldown: cfg.AIRateLimitCooldown,
			},
			logger,
		),
		Sync: usecase.NewSyncService(
			espn.NewClient(espn.ClientConfig{
				BaseURL:        cfg.ESPNBaseURL,
				Timeout:        cfg.ESPNTimeout,
				MaxRetries:     cfg.ProviderMaxRetries,
				RequestDelay:   cfg.SyncRequestDelay,
				Logger:         logger,
				CircuitBreaker: cfg.ProviderCircuit,
			}),
			balldontlie.NewClient(balldontlie.ClientConfig{
				BaseURL:        cfg.BallDontLieBaseURL,
				APIKey:         cfg.BallDontLieAPIKey,
				Timeout:        cfg.BallDontLieTimeout,
				MaxRetries:     cfg.ProviderMaxRetries,
				RequestDelay:   cfg.SyncRequestDelay,
				Logger:         logger,
				CircuitBreaker: cfg.ProviderCircuit,
			}),
			repos.teams,
			repos.players,
			repos.games,
			repos.stats,
			repos.runs,
			idgen.NewUUIDGenerator(),
			a.syncLogWriter(),
			usecase.SyncConfig{
				OffseasonMonths: cfg.SyncOffseasonMonths,
				Season:          cfg.SyncSeason,
				Workers:         cfg.SyncWorkers,
			},
			logger,
		),
	}

	return a, nil
}

func (a *App) buildRepositories(ctx context.Context) (repositories, error) {
	switch a.cfg.StorageDriver {
	case config.StorageMemory:
		a.logger.Info("using in-memory storage")
		return newMemoryRepositories(time.Now()), nil
	case config.StoragePostgres:
		db, err := openPostgres(ctx, a.cfg.DBURL, a.cfg.ServiceName, a.logger)
		if err != nil {
			return repositories{}, err
		}
		a.closers = append(a.closers, db.Close)

		inserted, err := bootstrapPostgres(ctx, db)
		if err != nil {
			_ = a.Close()
			return repositories{}, fmt.Errorf("bootstrap tag library: %w", err)
		}
		if inserted > 0 {
			a.logger.Info("tag library seeded", "inserted", inserted)
		}
		return newPostgresRepositories(db), nil
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", a.cfg.StorageDriver)
	}
}

// completionProvider is nil without an API key; the analysis service then
// always answers with the templated summary.
func (a *App) completionProvider() usecase.CompletionProvider {
	if strings.TrimSpace(a.cfg.OpenAIAPIKey) == "" {
		a.logger.Info("ai analysis disabled", "reason", "OPENAI_API_KEY empty")
		return nil
	}

	return openai.NewClient(openai.ClientConfig{
		BaseURL:        a.cfg.OpenAIBaseURL,
		APIKey:         a.cfg.OpenAIAPIKey,
		Model:          a.cfg.OpenAIModel,
		Timeout:        a.cfg.OpenAITimeout,
		Logger:         a.logger,
		CircuitBreaker: a.cfg.ProviderCircuit,
	})
}

// syncLogWriter is nil when SYNC_LOG_DIR is empty; runs are then only
// stored and printed.
func (a *App) syncLogWriter() usecase.SyncLogWriter {
	if strings.TrimSpace(a.cfg.SyncLogDir) == "" {
		return nil
	}
	return synclog.NewWriter(a.cfg.SyncLogDir)
}

// NewHTTPServer builds the API server around the wired services.
func (a *App) NewHTTPServer() (*http.Server, error) {
	if strings.TrimSpace(a.cfg.HTTPAddr) == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(
		a.Services.Teams,
		a.Services.Players,
		a.Services.Games,
		a.Services.Tags,
		a.Services.Plays,
		a.Services.Analyze,
		a.Services.Analysis,
		a.Services.Sync,
		a.logger,
	)
	router := httpapi.NewRouter(handler, a.logger, httpapi.RouterConfig{
		SwaggerEnabled:     a.cfg.SwaggerEnabled,
		CORSAllowedOrigins: a.cfg.CORSAllowedOrigins,
		InternalJobToken:   a.cfg.InternalJobToken,
	})

	return &http.Server{
		Addr:         a.cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
	}, nil
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
