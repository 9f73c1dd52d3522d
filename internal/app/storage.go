package app

import (
	"context"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/difaziotennis-rgb/Ladder/internal/config"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/auth"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/match"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	cacherepo "github.com/difaziotennis-rgb/Ladder/internal/infrastructure/repository/cache"
	"github.com/difaziotennis-rgb/Ladder/internal/infrastructure/repository/guard"
	"github.com/difaziotennis-rgb/Ladder/internal/infrastructure/repository/memory"
	"github.com/difaziotennis-rgb/Ladder/internal/infrastructure/repository/postgres"
	basecache "github.com/difaziotennis-rgb/Ladder/internal/platform/cache"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/logging"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/resilience"
)

type repositories struct {
	clubs   club.Repository
	players player.Repository
	matches match.Repository
	auth    auth.Repository
}

// openRepositories builds the configured storage backend, optionally
// fronted by the read cache. The returned func releases the backend.
func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	var (
		repos   repositories
		closeFn = func() error { return nil }
		err     error
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		repos, closeFn, err = openPostgres(ctx, cfg, logger)
	default:
		repos = openMemory(cfg, logger)
	}
	if err != nil {
		return repositories{}, nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.clubs = cacherepo.NewClubRepository(repos.clubs, store)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
		repos.matches = cacherepo.NewMatchRepository(repos.matches, store)
		logger.Info("read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	return repos, closeFn, nil
}

func openMemory(cfg config.Config, logger *logging.Logger) repositories {
	now := time.Now().UTC()
	store := memory.NewStore()
	clubs, players, matches := memory.SeedDemoClub(now)
	store.Seed(clubs, players, matches, memory.SeedSiteAdmin(cfg.SiteAdminUsername, cfg.SiteAdminPasswordHash, now))

	logger.Info("storage ready", "driver", config.StorageMemory, "seed_club", memory.ClubIDDemo)
	return repositories{
		clubs:   memory.NewClubRepository(store),
		players: memory.NewPlayerRepository(store),
		matches: memory.NewMatchRepository(store),
		auth:    memory.NewAuthRepository(store),
	}
}

func openPostgres(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	db, err := otelsqlx.Open("postgres", cfg.DBURL,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return repositories{}, nil, fmt.Errorf("ping postgres: %w", err)
	}

	authRepo := postgres.NewAuthRepository(db)
	if err := seedSiteAdmin(ctx, authRepo, cfg); err != nil {
		_ = db.Close()
		return repositories{}, nil, err
	}

	repos := repositories{
		clubs:   postgres.NewClubRepository(db),
		players: postgres.NewPlayerRepository(db),
		matches: postgres.NewMatchRepository(db),
		auth:    authRepo,
	}
	if cfg.DBCircuitBreaker.Enabled {
		repos = guardRepositories(repos, cfg.DBCircuitBreaker, logger)
	}

	logger.Info("storage ready", "driver", config.StoragePostgres, "db_name", dbNameFromURL(cfg.DBURL))
	return repos, db.Close, nil
}

// guardRepositories shares one breaker across all repositories since they
// sit on the same connection pool.
func guardRepositories(repos repositories, cfg resilience.CircuitBreakerConfig, logger *logging.Logger) repositories {
	breaker := resilience.NewCircuitBreaker(cfg, guard.IsStorageFailure)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("storage circuit breaker state changed", "from", string(from), "to", string(to))
	})

	return repositories{
		clubs:   guard.NewClubRepository(repos.clubs, breaker),
		players: guard.NewPlayerRepository(repos.players, breaker),
		matches: guard.NewMatchRepository(repos.matches, breaker),
		auth:    guard.NewAuthRepository(repos.auth, breaker),
	}
}

func seedSiteAdmin(ctx context.Context, repo *postgres.AuthRepository, cfg config.Config) error {
	for _, admin := range memory.SeedSiteAdmin(cfg.SiteAdminUsername, cfg.SiteAdminPasswordHash, time.Now().UTC()) {
		if err := repo.UpsertSiteAdmin(ctx, admin); err != nil {
			return fmt.Errorf("seed site admin: %w", err)
		}
	}
	return nil
}

