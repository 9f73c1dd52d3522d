package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/difaziotennis-rgb/Ladder/internal/config"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/ranking"
	"github.com/difaziotennis-rgb/Ladder/internal/interfaces/httpapi"
	idgen "github.com/difaziotennis-rgb/Ladder/internal/platform/id"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/logging"
	"github.com/difaziotennis-rgb/Ladder/internal/usecase"
)

// NewHTTPServer wires storage, services and the router. The returned
// cleanup closes the storage backend and must run after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	policy, err := ranking.PolicyByName(cfg.RankingPolicy)
	if err != nil {
		return nil, nil, err
	}

	repos, cleanup, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ids := idgen.NewUUIDGenerator()
	hasher := usecase.NewBcryptHasher(0)

	clubSvc := usecase.NewClubService(repos.clubs, ids, hasher, logger.Named("usecase.club"))
	playerSvc := usecase.NewPlayerService(repos.clubs, repos.players, ids, logger.Named("usecase.player"))
	matchSvc := usecase.NewMatchService(repos.clubs, repos.players, repos.matches, policy, ids, logger.Named("usecase.match"))
	ladderSvc := usecase.NewLadderService(repos.clubs, repos.players, repos.matches)
	rankingSvc := usecase.NewRankingService(repos.clubs, repos.players, repos.matches, cfg.RankingRecalcWorkers, logger.Named("usecase.ranking"))
	authSvc := usecase.NewAuthService(repos.auth, repos.clubs, hasher, cfg.SessionTTL, logger.Named("usecase.auth"))

	handler := httpapi.NewHandler(
		clubSvc,
		playerSvc,
		matchSvc,
		ladderSvc,
		rankingSvc,
		authSvc,
		httpapi.CookieConfig{Secure: cfg.CookieSecure, TTL: cfg.SessionTTL},
		logger.Named("httpapi"),
	)
	router := httpapi.NewRouter(handler, authSvc, logger.Named("http"), cfg.CORSAllowedOrigins)

	logger.Info("ladder service configured",
		"storage", cfg.StorageDriver,
		"ranking_policy", policy.Name(),
		"cache_enabled", cfg.CacheEnabled,
	)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, cleanup, nil
}
