package app

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-career/internal/config"
	"github.com/riskibarqy/football-career/internal/domain/club"
	"github.com/riskibarqy/football-career/internal/domain/player"
	"github.com/riskibarqy/football-career/internal/domain/transfer"
	"github.com/riskibarqy/football-career/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-career/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-career/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-career/internal/infrastructure/repository/rediscache"
	"github.com/riskibarqy/football-career/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/football-career/internal/platform/id"
	"github.com/riskibarqy/football-career/internal/platform/logging"
	"github.com/riskibarqy/football-career/internal/platform/random"
	"github.com/riskibarqy/football-career/internal/platform/resilience"
	"github.com/riskibarqy/football-career/internal/usecase"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// closers releases backends in reverse order of acquisition.
type closers []io.Closer

func (c closers) Close() error {
	var errs error
	for i := len(c) - 1; i >= 0; i-- {
		errs = errors.CombineErrors(errs, c[i].Close())
	}
	return errs
}

// NewHTTPServer wires repositories, services and the router. The returned
// closer releases the player pool backend.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, io.Closer, error) {
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, nil, errors.New("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	clubs, players, closer, err := newPoolRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	careers := memory.NewCareerRepository()
	locks := &resilience.KeyedMutex{}
	rules := transfer.DefaultRules()
	rng := random.NewSeeded(cfg.RandomSeed)

	transferSvc := usecase.NewTransferService(careers, clubs, players, locks, rules, rng, idgen.NewUUIDGenerator("off-"), logger)
	handler := httpapi.NewHandler(
		usecase.NewCareerService(careers, clubs, players, locks, rules, idgen.NewUUIDGenerator("car-"), logger),
		usecase.NewClubService(clubs),
		usecase.NewScoutService(careers, players, locks, rules),
		transferSvc,
		usecase.NewMatchdayService(transferSvc, cfg.MatchdayWorkers, logger),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return server, closer, nil
}

func newPoolRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (club.Repository, player.Repository, io.Closer, error) {
	if cfg.DataSource != config.DataSourcePostgres {
		logger.Info("player pool source", "source", config.DataSourceMemory)
		return memory.NewClubRepository(memory.SeedClubs()), memory.NewPlayerRepository(memory.SeedPlayers()), nopCloser{}, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	var (
		clubs    club.Repository   = postgres.NewClubRepository(db)
		players  player.Repository = postgres.NewPlayerRepository(db)
		backends                   = closers{db}
	)
	if cfg.RedisEnabled {
		rdb, err := openRedis(ctx, cfg)
		if err != nil {
			_ = backends.Close()
			return nil, nil, nil, err
		}
		backends = append(backends, rdb)

		store := rediscache.NewStore(rdb, cfg.RedisKeyPrefix, cfg.RedisCacheTTL, rediscache.DefaultBreakerSettings(), logger)
		clubs = rediscache.NewClubRepository(clubs, store)
		players = rediscache.NewPlayerRepository(players, store)
	}
	if cfg.CacheEnabled {
		clubs = cache.NewClubRepository(clubs, cfg.CacheTTL)
		players = cache.NewPlayerRepository(players, cfg.CacheTTL)
	}

	logger.Info("player pool source",
		"source", config.DataSourcePostgres,
		"db_name", dbNameFromURL(cfg.DBURL),
		"cache_enabled", cfg.CacheEnabled,
		"cache_ttl", cfg.CacheTTL.String(),
		"redis_enabled", cfg.RedisEnabled,
	)
	return clubs, players, backends, nil
}
