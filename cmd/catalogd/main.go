// Command catalogd serves the product catalog over HTTP. It looks up
// products by validated barcode or by description, persisting to PostgreSQL
// when DATABASE_URL is set and falling back to a seeded in-memory store
// otherwise. Setting REDIS_URL puts a read-through cache in front of
// barcode lookups.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/rcardin/value-classes/modules/catalog"
	"github.com/rcardin/value-classes/pkg/config"
	"github.com/rcardin/value-classes/pkg/httpserver"
	"github.com/rcardin/value-classes/pkg/logger"
	"github.com/rcardin/value-classes/pkg/pg"
	"github.com/rcardin/value-classes/pkg/redis"
)

type appConfig struct {
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"json"`
	LogLevel  slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`

	// Optional backends; empty values select the in-memory store and no cache.
	DatabaseURL string        `env:"DATABASE_URL"`
	RedisURL    string        `env:"REDIS_URL"`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	HTTP httpserver.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithFormat(cfg.LogFormat),
		logger.WithLevel(cfg.LogLevel),
		logger.WithAttr(slog.String("service", "catalogd")),
	)

	ctx := context.Background()

	repo, err := buildRepository(ctx, cfg, log)
	if err != nil {
		log.Error("failed to build repository", "error", err)
		os.Exit(1)
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, catalog.Router(repo, log)); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func buildRepository(ctx context.Context, cfg appConfig, log *slog.Logger) (catalog.Repository, error) {
	var repo catalog.Repository

	if cfg.DatabaseURL != "" {
		var pgCfg pg.Config
		config.MustLoad(&pgCfg)

		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
			return nil, err
		}
		repo = catalog.NewPostgresRepository(pool)
		log.Info("using postgres repository")
	} else {
		mem := catalog.NewMemoryRepository()
		seed(ctx, mem)
		repo = mem
		log.Info("using in-memory repository", "seeded", mem.Len())
	}

	if cfg.RedisURL != "" {
		var redisCfg redis.Config
		config.MustLoad(&redisCfg)

		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, err
		}
		repo = catalog.NewCachedRepository(repo, catalog.NewRedisCache(client, ""), cfg.CacheTTL)
		log.Info("barcode lookups cached in redis", "ttl", cfg.CacheTTL)
	}

	return repo, nil
}

// seed loads a small demo inventory so the in-memory mode answers queries
// out of the box.
func seed(ctx context.Context, repo catalog.Repository) {
	products := []catalog.Product{
		catalog.NewProduct(catalog.MustBarcode("8-000137-001620"), catalog.NewDescription("Still water 1l")),
		catalog.NewProduct(catalog.MustBarcode("8-000137-001621"), catalog.NewDescription("Sparkling water 1l")),
		catalog.NewProduct(catalog.MustBarcode("1-234567-890123"), catalog.NewDescription("Dark chocolate 100g")),
	}
	for _, p := range products {
		_ = repo.Save(ctx, p)
	}
}
