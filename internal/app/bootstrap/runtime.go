package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	appconfig "github.com/andestack/contactline/internal/config"
	"github.com/andestack/contactline/internal/record"
	"github.com/andestack/contactline/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		return nil
	}
	return client
}

// BuildPostgresPool connects to Postgres when DATABASE_URL is set. Failures
// degrade to nil so the service can still start and serve defaults.
func BuildPostgresPool(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) *pgxpool.Pool {
	if cfg == nil || strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Warn("invalid database URL", "error", err)
		return nil
	}
	if err := pool.Ping(ctx); err != nil {
		logger.Warn("postgres not available", "error", err)
		pool.Close()
		return nil
	}
	return pool
}

// BuildRecordStore picks the record backend: the in-memory store when forced,
// then Postgres, then Redis. A nil return is valid: reads then serve
// configured defaults and mutations report the store unavailable.
func BuildRecordStore(redisClient *redis.Client, pgPool *pgxpool.Pool, cfg *appconfig.Config, logger *logging.Logger) record.Store {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg != nil && cfg.UseMemoryStore {
		logger.Info("using in-memory record store")
		return record.NewMemoryStore()
	}
	if pgPool != nil {
		logger.Info("using postgres record store")
		return record.NewPostgresStore(pgPool)
	}
	if redisClient == nil {
		logger.Warn("no record store configured, serving defaults only")
		return nil
	}
	return record.NewRedisStore(redisClient, nil)
}

// ParseAllowedOrigins splits a comma-separated origin list, dropping blanks.
func ParseAllowedOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
