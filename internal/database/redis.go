package database

import (
	"context"
	"time"

	"film-recommendations/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ConnectRedis returns nil when Redis is disabled or unreachable. Callers treat
// a nil client as "no cache".
func ConnectRedis(cfg config.RedisConfig, log *logrus.Logger) *redis.Client {
	if !cfg.Enabled {
		log.Info("Redis cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.WithError(err).WithField("addr", cfg.Addr).Warn("Failed to connect to redis, continuing without cache")
		_ = rdb.Close()
		return nil
	}

	log.WithField("addr", cfg.Addr).Info("Redis connection established successfully")
	return rdb
}
