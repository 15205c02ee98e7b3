package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/traffic_overlay/internal/config"
)

const connectAttempts = 5

// NewRedisClient создает клиент Redis и ждет, пока сервер начнет отвечать
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		PoolSize: 10,
	})

	// BRPOP воркера блокируется дольше ReadTimeout, поэтому проверяем только соединение
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond

	_, err := backoff.Retry(ctx, func() (string, error) {
		return rdb.Ping(ctx).Result()
	}, backoff.WithBackOff(policy), backoff.WithMaxTries(connectAttempts))
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}
