package notice

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	noticesKey       = "overlay_notices"
	deliveryQueueKey = "overlay_notice_deliveries"
)

// RedisBoard - реализация Board, использующая Redis.
// Уведомления хранятся в ограниченном списке, при включенной доставке
// дополнительно кладутся в очередь для WebhookWorker.
type RedisBoard struct {
	redisClient *redis.Client
	capacity    int64
	deliver     bool
}

// NewRedisBoard создает новый RedisBoard
func NewRedisBoard(client *redis.Client, capacity int, deliver bool) *RedisBoard {
	if capacity <= 0 {
		capacity = 100
	}
	return &RedisBoard{
		redisClient: client,
		capacity:    int64(capacity),
		deliver:     deliver,
	}
}

// Publish сохраняет уведомление
func (b *RedisBoard) Publish(ctx context.Context, n Notice) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notice: %w", err)
	}

	pipe := b.redisClient.TxPipeline()
	pipe.LPush(ctx, noticesKey, payload)
	pipe.LTrim(ctx, noticesKey, 0, b.capacity-1)
	if b.deliver {
		// LPUSH в очередь, воркер забирает с правого края
		pipe.LPush(ctx, deliveryQueueKey, payload)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish notice to Redis: %w", err)
	}
	return nil
}

// Recent возвращает до limit последних уведомлений, новые первыми
func (b *RedisBoard) Recent(ctx context.Context, limit int) ([]Notice, error) {
	if limit <= 0 || int64(limit) > b.capacity {
		limit = int(b.capacity)
	}

	raw, err := b.redisClient.LRange(ctx, noticesKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read notices from Redis: %w", err)
	}

	notices := make([]Notice, 0, len(raw))
	for _, item := range raw {
		var n Notice
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notice: %w", err)
		}
		notices = append(notices, n)
	}
	return notices, nil
}
