package repository

import (
	"context"
	"fmt"
	"time"

	"campusvoice/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

// admin session keys: admin_session:<session id>
const sessionKeyPrefix = "admin_session:"

type sessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates the Redis-backed admin session store.
// Expired sessions disappear on their own through the key TTL.
func NewSessionRepository(client *redis.Client) SessionRepository {
	return &sessionRepository{client: client}
}

func (r *sessionRepository) Save(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}

	timer := metrics.NewRedisTimer(serviceName, metrics.RedisOpSet)
	defer timer.ObserveDuration()

	if err := r.client.Set(ctx, sessionKeyPrefix+sessionID, "1", ttl).Err(); err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpSet)
		return fmt.Errorf("failed to save admin session: %w", err)
	}

	return nil
}

func (r *sessionRepository) Exists(ctx context.Context, sessionID string) (bool, error) {
	timer := metrics.NewRedisTimer(serviceName, metrics.RedisOpExists)
	defer timer.ObserveDuration()

	n, err := r.client.Exists(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpExists)
		return false, fmt.Errorf("failed to check admin session: %w", err)
	}

	return n > 0, nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	timer := metrics.NewRedisTimer(serviceName, metrics.RedisOpDel)
	defer timer.ObserveDuration()

	if err := r.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpDel)
		return fmt.Errorf("failed to delete admin session: %w", err)
	}

	return nil
}
