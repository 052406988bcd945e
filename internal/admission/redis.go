package admission

import (
	"context"
	"errors"
	"fmt"
	"numberbot/pkg/domain"
	"numberbot/pkg/logger"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "numberbot:rl:"

// NewRedisClient configures a Redis client and verifies connectivity.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, errors.New("redis url is required")
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("could not parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return client, nil
}

// redisLimiter keeps fixed window counters in Redis so caps hold across
// several bot instances.
type redisLimiter struct {
	options Options
	client  *redis.Client
}

// NewRedis creates a Limiter backed by client.
func NewRedis(client *redis.Client, options Options) Limiter {
	return &redisLimiter{
		options: options.withDefaults(),
		client:  client,
	}
}

func (l *redisLimiter) Allow(ctx context.Context, userID domain.UserID) error {
	now := l.options.Now()

	if l.options.PerMinute > 0 {
		key := fmt.Sprintf("%sminute:%s:%d", keyPrefix, userID, now.Unix()/60)
		count, ok := l.incr(ctx, key, time.Minute)
		if ok && count > int64(l.options.PerMinute) {
			return minuteLimited(l.options.PerMinute)
		}
	}

	if l.options.PerDay > 0 {
		key := fmt.Sprintf("%sday:%s:%s", keyPrefix, userID, now.In(l.options.Location).Format(time.DateOnly))
		count, ok := l.incr(ctx, key, 25*time.Hour)
		if ok && count > int64(l.options.PerDay) {
			return dailyLimited(l.options.PerDay)
		}
	}

	return nil
}

// incr reports false when Redis could not be used, letting the caller fail open.
func (l *redisLimiter) incr(ctx context.Context, key string, ttl time.Duration) (int64, bool) {
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		logger.Warn(ctx, "could not increment rate limit counter", zap.String("key", key), zap.Error(err))

		return 0, false
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, ttl).Err(); err != nil {
			logger.Warn(ctx, "could not set rate limit counter expiry", zap.String("key", key), zap.Error(err))
		}
	}

	return count, true
}
