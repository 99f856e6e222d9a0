package configuration

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient connects to Redis, retrying the ping a few times before giving up.
func NewRedisClient(ctx context.Context, cfg *Config, log logrus.FieldLogger) (*redis.Client, error) {
	maxRetries := cfg.Redis.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	client := redis.NewClient(&redis.Options{
		Network:  "tcp",
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	var err error
	for i := 0; i < maxRetries; i++ {
		if err = client.Ping(ctx).Err(); err == nil {
			return client, nil
		}

		log.WithError(err).Warnf("failed to connect to redis (attempt %d/%d)", i+1, maxRetries)
		if i == maxRetries-1 {
			break
		}
		select {
		case <-ctx.Done():
			client.Close()
			return nil, ctx.Err()
		case <-time.After(cfg.Redis.RetryDelay):
		}
	}

	client.Close()
	return nil, fmt.Errorf("connect to redis at %s after %d attempts: %w", cfg.Redis.Addr, maxRetries, err)
}
