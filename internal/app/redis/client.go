package redis

import (
	"context"
	"fmt"
	"time"

	"trainingcenter/internal/app/config"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Клиент Redis для кэша справочников. Ошибки кэша не фатальны для запроса,
// поэтому Get/Set их не возвращают, а логируют.

type Client struct {
	client *redis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Username:    cfg.User,
		Password:    cfg.Password,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	return &Client{client: client}, nil
}

// Get возвращает значение и признак попадания в кэш.
func (c *Client) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		logrus.Warnf("redis get %s: %v", key, err)
		return "", false
	}
	return value, true
}

// Set записывает значение с временем жизни.
func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logrus.Warnf("redis set %s: %v", key, err)
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}
