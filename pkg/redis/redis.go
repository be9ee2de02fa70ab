package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis is the merchant-frequency classification cache. Classifications are
// cheap to recompute, so every failure degrades to a cache miss.
type IRedis interface {
	SetFrequency(ctx context.Context, key string, payload string, expiration time.Duration) error
	GetFrequency(ctx context.Context, key string) (string, error)
	DeleteFrequency(ctx context.Context, key string) error
}

var ErrCacheMiss = errors.New("frequency not cached")

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func FrequencyKey(userID, merchant string) string {
	return fmt.Sprintf("frequency:%s:%s", userID, merchant)
}

func (r *redisClient) SetFrequency(ctx context.Context, key string, payload string, expiration time.Duration) error {
	if err := r.client.Set(ctx, key, payload, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error caching frequency for key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) GetFrequency(ctx context.Context, key string) (string, error) {
	payload, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		logrus.Error(fmt.Sprintf("Error reading cached frequency for key %s: %v", key, err))
		return "", err
	}
	return payload, nil
}

func (r *redisClient) DeleteFrequency(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error invalidating cached frequency for key %s: %v", key, err))
		return err
	}
	return nil
}
