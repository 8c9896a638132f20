package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// InitializeRedisClient connects to Redis and verifies the connection
func InitializeRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}
	return rdb
}

// RedisBlobStore persists the store bundle under a single Redis key.
type RedisBlobStore struct {
	Client *redis.Client
	Key    string
}

func (r *RedisBlobStore) Load(ctx context.Context) ([]byte, error) {
	data, err := r.Client.Get(ctx, r.Key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to get bundle key '%s': %w", r.Key, err)
	}
	return data, nil
}

func (r *RedisBlobStore) Save(ctx context.Context, data []byte) error {
	if err := r.Client.Set(ctx, r.Key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set bundle key '%s': %w", r.Key, err)
	}
	return nil
}
