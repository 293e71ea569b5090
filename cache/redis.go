package cache

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"

	"transport-admin/config"
)

var RedisClient *redis.Client

// InitRedis connects the shared Redis client from configuration.
func InitRedis() error {
	cfg := config.Cfg.Redis
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	log.Println("Connected to Redis successfully.")
	return nil
}
