// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"schedly/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds negotiation sessions between conversational turns.
	SessionCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client for negotiation session storage.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for negotiation sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
