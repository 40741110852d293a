// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"angoni/config"

	"github.com/go-redis/redis/v8"
)

// RateClient is the Redis client backing the per-IP rate limiter counters.
var RateClient *redis.Client

// InitRateClient initializes the Redis client used for rate limiting.
func InitRateClient() {
	RateClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRateDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := RateClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Rate Limiter): %v", err)
	}
}

// GetRateClient returns the rate limiter Redis client.
func GetRateClient() *redis.Client {
	if RateClient == nil {
		InitRateClient()
	}
	return RateClient
}
