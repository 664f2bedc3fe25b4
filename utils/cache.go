package utils

import (
	"context"
	"log"
	"time"

	"unicare/config"

	"github.com/go-redis/redis/v8"
)

var (
	cacheClient *redis.Client
	otpClient   *redis.Client
)

// InitRedis establishes the Redis connections used for caching and OTP storage.
func InitRedis() {
	cacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	otpClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisOTPDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cacheClient.Ping(ctx).Err(); err != nil {
		log.Printf("redis cache unavailable: %v", err)
	}
}

// GetCacheClient returns the general-purpose cache client.
func GetCacheClient() *redis.Client {
	return cacheClient
}

// GetOTPCacheClient returns the client backing OTP storage.
func GetOTPCacheClient() *redis.Client {
	return otpClient
}
