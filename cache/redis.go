package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	ctx         = context.Background()
)

// InitRedis initializes the Redis connection. The cache is optional: callers
// check IsRedisAvailable and fall back to the database.
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:         redisURL,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(pingCtx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return nil
}

// CloseRedis closes the Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// IsRedisAvailable checks if Redis is connected
func IsRedisAvailable() bool {
	if RedisClient == nil {
		return false
	}
	_, err := RedisClient.Ping(ctx).Result()
	return err == nil
}

const (
	GamesCacheKey      = "games:all"
	ReviewsCachePrefix = "reviews:game:" // reviews:game:123
	StatsCacheKey      = "stats:dashboard"
)

// Set stores any value in cache with TTL
func Set(key string, value interface{}, ttl time.Duration) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return RedisClient.Set(ctx, key, data, ttl).Err()
}

// Get retrieves a value from cache into dest
func Get(key string, dest interface{}) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}
	val, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("cache miss")
	}
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

// Delete removes a key from cache
func Delete(key string) error {
	if !IsRedisAvailable() {
		return nil
	}
	return RedisClient.Del(ctx, key).Err()
}

// GetGames returns the cached games list
func GetGames(dest interface{}) error {
	return Get(GamesCacheKey, dest)
}

// SetGames caches the games list for 5 minutes
func SetGames(games interface{}) error {
	return Set(GamesCacheKey, games, 5*time.Minute)
}

// InvalidateGames removes the games list cache
func InvalidateGames() error {
	return Delete(GamesCacheKey)
}

// GetReviews returns cached reviews for a game
func GetReviews(gameID uint, dest interface{}) error {
	return Get(fmt.Sprintf("%s%d", ReviewsCachePrefix, gameID), dest)
}

// SetReviews caches reviews for a game for 10 minutes
func SetReviews(gameID uint, reviews interface{}) error {
	return Set(fmt.Sprintf("%s%d", ReviewsCachePrefix, gameID), reviews, 10*time.Minute)
}

// InvalidateReviews removes the reviews cache for a game
func InvalidateReviews(gameID uint) error {
	return Delete(fmt.Sprintf("%s%d", ReviewsCachePrefix, gameID))
}

// GetStats returns cached dashboard statistics
func GetStats(dest interface{}) error {
	return Get(StatsCacheKey, dest)
}

// SetStats caches dashboard statistics for 5 minutes
func SetStats(stats interface{}) error {
	return Set(StatsCacheKey, stats, 5*time.Minute)
}

// InvalidateStats removes the dashboard statistics cache
func InvalidateStats() error {
	return Delete(StatsCacheKey)
}
