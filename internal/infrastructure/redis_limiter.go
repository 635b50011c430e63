package infrastructure

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client from explicit settings. Callers skip
// Redis entirely when addr is empty.
func NewRedisClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

// RedisLimiter counts attempts per key in Redis so the limit holds across
// server instances. On Redis failure it fails open and logs; a broken
// limiter must not lock everyone out.
type RedisLimiter struct {
	client   *redis.Client
	window   time.Duration
	maxTries int
}

func NewRedisLimiter(client *redis.Client, window time.Duration, maxTries int) *RedisLimiter {
	return &RedisLimiter{
		client:   client,
		window:   window,
		maxTries: maxTries,
	}
}

func (rl *RedisLimiter) Allow(ctx context.Context, key string) bool {
	redisKey := "login_attempts:" + key

	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		log.Println("redis limiter unavailable:", err)
		return true
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			log.Println("redis limiter expire failed:", err)
		}
	}

	return count <= int64(rl.maxTries)
}
