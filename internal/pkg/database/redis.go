// Package database connects to the Redis instance that holds booking drafts.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisOptions tunes the client. Zero values use DefaultRedisOptions.
type RedisOptions struct {
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultRedisOptions suits a single gateway instance storing small JSON drafts.
func DefaultRedisOptions() RedisOptions {
	return RedisOptions{
		PoolSize:     20,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	}
}

// NewRedis creates a Redis client and pings it.
// Returns nil, nil if redisURL is empty; callers then keep drafts in memory.
func NewRedis(ctx context.Context, redisURL string, opts RedisOptions) (*redis.Client, error) {
	if redisURL == "" {
		log.Warn().Msg("Redis URL not configured, drafts are kept in memory")
		return nil, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	def := DefaultRedisOptions()
	opt.PoolSize = pick(opts.PoolSize, def.PoolSize)
	opt.DialTimeout = pick(opts.DialTimeout, def.DialTimeout)
	opt.ReadTimeout = pick(opts.ReadTimeout, def.ReadTimeout)
	opt.WriteTimeout = pick(opts.WriteTimeout, def.WriteTimeout)

	client := redis.NewClient(opt)
	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	log.Info().Str("addr", opt.Addr).Int("db", opt.DB).Msg("Connected to Redis")
	return client, nil
}

// Ping checks the connection within 3 seconds. A nil client is healthy.
func Ping(ctx context.Context, client *redis.Client) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// CloseRedis closes the Redis connection
func CloseRedis(client *redis.Client) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing Redis connection")
		return
	}
	log.Info().Msg("Redis connection closed")
}

func pick[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
