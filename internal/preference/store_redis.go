// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/somalitag/internal/platform/constants"
	"github.com/taibuivan/somalitag/internal/platform/ctxutil"
)

// redisClient is the subset of the go-redis client the store needs.
type redisClient interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisBackend keeps preferences in a Redis hash per anonymous visitor.
//
// The visitor id comes from the request context; see [VisitorID].
type RedisBackend struct {
	client redisClient
	ttl    time.Duration
}

func NewRedisBackend(client redisClient, ttl time.Duration) *RedisBackend {
	return &RedisBackend{client: client, ttl: ttl}
}

func (b *RedisBackend) Name() string { return "redis" }

func (b *RedisBackend) Open(_ http.ResponseWriter, request *http.Request) Store {
	return &RedisStore{
		client:  b.client,
		visitor: ctxutil.GetVisitorID(request.Context()),
		ttl:     b.ttl,
	}
}

// RedisStore reads and writes one visitor's preference hash.
type RedisStore struct {
	client  redisClient
	visitor string
	ttl     time.Duration
}

func (s *RedisStore) key() string {
	return constants.RedisPrefixPreference + s.visitor
}

func (s *RedisStore) Get(ctx context.Context, field string) (string, bool, error) {
	if s.visitor == "" {
		return "", false, nil
	}

	value, err := s.client.HGet(ctx, s.key(), field).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis hget %s: %w", field, err)
	}
	return value, true, nil
}

// Set writes the field and refreshes the hash expiry.
func (s *RedisStore) Set(ctx context.Context, field, value string) error {
	if s.visitor == "" {
		return ErrNoVisitor
	}

	if err := s.client.HSet(ctx, s.key(), field, value).Err(); err != nil {
		return fmt.Errorf("redis hset %s: %w", field, err)
	}
	if err := s.client.Expire(ctx, s.key(), s.ttl).Err(); err != nil {
		return fmt.Errorf("redis expire: %w", err)
	}
	return nil
}
