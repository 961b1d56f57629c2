// Package storage keeps fetch-side state in redis: a TTL'd cache of
// activity snapshots (so repeated runs don't hammer the API) and
// per-period generation marks for watch mode. Personas themselves are
// never persisted; the report file is the only analysis output.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"reddit-persona/internal/model"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func activityKey(username string) string {
	return fmt.Sprintf("persona:activity:%s", username)
}

func generatedKey(username, period string) string {
	return fmt.Sprintf("persona:generated:%s:%s", username, period)
}

// CacheActivity stores a fetched activity snapshot with a TTL.
func (s *RedisStore) CacheActivity(ctx context.Context, act model.Activity, ttl time.Duration) error {
	b, err := json.Marshal(act)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, activityKey(act.Account.Username), b, ttl).Err()
}

// Activity returns a cached snapshot if present. The second return is
// false on a cache miss.
func (s *RedisStore) Activity(ctx context.Context, username string) (model.Activity, bool, error) {
	var act model.Activity
	b, err := s.rdb.Get(ctx, activityKey(username)).Bytes()
	if err == redis.Nil {
		return act, false, nil
	}
	if err != nil {
		return act, false, err
	}
	if err := json.Unmarshal(b, &act); err != nil {
		return act, false, err
	}
	return act, true, nil
}

// IsGenerated reports whether a report was already written for the user
// in the given period.
func (s *RedisStore) IsGenerated(ctx context.Context, username, period string) (bool, error) {
	_, err := s.rdb.Get(ctx, generatedKey(username, period)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MarkGenerated records that a report was written for the period.
func (s *RedisStore) MarkGenerated(ctx context.Context, username, period string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return s.rdb.Set(ctx, generatedKey(username, period), "1", ttl).Err()
}
