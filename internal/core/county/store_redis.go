package county

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/txsn/navigator/internal/platform/constants"
)

// RedisCache implements [Cache] on top of Redis.
//
// The full Texas county list is 254 small rows that change only when the
// region map is redrawn, so one JSON blob under a single key with a short
// TTL is enough.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis-backed county list cache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// GetCounties returns the cached county list, or (nil, nil) on a miss.
func (cache *RedisCache) GetCounties(context context.Context) ([]County, error) {
	payload, err := cache.client.Get(context, constants.RedisPrefixCountyList).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_county_cache_get_failed: %w", err)
	}

	var counties []County
	if err := json.Unmarshal(payload, &counties); err != nil {
		// A corrupt entry is treated as a miss; the next Set overwrites it.
		return nil, nil
	}

	return counties, nil
}

// SetCounties stores the county list with the standard cache TTL.
func (cache *RedisCache) SetCounties(context context.Context, counties []County) error {
	payload, err := json.Marshal(counties)
	if err != nil {
		return fmt.Errorf("redis_county_cache_marshal_failed: %w", err)
	}

	if err := cache.client.Set(context, constants.RedisPrefixCountyList, payload, constants.CountyCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis_county_cache_set_failed: %w", err)
	}

	return nil
}
