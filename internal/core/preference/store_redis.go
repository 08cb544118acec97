package preference

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/txsn/navigator/internal/platform/constants"
)

// RedisStore implements [Store] on top of Redis. One string key per client
// with a sliding TTL; stale clients simply age out.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func zipKey(clientID string) string {
	return constants.RedisPrefixZip + clientID
}

// GetZip returns the remembered ZIP, or "" on a miss.
func (store *RedisStore) GetZip(context context.Context, clientID string) (string, error) {
	zip, err := store.client.Get(context, zipKey(clientID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis_zip_get_failed: %w", err)
	}
	return zip, nil
}

// SetZip stores the ZIP and resets its expiry.
func (store *RedisStore) SetZip(context context.Context, clientID, zip string) error {
	if err := store.client.Set(context, zipKey(clientID), zip, constants.ZipPreferenceTTL).Err(); err != nil {
		return fmt.Errorf("redis_zip_set_failed: %w", err)
	}
	return nil
}

// DeleteZip forgets a client's ZIP. Deleting a missing key is not an error.
func (store *RedisStore) DeleteZip(context context.Context, clientID string) error {
	if err := store.client.Del(context, zipKey(clientID)).Err(); err != nil {
		return fmt.Errorf("redis_zip_delete_failed: %w", err)
	}
	return nil
}
