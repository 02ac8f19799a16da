package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"movieRecommender/domain"
	"movieRecommender/pkg/logger"

	"github.com/redis/go-redis/v9"
)

var encodePreferences = func(raw domain.RawPreferences) ([]byte, error) {
	return json.Marshal(raw)
}

// PreferenceStore is the durable store behind the cache.
type PreferenceStore interface {
	GetPreferences(ctx context.Context, userID string) (domain.RawPreferences, bool, error)
	SavePreferences(ctx context.Context, userID string, raw domain.RawPreferences) error
	ListUserIDs(ctx context.Context) ([]string, error)
}

// PreferenceCache is a read-through cache over a PreferenceStore. Redis
// failures are logged and fall through to the store.
type PreferenceCache struct {
	client *redis.Client
	store  PreferenceStore
	ttl    time.Duration
}

func NewPreferenceCache(client *redis.Client, store PreferenceStore, ttl time.Duration) *PreferenceCache {
	return &PreferenceCache{
		client: client,
		store:  store,
		ttl:    ttl,
	}
}

func preferenceKey(userID string) string {
	return fmt.Sprintf("preferences:user:%s", userID)
}

func (c *PreferenceCache) GetPreferences(ctx context.Context, userID string) (domain.RawPreferences, bool, error) {
	key := preferenceKey(userID)

	val, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var raw domain.RawPreferences
		if err := json.Unmarshal(val, &raw); err == nil {
			return raw, true, nil
		}
		logger.Warn("preference_cache_corrupt", "user_id", userID)
	case !errors.Is(err, redis.Nil):
		logger.Warn("preference_cache_get_failed", "user_id", userID, err)
	}

	raw, ok, err := c.store.GetPreferences(ctx, userID)
	if err != nil || !ok {
		return raw, ok, err
	}

	c.put(ctx, key, raw)
	return raw, true, nil
}

// SavePreferences writes to the store first, then refreshes the cached copy.
func (c *PreferenceCache) SavePreferences(ctx context.Context, userID string, raw domain.RawPreferences) error {
	if err := c.store.SavePreferences(ctx, userID, raw); err != nil {
		return err
	}

	c.put(ctx, preferenceKey(userID), raw)
	return nil
}

func (c *PreferenceCache) ListUserIDs(ctx context.Context) ([]string, error) {
	return c.store.ListUserIDs(ctx)
}

func (c *PreferenceCache) put(ctx context.Context, key string, raw domain.RawPreferences) {
	payload, err := encodePreferences(raw)
	if err != nil {
		logger.Warn("preference_cache_encode_failed", "key", key, err)
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Warn("preference_cache_set_failed", "key", key, err)
	}
}
