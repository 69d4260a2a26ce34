package session

import (
	"context"
	"errors"

	"github.com/coursemint/api/utils/cache"
	"github.com/google/uuid"
)

// RedisStore keeps sessions in Redis so they survive restarts and are
// shared across instances. Expiry is handled by the key TTL.
type RedisStore struct {
	cache *cache.RedisCache
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(c *cache.RedisCache) *RedisStore {
	return &RedisStore{cache: c}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisStore) Create(ctx context.Context, data Data) (string, error) {
	token := uuid.New().String()
	if err := s.cache.SetJSON(ctx, sessionKey(token), data, TTL); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Data, error) {
	var data Data
	if err := s.cache.GetJSON(ctx, sessionKey(token), &data); err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &data, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKey(token))
}
