package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/matst80/slask-catalog/pkg/types"
)

// RedisFilterStore keeps the filter selection in redis instead of on
// disk, one key per country.
type RedisFilterStore struct {
	client *redis.Client
	ctx    context.Context
	key    string
}

func NewRedisFilterStore(addr, password, country string, db int) *RedisFilterStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisFilterStore{
		client: rdb,
		ctx:    context.Background(),
		key:    country + ":current_filters",
	}
}

func (s *RedisFilterStore) Load() (*types.StoredFilters, error) {
	data, err := s.client.Get(s.ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	filters := &types.StoredFilters{}
	if err := json.Unmarshal([]byte(data), filters); err != nil {
		return nil, err
	}
	return filters, nil
}

func (s *RedisFilterStore) Save(filters *types.StoredFilters) error {
	data, err := json.Marshal(filters)
	if err != nil {
		return err
	}
	return s.client.Set(s.ctx, s.key, data, 0).Err()
}

func (s *RedisFilterStore) Clear() error {
	return s.client.Del(s.ctx, s.key).Err()
}
