package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"vizigoBack/internal/models"
)

const redisKeyPrefix = "vizigo:"

// RedisStore keeps each collection in one hash, field = document key.
type RedisStore struct {
	Client *redis.Client
	keys   *PushKeyGenerator
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client, keys: NewPushKeyGenerator(nil)}
}

func redisHash(collection string) string {
	return redisKeyPrefix + collection
}

func (s *RedisStore) Push(ctx context.Context, collection string, record interface{}) (string, error) {
	key := s.keys.Next()
	if err := s.Create(ctx, collection, key, record); err != nil {
		return "", err
	}
	return key, nil
}

func (s *RedisStore) Create(ctx context.Context, collection, key string, record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	ok, err := s.Client.HSetNX(ctx, redisHash(collection), key, data).Result()
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrKeyExists
	}
	return nil
}

func (s *RedisStore) GetAll(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	fields, err := s.Client.HGetAll(ctx, redisHash(collection)).Result()
	if err != nil {
		return nil, err
	}
	docs := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		docs[k] = json.RawMessage(v)
	}
	return docs, nil
}
