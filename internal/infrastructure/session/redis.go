package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"gift_bot/internal/domain/service/conversation"
)

const redisKeyPrefix = "gift_bot:session:"

//nolint:gochecknoglobals
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RedisStore сессии в Redis для нескольких экземпляров бота.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, userID int64) (*conversation.Session, error) {
	data, err := s.client.Get(ctx, redisKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return conversation.NewSession(userID), nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var sess conversation.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess *conversation.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.client.Set(ctx, redisKey(sess.UserID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, redisKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func redisKey(userID int64) string {
	return redisKeyPrefix + key(userID)
}
