package session

import (
	"context"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"gift_bot/internal/domain/service/conversation"
)

// MemoryStore сессии в памяти процесса. Подходит для одного экземпляра бота.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{cache: cache.New(ttl, 2*ttl)}
}

func (s *MemoryStore) Load(_ context.Context, userID int64) (*conversation.Session, error) {
	if v, ok := s.cache.Get(key(userID)); ok {
		sess := v.(conversation.Session) //nolint:forcetypeassert
		return &sess, nil
	}
	return conversation.NewSession(userID), nil
}

// Save хранит копию: изменения после Save не видны другим вызовам Load.
func (s *MemoryStore) Save(_ context.Context, sess *conversation.Session) error {
	s.cache.Set(key(sess.UserID), *sess, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID int64) error {
	s.cache.Delete(key(userID))
	return nil
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
