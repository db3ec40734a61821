package conversation

import "context"

// Store хранилище сессий. Load для неизвестного пользователя
// возвращает новую сессию в StateIdle.
type Store interface {
	Load(ctx context.Context, userID int64) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, userID int64) error
}
