package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"gift_bot/internal/domain"
	"gift_bot/internal/domain/entity"
	"gift_bot/pkg/errcodes"
)

const userColumns = `telegram_id, name, username, phone, is_admin, created_at`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, telegramID int64) (*entity.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE telegram_id = ?`, telegramID)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE username = ? ORDER BY telegram_id LIMIT 1`, username)
}

func (r *UserRepository) get(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var u entity.User
	if err := r.db.GetContext(ctx, &u, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.UserNotFound, "user not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get user")
	}
	return &u, nil
}

// Create добавляет пользователя. Повторный вызов для того же id ничего не меняет.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO users (telegram_id, name, username, phone, is_admin, created_at)
		VALUES (:telegram_id, :name, :username, :phone, :is_admin, :created_at)
		ON CONFLICT (telegram_id) DO NOTHING`, u)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to create user")
	}

	return nil
}

// FillMissing заполняет пустые поля пользователя значениями из u.
func (r *UserRepository) FillMissing(ctx context.Context, u *entity.User) error {
	query := r.db.Rebind(`
		UPDATE users SET
			name = COALESCE(NULLIF(name, ''), ?),
			username = COALESCE(NULLIF(username, ''), ?),
			phone = COALESCE(NULLIF(phone, ''), ?)
		WHERE telegram_id = ?`)

	return r.execOne(ctx, query, u.Name, u.Username, u.Phone, u.TelegramID)
}

func (r *UserRepository) SetAdmin(ctx context.Context, telegramID int64, isAdmin bool) error {
	query := r.db.Rebind(`UPDATE users SET is_admin = ? WHERE telegram_id = ?`)
	return r.execOne(ctx, query, isAdmin, telegramID)
}

func (r *UserRepository) ListAdminIDs(ctx context.Context) ([]int64, error) {
	query := r.db.Rebind(`SELECT telegram_id FROM users WHERE is_admin = ? ORDER BY telegram_id`)

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, true); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list admins")
	}

	return ids, nil
}

func (r *UserRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to update user")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to get rows affected")
	}

	if affected == 0 {
		return domain.NewError(errcodes.UserNotFound, "user not found")
	}

	return nil
}
