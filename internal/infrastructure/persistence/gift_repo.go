package persistence

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"gift_bot/internal/domain"
	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/value"
	"gift_bot/pkg/errcodes"
)

type GiftRepository struct {
	db *sqlx.DB
}

// NewGiftRepository создаёт репозиторий каталога.
func NewGiftRepository(db *sqlx.DB) *GiftRepository {
	return &GiftRepository{db: db}
}

// GetByID возвращает подарок по идентификатору.
func (r *GiftRepository) GetByID(ctx context.Context, id int64) (*entity.Gift, error) {
	query := r.db.Rebind(`SELECT ` + giftColumns + ` FROM gifts WHERE id = ?`)

	var schema giftSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.GiftNotFound, "gift not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get gift")
	}

	gift := schema.toDomain()

	return &gift, nil
}

// GetByIDs возвращает найденные подарки по списку идентификаторов в порядке id.
// Отсутствующие id пропускаются.
func (r *GiftRepository) GetByIDs(ctx context.Context, ids []int64) ([]entity.Gift, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT `+giftColumns+` FROM gifts WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to build query")
	}

	return r.selectGifts(ctx, r.db.Rebind(query), args...)
}

// Find выборка по фильтру подбора, упорядоченная по id.
func (r *GiftRepository) Find(ctx context.Context, filter value.GiftFilter) ([]entity.Gift, error) {
	query := `SELECT ` + giftColumns + ` FROM gifts
		WHERE marketplace_available = ? AND consumable = ? AND trend_score BETWEEN ? AND ?`
	args := []any{filter.Marketplace, filter.Consumable, filter.Trend.From, filter.Trend.To}

	// Имя колонки берётся только из фиксированного списка получателей.
	if column := filter.Recipient.Column(); column != "" {
		query += ` AND ` + column + ` = ?`
		args = append(args, true)
	}

	query += ` ORDER BY id`

	logger(ctx).Debug("find gifts",
		slog.String("recipient", filter.Recipient.String()),
		slog.Int("trend-from", filter.Trend.From),
		slog.Int("trend-to", filter.Trend.To),
	)

	return r.selectGifts(ctx, r.db.Rebind(query), args...)
}

// List страница каталога в порядке id.
func (r *GiftRepository) List(ctx context.Context, limit, offset int) ([]entity.Gift, error) {
	query := r.db.Rebind(`SELECT ` + giftColumns + ` FROM gifts ORDER BY id LIMIT ? OFFSET ?`)
	return r.selectGifts(ctx, query, limit, offset)
}

func (r *GiftRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM gifts`); err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to count gifts")
	}
	return count, nil
}

// Create сохраняет один подарок и проставляет ему ID.
func (r *GiftRepository) Create(ctx context.Context, gift *entity.Gift) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return r.insertTx(ctx, tx, []entity.Gift{*gift}, func(i int, id int64) { gift.ID = id })
	})
}

// ReplaceAll заменяет каталог целиком в одной транзакции. Связи
// подборок с удалёнными подарками не трогаются.
func (r *GiftRepository) ReplaceAll(ctx context.Context, gifts []entity.Gift) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM gifts`); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to clear catalog")
		}

		return r.insertTx(ctx, tx, gifts, func(i int, id int64) { gifts[i].ID = id })
	})
}

func (r *GiftRepository) insertTx(
	ctx context.Context,
	tx *sqlx.Tx,
	gifts []entity.Gift,
	setID func(i int, id int64),
) error {
	stmt, err := tx.PrepareNamedContext(ctx, `
		INSERT INTO gifts (
			name, description, category, subcategory, link, age_range, price, city,
			marketplace_available, trend_score, consumable, creativity_score,
			for_friend, for_wife, for_sister, for_mother, for_husband, for_brother,
			for_father, for_man, for_woman, image_name, created_at
		) VALUES (
			:name, :description, :category, :subcategory, :link, :age_range, :price, :city,
			:marketplace_available, :trend_score, :consumable, :creativity_score,
			:for_friend, :for_wife, :for_sister, :for_mother, :for_husband, :for_brother,
			:for_father, :for_man, :for_woman, :image_name, :created_at
		) RETURNING id`)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to prepare insert")
	}
	defer stmt.Close()

	now := time.Now().UTC()

	for i := range gifts {
		schema := fromGift(&gifts[i])
		if schema.CreatedAt.IsZero() {
			schema.CreatedAt = now
		}

		var id int64
		if err := stmt.GetContext(ctx, &id, schema); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert gift")
		}

		setID(i, id)
	}

	return nil
}

func (r *GiftRepository) selectGifts(ctx context.Context, query string, args ...any) ([]entity.Gift, error) {
	var schemas []giftSchema
	if err := r.db.SelectContext(ctx, &schemas, query, args...); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to select gifts")
	}

	gifts := make([]entity.Gift, 0, len(schemas))
	for i := range schemas {
		gifts = append(gifts, schemas[i].toDomain())
	}

	return gifts, nil
}
