package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"gift_bot/internal/domain"
	"gift_bot/internal/domain/entity"
	"gift_bot/pkg/errcodes"
)

const selectionColumns = `id, user_id, age, recipient_type, budget, marketplace, trend_score, consumable, created_at`

type SelectionRepository struct {
	db *sqlx.DB
}

func NewSelectionRepository(db *sqlx.DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

// Create сохраняет подборку и её подарки атомарно.
func (r *SelectionRepository) Create(ctx context.Context, sel *entity.Selection, links []entity.SelectionGift) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		stmt, err := tx.PrepareNamedContext(ctx, `
			INSERT INTO selections (user_id, age, recipient_type, budget, marketplace, trend_score, consumable, created_at)
			VALUES (:user_id, :age, :recipient_type, :budget, :marketplace, :trend_score, :consumable, :created_at)
			RETURNING id`)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to prepare selection insert")
		}
		defer stmt.Close()

		if err := stmt.GetContext(ctx, &sel.ID, fromSelection(sel)); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert selection")
		}

		for i := range links {
			links[i].SelectionID = sel.ID

			if _, err := tx.NamedExecContext(ctx, `
				INSERT INTO selection_gifts (selection_id, gift_id, category)
				VALUES (:selection_id, :gift_id, :category)`, links[i]); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, "failed to insert selection gift")
			}
		}

		return nil
	})
}

func (r *SelectionRepository) GetByID(ctx context.Context, id int64) (*entity.Selection, error) {
	query := r.db.Rebind(`SELECT ` + selectionColumns + ` FROM selections WHERE id = ?`)

	var schema selectionSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.SelectionNotFound, "selection not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get selection")
	}

	sel := schema.toDomain()

	return &sel, nil
}

// ListByUser подборки пользователя, новые первыми.
func (r *SelectionRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Selection, error) {
	query := r.db.Rebind(`SELECT ` + selectionColumns + ` FROM selections
		WHERE user_id = ? ORDER BY created_at DESC, id DESC`)

	var schemas []selectionSchema
	if err := r.db.SelectContext(ctx, &schemas, query, userID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list selections")
	}

	out := make([]entity.Selection, 0, len(schemas))
	for i := range schemas {
		out = append(out, schemas[i].toDomain())
	}

	return out, nil
}

func (r *SelectionRepository) Links(ctx context.Context, selectionID int64) ([]entity.SelectionGift, error) {
	query := r.db.Rebind(`SELECT selection_id, gift_id, category FROM selection_gifts
		WHERE selection_id = ? ORDER BY gift_id`)

	var links []entity.SelectionGift
	if err := r.db.SelectContext(ctx, &links, query, selectionID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get selection gifts")
	}

	return links, nil
}
