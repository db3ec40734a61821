package persistence

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"gift_bot/internal/domain"
	"gift_bot/internal/domain/entity"
	"gift_bot/pkg/errcodes"
)

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Totals(ctx context.Context) (entity.CatalogStats, error) {
	var totals struct {
		Users      int64 `db:"total_users"`
		Selections int64 `db:"total_selections"`
		Gifts      int64 `db:"total_gifts"`
		Categories int64 `db:"total_categories"`
	}

	err := r.db.GetContext(ctx, &totals, `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM selections) AS total_selections,
			(SELECT COUNT(*) FROM gifts) AS total_gifts,
			(SELECT COUNT(DISTINCT category) FROM gifts) AS total_categories`)
	if err != nil {
		return entity.CatalogStats{}, domain.WrapError(err, errcodes.InternalServerError, "failed to count totals")
	}

	return entity.CatalogStats{
		TotalUsers:      totals.Users,
		TotalSelections: totals.Selections,
		TotalGifts:      totals.Gifts,
		TotalCategories: totals.Categories,
	}, nil
}

// PopularCategories категории по числу попаданий в подборки.
func (r *StatsRepository) PopularCategories(ctx context.Context, limit int) ([]entity.CategoryUsage, error) {
	query := r.db.Rebind(`
		SELECT category, COUNT(*) AS usage_count
		FROM selection_gifts
		GROUP BY category
		ORDER BY usage_count DESC, category
		LIMIT ?`)

	var out []entity.CategoryUsage
	if err := r.db.SelectContext(ctx, &out, query, limit); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get popular categories")
	}

	return out, nil
}

func (r *StatsRepository) CountByPrice(ctx context.Context, minPrice, maxPrice float64) (int64, error) {
	query := `SELECT COUNT(*) FROM gifts WHERE price >= ?`
	args := []any{minPrice}

	if maxPrice > 0 {
		query += ` AND price < ?`
		args = append(args, maxPrice)
	}

	var count int64
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), args...); err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to count by price")
	}

	return count, nil
}

func (r *StatsRepository) SelectionTimes(ctx context.Context, since time.Time) ([]time.Time, error) {
	query := r.db.Rebind(`SELECT created_at FROM selections WHERE created_at >= ? ORDER BY created_at`)

	var out []time.Time
	if err := r.db.SelectContext(ctx, &out, query, since); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get selection times")
	}

	return out, nil
}

// DailySummary новые пользователи и подборки с since.
func (r *StatsRepository) DailySummary(ctx context.Context, since time.Time) (entity.DailySummary, error) {
	var counts struct {
		Users      int64 `db:"new_users"`
		Selections int64 `db:"selections"`
	}

	query := r.db.Rebind(`
		SELECT
			(SELECT COUNT(*) FROM users WHERE created_at >= ?) AS new_users,
			(SELECT COUNT(*) FROM selections WHERE created_at >= ?) AS selections`)

	if err := r.db.GetContext(ctx, &counts, query, since, since); err != nil {
		return entity.DailySummary{}, domain.WrapError(err, errcodes.InternalServerError, "failed to count daily summary")
	}

	return entity.DailySummary{
		Day:        since,
		NewUsers:   counts.Users,
		Selections: counts.Selections,
	}, nil
}
