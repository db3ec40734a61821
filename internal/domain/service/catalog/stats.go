package catalog

import (
	"context"
	"fmt"
	"time"

	"gift_bot/internal/domain/entity"
)

const (
	popularCategoriesLimit = 10
	activityDays           = 7
)

type StatsRepository interface {
	// Totals заполняет счётчики пользователей, подборок, подарков и категорий.
	Totals(ctx context.Context) (entity.CatalogStats, error)
	PopularCategories(ctx context.Context, limit int) ([]entity.CategoryUsage, error)
	// CountByPrice считает подарки с ценой в [min, max), max=0: без границы.
	CountByPrice(ctx context.Context, minPrice, maxPrice float64) (int64, error)
	SelectionTimes(ctx context.Context, since time.Time) ([]time.Time, error)
}

// PriceBuckets диапазоны цен для распределения.
func PriceBuckets() []entity.PriceBucket {
	return []entity.PriceBucket{
		{Label: "0-1000", Min: 0, Max: 1000},
		{Label: "1000-5000", Min: 1000, Max: 5000},
		{Label: "5000-10000", Min: 5000, Max: 10000},
		{Label: "10000+", Min: 10000},
	}
}

func (s *Service) Stats(ctx context.Context) (entity.CatalogStats, error) {
	stats, err := s.stats.Totals(ctx)
	if err != nil {
		return entity.CatalogStats{}, fmt.Errorf("totals: %w", err)
	}

	stats.PopularCategories, err = s.stats.PopularCategories(ctx, popularCategoriesLimit)
	if err != nil {
		return entity.CatalogStats{}, fmt.Errorf("popular categories: %w", err)
	}

	buckets := PriceBuckets()
	for i := range buckets {
		buckets[i].Count, err = s.stats.CountByPrice(ctx, buckets[i].Min, buckets[i].Max)
		if err != nil {
			return entity.CatalogStats{}, fmt.Errorf("price bucket %s: %w", buckets[i].Label, err)
		}
	}
	stats.PriceDistribution = buckets

	now := time.Now().UTC()
	since := now.Truncate(24*time.Hour).AddDate(0, 0, -(activityDays - 1))

	times, err := s.stats.SelectionTimes(ctx, since)
	if err != nil {
		return entity.CatalogStats{}, fmt.Errorf("selection times: %w", err)
	}
	stats.DailyActivity = DailyActivity(times, since, activityDays)

	return stats, nil
}

// DailyActivity раскладывает моменты по дням начиная с since, days штук.
// Дни без подборок тоже попадают в результат.
func DailyActivity(times []time.Time, since time.Time, days int) []entity.DayCount {
	out := make([]entity.DayCount, days)
	index := make(map[string]int, days)

	for i := range days {
		day := since.AddDate(0, 0, i).Format(time.DateOnly)
		out[i] = entity.DayCount{Day: day}
		index[day] = i
	}

	for _, t := range times {
		if i, ok := index[t.UTC().Format(time.DateOnly)]; ok {
			out[i].Count++
		}
	}

	return out
}
