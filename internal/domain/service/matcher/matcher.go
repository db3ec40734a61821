package matcher

import (
	"context"
	"fmt"
	"log/slog"

	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/value"
	"gift_bot/internal/metrics"
)

const (
	PerCategory   = 2
	MaxCategories = 3
	TrendFallback = 2
)

type GiftFinder interface {
	Find(ctx context.Context, filter value.GiftFilter) ([]entity.Gift, error)
}

type Matcher struct {
	finder GiftFinder
}

func New(finder GiftFinder) *Matcher {
	return &Matcher{finder: finder}
}

// Match подбирает подарки по критериям. Сначала точное совпадение
// trend_score, при пустом результате один повтор с диапазоном ±2.
// Пустой результат: не ошибка.
func (m *Matcher) Match(ctx context.Context, criteria value.Criteria) (entity.CategorizedGifts, error) {
	filter := BuildFilter(ctx, criteria)

	gifts, err := m.finder.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find primary: %w", err)
	}

	outcome := metrics.OutcomePrimary

	if len(gifts) == 0 {
		filter.Trend = value.WidenTrend(criteria.TrendScore, TrendFallback)

		gifts, err = m.finder.Find(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("find fallback: %w", err)
		}

		outcome = metrics.OutcomeFallback
	}

	if len(gifts) == 0 {
		outcome = metrics.OutcomeEmpty
	}

	metrics.Matches.WithLabelValues(outcome).Inc()

	result := Group(gifts)

	logger(ctx).Debug("gifts matched",
		slog.String("outcome", outcome),
		slog.Int("found", len(gifts)),
		slog.Int("categories", len(result)),
	)

	return result, nil
}

// BuildFilter переводит критерии в предикаты с точным trend_score.
// Неизвестный получатель не фильтрует.
func BuildFilter(ctx context.Context, criteria value.Criteria) value.GiftFilter {
	filter := value.GiftFilter{
		Marketplace: criteria.Marketplace,
		Consumable:  criteria.Consumable,
		Trend:       value.ExactTrend(criteria.TrendScore),
	}

	if criteria.Recipient.Known() {
		filter.Recipient = criteria.Recipient
	} else {
		logger(ctx).Warn("unknown recipient, filter skipped",
			slog.String("recipient", criteria.Recipient.String()),
		)
	}

	return filter
}

// Group оставляет 2 подарка на категорию и 3 первые по имени категории.
func Group(gifts []entity.Gift) entity.CategorizedGifts {
	return entity.GroupByCategory(gifts, PerCategory, MaxCategories)
}

// MatchSnapshot то же, что Match, но по каталогу в памяти.
// gifts должны идти в порядке id.
func MatchSnapshot(ctx context.Context, criteria value.Criteria, gifts []entity.Gift) entity.CategorizedGifts {
	filter := BuildFilter(ctx, criteria)

	found := scan(filter, gifts)
	if len(found) == 0 {
		filter.Trend = value.WidenTrend(criteria.TrendScore, TrendFallback)
		found = scan(filter, gifts)
	}

	return Group(found)
}

func scan(filter value.GiftFilter, gifts []entity.Gift) []entity.Gift {
	var out []entity.Gift
	for _, g := range gifts {
		if filter.Matches(g.Attrs()) {
			out = append(out, g)
		}
	}
	return out
}

// SnapshotFinder GiftFinder поверх среза в памяти.
type SnapshotFinder []entity.Gift

func (s SnapshotFinder) Find(_ context.Context, filter value.GiftFilter) ([]entity.Gift, error) {
	return scan(filter, s), nil
}
