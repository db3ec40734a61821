package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"gift_bot/internal/domain"
	"gift_bot/internal/domain/entity"
	"gift_bot/internal/metrics"
	"gift_bot/pkg/errcodes"
	"gift_bot/pkg/logx"
)

const (
	PageSize = 6

	giftCacheTTL     = 10 * time.Minute
	giftCacheCleanup = 30 * time.Minute
)

type GiftRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Gift, error)
	// ReplaceAll удаляет весь каталог и вставляет gifts в одной транзакции.
	ReplaceAll(ctx context.Context, gifts []entity.Gift) error
	List(ctx context.Context, limit, offset int) ([]entity.Gift, error)
	Count(ctx context.Context) (int64, error)
}

type Parser interface {
	// Parse возвращает разобранные подарки и число пропущенных строк.
	Parse(ctx context.Context, r io.Reader) ([]entity.Gift, int, error)
}

type Notifier interface {
	CatalogReplaced(ctx context.Context, report entity.ImportReport) error
}

type Service struct {
	gifts    GiftRepository
	stats    StatsRepository
	parser   Parser
	notifier Notifier
	cache    *cache.Cache
}

func NewService(gifts GiftRepository, stats StatsRepository, parser Parser, notifier Notifier) *Service {
	return &Service{
		gifts:    gifts,
		stats:    stats,
		parser:   parser,
		notifier: notifier,
		cache:    cache.New(giftCacheTTL, giftCacheCleanup),
	}
}

// Get подарок по id через кэш. Кэш сбрасывается при каждой загрузке.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Gift, error) {
	key := strconv.FormatInt(id, 10)

	if cached, found := s.cache.Get(key); found {
		g := cached.(entity.Gift) //nolint:forcetypeassert
		return &g, nil
	}

	g, err := s.gifts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get gift: %w", err)
	}

	s.cache.Set(key, *g, cache.DefaultExpiration)

	return g, nil
}

// Import заменяет каталог содержимым таблицы.
func (s *Service) Import(ctx context.Context, r io.Reader) (entity.ImportReport, error) {
	started := time.Now()

	gifts, skipped, err := s.parser.Parse(ctx, r)
	if err != nil {
		metrics.CatalogImports.WithLabelValues("parse_error").Inc()
		return entity.ImportReport{}, fmt.Errorf("parse catalog: %w", err)
	}

	if len(gifts) == 0 {
		metrics.CatalogImports.WithLabelValues("empty").Inc()
		return entity.ImportReport{}, domain.NewError(errcodes.EmptyCatalogFile, "no gifts in file")
	}

	if err := s.gifts.ReplaceAll(ctx, gifts); err != nil {
		metrics.CatalogImports.WithLabelValues("store_error").Inc()
		return entity.ImportReport{}, fmt.Errorf("replace catalog: %w", err)
	}

	s.cache.Flush()

	report := entity.ImportReport{Imported: len(gifts), Skipped: skipped}

	metrics.CatalogImports.WithLabelValues("ok").Inc()
	metrics.CatalogImportedGifts.Set(float64(report.Imported))

	logger(ctx).Info("catalog replaced",
		slog.Int("imported", report.Imported),
		slog.Int("skipped", report.Skipped),
		slog.Int64(logx.FieldDurationMs, time.Since(started).Milliseconds()),
	)

	if s.notifier != nil {
		if err := s.notifier.CatalogReplaced(ctx, report); err != nil {
			logger(ctx).Warn("notify admins", logx.Error(err))
		}
	}

	return report, nil
}

// Page страница каталога для просмотра админом.
type Page struct {
	Gifts   []entity.Gift
	Number  int
	HasPrev bool
	HasNext bool
}

// List страница каталога по PageSize позиций. Номер с нуля.
func (s *Service) List(ctx context.Context, page int) (Page, error) {
	if page < 0 {
		return Page{}, domain.NewError(errcodes.InvalidPaging, "page must be non-negative")
	}

	total, err := s.gifts.Count(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("count gifts: %w", err)
	}

	gifts, err := s.gifts.List(ctx, PageSize, page*PageSize)
	if err != nil {
		return Page{}, fmt.Errorf("list gifts: %w", err)
	}

	return Page{
		Gifts:   gifts,
		Number:  page,
		HasPrev: page > 0,
		HasNext: int64((page+1)*PageSize) < total,
	}, nil
}
