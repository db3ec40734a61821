package catalog_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gift_bot/internal/domain"
	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/service/catalog"
	"gift_bot/pkg/errcodes"
)

type fakeGifts struct {
	gifts    []entity.Gift
	gets     int
	replaced int
}

func (f *fakeGifts) GetByID(_ context.Context, id int64) (*entity.Gift, error) {
	f.gets++
	for _, g := range f.gifts {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, domain.NewError(errcodes.GiftNotFound, "gift not found")
}

func (f *fakeGifts) ReplaceAll(_ context.Context, gifts []entity.Gift) error {
	f.replaced++
	f.gifts = nil
	for i, g := range gifts {
		g.ID = int64(100*f.replaced + i)
		f.gifts = append(f.gifts, g)
	}
	return nil
}

func (f *fakeGifts) List(_ context.Context, limit, offset int) ([]entity.Gift, error) {
	if offset >= len(f.gifts) {
		return nil, nil
	}
	return f.gifts[offset:min(offset+limit, len(f.gifts))], nil
}

func (f *fakeGifts) Count(context.Context) (int64, error) {
	return int64(len(f.gifts)), nil
}

type fakeParser struct {
	gifts   []entity.Gift
	skipped int
	err     error
}

func (p fakeParser) Parse(_ context.Context, r io.Reader) ([]entity.Gift, int, error) {
	_, _ = io.ReadAll(r)
	return p.gifts, p.skipped, p.err
}

type fakeNotifier struct {
	reports []entity.ImportReport
}

func (n *fakeNotifier) CatalogReplaced(_ context.Context, report entity.ImportReport) error {
	n.reports = append(n.reports, report)
	return nil
}

type fakeStats struct {
	times []time.Time
}

func (s fakeStats) Totals(context.Context) (entity.CatalogStats, error) {
	return entity.CatalogStats{TotalUsers: 3, TotalSelections: 5, TotalGifts: 8, TotalCategories: 2}, nil
}

func (s fakeStats) PopularCategories(context.Context, int) ([]entity.CategoryUsage, error) {
	return []entity.CategoryUsage{{Category: "Books", Count: 4}}, nil
}

func (s fakeStats) CountByPrice(_ context.Context, minPrice, _ float64) (int64, error) {
	return int64(minPrice / 1000), nil
}

func (s fakeStats) SelectionTimes(context.Context, time.Time) ([]time.Time, error) {
	return s.times, nil
}

func namedGifts(n int) []entity.Gift {
	gifts := make([]entity.Gift, n)
	for i := range gifts {
		gifts[i] = entity.Gift{Name: strings.Repeat("x", i+1), Category: "Books", TrendScore: 5}
	}
	return gifts
}

func TestImportReplacesAndFlushesCache(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := &fakeGifts{gifts: []entity.Gift{{ID: 1, Name: "old"}}}
	notifier := &fakeNotifier{}
	svc := catalog.NewService(repo, fakeStats{}, fakeParser{gifts: namedGifts(2), skipped: 1}, notifier)

	g, err := svc.Get(ctx, 1)
	rq.NoError(err)
	rq.Equal("old", g.Name)
	_, err = svc.Get(ctx, 1)
	rq.NoError(err)
	rq.Equal(1, repo.gets)

	report, err := svc.Import(ctx, strings.NewReader("xlsx"))
	rq.NoError(err)
	rq.Equal(entity.ImportReport{Imported: 2, Skipped: 1}, report)
	rq.Equal([]entity.ImportReport{report}, notifier.reports)

	_, err = svc.Get(ctx, 1)
	code, _ := domain.GetCode(err)
	rq.Equal(errcodes.GiftNotFound, code)
	rq.Equal(2, repo.gets)
}

func TestImportErrors(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := &fakeGifts{}

	_, err := catalog.NewService(repo, fakeStats{}, fakeParser{}, nil).Import(ctx, strings.NewReader(""))
	code, _ := domain.GetCode(err)
	rq.Equal(errcodes.EmptyCatalogFile, code)

	parseErr := errors.New("broken zip")
	_, err = catalog.NewService(repo, fakeStats{}, fakeParser{err: parseErr}, nil).Import(ctx, strings.NewReader(""))
	rq.ErrorIs(err, parseErr)
	rq.Zero(repo.replaced)
}

func TestList(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := &fakeGifts{}
	svc := catalog.NewService(repo, fakeStats{}, fakeParser{gifts: namedGifts(8)}, nil)
	_, err := svc.Import(ctx, strings.NewReader(""))
	rq.NoError(err)

	page, err := svc.List(ctx, 0)
	rq.NoError(err)
	rq.Len(page.Gifts, catalog.PageSize)
	rq.False(page.HasPrev)
	rq.True(page.HasNext)

	page, err = svc.List(ctx, 1)
	rq.NoError(err)
	rq.Len(page.Gifts, 2)
	rq.True(page.HasPrev)
	rq.False(page.HasNext)

	_, err = svc.List(ctx, -1)
	code, _ := domain.GetCode(err)
	rq.Equal(errcodes.InvalidPaging, code)
}

func TestStats(t *testing.T) {
	rq := require.New(t)

	now := time.Now().UTC()
	svc := catalog.NewService(&fakeGifts{}, fakeStats{times: []time.Time{now, now, now.AddDate(0, 0, -1), now.AddDate(0, 0, -30)}}, fakeParser{}, nil)

	stats, err := svc.Stats(context.Background())
	rq.NoError(err)
	rq.Equal(int64(8), stats.TotalGifts)
	rq.Len(stats.PriceDistribution, 4)
	rq.Equal("10000+", stats.PriceDistribution[3].Label)
	rq.Equal(int64(10), stats.PriceDistribution[3].Count)
	rq.Len(stats.DailyActivity, 7)
	rq.Equal(int64(2), stats.DailyActivity[6].Count)
	rq.Equal(int64(1), stats.DailyActivity[5].Count)
}

func TestDailyActivity(t *testing.T) {
	rq := require.New(t)

	since := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{
		time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 3, 23, 59, 0, 0, time.UTC),
		time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	got := catalog.DailyActivity(times, since, 3)
	rq.Equal([]entity.DayCount{
		{Day: "2025-03-01", Count: 1},
		{Day: "2025-03-02", Count: 0},
		{Day: "2025-03-03", Count: 1},
	}, got)
}
