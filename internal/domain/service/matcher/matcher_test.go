package matcher_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/service/matcher"
	"gift_bot/internal/domain/value"
)

type recordingFinder struct {
	catalog matcher.SnapshotFinder
	filters []value.GiftFilter
	err     error
}

func (f *recordingFinder) Find(ctx context.Context, filter value.GiftFilter) ([]entity.Gift, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	return f.catalog.Find(ctx, filter)
}

func motherCriteria() value.Criteria {
	return value.Criteria{
		Age:         50,
		Recipient:   value.RecipientMother,
		Budget:      0,
		Marketplace: true,
		TrendScore:  7,
		Consumable:  false,
	}
}

func cosmetics(trend int) entity.Gift {
	return entity.Gift{
		ID:                   1,
		Name:                 "Набор кремов",
		Category:             "Cosmetics",
		MarketplaceAvailable: true,
		Consumable:           false,
		TrendScore:           trend,
		Recipients:           value.RecipientFlags{value.RecipientMother: true},
	}
}

func TestMatchExactTrend(t *testing.T) {
	rq := require.New(t)

	finder := &recordingFinder{catalog: matcher.SnapshotFinder{cosmetics(7)}}

	got, err := matcher.New(finder).Match(context.Background(), motherCriteria())
	rq.NoError(err)
	rq.Equal(entity.CategorizedGifts{
		{Category: "Cosmetics", Gifts: []entity.Gift{cosmetics(7)}},
	}, got)
	rq.Len(finder.filters, 1)
}

func TestMatchFallbackExcludesFarTrend(t *testing.T) {
	rq := require.New(t)

	finder := &recordingFinder{catalog: matcher.SnapshotFinder{cosmetics(4)}}

	got, err := matcher.New(finder).Match(context.Background(), motherCriteria())
	rq.NoError(err)
	rq.True(got.Empty())

	rq.Len(finder.filters, 2)
	rq.Equal(value.ExactTrend(7), finder.filters[0].Trend)
	rq.Equal(value.TrendRange{From: 5, To: 9}, finder.filters[1].Trend)
	rq.Equal(finder.filters[0].Recipient, finder.filters[1].Recipient)
	rq.Equal(finder.filters[0].Marketplace, finder.filters[1].Marketplace)
	rq.Equal(finder.filters[0].Consumable, finder.filters[1].Consumable)
}

func TestMatchFallbackFindsNearTrend(t *testing.T) {
	rq := require.New(t)

	finder := &recordingFinder{catalog: matcher.SnapshotFinder{cosmetics(9)}}

	got, err := matcher.New(finder).Match(context.Background(), motherCriteria())
	rq.NoError(err)
	rq.Equal(1, got.Len())
	rq.Len(finder.filters, 2)
}

func TestMatchUnknownRecipient(t *testing.T) {
	rq := require.New(t)

	father := cosmetics(7)
	father.ID = 2
	father.Recipients = value.RecipientFlags{value.RecipientFather: true}

	criteria := motherCriteria()
	criteria.Recipient = "robot"

	finder := &recordingFinder{catalog: matcher.SnapshotFinder{cosmetics(7), father}}

	got, err := matcher.New(finder).Match(context.Background(), criteria)
	rq.NoError(err)
	rq.Empty(finder.filters[0].Recipient)
	rq.Equal(2, got.Len())
}

func TestMatchFinderError(t *testing.T) {
	rq := require.New(t)

	finder := &recordingFinder{err: errors.New("db down")}

	_, err := matcher.New(finder).Match(context.Background(), motherCriteria())
	rq.ErrorContains(err, "db down")
}

func TestMatchCaps(t *testing.T) {
	rq := require.New(t)

	var catalog matcher.SnapshotFinder
	id := int64(0)
	for _, category := range []string{"Toys", "Books", "Art", "Cosmetics", "Games"} {
		for i := 0; i < 4; i++ {
			id++
			g := cosmetics(7)
			g.ID = id
			g.Name = fmt.Sprintf("%s-%d", category, i)
			g.Category = category
			catalog = append(catalog, g)
		}
	}

	criteria := motherCriteria()

	got, err := matcher.New(catalog).Match(context.Background(), criteria)
	rq.NoError(err)
	rq.Len(got, matcher.MaxCategories)
	rq.Equal([]string{"Art", "Books", "Cosmetics"}, []string{got[0].Category, got[1].Category, got[2].Category})

	filter := matcher.BuildFilter(context.Background(), criteria)
	for _, group := range got {
		rq.Len(group.Gifts, matcher.PerCategory)
		rq.Less(group.Gifts[0].ID, group.Gifts[1].ID)
		for _, g := range group.Gifts {
			rq.Equal(group.Category, g.Category)
			rq.True(filter.Matches(g.Attrs()))
		}
	}

	rq.Equal(got, matcher.MatchSnapshot(context.Background(), criteria, catalog))
}

func TestMatchSnapshot(t *testing.T) {
	testCases := []struct {
		name     string
		criteria func() value.Criteria
		catalog  []entity.Gift
		want     int
	}{
		{
			name:     "Primary match",
			criteria: motherCriteria,
			catalog:  []entity.Gift{cosmetics(7)},
			want:     1,
		},
		{
			name:     "Trend too far",
			criteria: motherCriteria,
			catalog:  []entity.Gift{cosmetics(4)},
			want:     0,
		},
		{
			name: "Marketplace mismatch",
			criteria: func() value.Criteria {
				c := motherCriteria()
				c.Marketplace = false
				return c
			},
			catalog: []entity.Gift{cosmetics(7)},
			want:    0,
		},
		{
			name: "Fallback clamped at upper bound",
			criteria: func() value.Criteria {
				c := motherCriteria()
				c.TrendScore = 10
				return c
			},
			catalog: []entity.Gift{cosmetics(8)},
			want:    1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := matcher.MatchSnapshot(context.Background(), tc.criteria(), tc.catalog)
			require.Equal(t, tc.want, got.Len())
		})
	}
}
