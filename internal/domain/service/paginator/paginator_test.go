package paginator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/service/paginator"
)

func booksAndToys() entity.CategorizedGifts {
	return entity.CategorizedGifts{
		{Category: "Books", Gifts: []entity.Gift{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}},
		{Category: "Toys", Gifts: []entity.Gift{{ID: 3, Name: "C", Price: 990}}},
	}
}

func TestPaginatorNavigation(t *testing.T) {
	rq := require.New(t)

	p := paginator.New(booksAndToys(), 0)

	page := p.Render()
	rq.Equal("Books", page.Category)
	rq.Len(page.Gifts, 2)
	rq.False(page.HasPrev)
	rq.True(page.HasNext)
	rq.Equal(2, page.Total)

	rq.Equal(1, p.Next())
	page = p.Render()
	rq.Equal("Toys", page.Category)
	rq.True(page.HasPrev)
	rq.False(page.HasNext)
	rq.Equal(paginator.GiftSummary{ID: 3, Name: "C", Price: 990}, page.Gifts[0])

	rq.Equal(1, p.Next())
	rq.Equal(0, p.Prev())
	rq.Equal(0, p.Prev())
}

func TestPaginatorClamp(t *testing.T) {
	testCases := []struct {
		name   string
		groups entity.CategorizedGifts
		index  int
		want   int
	}{
		{name: "Negative", groups: booksAndToys(), index: -3, want: 0},
		{name: "Past end", groups: booksAndToys(), index: 9, want: 1},
		{name: "Empty result", groups: nil, index: 2, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := paginator.New(tc.groups, tc.index)
			require.Equal(t, tc.want, p.Index())
		})
	}
}

func TestPaginatorEmptyRender(t *testing.T) {
	rq := require.New(t)

	p := paginator.New(nil, 0)
	rq.True(p.Empty())
	rq.Equal(paginator.Page{}, p.Render())
	rq.Equal(0, p.Next())
	rq.Equal(0, p.Prev())
}

func TestPaginatorGift(t *testing.T) {
	rq := require.New(t)

	p := paginator.New(booksAndToys(), 1)

	g, ok := p.Gift(2)
	rq.True(ok)
	rq.Equal("B", g.Name)
	rq.Equal(1, p.Index())

	_, ok = p.Gift(42)
	rq.False(ok)
}
