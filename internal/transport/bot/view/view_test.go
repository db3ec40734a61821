package view_test

import (
	"strings"
	"testing"
	"time"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/service/catalog"
	"gift_bot/internal/domain/service/paginator"
	"gift_bot/internal/domain/value"
	"gift_bot/internal/transport/bot/view"
)

func callbacks(kb *telego.InlineKeyboardMarkup) []string {
	var out []string
	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			out = append(out, b.CallbackData)
		}
	}
	return out
}

func TestResultsKeyboardNavigation(t *testing.T) {
	t.Parallel()

	gifts := []paginator.GiftSummary{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

	testCases := []struct {
		name string
		page paginator.Page
		want []string
	}{
		{
			name: "first of two",
			page: paginator.Page{Category: "Books", Gifts: gifts, Index: 0, Total: 2, HasNext: true},
			want: []string{"gift_1", "gift_2", view.CallbackNavNext, view.CallbackMainMenu},
		},
		{
			name: "last of two",
			page: paginator.Page{Category: "Toys", Gifts: gifts[:1], Index: 1, Total: 2, HasPrev: true},
			want: []string{"gift_1", view.CallbackNavPrev, view.CallbackMainMenu},
		},
		{
			name: "middle",
			page: paginator.Page{Category: "Art", Index: 1, Total: 3, HasPrev: true, HasNext: true},
			want: []string{view.CallbackNavPrev, view.CallbackNavNext, view.CallbackMainMenu},
		},
		{
			name: "single",
			page: paginator.Page{Category: "Art", Total: 1},
			want: []string{view.CallbackMainMenu},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			rq.Equal(tc.want, callbacks(view.ResultsKeyboard(tc.page)))
		})
	}
}

func TestResultsScreen(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	page := paginator.Page{
		Category: "Books & Co",
		Gifts: []paginator.GiftSummary{
			{ID: 1, Name: "Book <1>", Link: "https://example.com/1", ImageName: "book"},
			{ID: 2, Name: "Poster"},
		},
		Index:   0,
		Total:   2,
		HasNext: true,
	}

	screen := view.ResultsScreen(page, false)

	rq.Contains(screen.Text, "Отлично! Мы подобрали для вас подарки в 2 категориях.")
	rq.Contains(screen.Text, "Сейчас: <b>Books &amp; Co</b>")
	rq.Contains(screen.Text, `1) <a href="https://example.com/1">Book &lt;1&gt;</a>`)
	rq.Contains(screen.Text, "2) Poster")
	rq.True(strings.HasSuffix(screen.Text, "Страница 1 из 2"))
	rq.Equal([]string{"book"}, screen.Images)

	history := view.ResultsScreen(page, true)
	rq.True(strings.HasPrefix(history.Text, "Мы подобрали"))
}

func TestCategoryWord(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	rq.Equal("категории", view.CategoryWord(1))
	rq.Equal("категориях", view.CategoryWord(2))
	rq.Equal("категориях", view.CategoryWord(3))
	rq.Equal("категориях", view.CategoryWord(11))
	rq.Equal("категории", view.CategoryWord(21))
}

func TestRecipientKeyboard(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	kb := view.RecipientKeyboard()

	rq.Len(kb.InlineKeyboard, 3)
	for _, row := range kb.InlineKeyboard {
		rq.Len(row, 3)
	}

	rq.Equal("recipient_friend", kb.InlineKeyboard[0][0].CallbackData)
	rq.Equal("Подруге", kb.InlineKeyboard[0][0].Text)
	rq.Equal("recipient_woman", kb.InlineKeyboard[2][2].CallbackData)
}

func TestTrendKeyboard(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	data := callbacks(view.TrendKeyboard())

	rq.Len(data, 10)
	rq.Equal("trend_1", data[0])
	rq.Equal("trend_10", data[9])

	for _, d := range data {
		score, ok := view.ParseTrend(d)
		rq.True(ok)
		rq.GreaterOrEqual(score, value.MinTrendScore)
		rq.LessOrEqual(score, value.MaxTrendScore)
	}
}

func TestMainMenuKeyboard(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	rq.NotContains(callbacks(view.MainMenuKeyboard(false)), view.CallbackAdminMenu)
	rq.Contains(callbacks(view.MainMenuKeyboard(true)), view.CallbackAdminMenu)
}

func TestParseCallbacks(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		data   string
		prefix string
		id     int64
		ok     bool
	}{
		{data: "gift_42", prefix: view.CallbackGiftPrefix, id: 42, ok: true},
		{data: "view_hist_7", prefix: view.CallbackHistoryItemPrefix, id: 7, ok: true},
		{data: "view_gift_3", prefix: view.CallbackCatalogGift, id: 3, ok: true},
		{data: "gift_", prefix: view.CallbackGiftPrefix},
		{data: "gift_-1", prefix: view.CallbackGiftPrefix},
		{data: "gift_x", prefix: view.CallbackGiftPrefix},
		{data: "nav_next", prefix: view.CallbackGiftPrefix},
	}

	for _, tc := range testCases {
		t.Run(tc.data, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			id, ok := view.ParseID(tc.data, tc.prefix)
			rq.Equal(tc.ok, ok)
			rq.Equal(tc.id, id)
		})
	}

	t.Run("yes no", func(t *testing.T) {
		t.Parallel()
		rq := require.New(t)

		v, ok := view.ParseYesNo("marketplace_yes", view.CallbackMarketplacePrefix)
		rq.True(ok)
		rq.True(v)

		v, ok = view.ParseYesNo("consumable_no", view.CallbackConsumablePrefix)
		rq.True(ok)
		rq.False(v)

		_, ok = view.ParseYesNo("consumable_maybe", view.CallbackConsumablePrefix)
		rq.False(ok)
	})
}

func TestHistoryScreen(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	empty := view.HistoryScreen(nil, false)
	rq.Equal(view.HistoryEmpty, empty.Text)

	selections := []entity.Selection{{
		ID:        5,
		Criteria:  value.Criteria{Recipient: value.RecipientMother},
		CreatedAt: time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC),
	}}

	screen := view.HistoryScreen(selections, false)
	rq.Equal(view.HistoryChoose, screen.Text)
	rq.Equal("🎁 Маме (08.03.2024)", screen.Keyboard.InlineKeyboard[0][0].Text)
	rq.Equal("view_hist_5", screen.Keyboard.InlineKeyboard[0][0].CallbackData)
}

func TestCatalogScreen(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	rq.Equal(view.CatalogEmpty, view.CatalogScreen(catalog.Page{}).Text)

	page := catalog.Page{
		Gifts:   []entity.Gift{{ID: 1, Name: "Mug", Price: 500}},
		Number:  1,
		HasPrev: true,
	}

	data := callbacks(view.CatalogScreen(page).Keyboard)
	rq.Equal([]string{"view_gift_1", view.CallbackPrevCatalogPage, view.CallbackAdminMenu}, data)
}

func TestGiftScreen(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	g := entity.Gift{
		ID:          1,
		Name:        "Candle",
		Description: strings.Repeat("я", 800),
		Link:        "https://example.com/c",
		ImageName:   "candle",
	}

	screen := view.GiftScreen(g)

	rq.Contains(screen.Text, "<b>Candle</b>")
	rq.Contains(screen.Text, strings.Repeat("я", 697)+"...")
	rq.NotContains(screen.Text, strings.Repeat("я", 698))
	rq.Contains(screen.Text, `<a href="https://example.com/c">Подробнее</a>`)
	rq.Equal([]string{"candle"}, screen.Images)
	rq.Equal([]string{view.CallbackNavBack, view.CallbackMainMenu}, callbacks(screen.Keyboard))
}
