package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gift_bot/internal/domain/value"
)

func TestWidenTrend(t *testing.T) {
	testCases := []struct {
		name  string
		score int
		want  value.TrendRange
	}{
		{name: "Middle", score: 7, want: value.TrendRange{From: 5, To: 9}},
		{name: "Clamped low", score: 1, want: value.TrendRange{From: 1, To: 3}},
		{name: "Clamped high", score: 10, want: value.TrendRange{From: 8, To: 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, value.WidenTrend(tc.score, 2))
		})
	}
}

func TestGiftFilterMatches(t *testing.T) {
	base := value.GiftAttrs{
		Recipients:  value.RecipientFlags{value.RecipientMother: true},
		Marketplace: true,
		Consumable:  false,
		TrendScore:  7,
	}

	testCases := []struct {
		name   string
		filter value.GiftFilter
		attrs  value.GiftAttrs
		want   bool
	}{
		{
			name:   "All predicates hold",
			filter: value.GiftFilter{Recipient: value.RecipientMother, Marketplace: true, Trend: value.ExactTrend(7)},
			attrs:  base,
			want:   true,
		},
		{
			name:   "Recipient flag missing",
			filter: value.GiftFilter{Recipient: value.RecipientFather, Marketplace: true, Trend: value.ExactTrend(7)},
			attrs:  base,
			want:   false,
		},
		{
			name:   "No recipient predicate",
			filter: value.GiftFilter{Marketplace: true, Trend: value.ExactTrend(7)},
			attrs:  base,
			want:   true,
		},
		{
			name:   "Marketplace mismatch",
			filter: value.GiftFilter{Recipient: value.RecipientMother, Marketplace: false, Trend: value.ExactTrend(7)},
			attrs:  base,
			want:   false,
		},
		{
			name:   "Consumable mismatch",
			filter: value.GiftFilter{Recipient: value.RecipientMother, Marketplace: true, Consumable: true, Trend: value.ExactTrend(7)},
			attrs:  base,
			want:   false,
		},
		{
			name:   "Trend outside range",
			filter: value.GiftFilter{Recipient: value.RecipientMother, Marketplace: true, Trend: value.TrendRange{From: 1, To: 6}},
			attrs:  base,
			want:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.filter.Matches(tc.attrs))
		})
	}
}

func TestRecipient(t *testing.T) {
	rq := require.New(t)

	rq.Len(value.Recipients, 9)
	for _, r := range value.Recipients {
		rq.True(r.Known())
		rq.NotEmpty(r.Column())
	}

	robot := value.Recipient("robot")
	rq.False(robot.Known())
	rq.Empty(robot.Column())
	rq.Equal("robot", robot.Title())

	flags := value.RecipientFlags{value.RecipientWoman: true, value.RecipientFriend: true, value.RecipientMan: false}
	rq.Equal([]string{"friend", "woman"}, flags.Strings())
}

func TestDraftCriteria(t *testing.T) {
	rq := require.New(t)

	var draft value.Draft
	_, ok := draft.Criteria()
	rq.False(ok)

	age, budget, trend := 30, 0.0, 7
	recipient := value.RecipientMother
	marketplace, consumable := true, false

	draft = value.Draft{
		Age: &age, Recipient: &recipient, Budget: &budget,
		Marketplace: &marketplace, TrendScore: &trend,
	}
	rq.False(draft.Complete())

	draft.Consumable = &consumable
	criteria, ok := draft.Criteria()
	rq.True(ok)
	rq.NoError(criteria.Validate())
	rq.Equal(value.Criteria{
		Age: 30, Recipient: value.RecipientMother, Budget: 0,
		Marketplace: true, TrendScore: 7, Consumable: false,
	}, criteria)

	criteria.TrendScore = 11
	rq.Error(criteria.Validate())
}
