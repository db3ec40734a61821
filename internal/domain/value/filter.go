package value

// TrendRange границы trend_score включительно.
type TrendRange struct {
	From int
	To   int
}

func (r TrendRange) Contains(score int) bool {
	return score >= r.From && score <= r.To
}

// GiftFilter набор предикатов для выборки каталога.
// Пустой Recipient означает, что фильтр по получателю не применяется.
type GiftFilter struct {
	Recipient   Recipient
	Marketplace bool
	Consumable  bool
	Trend       TrendRange
}

// ExactTrend фильтр с точным совпадением trend_score.
func ExactTrend(score int) TrendRange {
	return TrendRange{From: score, To: score}
}

// WidenTrend диапазон score±delta, обрезанный до [1,10].
func WidenTrend(score, delta int) TrendRange {
	return TrendRange{
		From: max(MinTrendScore, score-delta),
		To:   min(MaxTrendScore, score+delta),
	}
}

// GiftAttrs поля подарка, по которым работает фильтр.
type GiftAttrs struct {
	Recipients  RecipientFlags
	Marketplace bool
	Consumable  bool
	TrendScore  int
}

func (f GiftFilter) Matches(g GiftAttrs) bool {
	if f.Recipient != "" && !g.Recipients.Has(f.Recipient) {
		return false
	}
	if g.Marketplace != f.Marketplace || g.Consumable != f.Consumable {
		return false
	}
	return f.Trend.Contains(g.TrendScore)
}
