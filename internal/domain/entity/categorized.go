package entity

import "sort"

// UncategorizedTitle подпись для подарков без категории в истории.
const UncategorizedTitle = "Без категории"

// CategoryGifts подарки одной категории в порядке выдачи.
type CategoryGifts struct {
	Category string
	Gifts    []Gift
}

// CategorizedGifts результат подбора: категории в порядке показа.
// Пустой срез означает, что ничего не найдено.
type CategorizedGifts []CategoryGifts

func (c CategorizedGifts) Empty() bool {
	return len(c) == 0
}

// Len количество подарков во всех категориях.
func (c CategorizedGifts) Len() int {
	n := 0
	for _, group := range c {
		n += len(group.Gifts)
	}
	return n
}

// GroupByCategory раскладывает подарки по категориям в порядке входа,
// оставляя не больше perCategory в каждой (0: без ограничения).
// Категории сортируются по имени, остаются первые maxCategories (0: все).
func GroupByCategory(gifts []Gift, perCategory, maxCategories int) CategorizedGifts {
	return groupBy(gifts, func(g Gift) string { return g.Category }, perCategory, maxCategories)
}

func groupBy(gifts []Gift, key func(Gift) string, perCategory, maxCategories int) CategorizedGifts {
	byCategory := make(map[string][]Gift)
	for _, g := range gifts {
		k := key(g)
		if perCategory > 0 && len(byCategory[k]) >= perCategory {
			continue
		}
		byCategory[k] = append(byCategory[k], g)
	}

	categories := make([]string, 0, len(byCategory))
	for k := range byCategory {
		categories = append(categories, k)
	}
	sort.Strings(categories)

	if maxCategories > 0 && len(categories) > maxCategories {
		categories = categories[:maxCategories]
	}

	out := make(CategorizedGifts, 0, len(categories))
	for _, k := range categories {
		out = append(out, CategoryGifts{Category: k, Gifts: byCategory[k]})
	}
	return out
}

// GroupByAssociation группирует подарки подборки по категории,
// сохранённой в связи. Если её нет, берётся категория подарка,
// затем UncategorizedTitle.
func GroupByAssociation(gifts []Gift, links []SelectionGift) CategorizedGifts {
	stored := make(map[int64]string, len(links))
	for _, l := range links {
		stored[l.GiftID] = l.Category
	}

	return groupBy(gifts, func(g Gift) string {
		if c := stored[g.ID]; c != "" {
			return c
		}
		if g.Category != "" {
			return g.Category
		}
		return UncategorizedTitle
	}, 0, 0)
}
