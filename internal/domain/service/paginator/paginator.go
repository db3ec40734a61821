package paginator

import "gift_bot/internal/domain/entity"

// GiftSummary данные подарка, которые нужны для показа в списке.
type GiftSummary struct {
	ID          int64
	Name        string
	Price       float64
	Description string
	Link        string
	ImageName   string
}

// Page одна категория результата с признаками навигации.
type Page struct {
	Category string
	Gifts    []GiftSummary
	Index    int
	Total    int
	HasPrev  bool
	HasNext  bool
}

// Paginator курсор по категориям результата подбора или истории.
type Paginator struct {
	groups entity.CategorizedGifts
	index  int
}

func New(groups entity.CategorizedGifts, index int) *Paginator {
	p := &Paginator{groups: groups}
	p.index = p.clamp(index)
	return p
}

func (p *Paginator) Index() int {
	return p.index
}

func (p *Paginator) Len() int {
	return len(p.groups)
}

func (p *Paginator) Empty() bool {
	return len(p.groups) == 0
}

// Next сдвигает курсор вперёд, но не дальше последней категории.
func (p *Paginator) Next() int {
	p.index = min(p.index+1, len(p.groups)-1)
	p.index = max(p.index, 0)
	return p.index
}

// Prev сдвигает курсор назад, но не раньше первой категории.
func (p *Paginator) Prev() int {
	p.index = max(p.index-1, 0)
	return p.index
}

func (p *Paginator) Render() Page {
	return p.RenderAt(p.index)
}

// RenderAt страница для категории i. Индекс вне диапазона обрезается.
func (p *Paginator) RenderAt(i int) Page {
	if len(p.groups) == 0 {
		return Page{}
	}

	i = p.clamp(i)
	group := p.groups[i]

	gifts := make([]GiftSummary, 0, len(group.Gifts))
	for _, g := range group.Gifts {
		gifts = append(gifts, Summarize(g))
	}

	return Page{
		Category: group.Category,
		Gifts:    gifts,
		Index:    i,
		Total:    len(p.groups),
		HasPrev:  i > 0,
		HasNext:  i < len(p.groups)-1,
	}
}

// Gift ищет подарок текущего результата по id для детального просмотра.
func (p *Paginator) Gift(id int64) (entity.Gift, bool) {
	for _, group := range p.groups {
		for _, g := range group.Gifts {
			if g.ID == id {
				return g, true
			}
		}
	}
	return entity.Gift{}, false
}

func (p *Paginator) clamp(i int) int {
	if i >= len(p.groups) {
		i = len(p.groups) - 1
	}
	return max(i, 0)
}

func Summarize(g entity.Gift) GiftSummary {
	return GiftSummary{
		ID:          g.ID,
		Name:        g.Name,
		Price:       g.Price,
		Description: g.Description,
		Link:        g.Link,
		ImageName:   g.ImageName,
	}
}
