package persistence

import (
	"time"

	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/value"
)

const giftColumns = `id, name, description, category, subcategory, link, age_range, price, city,
	marketplace_available, trend_score, consumable, creativity_score,
	for_friend, for_wife, for_sister, for_mother, for_husband, for_brother,
	for_father, for_man, for_woman, image_name, created_at`

// giftSchema строка таблицы gifts.
type giftSchema struct {
	ID                   int64     `db:"id"`
	Name                 string    `db:"name"`
	Description          string    `db:"description"`
	Category             string    `db:"category"`
	Subcategory          string    `db:"subcategory"`
	Link                 string    `db:"link"`
	AgeRange             string    `db:"age_range"`
	Price                float64   `db:"price"`
	City                 string    `db:"city"`
	MarketplaceAvailable bool      `db:"marketplace_available"`
	TrendScore           int       `db:"trend_score"`
	Consumable           bool      `db:"consumable"`
	CreativityScore      int       `db:"creativity_score"`
	ForFriend            bool      `db:"for_friend"`
	ForWife              bool      `db:"for_wife"`
	ForSister            bool      `db:"for_sister"`
	ForMother            bool      `db:"for_mother"`
	ForHusband           bool      `db:"for_husband"`
	ForBrother           bool      `db:"for_brother"`
	ForFather            bool      `db:"for_father"`
	ForMan               bool      `db:"for_man"`
	ForWoman             bool      `db:"for_woman"`
	ImageName            string    `db:"image_name"`
	CreatedAt            time.Time `db:"created_at"`
}

func fromGift(g *entity.Gift) *giftSchema {
	r := g.Recipients

	return &giftSchema{
		ID:                   g.ID,
		Name:                 g.Name,
		Description:          g.Description,
		Category:             g.Category,
		Subcategory:          g.Subcategory,
		Link:                 g.Link,
		AgeRange:             g.AgeRange,
		Price:                g.Price,
		City:                 g.City,
		MarketplaceAvailable: g.MarketplaceAvailable,
		TrendScore:           g.TrendScore,
		Consumable:           g.Consumable,
		CreativityScore:      g.CreativityScore,
		ForFriend:            r.Has(value.RecipientFriend),
		ForWife:              r.Has(value.RecipientWife),
		ForSister:            r.Has(value.RecipientSister),
		ForMother:            r.Has(value.RecipientMother),
		ForHusband:           r.Has(value.RecipientHusband),
		ForBrother:           r.Has(value.RecipientBrother),
		ForFather:            r.Has(value.RecipientFather),
		ForMan:               r.Has(value.RecipientMan),
		ForWoman:             r.Has(value.RecipientWoman),
		ImageName:            g.ImageName,
		CreatedAt:            g.CreatedAt,
	}
}

func (s *giftSchema) toDomain() entity.Gift {
	flags := value.RecipientFlags{}
	for r, ok := range map[value.Recipient]bool{
		value.RecipientFriend:  s.ForFriend,
		value.RecipientWife:    s.ForWife,
		value.RecipientSister:  s.ForSister,
		value.RecipientMother:  s.ForMother,
		value.RecipientHusband: s.ForHusband,
		value.RecipientBrother: s.ForBrother,
		value.RecipientFather:  s.ForFather,
		value.RecipientMan:     s.ForMan,
		value.RecipientWoman:   s.ForWoman,
	} {
		if ok {
			flags[r] = true
		}
	}

	return entity.Gift{
		ID:                   s.ID,
		Name:                 s.Name,
		Description:          s.Description,
		Category:             s.Category,
		Subcategory:          s.Subcategory,
		Link:                 s.Link,
		AgeRange:             s.AgeRange,
		Price:                s.Price,
		City:                 s.City,
		MarketplaceAvailable: s.MarketplaceAvailable,
		TrendScore:           s.TrendScore,
		Consumable:           s.Consumable,
		CreativityScore:      s.CreativityScore,
		Recipients:           flags,
		ImageName:            s.ImageName,
		CreatedAt:            s.CreatedAt,
	}
}

// selectionSchema строка таблицы selections.
type selectionSchema struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	Age         int       `db:"age"`
	Recipient   string    `db:"recipient_type"`
	Budget      float64   `db:"budget"`
	Marketplace bool      `db:"marketplace"`
	TrendScore  int       `db:"trend_score"`
	Consumable  bool      `db:"consumable"`
	CreatedAt   time.Time `db:"created_at"`
}

func fromSelection(s *entity.Selection) *selectionSchema {
	return &selectionSchema{
		ID:          s.ID,
		UserID:      s.UserID,
		Age:         s.Criteria.Age,
		Recipient:   s.Criteria.Recipient.String(),
		Budget:      s.Criteria.Budget,
		Marketplace: s.Criteria.Marketplace,
		TrendScore:  s.Criteria.TrendScore,
		Consumable:  s.Criteria.Consumable,
		CreatedAt:   s.CreatedAt,
	}
}

func (s *selectionSchema) toDomain() entity.Selection {
	return entity.Selection{
		ID:     s.ID,
		UserID: s.UserID,
		Criteria: value.Criteria{
			Age:         s.Age,
			Recipient:   value.Recipient(s.Recipient),
			Budget:      s.Budget,
			Marketplace: s.Marketplace,
			TrendScore:  s.TrendScore,
			Consumable:  s.Consumable,
		},
		CreatedAt: s.CreatedAt,
	}
}
