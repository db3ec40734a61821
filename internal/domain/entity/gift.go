package entity

import (
	"time"

	"gift_bot/internal/domain/value"
)

// Gift позиция каталога. Создаётся и заменяется только загрузкой каталога.
type Gift struct {
	ID                   int64                `json:"id" db:"id"`
	Name                 string               `json:"name" db:"name"`
	Description          string               `json:"description" db:"description"`
	Category             string               `json:"category" db:"category"`
	Subcategory          string               `json:"subcategory,omitempty" db:"subcategory"`
	Link                 string               `json:"link,omitempty" db:"link"`
	AgeRange             string               `json:"age_range,omitempty" db:"age_range"`
	Price                float64              `json:"price" db:"price"`
	City                 string               `json:"city,omitempty" db:"city"`
	MarketplaceAvailable bool                 `json:"marketplace_available" db:"marketplace_available"`
	TrendScore           int                  `json:"trend_score" db:"trend_score"`
	Consumable           bool                 `json:"consumable" db:"consumable"`
	CreativityScore      int                  `json:"creativity_score" db:"creativity_score"`
	Recipients           value.RecipientFlags `json:"recipients"`
	ImageName            string               `json:"image_name,omitempty" db:"image_name"`
	CreatedAt            time.Time            `json:"created_at" db:"created_at"`
}

// Attrs поля, по которым подарок фильтруется при подборе.
func (g Gift) Attrs() value.GiftAttrs {
	return value.GiftAttrs{
		Recipients:  g.Recipients,
		Marketplace: g.MarketplaceAvailable,
		Consumable:  g.Consumable,
		TrendScore:  g.TrendScore,
	}
}
