package entity

import (
	"time"

	"gift_bot/internal/domain/value"
)

// Selection сохранённый результат подбора. После создания не меняется.
type Selection struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	Criteria  value.Criteria `json:"criteria"`
	CreatedAt time.Time      `json:"created_at"`
}

// SelectionGift связь подборки с предложенным подарком.
type SelectionGift struct {
	SelectionID int64  `json:"selection_id" db:"selection_id"`
	GiftID      int64  `json:"gift_id" db:"gift_id"`
	Category    string `json:"category" db:"category"`
}
