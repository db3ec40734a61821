// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "time"

// Gift Подарок из каталога
type Gift struct {
	ID                   int64    `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Category             string   `json:"category"`
	Subcategory          string   `json:"subcategory,omitempty"`
	Link                 string   `json:"link,omitempty"`
	AgeRange             string   `json:"ageRange,omitempty"`
	Price                float64  `json:"price"`
	City                 string   `json:"city,omitempty"`
	MarketplaceAvailable bool     `json:"marketplaceAvailable"`
	TrendScore           int      `json:"trendScore"`
	Consumable           bool     `json:"consumable"`
	CreativityScore      int      `json:"creativityScore"`
	Recipients           []string `json:"recipients"`
	ImageName            string   `json:"imageName,omitempty"`
}

// CatalogStats Статистика каталога и подборок
type CatalogStats struct {
	TotalUsers        int64            `json:"totalUsers"`
	TotalSelections   int64            `json:"totalSelections"`
	TotalGifts        int64            `json:"totalGifts"`
	TotalCategories   int64            `json:"totalCategories"`
	PopularCategories []CategoryUsage  `json:"popularCategories"`
	PriceDistribution map[string]int64 `json:"priceDistribution"`
	DailyActivity     []DayCount       `json:"dailyActivity"`
}

// DayCount Число подборок за день
type DayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// CategoryUsage Сколько раз категория попадала в подборки
type CategoryUsage struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// ImportResult Результат загрузки каталога
type ImportResult struct {
	Queued   bool   `json:"queued"`
	TaskID   string `json:"taskId,omitempty"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}

// Selection Сохранённая подборка
type Selection struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Recipient   string    `json:"recipient"`
	Age         int       `json:"age"`
	Budget      float64   `json:"budget"`
	Marketplace bool      `json:"marketplace"`
	TrendScore  int       `json:"trendScore"`
	Consumable  bool      `json:"consumable"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string

// MatchRequest Критерии пробного подбора
type MatchRequest struct {
	Age         int     `json:"age" validate:"gte=0,lte=100"`
	Recipient   string  `json:"recipient" validate:"required"`
	Budget      float64 `json:"budget" validate:"gte=0"`
	Marketplace bool    `json:"marketplace"`
	TrendScore  int     `json:"trendScore" validate:"gte=1,lte=10"`
	Consumable  bool    `json:"consumable"`
}

// MatchCategory Категория результата подбора
type MatchCategory struct {
	Category string `json:"category"`
	Gifts    []Gift `json:"gifts"`
}
