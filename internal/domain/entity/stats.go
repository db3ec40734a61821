package entity

import "time"

// CatalogStats сводка для админов.
type CatalogStats struct {
	TotalUsers        int64           `json:"total_users"`
	TotalSelections   int64           `json:"total_selections"`
	TotalGifts        int64           `json:"total_gifts"`
	TotalCategories   int64           `json:"total_categories"`
	PopularCategories []CategoryUsage `json:"popular_categories"`
	PriceDistribution []PriceBucket   `json:"price_distribution"`
	DailyActivity     []DayCount      `json:"daily_activity"`
}

type CategoryUsage struct {
	Category string `json:"category" db:"category"`
	Count    int64  `json:"count" db:"usage_count"`
}

type PriceBucket struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"` // 0: без верхней границы
	Count int64   `json:"count"`
}

// DayCount число подборок за день, Day в формате 2006-01-02.
type DayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// DailySummary активность за день для отчёта администраторам.
type DailySummary struct {
	Day        time.Time `json:"day"`
	NewUsers   int64     `json:"new_users"`
	Selections int64     `json:"selections"`
}
