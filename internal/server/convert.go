package server

import (
	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/value"
	"gift_bot/pkg/lox"
	"gift_bot/pkg/rest"
)

func newRESTGift(gift entity.Gift) rest.Gift {
	return rest.Gift{
		ID:                   gift.ID,
		Name:                 gift.Name,
		Description:          gift.Description,
		Category:             gift.Category,
		Subcategory:          gift.Subcategory,
		Link:                 gift.Link,
		AgeRange:             gift.AgeRange,
		Price:                gift.Price,
		City:                 gift.City,
		MarketplaceAvailable: gift.MarketplaceAvailable,
		TrendScore:           gift.TrendScore,
		Consumable:           gift.Consumable,
		CreativityScore:      gift.CreativityScore,
		Recipients:           lox.Map(gift.Recipients.Keys(), value.Recipient.String),
		ImageName:            gift.ImageName,
	}
}

func newRESTCatalogStats(stats entity.CatalogStats) rest.CatalogStats {
	return rest.CatalogStats{
		TotalUsers:      stats.TotalUsers,
		TotalSelections: stats.TotalSelections,
		TotalGifts:      stats.TotalGifts,
		TotalCategories: stats.TotalCategories,
		PopularCategories: lox.Map(stats.PopularCategories, func(c entity.CategoryUsage) rest.CategoryUsage {
			return rest.CategoryUsage{Category: c.Category, Count: c.Count}
		}),
		PriceDistribution: lox.Associate(stats.PriceDistribution, func(b entity.PriceBucket) (string, int64) {
			return b.Label, b.Count
		}),
		DailyActivity: lox.Map(stats.DailyActivity, func(d entity.DayCount) rest.DayCount {
			return rest.DayCount{Day: d.Day, Count: d.Count}
		}),
	}
}

func newRESTImportResult(outcome entity.ImportOutcome) rest.ImportResult {
	return rest.ImportResult{
		Queued:   outcome.Queued,
		TaskID:   outcome.TaskID,
		Imported: outcome.Report.Imported,
		Skipped:  outcome.Report.Skipped,
	}
}

func newRESTSelection(selection entity.Selection) rest.Selection {
	return rest.Selection{
		ID:          selection.ID,
		UserID:      selection.UserID,
		Recipient:   selection.Criteria.Recipient.String(),
		Age:         selection.Criteria.Age,
		Budget:      selection.Criteria.Budget,
		Marketplace: selection.Criteria.Marketplace,
		TrendScore:  selection.Criteria.TrendScore,
		Consumable:  selection.Criteria.Consumable,
		CreatedAt:   selection.CreatedAt,
	}
}

func newCriteria(request rest.MatchRequest) value.Criteria {
	return value.Criteria{
		Age:         request.Age,
		Recipient:   value.Recipient(request.Recipient),
		Budget:      request.Budget,
		Marketplace: request.Marketplace,
		TrendScore:  request.TrendScore,
		Consumable:  request.Consumable,
	}
}

func newRESTMatchCategory(group entity.CategoryGifts) rest.MatchCategory {
	return rest.MatchCategory{
		Category: group.Category,
		Gifts:    lox.Map(group.Gifts, newRESTGift),
	}
}
