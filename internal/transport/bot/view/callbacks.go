package view

import (
	"strconv"
	"strings"
)

// Данные inline-кнопок.
const (
	CallbackNewSelection = "new_selection"
	CallbackHistory      = "history"
	CallbackSubscription = "subscription"
	CallbackMainMenu     = "main_menu"
	CallbackBackToMain   = "back_to_main"

	CallbackRecipientPrefix   = "recipient_"
	CallbackMarketplacePrefix = "marketplace_"
	CallbackTrendPrefix       = "trend_"
	CallbackConsumablePrefix  = "consumable_"

	CallbackNavPrev    = "nav_prev"
	CallbackNavNext    = "nav_next"
	CallbackNavBack    = "nav_back"
	CallbackGiftPrefix = "gift_"

	CallbackHistoryItemPrefix = "view_hist_"

	CallbackAdminMenu       = "admin_menu"
	CallbackUploadDatabase  = "upload_database"
	CallbackViewCatalog     = "view_catalog"
	CallbackCatalogGift     = "view_gift_"
	CallbackPrevCatalogPage = "prev_catalog_page"
	CallbackNextCatalogPage = "next_catalog_page"
	CallbackAdminStats      = "admin_stats"

	answerYes = "yes"
	answerNo  = "no"
)

// ParseID достаёт числовой id из данных вида <prefix><id>.
func ParseID(data, prefix string) (int64, bool) {
	raw, ok := strings.CutPrefix(data, prefix)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// ParseYesNo разбирает ответ кнопок Да/Нет.
func ParseYesNo(data, prefix string) (bool, bool) {
	switch strings.TrimPrefix(data, prefix) {
	case answerYes:
		return true, true
	case answerNo:
		return false, true
	default:
		return false, false
	}
}

// ParseTrend оценка трендовости из trend_<n>. Диапазон проверяет сессия.
func ParseTrend(data string) (int, bool) {
	raw, ok := strings.CutPrefix(data, CallbackTrendPrefix)
	if !ok {
		return 0, false
	}

	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return score, true
}
