package view

import (
	"fmt"
	"strconv"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/samber/lo"

	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/service/catalog"
	"gift_bot/internal/domain/service/paginator"
	"gift_bot/internal/domain/value"
)

const (
	recipientsPerRow = 3
	trendPerRow      = 5
	historyDate      = "02.01.2006"
)

func button(text, data string) telego.InlineKeyboardButton {
	return tu.InlineKeyboardButton(text).WithCallbackData(data)
}

func MainMenuKeyboard(isAdmin bool) *telego.InlineKeyboardMarkup {
	rows := [][]telego.InlineKeyboardButton{
		tu.InlineKeyboardRow(button(ButtonNewSelection, CallbackNewSelection)),
		tu.InlineKeyboardRow(button(ButtonHistory, CallbackHistory)),
		tu.InlineKeyboardRow(button(ButtonSubscription, CallbackSubscription)),
	}

	if isAdmin {
		rows = append(rows, tu.InlineKeyboardRow(button(ButtonAdminMenu, CallbackAdminMenu)))
	}

	return tu.InlineKeyboard(rows...)
}

func AdminMenuKeyboard() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(button(ButtonUpload, CallbackUploadDatabase)),
		tu.InlineKeyboardRow(button(ButtonCatalog, CallbackViewCatalog)),
		tu.InlineKeyboardRow(button(ButtonStats, CallbackAdminStats)),
		tu.InlineKeyboardRow(button(ButtonToMain, CallbackBackToMain)),
	)
}

// ContactKeyboard обычная клавиатура с запросом телефона.
func ContactKeyboard() *telego.ReplyKeyboardMarkup {
	return tu.Keyboard(
		tu.KeyboardRow(tu.KeyboardButton(ShareContact).WithRequestContact()),
	).WithResizeKeyboard().WithOneTimeKeyboard()
}

// RecipientKeyboard девять получателей по три в ряд.
func RecipientKeyboard() *telego.InlineKeyboardMarkup {
	buttons := lo.Map(value.Recipients, func(r value.Recipient, _ int) telego.InlineKeyboardButton {
		return button(r.Title(), CallbackRecipientPrefix+r.String())
	})

	return tu.InlineKeyboard(lo.Chunk(buttons, recipientsPerRow)...)
}

func YesNoKeyboard(prefix string) *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(tu.InlineKeyboardRow(
		button(ButtonYes, prefix+answerYes),
		button(ButtonNo, prefix+answerNo),
	))
}

// TrendKeyboard шкала 1..10 в два ряда.
func TrendKeyboard() *telego.InlineKeyboardMarkup {
	scores := lo.RangeFrom(value.MinTrendScore, value.MaxTrendScore-value.MinTrendScore+1)
	buttons := lo.Map(scores, func(score, _ int) telego.InlineKeyboardButton {
		return button(strconv.Itoa(score), CallbackTrendPrefix+strconv.Itoa(score))
	})

	return tu.InlineKeyboard(lo.Chunk(buttons, trendPerRow)...)
}

// ResultsKeyboard кнопка на каждый подарок категории, навигация и выход в меню.
func ResultsKeyboard(page paginator.Page) *telego.InlineKeyboardMarkup {
	rows := make([][]telego.InlineKeyboardButton, 0, len(page.Gifts)+2)
	for _, g := range page.Gifts {
		rows = append(rows, tu.InlineKeyboardRow(button(g.Name, CallbackGiftPrefix+strconv.FormatInt(g.ID, 10))))
	}

	var nav []telego.InlineKeyboardButton
	if page.HasPrev {
		nav = append(nav, button(ButtonPrev, CallbackNavPrev))
	}
	if page.HasNext {
		nav = append(nav, button(ButtonNext, CallbackNavNext))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, tu.InlineKeyboardRow(button(ButtonHome, CallbackMainMenu)))

	return tu.InlineKeyboard(rows...)
}

func GiftKeyboard() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(button(ButtonBack, CallbackNavBack)),
		tu.InlineKeyboardRow(button(ButtonMenu, CallbackMainMenu)),
	)
}

// HistoryKeyboard подборки пользователя: получатель и дата.
func HistoryKeyboard(selections []entity.Selection) *telego.InlineKeyboardMarkup {
	rows := make([][]telego.InlineKeyboardButton, 0, len(selections)+1)
	for _, s := range selections {
		text := fmt.Sprintf("🎁 %s (%s)", s.Criteria.Recipient.Title(), s.CreatedAt.Format(historyDate))
		rows = append(rows, tu.InlineKeyboardRow(
			button(text, CallbackHistoryItemPrefix+strconv.FormatInt(s.ID, 10)),
		))
	}

	rows = append(rows, tu.InlineKeyboardRow(button(ButtonHome, CallbackMainMenu)))

	return tu.InlineKeyboard(rows...)
}

func HistoryGoneKeyboard() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(button(ButtonToHistory, CallbackHistory)),
		tu.InlineKeyboardRow(button(ButtonHome, CallbackMainMenu)),
	)
}

// CatalogKeyboard страница каталога для админа.
func CatalogKeyboard(page catalog.Page) *telego.InlineKeyboardMarkup {
	rows := make([][]telego.InlineKeyboardButton, 0, len(page.Gifts)+2)
	for _, g := range page.Gifts {
		text := fmt.Sprintf(CatalogItem, g.Name, FormatPrice(g.Price))
		rows = append(rows, tu.InlineKeyboardRow(
			button(text, CallbackCatalogGift+strconv.FormatInt(g.ID, 10)),
		))
	}

	var nav []telego.InlineKeyboardButton
	if page.HasPrev {
		nav = append(nav, button(ButtonCatalogPrev, CallbackPrevCatalogPage))
	}
	if page.HasNext {
		nav = append(nav, button(ButtonCatalogNext, CallbackNextCatalogPage))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, tu.InlineKeyboardRow(button(ButtonToAdmin, CallbackAdminMenu)))

	return tu.InlineKeyboard(rows...)
}

func CatalogGiftKeyboard() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(tu.InlineKeyboardRow(button(ButtonToCatalog, CallbackViewCatalog)))
}

func BackToAdminKeyboard() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(tu.InlineKeyboardRow(button(ButtonToAdmin, CallbackAdminMenu)))
}
