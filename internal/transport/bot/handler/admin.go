package handler

import (
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"gift_bot/internal/domain"
	"gift_bot/internal/domain/service/conversation"
	"gift_bot/internal/transport/bot/view"
	"gift_bot/pkg/errcodes"
)

func (h *Handler) OnAdminMenu(ctx *th.Context, query telego.CallbackQuery) error {
	chatID, messageID := callbackChat(query)
	return h.show(ctx, chatID, messageID, view.Screen{Text: view.AdminMenu, Keyboard: view.AdminMenuKeyboard()})
}

func (h *Handler) OnUploadDatabase(ctx *th.Context, query telego.CallbackQuery) error {
	chatID, messageID := callbackChat(query)
	return h.show(ctx, chatID, messageID, view.Screen{Text: view.UploadPrompt, Keyboard: view.BackToAdminKeyboard()})
}

// OnViewCatalog страница каталога, номер страницы хранится в сессии.
func (h *Handler) OnViewCatalog(ctx *th.Context, query telego.CallbackQuery) error {
	return h.step(ctx, query, func(s *conversation.Session) (view.Screen, error) {
		return h.catalogScreen(ctx, s, 0)
	})
}

func (h *Handler) OnCatalogPage(ctx *th.Context, query telego.CallbackQuery) error {
	return h.step(ctx, query, func(s *conversation.Session) (view.Screen, error) {
		delta := 1
		if query.Data == view.CallbackPrevCatalogPage {
			delta = -1
		}
		return h.catalogScreen(ctx, s, delta)
	})
}

func (h *Handler) catalogScreen(ctx *th.Context, s *conversation.Session, delta int) (view.Screen, error) {
	s.CatalogPage = max(s.CatalogPage+delta, 0)

	page, err := h.catalog.List(ctx, s.CatalogPage)
	if err != nil {
		return view.Screen{}, fmt.Errorf("list catalog: %w", err)
	}

	// каталог могли заменить на более короткий
	if len(page.Gifts) == 0 && s.CatalogPage > 0 {
		s.CatalogPage = 0
		if page, err = h.catalog.List(ctx, 0); err != nil {
			return view.Screen{}, fmt.Errorf("list catalog: %w", err)
		}
	}

	return view.CatalogScreen(page), nil
}

func (h *Handler) OnCatalogGift(ctx *th.Context, query telego.CallbackQuery) error {
	chatID, messageID := callbackChat(query)

	id, ok := view.ParseID(query.Data, view.CallbackCatalogGift)
	if !ok {
		return fmt.Errorf("bad catalog callback %q", query.Data)
	}

	g, err := h.catalog.Get(ctx, id)
	if err != nil {
		if !domain.HasCode(err, errcodes.GiftNotFound) {
			return h.fail(ctx, chatID, query.From.ID, err)
		}
		return h.show(ctx, chatID, messageID, view.Screen{Text: view.GiftNotFound, Keyboard: view.CatalogGiftKeyboard()})
	}

	return h.show(ctx, chatID, messageID, view.CatalogGiftScreen(*g))
}

func (h *Handler) OnAdminStats(ctx *th.Context, query telego.CallbackQuery) error {
	chatID, messageID := callbackChat(query)

	stats, err := h.catalog.Stats(ctx)
	if err != nil {
		return h.fail(ctx, chatID, query.From.ID, fmt.Errorf("catalog stats: %w", err))
	}

	return h.show(ctx, chatID, messageID, view.StatsScreen(stats))
}
