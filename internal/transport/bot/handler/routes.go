package handler

import (
	"context"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"gift_bot/internal/transport/bot/middleware"
	"gift_bot/internal/transport/bot/view"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, admins middleware.AdminChecker) {
	// Команды и сообщения
	bh.HandleMessage(h.OnStart, th.CommandEqual("start"))
	bh.HandleMessage(h.OnAddAdmin, th.CommandEqual("add"))
	bh.HandleMessage(h.OnContact, hasContact)

	adminDocs := bh.Group(hasDocument)
	adminDocs.Use(middleware.AdminOnly(admins))
	adminDocs.HandleMessage(h.OnDocument)

	bh.HandleMessage(h.OnText, th.AnyMessageWithText(), th.Not(th.AnyCommand()))

	// Меню и подбор
	bh.HandleCallbackQuery(h.OnMainMenu, th.Or(
		th.CallbackDataEqual(view.CallbackMainMenu),
		th.CallbackDataEqual(view.CallbackBackToMain),
	))
	bh.HandleCallbackQuery(h.OnSubscription, th.CallbackDataEqual(view.CallbackSubscription))
	bh.HandleCallbackQuery(h.OnNewSelection, th.CallbackDataEqual(view.CallbackNewSelection))
	bh.HandleCallbackQuery(h.OnRecipient, th.CallbackDataPrefix(view.CallbackRecipientPrefix))
	bh.HandleCallbackQuery(h.OnMarketplace, th.CallbackDataPrefix(view.CallbackMarketplacePrefix))
	bh.HandleCallbackQuery(h.OnTrend, th.CallbackDataPrefix(view.CallbackTrendPrefix))
	bh.HandleCallbackQuery(h.OnConsumable, th.CallbackDataPrefix(view.CallbackConsumablePrefix))

	// Просмотр результата и истории
	bh.HandleCallbackQuery(h.OnNavigate, th.Or(
		th.CallbackDataEqual(view.CallbackNavPrev),
		th.CallbackDataEqual(view.CallbackNavNext),
	))
	bh.HandleCallbackQuery(h.OnBack, th.CallbackDataEqual(view.CallbackNavBack))
	bh.HandleCallbackQuery(h.OnGift, th.CallbackDataPrefix(view.CallbackGiftPrefix))
	bh.HandleCallbackQuery(h.OnHistory, th.CallbackDataEqual(view.CallbackHistory))
	bh.HandleCallbackQuery(h.OnHistoryItem, th.CallbackDataPrefix(view.CallbackHistoryItemPrefix))

	// Админка
	adminGroup := bh.Group(th.Or(
		th.CallbackDataEqual(view.CallbackAdminMenu),
		th.CallbackDataEqual(view.CallbackUploadDatabase),
		th.CallbackDataEqual(view.CallbackViewCatalog),
		th.CallbackDataEqual(view.CallbackPrevCatalogPage),
		th.CallbackDataEqual(view.CallbackNextCatalogPage),
		th.CallbackDataEqual(view.CallbackAdminStats),
		th.CallbackDataPrefix(view.CallbackCatalogGift),
	))
	adminGroup.Use(middleware.AdminOnly(admins))

	adminGroup.HandleCallbackQuery(h.OnAdminMenu, th.CallbackDataEqual(view.CallbackAdminMenu))
	adminGroup.HandleCallbackQuery(h.OnUploadDatabase, th.CallbackDataEqual(view.CallbackUploadDatabase))
	adminGroup.HandleCallbackQuery(h.OnViewCatalog, th.CallbackDataEqual(view.CallbackViewCatalog))
	adminGroup.HandleCallbackQuery(h.OnCatalogPage, th.Or(
		th.CallbackDataEqual(view.CallbackPrevCatalogPage),
		th.CallbackDataEqual(view.CallbackNextCatalogPage),
	))
	adminGroup.HandleCallbackQuery(h.OnCatalogGift, th.CallbackDataPrefix(view.CallbackCatalogGift))
	adminGroup.HandleCallbackQuery(h.OnAdminStats, th.CallbackDataEqual(view.CallbackAdminStats))
}

func hasContact(_ context.Context, update telego.Update) bool {
	return update.Message != nil && update.Message.Contact != nil
}

func hasDocument(_ context.Context, update telego.Update) bool {
	return update.Message != nil && update.Message.Document != nil
}
