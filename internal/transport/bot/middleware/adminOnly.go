package middleware

import (
	"context"
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"gift_bot/internal/transport/bot/view"
	"gift_bot/pkg/logx"
)

type AdminChecker interface {
	IsAdmin(ctx context.Context, telegramID int64) (bool, error)
}

// AdminOnly пропускает дальше только администраторов. Остальным
// отвечает отказом в тот же чат.
func AdminOnly(admins AdminChecker) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		var userID, chatID int64

		switch {
		case update.Message != nil && update.Message.From != nil:
			userID = update.Message.From.ID
			chatID = update.Message.Chat.ID
		case update.CallbackQuery != nil:
			userID = update.CallbackQuery.From.ID
			if update.CallbackQuery.Message != nil {
				chatID = update.CallbackQuery.Message.GetChat().ID
			}
		default:
			return nil
		}

		ok, err := admins.IsAdmin(ctx, userID)
		if err != nil {
			return err
		}

		if ok {
			return ctx.Next(update)
		}

		logger(ctx).Warn("admin action denied", slog.Int64(logx.FieldUserID, userID))

		if chatID == 0 {
			return nil
		}

		_, err = ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), view.AdminDenied))

		return err
	}
}
