package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"gift_bot/pkg/logx"
)

// AnswerCallback сразу подтверждает нажатие кнопки, чтобы у
// пользователя пропали часики.
func AnswerCallback() th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if update.CallbackQuery != nil {
			if err := ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(update.CallbackQuery.ID)); err != nil {
				logger(ctx).Warn("answer callback query", logx.Error(err))
			}
		}

		return ctx.Next(update)
	}
}
