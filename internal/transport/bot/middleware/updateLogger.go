package middleware

import (
	"log/slog"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"gift_bot/internal/metrics"
	"gift_bot/pkg/contextx"
	"gift_bot/pkg/logx"
)

const (
	KindMessage  = "message"
	KindCallback = "callback"
	KindOther    = "other"
)

// UpdateLogger кладёт в контекст trace id, id пользователя и логгер
// с полями апдейта, считает апдейты и логирует ошибки обработчиков.
func UpdateLogger() th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		started := time.Now()
		traceID := contextx.NewTraceID()

		attrs := []any{
			logx.Stringer(logx.FieldTraceID, traceID),
			slog.Int(logx.FieldUpdateID, update.UpdateID),
		}

		c := contextx.WithTraceID(ctx, traceID)

		if userID, ok := UserID(update); ok {
			c = contextx.WithUserID(c, contextx.UserID(userID))
			attrs = append(attrs, slog.Int64(logx.FieldUserID, userID))
		}

		if update.CallbackQuery != nil {
			attrs = append(attrs, slog.String(logx.FieldCallbackData, update.CallbackQuery.Data))
		}

		l := logger(ctx).With(attrs...)
		ctx = ctx.WithContext(contextx.WithLogger(c, l))

		kind := Kind(update)
		metrics.BotUpdates.WithLabelValues(kind).Inc()

		err := ctx.Next(update)
		if err != nil {
			l.Error("update failed", slog.String("kind", kind), logx.Error(err))
			return err
		}

		l.Debug("update handled",
			slog.String("kind", kind),
			slog.Int64(logx.FieldDurationMs, time.Since(started).Milliseconds()),
		)

		return nil
	}
}

// UserID автор сообщения или нажатия кнопки.
func UserID(update telego.Update) (int64, bool) {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID, true
	case update.CallbackQuery != nil:
		return update.CallbackQuery.From.ID, true
	default:
		return 0, false
	}
}

func Kind(update telego.Update) string {
	switch {
	case update.Message != nil:
		return KindMessage
	case update.CallbackQuery != nil:
		return KindCallback
	default:
		return KindOther
	}
}
