package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"gift_bot/internal/transport/bot/handler"
	"gift_bot/internal/transport/bot/middleware"
	"gift_bot/pkg/logx"
)

const pollTimeoutSeconds = 60

// Bot представляет собой Telegram-бота
type Bot struct {
	bot     *telego.Bot
	handler *handler.Handler
	admins  middleware.AdminChecker
}

// NewAPI клиент Bot API. Нужен отдельно от Bot: через него же
// уведомляются администраторы.
func NewAPI(token string, opts ...telego.BotOption) (*telego.Bot, error) {
	api, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return api, nil
}

// New создает новый экземпляр бота
func New(api *telego.Bot, h *handler.Handler, admins middleware.AdminChecker) *Bot {
	return &Bot{
		bot:     api,
		handler: h,
		admins:  admins,
	}
}

// Run получает обновления long polling до отмены ctx.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: pollTimeoutSeconds,
	})
	if err != nil {
		return fmt.Errorf("failed to get updates: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("failed to create bot handler: %w", err)
	}

	botHandler.Use(th.PanicRecovery())
	botHandler.Use(middleware.UpdateLogger())
	botHandler.Use(middleware.AnswerCallback())

	b.handler.RegisterRoutes(botHandler, b.admins)

	errCh := make(chan error, 1)
	go func() {
		errCh <- botHandler.Start()
	}()

	logger(ctx).Info("bot started")

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("bot handler: %w", err)
		}
		return nil
	}

	// Останавливаем обработчик
	if err := botHandler.Stop(); err != nil {
		logger(ctx).Error("failed to stop bot handler", logx.Error(err))
	}

	logger(ctx).Info("bot stopped")

	return nil
}
