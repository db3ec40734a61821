package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"gift_bot/internal/domain/entity"
	"gift_bot/pkg/logx"
)

const queueSize = 16

var ErrQueueFull = errors.New("notification queue is full")

// Sender часть telego.Bot, которая нужна для рассылки.
type Sender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

type AdminLister interface {
	AdminIDs(ctx context.Context) ([]int64, error)
}

// TelegramBot шлёт администраторам уведомления о загрузке каталога.
// Отправка идёт в Run, чтобы загрузка не ждала Telegram.
type TelegramBot struct {
	sender Sender
	admins AdminLister
	events chan entity.ImportReport
}

func NewTelegramBot(sender Sender, admins AdminLister) *TelegramBot {
	return &TelegramBot{
		sender: sender,
		admins: admins,
		events: make(chan entity.ImportReport, queueSize),
	}
}

// CatalogReplaced ставит уведомление в очередь.
func (b *TelegramBot) CatalogReplaced(_ context.Context, report entity.ImportReport) error {
	select {
	case b.events <- report:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run отправляет уведомления из очереди до отмены ctx.
func (b *TelegramBot) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case report := <-b.events:
			if err := b.SendReport(ctx, report); err != nil {
				logger(ctx).Error("failed to notify admins", logx.Error(err))
			}
		}
	}
}

func (b *TelegramBot) SendReport(ctx context.Context, report entity.ImportReport) error {
	text := fmt.Sprintf(
		"🔔 <b>Админ-уведомление</b>\n\n"+
			"Каталог обновлён.\n"+
			"✅ Загружено: %d\n"+
			"⚠️ Пропущено строк: %d",
		report.Imported,
		report.Skipped,
	)

	return b.Broadcast(ctx, text)
}

func (b *TelegramBot) SendDailySummary(ctx context.Context, summary entity.DailySummary) error {
	text := fmt.Sprintf(
		"🔔 <b>Админ-уведомление</b>\n\n"+
			"📊 Дневной отчёт за %s:\n\n"+
			"👥 Новых пользователей: %d\n"+
			"🎁 Подборок сделано: %d",
		summary.Day.Format("02.01.2006"),
		summary.NewUsers,
		summary.Selections,
	)

	return b.Broadcast(ctx, text)
}

// Broadcast отправляет текст всем администраторам. Ошибка одного
// получателя не останавливает рассылку.
func (b *TelegramBot) Broadcast(ctx context.Context, text string) error {
	ids, err := b.admins.AdminIDs(ctx)
	if err != nil {
		return fmt.Errorf("admin ids: %w", err)
	}

	var errs []error
	for _, id := range ids {
		if err := b.SendText(ctx, id, text); err != nil {
			errs = append(errs, err)
			logger(ctx).Warn("admin notification failed", slog.Int64(logx.FieldChatID, id), logx.Error(err))
		}
	}

	return errors.Join(errs...)
}

// SendText отправляет HTML-сообщение в чат.
func (b *TelegramBot) SendText(ctx context.Context, chatID int64, text string) error {
	msg := tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML)

	if _, err := b.sender.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message to %d: %w", chatID, err)
	}

	return nil
}
