package handler

import (
	"fmt"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"gift_bot/internal/domain/service/conversation"
	"gift_bot/internal/transport/bot/view"
	"gift_bot/pkg/logx"
)

const errNotModified = "message is not modified"

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	return err
}

func (h *Handler) sendScreen(ctx *th.Context, chatID int64, screen view.Screen) error {
	params := tu.Message(tu.ID(chatID), screen.Text).
		WithParseMode(telego.ModeHTML).
		WithLinkPreviewOptions(&telego.LinkPreviewOptions{IsDisabled: true})
	if screen.Keyboard != nil {
		params = params.WithReplyMarkup(screen.Keyboard)
	}

	_, err := ctx.Bot().SendMessage(ctx, params)
	return err
}

// show выводит экран вместо сообщения messageID. Экран с картинкой
// отправляется новым фото, старое сообщение удаляется.
func (h *Handler) show(ctx *th.Context, chatID int64, messageID int, screen view.Screen) error {
	if sent, err := h.sendPhoto(ctx, chatID, screen); sent {
		if err == nil && messageID != 0 {
			h.deleteMessage(ctx, chatID, messageID)
		}
		return err
	}

	if messageID != 0 {
		_, err := ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
			ChatID:             tu.ID(chatID),
			MessageID:          messageID,
			Text:               screen.Text,
			ParseMode:          telego.ModeHTML,
			ReplyMarkup:        screen.Keyboard,
			LinkPreviewOptions: &telego.LinkPreviewOptions{IsDisabled: true},
		})
		if err == nil || strings.Contains(err.Error(), errNotModified) {
			return nil
		}

		// фото нельзя отредактировать в текст
		h.deleteMessage(ctx, chatID, messageID)
	}

	return h.sendScreen(ctx, chatID, screen)
}

// sendPhoto отправляет экран подписью к первой найденной картинке.
// sent=false, если картинок нет или Telegram фото не принял.
func (h *Handler) sendPhoto(ctx *th.Context, chatID int64, screen view.Screen) (bool, error) {
	if h.images == nil {
		return false, nil
	}

	for _, name := range screen.Images {
		f, ok := h.images.Open(name)
		if !ok {
			continue
		}

		params := tu.Photo(tu.ID(chatID), tu.File(f)).
			WithCaption(screen.Text).
			WithParseMode(telego.ModeHTML)
		if screen.Keyboard != nil {
			params = params.WithReplyMarkup(screen.Keyboard)
		}

		_, err := ctx.Bot().SendPhoto(ctx, params)
		_ = f.Close()

		if err != nil {
			logger(ctx).Warn("send photo", logx.Error(err))
			return false, nil
		}

		return true, nil
	}

	return false, nil
}

func (h *Handler) deleteMessage(ctx *th.Context, chatID int64, messageID int) {
	if err := ctx.Bot().DeleteMessage(ctx, tu.Delete(tu.ID(chatID), messageID)); err != nil {
		logger(ctx).Debug("delete message", logx.Error(err))
	}
}

func (h *Handler) session(ctx *th.Context, userID int64) (*conversation.Session, error) {
	s, err := h.sessions.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return s, nil
}

func (h *Handler) save(ctx *th.Context, s *conversation.Session) error {
	if err := h.sessions.Save(ctx, s); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (h *Handler) isAdmin(ctx *th.Context, userID int64) bool {
	ok, err := h.users.IsAdmin(ctx, userID)
	if err != nil {
		logger(ctx).Error("check admin", logx.Error(err))
		return false
	}
	return ok
}

// userName имя из профиля бота или из Telegram.
func (h *Handler) userName(ctx *th.Context, from telego.User) string {
	u, err := h.users.Get(ctx, from.ID)
	if err == nil && u != nil && u.Name != "" {
		return u.Name
	}
	return from.FirstName
}

// fail сообщает пользователю об ошибке. Устаревшая кнопка не ошибка:
// показываем главное меню.
func (h *Handler) fail(ctx *th.Context, chatID, userID int64, err error) error {
	if conversation.IsUnexpectedStep(err) {
		return h.sendScreen(ctx, chatID, view.MainMenuScreen(view.StaleStep, h.isAdmin(ctx, userID)))
	}

	if sendErr := h.sendHTML(ctx, chatID, view.Failure); sendErr != nil {
		logger(ctx).Warn("send failure message", logx.Error(sendErr))
	}

	return err
}

// callbackChat чат и сообщение, к которым привязана кнопка.
func callbackChat(query telego.CallbackQuery) (int64, int) {
	if query.Message == nil {
		return query.From.ID, 0
	}
	return query.Message.GetChat().ID, query.Message.GetMessageID()
}
