package handler

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"gift_bot/internal/domain"
	"gift_bot/internal/domain/service/conversation"
	"gift_bot/internal/transport/bot/view"
	"gift_bot/pkg/errcodes"
)

const catalogExtension = ".xlsx"

// OnStart новому пользователю предлагает поделиться телефоном,
// знакомому показывает главное меню.
func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	from := msg.From
	if from == nil {
		return nil
	}

	s, err := h.session(ctx, from.ID)
	if err != nil {
		return h.fail(ctx, msg.Chat.ID, from.ID, err)
	}

	u, err := h.users.Get(ctx, from.ID)
	if err != nil {
		return h.fail(ctx, msg.Chat.ID, from.ID, err)
	}

	switch {
	case u == nil || u.Phone == "":
		s.AwaitContact()
		if err := h.save(ctx, s); err != nil {
			return h.fail(ctx, msg.Chat.ID, from.ID, err)
		}

		_, err = ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(msg.Chat.ID), view.WelcomeNewUser).
			WithReplyMarkup(view.ContactKeyboard()))

		return err

	case u.Name == "":
		s.AwaitContact()
		_ = s.SubmitContact()
		if err := h.save(ctx, s); err != nil {
			return h.fail(ctx, msg.Chat.ID, from.ID, err)
		}

		return h.sendHTML(ctx, msg.Chat.ID, view.AskName)

	default:
		s.Reset()
		if err := h.save(ctx, s); err != nil {
			return h.fail(ctx, msg.Chat.ID, from.ID, err)
		}

		text := fmt.Sprintf(view.WelcomeBack, html.EscapeString(u.Name))

		return h.sendScreen(ctx, msg.Chat.ID, view.MainMenuScreen(text, u.IsAdmin || h.isAdmin(ctx, from.ID)))
	}
}

// OnContact регистрирует пользователя по своему контакту.
func (h *Handler) OnContact(ctx *th.Context, msg telego.Message) error {
	from := msg.From
	if from == nil || msg.Contact == nil {
		return nil
	}

	// чужой контакт не регистрируем
	if msg.Contact.UserID != 0 && msg.Contact.UserID != from.ID {
		return h.sendHTML(ctx, msg.Chat.ID, view.WelcomeNewUser)
	}

	u, err := h.users.RegisterContact(ctx, from.ID, msg.Contact.PhoneNumber, from.Username)
	if err != nil {
		return h.fail(ctx, msg.Chat.ID, from.ID, err)
	}

	s, err := h.session(ctx, from.ID)
	if err != nil {
		return h.fail(ctx, msg.Chat.ID, from.ID, err)
	}

	if u.Name != "" {
		s.Reset()
		if err := h.save(ctx, s); err != nil {
			return h.fail(ctx, msg.Chat.ID, from.ID, err)
		}

		_, err = ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(msg.Chat.ID), view.MainMenu).
			WithReplyMarkup(tu.ReplyKeyboardRemove()))
		if err != nil {
			return err
		}

		return h.sendScreen(ctx, msg.Chat.ID, view.MainMenuScreen(
			fmt.Sprintf(view.WelcomeBack, html.EscapeString(u.Name)),
			h.isAdmin(ctx, from.ID),
		))
	}

	if !s.Is(conversation.StateAwaitContact, conversation.StateIdle) {
		s.AwaitContact()
	}

	if err := s.SubmitContact(); err != nil {
		return h.fail(ctx, msg.Chat.ID, from.ID, err)
	}

	if err := h.save(ctx, s); err != nil {
		return h.fail(ctx, msg.Chat.ID, from.ID, err)
	}

	_, err = ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(msg.Chat.ID), view.AskName).
		WithReplyMarkup(tu.ReplyKeyboardRemove()))

	return err
}

// OnText свободный текст: имя, возраст или бюджет в зависимости от шага.
func (h *Handler) OnText(ctx *th.Context, msg telego.Message) error {
	from := msg.From
	if from == nil {
		return nil
	}

	s, err := h.session(ctx, from.ID)
	if err != nil {
		return h.fail(ctx, msg.Chat.ID, from.ID, err)
	}

	switch s.State {
	case conversation.StateAwaitName:
		return h.onName(ctx, msg, s)
	case conversation.StateAge:
		return h.onAge(ctx, msg, s)
	case conversation.StateBudget:
		return h.onBudget(ctx, msg, s)
	default:
		logger(ctx).Debug("text ignored", slog.String("state", string(s.State)))
		return nil
	}
}

func (h *Handler) onName(ctx *th.Context, msg telego.Message, s *conversation.Session) error {
	name, err := s.SubmitName(msg.Text)
	if err != nil {
		if conversation.IsValidation(err) {
			return h.sendHTML(ctx, msg.Chat.ID, view.EmptyName)
		}
		return h.fail(ctx, msg.Chat.ID, msg.From.ID, err)
	}

	u, err := h.users.SetName(ctx, msg.From.ID, name)
	if err != nil {
		if domain.HasCode(err, errcodes.UserNotFound) {
			s.Reset()
			_ = h.save(ctx, s)
			return h.sendHTML(ctx, msg.Chat.ID, view.RestartWithStart)
		}
		return h.fail(ctx, msg.Chat.ID, msg.From.ID, err)
	}

	if err := h.save(ctx, s); err != nil {
		return h.fail(ctx, msg.Chat.ID, msg.From.ID, err)
	}

	text := fmt.Sprintf(view.Registered, html.EscapeString(u.Name))

	return h.sendScreen(ctx, msg.Chat.ID, view.MainMenuScreen(text, h.isAdmin(ctx, msg.From.ID)))
}

func (h *Handler) onAge(ctx *th.Context, msg telego.Message, s *conversation.Session) error {
	if err := s.SubmitAge(msg.Text); err != nil {
		if conversation.IsValidation(err) {
			return h.sendHTML(ctx, msg.Chat.ID, view.InvalidAge)
		}
		return h.fail(ctx, msg.Chat.ID, msg.From.ID, err)
	}

	if err := h.save(ctx, s); err != nil {
		return h.fail(ctx, msg.Chat.ID, msg.From.ID, err)
	}

	return h.sendScreen(ctx, msg.Chat.ID, view.Screen{Text: view.AskRecipient, Keyboard: view.RecipientKeyboard()})
}

func (h *Handler) onBudget(ctx *th.Context, msg telego.Message, s *conversation.Session) error {
	if err := s.SubmitBudget(msg.Text); err != nil {
		if conversation.IsValidation(err) {
			return h.sendHTML(ctx, msg.Chat.ID, view.InvalidBudget)
		}
		return h.fail(ctx, msg.Chat.ID, msg.From.ID, err)
	}

	if err := h.save(ctx, s); err != nil {
		return h.fail(ctx, msg.Chat.ID, msg.From.ID, err)
	}

	return h.sendScreen(ctx, msg.Chat.ID, view.Screen{
		Text:     view.AskMarketplace,
		Keyboard: view.YesNoKeyboard(view.CallbackMarketplacePrefix),
	})
}

// OnAddAdmin /add @username назначает администратора.
func (h *Handler) OnAddAdmin(ctx *th.Context, msg telego.Message) error {
	if msg.From == nil {
		return nil
	}

	args := strings.Fields(msg.Text)
	if len(args) < 2 {
		return h.sendHTML(ctx, msg.Chat.ID, view.AddAdminUsage)
	}

	u, err := h.users.PromoteByUsername(ctx, msg.From.ID, args[1])
	if err != nil {
		code, _ := domain.GetCode(err)

		switch code {
		case errcodes.Forbidden:
			return h.sendHTML(ctx, msg.Chat.ID, view.AddAdminDenied)
		case errcodes.UserNotFound:
			return h.sendHTML(ctx, msg.Chat.ID, view.AddAdminNotFound)
		case errcodes.ValidationError:
			return h.sendHTML(ctx, msg.Chat.ID, view.AddAdminUsage)
		default:
			return h.fail(ctx, msg.Chat.ID, msg.From.ID, err)
		}
	}

	return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.AddAdminDone, html.EscapeString(u.Username)))
}

// OnDocument принимает таблицу каталога от администратора.
func (h *Handler) OnDocument(ctx *th.Context, msg telego.Message) error {
	doc := msg.Document
	if doc == nil || msg.From == nil {
		return nil
	}

	if !strings.EqualFold(filepath.Ext(doc.FileName), catalogExtension) {
		return h.sendHTML(ctx, msg.Chat.ID, view.UploadWrongType)
	}

	file, err := ctx.Bot().GetFile(ctx, &telego.GetFileParams{FileID: doc.FileID})
	if err != nil {
		return h.fail(ctx, msg.Chat.ID, msg.From.ID, fmt.Errorf("get file: %w", err))
	}

	data, err := tu.DownloadFile(ctx.Bot().FileDownloadURL(file.FilePath))
	if err != nil {
		return h.fail(ctx, msg.Chat.ID, msg.From.ID, fmt.Errorf("download file: %w", err))
	}

	logger(ctx).Info("catalog file received",
		slog.String("file", doc.FileName),
		slog.Int("size", len(data)),
	)

	outcome, err := h.importer.Submit(ctx, doc.FileName, bytes.NewReader(data))
	if err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) &&
			(appErr.Code == errcodes.InvalidSpreadsheet || appErr.Code == errcodes.EmptyCatalogFile) {
			return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.ImportFailed, html.EscapeString(appErr.Message)))
		}

		return h.fail(ctx, msg.Chat.ID, msg.From.ID, fmt.Errorf("import catalog: %w", err))
	}

	if outcome.Queued {
		return h.sendHTML(ctx, msg.Chat.ID, view.ImportQueued)
	}

	return h.sendScreen(ctx, msg.Chat.ID, view.Screen{
		Text:     fmt.Sprintf(view.ImportDone, outcome.Report.Imported, outcome.Report.Skipped),
		Keyboard: view.AdminMenuKeyboard(),
	})
}
