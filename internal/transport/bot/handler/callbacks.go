package handler

import (
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"gift_bot/internal/domain/service/conversation"
	"gift_bot/internal/transport/bot/view"
	"gift_bot/pkg/logx"
)

// OnMainMenu сбрасывает диалог и показывает главное меню.
func (h *Handler) OnMainMenu(ctx *th.Context, query telego.CallbackQuery) error {
	chatID, messageID := callbackChat(query)

	s, err := h.session(ctx, query.From.ID)
	if err != nil {
		return h.fail(ctx, chatID, query.From.ID, err)
	}

	s.Reset()
	if err := h.save(ctx, s); err != nil {
		return h.fail(ctx, chatID, query.From.ID, err)
	}

	return h.show(ctx, chatID, messageID, view.MainMenuScreen(view.MainMenu, h.isAdmin(ctx, query.From.ID)))
}

func (h *Handler) OnSubscription(ctx *th.Context, query telego.CallbackQuery) error {
	chatID, messageID := callbackChat(query)
	return h.show(ctx, chatID, messageID, view.MainMenuScreen(view.SubscriptionTBD, h.isAdmin(ctx, query.From.ID)))
}

// OnNewSelection начинает подбор с вопроса о возрасте.
func (h *Handler) OnNewSelection(ctx *th.Context, query telego.CallbackQuery) error {
	chatID, messageID := callbackChat(query)

	s, err := h.session(ctx, query.From.ID)
	if err != nil {
		return h.fail(ctx, chatID, query.From.ID, err)
	}

	s.StartSelection()
	if err := h.save(ctx, s); err != nil {
		return h.fail(ctx, chatID, query.From.ID, err)
	}

	return h.show(ctx, chatID, messageID, view.Screen{Text: view.AskAge})
}

func (h *Handler) OnRecipient(ctx *th.Context, query telego.CallbackQuery) error {
	return h.step(ctx, query, func(s *conversation.Session) (view.Screen, error) {
		key := strings.TrimPrefix(query.Data, view.CallbackRecipientPrefix)
		if err := s.SubmitRecipient(key); err != nil {
			return view.Screen{}, err
		}
		return view.Screen{Text: view.AskBudget}, nil
	})
}

func (h *Handler) OnMarketplace(ctx *th.Context, query telego.CallbackQuery) error {
	return h.step(ctx, query, func(s *conversation.Session) (view.Screen, error) {
		ok, valid := view.ParseYesNo(query.Data, view.CallbackMarketplacePrefix)
		if !valid {
			return view.Screen{Text: view.AskMarketplace, Keyboard: view.YesNoKeyboard(view.CallbackMarketplacePrefix)}, nil
		}
		if err := s.SubmitMarketplace(ok); err != nil {
			return view.Screen{}, err
		}
		return view.Screen{Text: view.AskTrend, Keyboard: view.TrendKeyboard()}, nil
	})
}

func (h *Handler) OnTrend(ctx *th.Context, query telego.CallbackQuery) error {
	return h.step(ctx, query, func(s *conversation.Session) (view.Screen, error) {
		score, _ := view.ParseTrend(query.Data)
		if err := s.SubmitTrend(score); err != nil {
			if conversation.IsValidation(err) {
				return view.Screen{Text: view.AskTrend, Keyboard: view.TrendKeyboard()}, nil
			}
			return view.Screen{}, err
		}
		return view.Screen{Text: view.AskConsumable, Keyboard: view.YesNoKeyboard(view.CallbackConsumablePrefix)}, nil
	})
}

// OnConsumable последний вопрос: подбор, запись подборки и первая страница.
// Пустой результат не записывается.
func (h *Handler) OnConsumable(ctx *th.Context, query telego.CallbackQuery) error {
	return h.step(ctx, query, func(s *conversation.Session) (view.Screen, error) {
		ok, valid := view.ParseYesNo(query.Data, view.CallbackConsumablePrefix)
		if !valid {
			return view.Screen{Text: view.AskConsumable, Keyboard: view.YesNoKeyboard(view.CallbackConsumablePrefix)}, nil
		}

		criteria, err := s.SubmitConsumable(ok)
		if err != nil {
			return view.Screen{}, err
		}

		groups, err := h.matcher.Match(ctx, criteria)
		if err != nil {
			return view.Screen{}, fmt.Errorf("match gifts: %w", err)
		}

		if groups.Empty() {
			s.Reset()
			text := fmt.Sprintf(view.NoMatch, html.EscapeString(h.userName(ctx, query.From)))
			return view.MainMenuScreen(text, h.isAdmin(ctx, query.From.ID)), nil
		}

		sel, err := h.recorder.Record(ctx, query.From.ID, criteria, groups)
		if err != nil {
			return view.Screen{}, fmt.Errorf("record selection: %w", err)
		}

		if err := s.ShowResults(groups, conversation.SourceMatch, sel.ID); err != nil {
			return view.Screen{}, err
		}

		page, err := s.Page()
		if err != nil {
			return view.Screen{}, err
		}

		return view.ResultsScreen(page, false), nil
	})
}

// OnNavigate листает категории результата.
func (h *Handler) OnNavigate(ctx *th.Context, query telego.CallbackQuery) error {
	return h.step(ctx, query, func(s *conversation.Session) (view.Screen, error) {
		move := s.Next
		if query.Data == view.CallbackNavPrev {
			move = s.Prev
		}

		page, err := move()
		if err != nil {
			return view.Screen{}, err
		}

		return view.ResultsScreen(page, s.Source == conversation.SourceHistory), nil
	})
}

func (h *Handler) OnGift(ctx *th.Context, query telego.CallbackQuery) error {
	return h.step(ctx, query, func(s *conversation.Session) (view.Screen, error) {
		id, ok := view.ParseID(query.Data, view.CallbackGiftPrefix)
		if !ok {
			return view.Screen{}, fmt.Errorf("bad gift callback %q", query.Data)
		}

		g, err := s.OpenGift(id)
		if err != nil {
			if conversation.IsUnexpectedStep(err) {
				return view.Screen{}, err
			}
			return view.MainMenuScreen(view.GiftNotFound, h.isAdmin(ctx, query.From.ID)), nil
		}

		return view.GiftScreen(g), nil
	})
}

// OnBack из карточки подарка в ту же категорию.
func (h *Handler) OnBack(ctx *th.Context, query telego.CallbackQuery) error {
	return h.step(ctx, query, func(s *conversation.Session) (view.Screen, error) {
		page, err := s.Back()
		if err != nil {
			return view.Screen{}, err
		}
		return view.ResultsScreen(page, s.Source == conversation.SourceHistory), nil
	})
}

// OnHistory список подборок пользователя.
func (h *Handler) OnHistory(ctx *th.Context, query telego.CallbackQuery) error {
	return h.step(ctx, query, func(s *conversation.Session) (view.Screen, error) {
		selections, err := h.recorder.ListByUser(ctx, query.From.ID)
		if err != nil {
			return view.Screen{}, fmt.Errorf("list selections: %w", err)
		}

		if len(selections) == 0 {
			s.Reset()
		} else {
			s.OpenHistory()
		}

		return view.HistoryScreen(selections, h.isAdmin(ctx, query.From.ID)), nil
	})
}

// OnHistoryItem открывает прошлую подборку тем же пагинатором.
func (h *Handler) OnHistoryItem(ctx *th.Context, query telego.CallbackQuery) error {
	return h.step(ctx, query, func(s *conversation.Session) (view.Screen, error) {
		id, ok := view.ParseID(query.Data, view.CallbackHistoryItemPrefix)
		if !ok {
			return view.Screen{}, fmt.Errorf("bad history callback %q", query.Data)
		}

		sel, err := h.recorder.Get(ctx, id)
		if err != nil {
			return view.Screen{}, fmt.Errorf("get selection: %w", err)
		}

		if sel.UserID != query.From.ID {
			logger(ctx).Warn("foreign selection requested", slog.Int64(logx.FieldSelectionID, id))
			return view.MainMenuScreen(view.MainMenu, h.isAdmin(ctx, query.From.ID)), nil
		}

		groups, err := h.recorder.Gifts(ctx, id)
		if err != nil {
			return view.Screen{}, fmt.Errorf("selection gifts: %w", err)
		}

		if groups.Empty() {
			return view.Screen{Text: view.HistoryGone, Keyboard: view.HistoryGoneKeyboard()}, nil
		}

		s.OpenHistory()
		if err := s.ShowResults(groups, conversation.SourceHistory, id); err != nil {
			return view.Screen{}, err
		}

		page, err := s.Page()
		if err != nil {
			return view.Screen{}, err
		}

		return view.ResultsScreen(page, true), nil
	})
}

// step загружает сессию, применяет шаг, сохраняет и показывает экран
// вместо сообщения с кнопкой.
func (h *Handler) step(
	ctx *th.Context,
	query telego.CallbackQuery,
	apply func(s *conversation.Session) (view.Screen, error),
) error {
	chatID, messageID := callbackChat(query)

	s, err := h.session(ctx, query.From.ID)
	if err != nil {
		return h.fail(ctx, chatID, query.From.ID, err)
	}

	screen, err := apply(s)
	if err != nil {
		return h.fail(ctx, chatID, query.From.ID, err)
	}

	if err := h.save(ctx, s); err != nil {
		return h.fail(ctx, chatID, query.From.ID, err)
	}

	return h.show(ctx, chatID, messageID, screen)
}
