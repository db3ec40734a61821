package conversation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gift_bot/internal/domain"
	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/service/paginator"
	"gift_bot/internal/domain/value"
	"gift_bot/pkg/errcodes"
)

type State string

const (
	StateIdle         State = "idle"
	StateAge          State = "age"
	StateRecipient    State = "recipient"
	StateBudget       State = "budget"
	StateMarketplace  State = "marketplace"
	StateTrend        State = "trend"
	StateConsumable   State = "consumable"
	StateResults      State = "results"
	StateGiftDetail   State = "gift_detail"
	StateHistoryList  State = "history_list"
	StateAwaitContact State = "await_contact"
	StateAwaitName    State = "await_name"
)

// Source откуда пришёл показываемый результат.
type Source string

const (
	SourceMatch   Source = "match"
	SourceHistory Source = "history"
)

// Session состояние диалога одного пользователя.
type Session struct {
	UserID      int64                   `json:"user_id"`
	State       State                   `json:"state"`
	Draft       value.Draft             `json:"draft"`
	Results     entity.CategorizedGifts `json:"results,omitempty"`
	Index       int                     `json:"index"`
	Source      Source                  `json:"source,omitempty"`
	SelectionID int64                   `json:"selection_id,omitempty"`
	GiftID      int64                   `json:"gift_id,omitempty"`
	CatalogPage int                     `json:"catalog_page,omitempty"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

func NewSession(userID int64) *Session {
	return &Session{
		UserID:    userID,
		State:     StateIdle,
		UpdatedAt: time.Now(),
	}
}

// Reset возвращает в главное меню и забывает черновик и результаты.
func (s *Session) Reset() {
	*s = Session{
		UserID:    s.UserID,
		State:     StateIdle,
		UpdatedAt: time.Now(),
	}
}

func (s *Session) Is(states ...State) bool {
	for _, st := range states {
		if s.State == st {
			return true
		}
	}
	return false
}

// StartSelection начинает новый подбор из любого состояния.
func (s *Session) StartSelection() {
	s.Reset()
	s.to(StateAge)
}

func (s *Session) SubmitAge(text string) error {
	if err := s.expect(StateAge); err != nil {
		return err
	}

	age, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || age < 0 || age > value.MaxAge {
		return domain.NewError(errcodes.InvalidAge, "age must be an integer from 0 to 100")
	}

	s.Draft.Age = &age
	s.to(StateRecipient)

	return nil
}

// SubmitRecipient принимает любой непустой ключ: неизвестный
// получатель не фильтрует при подборе.
func (s *Session) SubmitRecipient(key string) error {
	if err := s.expect(StateRecipient); err != nil {
		return err
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return domain.NewError(errcodes.InvalidRecipient, "recipient is empty")
	}

	r := value.Recipient(key)
	s.Draft.Recipient = &r
	s.to(StateBudget)

	return nil
}

// SubmitBudget принимает неотрицательное число, 0: без ограничения.
func (s *Session) SubmitBudget(text string) error {
	if err := s.expect(StateBudget); err != nil {
		return err
	}

	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	budget, err := strconv.ParseFloat(text, 64)
	if err != nil || budget < 0 || math.IsNaN(budget) || math.IsInf(budget, 0) {
		return domain.NewError(errcodes.InvalidBudget, "budget must be a non-negative number")
	}

	s.Draft.Budget = &budget
	s.to(StateMarketplace)

	return nil
}

func (s *Session) SubmitMarketplace(ok bool) error {
	if err := s.expect(StateMarketplace); err != nil {
		return err
	}

	s.Draft.Marketplace = &ok
	s.to(StateTrend)

	return nil
}

func (s *Session) SubmitTrend(score int) error {
	if err := s.expect(StateTrend); err != nil {
		return err
	}

	if score < value.MinTrendScore || score > value.MaxTrendScore {
		return domain.NewError(errcodes.InvalidTrendScore, "trend score must be from 1 to 10")
	}

	s.Draft.TrendScore = &score
	s.to(StateConsumable)

	return nil
}

// SubmitConsumable последний шаг: возвращает полные критерии.
// Состояние не меняется, пока не вызван ShowResults или Reset.
func (s *Session) SubmitConsumable(ok bool) (value.Criteria, error) {
	if err := s.expect(StateConsumable); err != nil {
		return value.Criteria{}, err
	}

	s.Draft.Consumable = &ok

	criteria, complete := s.Draft.Criteria()
	if !complete {
		return value.Criteria{}, domain.NewError(errcodes.IncompleteCriteria, "criteria are incomplete")
	}

	if err := criteria.Validate(); err != nil {
		return value.Criteria{}, domain.WrapError(err, errcodes.ValidationError, "invalid criteria")
	}

	return criteria, nil
}

// ShowResults переводит в просмотр результата с первой категории.
func (s *Session) ShowResults(groups entity.CategorizedGifts, source Source, selectionID int64) error {
	if groups.Empty() {
		return domain.NewError(errcodes.ValidationError, "nothing to show")
	}

	switch source {
	case SourceMatch:
		if err := s.expect(StateConsumable); err != nil {
			return err
		}
	case SourceHistory:
		if err := s.expect(StateHistoryList); err != nil {
			return err
		}
	default:
		return domain.NewError(errcodes.UnexpectedStep, fmt.Sprintf("unknown source %q", source))
	}

	s.Results = groups
	s.Index = 0
	s.Source = source
	s.SelectionID = selectionID
	s.GiftID = 0
	s.to(StateResults)

	return nil
}

// Page текущая страница результата.
func (s *Session) Page() (paginator.Page, error) {
	if err := s.expect(StateResults, StateGiftDetail); err != nil {
		return paginator.Page{}, err
	}
	return paginator.New(s.Results, s.Index).Render(), nil
}

func (s *Session) Next() (paginator.Page, error) {
	return s.move((*paginator.Paginator).Next)
}

func (s *Session) Prev() (paginator.Page, error) {
	return s.move((*paginator.Paginator).Prev)
}

func (s *Session) move(step func(*paginator.Paginator) int) (paginator.Page, error) {
	if err := s.expect(StateResults); err != nil {
		return paginator.Page{}, err
	}

	p := paginator.New(s.Results, s.Index)
	s.Index = step(p)
	s.touch()

	return p.Render(), nil
}

// OpenGift показывает подарок из текущего результата.
func (s *Session) OpenGift(id int64) (entity.Gift, error) {
	if err := s.expect(StateResults); err != nil {
		return entity.Gift{}, err
	}

	g, ok := paginator.New(s.Results, s.Index).Gift(id)
	if !ok {
		return entity.Gift{}, domain.NewError(errcodes.GiftNotFound, "gift is not in current results")
	}

	s.GiftID = id
	s.to(StateGiftDetail)

	return g, nil
}

// Back из карточки подарка на ту же категорию.
func (s *Session) Back() (paginator.Page, error) {
	if err := s.expect(StateGiftDetail); err != nil {
		return paginator.Page{}, err
	}

	s.GiftID = 0
	s.to(StateResults)

	return paginator.New(s.Results, s.Index).Render(), nil
}

func (s *Session) OpenHistory() {
	s.Reset()
	s.to(StateHistoryList)
}

func (s *Session) AwaitContact() {
	s.Reset()
	s.to(StateAwaitContact)
}

func (s *Session) SubmitContact() error {
	if err := s.expect(StateAwaitContact, StateIdle); err != nil {
		return err
	}
	s.to(StateAwaitName)
	return nil
}

// SubmitName завершает регистрацию. Возвращает обрезанное имя.
func (s *Session) SubmitName(text string) (string, error) {
	if err := s.expect(StateAwaitName); err != nil {
		return "", err
	}

	name := strings.TrimSpace(text)
	if name == "" {
		return "", domain.NewError(errcodes.ValidationError, "name is empty")
	}

	s.to(StateIdle)

	return name, nil
}

func (s *Session) expect(states ...State) error {
	if s.Is(states...) {
		return nil
	}
	return domain.NewError(errcodes.UnexpectedStep, fmt.Sprintf("unexpected step in state %q", s.State))
}

func (s *Session) to(state State) {
	s.State = state
	s.touch()
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}
