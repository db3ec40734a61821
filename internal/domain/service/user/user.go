package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"gift_bot/internal/domain"
	"gift_bot/internal/domain/entity"
	"gift_bot/pkg/errcodes"
	"gift_bot/pkg/logx"
)

type Repository interface {
	GetByID(ctx context.Context, telegramID int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	// FillMissing заполняет только пустые name, username и phone.
	FillMissing(ctx context.Context, u *entity.User) error
	SetAdmin(ctx context.Context, telegramID int64, isAdmin bool) error
	ListAdminIDs(ctx context.Context) ([]int64, error)
}

type Service struct {
	repo        Repository
	superAdmins []int64
}

// NewService superAdmins: администраторы из конфигурации,
// они же могут назначать новых.
func NewService(repo Repository, superAdmins []int64) *Service {
	return &Service{
		repo:        repo,
		superAdmins: superAdmins,
	}
}

// Get возвращает nil без ошибки, если пользователь не найден.
func (s *Service) Get(ctx context.Context, telegramID int64) (*entity.User, error) {
	u, err := s.repo.GetByID(ctx, telegramID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil //nolint:nilnil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// RegisterContact создаёт пользователя по контакту или дописывает
// недостающий телефон.
func (s *Service) RegisterContact(ctx context.Context, telegramID int64, phone, username string) (*entity.User, error) {
	u, err := s.Get(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	if u == nil {
		u = &entity.User{
			TelegramID: telegramID,
			Phone:      phone,
			Username:   strings.TrimPrefix(username, "@"),
		}
		if err := s.repo.Create(ctx, u); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}

		logger(ctx).Info("user registered", slog.Int64(logx.FieldUserID, telegramID))

		return u, nil
	}

	patch := &entity.User{TelegramID: telegramID, Phone: phone, Username: strings.TrimPrefix(username, "@")}
	if err := s.repo.FillMissing(ctx, patch); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	u.Phone = lo.CoalesceOrEmpty(u.Phone, patch.Phone)
	u.Username = lo.CoalesceOrEmpty(u.Username, patch.Username)

	return u, nil
}

// SetName задаёт имя, только если оно ещё не задано.
func (s *Service) SetName(ctx context.Context, telegramID int64, name string) (*entity.User, error) {
	u, err := s.repo.GetByID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if u.Name != "" {
		return u, nil
	}

	if err := s.repo.FillMissing(ctx, &entity.User{TelegramID: telegramID, Name: name}); err != nil {
		return nil, fmt.Errorf("set name: %w", err)
	}

	u.Name = name

	return u, nil
}

func (s *Service) IsSuperAdmin(telegramID int64) bool {
	return lo.Contains(s.superAdmins, telegramID)
}

// IsAdmin администратор из конфигурации или с флагом в БД.
func (s *Service) IsAdmin(ctx context.Context, telegramID int64) (bool, error) {
	if s.IsSuperAdmin(telegramID) {
		return true, nil
	}

	u, err := s.Get(ctx, telegramID)
	if err != nil {
		return false, err
	}

	return u != nil && u.IsAdmin, nil
}

// PromoteByUsername назначает администратора. Доступно только
// администраторам из конфигурации.
func (s *Service) PromoteByUsername(ctx context.Context, actorID int64, username string) (*entity.User, error) {
	if !s.IsSuperAdmin(actorID) {
		return nil, domain.NewError(errcodes.Forbidden, "only super admins can promote")
	}

	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return nil, domain.NewError(errcodes.ValidationError, "username is empty")
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	if err := s.repo.SetAdmin(ctx, u.TelegramID, true); err != nil {
		return nil, fmt.Errorf("set admin: %w", err)
	}

	u.IsAdmin = true

	logger(ctx).Info("admin promoted",
		slog.Int64(logx.FieldUserID, u.TelegramID),
		slog.Int64("actor-id", actorID),
	)

	return u, nil
}

// AdminIDs администраторы из конфигурации и из БД без повторов.
func (s *Service) AdminIDs(ctx context.Context) ([]int64, error) {
	fromDB, err := s.repo.ListAdminIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}

	return lo.Uniq(append(append([]int64{}, s.superAdmins...), fromDB...)), nil
}

func isNotFound(err error) bool {
	var appErr *domain.AppError
	return errors.As(err, &appErr) && appErr.Code == errcodes.UserNotFound
}
