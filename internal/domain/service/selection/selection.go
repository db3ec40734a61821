package selection

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"gift_bot/internal/domain"
	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/value"
	"gift_bot/internal/metrics"
	"gift_bot/pkg/errcodes"
	"gift_bot/pkg/logx"
)

type Repository interface {
	// Create сохраняет подборку и связи в одной транзакции и проставляет ID.
	Create(ctx context.Context, sel *entity.Selection, links []entity.SelectionGift) error
	GetByID(ctx context.Context, id int64) (*entity.Selection, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Selection, error)
	Links(ctx context.Context, selectionID int64) ([]entity.SelectionGift, error)
}

type GiftRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]entity.Gift, error)
}

type Recorder struct {
	repo  Repository
	gifts GiftRepository
	now   func() time.Time
}

func NewRecorder(repo Repository, gifts GiftRepository) *Recorder {
	return &Recorder{
		repo:  repo,
		gifts: gifts,
		now:   time.Now,
	}
}

// Record сохраняет результат подбора. Каждый вызов создаёт новую подборку.
// Ошибки хранилища возвращаются как есть, без повторов.
func (r *Recorder) Record(
	ctx context.Context,
	userID int64,
	criteria value.Criteria,
	groups entity.CategorizedGifts,
) (*entity.Selection, error) {
	if groups.Empty() {
		return nil, domain.NewError(errcodes.ValidationError, "nothing to record")
	}

	sel := &entity.Selection{
		UserID:    userID,
		Criteria:  criteria,
		CreatedAt: r.now().UTC(),
	}

	links := make([]entity.SelectionGift, 0, groups.Len())
	for _, group := range groups {
		for _, g := range group.Gifts {
			links = append(links, entity.SelectionGift{GiftID: g.ID, Category: group.Category})
		}
	}

	links = lo.UniqBy(links, func(l entity.SelectionGift) int64 { return l.GiftID })

	if err := r.repo.Create(ctx, sel, links); err != nil {
		return nil, fmt.Errorf("create selection: %w", err)
	}

	metrics.Selections.Inc()

	logger(ctx).Info("selection recorded",
		slog.Int64(logx.FieldSelectionID, sel.ID),
		slog.Int64(logx.FieldUserID, userID),
		slog.Int("gifts", len(links)),
	)

	return sel, nil
}

// ListByUser подборки пользователя, новые первыми.
func (r *Recorder) ListByUser(ctx context.Context, userID int64) ([]entity.Selection, error) {
	selections, err := r.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	return selections, nil
}

func (r *Recorder) Get(ctx context.Context, id int64) (*entity.Selection, error) {
	sel, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get selection: %w", err)
	}
	return sel, nil
}

// Gifts подарки подборки, сгруппированные по сохранённой категории.
// Подарки, удалённые при замене каталога, пропускаются.
func (r *Recorder) Gifts(ctx context.Context, selectionID int64) (entity.CategorizedGifts, error) {
	links, err := r.repo.Links(ctx, selectionID)
	if err != nil {
		return nil, fmt.Errorf("selection links: %w", err)
	}

	if len(links) == 0 {
		return entity.CategorizedGifts{}, nil
	}

	ids := lo.Map(links, func(l entity.SelectionGift, _ int) int64 { return l.GiftID })

	gifts, err := r.gifts.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("selection gifts: %w", err)
	}

	if missing := len(links) - len(gifts); missing > 0 {
		logger(ctx).Debug("selection refers to replaced gifts",
			slog.Int64(logx.FieldSelectionID, selectionID),
			slog.Int("missing", missing),
		)
	}

	return entity.GroupByAssociation(gifts, links), nil
}
