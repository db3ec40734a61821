package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"gift_bot/internal/domain/entity"
	"gift_bot/pkg/contextx"
	"gift_bot/pkg/logx"
)

const (
	TypeDailySummary = "report:daily_summary"
	QueueReports     = "reports"

	summaryMaxRetry = 2
	summaryTimeout  = time.Minute
)

type SummaryStats interface {
	DailySummary(ctx context.Context, since time.Time) (entity.DailySummary, error)
}

type SummaryNotifier interface {
	SendDailySummary(ctx context.Context, summary entity.DailySummary) error
}

// DailySummary рассылает администраторам активность за текущие сутки.
// Задачу ставит планировщик asynq по расписанию.
type DailySummary struct {
	stats    SummaryStats
	notifier SummaryNotifier
	now      func() time.Time
}

func NewDailySummary(stats SummaryStats, notifier SummaryNotifier) *DailySummary {
	return &DailySummary{
		stats:    stats,
		notifier: notifier,
		now:      time.Now,
	}
}

// Task задача для регистрации в планировщике.
func (w *DailySummary) Task() (*asynq.Task, []asynq.Option) {
	return asynq.NewTask(TypeDailySummary, nil), []asynq.Option{
		asynq.Queue(QueueReports),
		asynq.MaxRetry(summaryMaxRetry),
		asynq.Timeout(summaryTimeout),
	}
}

func (w *DailySummary) Handle(ctx context.Context, _ *asynq.Task) error {
	ctx, traceID := contextx.EnsureTraceID(ctx)
	ctx = contextx.WithLogger(ctx, logger(ctx).With(logx.Stringer(logx.FieldTraceID, traceID)))

	now := w.now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	summary, err := w.stats.DailySummary(ctx, day)
	if err != nil {
		return fmt.Errorf("daily summary: %w", err)
	}

	if err := w.notifier.SendDailySummary(ctx, summary); err != nil {
		return fmt.Errorf("send daily summary: %w", err)
	}

	logger(ctx).Info("daily summary sent",
		slog.Int64("new-users", summary.NewUsers),
		slog.Int64("selections", summary.Selections),
	)

	return nil
}
