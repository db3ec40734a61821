package worker

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"gift_bot/internal/domain"
	"gift_bot/internal/domain/entity"
	"gift_bot/pkg/contextx"
	"gift_bot/pkg/errcodes"
	"gift_bot/pkg/logx"
)

const (
	TypeCatalogImport = "catalog:import"
	QueueCatalog      = "catalog"

	importMaxRetry = 3
	importTimeout  = 5 * time.Minute
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

type CatalogImportPayload struct {
	Path     string `json:"path"`
	FileName string `json:"file_name"`
}

type Catalog interface {
	Import(ctx context.Context, r io.Reader) (entity.ImportReport, error)
}

// Enqueuer часть asynq.Client для постановки задач.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Alerter interface {
	Broadcast(ctx context.Context, text string) error
}

// CatalogImport принимает файлы каталога. Без очереди загружает сразу,
// с очередью сохраняет файл в dir и ставит задачу catalog:import.
type CatalogImport struct {
	catalog  Catalog
	queue    Enqueuer
	alerts   Alerter
	dir      string
	attempts func(ctx context.Context) (retried, maxRetry int, ok bool)
}

func NewCatalogImport(catalog Catalog, queue Enqueuer, alerts Alerter, dir string) *CatalogImport {
	return &CatalogImport{
		catalog:  catalog,
		queue:    queue,
		alerts:   alerts,
		dir:      dir,
		attempts: asynqAttempts,
	}
}

func (w *CatalogImport) Submit(ctx context.Context, filename string, r io.Reader) (entity.ImportOutcome, error) {
	if w.queue == nil {
		report, err := w.catalog.Import(ctx, r)
		if err != nil {
			return entity.ImportOutcome{}, err
		}
		return entity.ImportOutcome{Report: report}, nil
	}

	path, err := w.store(r)
	if err != nil {
		return entity.ImportOutcome{}, err
	}

	payload, err := json.Marshal(CatalogImportPayload{Path: path, FileName: filepath.Base(filename)})
	if err != nil {
		_ = os.Remove(path)
		return entity.ImportOutcome{}, fmt.Errorf("marshal payload: %w", err)
	}

	info, err := w.queue.EnqueueContext(ctx,
		asynq.NewTask(TypeCatalogImport, payload),
		asynq.Queue(QueueCatalog),
		asynq.MaxRetry(importMaxRetry),
		asynq.Timeout(importTimeout),
	)
	if err != nil {
		_ = os.Remove(path)
		return entity.ImportOutcome{}, fmt.Errorf("enqueue catalog import: %w", err)
	}

	logger(ctx).Info("catalog import queued",
		slog.String("task-id", info.ID),
		slog.String("file", filename),
	)

	return entity.ImportOutcome{Queued: true, TaskID: info.ID}, nil
}

// Handle обработчик задачи catalog:import. Ошибки разбора файла не
// повторяются, файл удаляется, админам уходит сообщение. Остальные
// ошибки повторяются, после последней попытки так же.
func (w *CatalogImport) Handle(ctx context.Context, task *asynq.Task) error {
	var p CatalogImportPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}

	ctx, traceID := contextx.EnsureTraceID(ctx)
	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		logx.Stringer(logx.FieldTraceID, traceID),
		slog.String("file", p.FileName),
	))

	f, err := os.Open(p.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("catalog file is gone: %w", asynq.SkipRetry)
		}
		return fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	report, err := w.catalog.Import(ctx, f)
	if err != nil {
		if permanent(err) {
			w.giveUp(ctx, p, err)
			return fmt.Errorf("import catalog: %w: %w", err, asynq.SkipRetry)
		}

		// после последней попытки задача уходит в архив, файл больше не нужен
		if w.lastAttempt(ctx) {
			w.giveUp(ctx, p, err)
		}

		return fmt.Errorf("import catalog: %w", err)
	}

	if err := os.Remove(p.Path); err != nil {
		logger(ctx).Warn("remove catalog file", logx.Error(err))
	}

	logger(ctx).Info("catalog import task done",
		slog.Int("imported", report.Imported),
		slog.Int("skipped", report.Skipped),
	)

	return nil
}

func (w *CatalogImport) store(r io.Reader) (string, error) {
	if w.dir != "" {
		if err := os.MkdirAll(w.dir, 0o750); err != nil {
			return "", fmt.Errorf("create import dir: %w", err)
		}
	}

	f, err := os.CreateTemp(w.dir, "catalog-*.xlsx")
	if err != nil {
		return "", fmt.Errorf("create catalog file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write catalog file: %w", err)
	}

	return f.Name(), nil
}

func (w *CatalogImport) giveUp(ctx context.Context, p CatalogImportPayload, err error) {
	if rmErr := os.Remove(p.Path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
		logger(ctx).Warn("remove catalog file", logx.Error(rmErr))
	}

	w.alert(ctx, fmt.Sprintf("❌ Не удалось загрузить каталог %s:\n%s",
		html.EscapeString(p.FileName), html.EscapeString(err.Error())))
}

func (w *CatalogImport) lastAttempt(ctx context.Context) bool {
	retried, maxRetry, ok := w.attempts(ctx)
	return ok && retried >= maxRetry
}

func asynqAttempts(ctx context.Context) (int, int, bool) {
	retried, ok := asynq.GetRetryCount(ctx)
	if !ok {
		return 0, 0, false
	}

	maxRetry, ok := asynq.GetMaxRetry(ctx)
	if !ok {
		return 0, 0, false
	}

	return retried, maxRetry, true
}

func (w *CatalogImport) alert(ctx context.Context, text string) {
	if w.alerts == nil {
		return
	}
	if err := w.alerts.Broadcast(ctx, text); err != nil {
		logger(ctx).Warn("alert admins", logx.Error(err))
	}
}

func permanent(err error) bool {
	return domain.HasCode(err, errcodes.InvalidSpreadsheet, errcodes.EmptyCatalogFile)
}
