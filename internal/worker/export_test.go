package worker

import (
	"context"
	"time"
)

func (w *CatalogImport) SetAttempts(f func(ctx context.Context) (retried, maxRetry int, ok bool)) {
	w.attempts = f
}

func (w *DailySummary) SetNow(now func() time.Time) {
	w.now = now
}
