package persistence

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/jmoiron/sqlx"

	"gift_bot/internal/domain"
	"gift_bot/pkg/errcodes"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate применяет схему из migrations по порядку имён.
// Скрипты идемпотентны, повторный запуск ничего не меняет.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to list migrations")
	}

	sort.Strings(names)

	for _, name := range names {
		script, err := migrations.ReadFile(name)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to read "+name)
		}

		if _, err := db.ExecContext(ctx, string(script)); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to apply "+name)
		}

		logger(ctx).Info("migration applied", slog.String("file", name))
	}

	return nil
}
