package dbtest

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
)

// MigrateFromFile executes every file as one script, in the given order.
func MigrateFromFile(ctx context.Context, db *sqlx.DB, fileNames ...string) error {
	for _, fileName := range fileNames {
		script, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		if _, err = db.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("db.ExecContext(%s): %w", fileName, err)
		}
	}

	return nil
}
