package connectors

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"

	"gift_bot/pkg/logx"
)

type Postgres struct {
	value           *sqlx.DB
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
}

// Connect opens the pool and pings the database. Close must be called
// after a successful Connect.
func (p *Postgres) Connect(ctx context.Context) (*sqlx.DB, error) {
	connectCtx := ctx

	if p.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, p.ConnectTimeout)
		defer cancel()
	}

	db, err := sqlx.ConnectContext(connectCtx, "pgx", p.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlx.ConnectContext: %w", err)
	}

	db.SetMaxOpenConns(p.MaxOpenConns)
	db.SetMaxIdleConns(p.MaxIdleConns)
	db.SetConnMaxLifetime(p.ConnMaxLifetime)

	p.value = db

	logger(ctx).Info("postgres connected", slog.String("database", databaseName(p.DSN)))

	return db, nil
}

func (p *Postgres) Close(ctx context.Context) {
	if p.value == nil {
		return
	}

	if err := p.value.Close(); err != nil {
		logger(ctx).Error("postgresClient.Close", logx.Error(err))
	}

	logger(ctx).Info("postgres disconnected", slog.String("database", databaseName(p.DSN)))
}

// databaseName never returns credentials from the DSN.
func databaseName(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return ""
	}

	return strings.TrimPrefix(u.Path, "/")
}
