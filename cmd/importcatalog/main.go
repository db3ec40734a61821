package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gift_bot/internal/config"
	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/service/catalog"
	"gift_bot/internal/domain/value"
	"gift_bot/internal/infrastructure/persistence"
	"gift_bot/internal/infrastructure/spreadsheet"
	"gift_bot/pkg/application/connectors"
	"gift_bot/pkg/contextx"
	"gift_bot/pkg/logx"
)

// go run ./cmd/importcatalog gifts.xlsx
// go run ./cmd/importcatalog -template gifts.xlsx

func main() {
	template := flag.Bool("template", false, "write an example catalog file instead of importing")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: importcatalog [-template] <file.xlsx>")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logx.NewLogger(os.Stdout, slog.LevelInfo, false)
	ctx = contextx.WithLogger(ctx, log)

	var err error
	if *template {
		err = writeTemplate(flag.Arg(0))
	} else {
		err = importFile(ctx, flag.Arg(0))
	}

	if err != nil {
		log.Error("importcatalog", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}

func importFile(ctx context.Context, path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		ConnectTimeout:  cfg.Postgres.ConnectTimeout,
	}

	db, err := pg.Connect(ctx)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pg.Close(ctx)

	if err := persistence.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	svc := catalog.NewService(
		persistence.NewGiftRepository(db),
		persistence.NewStatsRepository(db),
		spreadsheet.NewParser(),
		nil,
	)

	report, err := svc.Import(ctx, f)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Printf("imported: %d, skipped: %d\n", report.Imported, report.Skipped)

	return nil
}

func writeTemplate(path string) error {
	buf, err := spreadsheet.Write([]entity.Gift{{
		Name:                 "Набор для выращивания бонсай",
		Description:          "Всё для первого дерева: семена, грунт, горшок и инструкция.",
		Category:             "Хобби",
		Subcategory:          "Растения",
		Link:                 "https://example.com/bonsai",
		AgeRange:             "18+",
		Price:                1990,
		City:                 "Москва",
		MarketplaceAvailable: true,
		TrendScore:           7,
		CreativityScore:      8,
		Recipients: value.RecipientFlags{
			value.RecipientFriend: true,
			value.RecipientMother: true,
			value.RecipientFather: true,
		},
		ImageName: "bonsai",
	}})
	if err != nil {
		return fmt.Errorf("spreadsheet.Write: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
