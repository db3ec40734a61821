package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/mymmrac/telego"
	"golang.org/x/sync/errgroup"

	"gift_bot/internal/config"
	"gift_bot/internal/domain/service/catalog"
	"gift_bot/internal/domain/service/conversation"
	"gift_bot/internal/domain/service/matcher"
	"gift_bot/internal/domain/service/selection"
	"gift_bot/internal/domain/service/user"
	"gift_bot/internal/infrastructure/assets"
	"gift_bot/internal/infrastructure/notifier"
	"gift_bot/internal/infrastructure/persistence"
	"gift_bot/internal/infrastructure/session"
	"gift_bot/internal/infrastructure/spreadsheet"
	"gift_bot/internal/server"
	"gift_bot/internal/transport/bot"
	"gift_bot/internal/transport/bot/handler"
	"gift_bot/internal/worker"
	"gift_bot/pkg/application/connectors"
	"gift_bot/pkg/application/modules"
	"gift_bot/pkg/httpx"
	"gift_bot/pkg/logx"
	"gift_bot/pkg/middlewarex"
)

func Run(ctx context.Context, cfg config.Config) error {
	// 1. Database
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

	if cfg.Postgres.AutoMigrate {
		if err := persistence.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// 2. Repositories
	giftRepo := persistence.NewGiftRepository(db)
	selectionRepo := persistence.NewSelectionRepository(db)
	statsRepo := persistence.NewStatsRepository(db)
	userRepo := persistence.NewUserRepository(db)

	// 3. Bot API
	masker := logx.NewSensitiveDataMasker()

	api, err := bot.NewAPI(cfg.Bot.Token, telego.WithHTTPClient(&http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(masker),
			httpx.WithLogFieldMaxLen(cfg.Bot.LogMaxLen),
			httpx.WithoutBodyFor("sendPhoto", "sendDocument"),
		),
	}))
	if err != nil {
		return fmt.Errorf("bot api: %w", err)
	}

	// 4. Services
	users := user.NewService(userRepo, cfg.Bot.AdminIDs)
	alerts := notifier.NewTelegramBot(api, users)
	catalogSvc := catalog.NewService(giftRepo, statsRepo, spreadsheet.NewParser(), alerts)
	recorder := selection.NewRecorder(selectionRepo, giftRepo)

	// 5. Redis: сессии и очередь загрузки каталога
	var (
		sessions conversation.Store
		queue    worker.Enqueuer
	)

	if cfg.Redis.Enabled() {
		rd := &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		redisClient, err := rd.Connect(ctx)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer rd.Close(ctx)

		sessions = session.NewRedisStore(redisClient, cfg.App.SessionTTL)

		client := asynq.NewClient(redisClientOpt(cfg.Redis))
		defer client.Close()

		queue = client
	} else {
		sessions = session.NewMemoryStore(cfg.App.SessionTTL)

		logger(ctx).Warn("redis is not configured, sessions kept in memory and imports run inline")
	}

	importer := worker.NewCatalogImport(catalogSvc, queue, alerts, cfg.App.ImportDir)
	giftMatcher := matcher.New(giftRepo)
	summary := worker.NewDailySummary(statsRepo, alerts)

	// 6. Transport
	h := handler.New(
		users,
		sessions,
		giftMatcher,
		recorder,
		catalogSvc,
		importer,
		assets.NewImages(cfg.App.AssetsDir),
	)
	tgBot := bot.New(api, h, users)

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, cfg.HTTP.LogMaxLen),
		middlewarex.ResponseLogging(masker, cfg.HTTP.LogMaxLen),
		middlewarex.Recovery,
	)
	server.NewServer(
		server.NewCatalogServer(catalogSvc, importer),
		server.NewSelectionServer(recorder, giftMatcher),
		cfg.HTTP.AdminToken,
	).RegisterRoutes(router)

	// 7. Modules
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := tgBot.Run(ctx); err != nil {
			return fmt.Errorf("bot.Run: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := alerts.Run(ctx); err != nil {
			return fmt.Errorf("notifier.Run: %w", err)
		}
		return nil
	})

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeAddress,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.HTTP.MetricsAddress}.Run(ctx, g)

	if cfg.Redis.Enabled() {
		modules.AsynqServer{
			RedisUsername:   cfg.Redis.Username,
			RedisPassword:   cfg.Redis.Password,
			RedisAddress:    cfg.Redis.Address,
			RedisDB:         cfg.Redis.DatabaseNumber,
			Concurrency:     cfg.App.WorkerConcurrency,
			ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		}.Run(ctx, g,
			modules.AsynqQueues{worker.QueueCatalog: 2, worker.QueueReports: 1},
			modules.AsynqHandler{Pattern: worker.TypeCatalogImport, Handle: importer.Handle},
			modules.AsynqHandler{Pattern: worker.TypeDailySummary, Handle: summary.Handle},
		)

		if cfg.App.DailySummaryCron != "" {
			task, opts := summary.Task()

			err := modules.AsynqScheduler{
				RedisUsername: cfg.Redis.Username,
				RedisPassword: cfg.Redis.Password,
				RedisAddress:  cfg.Redis.Address,
				RedisDB:       cfg.Redis.DatabaseNumber,
				Location:      time.Local,
			}.Run(ctx, g, modules.AsynqPeriodicTask{Cron: cfg.App.DailySummaryCron, Task: task, Options: opts})
			if err != nil {
				return fmt.Errorf("asynq scheduler: %w", err)
			}
		}
	}

	logger(ctx).Info("application started",
		slog.String("version", cfg.App.Version),
		slog.Bool("redis", cfg.Redis.Enabled()),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	logger(ctx).Info("application stopped")

	return nil
}

func redisClientOpt(cfg config.Redis) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Address,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DatabaseNumber,
	}
}
