package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	Bot      Bot
	Postgres Postgres
	Redis    Redis
	HTTP     HTTP
}

type App struct {
	Name       string        `env:"APP_NAME" envDefault:"gift_bot"`
	Version    string        `env:"APP_VERSION" envDefault:"dev"`
	LogLevel   slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogNoColor bool          `env:"LOG_NO_COLOR"`
	AssetsDir  string        `env:"ASSETS_DIR" envDefault:"images"`
	ImportDir  string        `env:"IMPORT_DIR" envDefault:"imports"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	// WorkerConcurrency число одновременных задач asynq.
	WorkerConcurrency int `env:"WORKER_CONCURRENCY" envDefault:"2"`
	// DailySummaryCron расписание дневного отчёта, пустое отключает отчёт.
	DailySummaryCron string `env:"DAILY_SUMMARY_CRON" envDefault:"0 21 * * *"`
}

type Bot struct {
	Token    string  `env:"BOT_TOKEN,notEmpty" json:"-"`
	AdminIDs []int64 `env:"BOT_ADMIN_IDS" envSeparator:","`
	// LogMaxLen ограничивает размер тела запроса к Bot API в логах.
	LogMaxLen int `env:"BOT_LOG_MAX_LEN" envDefault:"2048"`
}

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	AdminToken      string        `env:"HTTP_ADMIN_TOKEN" json:"-"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	LogMaxLen       int           `env:"HTTP_LOG_MAX_LEN" envDefault:"4096"`
	ProbeAddress    string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsAddress  string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
