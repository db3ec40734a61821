package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gift_bot/internal/application"
	"gift_bot/internal/config"
	"gift_bot/pkg/contextx"
	"gift_bot/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load", logx.Error(err))
		os.Exit(1)
	}

	log := logx.NewLogger(os.Stdout, cfg.App.LogLevel, cfg.App.LogNoColor)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err := application.Run(ctx, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}
