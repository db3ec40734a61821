package modules

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"gift_bot/pkg/logx"
)

type AsynqPeriodicTask struct {
	Cron    string
	Task    *asynq.Task
	Options []asynq.Option
}

type AsynqScheduler struct {
	RedisUsername string
	RedisPassword string
	RedisAddress  string
	RedisDB       int
	Location      *time.Location
}

// Run registers periodic tasks and enqueues them until ctx is done.
func (s AsynqScheduler) Run(ctx context.Context, g *errgroup.Group, tasks ...AsynqPeriodicTask) error {
	scheduler := asynq.NewScheduler(asynq.RedisClientOpt{
		Addr:     s.RedisAddress,
		Username: s.RedisUsername,
		Password: s.RedisPassword,
		DB:       s.RedisDB,
	}, &asynq.SchedulerOpts{
		Location: s.Location,
		Logger:   asynqLogger{log: logger(ctx)},
		PostEnqueueFunc: func(info *asynq.TaskInfo, err error) {
			if err != nil {
				logger(ctx).Error("asynq periodic enqueue failed", logx.Error(err))
				return
			}
			logger(ctx).Debug("asynq periodic task enqueued", slog.String("task-type", info.Type))
		},
	})

	for _, t := range tasks {
		if _, err := scheduler.Register(t.Cron, t.Task, t.Options...); err != nil {
			return fmt.Errorf("scheduler.Register %s: %w", t.Task.Type(), err)
		}
	}

	g.Go(func() error {
		if err := scheduler.Start(); err != nil {
			return fmt.Errorf("asynqScheduler.Start: %w", err)
		}

		logger(ctx).Info("asynq scheduler started", slog.Int("tasks", len(tasks)))

		<-ctx.Done()

		scheduler.Shutdown()

		logger(ctx).Info("asynq scheduler stopped")

		return nil
	})

	return nil
}
