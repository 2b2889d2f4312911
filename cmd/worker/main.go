package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/hibiken/asynq"

	"subs_manager/internal/config"
	"subs_manager/internal/gateways/reminder"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := setupLogger(cfg.Env)

	opt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	srv := reminder.NewServer(opt, cfg.Reminder.Queue, cfg.Reminder.Concurrency, log)
	mux := reminder.NewServeMux(reminder.NewTaskHandler(reminder.NewLogDeliverer(log), log))

	log.Info("reminder worker starting",
		slog.String("redis", cfg.Redis.Addr),
		slog.String("queue", cfg.Reminder.Queue),
		slog.Int("concurrency", cfg.Reminder.Concurrency),
	)
	// Run blocks until SIGTERM or SIGINT and then drains in-flight tasks
	if err := srv.Run(mux); err != nil {
		log.Error("worker stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func setupLogger(env string) *slog.Logger {
	switch strings.ToLower(env) {
	case "local":
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case "dev":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}
