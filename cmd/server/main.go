package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"subs_manager/internal/config"
	"subs_manager/internal/gateways/calendar"
	httpGateway "subs_manager/internal/gateways/http"
	"subs_manager/internal/gateways/reminder"
	"subs_manager/internal/metrics"
	"subs_manager/internal/repository/catalog/static"
	pgRepository "subs_manager/internal/repository/subscription/postgres"
	sqliteRepository "subs_manager/internal/repository/subscription/sqlite"
	usecaseInternal "subs_manager/internal/usecase"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type storage struct {
	subs     usecaseInternal.SubscriptionRepository
	settings usecaseInternal.SettingsRepository
	close    func()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := setupLogger(cfg.Env)

	log.Info("starting subs manager", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))
	log.Debug("debug messages are enabled")

	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Error("failed to init storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer st.close()

	companies, err := static.New(cfg.Catalog.Path, log)
	if err != nil {
		log.Error("failed to load company catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Debug("catalog loaded", slog.Int("companies", companies.Len()))

	m := metrics.New(prometheus.DefaultRegisterer)

	notifier, closeNotifier := setupNotifier(cfg, log)
	defer closeNotifier()
	effects := reminder.NewBackground(reminder.NewDispatcher(notifier, log, reminder.WithRecorder(m)), log, 0)

	useCases := httpGateway.UseCases{
		Sub:      usecaseInternal.NewSubscription(st.subs, usecaseInternal.WithReminderLead(cfg.Reminder.Lead)),
		Catalog:  usecaseInternal.NewCatalog(companies),
		Settings: usecaseInternal.NewSettings(st.settings),
		Calendar: usecaseInternal.NewCalendar(
			st.subs,
			calendar.NewDirWriter(cfg.Calendar.Dir, log),
			cfg.Calendar.Duration,
			cfg.Calendar.AlarmOffset,
		),
		Effects: effects,
	}

	server := httpGateway.New(useCases,
		*cfg,
		log,
		httpGateway.Observability{Metrics: m, Gatherer: prometheus.DefaultGatherer},
		httpGateway.WithHost(cfg.Server.Host),
		httpGateway.WithPort(uint16(cfg.Server.Port)),
		httpGateway.WithTimeout(cfg.Server.Timeout),
	)

	log.Info("starting server", slog.String("address", cfg.Server.Host+":"+strconv.Itoa(cfg.Server.Port)))
	err = server.Run(ctx)

	drainCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()
	if derr := effects.Close(drainCtx); derr != nil {
		log.Warn("reminder effects not drained", slog.String("error", derr.Error()))
	}

	if err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		dsn := cfg.Pg.DSN()
		migrations, err := filepath.Abs(cfg.Pg.MigrationsPath)
		if err != nil {
			return nil, fmt.Errorf("resolve migrations path: %w", err)
		}
		if err := pgRepository.RunMigrations(dsn, "file://"+filepath.ToSlash(migrations)); err != nil {
			return nil, err
		}
		log.Debug("migrations applied", slog.String("path", migrations))

		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		return &storage{
			subs:     pgRepository.NewSubRepository(pool),
			settings: pgRepository.NewSettingsRepository(pool),
			close:    pool.Close,
		}, nil

	case config.StorageSQLite:
		db, err := sqliteRepository.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Debug("sqlite opened", slog.String("path", cfg.Storage.SQLitePath))
		return &storage{
			subs:     sqliteRepository.NewSubRepository(db),
			settings: sqliteRepository.NewSettingsRepository(db),
			close: func() {
				if err := sqliteRepository.Close(db); err != nil {
					log.Warn("close sqlite", slog.String("error", err.Error()))
				}
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// setupNotifier schedules reminders through asynq when enabled, otherwise only logs them
func setupNotifier(cfg *config.Config, log *slog.Logger) (reminder.Notifier, func()) {
	if !cfg.Reminder.Enabled {
		log.Info("reminders disabled, effects are logged only")
		return reminder.NewLogNotifier(log), func() {}
	}

	opt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	client := asynq.NewClient(opt)
	inspector := asynq.NewInspector(opt)

	return reminder.NewScheduler(client, inspector, cfg.Reminder.Queue, log), func() {
		if err := client.Close(); err != nil {
			log.Warn("close asynq client", slog.String("error", err.Error()))
		}
		if err := inspector.Close(); err != nil {
			log.Warn("close asynq inspector", slog.String("error", err.Error()))
		}
	}
}

func setupLogger(env string) *slog.Logger {
	switch strings.ToLower(env) {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}
