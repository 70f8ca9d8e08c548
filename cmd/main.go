package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Rasamaha24/m5-advocate-portal/internal/api"
	"github.com/Rasamaha24/m5-advocate-portal/internal/api/events"
	"github.com/Rasamaha24/m5-advocate-portal/internal/clients/auth"
	"github.com/Rasamaha24/m5-advocate-portal/internal/clients/gomail"
	"github.com/Rasamaha24/m5-advocate-portal/internal/repository"
	"github.com/Rasamaha24/m5-advocate-portal/internal/service"
	"github.com/Rasamaha24/m5-advocate-portal/pkg/broker"
	"github.com/Rasamaha24/m5-advocate-portal/pkg/config"
	"github.com/Rasamaha24/m5-advocate-portal/pkg/job"
	"github.com/Rasamaha24/m5-advocate-portal/pkg/logger"
	"github.com/Rasamaha24/m5-advocate-portal/pkg/postgres"
)

const idleSessionSweepInterval = 5 * time.Minute

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.LogLevel)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	producer := broker.NewProducer(slog.Default(), cfg.Kafka.Brokers,
		cfg.Kafka.BillEventsTopic, cfg.Kafka.NotificationTopic)
	defer producer.Close()

	var mailer service.Mailer
	if cfg.Mailer.Enabled {
		mailer = gomail.New(cfg.Mailer)
	}

	s := service.New(repo, producer, mailer, cfg.Session.IdleTTL)

	watcher := service.NewWatcher(func() service.ChangeConsumer {
		eventHandler := events.NewEventHandler(s)

		return broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID,
			cfg.Kafka.BillEventsTopic, cfg.Kafka.NotificationTopic).
			Handle(cfg.Kafka.BillEventsTopic, eventHandler.BillChanged).
			Handle(cfg.Kafka.NotificationTopic, eventHandler.NotificationsChanged)
	})

	if cfg.Kafka.SubscriptionsOn {
		go watcher.Watch(ctx)
	}

	{
		job.NewService().
			RegisterJob("close idle dashboard sessions", idleSessionSweepInterval, s.CloseIdleSessions).
			Start(ctx)
	}

	authService := auth.NewClient(cfg.AuthServiceURL)

	live := func() bool {
		return cfg.Kafka.SubscriptionsOn && !watcher.Degraded()
	}

	handler := api.NewHandler(s, live)
	mw := api.NewMiddleware(authService)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
