package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"yt_notifier/internal/commands"
	"yt_notifier/internal/config"
	"yt_notifier/internal/notifier"
	"yt_notifier/internal/scheduler"
	"yt_notifier/internal/service"
	"yt_notifier/internal/storage/postgres"
	"yt_notifier/internal/youtube"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := notifier.NewRabbitMQ(notifier.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	channelStore := postgres.NewChannelStore(db)
	deliveredStore := postgres.NewDeliveredStore(db)
	appStateStore := postgres.NewAppStateStore(db)
	liveScheduleStore := postgres.NewLiveScheduleStore(db)
	txManager := postgres.NewTransactionManager(db)

	source := youtube.New(youtube.Config{
		BaseURL:        cfg.YouTube.BaseURL,
		UserAgent:      cfg.YouTube.UserAgent,
		AcceptLanguage: cfg.YouTube.AcceptLanguage,
		Timeout:        cfg.YouTube.Timeout,
		BatchSize:      cfg.YouTube.BatchSize,
	}, logger)

	batcher := notifier.NewBatcher(rabbitMQ, cfg.Notify.LinksPerMessage, cfg.Notify.MessageDelay, logger)

	crawlService := service.NewCrawlService(
		source,
		channelStore,
		deliveredStore,
		appStateStore,
		liveScheduleStore,
		txManager,
		batcher,
		rabbitMQ,
		logger,
		cfg.Crawl,
		cfg.Notify,
	)

	sched := scheduler.NewScheduler(crawlService, cfg.Crawl.Interval, cfg.Crawl.RearmFloor, logger)
	checker := scheduler.NewLiveChecker(
		liveScheduleStore,
		rabbitMQ,
		cfg.Notify.StreamDestination,
		cfg.Crawl.LiveCheckInterval,
		logger,
	)

	consumer, err := commands.NewConsumer(
		cfg.RabbitMQ.URL,
		cfg.RabbitMQ.CommandQueue,
		channelStore,
		deliveredStore,
		crawlService,
		rabbitMQ,
		logger,
	)
	if err != nil {
		logger.Error("failed to start command consumer", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting youtube watcher",
		"interval", cfg.Crawl.Interval,
		"live_check_interval", cfg.Crawl.LiveCheckInterval,
	)

	errCh := make(chan error, 3)
	go func() { errCh <- sched.Start(ctx) }()
	go func() { errCh <- checker.Start(ctx) }()
	go func() { errCh <- consumer.Start(ctx) }()

	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("watcher error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
