package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elevate/internal/config"
	"elevate/internal/http-server/router"
	"elevate/internal/lib/logger/handlers/slogpretty"
	"elevate/internal/lib/logger/sl"
	"elevate/internal/mailer"
	"elevate/internal/metrics"
	"elevate/internal/notifier"
	"elevate/internal/rabbit"
	"elevate/internal/storage"
	"elevate/internal/storage/memory"
	"elevate/internal/storage/mongo"
	"elevate/internal/storage/postgres"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to the config file, overrides CONFIG_PATH")
	flag.Parse()

	cfg := config.MustLoadPath(config.ResolvePath(configPath))

	log := setupLogger(cfg.Env)

	log.Info("starting elevate", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))
	log.Debug("debug messages are enabled")

	started := time.Now()

	store, err := setupStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	m := metrics.New()

	deliverer := notifier.NewDeliverer(mailer.New(log, cfg.Mail), cfg.Mail.Admin, m)
	handle := notifier.HandleFunc(deliverer.Deliver)

	var (
		rmq      *rabbit.Client
		consumed <-chan struct{}
	)

	consumeCtx, stopConsuming := context.WithCancel(context.Background())
	defer stopConsuming()

	if cfg.Rabbit.URL != "" {
		rmq, err = rabbit.New(log, cfg.Rabbit.URL, cfg.Rabbit.Queue)
		if err != nil {
			log.Error("failed to connect to rabbitmq", sl.Err(err))
			os.Exit(1)
		}

		consumed, err = rmq.Consume(consumeCtx, func(ctx context.Context, body []byte) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.Notifier.SendTimeout)
			defer cancel()

			return deliverer.HandleMessage(ctx, body)
		})
		if err != nil {
			log.Error("failed to consume notifications", sl.Err(err))
			os.Exit(1)
		}

		handle = notifier.Publish(rmq, m)
	}

	dispatcher := notifier.NewDispatcher(log, handle, cfg.Notifier, m)
	dispatcher.Start()

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router.New(log, cfg, store, dispatcher, m, started),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("server stopped")

	if err = dispatcher.Stop(ctx); err != nil {
		log.Error("notifications left undelivered", sl.Err(err))
	}

	if rmq != nil {
		stopConsuming()

		select {
		case <-consumed:
		case <-ctx.Done():
			log.Warn("rabbitmq consumer did not drain in time")
		}

		rmq.Close()
	}

	if err = store.Close(ctx); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Storage.Mongo.ConnectTimeout)
		defer cancel()

		return mongo.New(ctx, cfg.Storage.Mongo)
	case config.DriverPostgres:
		return postgres.InitDB(&cfg.Storage.Database)
	case config.DriverMemory:
		return memory.New(), nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog()
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
