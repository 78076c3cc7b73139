package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"elevate/internal/config"
	"elevate/internal/lib/logger/sl"
	"elevate/internal/models"
	"elevate/internal/seed"
	"elevate/internal/storage"
	"elevate/internal/storage/mongo"
	"elevate/internal/storage/postgres"
)

func main() {
	var (
		configPath string
		file       string
		fake       int
		seedN      uint64
	)
	flag.StringVar(&configPath, "config", "", "path to the config file, overrides CONFIG_PATH")
	flag.StringVar(&file, "file", "", "path to a JSON array of events")
	flag.IntVar(&fake, "fake", 0, "number of generated demo events to add")
	flag.Uint64Var(&seedN, "seed", 0, "random seed for generated events, 0 picks one")
	flag.Parse()

	if file == "" && fake <= 0 {
		fmt.Fprintln(os.Stderr, "either -file or -fake is required")
		os.Exit(2)
	}

	cfg := config.MustLoadPath(config.ResolvePath(configPath))

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	now := time.Now().UTC()

	var events []models.Event

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			log.Error("failed to open events file", sl.Err(err))
			os.Exit(1)
		}

		loaded, err := seed.Load(f, now)
		_ = f.Close()
		if err != nil {
			log.Error("failed to load events", sl.Err(err))
			os.Exit(1)
		}
		events = append(events, loaded...)
	}

	if fake > 0 {
		events = append(events, seed.Fake(gofakeit.New(seedN), fake, now)...)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Error("failed to close storage", sl.Err(err))
		}
	}()

	created, err := seed.Run(ctx, log, store, events)
	log.Info("seeding finished", slog.Int("created", created), slog.Int("total", len(events)))
	if err != nil {
		log.Error("some events were not created", sl.Err(err))
	}
}

// openStorage connects to a persistent store. Seeding the memory driver would be lost on exit.
func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		return mongo.New(ctx, cfg.Storage.Mongo)
	case config.DriverPostgres:
		return postgres.InitDB(&cfg.Storage.Database)
	}

	return nil, fmt.Errorf("storage driver %q cannot be seeded", cfg.Storage.Driver)
}
