package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"elevate/internal/config"
	"elevate/internal/storage/postgres"
)

const (
	migrationUp   = "up"
	migrationDown = "down"
)

func mustMigrateUp(m *migrate.Migrate) {
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no migrations to apply")
			return
		}

		panic(err)
	}

	fmt.Println("migrations applied successfully")
}

func mustMigrateDown(m *migrate.Migrate) {
	if err := m.Down(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no migrations to roll back")
			return
		}

		panic(err)
	}

	fmt.Println("migrations rolled back successfully")
}

// The postgres connection comes from the same config file the server reads.
func main() {
	var configPath, migrationsPath, migrationsTable, migrationType string
	flag.StringVar(&configPath, "config", "", "path to the config file, overrides CONFIG_PATH")
	flag.StringVar(&migrationType, "migration-type", migrationUp, "migration type: up or down")
	flag.StringVar(&migrationsPath, "migrations-path", "./migrations", "path to migrations")
	flag.StringVar(&migrationsTable, "migrations-table", "schema_migrations", "name of migrations table")
	flag.Parse()

	if migrationsPath == "" {
		panic("migrations-path is required")
	}

	cfg := config.MustLoadPath(config.ResolvePath(configPath))

	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		dbURL(&cfg.Storage.Database, migrationsTable),
	)
	if err != nil {
		panic(err)
	}
	defer m.Close()

	switch migrationType {
	case migrationUp:
		mustMigrateUp(m)
	case migrationDown:
		mustMigrateDown(m)
	default:
		panic(fmt.Sprintf("unknown migration type %q", migrationType))
	}
}

func dbURL(dbCfg *config.Database, migrationsTable string) string {
	u := postgres.URL(dbCfg)
	if migrationsTable == "" {
		return u
	}

	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}

	return u + sep + "x-migrations-table=" + migrationsTable
}
