package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	"post-app/pkg/config"
	"post-app/pkg/database"
	"post-app/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

var errNameRequired = errors.New("name is required for create command")

func main() {
	var (
		dir     = flag.String("dir", "migrations", "directory with migration files")
		command = flag.String("command", "up", "migration command (up, down, status, create)")
		name    = flag.String("name", "", "name for new migration (used with create command)")
	)
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		os.Exit(1)
	}

	if cfg.DatastoreDriver != config.DriverPostgres {
		log.Warn("DATASTORE_DRIVER is %q; SQL migrations only apply to %q", cfg.DatastoreDriver, config.DriverPostgres)
	}

	db, err := sql.Open("postgres", database.PostgresDSN(cfg))
	if err != nil {
		log.Error("Failed to open database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Error("Failed to set dialect: %v", err)
		os.Exit(1)
	}

	if err := run(context.Background(), db, *command, *dir, *name); err != nil {
		log.Error("Migration command %q failed: %v", *command, err)
		os.Exit(1)
	}
	log.Info("Migration command %q finished", *command)
}

func run(ctx context.Context, db *sql.DB, command, dir, name string) error {
	switch command {
	case "create":
		if name == "" {
			return errNameRequired
		}
		return goose.Create(db, dir, name, "sql")
	case "up":
		return goose.UpContext(ctx, db, dir)
	case "down":
		return goose.DownContext(ctx, db, dir)
	case "status":
		return goose.StatusContext(ctx, db, dir)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
