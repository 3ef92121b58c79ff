package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/IdleMiner_Go/internal/database"
	"github.com/osse101/IdleMiner_Go/migrations"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string { return "migrate" }

func (c *MigrateCommand) Description() string {
	return "Apply or inspect the embedded migrations (up, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPool(ctx, dbURL(), database.PoolOptions{MaxConns: 2})
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
		return nil
	case "status":
		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect(database.MigrationDialect); err != nil {
			return err
		}
		db := stdlib.OpenDBFromPool(pool)
		defer db.Close()
		return goose.StatusContext(ctx, db, ".")
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}
