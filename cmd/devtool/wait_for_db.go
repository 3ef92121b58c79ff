package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/osse101/IdleMiner_Go/internal/database"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string { return "wait-for-db" }

func (c *WaitForDBCommand) Description() string {
	return "Wait for the database to accept connections"
}

func (c *WaitForDBCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	retries := fs.Int("retries", 30, "connection attempts")
	interval := fs.Duration("interval", 2*time.Second, "delay between attempts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	PrintHeader("Waiting for database...")
	var lastErr error
	for i := 1; i <= *retries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), *interval)
		pool, err := database.NewPool(ctx, dbURL(), database.PoolOptions{MaxConns: 1})
		cancel()
		if err == nil {
			pool.Close()
			PrintSuccess("Database is ready")
			return nil
		}
		lastErr = err
		fmt.Printf("Database not ready (%d/%d): %v\n", i, *retries, err)
		time.Sleep(*interval)
	}
	return fmt.Errorf("database not ready after %d attempts: %w", *retries, lastErr)
}
