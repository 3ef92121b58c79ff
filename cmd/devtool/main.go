package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func newRegistry() *Registry {
	r := NewRegistry()
	r.Register(&WaitForDBCommand{})
	r.Register(&MigrateCommand{})
	r.Register(&ValidateConfigCommand{})
	r.Register(&SimulateCommand{})
	return r
}

func main() {
	_ = godotenv.Load()

	registry := newRegistry()
	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp()
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}

// dbURL prefers DB_URL and otherwise builds a DSN from the DB_* variables.
func dbURL() string {
	if url := os.Getenv("DB_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "idleminer"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
