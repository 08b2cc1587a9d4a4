package main

import (
	"context"
	"fmt"
	"os"

	"mini-stock/internal/config"
	"mini-stock/internal/database"

	"github.com/rs/zerolog"
)

// Connects with the configured driver, ensures the schema and prints the row
// count of every table.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logger := zerolog.Nop()

	counts := make(map[string]int, len(database.Tables))

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := database.EnsurePostgresSchema(ctx, pool, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Schema check failed: %v\n", err)
			os.Exit(1)
		}

		for _, table := range database.Tables {
			var n int
			if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
				fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
				os.Exit(1)
			}
			counts[table] = n
		}

	default:
		db, err := database.OpenSQLite(ctx, cfg.Database, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to open database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.EnsureSchema(ctx, db, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Schema check failed: %v\n", err)
			os.Exit(1)
		}

		for _, table := range database.Tables {
			var n int
			if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
				fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
				os.Exit(1)
			}
			counts[table] = n
		}
	}

	fmt.Printf("Successfully connected using the %s driver\n\n", cfg.Database.Driver)
	for _, table := range database.Tables {
		fmt.Printf("  - %-10s %d rows\n", table, counts[table])
	}
}
