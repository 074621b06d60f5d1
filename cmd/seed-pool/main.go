package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/osse101/MinesBot_Go/internal/config"
	"github.com/osse101/MinesBot_Go/internal/database"
	"github.com/osse101/MinesBot_Go/internal/database/postgres"
	"github.com/osse101/MinesBot_Go/internal/tables"
)

func main() {
	stockPath := flag.String("file", "configs/pool.yaml", "collectible stock file")
	economyPath := flag.String("economy", os.Getenv(config.EnvEconomyConfig), "economy tables used to check kinds (defaults when empty)")
	dryRun := flag.Bool("dry-run", false, "print the plan without writing")
	migrate := flag.Bool("migrate", true, "apply pending migrations first")
	flag.Parse()

	if err := run(*stockPath, *economyPath, *dryRun, *migrate); err != nil {
		log.Fatalf("seed-pool: %v", err)
	}
}

func run(stockPath, economyPath string, dryRun, migrate bool) error {
	stock, err := loadStockFile(stockPath)
	if err != nil {
		return err
	}

	tb, err := tables.Load(economyPath)
	if err != nil {
		return fmt.Errorf("failed to load economy tables: %w", err)
	}
	for _, kind := range unknownKinds(stock, tb.CollectibleKinds()) {
		log.Printf("Warning: no case prize grants kind %q", kind)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPool(ctx, database.PoolConfig{
		URL:             config.DatabaseURLFromEnv(),
		MaxConns:        4,
		ApplicationName: "seed-pool",
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if migrate {
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
	}

	store := postgres.NewStore(pool)
	current, err := store.GetPoolStock(ctx)
	if err != nil {
		return err
	}
	available := make(map[string]int64, len(current))
	for _, s := range current {
		available[s.Kind] = s.Available
	}

	batches := plan(stock, available, uuidSerial)
	if len(batches) == 0 {
		log.Println("Pool already stocked, nothing to do")
		return nil
	}

	for _, b := range batches {
		if dryRun {
			log.Printf("[dry-run] would add %d x %s", len(b.Serials), b.Kind)
			continue
		}
		added, err := store.SeedCollectibles(ctx, b.Kind, b.Serials)
		if err != nil {
			return fmt.Errorf("kind %s: %w", b.Kind, err)
		}
		log.Printf("Added %d x %s (%d already present)", added, b.Kind, int64(len(b.Serials))-added)
	}
	return nil
}
