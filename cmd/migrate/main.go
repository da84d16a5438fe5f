package main

import (
	"context"
	"flag"
	"log"
	"time"

	"stellar-cargo/internal/config"
	"stellar-cargo/internal/database"
)

func main() {
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	migrationsPath := flag.String("migrations", cfg.MigrationsPath, "Path to SQL migrations")
	flag.Parse()

	if len(flag.Args()) == 0 {
		log.Fatal("usage: migrate [up|down]")
	}
	direction := database.Direction(flag.Arg(0))
	if direction != database.Up && direction != database.Down {
		log.Fatalf("unknown command %q", flag.Arg(0))
	}
	if !cfg.UsesDatabase() {
		log.Fatalf("SESSION_BACKEND=%s has no schema; use postgres or sqlite", cfg.SessionBackend)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.New(ctx, cfg.Database(), nil)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db, *migrationsPath, direction); err != nil {
		log.Fatalf("migrate %s: %v", direction, err)
	}
	log.Printf("migrate %s: ok", direction)
}
