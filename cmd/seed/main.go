package main

import (
	"context"
	"log"

	"github.com/Gaana-Shree-S/ecommerce/internal/config"
	"github.com/Gaana-Shree-S/ecommerce/internal/repo"
	"github.com/Gaana-Shree-S/ecommerce/internal/seed"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	ctx := context.Background()

	db, err := repo.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	if err := seed.Run(ctx, db); err != nil {
		log.Fatalf("seed error: %v", err)
	}
	log.Println("sample products and admin user added")
}
