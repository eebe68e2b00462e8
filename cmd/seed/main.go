package main

import (
	"context"
	"log"
	"time"

	"goggles_shop/internal/config"
	"goggles_shop/internal/domain/catalog"
	"goggles_shop/internal/infrastructure/persistence/postgres"
)

// Seeds an empty database with the schema and the default goggles catalog.
// Running it against an already-seeded database is a no-op.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("postgres connection failed: %v", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("schema bootstrap failed: %v", err)
	}

	repo := postgres.NewProductRepository(pool)

	count, err := repo.Count(ctx)
	if err != nil {
		log.Fatalf("count products failed: %v", err)
	}
	if count > 0 {
		log.Printf("catalog already seeded (%d products), nothing to do", count)
		return
	}

	products := catalog.DefaultCatalog()
	for i := range products {
		if err := repo.Save(ctx, &products[i]); err != nil {
			log.Fatalf("seed product %q failed: %v", products[i].Name, err)
		}
	}

	log.Printf("seeded %d products", len(products))
}
