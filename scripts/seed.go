package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/config"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/repository"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/services"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/storage"
)

// Seeds the featured-items carousel with a default selection. Safe to re-run;
// it simply overwrites the stored selection.
func main() {
	fmt.Println("Seeding featured items...")

	cfg := config.Load()

	var (
		store storage.Store
		err   error
	)
	switch cfg.StorageDriver {
	case "redis":
		store, err = storage.NewRedisStore(cfg.RedisURL)
	case "postgres":
		store, err = storage.NewPostgresStore(cfg.DatabaseURL)
	default:
		log.Fatal("Seeding requires STORAGE_DRIVER=redis or postgres; the memory store is per-process")
	}
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	menuService := services.NewMenuService(repository.NewMenuRepository(store))

	featured, err := menuService.SetFeatured(context.Background(), []string{"burger1", "meal1", "shake1"})
	if err != nil {
		log.Fatal("Failed to seed featured items:", err)
	}

	for _, item := range featured {
		fmt.Printf("  featured: %s (%s)\n", item.Name, item.ID)
	}
	fmt.Println("Done.")
}
