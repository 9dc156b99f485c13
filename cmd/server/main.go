package main

import (
	"log"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/config"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/handlers"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/repository"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/services"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the store backend
	store, err := newStore(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(store)
	cartRepo := repository.NewCartRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	menuRepo := repository.NewMenuRepository(store)

	// Initialize services
	userService, err := services.NewUserService(userRepo, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Fatal("Failed to initialize user service:", err)
	}
	cartService := services.NewCartService(cartRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo)
	menuService := services.NewMenuService(menuRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	menuHandler := handlers.NewMenuHandler(menuService)
	cartHandler := handlers.NewCartHandler(cartService, menuService, orderService, userService)
	orderHandler := handlers.NewOrderHandler(orderService, userService)

	// Setup routes
	router := gin.Default()
	handlers.SetupRouter(router, authHandler, menuHandler, cartHandler, orderHandler, userService)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "redis":
		return storage.NewRedisStore(cfg.RedisURL)
	case "postgres":
		return storage.NewPostgresStore(cfg.DatabaseURL)
	default:
		log.Println("Using in-memory storage; state will not survive restarts")
		return storage.NewMemoryStore(), nil
	}
}
