package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-catalog-api/internal/config"
	"go-catalog-api/internal/handler"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/seed"
	"go-catalog-api/internal/service"
	"go-catalog-api/internal/ws"
	"go-catalog-api/pkg/database"
	"go-catalog-api/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Env
	cfg := config.Load()
	jwt.Configure(cfg.JWTSecret, cfg.JWTTTL())

	// 2. Setup Database
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	// Auto Migrate (use a dedicated migration tool for production schemas)
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 3. Optional demo fixtures
	if cfg.SeedOnStart {
		if _, err := seed.Run(context.Background(), db, seed.Options{Random: cfg.SeedRandom}); err != nil {
			log.Printf("Warning: failed to seed fixtures: %v", err)
		}
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	priceRepo := repository.NewPriceRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	userRepo := repository.NewUserRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	orderRepo := repository.NewOrderRepo(db)

	catalogService := service.NewCatalogService(productRepo, categoryRepo)
	orderService := service.NewOrderService(db, userRepo, locationRepo, productRepo, priceRepo, orderRepo, wsHub)
	authService := service.NewAuthService(userRepo)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	handler.RegisterRoutes(app, catalogHandler, orderHandler, authHandler, userRepo)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	wsHub.Stop()

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server exited")
}
