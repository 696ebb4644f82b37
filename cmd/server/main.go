package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"payconsig/internal/adapters/http/middleware"
	"payconsig/internal/adapters/http/routes"
	"payconsig/internal/adapters/persistence/models"
	"payconsig/internal/adapters/persistence/repositories"
	"payconsig/internal/config"
	"payconsig/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	_ "payconsig/docs" // Swagger docs
)

// @title PayConsig API
// @version 1.0
// @description Payroll-deducted loan origination API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email suporte@payconsig.com.br

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host api.payconsig.com.br
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed demo data in dev mode
	if cfg.IsDev() {
		if err := config.NewSeeder(db).Run(); err != nil {
			log.Printf("⚠️ Warning: Failed to seed database: %v", err)
		}
	}

	// Rate-limit store: shared Redis when configured, otherwise
	// per-process memory
	store := newRateLimitStore(cfg)

	// Start cron service (token purge, overdue report)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	installmentRepo := repositories.NewInstallmentRepository(db)
	cronService := services.NewCronService(refreshTokenRepo, installmentRepo)
	if err := cronService.Start(); err != nil {
		log.Fatalf("❌ Failed to start cron service: %v", err)
	}
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "PayConsig API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg, store)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg, store)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// newRateLimitStore picks the rate-limit backend
func newRateLimitStore(cfg *config.Config) middleware.Store {
	if cfg.RedisAddr == "" {
		return middleware.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	log.Printf("✅ Rate limiting backed by Redis at %s", cfg.RedisAddr)
	return middleware.NewRedisStore(client)
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
