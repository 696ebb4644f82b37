package routes

import (
	"payconsig/internal/adapters/gateways"
	"payconsig/internal/adapters/http/handlers"
	"payconsig/internal/adapters/http/middleware"
	"payconsig/internal/adapters/persistence/repositories"
	"payconsig/internal/config"
	"payconsig/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, store middleware.Store) {
	// Initialize repositories
	companyRepo := repositories.NewCompanyRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	loanRepo := repositories.NewLoanRepository(db)
	installmentRepo := repositories.NewInstallmentRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)

	// External gateways
	scoreClient := gateways.NewScoreClient(cfg.Gateways.ScoreURL, cfg.Gateways.Timeout)
	paymentClient := gateways.NewPaymentClient(cfg.Gateways.PaymentURL, cfg.Gateways.Timeout)

	// Initialize services
	authService := services.NewAuthService(employeeRepo, companyRepo, refreshTokenRepo, cfg)
	companyService := services.NewCompanyService(companyRepo)
	employeeService := services.NewEmployeeService(employeeRepo, companyRepo)
	loanService := services.NewLoanService(employeeRepo, loanRepo, installmentRepo, scoreClient, paymentClient)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	companyHandler := handlers.NewCompanyHandler(companyService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	loanHandler := handlers.NewLoanHandler(loanService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (public, stricter rate limit)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg, store)

	// Company routes
	companyRoutes := apiV1.Group("/companies")
	setupCompanyRoutes(companyRoutes, companyHandler, cfg, store)

	// Employee routes (authenticated)
	employeeRoutes := apiV1.Group("/employees")
	employeeRoutes.Use(middleware.AuthMiddleware(cfg))
	setupEmployeeRoutes(employeeRoutes, employeeHandler)

	// Loan routes (authenticated)
	loanRoutes := apiV1.Group("/loans")
	loanRoutes.Use(middleware.AuthMiddleware(cfg))
	setupLoanRoutes(loanRoutes, loanHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config, store middleware.Store) {
	authLimiter := middleware.AuthRateLimiter(store)

	// Public routes (5 req/min/IP)
	router.Post("/signup", authLimiter, handler.Signup)
	router.Post("/signin", authLimiter, handler.Signin)
	router.Post("/refresh", authLimiter, handler.RefreshToken)
	router.Post("/signout", handler.Signout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/signout-all", middleware.AuthMiddleware(cfg), handler.SignoutAll)
}

// setupCompanyRoutes configures employer routes. Registration is
// public so new employers can onboard; the rest requires auth.
func setupCompanyRoutes(router fiber.Router, handler *handlers.CompanyHandler, cfg *config.Config, store middleware.Store) {
	router.Post("/", middleware.AuthRateLimiter(store), handler.Create)

	router.Get("/", middleware.AuthMiddleware(cfg), handler.List)
	router.Get("/:id", middleware.AuthMiddleware(cfg), handler.GetByID)
	router.Patch("/:id", middleware.AuthMiddleware(cfg), handler.Update)
	router.Delete("/:id", middleware.AuthMiddleware(cfg), handler.Delete)
}

// setupEmployeeRoutes configures applicant maintenance routes
func setupEmployeeRoutes(router fiber.Router, handler *handlers.EmployeeHandler) {
	router.Post("/", handler.Create)
	router.Get("/", handler.List)
	router.Get("/:id", handler.GetByID)
	router.Patch("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}

// setupLoanRoutes configures simulation and origination routes
func setupLoanRoutes(router fiber.Router, handler *handlers.LoanHandler) {
	router.Post("/simulate", handler.Simulate)
	router.Post("/", handler.Create)
	router.Get("/", handler.List)
}
