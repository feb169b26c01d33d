package routes

import (
	"motorcover/internal/adapters/http/handlers"
	"motorcover/internal/adapters/http/middleware"
	"motorcover/internal/adapters/persistence/repositories"
	"motorcover/internal/config"
	"motorcover/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	vehicleRepo := repositories.NewVehicleRepository(db)
	templateRepo := repositories.NewPolicyTemplateRepository(db)
	policyRepo := repositories.NewIssuedPolicyRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	vehicleService := services.NewVehicleService(vehicleRepo)
	catalogService := services.NewCatalogService(templateRepo)
	policyService := services.NewPolicyService(policyRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	policyHandler := handlers.NewPolicyHandler(policyService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api")
	setupAccountRoutes(api, authHandler, cfg)
	setupVehicleRoutes(api, vehicleHandler, cfg)
	setupCatalogRoutes(api, catalogHandler, cfg)
	setupPolicyRoutes(api, policyHandler)
}

// setupAccountRoutes configures account routes
func setupAccountRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (rate limited against credential stuffing)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
}

// setupVehicleRoutes configures vehicle lookup and registry routes
func setupVehicleRoutes(router fiber.Router, handler *handlers.VehicleHandler, cfg *config.Config) {
	// Public lookup used by the purchase form
	router.Get("/vehicles/validate/:plate", handler.Validate)

	// Registry management (Admin only)
	router.Get("/vehicles", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.List)
	router.Post("/vehicles", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.Add)
}

// setupCatalogRoutes configures policy template catalog routes
func setupCatalogRoutes(router fiber.Router, handler *handlers.CatalogHandler, cfg *config.Config) {
	// Public catalog reads
	router.Get("/policies", middleware.CatalogCache(), handler.List)
	router.Get("/policies/:title", middleware.CatalogCache(), handler.GetByTitle)

	// Catalog management (Admin only)
	router.Post("/policies", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.Create)
	router.Delete("/policies/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.Delete)
}

// setupPolicyRoutes configures policy issuance and dashboard routes
func setupPolicyRoutes(router fiber.Router, handler *handlers.PolicyHandler) {
	// Issued policies carry holder PII, keep them out of shared caches
	router.Post("/create-policy", middleware.NoCacheHeaders(), handler.Create)
	router.Get("/user-policies", middleware.NoCacheHeaders(), handler.List)
	router.Get("/user-policies/:email", middleware.NoCacheHeaders(), handler.ByHolder)
	router.Get("/policy/:policyId", middleware.NoCacheHeaders(), handler.GetByPolicyNo)
	router.Put("/update-policy-status", handler.UpdateStatus)
}
