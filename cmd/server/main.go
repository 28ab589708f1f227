package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/brandkit-tokens/internal/config"
	"github.com/localnerve/brandkit-tokens/internal/database"
	"github.com/localnerve/brandkit-tokens/internal/handlers"
	"github.com/localnerve/brandkit-tokens/internal/middleware"
	"github.com/localnerve/brandkit-tokens/internal/services"
	"github.com/localnerve/brandkit-tokens/internal/store"
	"github.com/localnerve/brandkit-tokens/internal/types"

	_ "github.com/localnerve/brandkit-tokens/docs/api" // Swagger docs
)

// @title Brandkit Tokens API
// @version 1.0.0
// @description Design token derivation and versioning service for the brandkit brand guidelines portal
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/brandkit-tokens
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Run auto-migrations with the admin credentials; the app user only has
	// row access
	adminDB, err := database.ConnectAdmin(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database for migration: %v", err)
	}
	if err := database.AutoMigrate(adminDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.Close(adminDB); err != nil {
		log.Fatalf("Failed to close migration connection: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	tokenService := services.NewTokenService(store.NewGormStore(db))

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("brandkit_tokens")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health endpoint for orchestration probes
	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Brand token routes
	brand := api.Group("/brand")
	tokenHandler := &handlers.TokenHandler{Service: tokenService}

	// Reads are available to any authenticated portal user
	brand.Get("/:client/tokens", middleware.AuthUser(), tokenHandler.GetTokens)
	brand.Get("/:client/versions", middleware.AuthUser(), tokenHandler.ListVersions)
	brand.Get("/:client/versions/:version/changes", middleware.AuthUser(), tokenHandler.GetChanges)

	// Mutations require the admin role
	brand.Post("/:client/tokens", middleware.AuthAdmin(), tokenHandler.UpdateTokens)
	brand.Post("/:client/versions/:version/rollback", middleware.AuthAdmin(), tokenHandler.Rollback)
	brand.Post("/:client/snapshots", middleware.AuthAdmin(), tokenHandler.Snapshot)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Initialize Authorizer (will be done on first auth request)
	log.Printf("Authorizer will be initialized on first authenticated request")

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	}

	// Check for version errors
	versionError := false
	if code == fiber.StatusConflict || (message != "" && len(message) >= 9 && message[:9] == "E_VERSION") {
		versionError = true
		errorType = "version"
		code = fiber.StatusConflict
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       code,
		"message":      message,
		"ok":           false,
		"versionError": versionError,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"url":          c.OriginalURL(),
		"type":         errorType,
	})
}
