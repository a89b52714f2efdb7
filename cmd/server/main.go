package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"memomate/internal/config"
	"memomate/internal/handlers"
	"memomate/internal/kvstore"
	"memomate/internal/logging"
	"memomate/internal/middleware"
	"memomate/internal/services"
	"memomate/internal/ui"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

// configFile is the optional YAML override next to the binary
const configFile = "memomate.yaml"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize structured logging (JSON in production, text in dev)
	logging.Init()

	log.Println("🚀 Starting MemoMate Server...")

	// Load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found or error loading it: %v", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// Load configuration
	cfg := config.Load()
	if _, err := os.Stat(configFile); err == nil {
		if err := cfg.ApplyFile(configFile); err != nil {
			log.Fatalf("❌ Failed to load %s: %v", configFile, err)
		}
		log.Printf("✅ %s applied", configFile)
	}
	log.Printf("📋 Configuration loaded (Port: %s, Store: %s)", cfg.Port, cfg.StoreURL)

	// Open the key-value store
	store, err := kvstore.Open(context.Background(), cfg.StoreURL)
	if err != nil {
		log.Fatalf("❌ Failed to open key-value store: %v", err)
	}
	defer store.Close()

	// Initialize Prometheus metrics
	services.InitMetrics()
	log.Println("✅ Prometheus metrics initialized")

	// Initialize UI service (embedded document, optional UI_DIR override)
	uiService, err := ui.NewService(cfg.UIDir)
	if err != nil {
		log.Fatalf("❌ Failed to initialize UI: %v", err)
	}
	defer uiService.Close()

	// Prometheus HTTP middleware registers collectors globally, so it is
	// created once here rather than inside newApp
	prometheus := fiberprometheus.New("memomate")
	app := newApp(cfg, store, uiService, prometheus)
	log.Println("📊 Prometheus metrics endpoint enabled at /metrics")
	log.Printf("🔒 CORS allowed origins: %s", cfg.AllowedOrigins)

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("\n🛑 Shutting down server...")

		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️ Error shutting down server: %v", err)
		}
	}()

	// Start server
	log.Printf("✅ Server ready on port %s", cfg.Port)
	log.Printf("📡 Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("🌐 Interface: http://localhost:%s/", cfg.Port)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// newApp assembles the Fiber app: middleware chain, API routes and the
// interface-document fallback. prometheus may be nil to skip the metrics
// middleware (its collectors can only be registered once per process).
func newApp(cfg *config.Config, store kvstore.Store, uiService *ui.Service, prometheus *fiberprometheus.FiberPrometheus) *fiber.App {
	memoryService := services.NewMemoryService(store)
	transcriptService := services.NewTranscriptService(store)
	summaryService := services.NewSummaryService()

	app := fiber.New(fiber.Config{
		AppName:      "MemoMate v1.0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		BodyLimit:    1 * 1024 * 1024, // 1MB - payloads are short text chunks
		// Handler failures become a 500 carrying the failure message;
		// nothing propagates to the transport layer unhandled.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())

	// Prometheus metrics middleware
	if prometheus != nil {
		prometheus.RegisterAt(app, "/metrics")
		app.Use(prometheus.Middleware)
	}

	// CORS: the browser client may be hosted anywhere, so every response
	// carries the allow-origin header and OPTIONS preflight always succeeds
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Rate limiting
	rateLimitConfig := middleware.LoadRateLimitConfig()
	app.Use("/api", middleware.GlobalAPIRateLimiter(rateLimitConfig))
	writeLimiter := middleware.WriteRateLimiter(rateLimitConfig)
	log.Printf("🛡️  [RATE-LIMIT] Global=%d/min, Write=%d/min",
		rateLimitConfig.GlobalAPIMax, rateLimitConfig.WriteMax)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store)
	memoryHandler := handlers.NewMemoryHandler(memoryService)
	transcriptHandler := handlers.NewTranscriptHandler(transcriptService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	// Routes

	// Health check (public)
	app.Get("/health", healthHandler.Handle)

	api := app.Group("/api")
	{
		api.Get("/memories", memoryHandler.List)
		api.Post("/memories", writeLimiter, memoryHandler.Create)
		api.Delete("/memories", memoryHandler.Delete)

		api.Post("/save-transcript", writeLimiter, transcriptHandler.Save)
		api.Get("/get-transcripts", transcriptHandler.List)

		api.Post("/summarize", summaryHandler.Summarize)
	}

	// Unmatched API paths are errors, everything else gets the interface
	// document (the client is a single inline page)
	app.Use("/api", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not Found",
		})
	})
	app.Get("/*", uiService.Handler)

	return app
}
